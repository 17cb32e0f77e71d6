package service

import (
	"context"
	"fmt"
	"testing"

	"github.com/bitfantasy/garment-bom/internal/bom/entity"
	"github.com/bitfantasy/garment-bom/internal/bom/repository"
	"github.com/bitfantasy/garment-bom/internal/bom/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
)

func newVariantTestEnv(t *testing.T) (*gorm.DB, *VariantService) {
	t.Helper()
	db := testutil.SetupTestDB(t)
	repos := repository.NewRepositories(db)
	return db, NewVariantService(repos.Variant, repos.Style)
}

func seedStyle(t *testing.T, db *gorm.DB, styleNo string) *entity.Style {
	t.Helper()
	style := &entity.Style{StyleNo: styleNo, StyleName: "连衣裙"}
	require.NoError(t, db.Create(style).Error)
	return style
}

// seedVariantTree 种一个带2条配料、每条2条规格的颜色版本
func seedVariantTree(t *testing.T, db *gorm.DB, styleID uint, colorName string) *entity.ColorVariant {
	t.Helper()
	img := "https://cdn.example.com/sample.jpg"
	variant := &entity.ColorVariant{
		StyleID:        styleID,
		ColorName:      colorName,
		SampleImageURL: &img,
		SizeRange:      "S/M/L",
	}
	require.NoError(t, db.Create(variant).Error)

	sizeM := "M"
	sizeL := "L"
	for i := 1; i <= 2; i++ {
		item := &entity.BOMItem{
			VariantID:    variant.ID,
			MaterialName: fmt.Sprintf("物料%d", i),
			Usage:        1.5,
			Unit:         "米",
			Supplier:     "供应商A",
			SortOrder:    i,
			SpecDetails: []entity.SpecDetail{
				{Size: &sizeM, SpecValue: "20", SpecUnit: "cm", SortOrder: 1},
				{Size: &sizeL, SpecValue: "22", SpecUnit: "cm", SortOrder: 2},
			},
		}
		require.NoError(t, db.Create(item).Error)
	}
	return variant
}

func TestCreateVariantDuplicateName(t *testing.T) {
	db, svc := newVariantTestEnv(t)
	style := seedStyle(t, db, "ST100")
	ctx := context.Background()

	_, err := svc.Create(ctx, &CreateVariantInput{StyleID: style.ID, ColorName: "红色"})
	require.NoError(t, err)

	_, err = svc.Create(ctx, &CreateVariantInput{StyleID: style.ID, ColorName: "红色"})
	require.ErrorIs(t, err, repository.ErrConflict)

	// 不同款号下同名不冲突
	other := seedStyle(t, db, "ST200")
	_, err = svc.Create(ctx, &CreateVariantInput{StyleID: other.ID, ColorName: "红色"})
	require.NoError(t, err)
}

func TestUpdateVariantRenameConflict(t *testing.T) {
	db, svc := newVariantTestEnv(t)
	style := seedStyle(t, db, "ST100")
	ctx := context.Background()

	red, err := svc.Create(ctx, &CreateVariantInput{StyleID: style.ID, ColorName: "红色"})
	require.NoError(t, err)
	pink, err := svc.Create(ctx, &CreateVariantInput{StyleID: style.ID, ColorName: "粉色"})
	require.NoError(t, err)

	name := "红色"
	_, err = svc.Update(ctx, pink.ID, &UpdateVariantInput{ColorName: &name})
	require.ErrorIs(t, err, repository.ErrConflict)

	// 改回自己的名字不算冲突
	self := "粉色"
	_, err = svc.Update(ctx, pink.ID, &UpdateVariantInput{ColorName: &self})
	require.NoError(t, err)

	// 改成未占用的名字
	blue := "蓝色"
	updated, err := svc.Update(ctx, red.ID, &UpdateVariantInput{ColorName: &blue})
	require.NoError(t, err)
	assert.Equal(t, "蓝色", updated.ColorName)
}

func TestRemoveVariantCascadeAndNameReuse(t *testing.T) {
	db, svc := newVariantTestEnv(t)
	style := seedStyle(t, db, "ST100")
	variant := seedVariantTree(t, db, style.ID, "红色")
	ctx := context.Background()

	snapshot, err := svc.Remove(ctx, variant.ID)
	require.NoError(t, err)
	assert.Equal(t, "红色", snapshot.ColorName) // 快照保留原名
	assert.Len(t, snapshot.BOMItems, 2)

	// 颜色名已重写为墓碑名，行保留
	var raw entity.ColorVariant
	require.NoError(t, db.Unscoped().First(&raw, variant.ID).Error)
	assert.Equal(t, fmt.Sprintf("红色_DEL_%d", variant.ID), raw.ColorName)
	assert.NotNil(t, raw.DeletedAt)

	// 配料软删除、规格硬删除
	var itemCount, specCount int64
	db.Model(&entity.BOMItem{}).Where("variant_id = ? AND deleted_at IS NULL", variant.ID).Count(&itemCount)
	assert.Zero(t, itemCount)
	db.Model(&entity.SpecDetail{}).Count(&specCount)
	assert.Zero(t, specCount)

	// 已删除对读操作不可见
	_, err = svc.Get(ctx, variant.ID)
	require.ErrorIs(t, err, repository.ErrNotFound)

	// 名称立即可复用
	reborn, err := svc.Create(ctx, &CreateVariantInput{StyleID: style.ID, ColorName: "红色"})
	require.NoError(t, err)
	assert.NotEqual(t, variant.ID, reborn.ID)
}

func TestCloneVariant(t *testing.T) {
	db, svc := newVariantTestEnv(t)
	style := seedStyle(t, db, "ST100")
	source := seedVariantTree(t, db, style.ID, "红色")
	ctx := context.Background()

	result, err := svc.Clone(ctx, style.ID, source.ID, &CloneVariantInput{NewColorName: "粉色"})
	require.NoError(t, err)
	assert.Equal(t, "粉色", result.ColorName)
	assert.Equal(t, 2, result.ClonedBomCount)
	assert.Equal(t, 4, result.ClonedSpecCount)

	clone, err := svc.GetDetail(ctx, result.ID)
	require.NoError(t, err)
	require.NotNil(t, clone.ClonedFromID)
	assert.Equal(t, source.ID, *clone.ClonedFromID)
	require.NotNil(t, clone.SampleImageURL) // 默认复制样衣图
	assert.Equal(t, "S/M/L", clone.SizeRange)
	require.Len(t, clone.BOMItems, 2)
	assert.Equal(t, "物料1", clone.BOMItems[0].MaterialName)
	assert.Len(t, clone.BOMItems[0].SpecDetails, 2)

	// 克隆是独立副本：改源不影响克隆
	require.NoError(t, db.Model(&entity.BOMItem{}).
		Where("variant_id = ?", source.ID).
		Update("material_name", "改名物料").Error)
	clone, err = svc.GetDetail(ctx, result.ID)
	require.NoError(t, err)
	assert.Equal(t, "物料1", clone.BOMItems[0].MaterialName)
}

func TestCloneVariantWithoutSampleImage(t *testing.T) {
	db, svc := newVariantTestEnv(t)
	style := seedStyle(t, db, "ST100")
	source := seedVariantTree(t, db, style.ID, "红色")
	ctx := context.Background()

	copyImg := false
	result, err := svc.Clone(ctx, style.ID, source.ID, &CloneVariantInput{
		NewColorName:    "白色",
		CopySampleImage: &copyImg,
	})
	require.NoError(t, err)

	clone, err := svc.Get(ctx, result.ID)
	require.NoError(t, err)
	assert.Nil(t, clone.SampleImageURL)
}

func TestCloneVariantPreconditions(t *testing.T) {
	db, svc := newVariantTestEnv(t)
	style := seedStyle(t, db, "ST100")
	other := seedStyle(t, db, "ST200")
	source := seedVariantTree(t, db, style.ID, "红色")
	ctx := context.Background()

	// 新名与活跃兄弟冲突
	_, err := svc.Clone(ctx, style.ID, source.ID, &CloneVariantInput{NewColorName: "红色"})
	require.ErrorIs(t, err, repository.ErrConflict)

	// 源不属于该款号
	_, err = svc.Clone(ctx, other.ID, source.ID, &CloneVariantInput{NewColorName: "粉色"})
	require.ErrorIs(t, err, repository.ErrNotFound)

	// 源已删除
	_, err = svc.Remove(ctx, source.ID)
	require.NoError(t, err)
	_, err = svc.Clone(ctx, style.ID, source.ID, &CloneVariantInput{NewColorName: "粉色"})
	require.ErrorIs(t, err, repository.ErrNotFound)
}
