package service

import (
	"context"
	"testing"

	"github.com/bitfantasy/garment-bom/internal/bom/entity"
	"github.com/bitfantasy/garment-bom/internal/bom/repository"
	"github.com/bitfantasy/garment-bom/internal/bom/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
)

func newStyleTestEnv(t *testing.T) (*gorm.DB, *StyleService, *CustomerService) {
	t.Helper()
	db := testutil.SetupTestDB(t)
	repos := repository.NewRepositories(db)
	return db, NewStyleService(repos.Style, repos.Customer), NewCustomerService(repos.Customer, repos.Style)
}

func TestStyleCustomerNameSnapshot(t *testing.T) {
	_, styleSvc, customerSvc := newStyleTestEnv(t)
	ctx := context.Background()

	customer, err := customerSvc.Create(ctx, &CreateCustomerInput{CustomerName: "优衣库"})
	require.NoError(t, err)

	style, err := styleSvc.Create(ctx, &CreateStyleInput{
		StyleNo:    "ST100",
		StyleName:  "连衣裙",
		CustomerID: &customer.ID,
	}, "admin")
	require.NoError(t, err)
	require.NotNil(t, style.CustomerName)
	assert.Equal(t, "优衣库", *style.CustomerName)
	assert.Equal(t, "admin", style.CreatedBy)

	// 客户改名后冗余客户名随之刷新
	newName := "优衣库中国"
	_, err = customerSvc.Update(ctx, customer.ID, &UpdateCustomerInput{CustomerName: &newName})
	require.NoError(t, err)

	reloaded, err := styleSvc.Get(ctx, style.ID)
	require.NoError(t, err)
	require.NotNil(t, reloaded.CustomerName)
	assert.Equal(t, "优衣库中国", *reloaded.CustomerName)

	// 绑定不存在的客户被拒绝
	ghost := uint(9999)
	_, err = styleSvc.Create(ctx, &CreateStyleInput{
		StyleNo: "ST101", StyleName: "衬衫", CustomerID: &ghost,
	}, "admin")
	require.ErrorIs(t, err, repository.ErrNotFound)
}

func TestStyleUpdateCustomerRebindAndUnbind(t *testing.T) {
	_, styleSvc, customerSvc := newStyleTestEnv(t)
	ctx := context.Background()

	c1, err := customerSvc.Create(ctx, &CreateCustomerInput{CustomerName: "客户甲"})
	require.NoError(t, err)
	c2, err := customerSvc.Create(ctx, &CreateCustomerInput{CustomerName: "客户乙"})
	require.NoError(t, err)

	style, err := styleSvc.Create(ctx, &CreateStyleInput{
		StyleNo: "ST100", StyleName: "连衣裙", CustomerID: &c1.ID,
	}, "admin")
	require.NoError(t, err)

	// 换绑：冗余客户名刷新
	updated, err := styleSvc.Update(ctx, style.ID, &UpdateStyleInput{
		CustomerID: Patch[uint]{Set: true, Valid: true, Value: c2.ID},
	}, "admin")
	require.NoError(t, err)
	require.NotNil(t, updated.CustomerName)
	assert.Equal(t, "客户乙", *updated.CustomerName)

	// 显式null解绑：两个字段一并清空
	updated, err = styleSvc.Update(ctx, style.ID, &UpdateStyleInput{
		CustomerID: Patch[uint]{Set: true},
	}, "admin")
	require.NoError(t, err)
	assert.Nil(t, updated.CustomerID)
	assert.Nil(t, updated.CustomerName)

	// 载荷未携带customer_id：保持不变
	name := "改名连衣裙"
	updated, err = styleSvc.Update(ctx, style.ID, &UpdateStyleInput{StyleName: &name}, "admin")
	require.NoError(t, err)
	assert.Nil(t, updated.CustomerID)
	assert.Equal(t, "改名连衣裙", updated.StyleName)
}

func TestRemoveStyleCascadesWholeTree(t *testing.T) {
	db, styleSvc, _ := newStyleTestEnv(t)
	ctx := context.Background()

	style := seedStyle(t, db, "ST100")
	v1 := seedVariantTree(t, db, style.ID, "红色")
	v2 := seedVariantTree(t, db, style.ID, "蓝色")

	snapshot, err := styleSvc.Remove(ctx, style.ID)
	require.NoError(t, err)
	assert.Len(t, snapshot.ColorVariants, 2)

	// 整棵树软删除，规格硬删除
	var raw entity.Style
	require.NoError(t, db.Unscoped().First(&raw, style.ID).Error)
	assert.NotNil(t, raw.DeletedAt)

	var activeVariants, activeItems, specs int64
	db.Model(&entity.ColorVariant{}).Where("style_id = ? AND deleted_at IS NULL", style.ID).Count(&activeVariants)
	assert.Zero(t, activeVariants)
	db.Model(&entity.BOMItem{}).Where("deleted_at IS NULL").Count(&activeItems)
	assert.Zero(t, activeItems)
	db.Model(&entity.SpecDetail{}).Count(&specs)
	assert.Zero(t, specs)

	// 整树删除不做颜色名重写
	var rawV1, rawV2 entity.ColorVariant
	require.NoError(t, db.Unscoped().First(&rawV1, v1.ID).Error)
	require.NoError(t, db.Unscoped().First(&rawV2, v2.ID).Error)
	assert.Equal(t, "红色", rawV1.ColorName)
	assert.Equal(t, "蓝色", rawV2.ColorName)

	// 读操作不可见
	_, err = styleSvc.Get(ctx, style.ID)
	require.ErrorIs(t, err, repository.ErrNotFound)

	styles, total, err := styleSvc.List(ctx, repository.StyleListParams{})
	require.NoError(t, err)
	assert.Zero(t, total)
	assert.Empty(t, styles)
}

func TestRemoveCustomerKeepsStyles(t *testing.T) {
	_, styleSvc, customerSvc := newStyleTestEnv(t)
	ctx := context.Background()

	customer, err := customerSvc.Create(ctx, &CreateCustomerInput{CustomerName: "客户甲"})
	require.NoError(t, err)
	style, err := styleSvc.Create(ctx, &CreateStyleInput{
		StyleNo: "ST100", StyleName: "连衣裙", CustomerID: &customer.ID,
	}, "admin")
	require.NoError(t, err)

	_, err = customerSvc.Remove(ctx, customer.ID)
	require.NoError(t, err)
	_, err = customerSvc.Get(ctx, customer.ID)
	require.ErrorIs(t, err, repository.ErrNotFound)

	// 删除客户不级联款号，冗余客户名保留最后快照
	reloaded, err := styleSvc.Get(ctx, style.ID)
	require.NoError(t, err)
	require.NotNil(t, reloaded.CustomerName)
	assert.Equal(t, "客户甲", *reloaded.CustomerName)
}
