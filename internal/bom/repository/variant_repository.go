package repository

import (
	"context"
	"time"

	"github.com/bitfantasy/garment-bom/internal/bom/entity"
	"gorm.io/gorm"
)

type VariantRepository struct {
	db *gorm.DB
}

func NewVariantRepository(db *gorm.DB) *VariantRepository {
	return &VariantRepository{db: db}
}

// VariantListParams 颜色版本列表查询参数
type VariantListParams struct {
	StyleID  *uint
	Page     int
	PageSize int
}

// Create 创建颜色版本
func (r *VariantRepository) Create(ctx context.Context, variant *entity.ColorVariant) error {
	return r.db.WithContext(ctx).Create(variant).Error
}

// FindByID 根据ID查找活跃颜色版本
func (r *VariantRepository) FindByID(ctx context.Context, id uint) (*entity.ColorVariant, error) {
	var variant entity.ColorVariant
	err := r.db.WithContext(ctx).
		First(&variant, "id = ? AND deleted_at IS NULL", id).Error
	if err != nil {
		return nil, translate(err)
	}
	return &variant, nil
}

// FindDetail 根据ID查找颜色版本，带活跃配料明细及其规格明细（均按sort_order排序）
func (r *VariantRepository) FindDetail(ctx context.Context, id uint) (*entity.ColorVariant, error) {
	var variant entity.ColorVariant
	err := r.db.WithContext(ctx).
		Preload("BOMItems", func(db *gorm.DB) *gorm.DB {
			return db.Where("deleted_at IS NULL").Order("sort_order ASC")
		}).
		Preload("BOMItems.SpecDetails", func(db *gorm.DB) *gorm.DB {
			return db.Order("sort_order ASC")
		}).
		First(&variant, "id = ? AND deleted_at IS NULL", id).Error
	if err != nil {
		return nil, translate(err)
	}
	return &variant, nil
}

// FindActiveInStyle 在指定款号下查找活跃颜色版本
func (r *VariantRepository) FindActiveInStyle(ctx context.Context, styleID, id uint) (*entity.ColorVariant, error) {
	var variant entity.ColorVariant
	err := r.db.WithContext(ctx).
		First(&variant, "id = ? AND style_id = ? AND deleted_at IS NULL", id, styleID).Error
	if err != nil {
		return nil, translate(err)
	}
	return &variant, nil
}

// NameTaken 检查同一款号下活跃颜色名是否已被占用（excludeID排除自身，0表示不排除）
func (r *VariantRepository) NameTaken(ctx context.Context, styleID uint, colorName string, excludeID uint) (bool, error) {
	query := r.db.WithContext(ctx).Model(&entity.ColorVariant{}).
		Where("style_id = ? AND color_name = ? AND deleted_at IS NULL", styleID, colorName)
	if excludeID != 0 {
		query = query.Where("id <> ?", excludeID)
	}
	var count int64
	if err := query.Count(&count).Error; err != nil {
		return false, err
	}
	return count > 0, nil
}

// List 颜色版本分页列表（默认排除已删除，按sort_order排序）
func (r *VariantRepository) List(ctx context.Context, params VariantListParams) ([]entity.ColorVariant, int64, error) {
	if params.Page <= 0 {
		params.Page = 1
	}
	if params.PageSize <= 0 || params.PageSize > 100 {
		params.PageSize = 20
	}

	query := r.db.WithContext(ctx).Model(&entity.ColorVariant{}).Where("deleted_at IS NULL")
	if params.StyleID != nil {
		query = query.Where("style_id = ?", *params.StyleID)
	}

	var total int64
	if err := query.Count(&total).Error; err != nil {
		return nil, 0, err
	}

	var variants []entity.ColorVariant
	err := query.Order("sort_order ASC").
		Offset((params.Page - 1) * params.PageSize).
		Limit(params.PageSize).
		Find(&variants).Error
	return variants, total, err
}

// Save 保存颜色版本
func (r *VariantRepository) Save(ctx context.Context, variant *entity.ColorVariant) error {
	return r.db.WithContext(ctx).Save(variant).Error
}

// DeleteCascade 软删除颜色版本并级联子树（单事务）
// 顺序：规格明细硬删除 → 配料明细软删除 → 颜色版本软删除；
// 删除同时把颜色名重写为tombstoneName，释放名称给后续新建/改名使用
func (r *VariantRepository) DeleteCascade(ctx context.Context, id uint, tombstoneName string) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		now := time.Now()

		itemIDs := tx.Model(&entity.BOMItem{}).
			Select("id").Where("variant_id = ?", id)
		if err := tx.Where("bom_item_id IN (?)", itemIDs).
			Delete(&entity.SpecDetail{}).Error; err != nil {
			return err
		}

		if err := tx.Model(&entity.BOMItem{}).
			Where("variant_id = ? AND deleted_at IS NULL", id).
			Update("deleted_at", now).Error; err != nil {
			return err
		}

		return tx.Model(&entity.ColorVariant{}).
			Where("id = ?", id).
			Updates(map[string]interface{}{
				"deleted_at": now,
				"color_name": tombstoneName,
			}).Error
	})
}

// CloneTree 深度克隆颜色版本子树（单事务）
// source需预加载活跃BOMItems（含SpecDetails）；clone为已填好属性、未落库的新行。
// 返回克隆的配料明细数与规格明细数
func (r *VariantRepository) CloneTree(ctx context.Context, source, clone *entity.ColorVariant) (int, int, error) {
	var clonedBomCount, clonedSpecCount int

	err := r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Create(clone).Error; err != nil {
			return err
		}

		for _, item := range source.BOMItems {
			newItem := entity.BOMItem{
				VariantID:             clone.ID,
				MaterialName:          item.MaterialName,
				MaterialImageURL:      item.MaterialImageURL,
				MaterialColorText:     item.MaterialColorText,
				MaterialColorImageURL: item.MaterialColorImageURL,
				Usage:                 item.Usage,
				Unit:                  item.Unit,
				Supplier:              item.Supplier,
				SortOrder:             item.SortOrder,
			}
			if err := tx.Create(&newItem).Error; err != nil {
				return err
			}
			clonedBomCount++

			for _, spec := range item.SpecDetails {
				newSpec := entity.SpecDetail{
					BOMItemID: newItem.ID,
					Size:      spec.Size,
					SpecValue: spec.SpecValue,
					SpecUnit:  spec.SpecUnit,
					SortOrder: spec.SortOrder,
				}
				if err := tx.Create(&newSpec).Error; err != nil {
					return err
				}
				clonedSpecCount++
			}
		}

		return nil
	})
	if err != nil {
		return 0, 0, err
	}

	return clonedBomCount, clonedSpecCount, nil
}
