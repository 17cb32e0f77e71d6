package repository

import (
	"context"
	"time"

	"github.com/bitfantasy/garment-bom/internal/bom/entity"
	"gorm.io/gorm"
)

type BOMItemRepository struct {
	db *gorm.DB
}

func NewBOMItemRepository(db *gorm.DB) *BOMItemRepository {
	return &BOMItemRepository{db: db}
}

// BOMItemListParams 配料明细列表查询参数
type BOMItemListParams struct {
	VariantID *uint
	Page      int
	PageSize  int
}

// Create 创建配料明细（可携带规格明细一并落库）
func (r *BOMItemRepository) Create(ctx context.Context, item *entity.BOMItem) error {
	return r.db.WithContext(ctx).Create(item).Error
}

// FindByID 根据ID查找活跃配料明细，带规格明细（按sort_order排序）
func (r *BOMItemRepository) FindByID(ctx context.Context, id uint) (*entity.BOMItem, error) {
	var item entity.BOMItem
	err := r.db.WithContext(ctx).
		Preload("SpecDetails", func(db *gorm.DB) *gorm.DB {
			return db.Order("sort_order ASC")
		}).
		First(&item, "id = ? AND deleted_at IS NULL", id).Error
	if err != nil {
		return nil, translate(err)
	}
	return &item, nil
}

// List 配料明细分页列表（默认排除已删除，按sort_order排序）
func (r *BOMItemRepository) List(ctx context.Context, params BOMItemListParams) ([]entity.BOMItem, int64, error) {
	if params.Page <= 0 {
		params.Page = 1
	}
	if params.PageSize <= 0 || params.PageSize > 100 {
		params.PageSize = 20
	}

	query := r.db.WithContext(ctx).Model(&entity.BOMItem{}).Where("deleted_at IS NULL")
	if params.VariantID != nil {
		query = query.Where("variant_id = ?", *params.VariantID)
	}

	var total int64
	if err := query.Count(&total).Error; err != nil {
		return nil, 0, err
	}

	var items []entity.BOMItem
	err := query.
		Preload("SpecDetails", func(db *gorm.DB) *gorm.DB {
			return db.Order("sort_order ASC")
		}).
		Order("sort_order ASC").
		Offset((params.Page - 1) * params.PageSize).
		Limit(params.PageSize).
		Find(&items).Error
	return items, total, err
}

// UpdateWithSpecs 更新配料明细（单事务）
// replaceSpecs为true时整体替换规格明细：先全删后批插
func (r *BOMItemRepository) UpdateWithSpecs(ctx context.Context, item *entity.BOMItem, specs []entity.SpecDetail, replaceSpecs bool) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Omit("SpecDetails").Save(item).Error; err != nil {
			return err
		}

		if !replaceSpecs {
			return nil
		}

		if err := tx.Where("bom_item_id = ?", item.ID).
			Delete(&entity.SpecDetail{}).Error; err != nil {
			return err
		}
		if len(specs) > 0 {
			for i := range specs {
				specs[i].ID = 0
				specs[i].BOMItemID = item.ID
			}
			if err := tx.Create(&specs).Error; err != nil {
				return err
			}
		}
		return nil
	})
}

// DeleteCascade 软删除配料明细（单事务）：先硬删其规格明细，再软删自身
func (r *BOMItemRepository) DeleteCascade(ctx context.Context, id uint) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("bom_item_id = ?", id).
			Delete(&entity.SpecDetail{}).Error; err != nil {
			return err
		}
		return tx.Model(&entity.BOMItem{}).
			Where("id = ?", id).
			Update("deleted_at", time.Now()).Error
	})
}

// ListSpecs 获取配料明细的规格明细（按sort_order排序）
func (r *BOMItemRepository) ListSpecs(ctx context.Context, itemID uint) ([]entity.SpecDetail, error) {
	var specs []entity.SpecDetail
	err := r.db.WithContext(ctx).
		Where("bom_item_id = ?", itemID).
		Order("sort_order ASC").
		Find(&specs).Error
	return specs, err
}

// CreateSpec 创建单条规格明细
func (r *BOMItemRepository) CreateSpec(ctx context.Context, spec *entity.SpecDetail) error {
	return r.db.WithContext(ctx).Create(spec).Error
}

// FindSpecByID 根据ID查找规格明细
func (r *BOMItemRepository) FindSpecByID(ctx context.Context, id uint) (*entity.SpecDetail, error) {
	var spec entity.SpecDetail
	err := r.db.WithContext(ctx).First(&spec, "id = ?", id).Error
	if err != nil {
		return nil, translate(err)
	}
	return &spec, nil
}

// SaveSpec 保存规格明细
func (r *BOMItemRepository) SaveSpec(ctx context.Context, spec *entity.SpecDetail) error {
	return r.db.WithContext(ctx).Save(spec).Error
}

// DeleteSpec 硬删除规格明细
func (r *BOMItemRepository) DeleteSpec(ctx context.Context, id uint) error {
	return r.db.WithContext(ctx).Delete(&entity.SpecDetail{}, "id = ?", id).Error
}
