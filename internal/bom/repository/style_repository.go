package repository

import (
	"context"
	"time"

	"github.com/bitfantasy/garment-bom/internal/bom/entity"
	"gorm.io/gorm"
)

type StyleRepository struct {
	db *gorm.DB
}

func NewStyleRepository(db *gorm.DB) *StyleRepository {
	return &StyleRepository{db: db}
}

// StyleListParams 款号列表查询参数
type StyleListParams struct {
	StyleNo    string
	StyleName  string
	CustomerID *uint
	Keyword    string
	Page       int
	PageSize   int
}

// Create 创建款号
func (r *StyleRepository) Create(ctx context.Context, style *entity.Style) error {
	return r.db.WithContext(ctx).Create(style).Error
}

// FindByID 根据ID查找活跃款号
func (r *StyleRepository) FindByID(ctx context.Context, id uint) (*entity.Style, error) {
	var style entity.Style
	err := r.db.WithContext(ctx).
		First(&style, "id = ? AND deleted_at IS NULL", id).Error
	if err != nil {
		return nil, translate(err)
	}
	return &style, nil
}

// FindDetail 根据ID查找款号，带活跃颜色版本（按sort_order排序）
func (r *StyleRepository) FindDetail(ctx context.Context, id uint) (*entity.Style, error) {
	var style entity.Style
	err := r.db.WithContext(ctx).
		Preload("ColorVariants", func(db *gorm.DB) *gorm.DB {
			return db.Where("deleted_at IS NULL").Order("sort_order ASC")
		}).
		First(&style, "id = ? AND deleted_at IS NULL", id).Error
	if err != nil {
		return nil, translate(err)
	}
	return &style, nil
}

// List 款号分页列表（默认排除已删除，按创建时间倒序）
func (r *StyleRepository) List(ctx context.Context, params StyleListParams) ([]entity.Style, int64, error) {
	if params.Page <= 0 {
		params.Page = 1
	}
	if params.PageSize <= 0 || params.PageSize > 100 {
		params.PageSize = 20
	}

	query := r.db.WithContext(ctx).Model(&entity.Style{}).Where("deleted_at IS NULL")
	if params.StyleNo != "" {
		query = query.Where("style_no = ?", params.StyleNo)
	}
	if params.StyleName != "" {
		query = query.Where("style_name LIKE ?", "%"+params.StyleName+"%")
	}
	if params.CustomerID != nil {
		query = query.Where("customer_id = ?", *params.CustomerID)
	}
	if params.Keyword != "" {
		like := "%" + params.Keyword + "%"
		query = query.Where("style_no LIKE ? OR style_name LIKE ? OR customer_name LIKE ?", like, like, like)
	}

	var total int64
	if err := query.Count(&total).Error; err != nil {
		return nil, 0, err
	}

	var styles []entity.Style
	err := query.Order("created_at DESC").
		Offset((params.Page - 1) * params.PageSize).
		Limit(params.PageSize).
		Find(&styles).Error
	return styles, total, err
}

// Save 保存款号
func (r *StyleRepository) Save(ctx context.Context, style *entity.Style) error {
	return r.db.WithContext(ctx).Save(style).Error
}

// SyncCustomerName 客户改名时批量刷新关联款号的冗余客户名
func (r *StyleRepository) SyncCustomerName(ctx context.Context, customerID uint, name string) error {
	return r.db.WithContext(ctx).Model(&entity.Style{}).
		Where("customer_id = ?", customerID).
		Update("customer_name", name).Error
}

// DeleteCascade 软删除款号并级联整棵子树（单事务）
// 顺序：规格明细硬删除 → 配料明细软删除 → 颜色版本软删除 → 款号软删除
// 整树删除时不做颜色名重写，活跃行中已无同款号兄弟需要避让
func (r *StyleRepository) DeleteCascade(ctx context.Context, id uint) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		now := time.Now()

		var variantIDs []uint
		if err := tx.Model(&entity.ColorVariant{}).
			Where("style_id = ? AND deleted_at IS NULL", id).
			Pluck("id", &variantIDs).Error; err != nil {
			return err
		}

		if len(variantIDs) > 0 {
			itemIDs := tx.Model(&entity.BOMItem{}).
				Select("id").Where("variant_id IN ?", variantIDs)
			if err := tx.Where("bom_item_id IN (?)", itemIDs).
				Delete(&entity.SpecDetail{}).Error; err != nil {
				return err
			}

			if err := tx.Model(&entity.BOMItem{}).
				Where("variant_id IN ? AND deleted_at IS NULL", variantIDs).
				Update("deleted_at", now).Error; err != nil {
				return err
			}

			if err := tx.Model(&entity.ColorVariant{}).
				Where("id IN ?", variantIDs).
				Update("deleted_at", now).Error; err != nil {
				return err
			}
		}

		return tx.Model(&entity.Style{}).
			Where("id = ?", id).
			Update("deleted_at", now).Error
	})
}
