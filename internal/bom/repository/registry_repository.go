package repository

import (
	"context"

	"github.com/bitfantasy/garment-bom/internal/bom/entity"
	"gorm.io/gorm"
)

// RegistryListParams 字典表列表查询参数
type RegistryListParams struct {
	Keyword  string
	IsActive *bool
	Page     int
	PageSize int
}

func (p *RegistryListParams) normalize() {
	if p.Page <= 0 {
		p.Page = 1
	}
	if p.PageSize <= 0 || p.PageSize > 100 {
		p.PageSize = 20
	}
}

type SizeRepository struct {
	db *gorm.DB
}

func NewSizeRepository(db *gorm.DB) *SizeRepository {
	return &SizeRepository{db: db}
}

func (r *SizeRepository) Create(ctx context.Context, size *entity.Size) error {
	return r.db.WithContext(ctx).Create(size).Error
}

func (r *SizeRepository) FindByID(ctx context.Context, id uint) (*entity.Size, error) {
	var size entity.Size
	if err := r.db.WithContext(ctx).First(&size, "id = ?", id).Error; err != nil {
		return nil, translate(err)
	}
	return &size, nil
}

func (r *SizeRepository) List(ctx context.Context, params RegistryListParams) ([]entity.Size, int64, error) {
	params.normalize()

	query := r.db.WithContext(ctx).Model(&entity.Size{})
	if params.Keyword != "" {
		like := "%" + params.Keyword + "%"
		query = query.Where("size_code LIKE ? OR size_name LIKE ?", like, like)
	}
	if params.IsActive != nil {
		query = query.Where("is_active = ?", *params.IsActive)
	}

	var total int64
	if err := query.Count(&total).Error; err != nil {
		return nil, 0, err
	}

	var sizes []entity.Size
	err := query.Order("sort_order ASC").
		Offset((params.Page - 1) * params.PageSize).
		Limit(params.PageSize).
		Find(&sizes).Error
	return sizes, total, err
}

func (r *SizeRepository) Save(ctx context.Context, size *entity.Size) error {
	return r.db.WithContext(ctx).Save(size).Error
}

func (r *SizeRepository) Delete(ctx context.Context, id uint) error {
	return r.db.WithContext(ctx).Delete(&entity.Size{}, "id = ?", id).Error
}

type UnitRepository struct {
	db *gorm.DB
}

func NewUnitRepository(db *gorm.DB) *UnitRepository {
	return &UnitRepository{db: db}
}

func (r *UnitRepository) Create(ctx context.Context, unit *entity.Unit) error {
	return r.db.WithContext(ctx).Create(unit).Error
}

func (r *UnitRepository) FindByID(ctx context.Context, id uint) (*entity.Unit, error) {
	var unit entity.Unit
	if err := r.db.WithContext(ctx).First(&unit, "id = ?", id).Error; err != nil {
		return nil, translate(err)
	}
	return &unit, nil
}

func (r *UnitRepository) List(ctx context.Context, params RegistryListParams) ([]entity.Unit, int64, error) {
	params.normalize()

	query := r.db.WithContext(ctx).Model(&entity.Unit{})
	if params.Keyword != "" {
		like := "%" + params.Keyword + "%"
		query = query.Where("unit_code LIKE ? OR unit_name LIKE ?", like, like)
	}
	if params.IsActive != nil {
		query = query.Where("is_active = ?", *params.IsActive)
	}

	var total int64
	if err := query.Count(&total).Error; err != nil {
		return nil, 0, err
	}

	var units []entity.Unit
	err := query.Order("sort_order ASC").
		Offset((params.Page - 1) * params.PageSize).
		Limit(params.PageSize).
		Find(&units).Error
	return units, total, err
}

func (r *UnitRepository) Save(ctx context.Context, unit *entity.Unit) error {
	return r.db.WithContext(ctx).Save(unit).Error
}

func (r *UnitRepository) Delete(ctx context.Context, id uint) error {
	return r.db.WithContext(ctx).Delete(&entity.Unit{}, "id = ?", id).Error
}
