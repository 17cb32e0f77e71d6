package repository

import (
	"context"
	"time"

	"github.com/bitfantasy/garment-bom/internal/bom/entity"
	"gorm.io/gorm"
)

type CustomerRepository struct {
	db *gorm.DB
}

func NewCustomerRepository(db *gorm.DB) *CustomerRepository {
	return &CustomerRepository{db: db}
}

// CustomerListParams 客户列表查询参数
type CustomerListParams struct {
	Keyword  string
	IsActive *bool
	Page     int
	PageSize int
}

// Create 创建客户
func (r *CustomerRepository) Create(ctx context.Context, customer *entity.Customer) error {
	return r.db.WithContext(ctx).Create(customer).Error
}

// FindByID 根据ID查找活跃客户
func (r *CustomerRepository) FindByID(ctx context.Context, id uint) (*entity.Customer, error) {
	var customer entity.Customer
	err := r.db.WithContext(ctx).
		First(&customer, "id = ? AND deleted_at IS NULL", id).Error
	if err != nil {
		return nil, translate(err)
	}
	return &customer, nil
}

// List 客户分页列表（默认排除已删除）
func (r *CustomerRepository) List(ctx context.Context, params CustomerListParams) ([]entity.Customer, int64, error) {
	if params.Page <= 0 {
		params.Page = 1
	}
	if params.PageSize <= 0 || params.PageSize > 100 {
		params.PageSize = 20
	}

	query := r.db.WithContext(ctx).Model(&entity.Customer{}).Where("deleted_at IS NULL")
	if params.Keyword != "" {
		like := "%" + params.Keyword + "%"
		query = query.Where("customer_name LIKE ? OR contact_person LIKE ?", like, like)
	}
	if params.IsActive != nil {
		query = query.Where("is_active = ?", *params.IsActive)
	}

	var total int64
	if err := query.Count(&total).Error; err != nil {
		return nil, 0, err
	}

	var customers []entity.Customer
	err := query.Order("created_at DESC").
		Offset((params.Page - 1) * params.PageSize).
		Limit(params.PageSize).
		Find(&customers).Error
	return customers, total, err
}

// Save 保存客户
func (r *CustomerRepository) Save(ctx context.Context, customer *entity.Customer) error {
	return r.db.WithContext(ctx).Save(customer).Error
}

// SoftDelete 软删除客户
func (r *CustomerRepository) SoftDelete(ctx context.Context, id uint) error {
	return r.db.WithContext(ctx).Model(&entity.Customer{}).
		Where("id = ? AND deleted_at IS NULL", id).
		Update("deleted_at", time.Now()).Error
}
