package service

import (
	"context"
	"fmt"

	"github.com/bitfantasy/garment-bom/internal/bom/entity"
	"github.com/bitfantasy/garment-bom/internal/bom/repository"
)

type CustomerService struct {
	customerRepo *repository.CustomerRepository
	styleRepo    *repository.StyleRepository
}

func NewCustomerService(customerRepo *repository.CustomerRepository, styleRepo *repository.StyleRepository) *CustomerService {
	return &CustomerService{
		customerRepo: customerRepo,
		styleRepo:    styleRepo,
	}
}

// CreateCustomerInput 创建客户请求
type CreateCustomerInput struct {
	CustomerName  string `json:"customer_name" binding:"required"`
	ContactPerson string `json:"contact_person"`
	ContactPhone  string `json:"contact_phone"`
	ContactEmail  string `json:"contact_email"`
	Address       string `json:"address"`
	Note          string `json:"note"`
}

// UpdateCustomerInput 更新客户请求（缺省字段不变）
type UpdateCustomerInput struct {
	CustomerName  *string `json:"customer_name"`
	ContactPerson *string `json:"contact_person"`
	ContactPhone  *string `json:"contact_phone"`
	ContactEmail  *string `json:"contact_email"`
	Address       *string `json:"address"`
	Note          *string `json:"note"`
	IsActive      *bool   `json:"is_active"`
}

// List 客户分页列表
func (s *CustomerService) List(ctx context.Context, params repository.CustomerListParams) ([]entity.Customer, int64, error) {
	return s.customerRepo.List(ctx, params)
}

// Get 获取客户
func (s *CustomerService) Get(ctx context.Context, id uint) (*entity.Customer, error) {
	customer, err := s.customerRepo.FindByID(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("客户 #%d 不存在: %w", id, err)
	}
	return customer, nil
}

// Create 创建客户
func (s *CustomerService) Create(ctx context.Context, input *CreateCustomerInput) (*entity.Customer, error) {
	customer := &entity.Customer{
		CustomerName:  input.CustomerName,
		ContactPerson: input.ContactPerson,
		ContactPhone:  input.ContactPhone,
		ContactEmail:  input.ContactEmail,
		Address:       input.Address,
		Note:          input.Note,
		IsActive:      true,
	}
	if err := s.customerRepo.Create(ctx, customer); err != nil {
		return nil, fmt.Errorf("创建客户失败: %w", err)
	}
	return customer, nil
}

// Update 更新客户；客户名变更时同步刷新所有关联款号的冗余客户名，
// 刷新在响应返回前完成
func (s *CustomerService) Update(ctx context.Context, id uint, input *UpdateCustomerInput) (*entity.Customer, error) {
	customer, err := s.Get(ctx, id)
	if err != nil {
		return nil, err
	}

	if input.CustomerName != nil {
		customer.CustomerName = *input.CustomerName
	}
	if input.ContactPerson != nil {
		customer.ContactPerson = *input.ContactPerson
	}
	if input.ContactPhone != nil {
		customer.ContactPhone = *input.ContactPhone
	}
	if input.ContactEmail != nil {
		customer.ContactEmail = *input.ContactEmail
	}
	if input.Address != nil {
		customer.Address = *input.Address
	}
	if input.Note != nil {
		customer.Note = *input.Note
	}
	if input.IsActive != nil {
		customer.IsActive = *input.IsActive
	}

	if err := s.customerRepo.Save(ctx, customer); err != nil {
		return nil, fmt.Errorf("更新客户失败: %w", err)
	}

	if input.CustomerName != nil {
		if err := s.styleRepo.SyncCustomerName(ctx, id, *input.CustomerName); err != nil {
			return nil, fmt.Errorf("同步款号客户名失败: %w", err)
		}
	}

	return customer, nil
}

// Remove 软删除客户，返回删除前快照
func (s *CustomerService) Remove(ctx context.Context, id uint) (*entity.Customer, error) {
	customer, err := s.Get(ctx, id)
	if err != nil {
		return nil, err
	}
	if err := s.customerRepo.SoftDelete(ctx, id); err != nil {
		return nil, fmt.Errorf("删除客户失败: %w", err)
	}
	return customer, nil
}
