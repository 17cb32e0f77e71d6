package service

import (
	"context"
	"errors"
	"fmt"

	"github.com/bitfantasy/garment-bom/internal/bom/entity"
	"github.com/bitfantasy/garment-bom/internal/bom/repository"
)

type StyleService struct {
	styleRepo    *repository.StyleRepository
	customerRepo *repository.CustomerRepository
}

func NewStyleService(styleRepo *repository.StyleRepository, customerRepo *repository.CustomerRepository) *StyleService {
	return &StyleService{
		styleRepo:    styleRepo,
		customerRepo: customerRepo,
	}
}

// CreateStyleInput 创建款号请求
type CreateStyleInput struct {
	StyleNo    string `json:"style_no" binding:"required"`
	StyleName  string `json:"style_name" binding:"required"`
	CustomerID *uint  `json:"customer_id"`
	PublicNote string `json:"public_note"`
}

// UpdateStyleInput 更新款号请求（缺省字段不变）
// customer_id使用三态字段：显式null解绑客户并清空冗余客户名
type UpdateStyleInput struct {
	StyleNo    *string     `json:"style_no"`
	StyleName  *string     `json:"style_name"`
	CustomerID Patch[uint] `json:"customer_id"`
	PublicNote *string     `json:"public_note"`
}

// List 款号分页列表
func (s *StyleService) List(ctx context.Context, params repository.StyleListParams) ([]entity.Style, int64, error) {
	return s.styleRepo.List(ctx, params)
}

// Get 获取款号
func (s *StyleService) Get(ctx context.Context, id uint) (*entity.Style, error) {
	style, err := s.styleRepo.FindByID(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("款号 #%d 不存在: %w", id, err)
	}
	return style, nil
}

// GetDetail 获取款号及其活跃颜色版本
func (s *StyleService) GetDetail(ctx context.Context, id uint) (*entity.Style, error) {
	style, err := s.styleRepo.FindDetail(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("款号 #%d 不存在: %w", id, err)
	}
	return style, nil
}

// Create 创建款号；绑定客户时写入时点快照的冗余客户名
func (s *StyleService) Create(ctx context.Context, input *CreateStyleInput, createdBy string) (*entity.Style, error) {
	style := &entity.Style{
		StyleNo:    input.StyleNo,
		StyleName:  input.StyleName,
		CustomerID: input.CustomerID,
		PublicNote: input.PublicNote,
		CreatedBy:  createdBy,
		UpdatedBy:  createdBy,
	}

	if input.CustomerID != nil {
		customer, err := s.customerRepo.FindByID(ctx, *input.CustomerID)
		if err != nil {
			if errors.Is(err, repository.ErrNotFound) {
				return nil, fmt.Errorf("客户 #%d 不存在: %w", *input.CustomerID, err)
			}
			return nil, err
		}
		style.CustomerName = &customer.CustomerName
	}

	if err := s.styleRepo.Create(ctx, style); err != nil {
		return nil, fmt.Errorf("创建款号失败: %w", err)
	}
	return style, nil
}

// Update 更新款号；换绑客户时冗余客户名随之刷新，解绑时一并清空
func (s *StyleService) Update(ctx context.Context, id uint, input *UpdateStyleInput, updatedBy string) (*entity.Style, error) {
	style, err := s.Get(ctx, id)
	if err != nil {
		return nil, err
	}

	if input.StyleNo != nil {
		style.StyleNo = *input.StyleNo
	}
	if input.StyleName != nil {
		style.StyleName = *input.StyleName
	}
	if input.PublicNote != nil {
		style.PublicNote = *input.PublicNote
	}
	if input.CustomerID.Set {
		if input.CustomerID.Valid {
			customer, err := s.customerRepo.FindByID(ctx, input.CustomerID.Value)
			if err != nil {
				if errors.Is(err, repository.ErrNotFound) {
					return nil, fmt.Errorf("客户 #%d 不存在: %w", input.CustomerID.Value, err)
				}
				return nil, err
			}
			style.CustomerID = &customer.ID
			style.CustomerName = &customer.CustomerName
		} else {
			style.CustomerID = nil
			style.CustomerName = nil
		}
	}
	style.UpdatedBy = updatedBy

	if err := s.styleRepo.Save(ctx, style); err != nil {
		return nil, fmt.Errorf("更新款号失败: %w", err)
	}
	return style, nil
}

// Remove 软删除款号并级联整棵子树，返回删除前快照
func (s *StyleService) Remove(ctx context.Context, id uint) (*entity.Style, error) {
	style, err := s.GetDetail(ctx, id)
	if err != nil {
		return nil, err
	}
	if err := s.styleRepo.DeleteCascade(ctx, id); err != nil {
		return nil, fmt.Errorf("删除款号失败: %w", err)
	}
	return style, nil
}
