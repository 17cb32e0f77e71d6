package service

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/bitfantasy/garment-bom/internal/bom/entity"
	"github.com/bitfantasy/garment-bom/internal/bom/repository"
	"github.com/jinzhu/copier"
)

type BOMItemService struct {
	bomItemRepo *repository.BOMItemRepository
	variantRepo *repository.VariantRepository
}

func NewBOMItemService(bomItemRepo *repository.BOMItemRepository, variantRepo *repository.VariantRepository) *BOMItemService {
	return &BOMItemService{
		bomItemRepo: bomItemRepo,
		variantRepo: variantRepo,
	}
}

// SpecDetailInput 规格明细行
type SpecDetailInput struct {
	Size      *string `json:"size"` // nil表示通码
	SpecValue string  `json:"spec_value" binding:"required"`
	SpecUnit  string  `json:"spec_unit"`
	SortOrder int     `json:"sort_order"`
}

// CreateBOMItemInput 创建配料明细请求（可携带规格明细一并创建）
type CreateBOMItemInput struct {
	VariantID             uint              `json:"variant_id" binding:"required"`
	MaterialName          string            `json:"material_name" binding:"required"`
	MaterialImageURL      *string           `json:"material_image_url"`
	MaterialColorText     string            `json:"material_color_text"`
	MaterialColorImageURL *string           `json:"material_color_image_url"`
	Usage                 float64           `json:"usage"`
	Unit                  string            `json:"unit"`
	Supplier              string            `json:"supplier"`
	SortOrder             int               `json:"sort_order"`
	SpecDetails           []SpecDetailInput `json:"spec_details"`
}

// UpdateBOMItemInput 更新配料明细请求（缺省字段不变）
// spec_details出现时整体替换该配料的规格明细（先删后插，空数组清空）；
// 两个图片字段用三态表达显式清空
type UpdateBOMItemInput struct {
	MaterialName          *string           `json:"material_name"`
	MaterialImageURL      Patch[string]     `json:"material_image_url"`
	MaterialColorText     *string           `json:"material_color_text"`
	MaterialColorImageURL Patch[string]     `json:"material_color_image_url"`
	Usage                 *float64          `json:"usage"`
	Unit                  *string           `json:"unit"`
	Supplier              *string           `json:"supplier"`
	SortOrder             *int              `json:"sort_order"`
	SpecDetails           []SpecDetailInput `json:"spec_details"`
	specDetailsSet        bool
}

// UnmarshalJSON 记录spec_details是否出现在载荷中，缺省不触发替换
func (in *UpdateBOMItemInput) UnmarshalJSON(data []byte) error {
	type plain UpdateBOMItemInput
	var p plain
	if err := json.Unmarshal(data, &p); err != nil {
		return err
	}
	*in = UpdateBOMItemInput(p)
	in.specDetailsSet = jsonHasKey(data, "spec_details")
	return nil
}

// List 配料明细分页列表
func (s *BOMItemService) List(ctx context.Context, params repository.BOMItemListParams) ([]entity.BOMItem, int64, error) {
	return s.bomItemRepo.List(ctx, params)
}

// Get 获取配料明细（带规格明细）
func (s *BOMItemService) Get(ctx context.Context, id uint) (*entity.BOMItem, error) {
	item, err := s.bomItemRepo.FindByID(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("配料明细 #%d 不存在: %w", id, err)
	}
	return item, nil
}

// Create 创建配料明细；规格明细随配料一并落库
func (s *BOMItemService) Create(ctx context.Context, input *CreateBOMItemInput) (*entity.BOMItem, error) {
	if _, err := s.variantRepo.FindByID(ctx, input.VariantID); err != nil {
		return nil, fmt.Errorf("颜色版本 #%d 不存在: %w", input.VariantID, err)
	}

	var item entity.BOMItem
	if err := copier.Copy(&item, input); err != nil {
		return nil, fmt.Errorf("组装配料明细失败: %w", err)
	}

	if err := s.bomItemRepo.Create(ctx, &item); err != nil {
		return nil, fmt.Errorf("创建配料明细失败: %w", err)
	}
	return s.Get(ctx, item.ID)
}

// Update 更新配料明细；载荷带spec_details时整体替换规格明细
func (s *BOMItemService) Update(ctx context.Context, id uint, input *UpdateBOMItemInput) (*entity.BOMItem, error) {
	item, err := s.Get(ctx, id)
	if err != nil {
		return nil, err
	}

	if input.MaterialName != nil {
		item.MaterialName = *input.MaterialName
	}
	if input.MaterialImageURL.Set {
		item.MaterialImageURL = input.MaterialImageURL.Ptr()
	}
	if input.MaterialColorText != nil {
		item.MaterialColorText = *input.MaterialColorText
	}
	if input.MaterialColorImageURL.Set {
		item.MaterialColorImageURL = input.MaterialColorImageURL.Ptr()
	}
	if input.Usage != nil {
		item.Usage = *input.Usage
	}
	if input.Unit != nil {
		item.Unit = *input.Unit
	}
	if input.Supplier != nil {
		item.Supplier = *input.Supplier
	}
	if input.SortOrder != nil {
		item.SortOrder = *input.SortOrder
	}

	var specs []entity.SpecDetail
	if input.specDetailsSet {
		if err := copier.Copy(&specs, input.SpecDetails); err != nil {
			return nil, fmt.Errorf("组装规格明细失败: %w", err)
		}
	}

	if err := s.bomItemRepo.UpdateWithSpecs(ctx, item, specs, input.specDetailsSet); err != nil {
		return nil, fmt.Errorf("更新配料明细失败: %w", err)
	}
	return s.Get(ctx, id)
}

// Remove 软删除配料明细（规格明细硬删除），返回删除前快照
func (s *BOMItemService) Remove(ctx context.Context, id uint) (*entity.BOMItem, error) {
	item, err := s.Get(ctx, id)
	if err != nil {
		return nil, err
	}
	if err := s.bomItemRepo.DeleteCascade(ctx, id); err != nil {
		return nil, fmt.Errorf("删除配料明细失败: %w", err)
	}
	return item, nil
}

// ListSpecs 获取配料明细的规格明细
func (s *BOMItemService) ListSpecs(ctx context.Context, itemID uint) ([]entity.SpecDetail, error) {
	if _, err := s.Get(ctx, itemID); err != nil {
		return nil, err
	}
	return s.bomItemRepo.ListSpecs(ctx, itemID)
}

// CreateSpec 追加单条规格明细
func (s *BOMItemService) CreateSpec(ctx context.Context, itemID uint, input *SpecDetailInput) (*entity.SpecDetail, error) {
	if _, err := s.Get(ctx, itemID); err != nil {
		return nil, err
	}
	spec := &entity.SpecDetail{
		BOMItemID: itemID,
		Size:      input.Size,
		SpecValue: input.SpecValue,
		SpecUnit:  input.SpecUnit,
		SortOrder: input.SortOrder,
	}
	if err := s.bomItemRepo.CreateSpec(ctx, spec); err != nil {
		return nil, fmt.Errorf("创建规格明细失败: %w", err)
	}
	return spec, nil
}

// UpdateSpec 更新单条规格明细
func (s *BOMItemService) UpdateSpec(ctx context.Context, id uint, input *SpecDetailInput) (*entity.SpecDetail, error) {
	spec, err := s.bomItemRepo.FindSpecByID(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("规格明细 #%d 不存在: %w", id, err)
	}
	spec.Size = input.Size
	spec.SpecValue = input.SpecValue
	spec.SpecUnit = input.SpecUnit
	spec.SortOrder = input.SortOrder
	if err := s.bomItemRepo.SaveSpec(ctx, spec); err != nil {
		return nil, fmt.Errorf("更新规格明细失败: %w", err)
	}
	return spec, nil
}

// RemoveSpec 硬删除单条规格明细
func (s *BOMItemService) RemoveSpec(ctx context.Context, id uint) error {
	if _, err := s.bomItemRepo.FindSpecByID(ctx, id); err != nil {
		return fmt.Errorf("规格明细 #%d 不存在: %w", id, err)
	}
	return s.bomItemRepo.DeleteSpec(ctx, id)
}
