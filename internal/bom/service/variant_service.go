package service

import (
	"context"
	"fmt"

	"github.com/bitfantasy/garment-bom/internal/bom/entity"
	"github.com/bitfantasy/garment-bom/internal/bom/repository"
)

type VariantService struct {
	variantRepo *repository.VariantRepository
	styleRepo   *repository.StyleRepository
}

func NewVariantService(variantRepo *repository.VariantRepository, styleRepo *repository.StyleRepository) *VariantService {
	return &VariantService{
		variantRepo: variantRepo,
		styleRepo:   styleRepo,
	}
}

// CreateVariantInput 创建颜色版本请求
type CreateVariantInput struct {
	StyleID        uint    `json:"style_id" binding:"required"`
	ColorName      string  `json:"color_name" binding:"required"`
	SampleImageURL *string `json:"sample_image_url"`
	SizeRange      string  `json:"size_range"`
	SortOrder      int     `json:"sort_order"`
}

// UpdateVariantInput 更新颜色版本请求（缺省字段不变）
// sample_image_url使用三态字段：显式null清空样衣图
type UpdateVariantInput struct {
	StyleID        *uint         `json:"style_id"`
	ColorName      *string       `json:"color_name"`
	SampleImageURL Patch[string] `json:"sample_image_url"`
	SizeRange      *string       `json:"size_range"`
	SortOrder      *int          `json:"sort_order"`
}

// CloneVariantInput 克隆颜色版本请求
type CloneVariantInput struct {
	NewColorName    string `json:"new_color_name" binding:"required"`
	CopySampleImage *bool  `json:"copy_sample_image"` // 缺省为true
}

// CloneVariantResult 克隆结果摘要
type CloneVariantResult struct {
	ID              uint   `json:"id"`
	ColorName       string `json:"color_name"`
	ClonedBomCount  int    `json:"cloned_bom_count"`
	ClonedSpecCount int    `json:"cloned_spec_count"`
}

// List 颜色版本分页列表
func (s *VariantService) List(ctx context.Context, params repository.VariantListParams) ([]entity.ColorVariant, int64, error) {
	return s.variantRepo.List(ctx, params)
}

// Get 获取颜色版本
func (s *VariantService) Get(ctx context.Context, id uint) (*entity.ColorVariant, error) {
	variant, err := s.variantRepo.FindByID(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("颜色版本 #%d 不存在: %w", id, err)
	}
	return variant, nil
}

// GetDetail 获取颜色版本及其活跃配料明细、规格明细
func (s *VariantService) GetDetail(ctx context.Context, id uint) (*entity.ColorVariant, error) {
	variant, err := s.variantRepo.FindDetail(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("颜色版本 #%d 不存在: %w", id, err)
	}
	return variant, nil
}

// Create 创建颜色版本；同款号下活跃颜色名必须唯一
func (s *VariantService) Create(ctx context.Context, input *CreateVariantInput) (*entity.ColorVariant, error) {
	if _, err := s.styleRepo.FindByID(ctx, input.StyleID); err != nil {
		return nil, fmt.Errorf("款号 #%d 不存在: %w", input.StyleID, err)
	}

	taken, err := s.variantRepo.NameTaken(ctx, input.StyleID, input.ColorName, 0)
	if err != nil {
		return nil, err
	}
	if taken {
		return nil, fmt.Errorf("颜色 %q 在该款号下已存在: %w", input.ColorName, repository.ErrConflict)
	}

	variant := &entity.ColorVariant{
		StyleID:        input.StyleID,
		ColorName:      input.ColorName,
		SampleImageURL: input.SampleImageURL,
		SizeRange:      input.SizeRange,
		SortOrder:      input.SortOrder,
	}
	if err := s.variantRepo.Create(ctx, variant); err != nil {
		return nil, fmt.Errorf("创建颜色版本失败: %w", err)
	}
	return variant, nil
}

// Update 更新颜色版本；改名（或换款号）时按目标款号重查颜色名占用，排除自身
func (s *VariantService) Update(ctx context.Context, id uint, input *UpdateVariantInput) (*entity.ColorVariant, error) {
	variant, err := s.Get(ctx, id)
	if err != nil {
		return nil, err
	}

	targetStyleID := variant.StyleID
	if input.StyleID != nil {
		if _, err := s.styleRepo.FindByID(ctx, *input.StyleID); err != nil {
			return nil, fmt.Errorf("款号 #%d 不存在: %w", *input.StyleID, err)
		}
		targetStyleID = *input.StyleID
	}
	targetName := variant.ColorName
	if input.ColorName != nil {
		targetName = *input.ColorName
	}

	if targetName != variant.ColorName || targetStyleID != variant.StyleID {
		taken, err := s.variantRepo.NameTaken(ctx, targetStyleID, targetName, id)
		if err != nil {
			return nil, err
		}
		if taken {
			return nil, fmt.Errorf("颜色 %q 在该款号下已存在: %w", targetName, repository.ErrConflict)
		}
	}

	variant.StyleID = targetStyleID
	variant.ColorName = targetName
	if input.SampleImageURL.Set {
		variant.SampleImageURL = input.SampleImageURL.Ptr()
	}
	if input.SizeRange != nil {
		variant.SizeRange = *input.SizeRange
	}
	if input.SortOrder != nil {
		variant.SortOrder = *input.SortOrder
	}

	if err := s.variantRepo.Save(ctx, variant); err != nil {
		return nil, fmt.Errorf("更新颜色版本失败: %w", err)
	}
	return variant, nil
}

// Remove 软删除颜色版本并级联子树，返回删除前快照。
// 颜色名同时重写为 {name}_DEL_{id}，立即释放给新建或改名使用
func (s *VariantService) Remove(ctx context.Context, id uint) (*entity.ColorVariant, error) {
	variant, err := s.GetDetail(ctx, id)
	if err != nil {
		return nil, err
	}

	tombstone := fmt.Sprintf("%s_DEL_%d", variant.ColorName, variant.ID)
	if err := s.variantRepo.DeleteCascade(ctx, id, tombstone); err != nil {
		return nil, fmt.Errorf("删除颜色版本失败: %w", err)
	}
	return variant, nil
}

// Clone 在同一款号下深度克隆颜色版本（含配料明细与规格明细）。
// 源版本必须属于styleID且未删除；新颜色名不得与活跃兄弟冲突
func (s *VariantService) Clone(ctx context.Context, styleID, variantID uint, input *CloneVariantInput) (*CloneVariantResult, error) {
	source, err := s.variantRepo.FindDetail(ctx, variantID)
	if err != nil {
		return nil, fmt.Errorf("颜色版本 #%d 不存在: %w", variantID, err)
	}
	if source.StyleID != styleID {
		return nil, fmt.Errorf("颜色版本 #%d 不属于款号 #%d: %w", variantID, styleID, repository.ErrNotFound)
	}

	taken, err := s.variantRepo.NameTaken(ctx, styleID, input.NewColorName, 0)
	if err != nil {
		return nil, err
	}
	if taken {
		return nil, fmt.Errorf("颜色 %q 在该款号下已存在: %w", input.NewColorName, repository.ErrConflict)
	}

	clone := &entity.ColorVariant{
		StyleID:      styleID,
		ColorName:    input.NewColorName,
		SizeRange:    source.SizeRange,
		SortOrder:    source.SortOrder,
		ClonedFromID: &source.ID,
	}
	if input.CopySampleImage == nil || *input.CopySampleImage {
		clone.SampleImageURL = source.SampleImageURL
	}

	bomCount, specCount, err := s.variantRepo.CloneTree(ctx, source, clone)
	if err != nil {
		return nil, fmt.Errorf("克隆颜色版本失败: %w", err)
	}

	return &CloneVariantResult{
		ID:              clone.ID,
		ColorName:       clone.ColorName,
		ClonedBomCount:  bomCount,
		ClonedSpecCount: specCount,
	}, nil
}
