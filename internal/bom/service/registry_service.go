package service

import (
	"context"
	"fmt"

	"github.com/bitfantasy/garment-bom/internal/bom/entity"
	"github.com/bitfantasy/garment-bom/internal/bom/repository"
)

// SizeService 尺码字典
type SizeService struct {
	sizeRepo *repository.SizeRepository
}

func NewSizeService(sizeRepo *repository.SizeRepository) *SizeService {
	return &SizeService{sizeRepo: sizeRepo}
}

// SizeInput 尺码创建/更新请求
type SizeInput struct {
	SizeCode  string `json:"size_code" binding:"required"`
	SizeName  string `json:"size_name" binding:"required"`
	SortOrder int    `json:"sort_order"`
	Note      string `json:"note"`
	IsActive  *bool  `json:"is_active"`
}

func (s *SizeService) List(ctx context.Context, params repository.RegistryListParams) ([]entity.Size, int64, error) {
	return s.sizeRepo.List(ctx, params)
}

func (s *SizeService) Get(ctx context.Context, id uint) (*entity.Size, error) {
	size, err := s.sizeRepo.FindByID(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("尺码 #%d 不存在: %w", id, err)
	}
	return size, nil
}

func (s *SizeService) Create(ctx context.Context, input *SizeInput) (*entity.Size, error) {
	size := &entity.Size{
		SizeCode:  input.SizeCode,
		SizeName:  input.SizeName,
		SortOrder: input.SortOrder,
		Note:      input.Note,
		IsActive:  true,
	}
	if input.IsActive != nil {
		size.IsActive = *input.IsActive
	}
	if err := s.sizeRepo.Create(ctx, size); err != nil {
		return nil, fmt.Errorf("创建尺码失败: %w", err)
	}
	return size, nil
}

func (s *SizeService) Update(ctx context.Context, id uint, input *SizeInput) (*entity.Size, error) {
	size, err := s.Get(ctx, id)
	if err != nil {
		return nil, err
	}
	size.SizeCode = input.SizeCode
	size.SizeName = input.SizeName
	size.SortOrder = input.SortOrder
	size.Note = input.Note
	if input.IsActive != nil {
		size.IsActive = *input.IsActive
	}
	if err := s.sizeRepo.Save(ctx, size); err != nil {
		return nil, fmt.Errorf("更新尺码失败: %w", err)
	}
	return size, nil
}

func (s *SizeService) Remove(ctx context.Context, id uint) error {
	if _, err := s.Get(ctx, id); err != nil {
		return err
	}
	return s.sizeRepo.Delete(ctx, id)
}

// UnitService 计量单位字典
type UnitService struct {
	unitRepo *repository.UnitRepository
}

func NewUnitService(unitRepo *repository.UnitRepository) *UnitService {
	return &UnitService{unitRepo: unitRepo}
}

// UnitInput 单位创建/更新请求
type UnitInput struct {
	UnitCode  string `json:"unit_code" binding:"required"`
	UnitName  string `json:"unit_name" binding:"required"`
	SortOrder int    `json:"sort_order"`
	Note      string `json:"note"`
	IsActive  *bool  `json:"is_active"`
}

func (s *UnitService) List(ctx context.Context, params repository.RegistryListParams) ([]entity.Unit, int64, error) {
	return s.unitRepo.List(ctx, params)
}

func (s *UnitService) Get(ctx context.Context, id uint) (*entity.Unit, error) {
	unit, err := s.unitRepo.FindByID(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("单位 #%d 不存在: %w", id, err)
	}
	return unit, nil
}

func (s *UnitService) Create(ctx context.Context, input *UnitInput) (*entity.Unit, error) {
	unit := &entity.Unit{
		UnitCode:  input.UnitCode,
		UnitName:  input.UnitName,
		SortOrder: input.SortOrder,
		Note:      input.Note,
		IsActive:  true,
	}
	if input.IsActive != nil {
		unit.IsActive = *input.IsActive
	}
	if err := s.unitRepo.Create(ctx, unit); err != nil {
		return nil, fmt.Errorf("创建单位失败: %w", err)
	}
	return unit, nil
}

func (s *UnitService) Update(ctx context.Context, id uint, input *UnitInput) (*entity.Unit, error) {
	unit, err := s.Get(ctx, id)
	if err != nil {
		return nil, err
	}
	unit.UnitCode = input.UnitCode
	unit.UnitName = input.UnitName
	unit.SortOrder = input.SortOrder
	unit.Note = input.Note
	if input.IsActive != nil {
		unit.IsActive = *input.IsActive
	}
	if err := s.unitRepo.Save(ctx, unit); err != nil {
		return nil, fmt.Errorf("更新单位失败: %w", err)
	}
	return unit, nil
}

func (s *UnitService) Remove(ctx context.Context, id uint) error {
	if _, err := s.Get(ctx, id); err != nil {
		return err
	}
	return s.unitRepo.Delete(ctx, id)
}
