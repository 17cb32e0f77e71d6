package repository

import (
	"errors"

	"gorm.io/gorm"
)

// 错误定义
var (
	ErrNotFound = errors.New("record not found")
	ErrConflict = errors.New("duplicate record")
)

// translate 把gorm错误翻译为仓库层错误
func translate(err error) error {
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return ErrNotFound
	}
	return err
}

// Repositories 仓库集合
type Repositories struct {
	Customer *CustomerRepository
	Style    *StyleRepository
	Variant  *VariantRepository
	BOMItem  *BOMItemRepository
	Size     *SizeRepository
	Unit     *UnitRepository
	User     *UserRepository
}

// NewRepositories 创建仓库集合
func NewRepositories(db *gorm.DB) *Repositories {
	return &Repositories{
		Customer: NewCustomerRepository(db),
		Style:    NewStyleRepository(db),
		Variant:  NewVariantRepository(db),
		BOMItem:  NewBOMItemRepository(db),
		Size:     NewSizeRepository(db),
		Unit:     NewUnitRepository(db),
		User:     NewUserRepository(db),
	}
}
