package service

import (
	"github.com/bitfantasy/garment-bom/internal/bom/repository"
	"github.com/bitfantasy/garment-bom/internal/config"
	"github.com/redis/go-redis/v9"
)

// Services 服务集合
type Services struct {
	Auth     *AuthService
	Customer *CustomerService
	Style    *StyleService
	Variant  *VariantService
	BOMItem  *BOMItemService
	Size     *SizeService
	Unit     *UnitService
	Export   *ExportService
	// Storage 在main中按配置单独初始化（对象存储可选）
	Storage *StorageService
}

// NewServices 创建服务集合
func NewServices(repos *repository.Repositories, rdb *redis.Client, cfg *config.Config) *Services {
	styleSvc := NewStyleService(repos.Style, repos.Customer)
	variantSvc := NewVariantService(repos.Variant, repos.Style)

	return &Services{
		Auth:     NewAuthService(repos.User, rdb, cfg),
		Customer: NewCustomerService(repos.Customer, repos.Style),
		Style:    styleSvc,
		Variant:  variantSvc,
		BOMItem:  NewBOMItemService(repos.BOMItem, repos.Variant),
		Size:     NewSizeService(repos.Size),
		Unit:     NewUnitService(repos.Unit),
		Export:   NewExportService(repos.Variant, repos.Style),
	}
}
