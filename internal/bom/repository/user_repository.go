package repository

import (
	"context"

	"github.com/bitfantasy/garment-bom/internal/bom/entity"
	"gorm.io/gorm"
)

type UserRepository struct {
	db *gorm.DB
}

func NewUserRepository(db *gorm.DB) *UserRepository {
	return &UserRepository{db: db}
}

// Create 创建用户
func (r *UserRepository) Create(ctx context.Context, user *entity.User) error {
	return r.db.WithContext(ctx).Create(user).Error
}

// FindByID 根据ID查找活跃用户
func (r *UserRepository) FindByID(ctx context.Context, id uint) (*entity.User, error) {
	var user entity.User
	err := r.db.WithContext(ctx).
		First(&user, "id = ? AND deleted_at IS NULL", id).Error
	if err != nil {
		return nil, translate(err)
	}
	return &user, nil
}

// FindByUsername 根据用户名查找活跃用户
func (r *UserRepository) FindByUsername(ctx context.Context, username string) (*entity.User, error) {
	var user entity.User
	err := r.db.WithContext(ctx).
		First(&user, "username = ? AND deleted_at IS NULL", username).Error
	if err != nil {
		return nil, translate(err)
	}
	return &user, nil
}

// Save 保存用户
func (r *UserRepository) Save(ctx context.Context, user *entity.User) error {
	return r.db.WithContext(ctx).Save(user).Error
}

// Count 统计活跃用户数
func (r *UserRepository) Count(ctx context.Context) (int64, error) {
	var count int64
	err := r.db.WithContext(ctx).Model(&entity.User{}).
		Where("deleted_at IS NULL").Count(&count).Error
	return count, err
}
