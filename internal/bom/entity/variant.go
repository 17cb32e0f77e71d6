package entity

import "time"

// ColorVariant 颜色版本
// 同一款号下的活跃（未删除）颜色版本 color_name 必须唯一；
// 软删除时应用层会把 color_name 重写为 {name}_DEL_{id} 以释放名称
type ColorVariant struct {
	ID             uint       `json:"id" gorm:"primaryKey"`
	StyleID        uint       `json:"style_id" gorm:"not null;index"`
	ColorName      string     `json:"color_name" gorm:"size:64;not null"`
	SampleImageURL *string    `json:"sample_image_url" gorm:"size:512"`
	SizeRange      string     `json:"size_range,omitempty" gorm:"size:64"` // 如 "S/M/L"
	SortOrder      int        `json:"sort_order" gorm:"not null;default:0"`
	ClonedFromID   *uint      `json:"cloned_from_id,omitempty"` // 克隆来源，仅做溯源
	DeletedAt      *time.Time `json:"deleted_at,omitempty" gorm:"index"`
	CreatedAt      time.Time  `json:"created_at"`
	UpdatedAt      time.Time  `json:"updated_at"`

	// Relations
	Style    *Style    `json:"style,omitempty" gorm:"foreignKey:StyleID"`
	BOMItems []BOMItem `json:"bom_items,omitempty" gorm:"foreignKey:VariantID"`
}

func (ColorVariant) TableName() string {
	return "color_variants"
}
