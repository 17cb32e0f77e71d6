package entity

import "time"

// Style 款号（四级结构的顶层：款号→颜色版本→配料明细→规格明细）
type Style struct {
	ID        uint    `json:"id" gorm:"primaryKey"`
	StyleNo   string  `json:"style_no" gorm:"size:64;not null;index"`
	StyleName string  `json:"style_name" gorm:"size:128;not null"`
	CustomerID *uint  `json:"customer_id" gorm:"index"`
	// CustomerName 客户名称冗余缓存，客户改名或款号换绑时由应用同步
	CustomerName *string    `json:"customer_name" gorm:"size:128"`
	PublicNote   string     `json:"public_note,omitempty" gorm:"type:text"`
	CreatedBy    string     `json:"created_by,omitempty" gorm:"size:64"`
	UpdatedBy    string     `json:"updated_by,omitempty" gorm:"size:64"`
	DeletedAt    *time.Time `json:"deleted_at,omitempty" gorm:"index"`
	CreatedAt    time.Time  `json:"created_at"`
	UpdatedAt    time.Time  `json:"updated_at"`

	// Relations
	Customer      *Customer      `json:"customer,omitempty" gorm:"foreignKey:CustomerID"`
	ColorVariants []ColorVariant `json:"color_variants,omitempty" gorm:"foreignKey:StyleID"`
}

func (Style) TableName() string {
	return "styles"
}
