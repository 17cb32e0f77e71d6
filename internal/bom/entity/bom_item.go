package entity

import "time"

// BOMItem 配料明细
type BOMItem struct {
	ID                    uint       `json:"id" gorm:"primaryKey"`
	VariantID             uint       `json:"variant_id" gorm:"not null;index"`
	MaterialName          string     `json:"material_name" gorm:"size:128;not null"`
	MaterialImageURL      *string    `json:"material_image_url" gorm:"size:512"`
	MaterialColorText     string     `json:"material_color_text,omitempty" gorm:"size:64"`
	MaterialColorImageURL *string    `json:"material_color_image_url" gorm:"size:512"`
	Usage                 float64    `json:"usage" gorm:"type:numeric(10,2);not null;default:0"`
	Unit                  string     `json:"unit,omitempty" gorm:"size:16"`
	Supplier              string     `json:"supplier,omitempty" gorm:"size:128"`
	SortOrder             int        `json:"sort_order" gorm:"not null;default:0"`
	DeletedAt             *time.Time `json:"deleted_at,omitempty" gorm:"index"`
	CreatedAt             time.Time  `json:"created_at"`
	UpdatedAt             time.Time  `json:"updated_at"`

	// Relations
	Variant     *ColorVariant `json:"variant,omitempty" gorm:"foreignKey:VariantID"`
	SpecDetails []SpecDetail  `json:"spec_details,omitempty" gorm:"foreignKey:BOMItemID"`
}

func (BOMItem) TableName() string {
	return "bom_items"
}
