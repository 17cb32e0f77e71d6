package entity

import "time"

// SpecDetail 规格明细（叶子行，只做硬删除，不参与软删除）
type SpecDetail struct {
	ID        uint      `json:"id" gorm:"primaryKey"`
	BOMItemID uint      `json:"bom_item_id" gorm:"not null;index"`
	Size      *string   `json:"size" gorm:"size:32"` // 尺码标签，如 "M"、"通码"
	SpecValue string    `json:"spec_value" gorm:"size:64;not null"`
	SpecUnit  string    `json:"spec_unit,omitempty" gorm:"size:16"`
	SortOrder int       `json:"sort_order" gorm:"not null;default:0"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

func (SpecDetail) TableName() string {
	return "spec_details"
}
