package entity

import "time"

// Size 尺码字典
type Size struct {
	ID        uint      `json:"id" gorm:"primaryKey"`
	SizeCode  string    `json:"size_code" gorm:"size:32;not null"`
	SizeName  string    `json:"size_name" gorm:"size:64;not null"`
	SortOrder int       `json:"sort_order" gorm:"not null;default:0"`
	Note      string    `json:"note,omitempty" gorm:"type:text"`
	IsActive  bool      `json:"is_active" gorm:"not null;default:true"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

func (Size) TableName() string {
	return "sizes"
}

// Unit 计量单位字典
type Unit struct {
	ID        uint      `json:"id" gorm:"primaryKey"`
	UnitCode  string    `json:"unit_code" gorm:"size:32;not null"`
	UnitName  string    `json:"unit_name" gorm:"size:64;not null"`
	SortOrder int       `json:"sort_order" gorm:"not null;default:0"`
	Note      string    `json:"note,omitempty" gorm:"type:text"`
	IsActive  bool      `json:"is_active" gorm:"not null;default:true"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

func (Unit) TableName() string {
	return "units"
}
