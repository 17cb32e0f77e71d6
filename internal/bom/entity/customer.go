package entity

import "time"

// Customer 客户
type Customer struct {
	ID            uint       `json:"id" gorm:"primaryKey"`
	CustomerName  string     `json:"customer_name" gorm:"size:128;not null"`
	ContactPerson string     `json:"contact_person,omitempty" gorm:"size:64"`
	ContactPhone  string     `json:"contact_phone,omitempty" gorm:"size:32"`
	ContactEmail  string     `json:"contact_email,omitempty" gorm:"size:128"`
	Address       string     `json:"address,omitempty" gorm:"size:256"`
	Note          string     `json:"note,omitempty" gorm:"type:text"`
	IsActive      bool       `json:"is_active" gorm:"not null;default:true"`
	DeletedAt     *time.Time `json:"deleted_at,omitempty" gorm:"index"`
	CreatedAt     time.Time  `json:"created_at"`
	UpdatedAt     time.Time  `json:"updated_at"`

	// Relations
	Styles []Style `json:"styles,omitempty" gorm:"foreignKey:CustomerID"`
}

func (Customer) TableName() string {
	return "customers"
}
