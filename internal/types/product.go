package types

import (
	"time"

	"github.com/google/uuid"
)

type Product struct {
	ID          uuid.UUID  `gorm:"type:uuid;default:uuid_generate_v4();primaryKey" json:"id"`
	Name        string     `gorm:"not null;column:name" json:"name"`
	Description string     `gorm:"column:description" json:"description,omitempty"`
	Price       float64    `gorm:"not null;column:price" json:"price"`
	CategoryID  *uuid.UUID `gorm:"type:uuid;index" json:"category_id,omitempty"`
	Category    *Category  `gorm:"constraint:OnDelete:SET NULL;foreignKey:CategoryID;references:ID" json:"category,omitempty"`
	CreatedByID uuid.UUID  `gorm:"type:uuid;not null;index" json:"created_by_id"`
	CreatedBy   *User      `gorm:"constraint:OnDelete:CASCADE;foreignKey:CreatedByID;references:ID" json:"created_by,omitempty"`
	Listed      bool       `gorm:"not null;default:true;column:listed" json:"listed"`
	CreatedAt   time.Time  `gorm:"not null;default:now()" json:"created_at"`
	UpdatedAt   time.Time  `gorm:"not null;default:now()" json:"updated_at"`
}

func (Product) TableName() string {
	return "product"
}
