package types

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/datatypes"
)

// Interaction type values. The interaction log is append-only: rows are
// never updated or deleted by the application.
const (
	InteractionView     = "view"
	InteractionLike     = "like"
	InteractionPurchase = "purchase"
)

func ValidInteractionType(t string) bool {
	switch t {
	case InteractionView, InteractionLike, InteractionPurchase:
		return true
	default:
		return false
	}
}

type Interaction struct {
	ID        uuid.UUID      `gorm:"type:uuid;default:uuid_generate_v4();primaryKey" json:"id"`
	UserID    uuid.UUID      `gorm:"type:uuid;not null;index" json:"user_id"`
	User      *User          `gorm:"constraint:OnDelete:CASCADE;foreignKey:UserID;references:ID" json:"user,omitempty"`
	ProductID uuid.UUID      `gorm:"type:uuid;not null;index" json:"product_id"`
	Product   *Product       `gorm:"constraint:OnDelete:CASCADE;foreignKey:ProductID;references:ID" json:"product,omitempty"`
	Type      string         `gorm:"column:type;not null;index" json:"type"`
	Data      datatypes.JSON `gorm:"type:jsonb;column:data" json:"data,omitempty"`
	CreatedAt time.Time      `gorm:"not null;default:now()" json:"created_at"`
}

func (Interaction) TableName() string {
	return "user_interaction"
}
