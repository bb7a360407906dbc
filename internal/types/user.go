package types

import (
	"time"

	"github.com/google/uuid"
)

type User struct {
	ID                  uuid.UUID   `gorm:"type:uuid;default:uuid_generate_v4();primaryKey" json:"id"`
	Email               string      `gorm:"uniqueIndex;not null;column:email" json:"email"`
	Password            string      `gorm:"not null;column:password" json:"-"`
	Role                string      `gorm:"not null;default:'user';column:role" json:"role"`
	Name                string      `gorm:"column:name" json:"name"`
	Age                 *int        `gorm:"column:age" json:"age,omitempty"`
	Bio                 string      `gorm:"column:bio" json:"bio,omitempty"`
	Suspended           bool        `gorm:"not null;default:false" json:"suspended"`
	CategoryPreferences []*Category `gorm:"many2many:user_category_preference;" json:"category_preferences,omitempty"`
	CreatedAt           time.Time   `gorm:"not null;default:now()" json:"created_at"`
	UpdatedAt           time.Time   `gorm:"not null;default:now()" json:"updated_at"`
}

func (User) TableName() string {
	return "user"
}

// UserIDAge is the projection used for cohort peer discovery: only users
// with a recorded age are returned, and nothing else about them is loaded.
type UserIDAge struct {
	ID  uuid.UUID `gorm:"column:id"`
	Age int       `gorm:"column:age"`
}
