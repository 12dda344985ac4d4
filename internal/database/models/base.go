package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// BaseModel provides common fields for all catalog entities with UUID primary keys
type BaseModel struct {
	ID          uuid.UUID `json:"id" gorm:"type:uuid;primary_key;default:gen_random_uuid()"`
	CreatedAt   time.Time `json:"created_at"`
	CreatedBy   string    `json:"created_by" gorm:"size:128" validate:"max=128"`
	UpdatedAt   time.Time `json:"updated_at"`
	UpdatedBy   string    `json:"updated_by" gorm:"size:128" validate:"max=128"`
	Name        string    `json:"name" gorm:"size:256;not null" validate:"required,min=1,max=256"` // readable 'id'
	DisplayName string    `json:"display_name" gorm:"size:256" validate:"max=256"`
	Description string    `json:"description" gorm:"type:text"`
}

// BeforeCreate sets the UUID if not already set
func (base *BaseModel) BeforeCreate(tx *gorm.DB) error {
	if base.ID == uuid.Nil {
		base.ID = uuid.New()
	}
	return nil
}
