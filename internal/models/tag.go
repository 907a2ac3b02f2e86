package models

import (
	"github.com/google/uuid"
	"gorm.io/gorm"
)

// Tag names are unique per user, compared case-insensitively; the index
// on (user_id, lower(name)) enforcing that lives in db.Migrate because
// gorm tags cannot express a functional index.
type Tag struct {
	ID     uuid.UUID `gorm:"type:uuid;primaryKey"`
	UserID uuid.UUID `gorm:"type:uuid;not null;index"`
	Name   string    `gorm:"not null"`

	// Relationships
	User User `gorm:"foreignKey:UserID;constraint:OnUpdate:Cascade,OnDelete:CASCADE"`
}

func (t *Tag) BeforeCreate(tx *gorm.DB) error {
	if t.ID == uuid.Nil {
		t.ID = uuid.New()
	}
	return nil
}
