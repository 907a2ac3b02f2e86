package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type Quote struct {
	ID           uuid.UUID `gorm:"type:uuid;primaryKey"`
	UserID       uuid.UUID `gorm:"type:uuid;not null;index"`
	Text         string    `gorm:"not null"`
	SourceTitle  string
	SourceAuthor string
	SourceURL    string
	Note         string
	CreatedAt    time.Time
	UpdatedAt    time.Time

	// Relationships
	User User  `gorm:"foreignKey:UserID;constraint:OnUpdate:Cascade,OnDelete:CASCADE"`
	Tags []Tag `gorm:"many2many:quote_tags"`
}

func (q *Quote) BeforeCreate(tx *gorm.DB) error {
	if q.ID == uuid.Nil {
		q.ID = uuid.New()
	}
	return nil
}

// TagNames flattens the preloaded tag set for API responses.
func (q *Quote) TagNames() []string {
	names := make([]string, 0, len(q.Tags))
	for _, t := range q.Tags {
		names = append(names, t.Name)
	}
	return names
}
