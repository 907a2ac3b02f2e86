package models

import "github.com/google/uuid"

// QuoteTag is the quote↔tag join row. The whole set for a quote is
// deleted and rebuilt whenever the quote's tags are edited.
type QuoteTag struct {
	QuoteID uuid.UUID `gorm:"type:uuid;primaryKey"`
	TagID   uuid.UUID `gorm:"type:uuid;primaryKey"`

	// Relationships
	Quote Quote `gorm:"foreignKey:QuoteID;constraint:OnUpdate:Cascade,OnDelete:CASCADE"`
	Tag   Tag   `gorm:"foreignKey:TagID;constraint:OnUpdate:Cascade,OnDelete:CASCADE"`
}
