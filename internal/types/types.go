package types

import (
	"time"

	"github.com/google/uuid"
)

const ContextUserKey = "user"

type UserResponse struct {
	ID    uuid.UUID `json:"id"`
	Email string    `json:"email"`
}

// QuoteResponse is the wire shape of a quote; field names are camelCase
// for compatibility with the browser extension.
type QuoteResponse struct {
	ID           uuid.UUID `json:"id"`
	Text         string    `json:"text"`
	SourceTitle  string    `json:"sourceTitle"`
	SourceAuthor string    `json:"sourceAuthor"`
	SourceURL    string    `json:"sourceUrl"`
	Note         string    `json:"note"`
	Tags         []string  `json:"tags"`
	CreatedAt    time.Time `json:"createdAt"`
	UpdatedAt    time.Time `json:"updatedAt"`
}
