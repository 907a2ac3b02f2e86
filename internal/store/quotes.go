package store

import (
	"errors"

	"github.com/google/uuid"
	"github.com/quotely-dev/quotely/internal/models"
	"gorm.io/gorm"
)

type QuoteInput struct {
	Text         string
	SourceTitle  string
	SourceAuthor string
	SourceURL    string
	Note         string
	Tags         []string
}

// QuoteRepository owns the quote write path. Every mutation runs in one
// transaction spanning the field write, the association rewrite, and any
// lazy tag creation, so no partial state is ever visible.
type QuoteRepository struct {
	db *gorm.DB
}

func NewQuoteRepository(conn *gorm.DB) *QuoteRepository {
	return &QuoteRepository{db: conn}
}

func (r *QuoteRepository) Create(userID uuid.UUID, input QuoteInput) (*models.Quote, error) {
	quote := models.Quote{
		UserID:       userID,
		Text:         input.Text,
		SourceTitle:  input.SourceTitle,
		SourceAuthor: input.SourceAuthor,
		SourceURL:    input.SourceURL,
		Note:         input.Note,
	}

	err := r.db.Transaction(func(tx *gorm.DB) error {
		if err := tx.Omit("Tags").Create(&quote).Error; err != nil {
			return err
		}

		tags, err := ResolveTags(tx, userID, input.Tags)

		if err != nil {
			return err
		}

		if err := associate(tx, quote.ID, tags); err != nil {
			return err
		}

		quote.Tags = tags
		return nil
	})

	if err != nil {
		return nil, err
	}

	return &quote, nil
}

func (r *QuoteRepository) Update(userID, quoteID uuid.UUID, input QuoteInput) (*models.Quote, error) {
	var quote models.Quote

	err := r.db.Transaction(func(tx *gorm.DB) error {
		// Ownership and existence are one check: another user's quote
		// looks exactly like a missing one.
		if err := tx.Where("id = ? AND user_id = ?", quoteID, userID).
			First(&quote).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return ErrNotFound
			}
			return err
		}

		quote.Text = input.Text
		quote.SourceTitle = input.SourceTitle
		quote.SourceAuthor = input.SourceAuthor
		quote.SourceURL = input.SourceURL
		quote.Note = input.Note

		if err := tx.Omit("Tags").Save(&quote).Error; err != nil {
			return err
		}

		if err := tx.Where("quote_id = ?", quote.ID).
			Delete(&models.QuoteTag{}).Error; err != nil {
			return err
		}

		tags, err := ResolveTags(tx, userID, input.Tags)

		if err != nil {
			return err
		}

		if err := associate(tx, quote.ID, tags); err != nil {
			return err
		}

		quote.Tags = tags
		return nil
	})

	if err != nil {
		return nil, err
	}

	return &quote, nil
}

func (r *QuoteRepository) Delete(userID, quoteID uuid.UUID) error {
	return r.db.Transaction(func(tx *gorm.DB) error {
		var quote models.Quote

		if err := tx.Where("id = ? AND user_id = ?", quoteID, userID).
			First(&quote).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return ErrNotFound
			}
			return err
		}

		if err := tx.Where("quote_id = ?", quote.ID).
			Delete(&models.QuoteTag{}).Error; err != nil {
			return err
		}

		return tx.Delete(&quote).Error
	})
}

func associate(tx *gorm.DB, quoteID uuid.UUID, tags []models.Tag) error {
	if len(tags) == 0 {
		return nil
	}

	rows := make([]models.QuoteTag, 0, len(tags))
	for _, tag := range tags {
		rows = append(rows, models.QuoteTag{QuoteID: quoteID, TagID: tag.ID})
	}

	return tx.Create(&rows).Error
}
