package store

import (
	"math/rand"

	"github.com/google/uuid"
	"github.com/quotely-dev/quotely/internal/models"
	"gorm.io/gorm"
)

// QuoteQueries is the read side: list-all and random pick. The write
// path belongs exclusively to QuoteRepository.
type QuoteQueries struct {
	db *gorm.DB
}

func NewQuoteQueries(conn *gorm.DB) *QuoteQueries {
	return &QuoteQueries{db: conn}
}

func (q *QuoteQueries) ListAll(userID uuid.UUID) ([]models.Quote, error) {
	var quotes []models.Quote

	err := q.db.Where("user_id = ?", userID).
		Preload("Tags").
		Order("created_at DESC").
		Find(&quotes).Error

	if err != nil {
		return nil, err
	}

	return quotes, nil
}

// PickRandom returns one of the user's quotes chosen uniformly, counting
// the eligible set and skipping a random offset over a stable order. The
// tag filter is an exact, case-sensitive name match; note the resolver
// matches case-insensitively, so "Stoic" and "stoic" filter differently
// even though they name the same tag. Existing clients depend on the
// verbatim match, so it stays.
func (q *QuoteQueries) PickRandom(userID uuid.UUID, tagFilter string) (*models.Quote, error) {
	query := q.db.Model(&models.Quote{}).Where("user_id = ?", userID)

	if tagFilter != "" {
		query = query.Where(
			"EXISTS (SELECT 1 FROM quote_tags qt JOIN tags t ON t.id = qt.tag_id WHERE qt.quote_id = quotes.id AND t.name = ?)",
			tagFilter,
		)
	}

	// Session so the count and the select can share the built conditions.
	query = query.Session(&gorm.Session{})

	var count int64

	if err := query.Count(&count).Error; err != nil {
		return nil, err
	}

	if count == 0 {
		return nil, ErrNotFound
	}

	var quote models.Quote

	err := query.Preload("Tags").
		Order("id").
		Offset(rand.Intn(int(count))).
		First(&quote).Error

	if err != nil {
		return nil, err
	}

	return &quote, nil
}
