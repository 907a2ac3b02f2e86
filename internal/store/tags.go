package store

import (
	"strings"

	"github.com/google/uuid"
	"github.com/quotely-dev/quotely/internal/models"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// ResolveTags maps requested tag names to the user's tag rows, creating
// any that don't exist yet. It runs on the caller's transaction so tag
// creation commits or rolls back together with the association rewrite.
//
// Names are trimmed, empties dropped, and de-duplicated ignoring case.
// Creation is an insert with ON CONFLICT DO NOTHING followed by a
// re-select, so a concurrent request creating the same tag is absorbed
// rather than surfaced as a constraint error.
func ResolveTags(tx *gorm.DB, userID uuid.UUID, names []string) ([]models.Tag, error) {
	requested := normalizeTagNames(names)

	if len(requested) == 0 {
		return nil, nil
	}

	lowered := make([]string, 0, len(requested))
	for _, name := range requested {
		lowered = append(lowered, strings.ToLower(name))
	}

	var existing []models.Tag

	if err := tx.Where("user_id = ? AND lower(name) IN ?", userID, lowered).
		Find(&existing).Error; err != nil {
		return nil, err
	}

	known := make(map[string]bool, len(existing))
	for _, tag := range existing {
		known[strings.ToLower(tag.Name)] = true
	}

	var missing []models.Tag
	for _, name := range requested {
		if !known[strings.ToLower(name)] {
			missing = append(missing, models.Tag{UserID: userID, Name: name})
		}
	}

	if len(missing) > 0 {
		if err := tx.Clauses(clause.OnConflict{DoNothing: true}).
			Create(&missing).Error; err != nil {
			return nil, err
		}
	}

	// Re-select rather than merging: a conflicting concurrent insert
	// means our in-memory rows may not be the ones that won.
	var resolved []models.Tag

	if err := tx.Where("user_id = ? AND lower(name) IN ?", userID, lowered).
		Find(&resolved).Error; err != nil {
		return nil, err
	}

	return resolved, nil
}

// normalizeTagNames trims, drops empties, and keeps the first casing of
// each case-insensitively distinct name.
func normalizeTagNames(names []string) []string {
	seen := make(map[string]bool, len(names))
	var out []string

	for _, name := range names {
		name = strings.TrimSpace(name)
		if name == "" {
			continue
		}
		key := strings.ToLower(name)
		if seen[key] {
			continue
		}
		seen[key] = true
		out = append(out, name)
	}

	return out
}
