package store_test

import (
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/quotely-dev/quotely/internal/models"
	"github.com/quotely-dev/quotely/internal/store"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
)

func backdate(t *testing.T, conn *gorm.DB, quoteID uuid.UUID, createdAt time.Time) {
	t.Helper()
	require.NoError(t, conn.Model(&models.Quote{}).Where("id = ?", quoteID).
		UpdateColumn("created_at", createdAt).Error)
}

func TestListAllNewestFirst(t *testing.T) {
	conn := newTestDB(t)
	user := createTestUser(t, conn, "reader@example.com")
	repo := store.NewQuoteRepository(conn)
	queries := store.NewQuoteQueries(conn)

	base := time.Now().Add(-time.Hour)
	var ids []uuid.UUID
	for i, text := range []string{"first", "second", "third"} {
		quote, err := repo.Create(user.ID, store.QuoteInput{Text: text})
		require.NoError(t, err)
		backdate(t, conn, quote.ID, base.Add(time.Duration(i)*time.Minute))
		ids = append(ids, quote.ID)
	}

	quotes, err := queries.ListAll(user.ID)
	require.NoError(t, err)
	require.Len(t, quotes, 3)
	require.Equal(t, ids[2], quotes[0].ID)
	require.Equal(t, ids[1], quotes[1].ID)
	require.Equal(t, ids[0], quotes[2].ID)
}

func TestListAllAttachesTags(t *testing.T) {
	conn := newTestDB(t)
	user := createTestUser(t, conn, "reader@example.com")
	repo := store.NewQuoteRepository(conn)
	queries := store.NewQuoteQueries(conn)

	_, err := repo.Create(user.ID, store.QuoteInput{
		Text: "tagged",
		Tags: []string{"stoic", "morning"},
	})
	require.NoError(t, err)

	quotes, err := queries.ListAll(user.ID)
	require.NoError(t, err)
	require.Len(t, quotes, 1)
	require.ElementsMatch(t, []string{"stoic", "morning"}, quotes[0].TagNames())
}

func TestListAllScopedToOwner(t *testing.T) {
	conn := newTestDB(t)
	alice := createTestUser(t, conn, "alice@example.com")
	bob := createTestUser(t, conn, "bob@example.com")
	repo := store.NewQuoteRepository(conn)
	queries := store.NewQuoteQueries(conn)

	_, err := repo.Create(alice.ID, store.QuoteInput{Text: "alice's"})
	require.NoError(t, err)

	quotes, err := queries.ListAll(bob.ID)
	require.NoError(t, err)
	require.Empty(t, quotes)
}

func TestPickRandomEmpty(t *testing.T) {
	conn := newTestDB(t)
	user := createTestUser(t, conn, "reader@example.com")
	queries := store.NewQuoteQueries(conn)

	_, err := queries.PickRandom(user.ID, "")
	require.ErrorIs(t, err, store.ErrNotFound)
}

func TestPickRandomTagFilterIsCaseSensitive(t *testing.T) {
	conn := newTestDB(t)
	user := createTestUser(t, conn, "reader@example.com")
	repo := store.NewQuoteRepository(conn)
	queries := store.NewQuoteQueries(conn)

	_, err := repo.Create(user.ID, store.QuoteInput{
		Text: "philosophy",
		Tags: []string{"Stoic"},
	})
	require.NoError(t, err)

	quote, err := queries.PickRandom(user.ID, "Stoic")
	require.NoError(t, err)
	require.Equal(t, "philosophy", quote.Text)
	require.Equal(t, []string{"Stoic"}, quote.TagNames())

	// The filter matches the stored casing verbatim, unlike the resolver.
	_, err = queries.PickRandom(user.ID, "stoic")
	require.ErrorIs(t, err, store.ErrNotFound)
}

func TestPickRandomCoversAllEligibleQuotes(t *testing.T) {
	conn := newTestDB(t)
	user := createTestUser(t, conn, "reader@example.com")
	repo := store.NewQuoteRepository(conn)
	queries := store.NewQuoteQueries(conn)

	texts := []string{"one", "two", "three"}
	for _, text := range texts {
		_, err := repo.Create(user.ID, store.QuoteInput{Text: text})
		require.NoError(t, err)
	}

	seen := make(map[string]int)
	for i := 0; i < 300; i++ {
		quote, err := queries.PickRandom(user.ID, "")
		require.NoError(t, err)
		seen[quote.Text]++
	}

	// 300 uniform draws over 3 quotes miss one with probability ~1e-53.
	for _, text := range texts {
		require.Greater(t, seen[text], 0, "quote %q was never picked", text)
	}
}

func TestPickRandomExcludesOtherUsers(t *testing.T) {
	conn := newTestDB(t)
	alice := createTestUser(t, conn, "alice@example.com")
	bob := createTestUser(t, conn, "bob@example.com")
	repo := store.NewQuoteRepository(conn)
	queries := store.NewQuoteQueries(conn)

	_, err := repo.Create(alice.ID, store.QuoteInput{Text: "alice's"})
	require.NoError(t, err)

	_, err = queries.PickRandom(bob.ID, "")
	require.ErrorIs(t, err, store.ErrNotFound)
}
