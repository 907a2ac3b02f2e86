package store_test

import (
	"testing"

	"github.com/quotely-dev/quotely/internal/models"
	"github.com/quotely-dev/quotely/internal/store"
	"github.com/stretchr/testify/require"
)

func TestResolveTagsDeduplicatesCaseInsensitively(t *testing.T) {
	conn := newTestDB(t)
	user := createTestUser(t, conn, "reader@example.com")

	tags, err := store.ResolveTags(conn, user.ID, []string{"Inbox", "inbox", " inbox ", ""})
	require.NoError(t, err)
	require.Len(t, tags, 1)
	require.Equal(t, "Inbox", tags[0].Name)

	var count int64
	require.NoError(t, conn.Model(&models.Tag{}).Count(&count).Error)
	require.EqualValues(t, 1, count)
}

func TestResolveTagsIsIdempotent(t *testing.T) {
	conn := newTestDB(t)
	user := createTestUser(t, conn, "reader@example.com")

	first, err := store.ResolveTags(conn, user.ID, []string{"stoic"})
	require.NoError(t, err)
	require.Len(t, first, 1)

	// A later request in a different casing resolves to the stored row.
	second, err := store.ResolveTags(conn, user.ID, []string{"STOIC"})
	require.NoError(t, err)
	require.Len(t, second, 1)
	require.Equal(t, first[0].ID, second[0].ID)
	require.Equal(t, "stoic", second[0].Name)
}

func TestResolveTagsScopedPerUser(t *testing.T) {
	conn := newTestDB(t)
	alice := createTestUser(t, conn, "alice@example.com")
	bob := createTestUser(t, conn, "bob@example.com")

	aliceTags, err := store.ResolveTags(conn, alice.ID, []string{"inbox"})
	require.NoError(t, err)
	bobTags, err := store.ResolveTags(conn, bob.ID, []string{"inbox"})
	require.NoError(t, err)

	require.NotEqual(t, aliceTags[0].ID, bobTags[0].ID)
	require.Equal(t, alice.ID, aliceTags[0].UserID)
	require.Equal(t, bob.ID, bobTags[0].UserID)
}

func TestResolveTagsEmptyInput(t *testing.T) {
	conn := newTestDB(t)
	user := createTestUser(t, conn, "reader@example.com")

	tags, err := store.ResolveTags(conn, user.ID, []string{"  ", ""})
	require.NoError(t, err)
	require.Empty(t, tags)
}

func TestResolveTagsMixesExistingAndNew(t *testing.T) {
	conn := newTestDB(t)
	user := createTestUser(t, conn, "reader@example.com")

	_, err := store.ResolveTags(conn, user.ID, []string{"stoic"})
	require.NoError(t, err)

	tags, err := store.ResolveTags(conn, user.ID, []string{"Stoic", "poetry"})
	require.NoError(t, err)
	require.Len(t, tags, 2)

	names := []string{tags[0].Name, tags[1].Name}
	require.ElementsMatch(t, []string{"stoic", "poetry"}, names)
}
