package store_test

import (
	"fmt"
	"testing"

	"github.com/glebarez/sqlite"
	"github.com/google/uuid"
	"github.com/quotely-dev/quotely/db"
	"github.com/quotely-dev/quotely/internal/models"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
)

// newTestDB opens a private in-memory database with the production
// schema, functional tag index included.
func newTestDB(t *testing.T) *gorm.DB {
	t.Helper()

	dsn := fmt.Sprintf("file:%s?mode=memory&cache=shared", uuid.NewString())
	conn, err := db.Open(sqlite.Open(dsn))
	require.NoError(t, err)
	require.NoError(t, db.Migrate(conn))

	return conn
}

func createTestUser(t *testing.T, conn *gorm.DB, email string) *models.User {
	t.Helper()

	user := models.User{Email: email, PasswordHash: "x"}
	require.NoError(t, conn.Create(&user).Error)

	return &user
}
