package db

import (
	"github.com/quotely-dev/quotely/internal/models"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
)

func Connect(dsn string) (*gorm.DB, error) {
	return Open(postgres.Open(dsn))
}

// Open exists so tests can supply an in-memory dialector; Connect is the
// production path.
func Open(dialector gorm.Dialector) (*gorm.DB, error) {
	conn, err := gorm.Open(dialector, &gorm.Config{TranslateError: true})

	if err != nil {
		return nil, err
	}

	if err := conn.SetupJoinTable(&models.Quote{}, "Tags", &models.QuoteTag{}); err != nil {
		return nil, err
	}

	return conn, nil
}

func Migrate(conn *gorm.DB) error {
	tables := []interface{}{
		&models.User{},
		&models.Tag{},
		&models.Quote{},
		&models.QuoteTag{},
	}

	for _, table := range tables {
		if err := conn.AutoMigrate(table); err != nil {
			return err
		}
	}

	// Per-user tag names are unique ignoring case; gorm's uniqueIndex tag
	// can't express lower(), so the index is created by hand. Valid on
	// postgres and sqlite.
	return conn.Exec(
		"CREATE UNIQUE INDEX IF NOT EXISTS idx_tags_user_lower_name ON tags (user_id, lower(name))",
	).Error
}
