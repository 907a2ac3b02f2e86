package store

import (
	"errors"

	"github.com/quotely-dev/quotely/internal/models"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"
)

// CredentialStore owns user records and password verification.
type CredentialStore struct {
	db *gorm.DB
}

func NewCredentialStore(conn *gorm.DB) *CredentialStore {
	return &CredentialStore{db: conn}
}

// Register hashes the password and inserts the user. The email unique
// index is the arbiter for duplicates: a concurrent register with the
// same email loses at the constraint, not at an application-level check.
func (s *CredentialStore) Register(email, password string) (*models.User, error) {
	passwordHash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)

	if err != nil {
		return nil, err
	}

	user := models.User{
		Email:        email,
		PasswordHash: string(passwordHash),
	}

	if err := s.db.Create(&user).Error; err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return nil, ErrEmailTaken
		}
		return nil, err
	}

	return &user, nil
}

func (s *CredentialStore) Verify(email, password string) (*models.User, error) {
	var user models.User

	if err := s.db.Where("email = ?", email).First(&user).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrInvalidCredentials
		}
		return nil, err
	}

	if err := bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(password)); err != nil {
		return nil, ErrInvalidCredentials
	}

	return &user, nil
}
