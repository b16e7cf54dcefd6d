package store

import (
	"context"
	"errors"

	"github.com/pcote/learningmachine/internal/models"
	"gorm.io/gorm"
)

// UserExists reports whether a user row exists for the given email.
func (s *Store) UserExists(ctx context.Context, email string) (bool, error) {
	var user models.User

	err := s.db.WithContext(ctx).Where("email = ?", email).First(&user).Error

	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return false, nil
		}
		return false, err
	}

	return true, nil
}

// AddUser inserts a new user row. A second insert for the same email hits
// the primary key on users.email and comes back as a constraint error;
// callers are expected to check UserExists first.
func (s *Store) AddUser(ctx context.Context, email, displayName string) error {
	user := models.User{
		Email:       email,
		DisplayName: displayName,
	}

	return s.db.WithContext(ctx).Create(&user).Error
}
