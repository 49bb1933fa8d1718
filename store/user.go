package store

import (
	"errors"

	"gorm.io/gorm"

	"github.com/democratise-ai/backend/models"
)

// GetUser returns the user with the given id, or (nil, nil) when
// absent.
func GetUser(db *gorm.DB, id uint) (*models.User, error) {
	var user models.User
	if err := db.First(&user, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &user, nil
}

// GetUserByEmail returns the user with the given email, or (nil, nil)
// when no such account exists.
func GetUserByEmail(db *gorm.DB, email string) (*models.User, error) {
	var user models.User
	if err := db.Where("email = ?", email).First(&user).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &user, nil
}

func CreateUser(db *gorm.DB, user *models.User) error {
	return db.Create(user).Error
}

// UpdateUser applies a partial update. Only keys present in updates
// change; updated_at advances automatically.
func UpdateUser(db *gorm.DB, user *models.User, updates map[string]interface{}) error {
	if len(updates) == 0 {
		return nil
	}
	return db.Model(user).Updates(updates).Error
}
