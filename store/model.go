package store

import (
	"errors"

	"gorm.io/gorm"

	"github.com/democratise-ai/backend/models"
)

func GetModel(db *gorm.DB, id uint) (*models.Model, error) {
	var model models.Model
	if err := db.First(&model, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &model, nil
}

func ListModels(db *gorm.DB, skip, limit int) ([]models.Model, error) {
	catalog := []models.Model{}
	err := db.
		Order("id").
		Offset(skip).
		Limit(limit).
		Find(&catalog).Error
	return catalog, err
}
