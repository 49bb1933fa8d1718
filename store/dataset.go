package store

import (
	"errors"

	"gorm.io/gorm"

	"github.com/democratise-ai/backend/models"
)

func GetDataset(db *gorm.DB, id uint) (*models.Dataset, error) {
	var dataset models.Dataset
	if err := db.First(&dataset, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &dataset, nil
}

// ListDatasetsVisibleTo returns public datasets plus the user's own,
// most recently updated first.
func ListDatasetsVisibleTo(db *gorm.DB, userID uint, skip, limit int) ([]models.Dataset, error) {
	datasets := []models.Dataset{}
	err := db.
		Where("is_public = ? OR user_id = ?", true, userID).
		Order("updated_at DESC").
		Offset(skip).
		Limit(limit).
		Find(&datasets).Error
	return datasets, err
}

func CreateDataset(db *gorm.DB, dataset *models.Dataset) error {
	return db.Create(dataset).Error
}
