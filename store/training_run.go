package store

import (
	"errors"

	"gorm.io/gorm"

	"github.com/democratise-ai/backend/models"
)

func GetTrainingRun(db *gorm.DB, id uint) (*models.TrainingRun, error) {
	var run models.TrainingRun
	if err := db.First(&run, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &run, nil
}

// CreateTrainingRun inserts the run in its initial queued state. No
// queuing or execution happens here; an external executor owns every
// later status transition.
func CreateTrainingRun(db *gorm.DB, run *models.TrainingRun) error {
	run.Status = models.StatusQueued
	return db.Create(run).Error
}
