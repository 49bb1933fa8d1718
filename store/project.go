package store

import (
	"errors"

	"gorm.io/gorm"

	"github.com/democratise-ai/backend/models"
)

// GetProject returns a project with its associated models, datasets
// and training runs preloaded, or (nil, nil) when absent.
func GetProject(db *gorm.DB, id uint) (*models.Project, error) {
	var project models.Project
	err := db.
		Preload("Models").
		Preload("Datasets").
		Preload("TrainingRuns").
		First(&project, id).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &project, nil
}

// ListProjectsByOwner returns the user's projects, most recently
// updated first.
func ListProjectsByOwner(db *gorm.DB, userID uint, skip, limit int) ([]models.Project, error) {
	projects := []models.Project{}
	err := db.
		Preload("Models").
		Preload("Datasets").
		Preload("TrainingRuns").
		Where("user_id = ?", userID).
		Order("updated_at DESC").
		Offset(skip).
		Limit(limit).
		Find(&projects).Error
	return projects, err
}

func CreateProject(db *gorm.DB, project *models.Project) error {
	return db.Create(project).Error
}

func UpdateProject(db *gorm.DB, project *models.Project, updates map[string]interface{}) error {
	if len(updates) == 0 {
		return nil
	}
	return db.Model(project).Updates(updates).Error
}

// DeleteProject removes the project row and its association links.
func DeleteProject(db *gorm.DB, project *models.Project) error {
	if err := db.Where("project_id = ?", project.ID).Delete(&models.ProjectModelLink{}).Error; err != nil {
		return err
	}
	if err := db.Where("project_id = ?", project.ID).Delete(&models.ProjectDatasetLink{}).Error; err != nil {
		return err
	}
	return db.Delete(project).Error
}
