package models

import "time"

type Project struct {
	ID          uint   `gorm:"primaryKey" json:"id"`
	Name        string `gorm:"index;not null" json:"name"`
	Description string `json:"description"`
	Status      string `gorm:"index;default:'active'" json:"status"`

	// Owner. Every project belongs to exactly one user.
	UserID uint `gorm:"index;not null" json:"user_id"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`

	// Associations are derived at query time (preloads); no entity
	// stores a back-pointer to Project.
	Models       []Model       `gorm:"many2many:project_model_links" json:"models"`
	Datasets     []Dataset     `gorm:"many2many:project_dataset_links" json:"datasets"`
	TrainingRuns []TrainingRun `gorm:"foreignKey:ProjectID" json:"training_runs"`
}
