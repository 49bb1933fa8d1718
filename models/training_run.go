package models

import (
	"time"

	"gorm.io/datatypes"
)

// Training run statuses. Only the transition into StatusQueued happens
// here; everything after that belongs to the (external) executor.
const (
	StatusQueued    = "queued"
	StatusStarting  = "starting"
	StatusRunning   = "running"
	StatusCompleted = "completed"
	StatusFailed    = "failed"
)

type TrainingRun struct {
	ID uint `gorm:"primaryKey" json:"id"`

	ProjectID uint `gorm:"index;not null" json:"project_id"`
	UserID    uint `gorm:"index;not null" json:"user_id"` // initiator
	ModelID   uint `gorm:"index;not null" json:"model_id"`
	DatasetID uint `gorm:"index;not null" json:"dataset_id"`

	Status string `gorm:"index;not null" json:"status"`

	// Opaque documents; their shape is owned by the executor.
	ConfigParams datatypes.JSONMap `json:"config_params"`
	Metrics      datatypes.JSONMap `json:"metrics"`

	LogsLocation string     `json:"logs_location"`
	StartedAt    *time.Time `json:"started_at"`
	CompletedAt  *time.Time `json:"completed_at"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}
