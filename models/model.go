package models

import "time"

// Model is a catalog entry for a trainable model. There is no
// ownership field: the catalog is globally readable.
type Model struct {
	ID               uint   `gorm:"primaryKey" json:"id"`
	Name             string `gorm:"index;not null" json:"name"`
	Description      string `json:"description"`
	SourceType       string `gorm:"index;not null" json:"source_type"` // 'huggingface', 'user_uploaded', 'platform'
	SourceIdentifier string `gorm:"index;not null" json:"source_identifier"`
	TaskType         string `gorm:"index" json:"task_type"`
	Framework        string `gorm:"index" json:"framework"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}
