package models

import "time"

type Dataset struct {
	ID          uint   `gorm:"primaryKey" json:"id"`
	Name        string `gorm:"index;not null" json:"name"`
	Description string `json:"description"`

	// Owner; nil for unowned public datasets.
	UserID *uint `gorm:"index" json:"user_id"`

	StorageType   string `gorm:"not null" json:"storage_type"` // 's3', 'gcs', 'local', 'placeholder'
	StoragePath   string `gorm:"not null" json:"-"`
	FileSizeBytes *int64 `json:"file_size_bytes"`
	IsPublic      bool   `gorm:"index;default:false" json:"is_public"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// OwnedBy reports whether the dataset has an owner and it is the given
// user.
func (d *Dataset) OwnedBy(userID uint) bool {
	return d.UserID != nil && *d.UserID == userID
}
