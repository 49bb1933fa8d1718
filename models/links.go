package models

// Composite-key association rows between projects and the catalogs.
// These back the many2many relations declared on Project.

type ProjectModelLink struct {
	ProjectID uint `gorm:"primaryKey" json:"project_id"`
	ModelID   uint `gorm:"primaryKey" json:"model_id"`
}

type ProjectDatasetLink struct {
	ProjectID uint `gorm:"primaryKey" json:"project_id"`
	DatasetID uint `gorm:"primaryKey" json:"dataset_id"`
}
