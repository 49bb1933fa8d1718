// Package authz holds the per-resource authorization predicates.
// Handlers call these AFTER the existence check: a nonexistent id must
// surface as 404 for everyone, so an unauthorized caller never learns
// whether the resource exists.
package authz

import (
	"github.com/democratise-ai/backend/apperr"
	"github.com/democratise-ai/backend/models"
)

// ProjectAccess authorizes a fetched project: owner only.
func ProjectAccess(project *models.Project, user *models.User) error {
	if project.UserID != user.ID {
		return apperr.Forbidden("Not authorized to access this project")
	}
	return nil
}

// DatasetAccess authorizes a fetched dataset: public, or owner.
func DatasetAccess(dataset *models.Dataset, user *models.User) error {
	if dataset.IsPublic || dataset.OwnedBy(user.ID) {
		return nil
	}
	return apperr.Forbidden("Not authorized to access this dataset")
}

// TrainingRunAccess authorizes a fetched training run: initiator only.
func TrainingRunAccess(run *models.TrainingRun, user *models.User) error {
	if run.UserID != user.ID {
		return apperr.Forbidden("Not authorized to view this training job")
	}
	return nil
}

// Models have no gate: the catalog is globally readable.
