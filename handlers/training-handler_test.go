package handlers_test

import (
	"fmt"
	"net/http"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/democratise-ai/backend/models"
)

type trainingRunResponse struct {
	ID           uint                   `json:"id"`
	ProjectID    uint                   `json:"project_id"`
	UserID       uint                   `json:"user_id"`
	ModelID      uint                   `json:"model_id"`
	DatasetID    uint                   `json:"dataset_id"`
	Status       string                 `json:"status"`
	ConfigParams map[string]interface{} `json:"config_params"`
	StartedAt    *time.Time             `json:"started_at"`
	CompletedAt  *time.Time             `json:"completed_at"`
}

// seedTrainingFixtures creates a user with a project plus one model and
// one dataset to reference.
func seedTrainingFixtures(t *testing.T, env *testEnv) (token string, project models.Project, model models.Model, dataset models.Dataset) {
	t.Helper()

	user, token := env.createUser("Alice", "alice@example.com")

	project = models.Project{Name: "sentiment", Status: "active", UserID: user.ID}
	require.NoError(t, env.db.Create(&project).Error)

	model = models.Model{Name: "BERT", SourceType: "huggingface", SourceIdentifier: "bert-base-uncased"}
	require.NoError(t, env.db.Create(&model).Error)

	dataset = models.Dataset{Name: "tweets", UserID: &user.ID, StorageType: "s3", StoragePath: "bucket/tweets"}
	require.NoError(t, env.db.Create(&dataset).Error)
	return token, project, model, dataset
}

func TestSubmitTrainingRun(t *testing.T) {
	env := newTestEnv(t)
	token, project, model, dataset := seedTrainingFixtures(t, env)

	resp, body := env.doJSON(http.MethodPost, fmt.Sprintf("/api/v1/projects/%d/train", project.ID), token, map[string]any{
		"model_id":   model.ID,
		"dataset_id": dataset.ID,
		"config_params": map[string]any{
			"learning_rate": 0.001,
			"epochs":        10,
		},
	})
	require.Equal(t, http.StatusAccepted, resp.StatusCode)

	run := decodeData[trainingRunResponse](t, body)
	assert.Equal(t, "queued", run.Status)
	assert.Equal(t, project.ID, run.ProjectID)
	assert.Equal(t, model.ID, run.ModelID)
	assert.Equal(t, dataset.ID, run.DatasetID)
	assert.EqualValues(t, 10, run.ConfigParams["epochs"])
	assert.Nil(t, run.StartedAt)

	// Submission records the run; nothing advances it past queued.
	var stored models.TrainingRun
	require.NoError(t, env.db.First(&stored, run.ID).Error)
	assert.Equal(t, models.StatusQueued, stored.Status)
}

func TestSubmitTrainingRunMissingReferences(t *testing.T) {
	env := newTestEnv(t)
	token, project, model, dataset := seedTrainingFixtures(t, env)

	// Unknown model: 404 and no row persisted.
	resp, _ := env.doJSON(http.MethodPost, fmt.Sprintf("/api/v1/projects/%d/train", project.ID), token, map[string]any{
		"model_id":   9999,
		"dataset_id": dataset.ID,
	})
	assert.Equal(t, http.StatusNotFound, resp.StatusCode)

	// Unknown dataset: same.
	resp, _ = env.doJSON(http.MethodPost, fmt.Sprintf("/api/v1/projects/%d/train", project.ID), token, map[string]any{
		"model_id":   model.ID,
		"dataset_id": 9999,
	})
	assert.Equal(t, http.StatusNotFound, resp.StatusCode)

	// Unknown project: checked before anything else.
	resp, _ = env.doJSON(http.MethodPost, "/api/v1/projects/9999/train", token, map[string]any{
		"model_id":   model.ID,
		"dataset_id": dataset.ID,
	})
	assert.Equal(t, http.StatusNotFound, resp.StatusCode)

	var count int64
	require.NoError(t, env.db.Model(&models.TrainingRun{}).Count(&count).Error)
	assert.Zero(t, count)
}

func TestSubmitTrainingRunRequiresProjectOwnership(t *testing.T) {
	env := newTestEnv(t)
	_, project, model, dataset := seedTrainingFixtures(t, env)
	_, bobToken := env.createUser("Bob", "bob@example.com")

	resp, _ := env.doJSON(http.MethodPost, fmt.Sprintf("/api/v1/projects/%d/train", project.ID), bobToken, map[string]any{
		"model_id":   model.ID,
		"dataset_id": dataset.ID,
	})
	assert.Equal(t, http.StatusForbidden, resp.StatusCode)
}

func TestGetTrainingJob(t *testing.T) {
	env := newTestEnv(t)
	token, project, model, dataset := seedTrainingFixtures(t, env)
	_, bobToken := env.createUser("Bob", "bob@example.com")

	resp, body := env.doJSON(http.MethodPost, fmt.Sprintf("/api/v1/projects/%d/train", project.ID), token, map[string]any{
		"model_id":   model.ID,
		"dataset_id": dataset.ID,
	})
	require.Equal(t, http.StatusAccepted, resp.StatusCode)
	run := decodeData[trainingRunResponse](t, body)

	resp, body = env.doJSON(http.MethodGet, fmt.Sprintf("/api/v1/training/jobs/%d", run.ID), token, nil)
	require.Equal(t, http.StatusOK, resp.StatusCode)
	assert.Equal(t, "queued", decodeData[trainingRunResponse](t, body).Status)

	// Only the initiator may read the job.
	resp, _ = env.doJSON(http.MethodGet, fmt.Sprintf("/api/v1/training/jobs/%d", run.ID), bobToken, nil)
	assert.Equal(t, http.StatusForbidden, resp.StatusCode)

	resp, _ = env.doJSON(http.MethodGet, "/api/v1/training/jobs/9999", bobToken, nil)
	assert.Equal(t, http.StatusNotFound, resp.StatusCode)
}
