package audit

import (
	"context"
	"encoding/json"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	stylino_errors "github.com/stylino/storefront/errors"
)

func TestBuildQueryFilters(t *testing.T) {
	from := time.Date(2024, time.May, 1, 0, 0, 0, 0, time.UTC)
	to := from.Add(24 * time.Hour)

	body, err := buildQuery(from, to, "admin-1", "")
	require.NoError(t, err)

	var parsed map[string]any
	require.NoError(t, json.Unmarshal([]byte(body), &parsed))
	must := parsed["query"].(map[string]any)["bool"].(map[string]any)["must"].([]any)
	assert.Len(t, must, 2)
	assert.Contains(t, body, `"actor_id":"admin-1"`)
	assert.NotContains(t, body, "target_id")
	assert.Equal(t, float64(maxQueryResults), parsed["size"])
	assert.Contains(t, body, `"order":"desc"`)
}

type recordingRepository struct {
	logs []AuditLog
}

func (r *recordingRepository) LogAccess(_ context.Context, log AuditLog) error {
	r.logs = append(r.logs, log)
	return nil
}

func (r *recordingRepository) QueryLogs(context.Context, time.Time, time.Time, string, string) ([]AuditLog, error) {
	return r.logs, nil
}

func TestServiceStampsTimestamp(t *testing.T) {
	repo := &recordingRepository{}
	svc := NewService(repo)

	require.NoError(t, svc.LogAccess(context.Background(), AuditLog{Action: ActionBlockUser}))
	require.Len(t, repo.logs, 1)
	assert.False(t, repo.logs[0].Timestamp.IsZero())

	fixed := time.Date(2024, time.January, 2, 3, 4, 5, 0, time.UTC)
	require.NoError(t, svc.LogAccess(context.Background(), AuditLog{Timestamp: fixed}))
	assert.Equal(t, fixed, repo.logs[1].Timestamp)
}

func TestLogRepository(t *testing.T) {
	repo := NewLogRepository()
	assert.NoError(t, repo.LogAccess(context.Background(), AuditLog{Action: ActionAccessDenied}))
	_, err := repo.QueryLogs(context.Background(), time.Now(), time.Now(), "", "")
	assert.ErrorIs(t, err, stylino_errors.ErrAuditQueryUnavailable)
}

func TestChangeDetails(t *testing.T) {
	raw := ChangeDetails("customer", "affiliate")
	assert.JSONEq(t, `{"old":"customer","new":"affiliate"}`, string(raw))
}
