// audit/repository.go
package audit

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"strings"
	"time"

	"github.com/elastic/go-elasticsearch/v8"
	"github.com/elastic/go-elasticsearch/v8/esapi"
	"github.com/google/uuid"
	"go.uber.org/zap"

	stylino_errors "github.com/stylino/storefront/errors"
	logger "github.com/stylino/storefront/logging"
)

// maxQueryResults caps one QueryLogs response, newest entries first.
const maxQueryResults = 200

type Repository interface {
	LogAccess(ctx context.Context, log AuditLog) error
	QueryLogs(ctx context.Context, from, to time.Time, actorID, targetID string) ([]AuditLog, error)
}

type ElasticsearchRepository struct {
	esClient *elasticsearch.Client
	index    string
}

// NewElasticsearchRepository creates a new repository with a given Elasticsearch client URL.
func NewElasticsearchRepository(esURL, index string) (*ElasticsearchRepository, error) {
	cfg := elasticsearch.Config{
		Addresses: []string{esURL},
	}
	esClient, err := elasticsearch.NewClient(cfg)
	if err != nil {
		return nil, err
	}
	return &ElasticsearchRepository{esClient: esClient, index: index}, nil
}

// LogAccess indexes an audit entry.
func (r *ElasticsearchRepository) LogAccess(ctx context.Context, log AuditLog) error {
	data, err := json.Marshal(log)
	if err != nil {
		return err
	}

	req := esapi.IndexRequest{
		Index:      r.index,
		DocumentID: fmt.Sprintf("%d-%s", log.Timestamp.UnixNano(), uuid.NewString()),
		Body:       bytes.NewReader(data),
	}

	res, err := req.Do(ctx, r.esClient)
	if err != nil {
		return err
	}
	defer res.Body.Close()

	if res.IsError() {
		return fmt.Errorf("error indexing document: %s", res.String())
	}

	return nil
}

// QueryLogs searches audit entries in [from, to], optionally filtered by actor and target.
func (r *ElasticsearchRepository) QueryLogs(ctx context.Context, from, to time.Time, actorID, targetID string) ([]AuditLog, error) {
	body, err := buildQuery(from, to, actorID, targetID)
	if err != nil {
		return nil, err
	}

	res, err := r.esClient.Search(
		r.esClient.Search.WithContext(ctx),
		r.esClient.Search.WithIndex(r.index),
		r.esClient.Search.WithBody(strings.NewReader(body)),
	)
	if err != nil {
		return nil, err
	}
	defer res.Body.Close()

	if res.IsError() {
		return nil, fmt.Errorf("error searching documents: %s", res.String())
	}

	var result struct {
		Hits struct {
			Hits []struct {
				Source AuditLog `json:"_source"`
			} `json:"hits"`
		} `json:"hits"`
	}
	if err := json.NewDecoder(res.Body).Decode(&result); err != nil {
		return nil, err
	}

	logs := make([]AuditLog, len(result.Hits.Hits))
	for i, hit := range result.Hits.Hits {
		logs[i] = hit.Source
	}
	return logs, nil
}

func buildQuery(from, to time.Time, actorID, targetID string) (string, error) {
	must := []any{
		map[string]any{
			"range": map[string]any{
				"timestamp": map[string]any{
					"gte": from.Format(time.RFC3339),
					"lte": to.Format(time.RFC3339),
				},
			},
		},
	}
	if actorID != "" {
		must = append(must, map[string]any{"match": map[string]any{"actor_id": actorID}})
	}
	if targetID != "" {
		must = append(must, map[string]any{"match": map[string]any{"target_id": targetID}})
	}

	var buf strings.Builder
	query := map[string]any{
		"size":  maxQueryResults,
		"sort":  []any{map[string]any{"timestamp": map[string]any{"order": "desc"}}},
		"query": map[string]any{"bool": map[string]any{"must": must}},
	}
	if err := json.NewEncoder(&buf).Encode(query); err != nil {
		return "", err
	}
	return buf.String(), nil
}

// LogRepository writes audit entries to the application log. It is used
// when Elasticsearch is disabled and cannot be queried.
type LogRepository struct{}

func NewLogRepository() *LogRepository {
	return &LogRepository{}
}

func (r *LogRepository) LogAccess(ctx context.Context, log AuditLog) error {
	logger.Info("AUDIT",
		zap.Time("timestamp", log.Timestamp),
		zap.String("actorID", log.ActorID),
		zap.String("action", log.Action),
		zap.String("targetID", log.TargetID),
		zap.String("path", log.Path),
		zap.String("outcome", log.Outcome),
		zap.Int("status", log.Status),
		zap.Bool("accessGranted", log.AccessGranted))
	return nil
}

func (r *LogRepository) QueryLogs(ctx context.Context, from, to time.Time, actorID, targetID string) ([]AuditLog, error) {
	return nil, stylino_errors.ErrAuditQueryUnavailable
}
