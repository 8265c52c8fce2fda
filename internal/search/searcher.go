package search

import (
	"context"
	"encoding/base64"
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"

	"github.com/elastic/go-elasticsearch/v8"
	"github.com/elastic/go-elasticsearch/v8/typedapi/types"
	"github.com/elastic/go-elasticsearch/v8/typedapi/types/enums/sortorder"
	"github.com/google/uuid"

	"github.com/corporoom/taskhub/internal/domain"
)

const (
	DefaultSize = 20
	MaxSize     = 100
)

// Cursor marks the last hit of a page for search_after continuation.
type Cursor struct {
	Score float64   `json:"s"`
	ID    uuid.UUID `json:"i"`
}

func EncodeCursor(c *Cursor) string {
	if c == nil {
		return ""
	}
	raw, err := json.Marshal(c)
	if err != nil {
		return ""
	}
	return base64.RawURLEncoding.EncodeToString(raw)
}

// DecodeCursor returns nil for an empty token. Malformed tokens restart the
// search from the top rather than failing the request.
func DecodeCursor(token string) *Cursor {
	if token == "" {
		return nil
	}
	raw, err := base64.RawURLEncoding.DecodeString(token)
	if err != nil {
		return nil
	}
	var c Cursor
	if err := json.Unmarshal(raw, &c); err != nil || c.ID == uuid.Nil {
		return nil
	}
	return &c
}

// Hit is a single scored search match.
type Hit struct {
	Task  domain.Task
	Score float64
}

// Result is one page of search matches with continuation state.
type Result struct {
	Hits         []Hit
	NextCursor   *Cursor
	HasMore      bool
	TotalMatches int64
}

type Searcher struct {
	client    *elasticsearch.TypedClient
	indexName string
}

func NewSearcher(config ClientConfig) (*Searcher, error) {
	client, err := newClient(config)

	if err != nil {
		return nil, fmt.Errorf("failed to create Elasticsearch client: %w", err)
	}

	return &Searcher{
		client:    client,
		indexName: config.IndexName,
	}, nil
}

// Search runs a multi_match query over task names and descriptions, ordered
// by relevance with the task id breaking ties.
func (r *Searcher) Search(ctx context.Context, query string, cursor *Cursor, size int) (*Result, error) {
	if size <= 0 {
		size = DefaultSize
	}
	if size > MaxSize {
		size = MaxSize
	}

	slog.Info("Executing es multi_match search",
		"query", query,
		"has_cursor", cursor != nil,
		"size", size)

	multiMatch := &types.MultiMatchQuery{
		Query:  query,
		Fields: []string{"title^2.0", "description"},
	}

	searchReq := r.client.Search().
		Index(r.indexName).
		Query(&types.Query{
			MultiMatch: multiMatch,
		}).
		Size(size + 1).
		TrackScores(true)

	if cursor != nil {
		searchReq = searchReq.SearchAfter(
			types.FieldValue(cursor.Score),
			types.FieldValue(cursor.ID.String()),
		)
	}

	sortOrderDesc := sortorder.Desc
	searchReq = searchReq.Sort(
		&types.SortOptions{
			SortOptions: map[string]types.FieldSort{
				"_score": {Order: &sortOrderDesc},
			},
		},
		&types.SortOptions{
			SortOptions: map[string]types.FieldSort{
				"id": {Order: &sortOrderDesc},
			},
		},
	)

	res, err := searchReq.Do(ctx)
	if err != nil {
		slog.Error("Elasticsearch query failed", "error", err, "query", query, "cursor", cursor != nil)
		return nil, fmt.Errorf("failed to execute search: %w", err)
	}

	hits, err := mapToHits(res.Hits.Hits)
	if err != nil {
		return nil, fmt.Errorf("failed to map search results: %w", err)
	}

	slog.Info("Es search results fetched",
		"total_matches", res.Hits.Total.Value,
		"returned_count", len(hits))

	hasMore := len(hits) > size
	if hasMore {
		hits = hits[:size]
	}

	var nextCursor *Cursor
	if hasMore && len(hits) > 0 {
		last := hits[len(hits)-1]
		nextCursor = &Cursor{
			Score: last.Score,
			ID:    last.Task.ID,
		}
	}

	return &Result{
		Hits:         hits,
		NextCursor:   nextCursor,
		HasMore:      hasMore,
		TotalMatches: res.Hits.Total.Value,
	}, nil
}

func mapToHits(esHits []types.Hit) ([]Hit, error) {
	hits := make([]Hit, 0, len(esHits))

	for _, hit := range esHits {
		var doc TaskDocument
		if err := json.Unmarshal(hit.Source_, &doc); err != nil {
			return nil, fmt.Errorf("failed to unmarshal document: %w", err)
		}

		task, err := doc.toTask()
		if err != nil {
			return nil, err
		}

		var score float64
		if hit.Score_ != nil {
			score = float64(*hit.Score_)
		}

		hits = append(hits, Hit{Task: task, Score: score})
	}

	return hits, nil
}

func (d TaskDocument) toTask() (domain.Task, error) {
	id, err := uuid.Parse(d.ID)
	if err != nil {
		return domain.Task{}, errors.New("document has invalid task id")
	}
	projectID, err := uuid.Parse(d.ProjectID)
	if err != nil {
		return domain.Task{}, errors.New("document has invalid project id")
	}

	task := domain.Task{
		ID:          id,
		Title:       d.Title,
		Description: d.Description,
		Status:      domain.TaskStatus(d.Status),
		ProjectID:   projectID,
		CreatedAt:   d.CreatedAt,
	}
	if d.AssigneeID != "" {
		assigneeID, err := uuid.Parse(d.AssigneeID)
		if err != nil {
			return domain.Task{}, errors.New("document has invalid assignee id")
		}
		task.AssigneeID = &assigneeID
	}
	return task, nil
}
