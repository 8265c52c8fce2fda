package search

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/elastic/go-elasticsearch/v8"

	"github.com/corporoom/taskhub/internal/domain"
	"github.com/corporoom/taskhub/internal/notify"
)

// Indexer mirrors persisted tasks into the search index. It plugs into the
// notification pipeline so indexing failures never fail the write path.
type Indexer struct {
	client       *elasticsearch.TypedClient
	indexName    string
	indexBuilder *indexBuilder
}

func NewIndexer(ctx context.Context, config ClientConfig) (*Indexer, error) {
	client, err := newClient(config)

	if err != nil {
		return nil, fmt.Errorf("failed to create Elasticsearch client: %w", err)
	}
	indexer := &Indexer{
		client:       client,
		indexName:    config.IndexName,
		indexBuilder: newIndexBuilder(),
	}

	if err := indexer.EnsureIndex(ctx); err != nil {
		return nil, fmt.Errorf("failed to ensure index exists: %w", err)
	}

	return indexer, nil
}

// TaskCreated implements notify.Notifier. Errors are logged, not propagated.
func (e *Indexer) TaskCreated(ctx context.Context, task domain.Task) {
	if err := e.Index(ctx, task); err != nil {
		slog.ErrorContext(ctx, "failed to index task", "error", err, "task_id", task.ID)
	}
}

func (e *Indexer) Index(ctx context.Context, task domain.Task) error {
	doc := e.indexBuilder.mapToDocument(task)

	res, err := e.client.Index(e.indexName).Id(doc.ID).Document(doc).Do(ctx)
	if err != nil {
		return fmt.Errorf("failed to index document: %w", err)
	}

	slog.Info("document indexed successfully", "id", doc.ID, "index", e.indexName, "result", res.Result)
	return nil
}

func (e *Indexer) EnsureIndex(ctx context.Context) error {
	existsRes, err := e.client.Indices.Exists(e.indexName).Do(ctx)
	if err != nil {
		return fmt.Errorf("failed to check if index exists: %w", err)
	}

	if existsRes {
		slog.Info("Index already exists", "index", e.indexName)
		return nil
	}

	settings := e.indexBuilder.buildSettings()
	mappings := e.indexBuilder.buildMapping()

	createRes, err := e.client.Indices.Create(e.indexName).
		Settings(&settings).
		Mappings(&mappings).
		Do(ctx)
	if err != nil {
		return fmt.Errorf("failed to create index: %w", err)
	}

	if !createRes.Acknowledged {
		return fmt.Errorf("index creation was not acknowledged")
	}

	slog.Info("Index created successfully", "index", e.indexName)
	return nil
}

var _ notify.Notifier = (*Indexer)(nil)
