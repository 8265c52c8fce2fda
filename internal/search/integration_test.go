package search

import (
	"context"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/corporoom/taskhub/internal/domain"
	pkgtesting "github.com/corporoom/taskhub/pkg/testing"
)

func TestIndexAndSearch(t *testing.T) {
	if testing.Short() {
		t.Skip("skipping elasticsearch container test in short mode")
	}

	ctx := context.Background()
	es := pkgtesting.NewESContainer(ctx, t)

	cfg := ClientConfig{
		Addresses: []string{es.Address},
		IndexName: "tasks_test",
	}

	indexer, err := NewIndexer(ctx, cfg)
	require.NoError(t, err)

	projectID := uuid.New()
	tasks := []domain.Task{
		{ID: uuid.New(), ProjectID: projectID, Title: "Deploy the search cluster", Status: domain.TaskStatusTodo},
		{ID: uuid.New(), ProjectID: projectID, Title: "Write deploy runbook", Description: "search rollout steps", Status: domain.TaskStatusInProgress},
		{ID: uuid.New(), ProjectID: projectID, Title: "Unrelated chore", Status: domain.TaskStatusTodo},
	}
	for _, task := range tasks {
		require.NoError(t, indexer.Index(ctx, task))
	}

	// the index needs a refresh cycle before documents are searchable
	time.Sleep(2 * time.Second)

	searcher, err := NewSearcher(cfg)
	require.NoError(t, err)

	result, err := searcher.Search(ctx, "deploy", nil, 10)
	require.NoError(t, err)
	assert.Equal(t, int64(2), result.TotalMatches)
	assert.False(t, result.HasMore)

	for _, hit := range result.Hits {
		assert.Contains(t, []string{tasks[0].Title, tasks[1].Title}, hit.Task.Title)
		assert.Greater(t, hit.Score, 0.0)
	}

	// page through one record at a time using the search_after cursor
	first, err := searcher.Search(ctx, "deploy", nil, 1)
	require.NoError(t, err)
	require.Len(t, first.Hits, 1)
	require.True(t, first.HasMore)
	require.NotNil(t, first.NextCursor)

	second, err := searcher.Search(ctx, "deploy", first.NextCursor, 1)
	require.NoError(t, err)
	require.Len(t, second.Hits, 1)
	assert.NotEqual(t, first.Hits[0].Task.ID, second.Hits[0].Task.ID)
}
