package search

import (
	"time"

	"github.com/elastic/go-elasticsearch/v8/typedapi/types"
	"github.com/google/uuid"

	"github.com/corporoom/taskhub/internal/domain"
)

// TaskDocument is the document structure stored in Elasticsearch.
type TaskDocument struct {
	ID          string    `json:"id"`
	Title       string    `json:"title"`
	Description string    `json:"description"`
	Status      string    `json:"status"`
	ProjectID   string    `json:"project_id"`
	AssigneeID  string    `json:"assignee_id,omitempty"`
	CreatedAt   time.Time `json:"created_at"`
	IndexedAt   time.Time `json:"indexed_at"`
}

type indexBuilder struct{}

func newIndexBuilder() *indexBuilder {
	return &indexBuilder{}
}

func (b *indexBuilder) mapToDocument(task domain.Task) TaskDocument {
	if task.ID == uuid.Nil {
		task.ID = uuid.New()
	}
	doc := TaskDocument{
		ID:          task.ID.String(),
		Title:       task.Title,
		Description: task.Description,
		Status:      string(task.Status),
		ProjectID:   task.ProjectID.String(),
		CreatedAt:   task.CreatedAt,
		IndexedAt:   time.Now(),
	}
	if task.AssigneeID != nil {
		doc.AssigneeID = task.AssigneeID.String()
	}
	return doc
}

func (b *indexBuilder) buildSettings() types.IndexSettings {
	return types.IndexSettings{
		Analysis: &types.IndexSettingsAnalysis{
			Analyzer: map[string]types.Analyzer{
				"task_analyzer": types.StandardAnalyzer{
					Stopwords: []string{"_none_"},
				},
			},
		},
	}
}

func (b *indexBuilder) buildMapping() types.TypeMapping {
	return types.TypeMapping{
		Properties: map[string]types.Property{
			"id":          types.NewKeywordProperty(),
			"title":       b.createTextPropertyWithKeyword("task_analyzer"),
			"description": b.createTextProperty("task_analyzer"),
			"status":      types.NewKeywordProperty(),
			"project_id":  types.NewKeywordProperty(),
			"assignee_id": types.NewKeywordProperty(),
			"created_at":  types.NewDateProperty(),
			"indexed_at":  types.NewDateProperty(),
		},
	}
}

func (b *indexBuilder) createTextProperty(analyzer string) types.Property {
	textProp := types.NewTextProperty()
	if analyzer != "" {
		textProp.Analyzer = &analyzer
	}
	return textProp
}

func (b *indexBuilder) createTextPropertyWithKeyword(analyzer string) types.Property {
	textProp := types.NewTextProperty()
	if analyzer != "" {
		textProp.Analyzer = &analyzer
	}
	textProp.Fields = map[string]types.Property{
		"keyword": types.NewKeywordProperty(),
	}
	return textProp
}
