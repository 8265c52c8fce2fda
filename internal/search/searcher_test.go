package search

import (
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCursor_RoundTrip(t *testing.T) {
	c := &Cursor{Score: 3.14, ID: uuid.New()}

	token := EncodeCursor(c)
	require.NotEmpty(t, token)

	decoded := DecodeCursor(token)
	require.NotNil(t, decoded)
	assert.Equal(t, c.Score, decoded.Score)
	assert.Equal(t, c.ID, decoded.ID)
}

func TestDecodeCursor_Tolerant(t *testing.T) {
	tests := []struct {
		name  string
		token string
	}{
		{"empty", ""},
		{"not base64", "%%%"},
		{"not json", "bm90LWpzb24"},
		{"nil id", EncodeCursor(&Cursor{Score: 1.0})},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Nil(t, DecodeCursor(tt.token))
		})
	}
}

func TestTaskDocument_ToTask(t *testing.T) {
	assignee := uuid.New()
	doc := TaskDocument{
		ID:          uuid.New().String(),
		Title:       "ship release",
		Description: "cut and tag",
		Status:      "in_progress",
		ProjectID:   uuid.New().String(),
		AssigneeID:  assignee.String(),
		CreatedAt:   time.Now().UTC(),
	}

	task, err := doc.toTask()
	require.NoError(t, err)
	assert.Equal(t, doc.Title, task.Title)
	require.NotNil(t, task.AssigneeID)
	assert.Equal(t, assignee, *task.AssigneeID)
}

func TestTaskDocument_ToTask_BadIDs(t *testing.T) {
	doc := TaskDocument{ID: "nope", ProjectID: uuid.New().String()}
	_, err := doc.toTask()
	assert.Error(t, err)

	doc = TaskDocument{ID: uuid.New().String(), ProjectID: "nope"}
	_, err = doc.toTask()
	assert.Error(t, err)
}
