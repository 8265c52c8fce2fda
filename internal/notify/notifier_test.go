package notify

import (
	"context"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"

	"github.com/corporoom/taskhub/internal/domain"
)

type recordingNotifier struct {
	tasks []domain.Task
}

func (r *recordingNotifier) TaskCreated(_ context.Context, task domain.Task) {
	r.tasks = append(r.tasks, task)
}

func TestMulti_TaskCreated(t *testing.T) {
	first := &recordingNotifier{}
	second := &recordingNotifier{}
	multi := NewMulti(first, second)

	task := domain.Task{ID: uuid.New(), Title: "write report", Status: domain.TaskStatusTodo}
	multi.TaskCreated(context.Background(), task)

	assert.Len(t, first.tasks, 1)
	assert.Len(t, second.tasks, 1)
	assert.Equal(t, task.ID, first.tasks[0].ID)
}

func TestMulti_Empty(t *testing.T) {
	multi := NewMulti()
	assert.NotPanics(t, func() {
		multi.TaskCreated(context.Background(), domain.Task{ID: uuid.New()})
	})
}

func TestLogNotifier_NilLoggerDefaults(t *testing.T) {
	n := NewLogNotifier(nil)
	assert.NotPanics(t, func() {
		n.TaskCreated(context.Background(), domain.Task{ID: uuid.New(), Title: "x"})
	})
}
