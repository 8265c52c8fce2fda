// Package notify delivers task lifecycle events to interested sinks.
package notify

import (
	"context"
	"log/slog"

	"github.com/corporoom/taskhub/internal/domain"
)

// Notifier receives an event after a task has been persisted.
// Implementations must not block the request path longer than necessary
// and must not fail the originating operation.
type Notifier interface {
	TaskCreated(ctx context.Context, task domain.Task)
}

// LogNotifier writes task events to structured logs.
type LogNotifier struct {
	logger *slog.Logger
}

func NewLogNotifier(logger *slog.Logger) *LogNotifier {
	if logger == nil {
		logger = slog.Default()
	}
	return &LogNotifier{logger: logger}
}

func (n *LogNotifier) TaskCreated(ctx context.Context, task domain.Task) {
	n.logger.InfoContext(ctx, "task created",
		slog.String("task_id", task.ID.String()),
		slog.String("title", task.Title),
		slog.String("status", string(task.Status)),
	)
}

// Multi fans a single event out to every wrapped notifier in order.
type Multi struct {
	notifiers []Notifier
}

func NewMulti(notifiers ...Notifier) *Multi {
	return &Multi{notifiers: notifiers}
}

func (m *Multi) TaskCreated(ctx context.Context, task domain.Task) {
	for _, n := range m.notifiers {
		n.TaskCreated(ctx, task)
	}
}
