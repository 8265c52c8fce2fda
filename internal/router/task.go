package router

import (
	"errors"
	"fmt"
	"net/http"
	"strconv"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"

	"github.com/corporoom/taskhub/internal/apperr"
	"github.com/corporoom/taskhub/internal/domain"
	"github.com/corporoom/taskhub/internal/dto"
	"github.com/corporoom/taskhub/internal/notify"
	"github.com/corporoom/taskhub/internal/search"
	"github.com/corporoom/taskhub/internal/storage"
	"github.com/corporoom/taskhub/pkg/pagination"
)

// TaskRouter serves task CRUD, cursor-paginated listing and full-text search.
type TaskRouter struct {
	e         *echo.Echo
	tasks     storage.TaskStore
	notifier  notify.Notifier
	searcher  *search.Searcher
	authMw    echo.MiddlewareFunc
	paginator *pagination.CursorPaginator[domain.Task]
}

type TaskRouterOption func(*TaskRouter)

// WithSearcher enables the full-text search endpoint
func WithSearcher(s *search.Searcher) TaskRouterOption {
	return func(r *TaskRouter) {
		r.searcher = s
	}
}

func NewTaskRouter(e *echo.Echo, tasks storage.TaskStore, notifier notify.Notifier, authMw echo.MiddlewareFunc, opts ...TaskRouterOption) *TaskRouter {
	r := &TaskRouter{
		e:        e,
		tasks:    tasks,
		notifier: notifier,
		authMw:   authMw,
		paginator: pagination.NewCursorPaginator(
			func(t domain.Task) uuid.UUID { return t.ID },
		),
	}
	for _, opt := range opts {
		opt(r)
	}
	return r
}

func (r *TaskRouter) Bind() {
	g := r.e.Group("/api/tasks", r.authMw)
	g.GET("", r.listHandler)
	g.POST("", r.createHandler)
	g.GET("/search", r.searchHandler)
	g.GET("/:id", r.getHandler)
	g.PATCH("/:id", r.updateHandler)
	g.DELETE("/:id", r.deleteHandler)
}

func taskNotFound(c echo.Context, id uuid.UUID) error {
	return c.JSON(http.StatusNotFound, map[string][]string{
		"pk": {fmt.Sprintf("Task with id=%s does not exist.", id)},
	})
}

func (r *TaskRouter) listHandler(c echo.Context) error {
	tasks, err := r.tasks.List(c.Request().Context())
	if err != nil {
		return err
	}

	page := r.paginator.Paginate(c.Request(), tasks)
	return page.Respond(c, dto.NewTaskList(page.Items))
}

func (r *TaskRouter) createHandler(c echo.Context) error {
	var req dto.CreateTaskRequest
	if err := c.Bind(&req); err != nil {
		return apperr.NewValidationWrap("invalid request body", err)
	}
	if err := c.Validate(&req); err != nil {
		return err
	}

	status := domain.TaskStatus(req.Status)
	if req.Status == "" {
		status = domain.TaskStatusTodo
	}

	task, err := r.tasks.Create(c.Request().Context(), domain.Task{
		ProjectID:   req.ProjectID,
		Title:       req.Title,
		Description: req.Description,
		Status:      status,
		AssigneeID:  req.AssigneeID,
	})
	if err != nil {
		if errors.Is(err, storage.ErrNotFound) {
			return apperr.NewFieldValidation("project", "Project does not exist.")
		}
		return err
	}

	// persisted first: listeners see only durable tasks
	r.notifier.TaskCreated(c.Request().Context(), task)

	return c.JSON(http.StatusCreated, dto.NewTask(task))
}

func (r *TaskRouter) getHandler(c echo.Context) error {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		return apperr.NewFieldValidation("pk", "Invalid task id.")
	}

	task, err := r.tasks.GetByID(c.Request().Context(), id)
	if err != nil {
		if errors.Is(err, storage.ErrNotFound) {
			return taskNotFound(c, id)
		}
		return err
	}

	return c.JSON(http.StatusOK, dto.NewTask(task))
}

func (r *TaskRouter) updateHandler(c echo.Context) error {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		return apperr.NewFieldValidation("pk", "Invalid task id.")
	}

	var req dto.UpdateTaskRequest
	if err := c.Bind(&req); err != nil {
		return apperr.NewValidationWrap("invalid request body", err)
	}
	if err := c.Validate(&req); err != nil {
		return err
	}

	task, err := r.tasks.GetByID(c.Request().Context(), id)
	if err != nil {
		if errors.Is(err, storage.ErrNotFound) {
			return taskNotFound(c, id)
		}
		return err
	}

	if req.Title != nil {
		task.Title = *req.Title
	}
	if req.Description != nil {
		task.Description = *req.Description
	}
	if req.Status != nil {
		task.Status = domain.TaskStatus(*req.Status)
	}
	if req.AssigneeID != nil {
		task.AssigneeID = req.AssigneeID
	}

	updated, err := r.tasks.Update(c.Request().Context(), task)
	if err != nil {
		if errors.Is(err, storage.ErrNotFound) {
			return taskNotFound(c, id)
		}
		return err
	}

	return c.JSON(http.StatusOK, dto.NewTask(updated))
}

func (r *TaskRouter) deleteHandler(c echo.Context) error {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		return apperr.NewFieldValidation("pk", "Invalid task id.")
	}

	if err := r.tasks.Delete(c.Request().Context(), id); err != nil {
		if errors.Is(err, storage.ErrNotFound) {
			return taskNotFound(c, id)
		}
		return err
	}

	return c.NoContent(http.StatusNoContent)
}

type searchMeta struct {
	NextCursor   *string `json:"next_cursor"`
	HasMore      bool    `json:"has_more"`
	TotalMatches int64   `json:"total_matches"`
}

func (r *TaskRouter) searchHandler(c echo.Context) error {
	if r.searcher == nil {
		return echo.NewHTTPError(http.StatusNotImplemented, "search is not enabled")
	}

	query := c.QueryParam("query")
	if query == "" {
		return apperr.NewFieldValidation("query", "This field is required.")
	}

	cursor := search.DecodeCursor(c.QueryParam(pagination.CursorParam))
	size := 0
	if raw := c.QueryParam(pagination.PageSizeParam); raw != "" {
		if n, err := strconv.Atoi(raw); err == nil {
			size = n
		}
	}

	result, err := r.searcher.Search(c.Request().Context(), query, cursor, size)
	if err != nil {
		return err
	}

	hits := make([]dto.TaskSearchResult, len(result.Hits))
	for i, hit := range result.Hits {
		hits[i] = dto.TaskSearchResult{
			Task:  dto.NewTask(hit.Task),
			Score: hit.Score,
		}
	}

	var nextCursor *string
	if result.NextCursor != nil {
		token := search.EncodeCursor(result.NextCursor)
		nextCursor = &token
	}

	return c.JSON(http.StatusOK, &pagination.Envelope{
		Pagination: searchMeta{
			NextCursor:   nextCursor,
			HasMore:      result.HasMore,
			TotalMatches: result.TotalMatches,
		},
		Data: hits,
	})
}
