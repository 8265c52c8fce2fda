package router

import (
	"errors"
	"fmt"
	"net/http"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"

	"github.com/corporoom/taskhub/internal/apperr"
	"github.com/corporoom/taskhub/internal/domain"
	"github.com/corporoom/taskhub/internal/dto"
	"github.com/corporoom/taskhub/internal/storage"
	"github.com/corporoom/taskhub/pkg/pagination"
)

// ProjectRouter serves project CRUD with numbered-page listing.
type ProjectRouter struct {
	e         *echo.Echo
	projects  storage.ProjectStore
	authMw    echo.MiddlewareFunc
	paginator *pagination.PageNumberPaginator[domain.ProjectSummary]
}

func NewProjectRouter(e *echo.Echo, projects storage.ProjectStore, authMw echo.MiddlewareFunc) *ProjectRouter {
	return &ProjectRouter{
		e:         e,
		projects:  projects,
		authMw:    authMw,
		paginator: pagination.NewPageNumberPaginator[domain.ProjectSummary](pagination.PageNumberDefaultSize),
	}
}

func (r *ProjectRouter) Bind() {
	g := r.e.Group("/api/tasks/projects", r.authMw)
	g.GET("", r.listHandler)
	g.POST("", r.createHandler)
	g.PATCH("/:id", r.updateHandler)
	g.DELETE("/:id", r.deleteHandler)
}

// projectNotFound keeps the pk-keyed body shape clients expect
func projectNotFound(c echo.Context, id uuid.UUID) error {
	return c.JSON(http.StatusNotFound, map[string][]string{
		"pk": {fmt.Sprintf("Project with id=%s does not exist.", id)},
	})
}

func (r *ProjectRouter) listHandler(c echo.Context) error {
	summaries, err := r.projects.ListSummaries(c.Request().Context())
	if err != nil {
		return err
	}

	page, err := r.paginator.Paginate(c.Request(), summaries)
	if err != nil {
		return err
	}
	return page.Respond(c, dto.NewProjectList(page.Items))
}

func (r *ProjectRouter) createHandler(c echo.Context) error {
	var req dto.CreateProjectRequest
	if err := c.Bind(&req); err != nil {
		return apperr.NewValidationWrap("invalid request body", err)
	}
	if err := c.Validate(&req); err != nil {
		return err
	}

	project, err := r.projects.Create(c.Request().Context(), domain.Project{
		Name:     req.Name,
		AuthorID: req.Author,
		UserIDs:  req.UserIDs,
	})
	if err != nil {
		if errors.Is(err, storage.ErrNotFound) {
			return apperr.NewFieldValidation("users", "Referenced user does not exist.")
		}
		return err
	}

	return c.JSON(http.StatusCreated, dto.NewProject(project))
}

func (r *ProjectRouter) updateHandler(c echo.Context) error {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		return apperr.NewFieldValidation("pk", "Invalid project id.")
	}

	var req dto.UpdateProjectRequest
	if err := c.Bind(&req); err != nil {
		return apperr.NewValidationWrap("invalid request body", err)
	}
	if err := c.Validate(&req); err != nil {
		return err
	}

	project, err := r.projects.Rename(c.Request().Context(), id, req.Name)
	if err != nil {
		if errors.Is(err, storage.ErrNotFound) {
			return projectNotFound(c, id)
		}
		return err
	}

	return c.JSON(http.StatusOK, dto.NewProject(project))
}

func (r *ProjectRouter) deleteHandler(c echo.Context) error {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		return apperr.NewFieldValidation("pk", "Invalid project id.")
	}

	if err := r.projects.Delete(c.Request().Context(), id); err != nil {
		if errors.Is(err, storage.ErrNotFound) {
			return projectNotFound(c, id)
		}
		return err
	}

	return c.NoContent(http.StatusNoContent)
}
