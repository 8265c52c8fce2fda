package router

import (
	"github.com/google/uuid"
	"github.com/labstack/echo/v4"

	"github.com/corporoom/taskhub/internal/domain"
	"github.com/corporoom/taskhub/internal/dto"
	"github.com/corporoom/taskhub/internal/storage"
	"github.com/corporoom/taskhub/pkg/pagination"
)

// UserRouter serves the authenticated user listing.
type UserRouter struct {
	e         *echo.Echo
	users     storage.UserStore
	authMw    echo.MiddlewareFunc
	paginator *pagination.CursorPaginator[domain.User]
}

func NewUserRouter(e *echo.Echo, users storage.UserStore, authMw echo.MiddlewareFunc) *UserRouter {
	return &UserRouter{
		e:      e,
		users:  users,
		authMw: authMw,
		paginator: pagination.NewCursorPaginator(
			func(u domain.User) uuid.UUID { return u.ID },
		),
	}
}

func (r *UserRouter) Bind() {
	r.e.GET("/api/auths/users", r.listHandler, r.authMw)
}

func (r *UserRouter) listHandler(c echo.Context) error {
	users, err := r.users.List(c.Request().Context())
	if err != nil {
		return err
	}

	page := r.paginator.Paginate(c.Request(), users)
	return page.Respond(c, dto.NewUserList(page.Items))
}
