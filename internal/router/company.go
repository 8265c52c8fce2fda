package router

import (
	"errors"
	"net/http"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"

	"github.com/corporoom/taskhub/internal/apperr"
	"github.com/corporoom/taskhub/internal/domain"
	"github.com/corporoom/taskhub/internal/dto"
	"github.com/corporoom/taskhub/internal/storage"
	"github.com/corporoom/taskhub/pkg/pagination"
)

// CompanyRouter serves company and subscription management.
type CompanyRouter struct {
	e         *echo.Echo
	companies storage.CompanyStore
	authMw    echo.MiddlewareFunc
	paginator *pagination.LimitOffsetPaginator[domain.Company]
}

func NewCompanyRouter(e *echo.Echo, companies storage.CompanyStore, authMw echo.MiddlewareFunc) *CompanyRouter {
	return &CompanyRouter{
		e:         e,
		companies: companies,
		authMw:    authMw,
		paginator: pagination.NewLimitOffsetPaginator[domain.Company](
			pagination.LimitOffsetDefaultLimit,
			pagination.LimitOffsetMaxLimit,
		),
	}
}

func (r *CompanyRouter) Bind() {
	g := r.e.Group("/api/auths/companies", r.authMw)
	g.GET("", r.listHandler)
	g.POST("", r.createHandler)
	g.POST("/:id/subscriptions", r.addSubscriptionHandler)
}

func (r *CompanyRouter) listHandler(c echo.Context) error {
	companies, err := r.companies.List(c.Request().Context())
	if err != nil {
		return err
	}

	page, err := r.paginator.Paginate(c.Request(), companies)
	if err != nil {
		return err
	}
	return page.Respond(c, dto.NewCompanyList(page.Items))
}

func (r *CompanyRouter) createHandler(c echo.Context) error {
	var req dto.CreateCompanyRequest
	if err := c.Bind(&req); err != nil {
		return apperr.NewValidationWrap("invalid request body", err)
	}
	if err := c.Validate(&req); err != nil {
		return err
	}

	company, err := r.companies.Create(c.Request().Context(), domain.Company{Name: req.Name})
	if err != nil {
		return err
	}

	return c.JSON(http.StatusCreated, dto.NewCompany(company))
}

func (r *CompanyRouter) addSubscriptionHandler(c echo.Context) error {
	companyID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		return apperr.NewFieldValidation("pk", "Invalid company id.")
	}

	var req dto.CreateSubscriptionRequest
	if err := c.Bind(&req); err != nil {
		return apperr.NewValidationWrap("invalid request body", err)
	}
	if err := c.Validate(&req); err != nil {
		return err
	}

	sub, err := r.companies.AddSubscription(c.Request().Context(), domain.Subscription{
		CompanyID: companyID,
		StartDate: req.StartDate,
		EndDate:   req.EndDate,
	})
	if err != nil {
		switch {
		case errors.Is(err, storage.ErrSubscriptionOverlap):
			return apperr.NewFieldValidation("subscription", "Subscription overlaps an existing one.")
		case errors.Is(err, storage.ErrNotFound):
			return echo.NewHTTPError(http.StatusNotFound, "company does not exist")
		}
		return err
	}

	return c.JSON(http.StatusCreated, dto.NewSubscription(sub))
}
