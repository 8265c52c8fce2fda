package router

import (
	"errors"
	"net/http"
	"strings"

	"github.com/labstack/echo/v4"

	"github.com/corporoom/taskhub/internal/apperr"
	"github.com/corporoom/taskhub/internal/auth"
	"github.com/corporoom/taskhub/internal/domain"
	"github.com/corporoom/taskhub/internal/dto"
	"github.com/corporoom/taskhub/internal/storage"
)

// AuthRouter serves the token endpoints and user registration.
// These routes are public; everything else sits behind the bearer middleware.
type AuthRouter struct {
	e                 *echo.Echo
	users             storage.UserStore
	tokens            *auth.TokenManager
	restrictedDomains []string
}

type AuthRouterOption func(*AuthRouter)

// WithRestrictedDomains overrides the default email domain blocklist
func WithRestrictedDomains(domains []string) AuthRouterOption {
	return func(r *AuthRouter) {
		r.restrictedDomains = domains
	}
}

func NewAuthRouter(e *echo.Echo, users storage.UserStore, tokens *auth.TokenManager, opts ...AuthRouterOption) *AuthRouter {
	r := &AuthRouter{
		e:                 e,
		users:             users,
		tokens:            tokens,
		restrictedDomains: auth.DefaultRestrictedDomains,
	}
	for _, opt := range opts {
		opt(r)
	}
	return r
}

func (r *AuthRouter) Bind() {
	g := r.e.Group("/api")
	g.POST("/token", r.obtainHandler)
	g.POST("/token/refresh", r.refreshHandler)
	g.POST("/token/verify", r.verifyHandler)
	g.POST("/auths/users", r.registerHandler)
}

func (r *AuthRouter) obtainHandler(c echo.Context) error {
	var req dto.TokenObtainRequest
	if err := c.Bind(&req); err != nil {
		return apperr.NewValidationWrap("invalid request body", err)
	}
	if err := c.Validate(&req); err != nil {
		return err
	}

	user, err := r.users.GetByEmail(c.Request().Context(), strings.ToLower(req.Email))
	if err != nil {
		if errors.Is(err, storage.ErrNotFound) {
			return apperr.NewFieldValidation("email", "User with this email was not found.")
		}
		return err
	}

	if !user.IsActive {
		return apperr.NewFieldValidation("email", "This account is inactive.")
	}

	if !auth.CheckPasswordHash(req.Password, user.PasswordHash) {
		return apperr.NewFieldValidation("password", "Incorrect password.")
	}

	pair, err := r.tokens.ObtainPair(user.ID)
	if err != nil {
		return err
	}

	return c.JSON(http.StatusOK, pair)
}

func (r *AuthRouter) refreshHandler(c echo.Context) error {
	var req dto.TokenRefreshRequest
	if err := c.Bind(&req); err != nil {
		return apperr.NewValidationWrap("invalid request body", err)
	}
	if err := c.Validate(&req); err != nil {
		return err
	}

	access, err := r.tokens.Refresh(req.Refresh)
	if err != nil {
		return echo.NewHTTPError(http.StatusUnauthorized, "token is invalid or expired")
	}

	return c.JSON(http.StatusOK, dto.TokenAccessResponse{Access: access})
}

func (r *AuthRouter) verifyHandler(c echo.Context) error {
	var req dto.TokenVerifyRequest
	if err := c.Bind(&req); err != nil {
		return apperr.NewValidationWrap("invalid request body", err)
	}
	if err := c.Validate(&req); err != nil {
		return err
	}

	if err := r.tokens.Verify(req.Token); err != nil {
		return echo.NewHTTPError(http.StatusUnauthorized, "token is invalid or expired")
	}

	return c.JSON(http.StatusOK, map[string]any{})
}

func (r *AuthRouter) registerHandler(c echo.Context) error {
	var req dto.RegisterUserRequest
	if err := c.Bind(&req); err != nil {
		return apperr.NewValidationWrap("invalid request body", err)
	}
	if err := c.Validate(&req); err != nil {
		return err
	}

	email := strings.ToLower(req.Email)
	if err := auth.ValidateEmailDomain(email, r.restrictedDomains); err != nil {
		return err
	}

	hash, err := auth.HashPassword(req.Password)
	if err != nil {
		return err
	}

	user, err := r.users.Create(c.Request().Context(), domain.User{
		Email:        email,
		FullName:     req.FullName,
		PasswordHash: hash,
		IsActive:     true,
		CompanyID:    req.CompanyID,
	})
	if err != nil {
		if errors.Is(err, storage.ErrEmailTaken) {
			return apperr.NewFieldValidation("email", "User with this email already exists.")
		}
		return err
	}

	return c.JSON(http.StatusCreated, dto.NewUser(user))
}
