package server

import (
	"context"
	"errors"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/labstack/echo/v4"
	echomiddleware "github.com/labstack/echo/v4/middleware"
	echoswagger "github.com/swaggo/echo-swagger"
	"golang.org/x/net/http2"

	"github.com/corporoom/taskhub/internal/apperr"
	"github.com/corporoom/taskhub/pkg/middleware"
	pkgserver "github.com/corporoom/taskhub/pkg/server"
)

const shutdownTimeout = 10 * time.Second

// Server wraps an echo instance with a builder-style setup chain and
// signal-driven graceful shutdown.
type Server struct {
	Echo *echo.Echo

	cfg           *Config
	healthChecker pkgserver.HealthChecker

	ctx      context.Context
	cancel   context.CancelFunc
	shutdown chan struct{}
}

func New(cfg *Config, healthChecker pkgserver.HealthChecker) *Server {
	e := echo.New()
	e.HideBanner = true
	e.HidePort = true

	ctx, cancel := context.WithCancel(context.Background())

	return &Server{
		Echo:          e,
		cfg:           cfg,
		healthChecker: healthChecker,
		ctx:           ctx,
		cancel:        cancel,
		shutdown:      make(chan struct{}),
	}
}

func (s *Server) SetupMiddlewares() *Server {
	s.Echo.Use(echomiddleware.Recover())
	s.Echo.Use(echomiddleware.CORSWithConfig(echomiddleware.CORSConfig{
		AllowOrigins: s.cfg.CorsOrigins,
	}))
	s.Echo.Use(middleware.Logger())
	return s
}

func (s *Server) SetupErrorHandler() *Server {
	s.Echo.HTTPErrorHandler = apperr.GlobalErrorHandler()
	return s
}

type echoValidator struct {
	validate *validator.Validate
}

func (v *echoValidator) Validate(i any) error {
	if err := v.validate.Struct(i); err != nil {
		var invalid *validator.InvalidValidationError
		if errors.As(err, &invalid) {
			return err
		}
		var verrs validator.ValidationErrors
		if errors.As(err, &verrs) && len(verrs) > 0 {
			first := verrs[0]
			return apperr.NewFieldValidation(toSnake(first.Field()), validationMessage(first))
		}
		return apperr.NewValidationWrap("invalid request body", err)
	}
	return nil
}

func validationMessage(fe validator.FieldError) string {
	switch fe.Tag() {
	case "required":
		return "This field is required."
	case "email":
		return "Enter a valid email address."
	case "min":
		return "Ensure this field has at least " + fe.Param() + " characters."
	case "max":
		return "Ensure this field has no more than " + fe.Param() + " characters."
	case "oneof":
		return "Value must be one of: " + fe.Param() + "."
	case "gtfield":
		return "Must be after " + toSnake(fe.Param()) + "."
	default:
		return "Invalid value."
	}
}

func toSnake(s string) string {
	out := make([]rune, 0, len(s)+4)
	for i, r := range s {
		if r >= 'A' && r <= 'Z' {
			if i > 0 {
				out = append(out, '_')
			}
			r += 'a' - 'A'
		}
		out = append(out, r)
	}
	return string(out)
}

func (s *Server) SetupValidator() *Server {
	s.Echo.Validator = &echoValidator{validate: validator.New()}
	return s
}

func (s *Server) SetupHealthChecks(path string) *Server {
	s.Echo.GET(path, func(c echo.Context) error {
		if !s.healthChecker.Healthy(c.Request().Context()) {
			return c.JSON(http.StatusServiceUnavailable, map[string]string{"status": "unhealthy"})
		}
		return c.JSON(http.StatusOK, map[string]string{"status": "ok"})
	})
	return s
}

func (s *Server) SetupOpenApi(path string) *Server {
	s.Echo.GET(path, echoswagger.WrapHandler)
	return s
}

// Context is canceled when shutdown begins. Pass it to long-lived resources.
func (s *Server) Context() context.Context {
	return s.ctx
}

// ShutdownSignal closes once a termination signal has been received.
func (s *Server) ShutdownSignal() <-chan struct{} {
	return s.shutdown
}

func (s *Server) Start() error {
	errCh := make(chan error, 1)

	go func() {
		addr := ":" + s.cfg.Port
		slog.Info("Starting server", "addr", addr, "http2", s.cfg.UseHTTP2)

		var err error
		if s.cfg.UseHTTP2 {
			err = s.Echo.StartH2CServer(addr, &http2.Server{})
		} else {
			err = s.Echo.Start(addr)
		}
		if err != nil && !errors.Is(err, http.ErrServerClosed) {
			errCh <- err
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)

	select {
	case err := <-errCh:
		s.cancel()
		close(s.shutdown)
		return err
	case sig := <-quit:
		slog.Info("Received shutdown signal", "signal", sig.String())
	}

	close(s.shutdown)

	ctx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()

	if err := s.Echo.Shutdown(ctx); err != nil {
		s.cancel()
		return err
	}

	s.cancel()
	slog.Info("Server stopped")
	return nil
}
