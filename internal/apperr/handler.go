package apperr

import (
	"errors"
	"fmt"
	"log/slog"
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/corporoom/taskhub/pkg/pagination"
)

// GlobalErrorHandler maps application errors to JSON responses.
// Validation failures keep the field-keyed body shape clients rely on.
func GlobalErrorHandler() echo.HTTPErrorHandler {
	return func(err error, c echo.Context) {
		if c.Response().Committed {
			return
		}

		var ve *ValidationError
		if errors.As(err, &ve) {
			if ve.Field != "" {
				_ = c.JSON(http.StatusBadRequest, map[string][]string{ve.Field: {ve.Message}})
				return
			}
			_ = c.JSON(http.StatusBadRequest, map[string]string{"error": ve.Message, "title": "validation error"})
			return
		}

		var pnf *pagination.PageNotFoundError
		if errors.As(err, &pnf) {
			_ = c.JSON(http.StatusNotFound, map[string][]string{"page": {pnf.Error()}})
			return
		}

		var ilo *pagination.InvalidLimitOffsetError
		if errors.As(err, &ilo) {
			_ = c.JSON(http.StatusBadRequest, map[string][]string{ilo.Param: {ilo.Error()}})
			return
		}

		var he *echo.HTTPError
		if errors.As(err, &he) {
			msg := fmt.Sprintf("%v", he.Message)
			_ = c.JSON(he.Code, map[string]string{"error": msg})
			return
		}

		slog.Error("Unhandled error", "error", err)
		_ = c.JSON(http.StatusInternalServerError, map[string]string{"error": "internal server error"})
	}
}
