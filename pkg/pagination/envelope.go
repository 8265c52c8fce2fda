package pagination

import (
	"encoding/json"
	"net/http"

	"github.com/labstack/echo/v4"
)

// Envelope is the uniform response shape produced by every paginator:
// a pagination metadata block plus the serialized records for the page.
type Envelope struct {
	Pagination any `json:"pagination"`
	Data       any `json:"data"`

	extra map[string]any
}

// MarshalJSON merges caller-supplied extra fields into the top level
// of the envelope. The pagination and data keys cannot be shadowed.
func (e *Envelope) MarshalJSON() ([]byte, error) {
	m := make(map[string]any, len(e.extra)+2)
	for k, v := range e.extra {
		m[k] = v
	}
	m["pagination"] = e.Pagination
	m["data"] = e.Data

	return json.Marshal(m)
}

// Responder is the capability set shared by every page variant, regardless
// of pagination strategy. Envelope returns the plain structure for callers
// that embed the page in another payload, Respond writes it as an HTTP
// response.
type Responder interface {
	Envelope(data any) *Envelope
	Respond(c echo.Context, data any) error
}

// CursorMeta is the pagination block of the cursor strategy
type CursorMeta struct {
	Next           *string `json:"next"`
	Previous       *string `json:"previous"`
	NextCursor     *string `json:"next_cursor"`
	PreviousCursor *string `json:"previous_cursor"`
	PageSize       int     `json:"page_size"`
	Returned       int     `json:"returned"`
	MaxPageSize    int     `json:"max_page_size"`
	Ordering       string  `json:"ordering"`
}

// NumberMeta is the pagination block of the page-number strategy.
// Count is the total number of pages.
type NumberMeta struct {
	Next     *string `json:"next"`
	Previous *string `json:"previous"`
	Count    int     `json:"count"`
}

// OffsetMeta is the pagination block of the limit-offset strategy.
// It deliberately carries no count; consumers depend on the shape as is.
type OffsetMeta struct {
	Next     *string `json:"next"`
	Previous *string `json:"previous"`
}

func respond(c echo.Context, e *Envelope) error {
	return c.JSON(http.StatusOK, e)
}
