package pagination

import (
	"net/http"
	"strconv"

	"github.com/labstack/echo/v4"
)

const (
	LimitOffsetDefaultLimit = 2
	LimitOffsetMaxLimit     = 5
)

// LimitOffsetPaginator slices a collection by ?limit= and ?offset=.
// The limit is clamped to maxLimit; a non-numeric limit or a negative
// offset is a client error.
type LimitOffsetPaginator[T any] struct {
	limit    int
	maxLimit int
}

func NewLimitOffsetPaginator[T any](limit, maxLimit int) *LimitOffsetPaginator[T] {
	if limit < 1 {
		limit = LimitOffsetDefaultLimit
	}
	if maxLimit < 1 {
		maxLimit = LimitOffsetMaxLimit
	}
	return &LimitOffsetPaginator[T]{limit: limit, maxLimit: maxLimit}
}

func (p *LimitOffsetPaginator[T]) Paginate(req *http.Request, items []T) (*OffsetPage[T], error) {
	limit := p.limit
	if raw := req.URL.Query().Get(LimitParam); raw != "" {
		n, err := strconv.Atoi(raw)
		if err != nil || n < 1 {
			return nil, &InvalidLimitOffsetError{Param: LimitParam, Value: raw}
		}
		limit = min(n, p.maxLimit)
	}

	offset := 0
	if raw := req.URL.Query().Get(OffsetParam); raw != "" {
		n, err := strconv.Atoi(raw)
		if err != nil || n < 0 {
			return nil, &InvalidLimitOffsetError{Param: OffsetParam, Value: raw}
		}
		offset = n
	}

	start := min(offset, len(items))
	end := min(start+limit, len(items))

	return &OffsetPage[T]{
		Items:  items[start:end],
		req:    req,
		limit:  limit,
		offset: offset,
		total:  len(items),
	}, nil
}

// OffsetPage is one page of a limit-offset-paginated collection
type OffsetPage[T any] struct {
	Items []T

	req    *http.Request
	limit  int
	offset int
	total  int
}

// Envelope builds the plain response structure for this page.
// The pagination block carries links only, no count.
func (p *OffsetPage[T]) Envelope(data any) *Envelope {
	var next, prev *string

	if p.offset+p.limit < p.total {
		l := buildLink(p.req, OffsetParam, strconv.Itoa(p.offset+p.limit))
		next = &l
	}
	if p.offset > 0 {
		var l string
		if p.offset-p.limit <= 0 {
			l = dropParam(p.req, OffsetParam)
		} else {
			l = buildLink(p.req, OffsetParam, strconv.Itoa(p.offset-p.limit))
		}
		prev = &l
	}

	return &Envelope{
		Pagination: OffsetMeta{
			Next:     next,
			Previous: prev,
		},
		Data: data,
	}
}

// Respond writes the envelope as a JSON response
func (p *OffsetPage[T]) Respond(c echo.Context, data any) error {
	return respond(c, p.Envelope(data))
}
