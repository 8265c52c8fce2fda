package pagination

import (
	"log/slog"
	"net/http"
	"strconv"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
)

// CursorPaginator slices an already-ordered collection using opaque cursor
// tokens. The collection owner is responsible for the ordering; the paginator
// only locates the boundary record by ID.
//
// A malformed or stale token (record no longer present) is not an error:
// the page silently starts from the beginning of the collection.
type CursorPaginator[T any] struct {
	pageSize int
	ordering string
	extra    map[string]any
	idFn     func(T) uuid.UUID
}

type cursorOptions struct {
	pageSize int
	ordering string
	extra    map[string]any
}

type CursorOption func(*cursorOptions)

// WithPageSize sets the default page size, clamped to [1, MaxPageSize]
func WithPageSize(n int) CursorOption {
	return func(o *cursorOptions) {
		o.pageSize = n
	}
}

// WithOrdering sets the ordering advertised in the envelope
func WithOrdering(ordering string) CursorOption {
	return func(o *cursorOptions) {
		o.ordering = ordering
	}
}

// WithExtra merges static fields into the top level of every envelope
func WithExtra(extra map[string]any) CursorOption {
	return func(o *cursorOptions) {
		o.extra = extra
	}
}

func NewCursorPaginator[T any](idFn func(T) uuid.UUID, opts ...CursorOption) *CursorPaginator[T] {
	o := cursorOptions{
		pageSize: DefaultPageSize,
		ordering: DefaultOrdering,
	}
	for _, opt := range opts {
		opt(&o)
	}

	if o.pageSize < 1 {
		o.pageSize = DefaultPageSize
	}
	if o.pageSize > MaxPageSize {
		o.pageSize = MaxPageSize
	}

	return &CursorPaginator[T]{
		pageSize: o.pageSize,
		ordering: o.ordering,
		extra:    o.extra,
		idFn:     idFn,
	}
}

// Paginate slices items at the boundary referenced by the request's cursor
// token. items must already be ordered by the configured ordering.
func (p *CursorPaginator[T]) Paginate(req *http.Request, items []T) *CursorPage[T] {
	size := p.requestPageSize(req)

	cur, err := DecodeCursor(req.URL.Query().Get(CursorParam))
	if err != nil {
		slog.Debug("malformed cursor, paging from the start", "error", err)
		cur = nil
	}

	n := len(items)
	var start, end int

	switch {
	case cur == nil:
		start, end = 0, min(size, n)
	case cur.Reverse:
		bound := p.indexOf(items, cur.ID)
		if bound < 0 {
			// boundary record is gone, fall back to the first page
			start, end = 0, min(size, n)
		} else {
			end = bound
			start = max(0, end-size)
		}
	default:
		// a stale forward token degrades to the start as well: indexOf
		// returns -1 and the window begins at zero
		start = p.indexOf(items, cur.ID) + 1
		end = min(start+size, n)
	}

	page := &CursorPage[T]{
		Items:    items[start:end],
		req:      req,
		pageSize: size,
		ordering: p.ordering,
		extra:    p.extra,
	}

	switch {
	case end > start:
		if end < n {
			page.next = &Cursor{ID: p.idFn(items[end-1])}
		}
		if start > 0 {
			page.prev = &Cursor{ID: p.idFn(items[start]), Reverse: true}
		}
	case start > 0:
		// the window is empty but records precede it: the collection shrank
		// behind the token. Point previous at the first page so the client
		// is not stranded.
		page.prevFirst = true
	}

	return page
}

// requestPageSize resolves ?page_size=, clamping to [1, MaxPageSize].
// Out-of-range values are clamped, never rejected.
func (p *CursorPaginator[T]) requestPageSize(req *http.Request) int {
	raw := req.URL.Query().Get(PageSizeParam)
	if raw == "" {
		return p.pageSize
	}

	size, err := strconv.Atoi(raw)
	if err != nil {
		return p.pageSize
	}
	if size < 1 {
		return 1
	}
	if size > MaxPageSize {
		return MaxPageSize
	}
	return size
}

func (p *CursorPaginator[T]) indexOf(items []T, id uuid.UUID) int {
	for i, item := range items {
		if p.idFn(item) == id {
			return i
		}
	}
	return -1
}

// CursorPage is one page of a cursor-paginated collection
type CursorPage[T any] struct {
	Items []T

	req        *http.Request
	pageSize   int
	ordering   string
	extra      map[string]any
	next, prev *Cursor
	prevFirst  bool
}

// Envelope builds the plain response structure for this page.
// data is the serialized form of Items, kept separate so callers control
// the wire representation.
func (p *CursorPage[T]) Envelope(data any) *Envelope {
	nextLink, prevLink := p.links()

	return &Envelope{
		Pagination: CursorMeta{
			Next:           nextLink,
			Previous:       prevLink,
			NextCursor:     TokenParam(nextLink, CursorParam),
			PreviousCursor: TokenParam(prevLink, CursorParam),
			PageSize:       p.pageSize,
			Returned:       len(p.Items),
			MaxPageSize:    MaxPageSize,
			Ordering:       p.ordering,
		},
		Data:  data,
		extra: p.extra,
	}
}

// Respond writes the envelope as a JSON response
func (p *CursorPage[T]) Respond(c echo.Context, data any) error {
	return respond(c, p.Envelope(data))
}

func (p *CursorPage[T]) links() (next *string, prev *string) {
	if p.next != nil {
		l := buildLink(p.req, CursorParam, MustEncodeCursor(p.next.ID, p.next.Reverse))
		next = &l
	}
	if p.prev != nil {
		l := buildLink(p.req, CursorParam, MustEncodeCursor(p.prev.ID, p.prev.Reverse))
		prev = &l
	} else if p.prevFirst {
		l := dropParam(p.req, CursorParam)
		prev = &l
	}
	return next, prev
}
