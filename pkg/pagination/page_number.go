package pagination

import (
	"net/http"
	"strconv"

	"github.com/labstack/echo/v4"
)

// PageNumberDefaultSize is the page size when none is configured
const PageNumberDefaultSize = 6

// PageNumberPaginator slices a collection into fixed-size numbered pages.
// Unlike the cursor variant, an out-of-range page is a hard failure.
type PageNumberPaginator[T any] struct {
	pageSize int
}

func NewPageNumberPaginator[T any](pageSize int) *PageNumberPaginator[T] {
	if pageSize < 1 {
		pageSize = PageNumberDefaultSize
	}
	return &PageNumberPaginator[T]{pageSize: pageSize}
}

// Paginate resolves ?page= (default 1) and slices the collection.
// Fails with PageNotFoundError when the page is outside [1, totalPages];
// no partial page is produced.
func (p *PageNumberPaginator[T]) Paginate(req *http.Request, items []T) (*NumberPage[T], error) {
	totalPages := (len(items) + p.pageSize - 1) / p.pageSize
	if totalPages < 1 {
		// an empty collection still has one, empty, first page
		totalPages = 1
	}

	number := 1
	if raw := req.URL.Query().Get(PageParam); raw != "" {
		n, err := strconv.Atoi(raw)
		if err != nil || n < 1 || n > totalPages {
			return nil, &PageNotFoundError{Page: raw, TotalPages: totalPages}
		}
		number = n
	}

	start := (number - 1) * p.pageSize
	end := min(start+p.pageSize, len(items))

	return &NumberPage[T]{
		Items:      items[start:end],
		req:        req,
		number:     number,
		totalPages: totalPages,
	}, nil
}

// NumberPage is one page of a page-number-paginated collection
type NumberPage[T any] struct {
	Items []T

	req        *http.Request
	number     int
	totalPages int
}

// Envelope builds the plain response structure for this page.
// Count is the total page count, not the record count.
func (p *NumberPage[T]) Envelope(data any) *Envelope {
	var next, prev *string

	if p.number < p.totalPages {
		l := buildLink(p.req, PageParam, strconv.Itoa(p.number+1))
		next = &l
	}
	if p.number > 1 {
		var l string
		if p.number == 2 {
			// the first page is addressed without a page param
			l = dropParam(p.req, PageParam)
		} else {
			l = buildLink(p.req, PageParam, strconv.Itoa(p.number-1))
		}
		prev = &l
	}

	return &Envelope{
		Pagination: NumberMeta{
			Next:     next,
			Previous: prev,
			Count:    p.totalPages,
		},
		Data: data,
	}
}

// Respond writes the envelope as a JSON response
func (p *NumberPage[T]) Respond(c echo.Context, data any) error {
	return respond(c, p.Envelope(data))
}
