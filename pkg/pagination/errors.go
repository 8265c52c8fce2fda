package pagination

import "fmt"

// PageNotFoundError reports a page number outside [1, TotalPages]
type PageNotFoundError struct {
	Page       string
	TotalPages int
}

func (e *PageNotFoundError) Error() string {
	return fmt.Sprintf("invalid page %q: expected a number between 1 and %d", e.Page, e.TotalPages)
}

// InvalidLimitOffsetError reports a non-numeric limit or a negative offset
type InvalidLimitOffsetError struct {
	Param string
	Value string
}

func (e *InvalidLimitOffsetError) Error() string {
	return fmt.Sprintf("invalid %s %q", e.Param, e.Value)
}
