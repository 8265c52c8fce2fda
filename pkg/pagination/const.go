package pagination

// DefaultPageSize is the cursor paginator's page size when none is configured
const DefaultPageSize = 50

// MaxPageSize caps the per-request page size; larger requests are clamped
const MaxPageSize = 200

// DefaultOrdering is applied when no ordering is configured.
// A leading '-' means descending.
const DefaultOrdering = "-created_at"

const (
	PageSizeParam = "page_size"
	CursorParam   = "cursor"
	PageParam     = "page"
	LimitParam    = "limit"
	OffsetParam   = "offset"
)
