package pagination

import (
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type record struct {
	ID        uuid.UUID
	Name      string
	CreatedAt time.Time
}

func recordID(r record) uuid.UUID { return r.ID }

// newRecords builds n records ordered by descending creation time,
// the way a store would return them
func newRecords(n int) []record {
	base := time.Date(2025, 6, 1, 12, 0, 0, 0, time.UTC)
	records := make([]record, n)
	for i := range records {
		records[i] = record{
			ID:        uuid.New(),
			Name:      fmt.Sprintf("record-%d", i+1),
			CreatedAt: base.Add(-time.Duration(i) * time.Minute),
		}
	}
	return records
}

func newCursorRequest(query string) *http.Request {
	return httptest.NewRequest(http.MethodGet, "/api/tasks"+query, nil)
}

func TestCursorPaginator_FirstPage(t *testing.T) {
	records := newRecords(12)
	p := NewCursorPaginator(recordID, WithPageSize(5))

	page := p.Paginate(newCursorRequest(""), records)

	require.Len(t, page.Items, 5)
	assert.Equal(t, "record-1", page.Items[0].Name)
	assert.Equal(t, "record-5", page.Items[4].Name)

	env := page.Envelope(page.Items)
	meta := env.Pagination.(CursorMeta)
	assert.Nil(t, meta.Previous)
	assert.Nil(t, meta.PreviousCursor)
	require.NotNil(t, meta.Next)
	require.NotNil(t, meta.NextCursor)
	assert.Equal(t, 5, meta.Returned)
	assert.Equal(t, 5, meta.PageSize)
	assert.Equal(t, MaxPageSize, meta.MaxPageSize)
	assert.Equal(t, DefaultOrdering, meta.Ordering)
}

func TestCursorPaginator_SecondPage(t *testing.T) {
	records := newRecords(12)
	p := NewCursorPaginator(recordID, WithPageSize(5))

	first := p.Paginate(newCursorRequest(""), records)
	meta := first.Envelope(first.Items).Pagination.(CursorMeta)
	require.NotNil(t, meta.NextCursor)

	second := p.Paginate(newCursorRequest("?cursor="+*meta.NextCursor), records)
	require.Len(t, second.Items, 5)
	assert.Equal(t, "record-6", second.Items[0].Name)
	assert.Equal(t, "record-10", second.Items[4].Name)

	secondMeta := second.Envelope(second.Items).Pagination.(CursorMeta)
	assert.NotNil(t, secondMeta.Next)
	assert.NotNil(t, secondMeta.Previous)
}

func TestCursorPaginator_NextThenPreviousRoundTrip(t *testing.T) {
	records := newRecords(12)
	p := NewCursorPaginator(recordID, WithPageSize(5))

	first := p.Paginate(newCursorRequest(""), records)
	firstMeta := first.Envelope(first.Items).Pagination.(CursorMeta)
	require.NotNil(t, firstMeta.NextCursor)

	second := p.Paginate(newCursorRequest("?cursor="+*firstMeta.NextCursor), records)
	secondMeta := second.Envelope(second.Items).Pagination.(CursorMeta)
	require.NotNil(t, secondMeta.PreviousCursor)

	back := p.Paginate(newCursorRequest("?cursor="+*secondMeta.PreviousCursor), records)
	require.NotEmpty(t, back.Items)
	assert.Equal(t, first.Items[0].ID, back.Items[0].ID, "previous page should cover the same leading record")
}

func TestCursorPaginator_PageSizeClamping(t *testing.T) {
	records := newRecords(3)
	p := NewCursorPaginator(recordID, WithPageSize(5))

	tests := []struct {
		name     string
		query    string
		wantSize int
	}{
		{"above max is clamped to max", fmt.Sprintf("?page_size=%d", MaxPageSize+100), MaxPageSize},
		{"zero is clamped to one", "?page_size=0", 1},
		{"negative is clamped to one", "?page_size=-3", 1},
		{"non-numeric falls back to the default", "?page_size=abc", 5},
		{"absent falls back to the default", "", 5},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			page := p.Paginate(newCursorRequest(tt.query), records)
			meta := page.Envelope(page.Items).Pagination.(CursorMeta)
			assert.Equal(t, tt.wantSize, meta.PageSize)
			assert.LessOrEqual(t, meta.Returned, meta.PageSize)
		})
	}
}

func TestCursorPaginator_TolerantDecode(t *testing.T) {
	records := newRecords(8)
	p := NewCursorPaginator(recordID, WithPageSize(5))

	t.Run("malformed token pages from the start", func(t *testing.T) {
		page := p.Paginate(newCursorRequest("?cursor=%21%21not-a-token"), records)
		require.Len(t, page.Items, 5)
		assert.Equal(t, records[0].ID, page.Items[0].ID)
	})

	t.Run("stale token pages from the start", func(t *testing.T) {
		gone := MustEncodeCursor(uuid.New(), false)
		page := p.Paginate(newCursorRequest("?cursor="+gone), records)
		require.Len(t, page.Items, 5)
		assert.Equal(t, records[0].ID, page.Items[0].ID)
	})

	t.Run("stale reverse token pages from the start", func(t *testing.T) {
		gone := MustEncodeCursor(uuid.New(), true)
		page := p.Paginate(newCursorRequest("?cursor="+gone), records)
		require.Len(t, page.Items, 5)
		assert.Equal(t, records[0].ID, page.Items[0].ID)
	})
}

func TestCursorPaginator_EmptyTailPageLinksBack(t *testing.T) {
	records := newRecords(8)
	p := NewCursorPaginator(recordID, WithPageSize(5))

	// a forward token at the final record yields an empty page once the
	// records behind it are gone; the client still gets a way back
	token := MustEncodeCursor(records[len(records)-1].ID, false)
	page := p.Paginate(newCursorRequest("?cursor="+token), records)
	require.Empty(t, page.Items)

	meta := page.Envelope(page.Items).Pagination.(CursorMeta)
	assert.Nil(t, meta.Next)
	require.NotNil(t, meta.Previous)
	// previous points at the first page, so it carries no cursor token
	assert.Nil(t, meta.PreviousCursor)
	assert.NotContains(t, *meta.Previous, CursorParam+"=")
}

func TestCursorPaginator_CursorLinkEquivalence(t *testing.T) {
	records := newRecords(7)
	p := NewCursorPaginator(recordID, WithPageSize(5))

	page := p.Paginate(newCursorRequest(""), records)
	meta := page.Envelope(page.Items).Pagination.(CursorMeta)

	// next_cursor is nil exactly when next is nil, same for previous
	assert.Equal(t, meta.Next == nil, meta.NextCursor == nil)
	assert.Equal(t, meta.Previous == nil, meta.PreviousCursor == nil)

	last := p.Paginate(newCursorRequest("?cursor="+*meta.NextCursor), records)
	lastMeta := last.Envelope(last.Items).Pagination.(CursorMeta)
	assert.Nil(t, lastMeta.Next)
	assert.Nil(t, lastMeta.NextCursor)
	assert.NotNil(t, lastMeta.Previous)
	assert.NotNil(t, lastMeta.PreviousCursor)
}

func TestCursorPaginator_EmptyCollection(t *testing.T) {
	p := NewCursorPaginator(recordID)

	page := p.Paginate(newCursorRequest(""), nil)
	meta := page.Envelope(page.Items).Pagination.(CursorMeta)

	assert.Empty(t, page.Items)
	assert.Zero(t, meta.Returned)
	assert.Nil(t, meta.Next)
	assert.Nil(t, meta.Previous)
}

func TestCursorPage_EnvelopeIdempotent(t *testing.T) {
	records := newRecords(12)
	p := NewCursorPaginator(recordID, WithPageSize(5))

	page := p.Paginate(newCursorRequest(""), records)

	first, err := json.Marshal(page.Envelope(page.Items))
	require.NoError(t, err)
	second, err := json.Marshal(page.Envelope(page.Items))
	require.NoError(t, err)

	assert.JSONEq(t, string(first), string(second))
}

func TestCursorPage_ExtraFields(t *testing.T) {
	records := newRecords(2)
	p := NewCursorPaginator(recordID, WithExtra(map[string]any{"scope": "company"}))

	page := p.Paginate(newCursorRequest(""), records)
	b, err := json.Marshal(page.Envelope([]string{"a", "b"}))
	require.NoError(t, err)

	var decoded map[string]any
	require.NoError(t, json.Unmarshal(b, &decoded))
	assert.Equal(t, "company", decoded["scope"])
	assert.Contains(t, decoded, "pagination")
	assert.Contains(t, decoded, "data")
}
