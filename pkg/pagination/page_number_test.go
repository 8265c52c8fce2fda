package pagination

import (
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newPageRequest(query string) *http.Request {
	return httptest.NewRequest(http.MethodGet, "/api/tasks/projects"+query, nil)
}

func TestPageNumberPaginator_Paginate(t *testing.T) {
	records := newRecords(13)
	p := NewPageNumberPaginator[record](6)

	tests := []struct {
		name      string
		query     string
		wantFirst string
		wantLen   int
		wantNext  bool
		wantPrev  bool
	}{
		{
			name:      "implicit first page",
			query:     "",
			wantFirst: "record-1",
			wantLen:   6,
			wantNext:  true,
			wantPrev:  false,
		},
		{
			name:      "middle page",
			query:     "?page=2",
			wantFirst: "record-7",
			wantLen:   6,
			wantNext:  true,
			wantPrev:  true,
		},
		{
			name:      "short last page",
			query:     "?page=3",
			wantFirst: "record-13",
			wantLen:   1,
			wantNext:  false,
			wantPrev:  true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			page, err := p.Paginate(newPageRequest(tt.query), records)
			require.NoError(t, err)
			require.Len(t, page.Items, tt.wantLen)
			assert.Equal(t, tt.wantFirst, page.Items[0].Name)

			meta := page.Envelope(page.Items).Pagination.(NumberMeta)
			assert.Equal(t, 3, meta.Count)
			assert.Equal(t, tt.wantNext, meta.Next != nil)
			assert.Equal(t, tt.wantPrev, meta.Previous != nil)
		})
	}
}

func TestPageNumberPaginator_PageNotFound(t *testing.T) {
	records := newRecords(13)
	p := NewPageNumberPaginator[record](6)

	tests := []struct {
		name  string
		query string
	}{
		{"zero", "?page=0"},
		{"negative", "?page=-1"},
		{"past the end", "?page=4"},
		{"non-numeric", "?page=two"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			page, err := p.Paginate(newPageRequest(tt.query), records)
			assert.Nil(t, page, "no partial page on failure")

			var notFound *PageNotFoundError
			require.True(t, errors.As(err, &notFound))
			assert.Equal(t, 3, notFound.TotalPages)
		})
	}
}

func TestPageNumberPaginator_EmptyCollection(t *testing.T) {
	p := NewPageNumberPaginator[record](6)

	page, err := p.Paginate(newPageRequest(""), nil)
	require.NoError(t, err)
	assert.Empty(t, page.Items)

	meta := page.Envelope(page.Items).Pagination.(NumberMeta)
	assert.Equal(t, 1, meta.Count)
	assert.Nil(t, meta.Next)
	assert.Nil(t, meta.Previous)
}

func TestPageNumberPaginator_PreviousLinkDropsParamOnFirstPage(t *testing.T) {
	records := newRecords(13)
	p := NewPageNumberPaginator[record](6)

	page, err := p.Paginate(newPageRequest("?page=2"), records)
	require.NoError(t, err)

	meta := page.Envelope(page.Items).Pagination.(NumberMeta)
	require.NotNil(t, meta.Previous)
	assert.Nil(t, TokenParam(meta.Previous, PageParam))
}
