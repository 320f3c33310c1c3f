package handler_test

import (
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"

	"art-atlas/internal/catalog"
	"art-atlas/internal/domain"
	"art-atlas/internal/dto"
	"art-atlas/internal/middleware"
	"art-atlas/internal/timeline"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func decode[T any](t *testing.T, body io.Reader) T {
	t.Helper()
	var out T
	require.NoError(t, json.NewDecoder(body).Decode(&out))
	return out
}

func TestCatalogHandler_ListItems(t *testing.T) {
	app, m := newTestApp()
	var got catalog.Criteria
	m.catalog.ListItemsFunc = func(c catalog.Criteria) *dto.ItemsResponse {
		got = c
		return &dto.ItemsResponse{Items: []domain.ArtItem{{ID: "nok", Title: "Nok Head"}}, Count: 1, Total: 5}
	}

	req := httptest.NewRequest(http.MethodGet, "/api/items?q=head&type=sculpture&century=all&material=clay&region=Nigeria&art_type=sculpture&exam=true", nil)
	resp, err := app.Test(req)
	require.NoError(t, err)
	assert.Equal(t, http.StatusOK, resp.StatusCode)

	assert.Equal(t, catalog.Criteria{
		Search: "head", Type: "sculpture", Century: "all", ArtType: "sculpture",
		Material: "clay", Region: "Nigeria", ExamOnly: true,
	}, got)

	body := decode[dto.ItemsResponse](t, resp.Body)
	assert.Equal(t, 1, body.Count)
	assert.Equal(t, "nok", body.Items[0].ID)
}

func TestCatalogHandler_SearchTooLong(t *testing.T) {
	app, _ := newTestApp()
	long := make([]byte, 201)
	for i := range long {
		long[i] = 'a'
	}
	resp, err := app.Test(httptest.NewRequest(http.MethodGet, "/api/items?q="+string(long), nil))
	require.NoError(t, err)
	assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
	body := decode[middleware.ValidationErrorResponse](t, resp.Body)
	assert.Equal(t, string(domain.CodeValidation), body.Code)
}

func TestCatalogHandler_GetItem(t *testing.T) {
	app, m := newTestApp()
	m.catalog.GetItemFunc = func(id string) (*dto.ItemResponse, error) {
		if id == "nok" {
			return &dto.ItemResponse{ArtItem: domain.ArtItem{ID: "nok"}, NormalizedDate: "500 BCE"}, nil
		}
		return nil, domain.NewItemNotFoundError(id)
	}

	t.Run("Found", func(t *testing.T) {
		resp, err := app.Test(httptest.NewRequest(http.MethodGet, "/api/items/nok", nil))
		require.NoError(t, err)
		assert.Equal(t, http.StatusOK, resp.StatusCode)
		assert.Equal(t, "500 BCE", decode[dto.ItemResponse](t, resp.Body).NormalizedDate)
	})

	t.Run("NotFound", func(t *testing.T) {
		resp, err := app.Test(httptest.NewRequest(http.MethodGet, "/api/items/missing", nil))
		require.NoError(t, err)
		assert.Equal(t, http.StatusNotFound, resp.StatusCode)
		body := decode[middleware.ErrorResponse](t, resp.Body)
		assert.Equal(t, string(domain.CodeItemNotFound), body.Code)
		assert.Equal(t, "missing", body.Details["item_id"])
	})

	t.Run("BadID", func(t *testing.T) {
		resp, err := app.Test(httptest.NewRequest(http.MethodGet, "/api/items/bad%20id", nil))
		require.NoError(t, err)
		assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
	})
}

func TestCatalogHandler_Featured(t *testing.T) {
	app, m := newTestApp()
	var gotCount int
	m.catalog.FeaturedFunc = func(count int) []dto.FeaturedItem {
		gotCount = count
		return []dto.FeaturedItem{}
	}

	tests := []struct {
		query  string
		status int
		count  int
	}{
		{"", http.StatusOK, 6},
		{"?count=3", http.StatusOK, 3},
		{"?count=0", http.StatusBadRequest, 0},
		{"?count=25", http.StatusBadRequest, 0},
		{"?count=six", http.StatusBadRequest, 0},
	}
	for _, tt := range tests {
		t.Run(fmt.Sprintf("count%s", tt.query), func(t *testing.T) {
			gotCount = 0
			resp, err := app.Test(httptest.NewRequest(http.MethodGet, "/api/items/featured"+tt.query, nil))
			require.NoError(t, err)
			assert.Equal(t, tt.status, resp.StatusCode)
			assert.Equal(t, tt.count, gotCount)
		})
	}
}

func TestCatalogHandler_Facets(t *testing.T) {
	app, m := newTestApp()
	m.catalog.FacetsFunc = func() *dto.FacetsResponse {
		return &dto.FacetsResponse{Facets: catalog.Facets{Types: []string{"mask"}}}
	}
	// /items/facets must not be captured by /items/:id
	resp, err := app.Test(httptest.NewRequest(http.MethodGet, "/api/items/facets", nil))
	require.NoError(t, err)
	assert.Equal(t, http.StatusOK, resp.StatusCode)
	assert.Equal(t, []string{"mask"}, decode[dto.FacetsResponse](t, resp.Body).Types)
}

func TestCatalogHandler_Timeline(t *testing.T) {
	app, m := newTestApp()
	m.catalog.TimelineFunc = func(c catalog.Criteria) timeline.Result {
		assert.Equal(t, "textile", c.Type)
		return timeline.Result{Empty: true, Message: timeline.EmptyMessage}
	}
	resp, err := app.Test(httptest.NewRequest(http.MethodGet, "/api/timeline?type=textile", nil))
	require.NoError(t, err)
	assert.Equal(t, http.StatusOK, resp.StatusCode)
	body := decode[timeline.Result](t, resp.Body)
	assert.True(t, body.Empty)
	assert.Equal(t, timeline.EmptyMessage, body.Message)
}

func TestCatalogHandler_ExportTimeline(t *testing.T) {
	app, m := newTestApp()
	m.catalog.ExportTimelineFunc = func(w io.Writer, c catalog.Criteria) error {
		_, err := io.WriteString(w, "Title,Type\n")
		return err
	}
	resp, err := app.Test(httptest.NewRequest(http.MethodGet, "/api/timeline/export.csv", nil))
	require.NoError(t, err)
	assert.Equal(t, http.StatusOK, resp.StatusCode)
	assert.Contains(t, resp.Header.Get("Content-Disposition"), timeline.ExportFilename)
	assert.Contains(t, resp.Header.Get("Content-Type"), "text/csv")
	raw, _ := io.ReadAll(resp.Body)
	assert.Equal(t, "Title,Type\n", string(raw))
}

func TestCatalogHandler_Reference(t *testing.T) {
	app, m := newTestApp()
	m.catalog.StatsFunc = func() *dto.StatsResponse { return &dto.StatsResponse{TotalItems: 12} }
	m.catalog.EducationFunc = func() *dto.EducationResponse {
		return &dto.EducationResponse{ArtTypes: []dto.ArtTypeDTO{{Key: "masks", Name: "Masks"}}}
	}
	m.catalog.GlossaryFunc = func(query, category string) *dto.GlossaryResponse {
		assert.Equal(t, "wax", query)
		assert.Equal(t, "techniques", category)
		return &dto.GlossaryResponse{Count: 1}
	}

	resp, err := app.Test(httptest.NewRequest(http.MethodGet, "/api/stats", nil))
	require.NoError(t, err)
	assert.Equal(t, 12, decode[dto.StatsResponse](t, resp.Body).TotalItems)

	resp, err = app.Test(httptest.NewRequest(http.MethodGet, "/api/education", nil))
	require.NoError(t, err)
	assert.Equal(t, "Masks", decode[dto.EducationResponse](t, resp.Body).ArtTypes[0].Name)

	resp, err = app.Test(httptest.NewRequest(http.MethodGet, "/api/glossary?q=wax&category=techniques", nil))
	require.NoError(t, err)
	assert.Equal(t, 1, decode[dto.GlossaryResponse](t, resp.Body).Count)
}
