package dto

import (
	"art-atlas/internal/catalog"
	"art-atlas/internal/domain"
)

// ItemsResponse is a filtered page of the catalog.
// @Description Filtered art items
type ItemsResponse struct {
	Items   []domain.ArtItem `json:"items"`
	Count   int              `json:"count"`
	Total   int              `json:"total"`
	Empty   bool             `json:"empty"`
	Message string           `json:"message,omitempty"`
}

// ItemResponse is a single item with its display date.
type ItemResponse struct {
	domain.ArtItem
	NormalizedDate string `json:"normalizedDate"`
	Material       string `json:"materialCategory"`
	Region         string `json:"regionCategory"`
}

// FeaturedItem is a short card for the featured strip.
type FeaturedItem struct {
	ID              string `json:"id"`
	Title           string `json:"title"`
	ArtistOrCulture string `json:"artistOrCulture,omitempty"`
	Type            string `json:"type,omitempty"`
	Image           string `json:"image,omitempty"`
	Byline          string `json:"byline"`
	Excerpt         string `json:"excerpt"`
}

// FacetsResponse carries the filter options with display labels.
type FacetsResponse struct {
	catalog.Facets
	Centuries []string          `json:"centuries"`
	Labels    map[string]string `json:"labels"`
}

// StatsResponse summarizes the loaded catalog.
type StatsResponse struct {
	TotalItems      int            `json:"total_items"`
	LikelyExamItems int            `json:"likely_exam_items"`
	DatedItems      int            `json:"dated_items"`
	ByType          map[string]int `json:"by_type"`
}
