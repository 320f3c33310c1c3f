// Package catalog holds the pure functions that select and summarize art items.
package catalog

import (
	"strings"

	"art-atlas/internal/domain"
)

// All is the value a criterion takes when it should match everything.
const All = "all"

// Criteria are the active filters. Empty or "all" fields match every item.
type Criteria struct {
	Search   string `json:"q,omitempty"`
	Type     string `json:"type,omitempty"`
	Century  string `json:"century,omitempty"`
	ArtType  string `json:"art_type,omitempty"`
	Material string `json:"material,omitempty"`
	Region   string `json:"region,omitempty"`
	ExamOnly bool   `json:"exam,omitempty"`
}

func active(v string) bool {
	return v != "" && !strings.EqualFold(v, All)
}

// Filter keeps the items that satisfy every active criterion, in input order.
func Filter(items []domain.ArtItem, c Criteria) []domain.ArtItem {
	out := make([]domain.ArtItem, 0, len(items))
	for i := range items {
		if c.Match(&items[i]) {
			out = append(out, items[i])
		}
	}
	return out
}

// Match applies the criteria to a single item. Text comparisons ignore case.
func (c Criteria) Match(item *domain.ArtItem) bool {
	return c.matchSearch(item) &&
		(!active(c.Type) || strings.EqualFold(item.Type, c.Type)) &&
		(!active(c.Century) || strings.EqualFold(item.Century, c.Century)) &&
		(!c.ExamOnly || item.LikelyExam) &&
		(!active(c.ArtType) || item.HasKeyword(c.ArtType)) &&
		(!active(c.Material) || MatchesMaterial(item.MediumOrMaterial, c.Material)) &&
		(!active(c.Region) || MatchesRegion(item.LocationOrSite, c.Region))
}

func (c Criteria) matchSearch(item *domain.ArtItem) bool {
	term := strings.ToLower(c.Search)
	if term == "" {
		return true
	}
	if strings.Contains(strings.ToLower(item.Title), term) ||
		strings.Contains(strings.ToLower(item.ArtistOrCulture), term) {
		return true
	}
	for _, k := range item.Keywords {
		if strings.Contains(strings.ToLower(k), term) {
			return true
		}
	}
	return false
}
