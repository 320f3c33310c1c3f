package domain

import (
	"encoding/json"
	"fmt"
	"strings"
)

// DateRange is the normalized date of an item. A nil year means unknown.
// BCE years are negative.
type DateRange struct {
	StartYear *int `json:"startYear"`
	EndYear   *int `json:"endYear"`
	IsCentury bool `json:"isCentury"`
}

// Known reports whether at least one end of the range is set.
func (d DateRange) Known() bool {
	return d.StartYear != nil || d.EndYear != nil
}

// Bounds returns the resolved start and end years. When only one end is
// known it is used for both.
func (d DateRange) Bounds() (start, end int, ok bool) {
	switch {
	case d.StartYear != nil && d.EndYear != nil:
		return *d.StartYear, *d.EndYear, true
	case d.StartYear != nil:
		return *d.StartYear, *d.StartYear, true
	case d.EndYear != nil:
		return *d.EndYear, *d.EndYear, true
	default:
		return 0, 0, false
	}
}

// Years returns every non-nil year in the range.
func (d DateRange) Years() []int {
	years := make([]int, 0, 2)
	if d.StartYear != nil {
		years = append(years, *d.StartYear)
	}
	if d.EndYear != nil {
		years = append(years, *d.EndYear)
	}
	return years
}

// CulturalContext is the optional cultural sub-record of an item.
type CulturalContext struct {
	SpiritualSignificance string `json:"spiritual_significance"`
	SocialFunction        string `json:"social_function"`
	HistoricalContext     string `json:"historical_context"`
}

// AestheticAnalysis is the optional aesthetic sub-record of an item.
type AestheticAnalysis struct {
	VisualElements       string `json:"visual_elements"`
	Composition          string `json:"composition"`
	StyleCharacteristics string `json:"style_characteristics"`
}

// EducationalNotes is the optional teaching sub-record of an item.
type EducationalNotes struct {
	KeyConcepts         string `json:"key_concepts"`
	ComparativeAnalysis string `json:"comparative_analysis"`
	DiscussionPoints    string `json:"discussion_points"`
}

// SlideRefs accepts slide references written either as strings or numbers.
type SlideRefs []string

// UnmarshalJSON implements json.Unmarshaler
func (s *SlideRefs) UnmarshalJSON(data []byte) error {
	var raw []json.RawMessage
	if err := json.Unmarshal(data, &raw); err != nil {
		return fmt.Errorf("slideRefs: %w", err)
	}
	refs := make(SlideRefs, 0, len(raw))
	for _, r := range raw {
		var str string
		if err := json.Unmarshal(r, &str); err == nil {
			refs = append(refs, str)
			continue
		}
		var num json.Number
		if err := json.Unmarshal(r, &num); err != nil {
			return fmt.Errorf("slideRefs: unsupported value %s", string(r))
		}
		refs = append(refs, num.String())
	}
	*s = refs
	return nil
}

// ArtItem is one catalog entry. It is read-only once the dataset is loaded.
type ArtItem struct {
	ID                string             `json:"id"`
	Title             string             `json:"title"`
	Type              string             `json:"type,omitempty"`
	ArtistOrCulture   string             `json:"artistOrCulture,omitempty"`
	DateOriginal      string             `json:"dateOriginal,omitempty"`
	DateNormalized    DateRange          `json:"dateNormalized"`
	Century           string             `json:"century,omitempty"`
	MediumOrMaterial  string             `json:"mediumOrMaterial,omitempty"`
	LocationOrSite    string             `json:"locationOrSite,omitempty"`
	MovementOrPeriod  string             `json:"movementOrPeriod,omitempty"`
	LikelyExam        bool               `json:"likelyExam"`
	WhyLikelyExam     string             `json:"whyLikelyExam,omitempty"`
	Keywords          []string           `json:"keywords"`
	Notes             string             `json:"notes"`
	SlideRefs         SlideRefs          `json:"slideRefs,omitempty"`
	CulturalContext   *CulturalContext   `json:"cultural_context,omitempty"`
	AestheticAnalysis *AestheticAnalysis `json:"aesthetic_analysis,omitempty"`
	EducationalNotes  *EducationalNotes  `json:"educational_notes,omitempty"`
	Image             string             `json:"image,omitempty"`
}

// HasKeyword reports whether the item carries the keyword, ignoring case.
func (a *ArtItem) HasKeyword(keyword string) bool {
	for _, k := range a.Keywords {
		if strings.EqualFold(k, keyword) {
			return true
		}
	}
	return false
}

// Dataset is the whole preloaded document.
type Dataset struct {
	Items              []ArtItem          `json:"items"`
	EducationalContent EducationalContent `json:"educational_content"`
}

// ItemByID finds an item by its identifier.
func (d *Dataset) ItemByID(id string) (*ArtItem, bool) {
	for i := range d.Items {
		if d.Items[i].ID == id {
			return &d.Items[i], true
		}
	}
	return nil, false
}

// Validate reports data problems that do not prevent serving the dataset.
func (d *Dataset) Validate() []string {
	var warnings []string
	seen := make(map[string]struct{}, len(d.Items))
	for _, item := range d.Items {
		if strings.TrimSpace(item.ID) == "" {
			warnings = append(warnings, fmt.Sprintf("item %q has no id", item.Title))
			continue
		}
		if _, dup := seen[item.ID]; dup {
			warnings = append(warnings, fmt.Sprintf("duplicate item id %q", item.ID))
		}
		seen[item.ID] = struct{}{}
		dn := item.DateNormalized
		if dn.StartYear != nil && dn.EndYear != nil && *dn.StartYear > *dn.EndYear {
			warnings = append(warnings, fmt.Sprintf("item %q has startYear %d after endYear %d", item.ID, *dn.StartYear, *dn.EndYear))
		}
	}
	return warnings
}
