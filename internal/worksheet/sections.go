// Package worksheet renders visual-analysis worksheets for export.
package worksheet

import (
	"regexp"
	"strings"

	"art-atlas/internal/domain"
)

// NoResponse stands in for an unanswered question in every export.
const NoResponse = "No response"

// Question is one prompt of the worksheet, addressed by its response key.
type Question struct {
	Key   string `json:"key"`
	Label string `json:"label"`
}

// Section groups questions under a step heading.
type Section struct {
	Title     string     `json:"title"`
	Questions []Question `json:"questions"`
}

// Sections is the fixed layout of the worksheet in export order.
var Sections = []Section{
	{"Step 1: Initial Observation", []Question{
		{"firstImpression", "First Impression"},
		{"attentionFocus", "Attention Focus"},
	}},
	{"Step 2: Formal Analysis", []Question{
		{"visualElements", "Visual Elements"},
		{"composition", "Composition"},
		{"materialsTechnique", "Materials & Technique"},
	}},
	{"Step 3: Cultural Context", []Question{
		{"culturalSignificance", "Cultural Significance"},
		{"aestheticPrinciples", "Aesthetic Principles"},
		{"socialContext", "Social Context"},
	}},
	{"Step 4: Symbolic Analysis", []Question{
		{"symbolsMotifs", "Symbols & Motifs"},
		{"symbolicMeaning", "Symbolic Meaning"},
	}},
	{"Step 5: Aesthetic Evaluation", []Question{
		{"aestheticValues", "Aesthetic Values"},
		{"artisticSuccess", "Artistic Success"},
		{"understandingChange", "Understanding Change"},
	}},
}

// Answer returns the stored response or the NoResponse placeholder.
func Answer(r domain.WorksheetResponses, key string) string {
	if v := r.Field(key); v != "" {
		return v
	}
	return NoResponse
}

var nonAlnum = regexp.MustCompile(`[^a-zA-Z0-9]`)

// Filename is the download name of a text export for the titled item.
func Filename(title string) string {
	return "analysis_" + strings.ToLower(nonAlnum.ReplaceAllString(title, "_")) + ".txt"
}
