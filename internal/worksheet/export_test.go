package worksheet

import (
	"strings"
	"testing"
	"time"

	"art-atlas/internal/domain"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func sampleRecord() *domain.WorksheetRecord {
	return &domain.WorksheetRecord{
		ItemID:    "benin-plaque",
		ItemTitle: "Benin Plaque",
		Timestamp: time.Date(2024, time.March, 7, 15, 4, 5, 0, time.UTC),
		Responses: domain.WorksheetResponses{
			FirstImpression: "Rich and dense",
			Composition:     "Hierarchical <scale>",
		},
	}
}

func TestSectionsCoverEveryResponse(t *testing.T) {
	keys := map[string]bool{}
	for _, s := range Sections {
		for _, q := range s.Questions {
			keys[q.Key] = true
		}
	}
	assert.Len(t, Sections, 5)
	assert.Len(t, keys, 13)

	var r domain.WorksheetResponses
	r.UnderstandingChange = "x"
	assert.Equal(t, "x", Answer(r, "understandingChange"))
	assert.Equal(t, NoResponse, Answer(r, "firstImpression"))
}

func TestExportText(t *testing.T) {
	out := ExportText(sampleRecord())

	assert.True(t, strings.HasPrefix(out, "VISUAL ANALYSIS REPORT\n======================\n\n"))
	assert.Contains(t, out, "Artwork: Benin Plaque\n")
	assert.Contains(t, out, "Date of Analysis: 3/7/2024\n\n")
	assert.Contains(t, out, "First Impression:\nRich and dense\n\n")
	assert.Contains(t, out, "Attention Focus:\nNo response\n\n")
	assert.Contains(t, out, "STEP 3: CULTURAL CONTEXT\n------------------------\n")
	assert.True(t, strings.HasSuffix(out, "Understanding Change:\nNo response\n"))

	// eleven unanswered questions, none omitted
	assert.Equal(t, 11, strings.Count(out, NoResponse))

	// headings in fixed order
	last := -1
	for _, s := range Sections {
		idx := strings.Index(out, strings.ToUpper(s.Title))
		require.GreaterOrEqual(t, idx, 0)
		assert.Greater(t, idx, last)
		last = idx
	}
}

func TestExportPrintable(t *testing.T) {
	out, err := ExportPrintable(sampleRecord())
	require.NoError(t, err)

	assert.Contains(t, out, "<title>Visual Analysis - Benin Plaque</title>")
	assert.Contains(t, out, "<h2>Step 5: Aesthetic Evaluation</h2>")
	assert.Contains(t, out, "Hierarchical &lt;scale&gt;")
	assert.NotContains(t, out, "<scale>")
	assert.Equal(t, 11, strings.Count(out, NoResponse))
	assert.Equal(t, 13, strings.Count(out, `<div class="response">`))
}

func TestFilename(t *testing.T) {
	assert.Equal(t, "analysis_benin_plaque.txt", Filename("Benin Plaque"))
	assert.Equal(t, "analysis_nok_head__c__500_bce_.txt", Filename("Nok Head (c. 500 BCE)"))
}
