package worksheet

import (
	"bytes"
	"fmt"
	"html/template"
	"strings"

	"art-atlas/internal/domain"
)

const (
	reportTitle = "VISUAL ANALYSIS REPORT"
	dateLayout  = "1/2/2006"
)

// ExportText renders the record as the plain-text analysis report.
func ExportText(rec *domain.WorksheetRecord) string {
	var b strings.Builder
	b.WriteString(reportTitle + "\n")
	b.WriteString(strings.Repeat("=", len(reportTitle)) + "\n\n")
	fmt.Fprintf(&b, "Artwork: %s\n", rec.ItemTitle)
	fmt.Fprintf(&b, "Date of Analysis: %s\n\n", rec.Timestamp.Format(dateLayout))

	for si, s := range Sections {
		heading := strings.ToUpper(s.Title)
		b.WriteString(heading + "\n")
		b.WriteString(strings.Repeat("-", len(heading)) + "\n")
		for qi, q := range s.Questions {
			fmt.Fprintf(&b, "%s:\n%s\n", q.Label, Answer(rec.Responses, q.Key))
			last := si == len(Sections)-1 && qi == len(s.Questions)-1
			if !last {
				b.WriteString("\n")
			}
		}
	}
	return b.String()
}

var printTemplate = template.Must(template.New("print").Funcs(template.FuncMap{
	"answer": Answer,
}).Parse(`<html>
<head>
<title>Visual Analysis - {{.Record.ItemTitle}}</title>
<style>
body { font-family: Arial, sans-serif; margin: 40px; line-height: 1.6; }
h1 { color: #333; border-bottom: 2px solid #333; }
h2 { color: #666; margin-top: 30px; }
.metadata { background: #f5f5f5; padding: 15px; margin: 20px 0; }
.response { margin: 15px 0; }
.question { font-weight: bold; color: #444; }
.answer { margin: 5px 0 15px 20px; }
</style>
</head>
<body>
<h1>Visual Analysis Report</h1>
<div class="metadata">
<strong>Artwork:</strong> {{.Record.ItemTitle}}<br>
<strong>Date of Analysis:</strong> {{.Date}}
</div>
{{- range .Sections}}
<h2>{{.Title}}</h2>
{{- range .Questions}}
<div class="response">
<div class="question">{{.Label}}:</div>
<div class="answer">{{answer $.Record.Responses .Key}}</div>
</div>
{{- end}}
{{- end}}
</body>
</html>
`))

// ExportPrintable renders the record as a standalone printable HTML page.
// Responses are escaped.
func ExportPrintable(rec *domain.WorksheetRecord) (string, error) {
	var buf bytes.Buffer
	err := printTemplate.Execute(&buf, struct {
		Record   *domain.WorksheetRecord
		Date     string
		Sections []Section
	}{rec, rec.Timestamp.Format(dateLayout), Sections})
	if err != nil {
		return "", fmt.Errorf("rendering printable worksheet: %w", err)
	}
	return buf.String(), nil
}
