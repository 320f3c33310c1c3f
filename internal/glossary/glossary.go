// Package glossary flattens and searches the glossary of the educational content.
package glossary

import (
	"html"
	"regexp"
	"sort"
	"strings"
)

// AllCategories selects every category in ByCategory.
const AllCategories = "all"

// Entry is one glossary term.
type Entry struct {
	Term       string `json:"term"`
	Title      string `json:"title"`
	Definition string `json:"definition"`
	Category   string `json:"category"`
}

// Build flattens the category -> term -> definition mapping into entries
// ordered by category, then term.
func Build(glossary map[string]map[string]string) []Entry {
	entries := make([]Entry, 0)
	for category, terms := range glossary {
		for term, def := range terms {
			entries = append(entries, Entry{
				Term:       term,
				Title:      FormatTerm(term),
				Definition: def,
				Category:   category,
			})
		}
	}
	sort.Slice(entries, func(i, j int) bool {
		if entries[i].Category != entries[j].Category {
			return entries[i].Category < entries[j].Category
		}
		return entries[i].Term < entries[j].Term
	})
	return entries
}

// FormatTerm turns a snake_case key into a title: "lost_wax" -> "Lost Wax".
func FormatTerm(term string) string {
	words := strings.Split(term, "_")
	for i, w := range words {
		if w == "" {
			continue
		}
		r := []rune(w)
		words[i] = strings.ToUpper(string(r[0])) + string(r[1:])
	}
	return strings.Join(words, " ")
}

// Categories lists the distinct categories in order.
func Categories(entries []Entry) []string {
	out := make([]string, 0)
	for _, e := range entries {
		if len(out) == 0 || out[len(out)-1] != e.Category {
			out = append(out, e.Category)
		}
	}
	return out
}

// ByCategory keeps the entries of one category; "" or "all" keeps everything.
func ByCategory(entries []Entry, category string) []Entry {
	if category == "" || category == AllCategories {
		return entries
	}
	out := make([]Entry, 0)
	for _, e := range entries {
		if e.Category == category {
			out = append(out, e)
		}
	}
	return out
}

// Search keeps entries whose title or definition contains q, ignoring case.
func Search(entries []Entry, q string) []Entry {
	q = strings.ToLower(strings.TrimSpace(q))
	if q == "" {
		return entries
	}
	out := make([]Entry, 0)
	for _, e := range entries {
		if strings.Contains(strings.ToLower(e.Title), q) || strings.Contains(strings.ToLower(e.Definition), q) {
			out = append(out, e)
		}
	}
	return out
}

// Highlight HTML-escapes text and wraps every case-insensitive occurrence
// of q in a highlight span.
func Highlight(text, q string) string {
	if strings.TrimSpace(q) == "" {
		return html.EscapeString(text)
	}
	re := regexp.MustCompile(`(?i)` + regexp.QuoteMeta(q))
	var b strings.Builder
	last := 0
	for _, loc := range re.FindAllStringIndex(text, -1) {
		b.WriteString(html.EscapeString(text[last:loc[0]]))
		b.WriteString(`<span class="highlight">`)
		b.WriteString(html.EscapeString(text[loc[0]:loc[1]]))
		b.WriteString(`</span>`)
		last = loc[1]
	}
	b.WriteString(html.EscapeString(text[last:]))
	return b.String()
}
