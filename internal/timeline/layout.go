// Package timeline lays dated art items out on a horizontal year axis and
// derives the century gridlines drawn behind them.
package timeline

import (
	"math/rand/v2"
	"sort"

	"art-atlas/internal/domain"
)

const (
	// MinWidth is the narrowest canvas the layout produces.
	MinWidth = 2000
	// UnitsPerYear scales the canvas with the year range.
	UnitsPerYear = 2

	jitterMin = 50.0
	jitterMax = 200.0

	unknownOffsetYears = 200
	noColor            = "#ccc"

	// EmptyMessage is shown when no filtered item has a usable year.
	EmptyMessage = "No items found. Adjust your filters."
)

var palette = []string{
	"#b7e4c7", "#a2d2ff", "#c9ada7", "#ffc8dd", "#f5e6b7", "#c9e4c5", "#d6a1b9", "#a4c9c7", "#e4c1f9",
	"#c4e4c9", "#b3d3ff", "#d6b8a8", "#ffdbed", "#f2e8c2", "#d5e9d0", "#e0b5c9", "#b3d3d2", "#edc6ff",
}

// Bounds is the year window and canvas size of a layout.
type Bounds struct {
	MinYear int     `json:"min_year"`
	MaxYear int     `json:"max_year"`
	Range   int     `json:"range"`
	Width   float64 `json:"width"`
}

// Position maps a year onto the canvas.
func (b Bounds) Position(year float64) float64 {
	return (year - float64(b.MinYear)) / float64(b.Range) * b.Width
}

// Dot is one positioned item.
type Dot struct {
	ItemID     string  `json:"item_id"`
	Title      string  `json:"title"`
	Midpoint   float64 `json:"midpoint"`
	X          float64 `json:"x"`
	Y          float64 `json:"y"`
	Color      string  `json:"color"`
	LikelyExam bool    `json:"likely_exam"`
	Date       string  `json:"date"`
}

// Marker is a century gridline.
type Marker struct {
	Label     string  `json:"label"`
	Century   int     `json:"century"`
	StartYear int     `json:"start_year"`
	X         float64 `json:"x"`
	// Hidden markers fall at or before the left edge and are not drawn.
	Hidden bool `json:"hidden"`
}

// Result is the full layout. Empty is set when nothing could be placed.
type Result struct {
	Empty     bool     `json:"empty"`
	Message   string   `json:"message,omitempty"`
	Bounds    Bounds   `json:"bounds"`
	Dots      []Dot    `json:"dots"`
	Markers   []Marker `json:"markers"`
	Centuries []string `json:"centuries"`
	Undated   []string `json:"undated"`
}

// Layout positions every item that has at least one known year. Apart from
// the vertical jitter drawn from rng it is a pure function of items. A nil
// rng uses the package-level source.
func Layout(items []domain.ArtItem, rng *rand.Rand) Result {
	res := Result{
		Dots:      []Dot{},
		Markers:   []Marker{},
		Centuries: []string{},
		Undated:   []string{},
	}

	first := true
	for i := range items {
		for _, y := range items[i].DateNormalized.Years() {
			if first || y < res.Bounds.MinYear {
				res.Bounds.MinYear = y
			}
			if first || y > res.Bounds.MaxYear {
				res.Bounds.MaxYear = y
			}
			first = false
		}
	}
	if first {
		res.Empty = true
		res.Message = EmptyMessage
		for i := range items {
			res.Undated = append(res.Undated, items[i].ID)
		}
		return res
	}

	b := &res.Bounds
	b.Range = b.MaxYear - b.MinYear
	if b.Range == 0 {
		b.Range = 1
	}
	b.Width = float64(max(MinWidth, b.Range*UnitsPerYear))

	colors := newColorMap()
	centuries := make(map[string]int)

	for i := range items {
		item := &items[i]
		start, end, ok := item.DateNormalized.Bounds()
		if !ok {
			res.Undated = append(res.Undated, item.ID)
			continue
		}
		mid := float64(start) + float64(end-start)/2
		res.Dots = append(res.Dots, Dot{
			ItemID:     item.ID,
			Title:      item.Title,
			Midpoint:   mid,
			X:          b.Position(mid),
			Y:          jitter(rng),
			Color:      colors.get(item.MovementOrPeriod),
			LikelyExam: item.LikelyExam,
			Date:       TooltipDate(item),
		})

		if item.DateNormalized.IsCentury {
			label := item.Century
			if label == "" {
				label = UnknownCentury
			}
			c, _ := ParseCenturyLabel(label)
			centuries[label] = c
			continue
		}
		if item.DateNormalized.EndYear == nil {
			continue
		}
		lo, hi := CenturyOf(min(start, end)), CenturyOf(max(start, end))
		for c := lo; c <= hi; c++ {
			if c == 0 {
				continue
			}
			centuries[CenturyLabel(c)] = c
		}
	}

	res.Markers = buildMarkers(centuries, *b)
	for _, m := range res.Markers {
		res.Centuries = append(res.Centuries, m.Label)
	}
	return res
}

func buildMarkers(centuries map[string]int, b Bounds) []Marker {
	markers := make([]Marker, 0, len(centuries))
	for label, c := range centuries {
		m := Marker{Label: label, Century: c}
		if c == 0 {
			m.StartYear = b.MinYear - unknownOffsetYears
		} else {
			m.StartYear = CenturyStartYear(c)
		}
		m.X = b.Position(float64(m.StartYear))
		m.Hidden = m.X <= 0
		markers = append(markers, m)
	}
	// unknown (0) sorts before every real century
	sort.Slice(markers, func(i, j int) bool {
		ci, cj := markers[i].Century, markers[j].Century
		if (ci == 0) != (cj == 0) {
			return ci == 0
		}
		if ci != cj {
			return ci < cj
		}
		return markers[i].Label < markers[j].Label
	})
	return markers
}

func jitter(rng *rand.Rand) float64 {
	f := rand.Float64
	if rng != nil {
		f = rng.Float64
	}
	return f()*(jitterMax-jitterMin) + jitterMin
}

type colorMap struct {
	assigned map[string]string
	next     int
}

func newColorMap() *colorMap {
	return &colorMap{assigned: make(map[string]string)}
}

func (m *colorMap) get(movement string) string {
	if movement == "" {
		return noColor
	}
	if c, ok := m.assigned[movement]; ok {
		return c
	}
	c := palette[m.next%len(palette)]
	m.assigned[movement] = c
	m.next++
	return c
}
