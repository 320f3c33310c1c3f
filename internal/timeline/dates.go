package timeline

import (
	"fmt"
	"regexp"
	"strconv"
	"strings"

	"art-atlas/internal/domain"
)

// UnknownCentury is the label of the pseudo-century for undated items.
const UnknownCentury = "Unknown"

var centuryNumber = regexp.MustCompile(`\d+`)

// Ordinal renders n with its English suffix: 1st, 2nd, 3rd, 4th, 11th, 21st.
func Ordinal(n int) string {
	suffix := "th"
	switch n % 100 {
	case 11, 12, 13:
	default:
		switch n % 10 {
		case 1:
			suffix = "st"
		case 2:
			suffix = "nd"
		case 3:
			suffix = "rd"
		}
	}
	return strconv.Itoa(n) + suffix
}

// CenturyOf maps a year to a signed century: negative for BCE, positive for CE.
// Year 0 has no century of its own and is folded into the 1st century.
func CenturyOf(year int) int {
	if year < 0 {
		abs := -year
		return -((abs + 1 + 99) / 100)
	}
	if year == 0 {
		return 1
	}
	return (year + 99) / 100
}

// CenturyLabel renders a signed century, e.g. "2nd century BCE".
func CenturyLabel(century int) string {
	if century == 0 {
		return UnknownCentury
	}
	if century < 0 {
		return Ordinal(-century) + " century BCE"
	}
	return Ordinal(century) + " century"
}

// ParseCenturyLabel reads a label such as "16th century" or "5th century BCE"
// back into a signed century. ok is false for "Unknown" and unreadable labels.
func ParseCenturyLabel(label string) (century int, ok bool) {
	m := centuryNumber.FindString(label)
	if m == "" {
		return 0, false
	}
	n, err := strconv.Atoi(m)
	if err != nil || n == 0 {
		return 0, false
	}
	if strings.Contains(label, "BC") {
		return -n, true
	}
	return n, true
}

// CenturyStartYear is the year a century gridline is drawn at.
func CenturyStartYear(century int) int {
	if century < 0 {
		return (century + 1) * 100
	}
	return (century - 1) * 100
}

func formatYear(y int) string {
	if y < 0 {
		return fmt.Sprintf("%d BCE", -y)
	}
	return fmt.Sprintf("%d CE", y)
}

// FormatNormalized renders a normalized date range for display.
func FormatNormalized(d domain.DateRange) string {
	start, end, ok := d.Bounds()
	if !ok {
		return "Unknown"
	}
	if start == end {
		return formatYear(start)
	}
	return formatYear(start) + " - " + formatYear(end)
}

// TooltipDate is the short date shown when hovering a timeline dot. BCE
// ranges are rewritten from the normalized years; everything else keeps the
// original label.
func TooltipDate(item *domain.ArtItem) string {
	start, end, ok := item.DateNormalized.Bounds()
	if !ok || start >= 0 {
		return item.DateOriginal
	}
	text := fmt.Sprintf("%d BCE", -start)
	switch {
	case end == start:
	case end < 0:
		text += fmt.Sprintf("-%d BCE", -end)
	default:
		text += fmt.Sprintf("-%d CE", end)
	}
	return text
}
