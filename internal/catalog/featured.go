package catalog

import (
	"strings"

	"art-atlas/internal/domain"
)

const minFeaturedNotesLength = 50

// Featured picks up to n items with substantial notes, preferring a spread
// of cultures and types before filling the remaining slots in input order.
func Featured(items []domain.ArtItem, n int) []domain.ArtItem {
	if n <= 0 {
		return []domain.ArtItem{}
	}

	candidates := make([]int, 0, len(items))
	for i := range items {
		it := &items[i]
		if len(it.Notes) > minFeaturedNotesLength && it.Title != "" && it.Title != "Unknown" {
			candidates = append(candidates, i)
		}
	}

	picked := make(map[int]bool, n)
	order := make([]int, 0, n)
	usedCultures := newStringSet()
	usedTypes := newStringSet()

	for _, i := range candidates {
		if len(order) >= n {
			break
		}
		culture := items[i].ArtistOrCulture
		if culture == "" {
			culture = "Unknown"
		}
		typ := items[i].Type
		if typ == "" {
			typ = "artwork"
		}
		_, seenCulture := usedCultures[culture]
		_, seenType := usedTypes[typ]
		if !seenCulture || !seenType {
			picked[i] = true
			order = append(order, i)
			usedCultures.add(culture)
			usedTypes.add(typ)
		}
	}

	for _, i := range candidates {
		if len(order) >= n {
			break
		}
		if !picked[i] {
			picked[i] = true
			order = append(order, i)
		}
	}

	out := make([]domain.ArtItem, 0, len(order))
	for _, i := range order {
		out = append(out, items[i])
	}
	return out
}

// Truncate shortens text to maxLength runes and appends an ellipsis.
func Truncate(text string, maxLength int) string {
	r := []rune(text)
	if len(r) <= maxLength {
		return text
	}
	return strings.TrimSpace(string(r[:maxLength])) + "..."
}
