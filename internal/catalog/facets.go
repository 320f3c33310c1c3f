package catalog

import (
	"sort"
	"strings"

	"art-atlas/internal/domain"
)

// Facets are the option lists offered by the filter controls.
type Facets struct {
	Types     []string `json:"types"`
	ArtTypes  []string `json:"art_types"`
	Materials []string `json:"materials"`
	Regions   []string `json:"regions"`
}

// BuildFacets derives sorted, de-duplicated option lists from the items.
func BuildFacets(items []domain.ArtItem) Facets {
	types := newStringSet()
	artTypes := newStringSet()
	materials := newStringSet()
	regions := newStringSet()

	for i := range items {
		item := &items[i]
		types.add(item.Type)
		// first recognised art-type keyword only
		for _, k := range item.Keywords {
			if isArtType(k) {
				artTypes.add(k)
				break
			}
		}
		materials.add(MaterialCategory(item.MediumOrMaterial))
		regions.add(RegionCategory(item.LocationOrSite))
	}

	return Facets{
		Types:     types.sorted(),
		ArtTypes:  artTypes.sorted(),
		Materials: materials.sorted(),
		Regions:   regions.sorted(),
	}
}

func isArtType(keyword string) bool {
	for _, t := range ArtTypes {
		if t == keyword {
			return true
		}
	}
	return false
}

// DisplayLabel upper-cases the first letter of a facet value.
func DisplayLabel(v string) string {
	if v == "" {
		return v
	}
	r := []rune(v)
	return strings.ToUpper(string(r[0])) + string(r[1:])
}

type stringSet map[string]struct{}

func newStringSet() stringSet { return make(stringSet) }

func (s stringSet) add(v string) {
	if v != "" {
		s[v] = struct{}{}
	}
}

func (s stringSet) sorted() []string {
	out := make([]string, 0, len(s))
	for v := range s {
		out = append(out, v)
	}
	sort.Strings(out)
	return out
}
