package catalog

import "strings"

// ArtTypes are the keywords recognised as an art-type facet.
var ArtTypes = []string{"sculpture", "textiles", "masks", "pottery", "beadwork", "metalwork", "architecture", "performance"}

type rule struct {
	name    string
	needles []string
}

var materialRules = []rule{
	{"wood", []string{"wood"}},
	{"metal", []string{"metal", "bronze", "brass", "iron"}},
	{"clay", []string{"clay", "terracotta"}},
	{"textiles", []string{"textile", "cloth", "fabric"}},
	{"ivory", []string{"ivory"}},
	{"stone", []string{"stone"}},
	{"beads", []string{"bead"}},
}

var regionRules = []rule{
	{"Nigeria", []string{"nigeria"}},
	{"Ghana", []string{"ghana"}},
	{"Mali", []string{"mali"}},
	{"Egypt", []string{"egypt"}},
	{"South Africa", []string{"south africa"}},
	{"Benin", []string{"benin"}},
	{"Ivory Coast", []string{"ivory coast", "côte d'ivoire"}},
	{"DRC/Congo", []string{"drc", "congo"}},
	{"Uganda", []string{"uganda"}},
	{"Liberia", []string{"liberia"}},
	{"Sierra Leone", []string{"sierra leone"}},
}

func containsAny(s string, needles []string) bool {
	for _, n := range needles {
		if strings.Contains(s, n) {
			return true
		}
	}
	return false
}

// MatchesMaterial reports whether a free-text material falls under the
// material category. Unknown categories fall back to a substring match.
func MatchesMaterial(material, category string) bool {
	if material == "" {
		return false
	}
	m := strings.ToLower(material)
	category = strings.ToLower(category)
	for _, r := range materialRules {
		if r.name == category {
			return containsAny(m, r.needles)
		}
	}
	return strings.Contains(m, category)
}

// MaterialCategory normalizes the primary (first listed) material of an item.
func MaterialCategory(material string) string {
	if material == "" {
		return ""
	}
	primary := strings.ToLower(strings.TrimSpace(strings.Split(material, ",")[0]))
	for _, r := range materialRules {
		if containsAny(primary, r.needles) {
			return r.name
		}
	}
	return primary
}

// MatchesRegion reports whether a free-text location belongs to the region.
// Regions without a rule only match the whole raw location. Both
// comparisons ignore case.
func MatchesRegion(location, region string) bool {
	if location == "" {
		return false
	}
	l := strings.ToLower(location)
	for _, r := range regionRules {
		if strings.EqualFold(r.name, region) {
			return containsAny(l, r.needles)
		}
	}
	return strings.EqualFold(location, region)
}

// RegionCategory normalizes a location to one of the named regions, or
// returns it unchanged when none applies.
func RegionCategory(location string) string {
	if location == "" {
		return ""
	}
	l := strings.ToLower(location)
	for _, r := range regionRules {
		if containsAny(l, r.needles) {
			return r.name
		}
	}
	return location
}
