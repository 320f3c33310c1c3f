package service

import (
	"io"
	"math/rand/v2"
	"sort"
	"sync"

	"art-atlas/internal/catalog"
	"art-atlas/internal/domain"
	"art-atlas/internal/dto"
	"art-atlas/internal/glossary"
	"art-atlas/internal/logger"
	"art-atlas/internal/timeline"

	"go.uber.org/zap"
)

const (
	// DefaultFeaturedCount is the size of the featured strip.
	DefaultFeaturedCount = 6
	// MaxFeaturedCount bounds the featured query parameter.
	MaxFeaturedCount = 24

	featuredExcerptLength = 100
	defaultExcerpt        = "Explore this significant piece of African artistic heritage."
	defaultCulture        = "African Art"
	defaultDate           = "Historical"
)

// CatalogService answers read-only queries over the loaded dataset.
type CatalogService interface {
	ListItems(c catalog.Criteria) *dto.ItemsResponse
	GetItem(id string) (*dto.ItemResponse, error)
	Facets() *dto.FacetsResponse
	Featured(count int) []dto.FeaturedItem
	Stats() *dto.StatsResponse
	Timeline(c catalog.Criteria) timeline.Result
	ExportTimeline(w io.Writer, c catalog.Criteria) error
	Education() *dto.EducationResponse
	Glossary(query, category string) *dto.GlossaryResponse
}

type catalogService struct {
	dataset  *domain.Dataset
	glossary []glossary.Entry
	facets   *dto.FacetsResponse

	// guards rng; *rand.Rand is not safe for concurrent use
	mu  sync.Mutex
	rng *rand.Rand
}

// NewCatalogService builds the service over an immutable dataset. rng feeds
// the timeline jitter; nil uses the runtime source.
func NewCatalogService(ds *domain.Dataset, rng *rand.Rand) CatalogService {
	s := &catalogService{
		dataset:  ds,
		glossary: glossary.Build(ds.EducationalContent.Glossary),
		rng:      rng,
	}
	s.facets = s.buildFacets()
	logger.Get().Info("Catalog ready",
		zap.Int("items", len(ds.Items)),
		zap.Int("glossary_terms", len(s.glossary)),
	)
	return s
}

func (s *catalogService) ListItems(c catalog.Criteria) *dto.ItemsResponse {
	items := catalog.Filter(s.dataset.Items, c)
	resp := &dto.ItemsResponse{
		Items: items,
		Count: len(items),
		Total: len(s.dataset.Items),
		Empty: len(items) == 0,
	}
	if resp.Empty {
		resp.Message = timeline.EmptyMessage
	}
	return resp
}

func (s *catalogService) GetItem(id string) (*dto.ItemResponse, error) {
	item, ok := s.dataset.ItemByID(id)
	if !ok {
		return nil, domain.NewItemNotFoundError(id)
	}
	return &dto.ItemResponse{
		ArtItem:        *item,
		NormalizedDate: timeline.FormatNormalized(item.DateNormalized),
		Material:       catalog.MaterialCategory(item.MediumOrMaterial),
		Region:         catalog.RegionCategory(item.LocationOrSite),
	}, nil
}

func (s *catalogService) Facets() *dto.FacetsResponse {
	return s.facets
}

func (s *catalogService) buildFacets() *dto.FacetsResponse {
	f := catalog.BuildFacets(s.dataset.Items)
	labels := make(map[string]string)
	for _, list := range [][]string{f.Types, f.ArtTypes, f.Materials, f.Regions} {
		for _, v := range list {
			labels[v] = catalog.DisplayLabel(v)
		}
	}
	return &dto.FacetsResponse{
		Facets:    f,
		Centuries: s.layout(s.dataset.Items).Centuries,
		Labels:    labels,
	}
}

func (s *catalogService) Featured(count int) []dto.FeaturedItem {
	if count <= 0 {
		count = DefaultFeaturedCount
	}
	items := catalog.Featured(s.dataset.Items, count)
	out := make([]dto.FeaturedItem, 0, len(items))
	for _, it := range items {
		culture := it.ArtistOrCulture
		if culture == "" {
			culture = defaultCulture
		}
		date := it.DateOriginal
		if date == "" {
			date = defaultDate
		}
		notes := it.Notes
		if notes == "" {
			notes = defaultExcerpt
		}
		out = append(out, dto.FeaturedItem{
			ID:              it.ID,
			Title:           it.Title,
			ArtistOrCulture: it.ArtistOrCulture,
			Type:            it.Type,
			Image:           it.Image,
			Byline:          culture + " • " + date,
			Excerpt:         catalog.Truncate(notes, featuredExcerptLength),
		})
	}
	return out
}

func (s *catalogService) Stats() *dto.StatsResponse {
	stats := &dto.StatsResponse{
		TotalItems: len(s.dataset.Items),
		ByType:     make(map[string]int),
	}
	for i := range s.dataset.Items {
		it := &s.dataset.Items[i]
		if it.LikelyExam {
			stats.LikelyExamItems++
		}
		if it.DateNormalized.Known() {
			stats.DatedItems++
		}
		if it.Type != "" {
			stats.ByType[it.Type]++
		}
	}
	return stats
}

func (s *catalogService) Timeline(c catalog.Criteria) timeline.Result {
	return s.layout(catalog.Filter(s.dataset.Items, c))
}

func (s *catalogService) layout(items []domain.ArtItem) timeline.Result {
	s.mu.Lock()
	defer s.mu.Unlock()
	return timeline.Layout(items, s.rng)
}

func (s *catalogService) ExportTimeline(w io.Writer, c catalog.Criteria) error {
	if err := timeline.WriteCSV(w, catalog.Filter(s.dataset.Items, c)); err != nil {
		return domain.NewInternalError("Failed to export timeline", err)
	}
	return nil
}

func (s *catalogService) Education() *dto.EducationResponse {
	ec := s.dataset.EducationalContent
	keys := make([]string, 0, len(ec.ArtTypes))
	for k := range ec.ArtTypes {
		keys = append(keys, k)
	}
	sort.Strings(keys)

	types := make([]dto.ArtTypeDTO, 0, len(keys))
	for _, k := range keys {
		types = append(types, dto.ArtTypeDTO{
			Key:         k,
			Name:        catalog.DisplayLabel(k),
			Description: ec.ArtTypes[k],
		})
	}
	return &dto.EducationResponse{
		Philosophy:  ec.Philosophy,
		Aesthetics:  ec.Aesthetics,
		ArtTypes:    types,
		Materials:   ec.Materials,
		ArtistRoles: ec.ArtistRoles,
	}
}

func (s *catalogService) Glossary(query, category string) *dto.GlossaryResponse {
	entries := glossary.Search(glossary.ByCategory(s.glossary, category), query)
	out := make([]dto.GlossaryEntry, 0, len(entries))
	for _, e := range entries {
		out = append(out, dto.GlossaryEntry{
			Entry:          e,
			TitleHTML:      glossary.Highlight(e.Title, query),
			DefinitionHTML: glossary.Highlight(e.Definition, query),
		})
	}
	return &dto.GlossaryResponse{
		Entries:    out,
		Categories: glossary.Categories(s.glossary),
		Count:      len(entries),
	}
}
