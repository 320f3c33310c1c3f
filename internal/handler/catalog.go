package handler

import (
	"bytes"

	"art-atlas/internal/middleware"
	"art-atlas/internal/service"
	"art-atlas/internal/timeline"

	"github.com/gofiber/fiber/v2"
)

// CatalogHandler serves the read-only catalog, timeline and reference endpoints.
type CatalogHandler struct {
	service service.CatalogService
}

// NewCatalogHandler creates a new CatalogHandler instance
func NewCatalogHandler(service service.CatalogService) *CatalogHandler {
	return &CatalogHandler{service: service}
}

// ListItems godoc
// @Summary List art items
// @Description Returns the items matching every given filter
// @Tags items
// @Produce json
// @Param q query string false "Search title, culture and keywords"
// @Param type query string false "Item type"
// @Param century query string false "Century label"
// @Param art_type query string false "Art-type keyword"
// @Param material query string false "Material category"
// @Param region query string false "Region category"
// @Param exam query bool false "Likely exam items only"
// @Success 200 {object} dto.ItemsResponse
// @Failure 400 {object} middleware.ValidationErrorResponse
// @Router /items [get]
func (h *CatalogHandler) ListItems(c *fiber.Ctx) error {
	return c.JSON(h.service.ListItems(criteriaFromQuery(c)))
}

// GetItem godoc
// @Summary Get an art item
// @Tags items
// @Produce json
// @Param id path string true "Item ID"
// @Success 200 {object} dto.ItemResponse
// @Failure 404 {object} middleware.ErrorResponse
// @Router /items/{id} [get]
func (h *CatalogHandler) GetItem(c *fiber.Ctx) error {
	item, err := h.service.GetItem(c.Locals(middleware.LocalItemID).(string))
	if err != nil {
		return err
	}
	return c.JSON(item)
}

// Facets godoc
// @Summary Filter options
// @Tags items
// @Produce json
// @Success 200 {object} dto.FacetsResponse
// @Router /items/facets [get]
func (h *CatalogHandler) Facets(c *fiber.Ctx) error {
	return c.JSON(h.service.Facets())
}

// Featured godoc
// @Summary Featured items
// @Description Picks items with substantial notes across different cultures and types
// @Tags items
// @Produce json
// @Param count query int false "Number of items (1-24)" default(6)
// @Success 200 {array} dto.FeaturedItem
// @Failure 400 {object} middleware.ValidationErrorResponse
// @Router /items/featured [get]
func (h *CatalogHandler) Featured(c *fiber.Ctx) error {
	return c.JSON(h.service.Featured(c.Locals(middleware.LocalFeaturedCount).(int)))
}

// Stats godoc
// @Summary Catalog statistics
// @Tags items
// @Produce json
// @Success 200 {object} dto.StatsResponse
// @Router /stats [get]
func (h *CatalogHandler) Stats(c *fiber.Ctx) error {
	return c.JSON(h.service.Stats())
}

// Timeline godoc
// @Summary Timeline layout
// @Description Positions the filtered items on a year axis with century markers
// @Tags timeline
// @Produce json
// @Param q query string false "Search"
// @Param type query string false "Item type"
// @Param century query string false "Century label"
// @Param exam query bool false "Likely exam items only"
// @Success 200 {object} timeline.Result
// @Router /timeline [get]
func (h *CatalogHandler) Timeline(c *fiber.Ctx) error {
	return c.JSON(h.service.Timeline(criteriaFromQuery(c)))
}

// ExportTimeline godoc
// @Summary Export the filtered timeline as CSV
// @Tags timeline
// @Produce text/csv
// @Success 200 {string} string "CSV file"
// @Router /timeline/export.csv [get]
func (h *CatalogHandler) ExportTimeline(c *fiber.Ctx) error {
	var buf bytes.Buffer
	if err := h.service.ExportTimeline(&buf, criteriaFromQuery(c)); err != nil {
		return err
	}
	c.Attachment(timeline.ExportFilename)
	return c.Send(buf.Bytes())
}

// Education godoc
// @Summary Educational reference content
// @Tags reference
// @Produce json
// @Success 200 {object} dto.EducationResponse
// @Router /education [get]
func (h *CatalogHandler) Education(c *fiber.Ctx) error {
	return c.JSON(h.service.Education())
}

// Glossary godoc
// @Summary Search the glossary
// @Tags reference
// @Produce json
// @Param q query string false "Search term"
// @Param category query string false "Category or all"
// @Success 200 {object} dto.GlossaryResponse
// @Router /glossary [get]
func (h *CatalogHandler) Glossary(c *fiber.Ctx) error {
	return c.JSON(h.service.Glossary(c.Query("q"), c.Query("category")))
}
