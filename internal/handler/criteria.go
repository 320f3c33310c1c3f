package handler

import (
	"art-atlas/internal/catalog"

	"github.com/gofiber/fiber/v2"
)

// criteriaFromQuery reads the catalog filters shared by /items and /timeline.
func criteriaFromQuery(c *fiber.Ctx) catalog.Criteria {
	return catalog.Criteria{
		Search:   c.Query("q"),
		Type:     c.Query("type"),
		Century:  c.Query("century"),
		ArtType:  c.Query("art_type"),
		Material: c.Query("material"),
		Region:   c.Query("region"),
		ExamOnly: c.QueryBool("exam", false),
	}
}
