package handler

import (
	"art-atlas/internal/domain"
	"art-atlas/internal/dto"
	"art-atlas/internal/logger"
	"art-atlas/internal/middleware"
	"art-atlas/internal/service"
	"art-atlas/internal/validation"
	"art-atlas/internal/worksheet"

	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"
)

// WorksheetHandler serves the visual-analysis worksheet endpoints.
type WorksheetHandler struct {
	service   service.WorksheetService
	validator *validation.Validator
	keys      []string
}

// NewWorksheetHandler creates a new WorksheetHandler instance
func NewWorksheetHandler(service service.WorksheetService) *WorksheetHandler {
	keys := make([]string, 0)
	for _, s := range worksheet.Sections {
		for _, q := range s.Questions {
			keys = append(keys, q.Key)
		}
	}
	return &WorksheetHandler{
		service:   service,
		validator: validation.NewValidator(),
		keys:      keys,
	}
}

func (h *WorksheetHandler) parseResponses(c *fiber.Ctx) (domain.WorksheetResponses, error) {
	var req dto.WorksheetRequest
	if err := c.BodyParser(&req); err != nil {
		logger.Get().Warn("Invalid worksheet body", zap.Error(err))
		return req.Responses, domain.NewInvalidInputError("Invalid request body")
	}
	if errors := h.validator.ValidateWorksheetResponses(req.Responses, h.keys); len(errors) > 0 {
		return req.Responses, errors
	}
	return req.Responses, nil
}

func itemID(c *fiber.Ctx) string {
	return c.Locals(middleware.LocalItemID).(string)
}

// ListWorksheets godoc
// @Summary List saved worksheets
// @Tags worksheets
// @Produce json
// @Success 200 {array} dto.WorksheetSummary
// @Failure 503 {object} middleware.ErrorResponse
// @Router /worksheets [get]
func (h *WorksheetHandler) ListWorksheets(c *fiber.Ctx) error {
	list, err := h.service.List(c.UserContext())
	if err != nil {
		return err
	}
	return c.JSON(list)
}

// GetWorksheet godoc
// @Summary Load an item's worksheet
// @Description Returns the stored answers, or an all-empty set when nothing is stored
// @Tags worksheets
// @Produce json
// @Param itemId path string true "Item ID"
// @Success 200 {object} dto.WorksheetResponse
// @Failure 400 {object} middleware.ErrorResponse
// @Failure 503 {object} middleware.ErrorResponse
// @Router /worksheets/{itemId} [get]
func (h *WorksheetHandler) GetWorksheet(c *fiber.Ctx) error {
	resp, err := h.service.Load(c.UserContext(), itemID(c))
	if err != nil {
		return err
	}
	return c.JSON(resp)
}

// AutoSave godoc
// @Summary Auto-save an item's worksheet
// @Description Replaces the stored answers with the given set
// @Tags worksheets
// @Accept json
// @Produce json
// @Param itemId path string true "Item ID"
// @Param request body dto.WorksheetRequest true "Answers"
// @Success 200 {object} dto.WorksheetResponse
// @Failure 400 {object} middleware.ErrorResponse
// @Failure 503 {object} middleware.ErrorResponse
// @Router /worksheets/{itemId} [put]
func (h *WorksheetHandler) AutoSave(c *fiber.Ctx) error {
	responses, err := h.parseResponses(c)
	if err != nil {
		return err
	}
	resp, err := h.service.AutoSave(c.UserContext(), itemID(c), responses)
	if err != nil {
		return err
	}
	return c.JSON(resp)
}

// SaveWorksheet godoc
// @Summary Save an item's worksheet and get the text report
// @Description With download=true the report is returned as a text attachment
// @Tags worksheets
// @Accept json
// @Produce json,plain
// @Param itemId path string true "Item ID"
// @Param download query bool false "Return the report as a file"
// @Param request body dto.WorksheetRequest true "Answers"
// @Success 200 {object} dto.SaveWorksheetResponse
// @Failure 400 {object} middleware.ErrorResponse
// @Failure 503 {object} middleware.ErrorResponse
// @Router /worksheets/{itemId}/save [post]
func (h *WorksheetHandler) SaveWorksheet(c *fiber.Ctx) error {
	responses, err := h.parseResponses(c)
	if err != nil {
		return err
	}
	resp, err := h.service.Save(c.UserContext(), itemID(c), responses)
	if err != nil {
		return err
	}
	if c.QueryBool("download", false) {
		c.Attachment(resp.Filename)
		return c.SendString(resp.Text)
	}
	return c.JSON(resp)
}

// ClearWorksheet godoc
// @Summary Clear an item's worksheet
// @Description Requires confirm=true; the stored answers cannot be recovered
// @Tags worksheets
// @Param itemId path string true "Item ID"
// @Param confirm query bool true "Confirm clearing"
// @Success 204
// @Failure 409 {object} middleware.ErrorResponse
// @Failure 503 {object} middleware.ErrorResponse
// @Router /worksheets/{itemId} [delete]
func (h *WorksheetHandler) ClearWorksheet(c *fiber.Ctx) error {
	if err := h.service.Clear(c.UserContext(), itemID(c), c.QueryBool("confirm", false)); err != nil {
		return err
	}
	return c.SendStatus(fiber.StatusNoContent)
}

// ExportWorksheet godoc
// @Summary Download the text report of an item's worksheet
// @Tags worksheets
// @Produce plain
// @Param itemId path string true "Item ID"
// @Success 200 {string} string "Text report"
// @Router /worksheets/{itemId}/export.txt [get]
func (h *WorksheetHandler) ExportWorksheet(c *fiber.Ctx) error {
	filename, text, err := h.service.ExportText(c.UserContext(), itemID(c))
	if err != nil {
		return err
	}
	c.Attachment(filename)
	return c.SendString(text)
}

// PrintWorksheet godoc
// @Summary Printable HTML page of an item's worksheet
// @Tags worksheets
// @Produce html
// @Param itemId path string true "Item ID"
// @Success 200 {string} string "HTML page"
// @Router /worksheets/{itemId}/print [get]
func (h *WorksheetHandler) PrintWorksheet(c *fiber.Ctx) error {
	page, err := h.service.Print(c.UserContext(), itemID(c))
	if err != nil {
		return err
	}
	c.Type("html", "utf-8")
	return c.SendString(page)
}
