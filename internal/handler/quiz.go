package handler

import (
	"bytes"

	"art-atlas/internal/domain"
	"art-atlas/internal/dto"
	"art-atlas/internal/logger"
	"art-atlas/internal/middleware"
	"art-atlas/internal/quiz"
	"art-atlas/internal/service"
	"art-atlas/internal/validation"

	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"
)

// QuizHandler handles quiz-related HTTP requests
type QuizHandler struct {
	service   service.QuizSessionService
	validator *validation.Validator
}

// NewQuizHandler creates a new QuizHandler instance
func NewQuizHandler(service service.QuizSessionService) *QuizHandler {
	return &QuizHandler{
		service:   service,
		validator: validation.NewValidator(),
	}
}

// NextQuestion godoc
// @Summary Draw the next quiz question
// @Description Draws a question and appends it to the session log. A new session is opened when the X-Quiz-Session header is absent, unknown or expired.
// @Tags quiz
// @Produce json
// @Param X-Quiz-Session header string false "Quiz session ID"
// @Param exam query bool false "Likely exam items only"
// @Success 200 {object} dto.QuestionResponse
// @Failure 400 {object} middleware.ValidationErrorResponse
// @Failure 503 {object} middleware.ErrorResponse
// @Router /quiz/next [get]
func (h *QuizHandler) NextQuestion(c *fiber.Ctx) error {
	mode := quiz.ModeAll
	if c.QueryBool("exam", false) {
		mode = quiz.ModeExam
	}
	resp, err := h.service.Next(c.UserContext(), c.Locals(middleware.LocalSessionID).(string), mode)
	if err != nil {
		return err
	}
	c.Set(middleware.SessionHeader, resp.SessionID)
	return c.JSON(resp)
}

// CheckAnswer godoc
// @Summary Check quiz answer
// @Description Checks the selected answer of a question from the session log
// @Tags quiz
// @Accept json
// @Produce json
// @Param request body dto.CheckAnswerRequest true "Answer details"
// @Success 200 {object} dto.CheckAnswerResponse
// @Failure 400 {object} middleware.ValidationErrorResponse
// @Failure 404 {object} middleware.ErrorResponse
// @Router /quiz/check [post]
func (h *QuizHandler) CheckAnswer(c *fiber.Ctx) error {
	var req dto.CheckAnswerRequest
	if err := c.BodyParser(&req); err != nil {
		logger.Get().Warn("Invalid check answer body", zap.Error(err))
		return domain.NewInvalidInputError("Invalid request body")
	}
	if req.SessionID == "" {
		req.SessionID = c.Get(middleware.SessionHeader)
	}
	if errors := h.validator.ValidateCheckAnswerRequest(req.SessionID, req.QuestionID, req.Answer); len(errors) > 0 {
		return errors
	}

	result, err := h.service.Check(c.UserContext(), &req)
	if err != nil {
		return err
	}
	return c.JSON(result)
}

// ExportQuiz godoc
// @Summary Export the session's questions as CSV
// @Tags quiz
// @Produce text/csv
// @Param X-Quiz-Session header string false "Quiz session ID"
// @Success 200 {string} string "CSV file"
// @Failure 400 {object} middleware.ErrorResponse
// @Router /quiz/export.csv [get]
func (h *QuizHandler) ExportQuiz(c *fiber.Ctx) error {
	var buf bytes.Buffer
	if err := h.service.Export(c.UserContext(), &buf, c.Locals(middleware.LocalSessionID).(string)); err != nil {
		return err
	}
	c.Attachment(quiz.ExportFilename)
	return c.Send(buf.Bytes())
}
