package handler

import (
	"art-atlas/internal/middleware"
	"art-atlas/internal/service"

	"github.com/gofiber/fiber/v2"
)

// RegisterRoutes mounts every API endpoint on router.
func RegisterRoutes(router fiber.Router, catalog *CatalogHandler, quiz *QuizHandler, worksheets *WorksheetHandler) {
	vm := middleware.NewValidationMiddleware()

	// static paths before /items/:id
	router.Get("/items", vm.ValidateSearch(), catalog.ListItems)
	router.Get("/items/facets", catalog.Facets)
	router.Get("/items/featured", vm.ValidateFeaturedCount(service.DefaultFeaturedCount, service.MaxFeaturedCount), catalog.Featured)
	router.Get("/items/:id", vm.ValidateItemID("id"), catalog.GetItem)
	router.Get("/stats", catalog.Stats)

	router.Get("/timeline", vm.ValidateSearch(), catalog.Timeline)
	router.Get("/timeline/export.csv", vm.ValidateSearch(), catalog.ExportTimeline)

	router.Get("/education", catalog.Education)
	router.Get("/glossary", vm.ValidateSearch(), catalog.Glossary)

	quizGroup := router.Group("/quiz")
	quizGroup.Get("/next", vm.ValidateQuizSession(), quiz.NextQuestion)
	quizGroup.Post("/check", quiz.CheckAnswer)
	quizGroup.Get("/export.csv", vm.ValidateQuizSession(), quiz.ExportQuiz)

	ws := router.Group("/worksheets")
	ws.Get("/", worksheets.ListWorksheets)
	ws.Get("/:itemId", vm.ValidateItemID("itemId"), worksheets.GetWorksheet)
	ws.Put("/:itemId", vm.ValidateItemID("itemId"), worksheets.AutoSave)
	ws.Delete("/:itemId", vm.ValidateItemID("itemId"), worksheets.ClearWorksheet)
	ws.Post("/:itemId/save", vm.ValidateItemID("itemId"), worksheets.SaveWorksheet)
	ws.Get("/:itemId/print", vm.ValidateItemID("itemId"), worksheets.PrintWorksheet)
	ws.Get("/:itemId/export.txt", vm.ValidateItemID("itemId"), worksheets.ExportWorksheet)
}
