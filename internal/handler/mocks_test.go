package handler_test

import (
	"context"
	"io"

	"art-atlas/internal/catalog"
	"art-atlas/internal/domain"
	"art-atlas/internal/dto"
	"art-atlas/internal/handler"
	"art-atlas/internal/middleware"
	"art-atlas/internal/quiz"
	"art-atlas/internal/timeline"

	"github.com/gofiber/fiber/v2"
)

// --- Manual Mocks ---

// MockCatalogService
type MockCatalogService struct {
	ListItemsFunc      func(c catalog.Criteria) *dto.ItemsResponse
	GetItemFunc        func(id string) (*dto.ItemResponse, error)
	FacetsFunc         func() *dto.FacetsResponse
	FeaturedFunc       func(count int) []dto.FeaturedItem
	StatsFunc          func() *dto.StatsResponse
	TimelineFunc       func(c catalog.Criteria) timeline.Result
	ExportTimelineFunc func(w io.Writer, c catalog.Criteria) error
	EducationFunc      func() *dto.EducationResponse
	GlossaryFunc       func(query, category string) *dto.GlossaryResponse
}

func (m *MockCatalogService) ListItems(c catalog.Criteria) *dto.ItemsResponse {
	if m.ListItemsFunc != nil {
		return m.ListItemsFunc(c)
	}
	panic("MockCatalogService.ListItemsFunc not implemented")
}
func (m *MockCatalogService) GetItem(id string) (*dto.ItemResponse, error) {
	if m.GetItemFunc != nil {
		return m.GetItemFunc(id)
	}
	panic("MockCatalogService.GetItemFunc not implemented")
}
func (m *MockCatalogService) Facets() *dto.FacetsResponse {
	if m.FacetsFunc != nil {
		return m.FacetsFunc()
	}
	panic("MockCatalogService.FacetsFunc not implemented")
}
func (m *MockCatalogService) Featured(count int) []dto.FeaturedItem {
	if m.FeaturedFunc != nil {
		return m.FeaturedFunc(count)
	}
	panic("MockCatalogService.FeaturedFunc not implemented")
}
func (m *MockCatalogService) Stats() *dto.StatsResponse {
	if m.StatsFunc != nil {
		return m.StatsFunc()
	}
	panic("MockCatalogService.StatsFunc not implemented")
}
func (m *MockCatalogService) Timeline(c catalog.Criteria) timeline.Result {
	if m.TimelineFunc != nil {
		return m.TimelineFunc(c)
	}
	panic("MockCatalogService.TimelineFunc not implemented")
}
func (m *MockCatalogService) ExportTimeline(w io.Writer, c catalog.Criteria) error {
	if m.ExportTimelineFunc != nil {
		return m.ExportTimelineFunc(w, c)
	}
	panic("MockCatalogService.ExportTimelineFunc not implemented")
}
func (m *MockCatalogService) Education() *dto.EducationResponse {
	if m.EducationFunc != nil {
		return m.EducationFunc()
	}
	panic("MockCatalogService.EducationFunc not implemented")
}
func (m *MockCatalogService) Glossary(query, category string) *dto.GlossaryResponse {
	if m.GlossaryFunc != nil {
		return m.GlossaryFunc(query, category)
	}
	panic("MockCatalogService.GlossaryFunc not implemented")
}

// MockQuizSessionService
type MockQuizSessionService struct {
	NextFunc   func(ctx context.Context, sessionID string, mode quiz.Mode) (*dto.QuestionResponse, error)
	CheckFunc  func(ctx context.Context, req *dto.CheckAnswerRequest) (*dto.CheckAnswerResponse, error)
	ExportFunc func(ctx context.Context, w io.Writer, sessionID string) error
}

func (m *MockQuizSessionService) Next(ctx context.Context, sessionID string, mode quiz.Mode) (*dto.QuestionResponse, error) {
	if m.NextFunc != nil {
		return m.NextFunc(ctx, sessionID, mode)
	}
	panic("MockQuizSessionService.NextFunc not implemented")
}
func (m *MockQuizSessionService) Check(ctx context.Context, req *dto.CheckAnswerRequest) (*dto.CheckAnswerResponse, error) {
	if m.CheckFunc != nil {
		return m.CheckFunc(ctx, req)
	}
	panic("MockQuizSessionService.CheckFunc not implemented")
}
func (m *MockQuizSessionService) Export(ctx context.Context, w io.Writer, sessionID string) error {
	if m.ExportFunc != nil {
		return m.ExportFunc(ctx, w, sessionID)
	}
	panic("MockQuizSessionService.ExportFunc not implemented")
}

// MockWorksheetService
type MockWorksheetService struct {
	LoadFunc       func(ctx context.Context, itemID string) (*dto.WorksheetResponse, error)
	AutoSaveFunc   func(ctx context.Context, itemID string, r domain.WorksheetResponses) (*dto.WorksheetResponse, error)
	SaveFunc       func(ctx context.Context, itemID string, r domain.WorksheetResponses) (*dto.SaveWorksheetResponse, error)
	ClearFunc      func(ctx context.Context, itemID string, confirmed bool) error
	ExportTextFunc func(ctx context.Context, itemID string) (string, string, error)
	PrintFunc      func(ctx context.Context, itemID string) (string, error)
	ListFunc       func(ctx context.Context) ([]dto.WorksheetSummary, error)
	AnswerFunc     func(ctx context.Context, itemID, key, text string) (*dto.WorksheetResponse, error)
}

func (m *MockWorksheetService) Load(ctx context.Context, itemID string) (*dto.WorksheetResponse, error) {
	if m.LoadFunc != nil {
		return m.LoadFunc(ctx, itemID)
	}
	panic("MockWorksheetService.LoadFunc not implemented")
}
func (m *MockWorksheetService) AutoSave(ctx context.Context, itemID string, r domain.WorksheetResponses) (*dto.WorksheetResponse, error) {
	if m.AutoSaveFunc != nil {
		return m.AutoSaveFunc(ctx, itemID, r)
	}
	panic("MockWorksheetService.AutoSaveFunc not implemented")
}
func (m *MockWorksheetService) Save(ctx context.Context, itemID string, r domain.WorksheetResponses) (*dto.SaveWorksheetResponse, error) {
	if m.SaveFunc != nil {
		return m.SaveFunc(ctx, itemID, r)
	}
	panic("MockWorksheetService.SaveFunc not implemented")
}
func (m *MockWorksheetService) Clear(ctx context.Context, itemID string, confirmed bool) error {
	if m.ClearFunc != nil {
		return m.ClearFunc(ctx, itemID, confirmed)
	}
	panic("MockWorksheetService.ClearFunc not implemented")
}
func (m *MockWorksheetService) ExportText(ctx context.Context, itemID string) (string, string, error) {
	if m.ExportTextFunc != nil {
		return m.ExportTextFunc(ctx, itemID)
	}
	panic("MockWorksheetService.ExportTextFunc not implemented")
}
func (m *MockWorksheetService) Print(ctx context.Context, itemID string) (string, error) {
	if m.PrintFunc != nil {
		return m.PrintFunc(ctx, itemID)
	}
	panic("MockWorksheetService.PrintFunc not implemented")
}
func (m *MockWorksheetService) List(ctx context.Context) ([]dto.WorksheetSummary, error) {
	if m.ListFunc != nil {
		return m.ListFunc(ctx)
	}
	panic("MockWorksheetService.ListFunc not implemented")
}
func (m *MockWorksheetService) Answer(ctx context.Context, itemID, key, text string) (*dto.WorksheetResponse, error) {
	if m.AnswerFunc != nil {
		return m.AnswerFunc(ctx, itemID, key, text)
	}
	panic("MockWorksheetService.AnswerFunc not implemented")
}

type mocks struct {
	catalog    *MockCatalogService
	quiz       *MockQuizSessionService
	worksheets *MockWorksheetService
}

// newTestApp mounts the routes under /api with the production error handler.
func newTestApp() (*fiber.App, *mocks) {
	m := &mocks{
		catalog:    &MockCatalogService{},
		quiz:       &MockQuizSessionService{},
		worksheets: &MockWorksheetService{},
	}
	app := fiber.New(fiber.Config{
		ErrorHandler: middleware.ErrorHandler(),
	})
	handler.RegisterRoutes(app.Group("/api"),
		handler.NewCatalogHandler(m.catalog),
		handler.NewQuizHandler(m.quiz),
		handler.NewWorksheetHandler(m.worksheets),
	)
	return app, m
}
