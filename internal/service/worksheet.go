package service

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"art-atlas/internal/domain"
	"art-atlas/internal/dto"
	"art-atlas/internal/logger"
	"art-atlas/internal/worksheet"

	"go.uber.org/zap"
)

const (
	// SavedMessage confirms an explicit save.
	SavedMessage = "Analysis saved successfully!"
	clearAction  = "clear all analysis responses"
)

// WorksheetService manages the visual-analysis worksheet of each item.
type WorksheetService interface {
	Load(ctx context.Context, itemID string) (*dto.WorksheetResponse, error)
	AutoSave(ctx context.Context, itemID string, responses domain.WorksheetResponses) (*dto.WorksheetResponse, error)
	Answer(ctx context.Context, itemID, key, text string) (*dto.WorksheetResponse, error)
	Save(ctx context.Context, itemID string, responses domain.WorksheetResponses) (*dto.SaveWorksheetResponse, error)
	Clear(ctx context.Context, itemID string, confirmed bool) error
	ExportText(ctx context.Context, itemID string) (filename, text string, err error)
	Print(ctx context.Context, itemID string) (string, error)
	List(ctx context.Context) ([]dto.WorksheetSummary, error)
}

type worksheetService struct {
	dataset *domain.Dataset
	repo    domain.WorksheetRepository
	now     func() time.Time
}

// NewWorksheetService creates a worksheet service backed by repo.
func NewWorksheetService(ds *domain.Dataset, repo domain.WorksheetRepository) WorksheetService {
	return &worksheetService{dataset: ds, repo: repo, now: time.Now}
}

func (s *worksheetService) item(itemID string) (*domain.ArtItem, error) {
	if strings.TrimSpace(itemID) == "" {
		return nil, domain.NewSelectionRequiredError()
	}
	item, ok := s.dataset.ItemByID(itemID)
	if !ok {
		return nil, domain.NewSelectionRequiredError().WithContext("item_id", itemID)
	}
	return item, nil
}

// record loads the stored record of item, or an unsaved empty one.
func (s *worksheetService) record(ctx context.Context, item *domain.ArtItem) (*domain.WorksheetRecord, bool, error) {
	rec, err := s.repo.Get(ctx, item.ID)
	if errors.Is(err, domain.ErrWorksheetNotFound) {
		return &domain.WorksheetRecord{
			ItemID:    item.ID,
			ItemTitle: item.Title,
			Timestamp: s.now(),
		}, false, nil
	}
	if err != nil {
		logger.Get().Error("Failed to load worksheet", zap.String("item_id", item.ID), zap.Error(err))
		return nil, false, domain.NewStoreUnavailableError(err)
	}
	return rec, true, nil
}

func toWorksheetResponse(rec *domain.WorksheetRecord, saved bool) *dto.WorksheetResponse {
	resp := &dto.WorksheetResponse{
		ItemID:    rec.ItemID,
		ItemTitle: rec.ItemTitle,
		Saved:     saved,
		Responses: rec.Responses,
	}
	if saved {
		ts := rec.Timestamp
		resp.SavedAt = &ts
	}
	return resp
}

func (s *worksheetService) Load(ctx context.Context, itemID string) (*dto.WorksheetResponse, error) {
	item, err := s.item(itemID)
	if err != nil {
		return nil, err
	}
	rec, saved, err := s.record(ctx, item)
	if err != nil {
		return nil, err
	}
	return toWorksheetResponse(rec, saved), nil
}

func (s *worksheetService) put(ctx context.Context, item *domain.ArtItem, responses domain.WorksheetResponses) (*domain.WorksheetRecord, error) {
	rec := &domain.WorksheetRecord{
		ItemID:    item.ID,
		ItemTitle: item.Title,
		Timestamp: s.now(),
		Responses: responses,
	}
	if err := s.repo.Put(ctx, rec); err != nil {
		logger.Get().Error("Failed to store worksheet", zap.String("item_id", item.ID), zap.Error(err))
		return nil, domain.NewStoreUnavailableError(err)
	}
	return rec, nil
}

func (s *worksheetService) AutoSave(ctx context.Context, itemID string, responses domain.WorksheetResponses) (*dto.WorksheetResponse, error) {
	item, err := s.item(itemID)
	if err != nil {
		return nil, err
	}
	rec, err := s.put(ctx, item, responses)
	if err != nil {
		return nil, err
	}
	return toWorksheetResponse(rec, true), nil
}

// Answer replaces a single response and keeps the others as stored.
func (s *worksheetService) Answer(ctx context.Context, itemID, key, text string) (*dto.WorksheetResponse, error) {
	item, err := s.item(itemID)
	if err != nil {
		return nil, err
	}
	current, _, err := s.record(ctx, item)
	if err != nil {
		return nil, err
	}
	responses := current.Responses
	if !responses.SetField(key, text) {
		return nil, domain.NewInvalidInputError(fmt.Sprintf("Unknown worksheet question %q", key)).
			WithContext("key", key)
	}
	rec, err := s.put(ctx, item, responses)
	if err != nil {
		return nil, err
	}
	return toWorksheetResponse(rec, true), nil
}

func (s *worksheetService) Save(ctx context.Context, itemID string, responses domain.WorksheetResponses) (*dto.SaveWorksheetResponse, error) {
	item, err := s.item(itemID)
	if err != nil {
		return nil, err
	}
	rec, err := s.put(ctx, item, responses)
	if err != nil {
		return nil, err
	}
	logger.Get().Info("Worksheet saved", zap.String("item_id", item.ID))
	return &dto.SaveWorksheetResponse{
		Message:  SavedMessage,
		Filename: worksheet.Filename(item.Title),
		Text:     worksheet.ExportText(rec),
	}, nil
}

func (s *worksheetService) Clear(ctx context.Context, itemID string, confirmed bool) error {
	item, err := s.item(itemID)
	if err != nil {
		return err
	}
	if !confirmed {
		return domain.NewConfirmationRequiredError(clearAction)
	}
	if err := s.repo.Delete(ctx, item.ID); err != nil {
		logger.Get().Error("Failed to clear worksheet", zap.String("item_id", item.ID), zap.Error(err))
		return domain.NewStoreUnavailableError(err)
	}
	logger.Get().Info("Worksheet cleared", zap.String("item_id", item.ID))
	return nil
}

func (s *worksheetService) ExportText(ctx context.Context, itemID string) (string, string, error) {
	item, err := s.item(itemID)
	if err != nil {
		return "", "", err
	}
	rec, _, err := s.record(ctx, item)
	if err != nil {
		return "", "", err
	}
	return worksheet.Filename(item.Title), worksheet.ExportText(rec), nil
}

func (s *worksheetService) Print(ctx context.Context, itemID string) (string, error) {
	item, err := s.item(itemID)
	if err != nil {
		return "", err
	}
	rec, _, err := s.record(ctx, item)
	if err != nil {
		return "", err
	}
	page, err := worksheet.ExportPrintable(rec)
	if err != nil {
		return "", domain.NewInternalError("Failed to render worksheet", err)
	}
	return page, nil
}

func (s *worksheetService) List(ctx context.Context) ([]dto.WorksheetSummary, error) {
	recs, err := s.repo.List(ctx)
	if err != nil {
		logger.Get().Error("Failed to list worksheets", zap.Error(err))
		return nil, domain.NewStoreUnavailableError(err)
	}
	out := make([]dto.WorksheetSummary, 0, len(recs))
	for _, rec := range recs {
		out = append(out, dto.WorksheetSummary{
			ItemID:    rec.ItemID,
			ItemTitle: rec.ItemTitle,
			SavedAt:   rec.Timestamp,
			Answered:  answered(rec.Responses),
		})
	}
	return out, nil
}

func answered(r domain.WorksheetResponses) int {
	n := 0
	for _, sec := range worksheet.Sections {
		for _, q := range sec.Questions {
			if strings.TrimSpace(r.Field(q.Key)) != "" {
				n++
			}
		}
	}
	return n
}
