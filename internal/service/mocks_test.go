package service

import (
	"context"
	"time"

	"art-atlas/internal/domain"

	"github.com/stretchr/testify/mock"
)

// --- MockCache ---
type MockCache struct {
	mock.Mock
}

func (m *MockCache) Get(ctx context.Context, key string) (string, error) {
	args := m.Called(ctx, key)
	return args.String(0), args.Error(1)
}

func (m *MockCache) Set(ctx context.Context, key string, value string, expiration time.Duration) error {
	args := m.Called(ctx, key, value, expiration)
	return args.Error(0)
}

func (m *MockCache) Delete(ctx context.Context, key string) error {
	args := m.Called(ctx, key)
	return args.Error(0)
}

func (m *MockCache) Ping(ctx context.Context) error {
	args := m.Called(ctx)
	return args.Error(0)
}

func (m *MockCache) Keys(ctx context.Context, prefix string) ([]string, error) {
	args := m.Called(ctx, prefix)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]string), args.Error(1)
}

// --- MockWorksheetRepository ---
type MockWorksheetRepository struct {
	mock.Mock
}

func (m *MockWorksheetRepository) Get(ctx context.Context, itemID string) (*domain.WorksheetRecord, error) {
	args := m.Called(ctx, itemID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.WorksheetRecord), args.Error(1)
}

func (m *MockWorksheetRepository) Put(ctx context.Context, record *domain.WorksheetRecord) error {
	args := m.Called(ctx, record)
	return args.Error(0)
}

func (m *MockWorksheetRepository) Delete(ctx context.Context, itemID string) error {
	args := m.Called(ctx, itemID)
	return args.Error(0)
}

func (m *MockWorksheetRepository) List(ctx context.Context) ([]*domain.WorksheetRecord, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*domain.WorksheetRecord), args.Error(1)
}

func intPtr(v int) *int { return &v }

// testDataset is a small catalog shared by the service tests.
func testDataset() *domain.Dataset {
	return &domain.Dataset{
		Items: []domain.ArtItem{
			{
				ID: "nok", Title: "Nok Head", Type: "sculpture", ArtistOrCulture: "Nok",
				DateOriginal: "500 BCE", DateNormalized: domain.DateRange{StartYear: intPtr(-500), EndYear: intPtr(-200)},
				Century: "5th century BCE", MediumOrMaterial: "terracotta", LocationOrSite: "Nigeria",
				MovementOrPeriod: "Nok culture", LikelyExam: true, Keywords: []string{"sculpture"},
				Notes: "Terracotta heads with elaborate hairstyles and perforated eyes, among the oldest figurative sculpture.",
			},
			{
				ID: "kente", Title: "Kente Cloth", Type: "textile", ArtistOrCulture: "Asante",
				DateOriginal: "c. 1700", DateNormalized: domain.DateRange{StartYear: intPtr(1700)},
				Century: "18th century", MediumOrMaterial: "silk and cotton cloth", LocationOrSite: "Ghana",
				MovementOrPeriod: "Asante", Keywords: []string{"textiles"},
				Notes: "Strip-woven cloth whose colours and patterns carry names and proverbs.",
			},
			{
				ID: "mask", Title: "Sowei Mask", Type: "mask", ArtistOrCulture: "Mende",
				DateOriginal: "20th century", DateNormalized: domain.DateRange{StartYear: intPtr(1900), EndYear: intPtr(1999)},
				Century: "20th century", MediumOrMaterial: "wood", LocationOrSite: "Sierra Leone",
				MovementOrPeriod: "Sande society", LikelyExam: true, Keywords: []string{"masks"},
			},
			{
				ID: "undated", Title: "Undated Stool", Type: "sculpture", Keywords: []string{},
			},
		},
		EducationalContent: domain.EducationalContent{
			ArtTypes: map[string]string{
				"textiles":  "Woven and dyed cloth.",
				"sculpture": "Carved and modelled figures.",
			},
			Glossary: map[string]map[string]string{
				"techniques": {"lost_wax": "A casting method using a wax model."},
				"concepts":   {"call_and_response": "An alternating pattern of statement and reply."},
			},
		},
	}
}
