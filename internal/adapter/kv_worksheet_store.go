package adapter

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"sort"

	"art-atlas/internal/cache"
	"art-atlas/internal/domain"
)

// KVWorksheetStore keeps worksheet records as JSON documents under
// analysis_<itemId> keys of a domain.Cache. Records never expire.
type KVWorksheetStore struct {
	cache domain.Cache
}

// NewKVWorksheetStore wraps a key-value cache as a worksheet repository.
func NewKVWorksheetStore(c domain.Cache) *KVWorksheetStore {
	return &KVWorksheetStore{cache: c}
}

var _ domain.WorksheetRepository = (*KVWorksheetStore)(nil)

func (s *KVWorksheetStore) Get(ctx context.Context, itemID string) (*domain.WorksheetRecord, error) {
	raw, err := s.cache.Get(ctx, cache.WorksheetKey(itemID))
	if err != nil {
		if errors.Is(err, domain.ErrCacheMiss) {
			return nil, domain.ErrWorksheetNotFound
		}
		return nil, err
	}
	var rec domain.WorksheetRecord
	if err := json.Unmarshal([]byte(raw), &rec); err != nil {
		return nil, fmt.Errorf("decoding worksheet %s: %w", itemID, err)
	}
	if rec.ItemID == "" {
		rec.ItemID = itemID
	}
	return &rec, nil
}

func (s *KVWorksheetStore) Put(ctx context.Context, record *domain.WorksheetRecord) error {
	raw, err := json.Marshal(record)
	if err != nil {
		return fmt.Errorf("encoding worksheet %s: %w", record.ItemID, err)
	}
	return s.cache.Set(ctx, cache.WorksheetKey(record.ItemID), string(raw), 0)
}

func (s *KVWorksheetStore) Delete(ctx context.Context, itemID string) error {
	return s.cache.Delete(ctx, cache.WorksheetKey(itemID))
}

func (s *KVWorksheetStore) List(ctx context.Context) ([]*domain.WorksheetRecord, error) {
	keys, err := s.cache.Keys(ctx, cache.WorksheetKeyPrefix)
	if err != nil {
		return nil, err
	}
	ids := make([]string, 0, len(keys))
	for _, k := range keys {
		if id, ok := cache.ItemIDFromKey(k); ok {
			ids = append(ids, id)
		}
	}
	sort.Strings(ids)

	out := make([]*domain.WorksheetRecord, 0, len(ids))
	for _, id := range ids {
		rec, err := s.Get(ctx, id)
		if errors.Is(err, domain.ErrWorksheetNotFound) {
			// deleted between SCAN and GET
			continue
		}
		if err != nil {
			return nil, err
		}
		out = append(out, rec)
	}
	return out, nil
}
