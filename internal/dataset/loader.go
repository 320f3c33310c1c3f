// Package dataset loads the art catalog document once at startup.
package dataset

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"os"
	"strings"

	"art-atlas/internal/domain"

	"go.uber.org/zap"
)

// Loader reads the dataset from a local file or over HTTP.
type Loader struct {
	client *http.Client
	logger *zap.Logger
}

// NewLoader returns a loader. A nil client uses http.DefaultClient.
func NewLoader(client *http.Client, logger *zap.Logger) *Loader {
	if client == nil {
		client = http.DefaultClient
	}
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Loader{client: client, logger: logger}
}

func isRemote(source string) bool {
	return strings.HasPrefix(source, "http://") || strings.HasPrefix(source, "https://")
}

// Load fetches and decodes the dataset. Validation problems are logged as
// warnings; only unreadable or malformed documents fail.
func (l *Loader) Load(ctx context.Context, source string) (*domain.Dataset, error) {
	rc, err := l.open(ctx, source)
	if err != nil {
		return nil, err
	}
	defer rc.Close()

	ds, err := Decode(rc)
	if err != nil {
		return nil, fmt.Errorf("decoding dataset %s: %w", source, err)
	}

	for _, w := range ds.Validate() {
		l.logger.Warn("dataset warning", zap.String("source", source), zap.String("warning", w))
	}
	l.logger.Info("dataset loaded",
		zap.String("source", source),
		zap.Int("items", len(ds.Items)),
		zap.Int("glossary_categories", len(ds.EducationalContent.Glossary)))
	return ds, nil
}

func (l *Loader) open(ctx context.Context, source string) (io.ReadCloser, error) {
	if !isRemote(source) {
		f, err := os.Open(source)
		if err != nil {
			return nil, fmt.Errorf("opening dataset: %w", err)
		}
		return f, nil
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, source, nil)
	if err != nil {
		return nil, fmt.Errorf("building dataset request: %w", err)
	}
	req.Header.Set("Accept", "application/json")
	resp, err := l.client.Do(req)
	if err != nil {
		return nil, fmt.Errorf("fetching dataset: %w", err)
	}
	if resp.StatusCode != http.StatusOK {
		resp.Body.Close()
		return nil, fmt.Errorf("fetching dataset: unexpected status %d", resp.StatusCode)
	}
	return resp.Body, nil
}

// Decode parses a dataset document.
func Decode(r io.Reader) (*domain.Dataset, error) {
	var ds domain.Dataset
	if err := json.NewDecoder(r).Decode(&ds); err != nil {
		return nil, err
	}
	if ds.Items == nil {
		ds.Items = []domain.ArtItem{}
	}
	return &ds, nil
}
