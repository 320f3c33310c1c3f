package domain

import (
	"context"
	"errors"
	"time"
)

// ErrWorksheetNotFound is returned by a WorksheetRepository when no record exists.
var ErrWorksheetNotFound = errors.New("worksheet not found")

// WorksheetResponses holds the thirteen free-text answers of the visual
// analysis questionnaire. Missing keys decode as empty strings.
type WorksheetResponses struct {
	FirstImpression      string `json:"firstImpression"`
	AttentionFocus       string `json:"attentionFocus"`
	VisualElements       string `json:"visualElements"`
	Composition          string `json:"composition"`
	MaterialsTechnique   string `json:"materialsTechnique"`
	CulturalSignificance string `json:"culturalSignificance"`
	AestheticPrinciples  string `json:"aestheticPrinciples"`
	SocialContext        string `json:"socialContext"`
	SymbolsMotifs        string `json:"symbolsMotifs"`
	SymbolicMeaning      string `json:"symbolicMeaning"`
	AestheticValues      string `json:"aestheticValues"`
	ArtisticSuccess      string `json:"artisticSuccess"`
	UnderstandingChange  string `json:"understandingChange"`
}

// Field returns the response stored under its JSON key.
func (r WorksheetResponses) Field(key string) string {
	switch key {
	case "firstImpression":
		return r.FirstImpression
	case "attentionFocus":
		return r.AttentionFocus
	case "visualElements":
		return r.VisualElements
	case "composition":
		return r.Composition
	case "materialsTechnique":
		return r.MaterialsTechnique
	case "culturalSignificance":
		return r.CulturalSignificance
	case "aestheticPrinciples":
		return r.AestheticPrinciples
	case "socialContext":
		return r.SocialContext
	case "symbolsMotifs":
		return r.SymbolsMotifs
	case "symbolicMeaning":
		return r.SymbolicMeaning
	case "aestheticValues":
		return r.AestheticValues
	case "artisticSuccess":
		return r.ArtisticSuccess
	case "understandingChange":
		return r.UnderstandingChange
	default:
		return ""
	}
}

// SetField stores value under its JSON key. It reports false for keys that
// are not worksheet questions.
func (r *WorksheetResponses) SetField(key, value string) bool {
	switch key {
	case "firstImpression":
		r.FirstImpression = value
	case "attentionFocus":
		r.AttentionFocus = value
	case "visualElements":
		r.VisualElements = value
	case "composition":
		r.Composition = value
	case "materialsTechnique":
		r.MaterialsTechnique = value
	case "culturalSignificance":
		r.CulturalSignificance = value
	case "aestheticPrinciples":
		r.AestheticPrinciples = value
	case "socialContext":
		r.SocialContext = value
	case "symbolsMotifs":
		r.SymbolsMotifs = value
	case "symbolicMeaning":
		r.SymbolicMeaning = value
	case "aestheticValues":
		r.AestheticValues = value
	case "artisticSuccess":
		r.ArtisticSuccess = value
	case "understandingChange":
		r.UnderstandingChange = value
	default:
		return false
	}
	return true
}

// WorksheetRecord is the persisted worksheet of one item. At most one
// record exists per item id; the last write wins.
type WorksheetRecord struct {
	ItemID    string             `json:"artworkId"`
	ItemTitle string             `json:"artworkTitle"`
	Timestamp time.Time          `json:"timestamp"`
	Responses WorksheetResponses `json:"responses"`
}

// WorksheetRepository persists worksheet records keyed by item id.
type WorksheetRepository interface {
	// Get returns ErrWorksheetNotFound when no record is stored for the item.
	Get(ctx context.Context, itemID string) (*WorksheetRecord, error)
	// Put overwrites the stored record for record.ItemID.
	Put(ctx context.Context, record *WorksheetRecord) error
	// Delete removes the record; deleting a missing record is not an error.
	Delete(ctx context.Context, itemID string) error
	// List returns every stored record ordered by item id.
	List(ctx context.Context) ([]*WorksheetRecord, error)
}
