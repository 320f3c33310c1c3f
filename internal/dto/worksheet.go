package dto

import (
	"time"

	"art-atlas/internal/domain"
)

// WorksheetRequest carries the full set of answers; saving replaces the
// stored set.
// @Description Worksheet answers
type WorksheetRequest struct {
	Responses domain.WorksheetResponses `json:"responses"`
}

// WorksheetResponse is the stored worksheet of an item. Saved is false when
// nothing has been stored yet and Responses are all empty.
type WorksheetResponse struct {
	ItemID    string                    `json:"item_id"`
	ItemTitle string                    `json:"item_title"`
	Saved     bool                      `json:"saved"`
	SavedAt   *time.Time                `json:"saved_at,omitempty"`
	Responses domain.WorksheetResponses `json:"responses"`
}

// SaveWorksheetResponse is returned by an explicit save.
type SaveWorksheetResponse struct {
	Message  string `json:"message"`
	Filename string `json:"filename"`
	Text     string `json:"text"`
}

// WorksheetSummary is one entry of the saved-worksheet list.
type WorksheetSummary struct {
	ItemID    string    `json:"item_id"`
	ItemTitle string    `json:"item_title"`
	SavedAt   time.Time `json:"saved_at"`
	Answered  int       `json:"answered"`
}
