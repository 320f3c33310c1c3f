package models

import (
	"database/sql"
	"database/sql/driver"
	"encoding/json"
	"fmt"
	"time"

	"art-atlas/internal/domain"
	"art-atlas/internal/util"
)

// ResponsesJSON stores the thirteen worksheet answers as one JSON column.
type ResponsesJSON domain.WorksheetResponses

// Value implements the driver.Valuer interface
func (r ResponsesJSON) Value() (driver.Value, error) {
	b, err := json.Marshal(domain.WorksheetResponses(r))
	if err != nil {
		return nil, err
	}
	// string rather than []byte so CLOB and TEXT columns both accept it
	return string(b), nil
}

// Scan implements the sql.Scanner interface. NULL and empty values decode
// to an all-empty set of responses.
func (r *ResponsesJSON) Scan(value interface{}) error {
	var raw []byte
	switch v := value.(type) {
	case nil:
		*r = ResponsesJSON{}
		return nil
	case []byte:
		raw = v
	case string:
		raw = []byte(v)
	default:
		return fmt.Errorf("ResponsesJSON Scan: unsupported type %T", value)
	}
	if len(raw) == 0 || string(raw) == "null" {
		*r = ResponsesJSON{}
		return nil
	}
	var out domain.WorksheetResponses
	if err := json.Unmarshal(raw, &out); err != nil {
		return fmt.Errorf("ResponsesJSON Scan: %w", err)
	}
	*r = ResponsesJSON(out)
	return nil
}

// Worksheet is a row of the worksheets table. Oracle stores an empty title
// as NULL, hence the nullable column.
type Worksheet struct {
	ItemID    string         `db:"ITEM_ID"`
	ItemTitle sql.NullString `db:"ITEM_TITLE"`
	Responses ResponsesJSON  `db:"RESPONSES"`
	SavedAt   time.Time      `db:"SAVED_AT"`
}

// ToDomain converts the row into a domain record.
func (w *Worksheet) ToDomain() *domain.WorksheetRecord {
	return &domain.WorksheetRecord{
		ItemID:    w.ItemID,
		ItemTitle: w.ItemTitle.String,
		Timestamp: w.SavedAt,
		Responses: domain.WorksheetResponses(w.Responses),
	}
}

// WorksheetFromDomain builds a row from a domain record.
func WorksheetFromDomain(rec *domain.WorksheetRecord) *Worksheet {
	return &Worksheet{
		ItemID:    rec.ItemID,
		ItemTitle: util.StringToNullString(rec.ItemTitle),
		Responses: ResponsesJSON(rec.Responses),
		SavedAt:   rec.Timestamp.UTC(),
	}
}
