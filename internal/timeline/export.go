package timeline

import (
	"encoding/csv"
	"fmt"
	"io"
	"strconv"

	"art-atlas/internal/domain"
)

// ExportFilename is the suggested download name of WriteCSV output.
const ExportFilename = "african_art_timeline.csv"

var csvHeader = []string{"Title", "Type", "Century", "Movement", "Start Year", "End Year", "Date"}

// WriteCSV writes one row per item. Unknown years are left blank.
func WriteCSV(w io.Writer, items []domain.ArtItem) error {
	cw := csv.NewWriter(w)
	if err := cw.Write(csvHeader); err != nil {
		return fmt.Errorf("writing timeline header: %w", err)
	}
	for i := range items {
		item := &items[i]
		row := []string{
			item.Title,
			item.Type,
			item.Century,
			item.MovementOrPeriod,
			yearCell(item.DateNormalized.StartYear),
			yearCell(item.DateNormalized.EndYear),
			FormatNormalized(item.DateNormalized),
		}
		if err := cw.Write(row); err != nil {
			return fmt.Errorf("writing timeline row %q: %w", item.ID, err)
		}
	}
	cw.Flush()
	return cw.Error()
}

func yearCell(y *int) string {
	if y == nil {
		return ""
	}
	return strconv.Itoa(*y)
}
