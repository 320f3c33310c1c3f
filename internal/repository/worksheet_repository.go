package repository

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"art-atlas/internal/domain"
	"art-atlas/internal/repository/models"
)

const worksheetColumns = `item_id AS "ITEM_ID", item_title AS "ITEM_TITLE", responses AS "RESPONSES", saved_at AS "SAVED_AT"`

const (
	selectWorksheetQuery = `SELECT ` + worksheetColumns + ` FROM worksheets WHERE item_id = ?`
	listWorksheetsQuery  = `SELECT ` + worksheetColumns + ` FROM worksheets ORDER BY item_id`
	deleteWorksheetQuery = `DELETE FROM worksheets WHERE item_id = ?`

	sqliteUpsertQuery = `INSERT INTO worksheets (item_id, item_title, responses, saved_at) VALUES (?, ?, ?, ?) ` +
		`ON CONFLICT(item_id) DO UPDATE SET item_title = excluded.item_title, responses = excluded.responses, saved_at = excluded.saved_at`

	oracleMergeQuery = `MERGE INTO worksheets w ` +
		`USING (SELECT ? AS item_id, ? AS item_title, ? AS responses, ? AS saved_at FROM dual) s ` +
		`ON (w.item_id = s.item_id) ` +
		`WHEN MATCHED THEN UPDATE SET w.item_title = s.item_title, w.responses = s.responses, w.saved_at = s.saved_at ` +
		`WHEN NOT MATCHED THEN INSERT (item_id, item_title, responses, saved_at) VALUES (s.item_id, s.item_title, s.responses, s.saved_at)`
)

// SQLXWorksheetRepository stores worksheet records in the worksheets table.
type SQLXWorksheetRepository struct {
	db      DBTX
	dialect Dialect
}

// NewSQLXWorksheetRepository returns a repository issuing statements in the
// given dialect. Placeholders are written as ? and rebound for the driver.
func NewSQLXWorksheetRepository(db DBTX, dialect Dialect) *SQLXWorksheetRepository {
	return &SQLXWorksheetRepository{db: db, dialect: dialect}
}

var _ domain.WorksheetRepository = (*SQLXWorksheetRepository)(nil)

func (r *SQLXWorksheetRepository) Get(ctx context.Context, itemID string) (*domain.WorksheetRecord, error) {
	var row models.Worksheet
	err := r.db.GetContext(ctx, &row, r.db.Rebind(selectWorksheetQuery), itemID)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, domain.ErrWorksheetNotFound
		}
		return nil, fmt.Errorf("failed to get worksheet %s: %w", itemID, err)
	}
	return row.ToDomain(), nil
}

func (r *SQLXWorksheetRepository) Put(ctx context.Context, record *domain.WorksheetRecord) error {
	query := sqliteUpsertQuery
	if r.dialect == DialectOracle {
		query = oracleMergeQuery
	}
	row := models.WorksheetFromDomain(record)
	_, err := r.db.ExecContext(ctx, r.db.Rebind(query), row.ItemID, row.ItemTitle, row.Responses, row.SavedAt)
	if err != nil {
		return fmt.Errorf("failed to save worksheet %s: %w", record.ItemID, err)
	}
	return nil
}

func (r *SQLXWorksheetRepository) Delete(ctx context.Context, itemID string) error {
	if _, err := r.db.ExecContext(ctx, r.db.Rebind(deleteWorksheetQuery), itemID); err != nil {
		return fmt.Errorf("failed to delete worksheet %s: %w", itemID, err)
	}
	return nil
}

func (r *SQLXWorksheetRepository) List(ctx context.Context) ([]*domain.WorksheetRecord, error) {
	var rows []models.Worksheet
	if err := r.db.SelectContext(ctx, &rows, listWorksheetsQuery); err != nil {
		return nil, fmt.Errorf("failed to list worksheets: %w", err)
	}
	out := make([]*domain.WorksheetRecord, 0, len(rows))
	for i := range rows {
		out = append(out, rows[i].ToDomain())
	}
	return out, nil
}
