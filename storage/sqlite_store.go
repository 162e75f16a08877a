package storage

import (
	"context"
	"database/sql"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	_ "modernc.org/sqlite"

	"pricing-dashboard/models"
	"pricing-dashboard/utils"
)

// SQLiteStore persists the validated catalog to a local SQLite file.
type SQLiteStore struct {
	db     *sql.DB
	logger *utils.Logger
}

// NewSQLiteStore opens (creating if needed) the database at path and runs
// schema migrations.
func NewSQLiteStore(ctx context.Context, path string, logger *utils.Logger) (*SQLiteStore, error) {
	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		return nil, fmt.Errorf("sqlite: create dir: %w", err)
	}

	db, err := sql.Open("sqlite", path)
	if err != nil {
		return nil, fmt.Errorf("sqlite: open %q: %w", path, err)
	}
	// A single connection serialises writers on the file.
	db.SetMaxOpenConns(1)

	ss := &SQLiteStore{db: db, logger: logger}
	if err := ss.migrate(ctx); err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("sqlite: migrate: %w", err)
	}
	return ss, nil
}

func (ss *SQLiteStore) migrate(ctx context.Context) error {
	for _, stmt := range []string{
		`CREATE TABLE IF NOT EXISTS observations (
			seq                 INTEGER PRIMARY KEY AUTOINCREMENT,
			batch_id            TEXT NOT NULL,
			product_id          TEXT NOT NULL DEFAULT '',
			description         TEXT NOT NULL,
			unit_price          REAL NOT NULL,
			unit_original_price REAL,
			unit_min_price      REAL,
			details             TEXT NOT NULL DEFAULT '',
			logo_url            TEXT NOT NULL DEFAULT '',
			retailer            TEXT NOT NULL,
			state               TEXT NOT NULL,
			city                TEXT NOT NULL DEFAULT '',
			neighborhood        TEXT NOT NULL DEFAULT '',
			merchant_id         TEXT NOT NULL DEFAULT '',
			imported_at         TEXT NOT NULL DEFAULT CURRENT_TIMESTAMP
		)`,
		`CREATE INDEX IF NOT EXISTS idx_observations_state ON observations(state)`,
		`CREATE INDEX IF NOT EXISTS idx_observations_retailer ON observations(retailer)`,
	} {
		if _, err := ss.db.ExecContext(ctx, stmt); err != nil {
			return err
		}
	}
	return nil
}

// Write replaces the stored catalog with observations in one transaction.
func (ss *SQLiteStore) Write(ctx context.Context, batchID string, observations []*models.ProductObservation) error {
	start := time.Now()

	tx, err := ss.db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("sqlite: begin: %w", err)
	}
	defer tx.Rollback()

	if _, err := tx.ExecContext(ctx, "DELETE FROM observations"); err != nil {
		return fmt.Errorf("sqlite: clear: %w", err)
	}

	ph := strings.TrimRight(strings.Repeat("?,", len(observationColumns)+1), ",")
	stmt, err := tx.PrepareContext(ctx,
		`INSERT INTO observations (batch_id, `+strings.Join(observationColumns, ", ")+`) VALUES (`+ph+`)`)
	if err != nil {
		return fmt.Errorf("sqlite: prepare insert: %w", err)
	}
	defer stmt.Close()

	for i, o := range observations {
		args := append([]any{batchID}, observationArgs(o)...)
		if _, err := stmt.ExecContext(ctx, args...); err != nil {
			return fmt.Errorf("sqlite: insert row %d: %w", i, err)
		}
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("sqlite: commit: %w", err)
	}
	ss.logger.Duration(start, "[sqlite] Stored %d observations (batch %s)", len(observations), batchID)
	return nil
}

// FetchAll retrieves every stored observation in insertion order.
func (ss *SQLiteStore) FetchAll(ctx context.Context) ([]*models.ProductObservation, error) {
	rows, err := ss.db.QueryContext(ctx, selectObservations)
	if err != nil {
		return nil, fmt.Errorf("sqlite: fetch all: %w", err)
	}
	defer rows.Close()

	out, err := scanObservations(rows)
	if err != nil {
		return nil, fmt.Errorf("sqlite: scan row: %w", err)
	}
	return out, nil
}

func (ss *SQLiteStore) Close() error {
	return ss.db.Close()
}
