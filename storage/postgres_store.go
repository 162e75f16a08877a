package storage

import (
	"context"
	"database/sql"
	"fmt"
	"strings"
	"time"

	_ "github.com/lib/pq"

	"pricing-dashboard/models"
	"pricing-dashboard/utils"
)

const postgresBatchSize = 50

// PostgresStore persists the validated catalog to PostgreSQL.
type PostgresStore struct {
	db     *sql.DB
	logger *utils.Logger
}

// NewPostgresStore opens a connection to PostgreSQL, waits for it to accept
// connections, runs schema migrations and returns a ready-to-use store.
func NewPostgresStore(ctx context.Context, dsn string, retry *utils.RetryConfig, logger *utils.Logger) (*PostgresStore, error) {
	db, err := sql.Open("postgres", dsn)
	if err != nil {
		return nil, fmt.Errorf("postgres: open: %w", err)
	}

	if err := retry.Do(ctx, "postgres ping", func() error { return db.PingContext(ctx) }); err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("postgres: %w", err)
	}

	ps := &PostgresStore{db: db, logger: logger}
	if err := ps.migrate(ctx); err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("postgres: migrate: %w", err)
	}

	return ps, nil
}

func (ps *PostgresStore) migrate(ctx context.Context) error {
	_, err := ps.db.ExecContext(ctx, `
		CREATE TABLE IF NOT EXISTS observations (
			seq                 BIGSERIAL PRIMARY KEY,
			batch_id            UUID          NOT NULL,
			product_id          TEXT          NOT NULL DEFAULT '',
			description         TEXT          NOT NULL,
			unit_price          NUMERIC(12,2) NOT NULL,
			unit_original_price NUMERIC(12,2),
			unit_min_price      NUMERIC(12,2),
			details             TEXT          NOT NULL DEFAULT '',
			logo_url            TEXT          NOT NULL DEFAULT '',
			retailer            TEXT          NOT NULL,
			state               CHAR(2)       NOT NULL,
			city                TEXT          NOT NULL DEFAULT '',
			neighborhood        TEXT          NOT NULL DEFAULT '',
			merchant_id         TEXT          NOT NULL DEFAULT '',
			imported_at         TIMESTAMPTZ   NOT NULL DEFAULT NOW()
		);

		CREATE INDEX IF NOT EXISTS idx_observations_state    ON observations(state);
		CREATE INDEX IF NOT EXISTS idx_observations_retailer ON observations(retailer);
		CREATE INDEX IF NOT EXISTS idx_observations_batch    ON observations(batch_id);
	`)
	return err
}

// Write replaces the stored catalog with observations inside one
// transaction, inserting in batches.
func (ps *PostgresStore) Write(ctx context.Context, batchID string, observations []*models.ProductObservation) error {
	start := time.Now()

	tx, err := ps.db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("postgres: begin: %w", err)
	}
	defer tx.Rollback()

	if _, err := tx.ExecContext(ctx, "DELETE FROM observations"); err != nil {
		return fmt.Errorf("postgres: clear: %w", err)
	}

	for i := 0; i < len(observations); i += postgresBatchSize {
		end := min(i+postgresBatchSize, len(observations))
		if err := insertBatch(ctx, tx, batchID, observations[i:end]); err != nil {
			return fmt.Errorf("postgres: insert batch at %d: %w", i, err)
		}
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("postgres: commit: %w", err)
	}
	ps.logger.Duration(start, "[postgres] Stored %d observations (batch %s)", len(observations), batchID)
	return nil
}

func insertBatch(ctx context.Context, tx *sql.Tx, batchID string, batch []*models.ProductObservation) error {
	cols := len(observationColumns) + 1
	valueStrings := make([]string, 0, len(batch))
	valueArgs := make([]any, 0, len(batch)*cols)

	for idx, o := range batch {
		placeholders := make([]string, cols)
		for c := range placeholders {
			placeholders[c] = fmt.Sprintf("$%d", idx*cols+c+1)
		}
		valueStrings = append(valueStrings, "("+strings.Join(placeholders, ",")+")")
		valueArgs = append(valueArgs, batchID)
		valueArgs = append(valueArgs, observationArgs(o)...)
	}

	query := fmt.Sprintf(`INSERT INTO observations (batch_id, %s) VALUES %s`,
		strings.Join(observationColumns, ", "), strings.Join(valueStrings, ","))

	_, err := tx.ExecContext(ctx, query, valueArgs...)
	return err
}

// FetchAll retrieves every stored observation in insertion order.
func (ps *PostgresStore) FetchAll(ctx context.Context) ([]*models.ProductObservation, error) {
	rows, err := ps.db.QueryContext(ctx, selectObservations)
	if err != nil {
		return nil, fmt.Errorf("postgres: fetch all: %w", err)
	}
	defer rows.Close()

	out, err := scanObservations(rows)
	if err != nil {
		return nil, fmt.Errorf("postgres: scan row: %w", err)
	}
	return out, nil
}

func (ps *PostgresStore) Close() error {
	return ps.db.Close()
}
