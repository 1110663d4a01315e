package database

import (
	"context"
	"fmt"

	"github.com/LexRes-Go/GoLexNorm/internal/config"
	"github.com/LexRes-Go/GoLexNorm/internal/domain/model"
	pkg "github.com/LexRes-Go/GoLexNorm/pkg/logger"
	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

const phrasesSchema = `CREATE TABLE IF NOT EXISTS phrases (
	run_id UUID NOT NULL,
	line_no BIGINT NOT NULL,
	raw TEXT NOT NULL,
	normalized TEXT NOT NULL,
	terms TEXT[],
	quantity BIGINT,
	error_type TEXT,
	PRIMARY KEY (run_id, line_no)
)`

type Database struct {
	Pool *pgxpool.Pool
	Log  pkg.Logger
}

func MockPostgresPool(log pkg.Logger) (d *Database) {
	return &Database{Log: log}
}

func NewPostgresPool(log pkg.Logger, cfg config.DatabaseConfig) (d *Database, err error) {
	dsn := cfg.DSN
	pool, err := pgxpool.New(context.Background(), dsn)
	if err != nil {
		return nil, fmt.Errorf("unable to connect to database: %w", err)
	}
	return &Database{
		Pool: pool,
		Log:  log,
	}, nil
}

func (d *Database) EnsureSchema(ctx context.Context) error {
	if _, err := d.Pool.Exec(ctx, phrasesSchema); err != nil {
		return fmt.Errorf("create phrases table: %w", err)
	}
	return nil
}

func (d *Database) SaveBatch(ctx context.Context, runID uuid.UUID, in <-chan *model.Phrase) error {
	phrases := collect(runID, in)

	if len(phrases) == 0 {
		d.Log.Info("No phrases to save")
		return nil
	}

	_, err := d.Pool.CopyFrom(
		ctx,
		pgx.Identifier{"phrases"},
		[]string{"run_id", "line_no", "raw", "normalized", "terms", "quantity", "error_type"},
		pgx.CopyFromRows(buildRows(phrases)),
	)
	if err != nil {
		d.Log.Error("CopyFrom failed", "err", err)
		return err
	}

	d.Log.Info("Saved phrases to database", "count", len(phrases), "run_id", runID.String())
	return nil
}

func collect(runID uuid.UUID, in <-chan *model.Phrase) []*model.Phrase {
	phrases := make([]*model.Phrase, 0, 1000)
	for phrase := range in {
		phrase.RunID = runID
		phrases = append(phrases, phrase)
	}
	return phrases
}

func buildRows(phrases []*model.Phrase) [][]interface{} {
	rows := make([][]interface{}, 0, len(phrases))
	for _, p := range phrases {
		rows = append(rows, []interface{}{
			p.RunID,
			p.LineNo,
			p.Raw,
			p.Normalized,
			p.Terms,
			p.Quantity,
			p.ErrorType,
		})
	}
	return rows
}

func (d *Database) GetPhrasesByRun(ctx context.Context, runID uuid.UUID) ([]*model.Phrase, error) {
	query := `SELECT run_id, line_no, raw, normalized, terms, quantity, error_type
			  FROM phrases
			  WHERE run_id = $1
			  ORDER BY line_no ASC`

	rows, err := d.Pool.Query(ctx, query, runID)
	if err != nil {
		return nil, fmt.Errorf("failed to query phrases by run: %w", err)
	}
	defer rows.Close()

	var phrases []*model.Phrase
	for rows.Next() {
		var phrase model.Phrase
		err := rows.Scan(
			&phrase.RunID,
			&phrase.LineNo,
			&phrase.Raw,
			&phrase.Normalized,
			&phrase.Terms,
			&phrase.Quantity,
			&phrase.ErrorType,
		)
		if err != nil {
			d.Log.Warn("Failed to scan phrase", "err", err)
			continue
		}
		phrases = append(phrases, &phrase)
	}
	return phrases, nil
}

func (d *Database) CountPhrases(ctx context.Context) (int64, error) {
	var count int64
	if err := d.Pool.QueryRow(ctx, `SELECT COUNT(*) FROM phrases`).Scan(&count); err != nil {
		return 0, err
	}
	return count, nil
}
