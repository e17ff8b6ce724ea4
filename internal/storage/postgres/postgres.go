package postgres

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	_ "github.com/lib/pq"

	"pickleClub/internal/config"
	"pickleClub/internal/models"
)

type Storage struct {
	DB *sql.DB
}

const schema = `
	CREATE TABLE IF NOT EXISTS submissions (
		id          UUID PRIMARY KEY,
		kind        TEXT        NOT NULL,
		email       TEXT        NOT NULL,
		outcome     TEXT        NOT NULL,
		status_code INTEGER     NOT NULL,
		payload     JSONB       NOT NULL,
		created_at  TIMESTAMPTZ NOT NULL
	);
	CREATE INDEX IF NOT EXISTS submissions_created_at_idx ON submissions (created_at)`

func InitDB(dbCfg *config.Database) (*Storage, error) {
	connStr := fmt.Sprintf("host=%s port=%d user=%s password=%s dbname=%s sslmode=%s",
		dbCfg.Host,
		dbCfg.Port,
		dbCfg.User,
		dbCfg.Password,
		dbCfg.DBName,
		dbCfg.SSLMode,
	)

	db, err := sql.Open("postgres", connStr)
	if err != nil {
		return nil, fmt.Errorf("failed to connect to the database: %w", err)
	}

	if err = db.Ping(); err != nil {
		return nil, fmt.Errorf("failed to connect to the database: %w", err)
	}

	if _, err = db.Exec(schema); err != nil {
		return nil, fmt.Errorf("failed to create schema: %w", err)
	}

	return &Storage{DB: db}, nil
}

func (s *Storage) Close() error {
	return s.DB.Close()
}

func (s *Storage) SaveSubmission(ctx context.Context, sub models.Submission) error {
	query := `
		INSERT INTO submissions (id, kind, email, outcome, status_code, payload, created_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7)`

	_, err := s.DB.ExecContext(ctx, query,
		sub.ID,
		string(sub.Kind),
		sub.Email,
		sub.Outcome,
		sub.StatusCode,
		sub.Payload,
		sub.CreatedAt,
	)
	if err != nil {
		return fmt.Errorf("failed to save submission: %w", err)
	}

	return nil
}

// DeleteSubmissionsBefore removes journal rows created before cutoff.
func (s *Storage) DeleteSubmissionsBefore(ctx context.Context, cutoff time.Time) (int64, error) {
	query := `
		DELETE FROM submissions
		WHERE created_at < $1`

	result, err := s.DB.ExecContext(ctx, query, cutoff)
	if err != nil {
		return 0, fmt.Errorf("failed to delete old submissions: %w", err)
	}

	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return 0, fmt.Errorf("failed to count deleted submissions: %w", err)
	}

	return rowsAffected, nil
}
