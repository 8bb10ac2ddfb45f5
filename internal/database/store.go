package database

import (
	"database/sql"
	"encoding/json"
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/ZanzyTHEbar/divergence-profiler/internal/pipeline"
)

// ProfileRun is one stored pipeline run with its three artifacts.
type ProfileRun struct {
	ID             string    `json:"id"`
	DumpHash       string    `json:"dump_hash"`
	Repositories   int       `json:"repositories"`
	TotalCommits   int       `json:"total_commits"`
	FilteredJSON   string    `json:"-"`
	TranslatedJSON string    `json:"-"`
	PredictiveJSON string    `json:"-"`
	CreatedAt      time.Time `json:"created_at"`
}

// RunSummary is the listing view of a run, without artifact payloads.
type RunSummary struct {
	ID           string    `json:"id"`
	DumpHash     string    `json:"dump_hash"`
	Repositories int       `json:"repositories"`
	TotalCommits int       `json:"total_commits"`
	CreatedAt    time.Time `json:"created_at"`
}

// Store persists pipeline results to the profile_runs table.
type Store struct {
	db *DB
}

// NewStore creates a new store
func NewStore(db *DB) *Store {
	return &Store{db: db}
}

// SaveRun stores a pipeline result and returns the generated run ID.
func (s *Store) SaveRun(dumpHash string, result pipeline.Result) (string, error) {
	filteredJSON, err := json.Marshal(result.Filtered)
	if err != nil {
		return "", fmt.Errorf("failed to encode filtered profile: %w", err)
	}
	translatedJSON, err := json.Marshal(result.Translated)
	if err != nil {
		return "", fmt.Errorf("failed to encode translated profile: %w", err)
	}
	predictiveJSON, err := json.Marshal(result.Predictive)
	if err != nil {
		return "", fmt.Errorf("failed to encode predictive profile: %w", err)
	}

	stmt, err := s.db.GetPreparedStatement("insert_run")
	if err != nil {
		return "", err
	}

	id := uuid.New().String()
	_, err = stmt.Exec(
		id, dumpHash,
		len(result.Filtered.Repositories), result.Filtered.TotalCommits,
		string(filteredJSON), string(translatedJSON), string(predictiveJSON),
		time.Now(),
	)
	if err != nil {
		return "", fmt.Errorf("failed to insert run: %w", err)
	}

	return id, nil
}

// GetRun retrieves a stored run by ID. A missing run returns sql.ErrNoRows.
func (s *Store) GetRun(id string) (*ProfileRun, error) {
	stmt, err := s.db.GetPreparedStatement("get_run")
	if err != nil {
		return nil, err
	}

	return scanRun(stmt.QueryRow(id))
}

// GetRunByDumpHash retrieves the most recent run for a dump hash.
func (s *Store) GetRunByDumpHash(hash string) (*ProfileRun, error) {
	stmt, err := s.db.GetPreparedStatement("get_run_by_hash")
	if err != nil {
		return nil, err
	}

	return scanRun(stmt.QueryRow(hash))
}

// ListRuns returns the most recent runs, newest first.
func (s *Store) ListRuns(limit int) ([]RunSummary, error) {
	stmt, err := s.db.GetPreparedStatement("list_runs")
	if err != nil {
		return nil, err
	}

	rows, err := stmt.Query(limit)
	if err != nil {
		return nil, fmt.Errorf("failed to list runs: %w", err)
	}
	defer rows.Close()

	summaries := []RunSummary{}
	for rows.Next() {
		var s RunSummary
		if err := rows.Scan(&s.ID, &s.DumpHash, &s.Repositories, &s.TotalCommits, &s.CreatedAt); err != nil {
			return nil, fmt.Errorf("failed to scan run summary: %w", err)
		}
		summaries = append(summaries, s)
	}

	return summaries, rows.Err()
}

func scanRun(row *sql.Row) (*ProfileRun, error) {
	var run ProfileRun
	err := row.Scan(
		&run.ID, &run.DumpHash, &run.Repositories, &run.TotalCommits,
		&run.FilteredJSON, &run.TranslatedJSON, &run.PredictiveJSON, &run.CreatedAt,
	)
	if err != nil {
		return nil, err
	}
	return &run, nil
}
