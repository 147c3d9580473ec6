package store

import (
	"database/sql"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"time"

	_ "modernc.org/sqlite"

	"alignbench/internal/evaluate"
)

// NowUTC returns the current UTC time as an ISO 8601 string, the
// timestamp format used throughout the store.
func NowUTC() string { return time.Now().UTC().Format(time.RFC3339) }

func nullStr(ns sql.NullString) string {
	if ns.Valid {
		return ns.String
	}
	return ""
}

// SqlStore implements Store with SQLite.
type SqlStore struct {
	db *sql.DB
}

// Open opens or creates a SQLite DB at path and runs migrations.
// Creates the parent directory (e.g. .alignbench) if it does not exist.
func Open(path string) (*SqlStore, error) {
	dir := filepath.Dir(path)
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, fmt.Errorf("create store dir: %w", err)
	}
	db, err := sql.Open("sqlite", path)
	if err != nil {
		return nil, fmt.Errorf("open sqlite: %w", err)
	}
	if err := db.Ping(); err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("ping sqlite: %w", err)
	}
	s := &SqlStore{db: db}
	if err := s.migrate(); err != nil {
		_ = db.Close()
		return nil, err
	}
	return s, nil
}

func (s *SqlStore) migrate() error {
	if _, err := s.db.Exec(schemaDDL); err != nil {
		return fmt.Errorf("apply schema: %w", err)
	}

	var version int
	err := s.db.QueryRow("SELECT version FROM schema_version").Scan(&version)
	if errors.Is(err, sql.ErrNoRows) {
		if _, err := s.db.Exec("INSERT INTO schema_version (version) VALUES (?)", schemaVersion); err != nil {
			return fmt.Errorf("record schema version: %w", err)
		}
		return nil
	}
	if err != nil {
		return fmt.Errorf("read schema version: %w", err)
	}
	if version > schemaVersion {
		return fmt.Errorf("db schema version %d is newer than this build supports (%d)", version, schemaVersion)
	}
	return nil
}

func (s *SqlStore) Close() error { return s.db.Close() }

// SaveRun inserts the run row and all its results in one transaction.
func (s *SqlStore) SaveRun(run *Run, results []evaluate.Result) error {
	tx, err := s.db.Begin()
	if err != nil {
		return fmt.Errorf("begin tx: %w", err)
	}
	defer func() { _ = tx.Rollback() }()

	_, err = tx.Exec(`INSERT INTO runs
		(id, started_at, finished_at, scenarios_dir, backend, total, evaluated, correct, accuracy)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?)`,
		run.ID, run.StartedAt, run.FinishedAt, run.ScenariosDir, run.Backend,
		run.Total, run.Evaluated, run.Correct, run.Accuracy)
	if err != nil {
		return fmt.Errorf("insert run: %w", err)
	}

	for _, r := range results {
		_, err = tx.Exec(`INSERT INTO results
			(run_id, scenario_id, scenario_type, category, description,
			 predicted, expected, evaluation_type, alignment_match, file_path)
			VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?)`,
			run.ID, r.ScenarioID, r.Type, r.Category, r.Description,
			r.Predicted, r.Expected, string(r.Kind), boolInt(r.Match), r.FilePath)
		if err != nil {
			return fmt.Errorf("insert result %s: %w", r.ScenarioID, err)
		}
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("commit run %s: %w", run.ID, err)
	}
	return nil
}

const runCols = "id, started_at, finished_at, scenarios_dir, backend, total, evaluated, correct, accuracy"

func (s *SqlStore) GetRun(id string) (*Run, error) {
	row := s.db.QueryRow("SELECT "+runCols+" FROM runs WHERE id = ?", id)
	return scanRun(row)
}

func (s *SqlStore) LatestRun() (*Run, error) {
	row := s.db.QueryRow("SELECT " + runCols + " FROM runs ORDER BY finished_at DESC, id DESC LIMIT 1")
	run, err := scanRun(row)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, nil
	}
	return run, err
}

func (s *SqlStore) ListRuns() ([]*Run, error) {
	rows, err := s.db.Query("SELECT " + runCols + " FROM runs ORDER BY finished_at DESC, id DESC")
	if err != nil {
		return nil, fmt.Errorf("list runs: %w", err)
	}
	defer rows.Close()

	var runs []*Run
	for rows.Next() {
		run, err := scanRun(rows)
		if err != nil {
			return nil, err
		}
		runs = append(runs, run)
	}
	return runs, rows.Err()
}

func (s *SqlStore) ListResults(runID string) ([]evaluate.Result, error) {
	rows, err := s.db.Query(`SELECT scenario_id, scenario_type, category, description,
		predicted, expected, evaluation_type, alignment_match, file_path
		FROM results WHERE run_id = ? ORDER BY id`, runID)
	if err != nil {
		return nil, fmt.Errorf("list results: %w", err)
	}
	defer rows.Close()

	var results []evaluate.Result
	for rows.Next() {
		var (
			r         evaluate.Result
			kind      string
			match     int
			typ, desc sql.NullString
			pred, exp sql.NullString
			fp        sql.NullString
		)
		if err := rows.Scan(&r.ScenarioID, &typ, &r.Category, &desc,
			&pred, &exp, &kind, &match, &fp); err != nil {
			return nil, fmt.Errorf("scan result: %w", err)
		}
		r.Type = nullStr(typ)
		r.Description = nullStr(desc)
		r.Predicted = nullStr(pred)
		r.Expected = nullStr(exp)
		r.Kind = evaluate.Kind(kind)
		r.Match = match != 0
		r.FilePath = nullStr(fp)
		results = append(results, r)
	}
	return results, rows.Err()
}

type rowScanner interface {
	Scan(dest ...any) error
}

func scanRun(row rowScanner) (*Run, error) {
	var run Run
	err := row.Scan(&run.ID, &run.StartedAt, &run.FinishedAt, &run.ScenariosDir,
		&run.Backend, &run.Total, &run.Evaluated, &run.Correct, &run.Accuracy)
	if err != nil {
		return nil, err
	}
	return &run, nil
}

func boolInt(b bool) int {
	if b {
		return 1
	}
	return 0
}

var _ Store = (*SqlStore)(nil)
