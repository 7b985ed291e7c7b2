package store

import (
	"database/sql"
	"time"
)

// ImportRun audits one fetch-and-load of a space-weather source.
type ImportRun struct {
	ID                int64
	StartedAt         time.Time
	FinishedAt        sql.NullTime
	Source            string // URL or file path
	HTTPStatus        sql.NullInt64
	ResponseSizeBytes sql.NullInt64
	RecordsParsed     sql.NullInt64
	RecordsStored     sql.NullInt64
	ParseErrors       sql.NullInt64 // lines the parser skipped
	FirstDate         sql.NullString
	LastDate          sql.NullString
	Success           bool
	ErrorMessage      sql.NullString
}

// StartImportRun creates a new import run record and returns it.
func (s *Store) StartImportRun(source string) (*ImportRun, error) {
	run := &ImportRun{
		StartedAt: time.Now().UTC(),
		Source:    source,
	}

	result, err := s.db.Exec(`
		INSERT INTO import_runs (started_at, source, success)
		VALUES (?, ?, FALSE)
	`, run.StartedAt, run.Source)
	if err != nil {
		return nil, err
	}

	run.ID, err = result.LastInsertId()
	if err != nil {
		return nil, err
	}

	return run, nil
}

// CompleteImportRun updates the import run with results.
func (s *Store) CompleteImportRun(run *ImportRun) error {
	if run == nil {
		return nil
	}

	run.FinishedAt = sql.NullTime{Time: time.Now().UTC(), Valid: true}

	_, err := s.db.Exec(`
		UPDATE import_runs SET
			finished_at = ?,
			http_status = ?,
			response_size_bytes = ?,
			records_parsed = ?,
			records_stored = ?,
			parse_errors = ?,
			first_date = ?,
			last_date = ?,
			success = ?,
			error_message = ?
		WHERE id = ?
	`, run.FinishedAt, run.HTTPStatus, run.ResponseSizeBytes, run.RecordsParsed,
		run.RecordsStored, run.ParseErrors, run.FirstDate, run.LastDate,
		run.Success, run.ErrorMessage, run.ID)
	return err
}

const importRunColumns = `id, started_at, finished_at, source, http_status, response_size_bytes,
	records_parsed, records_stored, parse_errors, first_date, last_date, success, error_message`

func scanImportRun(sc scanner) (ImportRun, error) {
	var r ImportRun
	err := sc.Scan(&r.ID, &r.StartedAt, &r.FinishedAt, &r.Source, &r.HTTPStatus,
		&r.ResponseSizeBytes, &r.RecordsParsed, &r.RecordsStored, &r.ParseErrors,
		&r.FirstDate, &r.LastDate, &r.Success, &r.ErrorMessage)
	return r, err
}

// GetLatestImportRun returns the most recent run, or nil if there is none.
func (s *Store) GetLatestImportRun() (*ImportRun, error) {
	row := s.db.QueryRow(`SELECT ` + importRunColumns + ` FROM import_runs ORDER BY id DESC LIMIT 1`)
	r, err := scanImportRun(row)
	if err == sql.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &r, nil
}

// GetRecentImportErrors returns recent failed import runs.
func (s *Store) GetRecentImportErrors(limit int) ([]ImportRun, error) {
	rows, err := s.db.Query(`
		SELECT `+importRunColumns+`
		FROM import_runs
		WHERE success = FALSE AND finished_at IS NOT NULL
		ORDER BY id DESC
		LIMIT ?
	`, limit)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var results []ImportRun
	for rows.Next() {
		r, err := scanImportRun(rows)
		if err != nil {
			return nil, err
		}
		results = append(results, r)
	}
	return results, rows.Err()
}
