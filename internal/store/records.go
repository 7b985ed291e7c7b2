package store

import (
	"database/sql"
	"fmt"
	"strings"
	"time"

	"github.com/lox/geoatmos/internal/spaceweather"
)

const dateLayout = "2006-01-02"

// Row is a stored space-weather day with its provenance.
type Row struct {
	spaceweather.Record
	ImportRunID  sql.NullInt64
	QualityFlags sql.NullString
}

var recordColumns = []string{
	"date", "bsrn", "nd",
	"kp1", "kp2", "kp3", "kp4", "kp5", "kp6", "kp7", "kp8", "kp_sum",
	"ap1", "ap2", "ap3", "ap4", "ap5", "ap6", "ap7", "ap8", "ap_avg",
	"cp", "c9", "isn",
	"f107_obs", "f107_adj", "f107_type",
	"f107_obs_center81", "f107_obs_last81", "f107_adj_center81", "f107_adj_last81",
	"import_run_id", "quality_flags",
}

func upsertRecordSQL() string {
	placeholders := strings.TrimSuffix(strings.Repeat("?, ", len(recordColumns)), ", ")
	var updates []string
	for _, c := range recordColumns[1:] {
		updates = append(updates, fmt.Sprintf("%s = excluded.%s", c, c))
	}
	updates = append(updates, "updated_at = CURRENT_TIMESTAMP")
	return fmt.Sprintf(`
		INSERT INTO space_weather (%s)
		VALUES (%s)
		ON CONFLICT(date) DO UPDATE SET
			%s
	`, strings.Join(recordColumns, ", "), placeholders, strings.Join(updates, ",\n\t\t\t"))
}

func rowArgs(r Row) []any {
	args := []any{r.Date.UTC().Format(dateLayout), r.BSRN, r.ND}
	for _, kp := range r.Kp {
		args = append(args, kp)
	}
	args = append(args, r.KpSum)
	for _, ap := range r.Ap {
		args = append(args, ap)
	}
	return append(args, r.ApAvg, r.Cp, r.C9, r.ISN,
		r.F107Obs, r.F107Adj, r.F107Type.String(),
		r.F107ObsCenter81, r.F107ObsLast81, r.F107AdjCenter81, r.F107AdjLast81,
		r.ImportRunID, r.QualityFlags)
}

// UpsertRecords writes rows in one transaction, replacing existing days.
// It returns the number of rows written.
func (s *Store) UpsertRecords(rows []Row) (int, error) {
	tx, err := s.db.Begin()
	if err != nil {
		return 0, fmt.Errorf("begin tx: %w", err)
	}
	defer tx.Rollback()

	stmt, err := tx.Prepare(upsertRecordSQL())
	if err != nil {
		return 0, fmt.Errorf("prepare upsert: %w", err)
	}
	defer stmt.Close()

	for i, r := range rows {
		if _, err := stmt.Exec(rowArgs(r)...); err != nil {
			return i, fmt.Errorf("upsert %s: %w", r.Date.Format(dateLayout), err)
		}
	}
	if err := tx.Commit(); err != nil {
		return 0, fmt.Errorf("commit: %w", err)
	}
	return len(rows), nil
}

type scanner interface {
	Scan(dest ...any) error
}

func scanRow(sc scanner) (Row, error) {
	var (
		r        Row
		date     string
		f107Type string
	)
	dest := []any{&date, &r.BSRN, &r.ND}
	for i := range r.Kp {
		dest = append(dest, &r.Kp[i])
	}
	dest = append(dest, &r.KpSum)
	for i := range r.Ap {
		dest = append(dest, &r.Ap[i])
	}
	dest = append(dest, &r.ApAvg, &r.Cp, &r.C9, &r.ISN,
		&r.F107Obs, &r.F107Adj, &f107Type,
		&r.F107ObsCenter81, &r.F107ObsLast81, &r.F107AdjCenter81, &r.F107AdjLast81,
		&r.ImportRunID, &r.QualityFlags)

	if err := sc.Scan(dest...); err != nil {
		return r, err
	}
	d, err := parseDate(date)
	if err != nil {
		return r, err
	}
	r.Date = d
	r.F107Type = spaceweather.ParseF107Type(f107Type)
	if f107Type == spaceweather.F107Mixed.String() {
		r.F107Type = spaceweather.F107Mixed
	}
	return r, nil
}

// parseDate accepts the stored day whether the driver hands back the
// plain date or a full timestamp.
func parseDate(s string) (time.Time, error) {
	if len(s) >= len(dateLayout) {
		s = s[:len(dateLayout)]
	}
	t, err := time.Parse(dateLayout, s)
	if err != nil {
		return time.Time{}, fmt.Errorf("parse date %q: %w", s, err)
	}
	return t, nil
}

func selectRecordsSQL() string {
	return "SELECT " + strings.Join(recordColumns, ", ") + " FROM space_weather"
}

// GetRecords returns the days from start to end inclusive in date order.
func (s *Store) GetRecords(start, end time.Time) ([]Row, error) {
	rows, err := s.db.Query(selectRecordsSQL()+`
		WHERE date >= ? AND date <= ?
		ORDER BY date
	`, start.UTC().Format(dateLayout), end.UTC().Format(dateLayout))
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var results []Row
	for rows.Next() {
		r, err := scanRow(rows)
		if err != nil {
			return nil, err
		}
		results = append(results, r)
	}
	return results, rows.Err()
}

// GetRecord returns the day containing date, or nil if none is stored.
func (s *Store) GetRecord(date time.Time) (*Row, error) {
	row := s.db.QueryRow(selectRecordsSQL()+` WHERE date = ?`, date.UTC().Format(dateLayout))
	r, err := scanRow(row)
	if err == sql.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &r, nil
}

// RecordRange returns the first and last stored days and the row count.
func (s *Store) RecordRange() (first, last time.Time, count int, err error) {
	var minDate, maxDate sql.NullString
	err = s.db.QueryRow(`SELECT MIN(date), MAX(date), COUNT(*) FROM space_weather`).
		Scan(&minDate, &maxDate, &count)
	if err != nil || count == 0 {
		return first, last, count, err
	}
	if first, err = parseDate(minDate.String); err != nil {
		return
	}
	last, err = parseDate(maxDate.String)
	return
}

// LoadTable builds an in-memory table from every stored day.
func (s *Store) LoadTable() (*spaceweather.Table, error) {
	rows, err := s.db.Query(selectRecordsSQL() + ` ORDER BY date`)
	if err != nil {
		return nil, fmt.Errorf("query space weather: %w", err)
	}
	defer rows.Close()

	var records []spaceweather.Record
	for rows.Next() {
		r, err := scanRow(rows)
		if err != nil {
			return nil, fmt.Errorf("scan space weather: %w", err)
		}
		records = append(records, r.Record)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return spaceweather.NewTable(records), nil
}
