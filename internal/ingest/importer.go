package ingest

import (
	"bytes"
	"context"
	"database/sql"
	"fmt"
	"io"
	"log"

	"github.com/klauspost/pgzip"

	"github.com/lox/geoatmos/internal/metrics"
	"github.com/lox/geoatmos/internal/spaceweather"
	"github.com/lox/geoatmos/internal/store"
)

const dateLayout = "2006-01-02"

// Result summarises one import.
type Result struct {
	RunID     int64
	Parsed    int
	Stored    int
	Skipped   int
	Flagged   int
	PayloadID int64 // 0 when an identical payload was already stored
}

// Importer fetches a space-weather file and loads it into the store.
type Importer struct {
	store   *store.Store
	fetcher *Fetcher
}

func NewImporter(s *store.Store, f *Fetcher) *Importer {
	return &Importer{store: s, fetcher: f}
}

// Import fetches source, keeps the raw payload and upserts every parsed
// day. Each call is audited as an import run whether or not it succeeds.
func (i *Importer) Import(ctx context.Context, source string) (*Result, error) {
	run, err := i.store.StartImportRun(source)
	if err != nil {
		return nil, fmt.Errorf("start import run: %w", err)
	}

	result, err := i.load(ctx, run)
	if err != nil {
		run.ErrorMessage = sql.NullString{String: err.Error(), Valid: true}
	} else {
		run.Success = true
	}
	if cerr := i.store.CompleteImportRun(run); cerr != nil {
		log.Printf("ingest: complete import run %d: %v", run.ID, cerr)
	}
	if err != nil {
		return nil, err
	}

	log.Printf("ingest: imported %s: %d parsed, %d stored, %d skipped, %d flagged",
		source, result.Parsed, result.Stored, result.Skipped, result.Flagged)
	return result, nil
}

func (i *Importer) load(ctx context.Context, run *store.ImportRun) (*Result, error) {
	fetched, err := i.fetcher.Fetch(ctx, run.Source)
	if fetched != nil && fetched.Status != 0 {
		run.HTTPStatus = sql.NullInt64{Int64: int64(fetched.Status), Valid: true}
	}
	if err != nil {
		return nil, err
	}
	run.ResponseSizeBytes = sql.NullInt64{Int64: int64(len(fetched.Body)), Valid: true}

	result := &Result{RunID: run.ID}
	runID := run.ID
	result.PayloadID, err = i.store.StoreRawPayload(&runID, run.Source, fetched.Body)
	if err != nil {
		log.Printf("ingest: store raw payload: %v", err)
	}

	body, err := decompress(fetched.Body)
	if err != nil {
		return nil, err
	}
	table, err := spaceweather.Parse(bytes.NewReader(body))
	if err != nil {
		return nil, fmt.Errorf("parse %s: %w", run.Source, err)
	}

	records := table.Records()
	result.Parsed = len(records)
	result.Skipped = table.Skipped()
	run.RecordsParsed = sql.NullInt64{Int64: int64(result.Parsed), Valid: true}
	run.ParseErrors = sql.NullInt64{Int64: int64(result.Skipped), Valid: true}
	metrics.RecordsParsed.WithLabelValues("ok").Add(float64(result.Parsed))
	metrics.RecordsParsed.WithLabelValues("skipped").Add(float64(result.Skipped))

	if len(records) == 0 {
		return nil, fmt.Errorf("no records in %s", run.Source)
	}

	rows := make([]store.Row, len(records))
	for n, rec := range records {
		rows[n] = store.Row{
			Record:      rec,
			ImportRunID: sql.NullInt64{Int64: run.ID, Valid: true},
		}
		if flags := ValidateRecord(rec); len(flags) > 0 {
			rows[n].QualityFlags = sql.NullString{String: QualityFlagsToJSON(flags), Valid: true}
			result.Flagged++
		}
	}

	result.Stored, err = i.store.UpsertRecords(rows)
	run.RecordsStored = sql.NullInt64{Int64: int64(result.Stored), Valid: true}
	if err != nil {
		return nil, fmt.Errorf("store records: %w", err)
	}

	first, last := table.Range()
	run.FirstDate = sql.NullString{String: first.Format(dateLayout), Valid: true}
	run.LastDate = sql.NullString{String: last.Format(dateLayout), Valid: true}
	return result, nil
}

// decompress inflates gzip payloads and passes anything else through.
func decompress(body []byte) ([]byte, error) {
	if len(body) < 2 || body[0] != 0x1f || body[1] != 0x8b {
		return body, nil
	}
	zr, err := pgzip.NewReader(bytes.NewReader(body))
	if err != nil {
		return nil, fmt.Errorf("gzip reader: %w", err)
	}
	defer zr.Close()
	out, err := io.ReadAll(zr)
	if err != nil {
		return nil, fmt.Errorf("gzip read: %w", err)
	}
	return out, nil
}
