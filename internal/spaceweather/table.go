package spaceweather

import (
	"fmt"
	"sort"
	"time"
)

const bucket = 3 * time.Hour

// Table is an immutable, day-indexed set of records. It is safe for
// concurrent readers.
type Table struct {
	records []Record
	index   map[int64]int
	skipped int
}

// NewTable builds a table from records in any order. A later record for
// the same day replaces an earlier one.
func NewTable(records []Record) *Table {
	byDay := make(map[int64]Record, len(records))
	for _, r := range records {
		r.Date = Day(r.Date)
		byDay[dayKey(r.Date)] = r
	}

	t := &Table{
		records: make([]Record, 0, len(byDay)),
		index:   make(map[int64]int, len(byDay)),
	}
	for _, r := range byDay {
		t.records = append(t.records, r)
	}
	sort.Slice(t.records, func(i, j int) bool {
		return t.records[i].Date.Before(t.records[j].Date)
	})
	for i, r := range t.records {
		t.index[dayKey(r.Date)] = i
	}
	return t
}

func dayKey(t time.Time) int64 {
	return Day(t).Unix() / 86400
}

// Len is the number of days loaded.
func (t *Table) Len() int {
	return len(t.records)
}

// Skipped is the number of input lines the parser rejected.
func (t *Table) Skipped() int {
	return t.skipped
}

// Range returns the first and last loaded days. Both are zero for an
// empty table.
func (t *Table) Range() (first, last time.Time) {
	if len(t.records) == 0 {
		return time.Time{}, time.Time{}
	}
	return t.records[0].Date, t.records[len(t.records)-1].Date
}

// Records returns a copy of the loaded records in date order.
func (t *Table) Records() []Record {
	out := make([]Record, len(t.records))
	copy(out, t.records)
	return out
}

// Record returns the record for the UTC day containing at.
func (t *Table) Record(at time.Time) (Record, error) {
	i, ok := t.index[dayKey(at)]
	if !ok {
		first, last := t.Range()
		if len(t.records) > 0 && !Day(at).Before(first) && !Day(at).After(last) {
			return Record{}, fmt.Errorf("%w: no record for %s", ErrDateOutOfRange, Day(at).Format(dateLayout))
		}
		return Record{}, fmt.Errorf("%w: %s not in %s..%s", ErrDateOutOfRange,
			Day(at).Format(dateLayout), first.Format(dateLayout), last.Format(dateLayout))
	}
	return t.records[i], nil
}

// ApIndex returns the 3-hourly Ap of the bucket containing at+lag. Lags
// that cross midnight resolve into the neighbouring day.
func (t *Table) ApIndex(at time.Time, lag time.Duration) (float64, error) {
	shifted := at.UTC().Add(lag)
	rec, err := t.Record(shifted)
	if err != nil {
		return 0, err
	}
	return float64(rec.Ap[shifted.Hour()/3]), nil
}

// DailyAp returns the daily mean Ap of the day containing at.
func (t *Table) DailyAp(at time.Time) (float64, error) {
	rec, err := t.Record(at)
	if err != nil {
		return 0, err
	}
	return float64(rec.ApAvg), nil
}

// ApAverage averages the 3-hourly Ap at lags from, from-3h, ... down to
// and including to. from must not be earlier than to.
func (t *Table) ApAverage(at time.Time, from, to time.Duration) (float64, error) {
	if from < to {
		from, to = to, from
	}
	var (
		sum float64
		n   int
	)
	for lag := from; lag >= to; lag -= bucket {
		ap, err := t.ApIndex(at, lag)
		if err != nil {
			return 0, err
		}
		sum += ap
		n++
	}
	return sum / float64(n), nil
}

// F107Obs returns the observed F10.7 of the day dayLag days from at.
func (t *Table) F107Obs(at time.Time, dayLag int) (float64, error) {
	rec, err := t.Record(at.AddDate(0, 0, dayLag))
	if err != nil {
		return 0, err
	}
	return rec.F107Obs, nil
}

// F107Adj returns the adjusted F10.7 of the day dayLag days from at.
func (t *Table) F107Adj(at time.Time, dayLag int) (float64, error) {
	rec, err := t.Record(at.AddDate(0, 0, dayLag))
	if err != nil {
		return 0, err
	}
	return rec.F107Adj, nil
}

func (t *Table) F107ObsCenter81(at time.Time) (float64, error) {
	rec, err := t.Record(at)
	return rec.F107ObsCenter81, err
}

func (t *Table) F107ObsLast81(at time.Time) (float64, error) {
	rec, err := t.Record(at)
	return rec.F107ObsLast81, err
}

func (t *Table) F107AdjCenter81(at time.Time) (float64, error) {
	rec, err := t.Record(at)
	return rec.F107AdjCenter81, err
}

func (t *Table) F107AdjLast81(at time.Time) (float64, error) {
	rec, err := t.Record(at)
	return rec.F107AdjLast81, err
}

// MagneticIndex assembles the storm-time Ap history for at: daily Ap, the
// current 3-hour Ap, the 3-hour Ap at -3h, -6h and -9h, the mean of the
// eight values from -12h to -33h and the mean of the eight from -36h to
// -57h.
func (t *Table) MagneticIndex(at time.Time) ([7]float64, error) {
	var ap [7]float64
	var err error
	if ap[0], err = t.DailyAp(at); err != nil {
		return ap, err
	}
	for i, lag := range []time.Duration{0, -3 * time.Hour, -6 * time.Hour, -9 * time.Hour} {
		if ap[1+i], err = t.ApIndex(at, lag); err != nil {
			return ap, err
		}
	}
	if ap[5], err = t.ApAverage(at, -12*time.Hour, -33*time.Hour); err != nil {
		return ap, err
	}
	if ap[6], err = t.ApAverage(at, -36*time.Hour, -57*time.Hour); err != nil {
		return ap, err
	}
	return ap, nil
}
