package spaceweather

import (
	"bytes"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/klauspost/pgzip"
)

const header = "DATE,BSRN,ND,KP1,KP2,KP3,KP4,KP5,KP6,KP7,KP8,KP_SUM,AP1,AP2,AP3,AP4,AP5,AP6,AP7,AP8,AP_AVG,CP,C9,ISN,F10.7_OBS,F10.7_ADJ,F10.7_DATA_TYPE,F10.7_OBS_CENTER81,F10.7_OBS_LAST81,F10.7_ADJ_CENTER81,F10.7_ADJ_LAST81"

// sampleLine builds a day whose 3-hourly Ap values are base+1 .. base+8.
func sampleLine(date string, base int, f107 float64, kind string) string {
	ap := make([]string, 8)
	kp := make([]string, 8)
	sum := 0
	for i := range ap {
		ap[i] = fmt.Sprint(base + i + 1)
		kp[i] = fmt.Sprint(10 * (i + 1))
		sum += base + i + 1
	}
	return fmt.Sprintf("%s,2596,1,%s,360,%s,%d,0.4,2,120,%.1f,%.1f,%s,%.1f,%.1f,%.1f,%.1f",
		date, strings.Join(kp, ","), strings.Join(ap, ","), sum/8, f107, f107+2, kind,
		f107+10, f107+20, f107+30, f107+40)
}

func sampleCSV() string {
	return strings.Join([]string{
		header,
		sampleLine("2024-01-01", 0, 140.5, "OBS"),
		sampleLine("2024-01-02", 10, 150.5, "OBS"),
		"2024-01-03,2596,3,not,enough,fields",
		sampleLine("2024-01-04", 20, 160.5, "PRD"),
		sampleLine("2024-01-05", 30, 170.5, "OBS"),
		"",
	}, "\n")
}

func setupTestTable(t *testing.T) *Table {
	t.Helper()
	table, err := Parse(strings.NewReader(sampleCSV()))
	if err != nil {
		t.Fatalf("Parse: %v", err)
	}
	return table
}

func utc(s string) time.Time {
	t, err := time.Parse(time.RFC3339, s)
	if err != nil {
		panic(err)
	}
	return t
}

func TestParse(t *testing.T) {
	table := setupTestTable(t)

	if table.Len() != 4 {
		t.Errorf("Len = %d, want 4", table.Len())
	}
	if table.Skipped() != 2 {
		t.Errorf("Skipped = %d, want 2 (header and short line)", table.Skipped())
	}
	first, last := table.Range()
	if !first.Equal(utc("2024-01-01T00:00:00Z")) || !last.Equal(utc("2024-01-05T00:00:00Z")) {
		t.Errorf("Range = %v..%v", first, last)
	}

	rec, err := table.Record(utc("2024-01-02T13:45:00Z"))
	if err != nil {
		t.Fatalf("Record: %v", err)
	}
	if rec.Ap != [8]int{11, 12, 13, 14, 15, 16, 17, 18} {
		t.Errorf("Ap = %v", rec.Ap)
	}
	if rec.Kp[7] != 80 || rec.KpSum != 360 {
		t.Errorf("Kp = %v sum %d", rec.Kp, rec.KpSum)
	}
	if rec.ApAvg != 14 || rec.Cp != 0.4 || rec.C9 != 2 || rec.ISN != 120 {
		t.Errorf("ApAvg=%d Cp=%v C9=%d ISN=%d", rec.ApAvg, rec.Cp, rec.C9, rec.ISN)
	}
	if rec.F107Obs != 150.5 || rec.F107Adj != 152.5 {
		t.Errorf("F107 obs=%v adj=%v", rec.F107Obs, rec.F107Adj)
	}
	if rec.F107ObsCenter81 != 160.5 || rec.F107ObsLast81 != 170.5 || rec.F107AdjCenter81 != 180.5 || rec.F107AdjLast81 != 190.5 {
		t.Errorf("81-day averages = %v %v %v %v", rec.F107ObsCenter81, rec.F107ObsLast81, rec.F107AdjCenter81, rec.F107AdjLast81)
	}
	if rec.F107Type != F107Observed {
		t.Errorf("F107Type = %v, want OBS", rec.F107Type)
	}

	predicted, err := table.Record(utc("2024-01-04T00:00:00Z"))
	if err != nil {
		t.Fatalf("Record: %v", err)
	}
	if predicted.F107Type != F107Predicted {
		t.Errorf("F107Type = %v, want PRD", predicted.F107Type)
	}
}

func TestParseLineRejectsNonIntegerAp(t *testing.T) {
	line := strings.Replace(sampleLine("2024-01-01", 0, 140, "OBS"), ",3,4,5,", ",3,4.5,5,", 1)
	if _, err := ParseLine(line); err == nil {
		t.Errorf("ParseLine accepted fractional Ap: %s", line)
	}
}

func TestParseLinePermissiveFloat(t *testing.T) {
	line := strings.Replace(sampleLine("2024-01-01", 0, 140, "OBS"), ",140.0,", ",140.0x,", 1)
	rec, err := ParseLine(line)
	if err != nil {
		t.Fatalf("ParseLine: %v", err)
	}
	if rec.F107Obs != 140 {
		t.Errorf("F107Obs = %v, want 140", rec.F107Obs)
	}
}

func TestRecordOutOfRange(t *testing.T) {
	table := setupTestTable(t)

	tests := []struct {
		name string
		at   time.Time
	}{
		{"before first", utc("2023-12-31T23:59:59Z")},
		{"after last", utc("2024-01-06T00:00:00Z")},
		{"gap inside range", utc("2024-01-03T12:00:00Z")},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if _, err := table.Record(tt.at); !errors.Is(err, ErrDateOutOfRange) {
				t.Errorf("Record(%v) err = %v, want ErrDateOutOfRange", tt.at, err)
			}
		})
	}
}

func TestApIndex(t *testing.T) {
	table := setupTestTable(t)

	tests := []struct {
		name string
		at   string
		lag  time.Duration
		want float64
	}{
		{"first bucket", "2024-01-02T00:00:00Z", 0, 11},
		{"last bucket", "2024-01-02T23:59:59Z", 0, 18},
		{"same day lag", "2024-01-02T13:00:00Z", -3 * time.Hour, 14},
		{"wraps to previous day", "2024-01-02T01:00:00Z", -6 * time.Hour, 7},
		{"wraps by one bucket", "2024-01-02T01:00:00Z", -3 * time.Hour, 8},
		{"positive lag", "2024-01-01T22:00:00Z", 3 * time.Hour, 11},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := table.ApIndex(utc(tt.at), tt.lag)
			if err != nil {
				t.Fatalf("ApIndex: %v", err)
			}
			if got != tt.want {
				t.Errorf("ApIndex(%s, %v) = %v, want %v", tt.at, tt.lag, got, tt.want)
			}
		})
	}

	if _, err := table.ApIndex(utc("2024-01-01T02:00:00Z"), -3*time.Hour); !errors.Is(err, ErrDateOutOfRange) {
		t.Errorf("lag before first day: err = %v, want ErrDateOutOfRange", err)
	}
}

func TestApAverage(t *testing.T) {
	table := setupTestTable(t)
	at := utc("2024-01-02T12:00:00Z") // bucket 4 of Jan 2

	// -12h..-33h covers Jan 2 bucket 0 and Jan 1 buckets 7 down to 1.
	got, err := table.ApAverage(at, -12*time.Hour, -33*time.Hour)
	if err != nil {
		t.Fatalf("ApAverage: %v", err)
	}
	want := (11.0 + 8 + 7 + 6 + 5 + 4 + 3 + 2) / 8
	if got != want {
		t.Errorf("ApAverage = %v, want %v", got, want)
	}

	if _, err := table.ApAverage(at, -36*time.Hour, -57*time.Hour); !errors.Is(err, ErrDateOutOfRange) {
		t.Errorf("ApAverage past first day: err = %v, want ErrDateOutOfRange", err)
	}
}

func TestMagneticIndex(t *testing.T) {
	table := setupTestTable(t)

	// The -12h..-33h window from Jan 5 06:00 reaches the missing Jan 3.
	at := utc("2024-01-05T06:00:00Z")
	_, err := table.MagneticIndex(at)
	if !errors.Is(err, ErrDateOutOfRange) {
		t.Fatalf("MagneticIndex across missing day: err = %v, want ErrDateOutOfRange", err)
	}

	full, err := Parse(strings.NewReader(strings.Join([]string{
		sampleLine("2024-01-01", 0, 140, "OBS"),
		sampleLine("2024-01-02", 10, 150, "OBS"),
		sampleLine("2024-01-03", 20, 160, "OBS"),
	}, "\n")))
	if err != nil {
		t.Fatalf("Parse: %v", err)
	}
	got, err := full.MagneticIndex(utc("2024-01-03T10:00:00Z"))
	if err != nil {
		t.Fatalf("MagneticIndex: %v", err)
	}
	// Jan 3 10:00 is bucket 3; the 8-sample windows land on Jan 2 and Jan 1.
	want := [7]float64{24, 24, 23, 22, 21, 14.5, 4.5}
	for i := range want {
		if got[i] != want[i] {
			t.Errorf("MagneticIndex[%d] = %v, want %v", i, got[i], want[i])
		}
	}
}

func TestF107Queries(t *testing.T) {
	table := setupTestTable(t)
	at := utc("2024-01-02T18:00:00Z")

	prev, err := table.F107Obs(at, -1)
	if err != nil {
		t.Fatalf("F107Obs: %v", err)
	}
	if prev != 140.5 {
		t.Errorf("F107Obs(-1) = %v, want 140.5", prev)
	}
	adj, err := table.F107Adj(at, 0)
	if err != nil {
		t.Fatalf("F107Adj: %v", err)
	}
	if adj != 152.5 {
		t.Errorf("F107Adj(0) = %v, want 152.5", adj)
	}
	c81, err := table.F107ObsCenter81(at)
	if err != nil || c81 != 160.5 {
		t.Errorf("F107ObsCenter81 = %v, %v", c81, err)
	}
	if _, err := table.F107Obs(at, -2); !errors.Is(err, ErrDateOutOfRange) {
		t.Errorf("F107Obs(-2) err = %v, want ErrDateOutOfRange", err)
	}
}

func TestNewTableLaterRecordWins(t *testing.T) {
	day := utc("2024-01-01T00:00:00Z")
	table := NewTable([]Record{
		{Date: day.Add(5 * time.Hour), ApAvg: 1},
		{Date: day, ApAvg: 2},
	})
	if table.Len() != 1 {
		t.Fatalf("Len = %d, want 1", table.Len())
	}
	rec, err := table.Record(day)
	if err != nil {
		t.Fatalf("Record: %v", err)
	}
	if rec.ApAvg != 2 || !rec.Date.Equal(day) {
		t.Errorf("Record = %+v", rec)
	}
}

func TestLoadGzip(t *testing.T) {
	var buf bytes.Buffer
	gz := pgzip.NewWriter(&buf)
	if _, err := gz.Write([]byte(sampleCSV())); err != nil {
		t.Fatalf("gzip write: %v", err)
	}
	if err := gz.Close(); err != nil {
		t.Fatalf("gzip close: %v", err)
	}

	dir := t.TempDir()
	gzPath := filepath.Join(dir, "sw.csv.gz")
	if err := os.WriteFile(gzPath, buf.Bytes(), 0o644); err != nil {
		t.Fatal(err)
	}
	plainPath := filepath.Join(dir, "sw.csv")
	if err := os.WriteFile(plainPath, []byte(sampleCSV()), 0o644); err != nil {
		t.Fatal(err)
	}

	for _, path := range []string{gzPath, plainPath} {
		table, err := Load(path)
		if err != nil {
			t.Fatalf("Load(%s): %v", path, err)
		}
		if table.Len() != 4 {
			t.Errorf("Load(%s) Len = %d, want 4", path, table.Len())
		}
	}

	if _, err := Load(filepath.Join(dir, "missing.csv")); err == nil {
		t.Error("Load of missing file succeeded")
	}
}
