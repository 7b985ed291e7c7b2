package export

import (
	"bytes"
	"errors"
	"io"
	"strings"
	"testing"
	"time"

	"github.com/parquet-go/parquet-go"

	"github.com/lox/geoatmos/internal/atmos"
)

func newTestEvaluator(t *testing.T, cfg atmos.ModelConfig) *atmos.Evaluator {
	t.Helper()
	ev, err := atmos.NewEvaluator(cfg)
	if err != nil {
		t.Fatalf("NewEvaluator: %v", err)
	}
	return ev
}

func testRequest() Request {
	return Request{
		Time: time.Date(2023, 12, 31, 0, 0, 0, 0, time.UTC),
		Lat:  35,
		Lon:  135,
		From: 0,
		To:   600,
		Step: 100,
	}
}

func TestRequestCount(t *testing.T) {
	tests := []struct {
		name    string
		from    float64
		to      float64
		step    float64
		want    int
		wantErr bool
	}{
		{name: "inclusive ends", from: 0, to: 600, step: 1, want: 601},
		{name: "uneven step", from: 0, to: 10, step: 3, want: 4},
		{name: "single level", from: 100, to: 100, step: 1, want: 1},
		{name: "fractional step", from: 0, to: 1, step: 0.1, want: 11},
		{name: "zero step", from: 0, to: 10, step: 0, wantErr: true},
		{name: "reversed", from: 10, to: 0, step: 1, wantErr: true},
		{name: "too many", from: 0, to: 1000, step: 0.001, wantErr: true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := Request{From: tt.from, To: tt.to, Step: tt.step}.Count()
			if tt.wantErr {
				if !errors.Is(err, ErrInvalidRequest) {
					t.Errorf("Count() err = %v, want ErrInvalidRequest", err)
				}
				return
			}
			if err != nil || got != tt.want {
				t.Errorf("Count() = %d, %v, want %d", got, err, tt.want)
			}
		})
	}
}

func TestProfileFallsBackWithoutTable(t *testing.T) {
	ev := newTestEvaluator(t, atmos.DefaultModelConfig())
	req := testRequest()

	points, err := Profile(ev, req)
	if err != nil {
		t.Fatalf("Profile: %v", err)
	}
	if len(points) != 7 {
		t.Fatalf("len = %d, want 7", len(points))
	}

	want, err := ev.EvaluateStorm(atmos.Geodetic{Time: req.Time, Lat: 35, Lon: 135, Alt: 300e3},
		atmos.FallbackF107, atmos.FallbackF107, atmos.DefaultMagneticIndex())
	if err != nil {
		t.Fatalf("EvaluateStorm: %v", err)
	}
	if points[3].Altitude != 300 || points[3].Parameters != want {
		t.Errorf("point 3 = %+v, want %+v", points[3], want)
	}
	for i := 1; i < len(points); i++ {
		if points[i].Parameters.Density.Total >= points[i-1].Parameters.Density.Total {
			t.Errorf("density not decreasing at %v km", points[i].Altitude)
		}
	}
}

func TestProfileExplicitDrivers(t *testing.T) {
	ev := newTestEvaluator(t, atmos.DefaultModelConfig())
	req := testRequest()
	req.From, req.To = 400, 400
	req.Drivers = &Drivers{F107Avg: 150, F107Daily: 150, Ap: 4}

	points, err := Profile(ev, req)
	if err != nil {
		t.Fatalf("Profile: %v", err)
	}
	want, err := ev.Evaluate(atmos.Geodetic{Time: req.Time, Lat: 35, Lon: 135, Alt: 400e3}, 150, 150, 4)
	if err != nil {
		t.Fatalf("Evaluate: %v", err)
	}
	if len(points) != 1 || points[0].Parameters != want {
		t.Errorf("points = %+v, want %+v", points, want)
	}
}

func TestWriteCSV(t *testing.T) {
	cfg := atmos.DefaultModelConfig()
	cfg.TemperatureUnit = atmos.Celsius
	ev := newTestEvaluator(t, cfg)

	points, err := Profile(ev, testRequest())
	if err != nil {
		t.Fatalf("Profile: %v", err)
	}
	var buf bytes.Buffer
	if err := WriteCSV(&buf, points, ev.Config()); err != nil {
		t.Fatalf("WriteCSV: %v", err)
	}

	lines := strings.Split(strings.TrimSpace(buf.String()), "\n")
	if lines[0] != "Altitude [km], Density [g/cm^3], Temperature [deg C]" {
		t.Errorf("header = %q", lines[0])
	}
	if len(lines) != 8 {
		t.Errorf("lines = %d, want 8", len(lines))
	}
	if !strings.HasPrefix(lines[1], "0, ") || !strings.HasPrefix(lines[7], "600, ") {
		t.Errorf("first/last = %q / %q", lines[1], lines[7])
	}
}

func TestWriteParquet(t *testing.T) {
	ev := newTestEvaluator(t, atmos.DefaultModelConfig())
	points, err := Profile(ev, testRequest())
	if err != nil {
		t.Fatalf("Profile: %v", err)
	}

	var buf bytes.Buffer
	if err := WriteParquet(&buf, points); err != nil {
		t.Fatalf("WriteParquet: %v", err)
	}

	reader := parquet.NewGenericReader[Row](bytes.NewReader(buf.Bytes()))
	defer reader.Close()
	if reader.NumRows() != int64(len(points)) {
		t.Fatalf("NumRows = %d, want %d", reader.NumRows(), len(points))
	}

	rows := make([]Row, len(points))
	n, err := reader.Read(rows)
	if err != nil && err != io.EOF {
		t.Fatalf("Read: %v", err)
	}
	if n != len(points) {
		t.Fatalf("read %d rows, want %d", n, len(points))
	}
	for i, r := range rows {
		if r != toRow(points[i]) {
			t.Errorf("row %d = %+v, want %+v", i, r, toRow(points[i]))
		}
	}
}
