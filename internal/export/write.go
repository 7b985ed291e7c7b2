package export

import (
	"bufio"
	"fmt"
	"io"

	"github.com/parquet-go/parquet-go"

	"github.com/lox/geoatmos/internal/atmos"
)

// WriteCSV writes altitude, total density and local temperature, one
// level per line, with units taken from cfg.
func WriteCSV(w io.Writer, points []Point, cfg atmos.ModelConfig) error {
	bw := bufio.NewWriter(w)
	fmt.Fprintf(bw, "Altitude [km], Density [%s], Temperature [%s]\n", cfg.DensityUnit, cfg.TemperatureUnit)
	for _, p := range points {
		fmt.Fprintf(bw, "%g, %.6e, %.4f\n", p.Altitude, p.Parameters.Density.Total, p.Parameters.Temperature.Altitude)
	}
	return bw.Flush()
}

// Row is the Parquet layout of a profile level.
type Row struct {
	AltitudeKm     float64 `parquet:"altitude_km"`
	H              float64 `parquet:"h"`
	He             float64 `parquet:"he"`
	N              float64 `parquet:"n"`
	O              float64 `parquet:"o"`
	Ar             float64 `parquet:"ar"`
	N2             float64 `parquet:"n2"`
	O2             float64 `parquet:"o2"`
	AnomalousO     float64 `parquet:"anomalous_o"`
	TotalDensity   float64 `parquet:"total_density"`
	ExosphericTemp float64 `parquet:"exospheric_temperature"`
	Temperature    float64 `parquet:"temperature"`
}

func toRow(p Point) Row {
	d := p.Parameters.Density
	return Row{
		AltitudeKm:     p.Altitude,
		H:              d.AtomicHydrogen,
		He:             d.AtomicHelium,
		N:              d.AtomicNitrogen,
		O:              d.AtomicOxygen,
		Ar:             d.AtomicArgon,
		N2:             d.MolecularNitrogen,
		O2:             d.MolecularOxygen,
		AnomalousO:     d.AnomalousOxygen,
		TotalDensity:   d.Total,
		ExosphericTemp: p.Parameters.Temperature.Exosphere,
		Temperature:    p.Parameters.Temperature.Altitude,
	}
}

// WriteParquet writes every species and both temperatures.
func WriteParquet(w io.Writer, points []Point) error {
	rows := make([]Row, len(points))
	for i, p := range points {
		rows[i] = toRow(p)
	}

	pw := parquet.NewGenericWriter[Row](w)
	if _, err := pw.Write(rows); err != nil {
		pw.Close()
		return fmt.Errorf("write parquet rows: %w", err)
	}
	if err := pw.Close(); err != nil {
		return fmt.Errorf("close parquet writer: %w", err)
	}
	return nil
}
