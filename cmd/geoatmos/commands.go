package main

import (
	"encoding/json"
	"fmt"
	"log"
	"os"
	"path/filepath"
	"strings"

	"github.com/lox/geoatmos/internal/api"
	"github.com/lox/geoatmos/internal/atmos"
	"github.com/lox/geoatmos/internal/export"
	"github.com/lox/geoatmos/internal/ingest"
)

type DensityCmd struct {
	Point   `embed:""`
	Drivers `embed:""`

	Alt float64 `name:"alt" required:"" help:"Altitude (km)."`
}

type densityOutput struct {
	Indices    indices          `json:"indices"`
	Regime     string           `json:"regime"`
	Parameters atmos.Parameters `json:"parameters"`
}

type indices struct {
	F107A float64              `json:"f107a"`
	F107  float64              `json:"f107"`
	Ap    float64              `json:"ap"`
	ApArr *atmos.MagneticIndex `json:"ap_history,omitempty"`
}

// resolve returns explicit drivers if given, otherwise the space-weather
// indices at pos.
func resolve(g *Globals, d Drivers, pos atmos.Geodetic) (indices, error) {
	explicit, err := d.set()
	if err != nil {
		return indices{}, err
	}
	if explicit {
		return indices{F107A: *d.F107A, F107: *d.F107, Ap: *d.Ap}, nil
	}
	table, err := g.table()
	if err != nil {
		return indices{}, err
	}
	avg, daily, ap, err := atmos.Indices(table, pos.Time)
	if err != nil {
		return indices{}, err
	}
	return indices{F107A: avg, F107: daily, Ap: ap[0], ApArr: &ap}, nil
}

func (c *DensityCmd) Run(g *Globals) error {
	ev, err := g.evaluator()
	if err != nil {
		return err
	}
	pos, err := c.position(c.Alt)
	if err != nil {
		return err
	}
	idx, err := resolve(g, c.Drivers, pos)
	if err != nil {
		return err
	}

	var p atmos.Parameters
	if idx.ApArr != nil {
		p, err = ev.EvaluateStorm(pos, idx.F107A, idx.F107, *idx.ApArr)
	} else {
		p, err = ev.Evaluate(pos, idx.F107A, idx.F107, idx.Ap)
	}
	if err != nil {
		return err
	}

	enc := json.NewEncoder(os.Stdout)
	enc.SetIndent("", "  ")
	return enc.Encode(densityOutput{Indices: idx, Regime: atmos.Regime(c.Alt), Parameters: p})
}

type ProfileCmd struct {
	Point   `embed:""`
	Drivers `embed:""`

	From   float64 `name:"from" default:"0" help:"Lowest altitude (km)."`
	To     float64 `name:"to" default:"600" help:"Highest altitude (km)."`
	Step   float64 `name:"step" default:"1" help:"Altitude step (km)."`
	Output string  `name:"output" short:"o" help:"Output file. A .parquet suffix writes Parquet, anything else CSV. Defaults to stdout."`
}

func (c *ProfileCmd) Run(g *Globals) error {
	ev, err := g.evaluator()
	if err != nil {
		return err
	}
	pos, err := c.position(0)
	if err != nil {
		return err
	}
	if c.LST != nil {
		return fmt.Errorf("--lst is not supported for profiles")
	}

	req := export.Request{Time: pos.Time, Lat: pos.Lat, Lon: pos.Lon, From: c.From, To: c.To, Step: c.Step}
	explicit, err := c.Drivers.set()
	if err != nil {
		return err
	}
	if explicit {
		req.Drivers = &export.Drivers{F107Avg: *c.F107A, F107Daily: *c.F107, Ap: *c.Ap}
	} else if req.Table, err = g.table(); err != nil {
		return err
	}

	points, err := export.Profile(ev, req)
	if err != nil {
		return err
	}

	if c.Output == "" {
		return export.WriteCSV(os.Stdout, points, ev.Config())
	}
	if dir := filepath.Dir(c.Output); dir != "." {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return err
		}
	}
	f, err := os.Create(c.Output)
	if err != nil {
		return err
	}
	if strings.HasSuffix(c.Output, ".parquet") {
		err = export.WriteParquet(f, points)
	} else {
		err = export.WriteCSV(f, points, ev.Config())
	}
	if cerr := f.Close(); err == nil {
		err = cerr
	}
	if err != nil {
		return err
	}
	log.Printf("wrote %d levels to %s", len(points), c.Output)
	return nil
}

type PressureCmd struct {
	Point   `embed:""`
	Drivers `embed:""`

	Pressure float64 `name:"pressure" required:"" help:"Pressure (mb)."`
}

func (c *PressureCmd) Run(g *Globals) error {
	ev, err := g.evaluator()
	if err != nil {
		return err
	}
	pos, err := c.position(0)
	if err != nil {
		return err
	}
	idx, err := resolve(g, c.Drivers, pos)
	if err != nil {
		return err
	}

	alt, p, err := ev.Pressure(pos, idx.F107A, idx.F107, idx.Ap, c.Pressure)
	if err != nil {
		return err
	}
	cfg := ev.Config()
	fmt.Printf("%g mb at %.3f km\n", c.Pressure, alt)
	fmt.Printf("density %.6e %s, temperature %.2f %s\n",
		p.Density.Total, cfg.DensityUnit, p.Temperature.Altitude, cfg.TemperatureUnit)
	return nil
}

type ApCmd struct {
	Time string `arg:"" help:"UTC time, RFC 3339 or YYYY-MM-DD."`
}

func (c *ApCmd) Run(g *Globals) error {
	t, err := parseTime(c.Time)
	if err != nil {
		return err
	}
	table, err := g.table()
	if err != nil {
		return err
	}

	rec, err := table.Record(t)
	if err != nil {
		return err
	}
	fmt.Printf("date      %s (BSRN %d day %d)\n", rec.Date.Format("2006-01-02"), rec.BSRN, rec.ND)
	fmt.Printf("kp        %v sum %d\n", rec.Kp, rec.KpSum)
	fmt.Printf("ap        %v avg %d\n", rec.Ap, rec.ApAvg)
	fmt.Printf("f10.7     obs %.1f adj %.1f (%s)\n", rec.F107Obs, rec.F107Adj, rec.F107Type)
	fmt.Printf("f10.7 81d obs centred %.1f last %.1f\n", rec.F107ObsCenter81, rec.F107ObsLast81)

	mi, err := table.MagneticIndex(t)
	if err != nil {
		return err
	}
	fmt.Printf("ap array  %v\n", mi)
	return nil
}

type ImportCmd struct {
	Source           string `arg:"" optional:"" default:"${source}" help:"URL or path of a CelesTrak space-weather CSV."`
	PayloadRetention int    `name:"payload-retention-days" default:"90" help:"Delete raw payloads older than this many days; 0 keeps them."`
}

func (c *ImportCmd) Run(g *Globals) error {
	st, closeDB, err := g.openStore()
	if err != nil {
		return err
	}
	defer closeDB()

	ctx, cancel := signalContext()
	defer cancel()

	imp := ingest.NewImporter(st, ingest.NewFetcher(nil))
	res, err := imp.Import(ctx, c.Source)
	if err != nil {
		return fmt.Errorf("import %s: %w", c.Source, err)
	}
	fmt.Printf("run %d: %d days parsed, %d stored, %d lines skipped, %d flagged\n",
		res.RunID, res.Parsed, res.Stored, res.Skipped, res.Flagged)

	if c.PayloadRetention > 0 {
		n, err := st.CleanupOldRawPayloads(c.PayloadRetention)
		if err != nil {
			log.Printf("cleanup raw payloads: %v", err)
		} else if n > 0 {
			log.Printf("deleted %d raw payloads older than %d days", n, c.PayloadRetention)
		}
	}
	return nil
}

type DownloadCmd struct {
	Source string `arg:"" optional:"" default:"${source}" help:"URL of a CelesTrak space-weather CSV."`
	Dest   string `name:"dest" short:"d" default:"data/SW-Last5Years.csv" help:"Destination file. A .gz suffix compresses it."`
}

func (c *DownloadCmd) Run(g *Globals) error {
	ctx, cancel := signalContext()
	defer cancel()

	n, err := ingest.Download(ctx, ingest.NewFetcher(nil), c.Source, c.Dest)
	if err != nil {
		return err
	}
	log.Printf("downloaded %d bytes to %s", n, c.Dest)
	return nil
}

type ServeCmd struct {
	Port   string `name:"port" env:"GEOATMOS_PORT" default:"8080" help:"HTTP server port."`
	Import bool   `name:"import" help:"Import the default source before serving."`
}

func (c *ServeCmd) Run(g *Globals) error {
	st, closeDB, err := g.openStore()
	if err != nil {
		return err
	}
	defer closeDB()
	log.Println("database migrated")

	ev, err := g.evaluator()
	if err != nil {
		return err
	}

	ctx, cancel := signalContext()
	defer cancel()

	if c.Import {
		imp := ingest.NewImporter(st, ingest.NewFetcher(nil))
		if _, err := imp.Import(ctx, sourceFromEnv()); err != nil {
			log.Printf("initial import failed, serving stored data: %v", err)
		}
	}

	server := api.NewServer(st, ev, c.Port)
	log.Printf("starting server on :%s", c.Port)
	return server.Run(ctx)
}
