package main

import (
	"context"
	"database/sql"
	"fmt"
	"log"
	"os"
	"os/signal"
	"path/filepath"
	"syscall"
	"time"

	"github.com/alecthomas/kong"
	kongdotenv "github.com/titusjaka/kong-dotenv-go"
	_ "modernc.org/sqlite"

	"github.com/lox/geoatmos/internal/atmos"
	"github.com/lox/geoatmos/internal/ingest"
	"github.com/lox/geoatmos/internal/spaceweather"
	"github.com/lox/geoatmos/internal/store"
)

type Globals struct {
	EnvFile kongdotenv.ENVFileConfig `embed:""`

	DB              string `name:"db" env:"GEOATMOS_DB" default:"data/geoatmos.db" help:"Path to SQLite database."`
	SpaceWeather    string `name:"space-weather" env:"GEOATMOS_SPACE_WEATHER" help:"Read indices from this CSV (or .csv.gz) instead of the database."`
	DensityUnit     string `name:"density-unit" env:"GEOATMOS_DENSITY_UNIT" default:"cgs" help:"Density units: cgs or si."`
	TemperatureUnit string `name:"temperature-unit" env:"GEOATMOS_TEMPERATURE_UNIT" default:"k" help:"Temperature units: k or c."`
}

type CLI struct {
	Globals

	Density  DensityCmd  `cmd:"" help:"Evaluate densities and temperature at one point."`
	Profile  ProfileCmd  `cmd:"" help:"Evaluate an altitude profile and write CSV or Parquet."`
	Pressure PressureCmd `cmd:"" help:"Find the altitude of a pressure level."`
	Ap       ApCmd       `cmd:"" help:"Show the space-weather indices used at a time."`
	Import   ImportCmd   `cmd:"" help:"Fetch a space-weather file into the database."`
	Download DownloadCmd `cmd:"" help:"Fetch a space-weather file to disk."`
	Serve    ServeCmd    `cmd:"" help:"Serve the HTTP API."`
}

func main() {
	var cli CLI
	ctx := kong.Parse(&cli,
		kong.Name("geoatmos"),
		kong.Description("NRLMSISE-00 atmosphere model with CelesTrak space weather."),
		kong.UsageOnError(),
		kong.Vars{"source": sourceFromEnv()},
	)
	ctx.FatalIfErrorf(ctx.Run(&cli.Globals))
}

// sourceFromEnv is the space-weather source used when none is given.
func sourceFromEnv() string {
	if s := os.Getenv("GEOATMOS_SOURCE"); s != "" {
		return s
	}
	return ingest.DefaultSource
}

func (g *Globals) openStore() (*store.Store, func(), error) {
	if dir := filepath.Dir(g.DB); dir != "." {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return nil, nil, fmt.Errorf("create %s: %w", dir, err)
		}
	}
	db, err := sql.Open("sqlite", g.DB)
	if err != nil {
		return nil, nil, fmt.Errorf("open database: %w", err)
	}

	db.Exec("PRAGMA journal_mode=WAL")
	db.Exec("PRAGMA busy_timeout=5000")

	st := store.New(db)
	if err := st.Migrate(); err != nil {
		db.Close()
		return nil, nil, fmt.Errorf("migrate: %w", err)
	}
	return st, func() { db.Close() }, nil
}

func (g *Globals) evaluator() (*atmos.Evaluator, error) {
	cfg := atmos.DefaultModelConfig()
	var err error
	if cfg.DensityUnit, err = atmos.ParseDensityUnit(g.DensityUnit); err != nil {
		return nil, err
	}
	if cfg.TemperatureUnit, err = atmos.ParseTemperatureUnit(g.TemperatureUnit); err != nil {
		return nil, err
	}
	return atmos.NewEvaluator(cfg)
}

// table loads space weather from --space-weather when set, otherwise from
// the database.
func (g *Globals) table() (*spaceweather.Table, error) {
	if g.SpaceWeather != "" {
		table, err := spaceweather.Load(g.SpaceWeather)
		if err != nil {
			return nil, err
		}
		if table.Skipped() > 0 {
			log.Printf("skipped %d unparseable lines in %s", table.Skipped(), g.SpaceWeather)
		}
		return table, nil
	}

	st, closeDB, err := g.openStore()
	if err != nil {
		return nil, err
	}
	defer closeDB()
	return st.LoadTable()
}

// Drivers are optional explicit indices. When none is given the indices
// come from space weather.
type Drivers struct {
	F107A *float64 `name:"f107a" help:"81-day average F10.7."`
	F107  *float64 `name:"f107" help:"Previous day F10.7."`
	Ap    *float64 `name:"ap" help:"Daily Ap."`
}

func (d Drivers) set() (bool, error) {
	n := 0
	for _, v := range []*float64{d.F107A, d.F107, d.Ap} {
		if v != nil {
			n++
		}
	}
	if n != 0 && n != 3 {
		return false, fmt.Errorf("--f107a, --f107 and --ap must be given together")
	}
	return n == 3, nil
}

type Point struct {
	Time string   `arg:"" help:"UTC time, RFC 3339 or YYYY-MM-DD."`
	Lat  float64  `name:"lat" required:"" help:"Geodetic latitude (deg)."`
	Lon  float64  `name:"lon" required:"" help:"Longitude (deg)."`
	LST  *float64 `name:"lst" help:"Override local solar time (hours)."`
}

func (p Point) position(altKm float64) (atmos.Geodetic, error) {
	t, err := parseTime(p.Time)
	if err != nil {
		return atmos.Geodetic{}, err
	}
	if p.Lat < -90 || p.Lat > 90 {
		return atmos.Geodetic{}, fmt.Errorf("latitude %g outside [-90, 90]", p.Lat)
	}
	return atmos.Geodetic{Time: t, Lat: p.Lat, Lon: p.Lon, Alt: altKm * 1e3, LST: p.LST}, nil
}

func parseTime(s string) (time.Time, error) {
	for _, layout := range []string{time.RFC3339, "2006-01-02T15:04:05", "2006-01-02"} {
		if t, err := time.ParseInLocation(layout, s, time.UTC); err == nil {
			return t.UTC(), nil
		}
	}
	return time.Time{}, fmt.Errorf("invalid time %q", s)
}

func signalContext() (context.Context, context.CancelFunc) {
	return signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
}
