// Package api serves atmosphere evaluations and space-weather lookups as
// JSON over HTTP.
package api

import (
	"context"
	"log"
	"net/http"
	"sync"
	"time"

	"github.com/lox/geoatmos/internal/atmos"
	"github.com/lox/geoatmos/internal/metrics"
	"github.com/lox/geoatmos/internal/spaceweather"
	"github.com/lox/geoatmos/internal/store"
)

type Server struct {
	store     *store.Store
	evaluator *atmos.Evaluator
	port      string

	mu    sync.RWMutex
	table *spaceweather.Table
}

// NewServer loads the stored space-weather table. An empty or unreadable
// store is not fatal; evaluations fall back to default indices.
func NewServer(store *store.Store, evaluator *atmos.Evaluator, port string) *Server {
	s := &Server{
		store:     store,
		evaluator: evaluator,
		port:      port,
	}
	if err := s.Reload(); err != nil {
		log.Printf("api: load space weather: %v", err)
	}
	return s
}

// Reload replaces the in-memory table with the current store contents.
func (s *Server) Reload() error {
	table, err := s.store.LoadTable()
	if err != nil {
		return err
	}
	s.mu.Lock()
	s.table = table
	s.mu.Unlock()
	if first, last := table.Range(); table.Len() > 0 {
		log.Printf("api: loaded %d space weather days (%s to %s)", table.Len(),
			first.Format("2006-01-02"), last.Format("2006-01-02"))
	}
	return nil
}

func (s *Server) spaceWeather() *spaceweather.Table {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.table
}

func (s *Server) Handler() http.Handler {
	mux := http.NewServeMux()
	handle := func(route string, h http.HandlerFunc) {
		mux.Handle(route, metrics.Instrument(route, h))
	}
	handle("/health", s.handleHealth)
	handle("/api/density", s.handleDensity)
	handle("/api/profile", s.handleProfile)
	handle("/api/pressure", s.handlePressure)
	handle("/api/spaceweather", s.handleSpaceWeather)
	mux.Handle("/metrics", metrics.Handler())
	return mux
}

func (s *Server) Run(ctx context.Context) error {
	server := &http.Server{
		Addr:    ":" + s.port,
		Handler: s.Handler(),
	}

	go func() {
		<-ctx.Done()
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		server.Shutdown(shutdownCtx)
	}()

	if err := server.ListenAndServe(); err != http.ErrServerClosed {
		return err
	}
	return nil
}

type HealthStatus struct {
	Status       string     `json:"status"`
	Records      int        `json:"records"`
	FirstDate    string     `json:"first_date,omitempty"`
	LastDate     string     `json:"last_date,omitempty"`
	LastImport   *time.Time `json:"last_import,omitempty"`
	ImportFailed bool       `json:"import_failed,omitempty"`
	Errors       []string   `json:"errors,omitempty"`
}

// handleHealth reports degraded when no space weather is stored, since
// every evaluation would then use fallback indices.
func (s *Server) handleHealth(w http.ResponseWriter, r *http.Request) {
	health := HealthStatus{Status: "ok"}

	first, last, count, err := s.store.RecordRange()
	if err != nil {
		health.Errors = append(health.Errors, "records: "+err.Error())
	}
	health.Records = count
	if count > 0 {
		health.FirstDate = first.Format("2006-01-02")
		health.LastDate = last.Format("2006-01-02")
	} else {
		health.Status = "degraded"
	}

	run, err := s.store.GetLatestImportRun()
	if err != nil {
		health.Errors = append(health.Errors, "import runs: "+err.Error())
	} else if run != nil {
		started := run.StartedAt
		health.LastImport = &started
		health.ImportFailed = !run.Success
	}

	if len(health.Errors) > 0 {
		health.Status = "error"
	}

	code := http.StatusOK
	if health.Status != "ok" {
		code = http.StatusServiceUnavailable
	}
	writeJSON(w, code, health)
}
