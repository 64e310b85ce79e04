// Package server exposes the savings calculator over a small stateless
// HTTP API.
package server

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"sync"
	"time"

	"github.com/theirongolddev/bolan/internal/cli"
	"github.com/theirongolddev/bolan/internal/logx"
	"github.com/theirongolddev/bolan/internal/mortgage"
)

const maxBodyBytes = 1 << 16

// Config controls the server runtime behavior.
type Config struct {
	Addr   string
	Logger *logx.Logger
}

// Status is served at /v1/status.
type Status struct {
	StartedAt    time.Time `json:"started_at"`
	Requests     int64     `json:"requests"`
	Calculations int64     `json:"calculations"`
	Rejected     int64     `json:"rejected"`
	LastError    string    `json:"last_error,omitempty"`
}

// Formatted holds the result rendered the way the form shows it.
type Formatted struct {
	CurrentMonthlyPayment string `json:"current_monthly_payment"`
	NewMonthlyPayment     string `json:"new_monthly_payment"`
	MonthlySavings        string `json:"monthly_savings"`
	YearlySavings         string `json:"yearly_savings"`
}

// CalculateResponse is the /v1/calculate success body.
type CalculateResponse struct {
	mortgage.Result
	Formatted Formatted `json:"formatted"`
}

type errorResponse struct {
	Error string `json:"error"`
}

// Service provides the HTTP API. Each request gets its own calculator;
// only the counters are shared.
type Service struct {
	cfg Config
	log *logx.Logger

	mu           sync.Mutex
	startedAt    time.Time
	requests     int64
	calculations int64
	rejected     int64
	lastError    string
}

// New returns a new service with the provided config.
func New(cfg Config) *Service {
	if cfg.Addr == "" {
		cfg.Addr = "127.0.0.1:8788"
	}
	lg := cfg.Logger
	if lg == nil {
		lg = logx.Discard()
	}

	return &Service{
		cfg:       cfg,
		log:       lg.WithComponent("http"),
		startedAt: time.Now(),
	}
}

// Handler returns the API routes.
func (s *Service) Handler() http.Handler {
	mux := http.NewServeMux()
	mux.HandleFunc("/healthz", s.handleHealth)
	mux.HandleFunc("/v1/status", s.handleStatus)
	mux.HandleFunc("/v1/calculate", s.handleCalculate)
	return mux
}

// Run serves until ctx is canceled, then shuts down gracefully.
func (s *Service) Run(ctx context.Context) error {
	server := &http.Server{
		Addr:              s.cfg.Addr,
		Handler:           s.Handler(),
		ReadHeaderTimeout: 5 * time.Second,
	}

	errCh := make(chan error, 1)
	go func() {
		if err := server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errCh <- err
		}
	}()
	s.log.Info("listening", "addr", s.cfg.Addr)

	select {
	case <-ctx.Done():
		s.log.Info("shutting down")
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		return server.Shutdown(shutdownCtx)
	case err := <-errCh:
		return fmt.Errorf("http server: %w", err)
	}
}

// Status returns a snapshot of the request counters.
func (s *Service) Status() Status {
	s.mu.Lock()
	defer s.mu.Unlock()

	return Status{
		StartedAt:    s.startedAt,
		Requests:     s.requests,
		Calculations: s.calculations,
		Rejected:     s.rejected,
		LastError:    s.lastError,
	}
}

func (s *Service) handleHealth(w http.ResponseWriter, _ *http.Request) {
	w.Header().Set("Content-Type", "text/plain; charset=utf-8")
	_, _ = w.Write([]byte("ok\n"))
}

func (s *Service) handleStatus(w http.ResponseWriter, _ *http.Request) {
	writeJSON(w, http.StatusOK, s.Status())
}

func (s *Service) handleCalculate(w http.ResponseWriter, r *http.Request) {
	start := time.Now()

	var (
		raw map[mortgage.Field]string
		err error
	)
	switch r.Method {
	case http.MethodGet:
		raw = fieldsFromQuery(r)
	case http.MethodPost:
		raw, err = fieldsFromBody(r)
	default:
		w.Header().Set("Allow", "GET, POST")
		writeJSON(w, http.StatusMethodNotAllowed, errorResponse{Error: "method not allowed"})
		return
	}

	var in mortgage.Inputs
	if err == nil {
		in, err = mortgage.ParseInputs(raw)
	}
	if err != nil {
		s.record(err)
		s.log.Info("calculate rejected", "error", err, "remote", r.RemoteAddr)
		writeJSON(w, http.StatusBadRequest, errorResponse{Error: err.Error()})
		return
	}

	res := mortgage.Compute(in)
	if !res.Finite() {
		err = fmt.Errorf("%+v: %w", in, mortgage.ErrNotFinite)
		s.record(err)
		s.log.Info("calculate rejected", "error", err, "remote", r.RemoteAddr)
		writeJSON(w, http.StatusBadRequest, errorResponse{Error: err.Error()})
		return
	}
	s.record(nil)
	s.log.Debug("calculate", "monthly_savings", res.MonthlySavings, "took", time.Since(start))

	writeJSON(w, http.StatusOK, CalculateResponse{
		Result:    res,
		Formatted: formatResult(res),
	})
}

func (s *Service) record(err error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.requests++
	if err != nil {
		s.rejected++
		s.lastError = err.Error()
		return
	}
	s.calculations++
}

func fieldsFromQuery(r *http.Request) map[mortgage.Field]string {
	q := r.URL.Query()
	raw := make(map[mortgage.Field]string, len(mortgage.Fields))
	for _, f := range mortgage.Fields {
		raw[f] = q.Get(f.String())
	}
	return raw
}

// fieldText accepts either a JSON number or a string such as "2 000 000".
type fieldText string

func (t *fieldText) UnmarshalJSON(b []byte) error {
	var s string
	if err := json.Unmarshal(b, &s); err == nil {
		*t = fieldText(s)
		return nil
	}
	var n json.Number
	if err := json.Unmarshal(b, &n); err != nil {
		return fmt.Errorf("want number or string, got %s", b)
	}
	*t = fieldText(n.String())
	return nil
}

func fieldsFromBody(r *http.Request) (map[mortgage.Field]string, error) {
	var body map[string]fieldText
	dec := json.NewDecoder(io.LimitReader(r.Body, maxBodyBytes))
	if err := dec.Decode(&body); err != nil {
		return nil, fmt.Errorf("decoding request body: %w", err)
	}

	raw := make(map[mortgage.Field]string, len(mortgage.Fields))
	for _, f := range mortgage.Fields {
		raw[f] = string(body[f.String()])
	}
	return raw, nil
}

func formatResult(r mortgage.Result) Formatted {
	return Formatted{
		CurrentMonthlyPayment: cli.FormatKronor(r.CurrentMonthlyPayment),
		NewMonthlyPayment:     cli.FormatKronor(r.NewMonthlyPayment),
		MonthlySavings:        cli.FormatKronor(r.MonthlySavings),
		YearlySavings:         cli.FormatKronor(r.YearlySavings),
	}
}

// writeJSON encodes v before touching the response so an encoding failure
// still reaches the client as a JSON error.
func writeJSON(w http.ResponseWriter, code int, v any) {
	body, err := json.Marshal(v)
	if err != nil {
		code = http.StatusInternalServerError
		body, _ = json.Marshal(errorResponse{Error: fmt.Sprintf("encoding response: %v", err)})
	}
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(code)
	_, _ = w.Write(append(body, '\n'))
}
