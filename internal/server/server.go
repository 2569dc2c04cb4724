// Package server exposes the analysis pipeline over HTTP. The JSON
// responses follow the AnalysisResult wire contract consumed by chart
// builders and API clients.
package server

import (
	"context"
	"net/http"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/gorilla/mux"

	"github.com/rxtech-lab/argo-analysis/internal/analyzer"
	"github.com/rxtech-lab/argo-analysis/internal/logger"
	"github.com/rxtech-lab/argo-analysis/pkg/errors"
	"github.com/rxtech-lab/argo-analysis/pkg/marketdata"
)

// Config holds the HTTP server settings.
type Config struct {
	Addr string `yaml:"addr" validate:"required"`
	// Watchlist is the symbol set served by the market overview endpoint.
	Watchlist     []string `yaml:"watchlist"`
	DefaultPeriod string   `yaml:"default_period" validate:"required"`
}

// DefaultConfig returns the standard server settings.
func DefaultConfig() Config {
	return Config{
		Addr:          ":8080",
		Watchlist:     []string{"AAPL", "MSFT", "GOOGL", "AMZN", "NVDA"},
		DefaultPeriod: string(marketdata.PeriodOneYear),
	}
}

// Server serves the analysis API.
type Server struct {
	config        Config
	analyzer      *analyzer.Analyzer
	logger        *logger.Logger
	defaultPeriod marketdata.Period
	httpServer    *http.Server
}

// NewServer creates a server after validating the configuration.
func NewServer(config Config, a *analyzer.Analyzer, log *logger.Logger) (*Server, error) {
	if err := validator.New().Struct(config); err != nil {
		return nil, errors.Wrap(errors.ErrCodeInvalidConfiguration, "invalid server configuration", err)
	}

	defaultPeriod, err := marketdata.ParsePeriod(config.DefaultPeriod)
	if err != nil {
		return nil, err
	}

	return &Server{
		config:        config,
		analyzer:      a,
		logger:        log,
		defaultPeriod: defaultPeriod,
	}, nil
}

// Router builds the HTTP route table.
func (s *Server) Router() *mux.Router {
	router := mux.NewRouter()
	router.Use(s.requestLogging)

	router.HandleFunc("/health", s.handleHealth).Methods("GET")
	router.HandleFunc("/api/stock/{symbol}", s.handleStock).Methods("GET")
	router.HandleFunc("/api/sentiment/{symbol}", s.handleSentiment).Methods("GET")
	router.HandleFunc("/api/market-overview", s.handleMarketOverview).Methods("GET")
	router.HandleFunc("/api/schema", s.handleSchema).Methods("GET")

	return router
}

// Start blocks serving HTTP until the listener fails or Shutdown is called.
func (s *Server) Start() error {
	s.httpServer = &http.Server{
		Addr:              s.config.Addr,
		Handler:           s.Router(),
		ReadHeaderTimeout: 10 * time.Second,
	}

	if err := s.httpServer.ListenAndServe(); err != nil && err != http.ErrServerClosed {
		return err
	}

	return nil
}

// Shutdown drains in-flight requests.
func (s *Server) Shutdown(ctx context.Context) error {
	if s.httpServer == nil {
		return nil
	}

	return s.httpServer.Shutdown(ctx)
}
