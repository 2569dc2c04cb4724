package server

import (
	"encoding/json"
	"net/http"
	"time"

	"github.com/gorilla/mux"
	"go.uber.org/zap"

	"github.com/rxtech-lab/argo-analysis/internal/types"
	"github.com/rxtech-lab/argo-analysis/pkg/errors"
	"github.com/rxtech-lab/argo-analysis/pkg/marketdata"
)

// errorResponse is the JSON shape of every error reply.
type errorResponse struct {
	Error string           `json:"error"`
	Code  errors.ErrorCode `json:"code"`
}

// marketOverview summarizes the watchlist for dashboard views.
type marketOverview struct {
	Stocks      []*types.AnalysisResult `json:"stocks"`
	Count       int                     `json:"count"`
	LastUpdated time.Time               `json:"last_updated"`
}

func (s *Server) handleHealth(w http.ResponseWriter, _ *http.Request) {
	s.writeJSON(w, http.StatusOK, map[string]string{"status": "ok"})
}

func (s *Server) handleStock(w http.ResponseWriter, r *http.Request) {
	symbol := mux.Vars(r)["symbol"]

	period := s.defaultPeriod

	if raw := r.URL.Query().Get("period"); raw != "" {
		parsed, err := marketdata.ParsePeriod(raw)
		if err != nil {
			s.writeError(w, http.StatusBadRequest, err)

			return
		}

		period = parsed
	}

	result, err := s.analyzer.Analyze(r.Context(), symbol, period)
	if err != nil {
		s.writeError(w, statusForError(err), err)

		return
	}

	s.writeJSON(w, http.StatusOK, result)
}

func (s *Server) handleSentiment(w http.ResponseWriter, r *http.Request) {
	symbol := mux.Vars(r)["symbol"]

	profile, err := s.analyzer.Sentiment(r.Context(), symbol)
	if err != nil {
		s.writeError(w, statusForError(err), err)

		return
	}

	s.writeJSON(w, http.StatusOK, profile)
}

// handleMarketOverview analyzes every watchlist symbol over one month.
// Symbols that fail are skipped so one bad ticker cannot empty the board.
func (s *Server) handleMarketOverview(w http.ResponseWriter, r *http.Request) {
	overview := marketOverview{
		Stocks:      make([]*types.AnalysisResult, 0, len(s.config.Watchlist)),
		LastUpdated: time.Now().UTC(),
	}

	for _, symbol := range s.config.Watchlist {
		result, err := s.analyzer.Analyze(r.Context(), symbol, marketdata.PeriodOneMonth)
		if err != nil {
			s.logger.Warn("skipping watchlist symbol",
				zap.String("symbol", symbol),
				zap.Error(err))

			continue
		}

		overview.Stocks = append(overview.Stocks, result)
	}

	overview.Count = len(overview.Stocks)

	s.writeJSON(w, http.StatusOK, overview)
}

func (s *Server) handleSchema(w http.ResponseWriter, _ *http.Request) {
	schema, err := types.GenerateAnalysisResultSchemaJSON()
	if err != nil {
		s.writeError(w, http.StatusInternalServerError, err)

		return
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusOK)
	_, _ = w.Write([]byte(schema))
}

func (s *Server) writeJSON(w http.ResponseWriter, status int, payload any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)

	if err := json.NewEncoder(w).Encode(payload); err != nil {
		s.logger.Error("failed to encode response", zap.Error(err))
	}
}

func (s *Server) writeError(w http.ResponseWriter, status int, err error) {
	s.writeJSON(w, status, errorResponse{
		Error: err.Error(),
		Code:  errors.GetCode(err),
	})
}

func statusForError(err error) int {
	switch errors.GetCode(err) {
	case errors.ErrCodeInvalidPeriod, errors.ErrCodeInvalidSymbol, errors.ErrCodeInvalidParameter:
		return http.StatusBadRequest
	case errors.ErrCodeDataUnavailable, errors.ErrCodeSentimentUnavailable:
		return http.StatusNotFound
	default:
		return http.StatusInternalServerError
	}
}
