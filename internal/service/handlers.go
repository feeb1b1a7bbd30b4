package service

import (
	"encoding/json"
	"net/http"

	"github.com/ledgerlens/insights/internal/insights"
	"github.com/ledgerlens/insights/internal/model"
)

// Handler returns the HTTP mux for the insight API.
func (s *InsightService) Handler() http.Handler {
	mux := http.NewServeMux()
	mux.HandleFunc("/health", s.handleHealth)
	mux.HandleFunc("/v1/insights", s.handleGenerate)
	mux.HandleFunc("/v1/insights/count", s.handleCount)
	mux.HandleFunc("/v1/dismissals", s.handleDismissals)
	return mux
}

type generateResponse struct {
	Insights []model.Insight `json:"insights"`
	Count    int             `json:"count"`
}

type countResponse struct {
	Count int `json:"count"`
}

type dismissRequest struct {
	ID string `json:"id"`
}

type errorResponse struct {
	Error string `json:"error"`
}

func (s *InsightService) handleHealth(w http.ResponseWriter, r *http.Request) {
	w.WriteHeader(http.StatusOK)
	w.Write([]byte("OK"))
}

// handleGenerate runs the pipeline and returns active (non-dismissed)
// insights for the posted record snapshot.
func (s *InsightService) handleGenerate(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPost {
		writeError(w, http.StatusMethodNotAllowed, "method not allowed")
		return
	}
	var in insights.Input
	if err := json.NewDecoder(r.Body).Decode(&in); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body: "+err.Error())
		return
	}
	active := s.ActiveInsights(r.Context(), in)
	writeJSON(w, http.StatusOK, generateResponse{Insights: active, Count: len(active)})
}

func (s *InsightService) handleCount(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPost {
		writeError(w, http.StatusMethodNotAllowed, "method not allowed")
		return
	}
	var in insights.Input
	if err := json.NewDecoder(r.Body).Decode(&in); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body: "+err.Error())
		return
	}
	writeJSON(w, http.StatusOK, countResponse{Count: s.GetInsightCount(r.Context(), in)})
}

func (s *InsightService) handleDismissals(w http.ResponseWriter, r *http.Request) {
	switch r.Method {
	case http.MethodPost:
		var req dismissRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			writeError(w, http.StatusBadRequest, "invalid request body: "+err.Error())
			return
		}
		if req.ID == "" {
			writeError(w, http.StatusBadRequest, "insight id is required")
			return
		}
		if err := s.DismissInsight(r.Context(), req.ID); err != nil {
			s.log.Error().Err(err).Str("id", req.ID).Msg("dismiss failed")
			writeError(w, http.StatusInternalServerError, err.Error())
			return
		}
		w.WriteHeader(http.StatusNoContent)
	case http.MethodDelete:
		if err := s.ClearDismissed(r.Context()); err != nil {
			s.log.Error().Err(err).Msg("clear dismissals failed")
			writeError(w, http.StatusInternalServerError, err.Error())
			return
		}
		w.WriteHeader(http.StatusNoContent)
	default:
		writeError(w, http.StatusMethodNotAllowed, "method not allowed")
	}
}

func writeJSON(w http.ResponseWriter, status int, body interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(body)
}

func writeError(w http.ResponseWriter, status int, msg string) {
	writeJSON(w, status, errorResponse{Error: msg})
}
