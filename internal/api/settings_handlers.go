package api

import (
	"net/http"

	"github.com/abeage1/earwise/internal/models"
)

func (s *Server) handleGetSettings(w http.ResponseWriter, r *http.Request) {
	respondJSON(w, r, http.StatusOK, s.Practice.GetSettings(r.Context()))
}

func (s *Server) handleUpdateSettings(w http.ResponseWriter, r *http.Request) {
	var settings models.Settings
	if err := decodeJSON(r, &settings); err != nil {
		handleError(w, r, err)
		return
	}

	if err := s.Practice.UpdateSettings(r.Context(), settings); err != nil {
		handleError(w, r, err)
		return
	}
	respondJSON(w, r, http.StatusOK, settings)
}

func (s *Server) handleGetStats(w http.ResponseWriter, r *http.Request) {
	respondJSON(w, r, http.StatusOK, s.Practice.GetStats(r.Context()))
}
