package api

import (
	"encoding/json"
	"net/http"

	"github.com/abeage1/earwise/internal/errors"
	"github.com/abeage1/earwise/internal/logger"
	"github.com/abeage1/earwise/internal/models"
)

func (s *Server) handleExport(w http.ResponseWriter, r *http.Request) {
	bundle, err := s.Practice.Export(r.Context())
	if err != nil {
		handleError(w, r, err)
		return
	}
	w.Header().Set("Content-Disposition", `attachment; filename="earwise-export.json"`)
	respondJSON(w, r, http.StatusOK, bundle)
}

func (s *Server) handleImport(w http.ResponseWriter, r *http.Request) {
	// Import is lenient about extra fields so bundles from newer exports
	// still load; Validate decides acceptability.
	var bundle models.ExportBundle
	if err := json.NewDecoder(r.Body).Decode(&bundle); err != nil {
		handleError(w, r, errors.NewInvalidImportError("not valid JSON"))
		return
	}

	if err := s.Practice.Import(r.Context(), &bundle); err != nil {
		handleError(w, r, err)
		return
	}
	respondJSON(w, r, http.StatusOK, map[string]any{"imported": true})
}

func (s *Server) handleReset(w http.ResponseWriter, r *http.Request) {
	if err := s.Practice.Reset(r.Context()); err != nil {
		handleError(w, r, err)
		return
	}
	logger.FromContext(r.Context()).Info("progress reset via API")
	respondJSON(w, r, http.StatusOK, map[string]any{"reset": true})
}
