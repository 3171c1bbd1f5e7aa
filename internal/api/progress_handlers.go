package api

import (
	"net/http"

	"github.com/abeage1/earwise/internal/errors"
	"github.com/abeage1/earwise/internal/srs"
	"github.com/go-chi/chi/v5"
)

func (s *Server) handleConfirmUnlocks(w http.ResponseWriter, r *http.Request) {
	domain, err := domainParam(r)
	if err != nil {
		handleError(w, r, err)
		return
	}

	unlocked, err := s.Practice.ConfirmUnlocks(r.Context(), domain)
	if err != nil {
		handleError(w, r, err)
		return
	}
	respondJSON(w, r, http.StatusOK, map[string]any{"unlocked": unlocked})
}

func (s *Server) handleDeferUnlocks(w http.ResponseWriter, r *http.Request) {
	domain, err := domainParam(r)
	if err != nil {
		handleError(w, r, err)
		return
	}

	if err := s.Practice.DeferUnlocks(r.Context(), domain); err != nil {
		handleError(w, r, err)
		return
	}
	respondJSON(w, r, http.StatusOK, map[string]any{"deferred": true})
}

// cardKeyParam parses the {key} URL parameter in "item:variant" form.
func cardKeyParam(r *http.Request) (srs.Key, error) {
	key, err := srs.ParseKey(chi.URLParam(r, "key"))
	if err != nil {
		return srs.Key{}, errors.NewValidationError("key", err.Error())
	}
	return key, nil
}

func (s *Server) handleUnlockCard(w http.ResponseWriter, r *http.Request) {
	domain, err := domainParam(r)
	if err != nil {
		handleError(w, r, err)
		return
	}
	key, err := cardKeyParam(r)
	if err != nil {
		handleError(w, r, err)
		return
	}

	changed, err := s.Practice.ManualUnlock(r.Context(), domain, key)
	if err != nil {
		handleError(w, r, err)
		return
	}
	respondJSON(w, r, http.StatusOK, map[string]any{"changed": changed})
}

func (s *Server) handleRelockCard(w http.ResponseWriter, r *http.Request) {
	domain, err := domainParam(r)
	if err != nil {
		handleError(w, r, err)
		return
	}
	key, err := cardKeyParam(r)
	if err != nil {
		handleError(w, r, err)
		return
	}

	changed, err := s.Practice.ManualRelock(r.Context(), domain, key)
	if err != nil {
		handleError(w, r, err)
		return
	}
	respondJSON(w, r, http.StatusOK, map[string]any{"changed": changed})
}

func (s *Server) handleProgress(w http.ResponseWriter, r *http.Request) {
	domain, err := domainParam(r)
	if err != nil {
		handleError(w, r, err)
		return
	}

	progress, err := s.Practice.Progress(r.Context(), domain)
	if err != nil {
		handleError(w, r, err)
		return
	}
	respondJSON(w, r, http.StatusOK, progress)
}
