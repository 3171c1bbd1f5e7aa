package api

import (
	"net/http"

	"github.com/abeage1/earwise/internal/catalog"
	"github.com/abeage1/earwise/internal/errors"
	"github.com/abeage1/earwise/internal/logger"
	"github.com/go-chi/chi/v5"
)

// domainParam parses and validates the {domain} URL parameter.
func domainParam(r *http.Request) (catalog.Domain, error) {
	raw := chi.URLParam(r, "domain")
	domain, ok := catalog.ParseDomain(raw)
	if !ok {
		return "", errors.NewValidationError("domain", "unknown domain "+raw)
	}
	return domain, nil
}

func (s *Server) handleStartSession(w http.ResponseWriter, r *http.Request) {
	domain, err := domainParam(r)
	if err != nil {
		handleError(w, r, err)
		return
	}

	question, err := s.Practice.StartSession(r.Context(), domain)
	if err != nil {
		handleError(w, r, err)
		return
	}
	respondJSON(w, r, http.StatusCreated, question)
}

func (s *Server) handleCurrentQuestion(w http.ResponseWriter, r *http.Request) {
	question, err := s.Practice.CurrentQuestion(r.Context())
	if err != nil {
		handleError(w, r, err)
		return
	}
	respondJSON(w, r, http.StatusOK, question)
}

// handlePlayQuestion plays the current question's pattern. The response is
// written only after playback completes, so a client awaiting it knows the
// answer gate is open.
func (s *Server) handlePlayQuestion(w http.ResponseWriter, r *http.Request) {
	if err := s.Practice.PlayQuestion(r.Context()); err != nil {
		handleError(w, r, err)
		return
	}
	respondJSON(w, r, http.StatusOK, map[string]any{"played": true})
}

func (s *Server) handleSubmitAnswer(w http.ResponseWriter, r *http.Request) {
	var body struct {
		ItemID string `json:"item_id"`
	}
	if err := decodeJSON(r, &body); err != nil {
		handleError(w, r, err)
		return
	}
	if body.ItemID == "" {
		handleError(w, r, errors.NewValidationError("item_id", "required"))
		return
	}

	answer, err := s.Practice.SubmitAnswer(r.Context(), body.ItemID)
	if err != nil {
		handleError(w, r, err)
		return
	}
	if !answer.Accepted {
		logger.FromContext(r.Context()).Debug("answer ignored: gate not open")
	}
	respondJSON(w, r, http.StatusOK, answer)
}

// handleNextQuestion advances the session. The response carries either the
// next question or, when the queue is exhausted, the end-of-session summary.
func (s *Server) handleNextQuestion(w http.ResponseWriter, r *http.Request) {
	question, summary, err := s.Practice.NextQuestion(r.Context())
	if err != nil {
		handleError(w, r, err)
		return
	}
	if summary != nil {
		respondJSON(w, r, http.StatusOK, map[string]any{"summary": summary})
		return
	}
	respondJSON(w, r, http.StatusOK, map[string]any{"question": question})
}

func (s *Server) handleAbandonSession(w http.ResponseWriter, r *http.Request) {
	if err := s.Practice.AbandonSession(r.Context()); err != nil {
		handleError(w, r, err)
		return
	}
	respondJSON(w, r, http.StatusOK, map[string]any{"ended": true})
}

func (s *Server) handleRecentSessions(w http.ResponseWriter, r *http.Request) {
	domain, err := domainParam(r)
	if err != nil {
		handleError(w, r, err)
		return
	}

	records, err := s.Practice.RecentSessions(r.Context(), domain, 0)
	if err != nil {
		handleError(w, r, err)
		return
	}
	respondJSON(w, r, http.StatusOK, map[string]any{"sessions": records})
}
