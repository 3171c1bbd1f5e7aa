package api

import (
	"net/http"

	"github.com/go-chi/chi/v5"
)

func (s *Server) Routes() http.Handler {
	r := chi.NewRouter()
	r.Use(recoveryMiddleware)
	r.Use(loggingMiddleware)
	r.Use(securityHeadersMiddleware)

	r.Get("/health", s.handleHealth)
	r.Get("/ready", s.handleReady)

	r.Route("/api", func(r chi.Router) {
		r.Route("/domains/{domain}", func(r chi.Router) {
			r.Post("/sessions", s.handleStartSession)
			r.Post("/unlocks/confirm", s.handleConfirmUnlocks)
			r.Post("/unlocks/defer", s.handleDeferUnlocks)
			r.Post("/cards/{key}/unlock", s.handleUnlockCard)
			r.Post("/cards/{key}/relock", s.handleRelockCard)
			r.Get("/progress", s.handleProgress)
			r.Get("/sessions/recent", s.handleRecentSessions)
		})

		r.Route("/session", func(r chi.Router) {
			r.Get("/question", s.handleCurrentQuestion)
			r.Post("/play", s.handlePlayQuestion)
			r.Post("/answers", s.handleSubmitAnswer)
			r.Post("/next", s.handleNextQuestion)
			r.Post("/end", s.handleAbandonSession)
		})

		r.Get("/settings", s.handleGetSettings)
		r.Put("/settings", s.handleUpdateSettings)
		r.Get("/stats", s.handleGetStats)
		r.Get("/export", s.handleExport)
		r.Post("/import", s.handleImport)
		r.Post("/reset", s.handleReset)
	})

	return r
}
