package api

import (
	"encoding/json"
	"net/http"

	"github.com/abeage1/earwise/internal/db"
	"github.com/abeage1/earwise/internal/errors"
	"github.com/abeage1/earwise/internal/logger"
	"github.com/abeage1/earwise/internal/services"
)

// Server holds the HTTP handler dependencies.
type Server struct {
	Practice services.PracticeService
	DB       *db.DB
}

// respondJSON writes a JSON response with the given status.
func respondJSON(w http.ResponseWriter, r *http.Request, status int, payload any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if payload == nil {
		return
	}
	if err := json.NewEncoder(w).Encode(payload); err != nil {
		logger.FromContext(r.Context()).Error("failed to encode response: %v", err)
	}
}

// decodeJSON decodes a request body, rejecting unknown fields.
func decodeJSON(r *http.Request, dst any) error {
	dec := json.NewDecoder(r.Body)
	dec.DisallowUnknownFields()
	if err := dec.Decode(dst); err != nil {
		return errors.NewBadRequestError("invalid request body: " + err.Error())
	}
	return nil
}
