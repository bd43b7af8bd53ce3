package handlers

import (
	"encoding/json"
	"errors"
	"io"
	"log/slog"
	"net/http"
	"pickup-route-service/internal/api/dto"
	"pickup-route-service/internal/domain"
	"pickup-route-service/internal/platform/logging"
)

func writeJSON(w http.ResponseWriter, r *http.Request, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(v); err != nil {
		logging.LogError(logging.FromContext(r.Context()), "encode failed", err,
			slog.String("method", r.Method),
			slog.String("path", r.URL.Path),
		)
	}
}

func writeError(w http.ResponseWriter, r *http.Request, status int, msg string) {
	writeJSON(w, r, status, map[string]string{"error": msg})
}

// decodeJSON reads exactly one JSON object from the request body.
func decodeJSON(r *http.Request, v any) error {
	dec := json.NewDecoder(r.Body)
	defer r.Body.Close()
	dec.DisallowUnknownFields()

	if err := dec.Decode(v); err != nil {
		return errors.New("invalid json body")
	}
	if err := dec.Decode(&struct{}{}); err != io.EOF {
		return errors.New("body must contain only one JSON object")
	}
	return nil
}

// isInputError reports whether err is a precondition violation the caller can fix.
func isInputError(err error) bool {
	return errors.Is(err, domain.ErrInvalidStop) ||
		errors.Is(err, domain.ErrDuplicateLocation) ||
		errors.Is(err, domain.ErrInvalidCapacity)
}

func toStopResponse(s domain.Stop) dto.StopResponse {
	return dto.StopResponse{
		X:    s.Location.X,
		Y:    s.Location.Y,
		Size: s.Size,
		Kind: s.Kind.String(),
	}
}

func toStopResponses(stops []domain.Stop) []dto.StopResponse {
	out := make([]dto.StopResponse, 0, len(stops))
	for _, s := range stops {
		out = append(out, toStopResponse(s))
	}
	return out
}
