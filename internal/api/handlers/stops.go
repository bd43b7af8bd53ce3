package handlers

import (
	"net/http"
	"pickup-route-service/internal/api/dto"
	"pickup-route-service/internal/platform/logging"
	"pickup-route-service/internal/ports"
)

// StopHandler exposes the candidate stops of the configured source.
type StopHandler struct {
	Source ports.StopSource
}

func (h *StopHandler) List(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	deliveries, err := h.Source.DeliveryCandidates(ctx)
	if err != nil {
		logging.LogError(logging.FromContext(ctx), "list delivery candidates failed", err)
		writeError(w, r, http.StatusInternalServerError, "internal server error")
		return
	}

	pickups, err := h.Source.PickupCandidates(ctx)
	if err != nil {
		logging.LogError(logging.FromContext(ctx), "list pickup candidates failed", err)
		writeError(w, r, http.StatusInternalServerError, "internal server error")
		return
	}

	writeJSON(w, r, http.StatusOK, dto.ListStopsResponse{
		Deliveries: toStopResponses(deliveries),
		Pickups:    toStopResponses(pickups),
	})
}
