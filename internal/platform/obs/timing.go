package obs

import (
	"context"
	"log/slog"
	"time"

	"pickup-route-service/internal/platform/logging"

	"github.com/go-chi/chi/v5/middleware"
)

// Time starts timing an operation and returns a func that logs its duration
// and, when errp points to a non-nil error, the failure.
//
//	defer obs.Time(ctx, "plan.route")(&err)
func Time(ctx context.Context, name string) func(errp *error) {
	start := time.Now()

	logger := logging.FromContext(ctx)
	reqID := middleware.GetReqID(ctx)

	return func(errp *error) {
		attrs := []any{
			slog.String("req_id", reqID),
			slog.String("op", name),
			slog.Int64("dur_ms", time.Since(start).Milliseconds()),
		}

		if errp != nil && *errp != nil {
			logger.Warn("operation failed", append(attrs, slog.String("error", (*errp).Error()))...)
			return
		}
		logger.Debug("operation done", attrs...)
	}
}
