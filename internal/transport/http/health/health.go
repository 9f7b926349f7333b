package health

import (
	"context"
	"net/http"
	"time"

	"github.com/you-humble/carwash/platform/logger"
)

type Pinger interface {
	Ping(ctx context.Context) error
}

const pingTimeout = 2 * time.Second

// Handler answers SERVING while the database answers pings.
func Handler(db Pinger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		ctx, cancel := context.WithTimeout(r.Context(), pingTimeout)
		defer cancel()

		if err := db.Ping(ctx); err != nil {
			logger.Warn(r.Context(), "health check: database unreachable", logger.ErrorF(err))
			w.WriteHeader(http.StatusServiceUnavailable)
			if _, err := w.Write([]byte("NOT_SERVING")); err != nil {
				logger.Error(r.Context(), "health check", logger.ErrorF(err))
			}
			return
		}

		if _, err := w.Write([]byte("SERVING")); err != nil {
			logger.Error(r.Context(), "health check", logger.ErrorF(err))
		}
	}
}
