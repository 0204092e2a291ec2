package handler

import (
	"context"
	"log/slog"
	"net/http"
	"time"

	"github.com/Elzoidbergo/HostPilot/internal/xerrors"
	"github.com/Elzoidbergo/HostPilot/internal/xhttp"
	"github.com/Elzoidbergo/HostPilot/internal/xslog"
)

const pingTimeout = 1 * time.Second

// Pinger reports whether a backing dependency is reachable.
type Pinger interface {
	Ping(ctx context.Context) error
}

type Health struct {
	db    Pinger
	queue Pinger
}

func NewHealth(db, queue Pinger) *Health {
	return &Health{db: db, queue: queue}
}

type healthResponse struct {
	Status string `json:"status"`
}

// HandleLive handles GET /health.
func (h *Health) HandleLive(w http.ResponseWriter, _ *http.Request) {
	xhttp.WriteOK(w, healthResponse{Status: "ok"})
}

// HandleReady handles GET /ready. A 503 names the unreachable dependency so
// orchestrators can tell a database outage from a queue outage.
func (h *Health) HandleReady(w http.ResponseWriter, r *http.Request) {
	ctx, cancel := context.WithTimeout(r.Context(), pingTimeout)
	defer cancel()

	logger := xslog.FromContext(ctx)

	deps := []struct {
		name   string
		pinger Pinger
	}{
		{name: "postgres", pinger: h.db},
		{name: "redis", pinger: h.queue},
	}

	for _, dep := range deps {
		if err := dep.pinger.Ping(ctx); err != nil {
			logger.ErrorContext(ctx, "readiness probe failed",
				xslog.Error(err),
				slog.String("dependency", dep.name))
			xerrors.WriteError(ctx, w, xerrors.ServiceUnavailable(
				xerrors.WithMessage(dep.name+" unavailable"),
				xerrors.WithCause(err),
			))
			return
		}
	}

	xhttp.WriteOK(w, healthResponse{Status: "ready"})
}
