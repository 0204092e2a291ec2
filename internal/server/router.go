package server

import (
	"log/slog"
	"net/http"

	"github.com/Elzoidbergo/HostPilot/internal/server/handler"
	"github.com/Elzoidbergo/HostPilot/internal/xhttp/middleware"
)

// Deps carries the wired handlers the router exposes.
type Deps struct {
	Logger  *slog.Logger
	Webhook *handler.Webhook
	Booking *handler.Booking
	Health  *handler.Health
}

// NewRouter builds the routing table and wraps it in the shared middleware
// chain. Method-scoped patterns make the mux answer mismatched verbs with
// 405 and an Allow header.
func NewRouter(d Deps) http.Handler {
	mux := http.NewServeMux()

	mux.HandleFunc("POST /webhooks/lodgify", d.Webhook.HandleWebhook)
	mux.HandleFunc("GET /api/bookings/{id}", d.Booking.HandleGetBooking)
	mux.HandleFunc("GET /health", d.Health.HandleLive)
	mux.HandleFunc("GET /ready", d.Health.HandleReady)

	// RequestID must precede Logger so the per-request logger picks up the id.
	return middleware.Chain(mux,
		middleware.Recovery,
		middleware.RequestID(),
		middleware.Logger(d.Logger),
		middleware.Logging,
		middleware.Gzip,
		middleware.SecurityHeaders,
	)
}
