package handler

import (
	"errors"
	"io"
	"log/slog"
	"net/http"

	"github.com/Elzoidbergo/HostPilot/internal/service/webhook"
	"github.com/Elzoidbergo/HostPilot/internal/xerrors"
	"github.com/Elzoidbergo/HostPilot/internal/xhttp"
	"github.com/Elzoidbergo/HostPilot/internal/xslog"
)

type Webhook struct {
	service webhook.Service
}

func NewWebhook(service webhook.Service) *Webhook {
	return &Webhook{service: service}
}

type webhookResponse struct {
	Message string `json:"message"`
}

// HandleWebhook handles POST /webhooks/lodgify requests.
//
// A payload that fails to decode is rejected as a whole with 400; a payload
// that decodes is acknowledged with 200 even when individual events fail
// downstream, so Lodgify does not retry the batch.
func (h *Webhook) HandleWebhook(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	logger := xslog.FromContext(ctx)

	body, err := io.ReadAll(r.Body)
	if err != nil {
		logger.ErrorContext(ctx, "failed to read webhook body", xslog.Error(err))
		xerrors.WriteError(ctx, w, xerrors.BadRequest(xerrors.WithMessage("failed to read request body")))
		return
	}

	outcome, err := h.service.ProcessPayload(ctx, body)
	if err != nil {
		var derr *webhook.DecodeError
		if errors.As(err, &derr) {
			// derr.Error() locates the failure ("webhook event N: ...") so the
			// sender can tell which element of a batch was rejected.
			xerrors.WriteError(ctx, w, xerrors.BadRequest(
				xerrors.WithMessage(derr.Error()),
				xerrors.WithFields(derr.Fields()),
				xerrors.WithCause(derr),
			))
			return
		}

		logger.ErrorContext(ctx, "failed to process webhook", xslog.Error(err))
		xerrors.WriteError(ctx, w, xerrors.Internal(xerrors.WithMessage("failed to process webhook"), xerrors.WithCause(err)))
		return
	}

	logger.InfoContext(ctx, "webhook processed",
		slog.Int("persisted", outcome.Persisted),
		slog.Int("skipped", outcome.Skipped),
		slog.Int("observed", outcome.Observed),
		slog.Int("failed", outcome.Failed),
	)

	xhttp.WriteOK(w, webhookResponse{Message: "Event(s) processed"})
}
