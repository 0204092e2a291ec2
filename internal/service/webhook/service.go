package webhook

import (
	"context"
	"errors"
)

var ErrUnknownAction = errors.New("unknown webhook action")

type Service interface {
	// ProcessPayload decodes the raw webhook body and applies the
	// dispatch policy to each event in delivery order.
	// Returns a *DecodeError (and an empty Outcome) when the payload is
	// rejected; nothing is processed in that case.
	// Per-event store and queue failures are logged and absorbed into
	// the Outcome instead of failing the batch.
	ProcessPayload(ctx context.Context, body []byte) (Outcome, error)
}
