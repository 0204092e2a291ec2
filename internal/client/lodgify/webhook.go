package lodgify

import (
	"context"
	"errors"
	"net/http"

	"github.com/Elzoidbergo/HostPilot/internal/xslog"
)

type webhookService struct {
	client *Client
}

type SubscribeParams struct {
	Event     EventType `json:"event"`
	TargetURL string    `json:"target_url"`
}

type Subscription struct {
	ID        string    `json:"id"`
	Event     EventType `json:"event"`
	TargetURL string    `json:"target_url"`
}

func (s *webhookService) Subscribe(ctx context.Context, params SubscribeParams) (*Subscription, error) {
	const route = "/webhooks/v1/subscribe"

	var resp struct {
		ID string `json:"id"`
	}
	if err := s.client.do(ctx, http.MethodPost, route, nil, params, &resp); err != nil {
		return nil, err
	}

	return &Subscription{
		ID:        resp.ID,
		Event:     params.Event,
		TargetURL: params.TargetURL,
	}, nil
}

func (s *webhookService) Unsubscribe(ctx context.Context, id string) error {
	const route = "/webhooks/v1/unsubscribe"

	body := struct {
		ID string `json:"id"`
	}{ID: id}

	err := s.client.do(ctx, http.MethodPost, route, nil, body, nil)

	// Lodgify 404s on unknown ids; the subscription is gone either way.
	var apiErr *APIError
	if errors.As(err, &apiErr) && apiErr.StatusCode == http.StatusNotFound {
		s.client.logger.DebugContext(ctx, "webhook subscription already removed",
			xslog.SubscriptionID(id),
		)
		return nil
	}

	return err
}

func (s *webhookService) List(ctx context.Context) ([]Subscription, error) {
	const route = "/webhooks/v1/list"

	var subs []Subscription
	if err := s.client.do(ctx, http.MethodGet, route, nil, nil, &subs); err != nil {
		return nil, err
	}
	return subs, nil
}
