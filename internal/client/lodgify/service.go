package lodgify

import "context"

type BookingService interface {
	Get(ctx context.Context, id int64) (*Booking, error)
}

type WebhookService interface {
	Subscribe(ctx context.Context, params SubscribeParams) (*Subscription, error)
	// Unsubscribe removes a subscription by id. Removing an id that no
	// longer exists upstream is not an error.
	Unsubscribe(ctx context.Context, id string) error
	List(ctx context.Context) ([]Subscription, error)
}
