package lodgify

import (
	"context"
	"fmt"
	"net/http"
)

type bookingService struct {
	client *Client
}

func (s *bookingService) Get(ctx context.Context, id int64) (*Booking, error) {
	const route = "/v2/reservations/bookings"
	path := fmt.Sprintf("%s/%d", route, id)

	var booking Booking
	if err := s.client.do(ctx, http.MethodGet, path, nil, nil, &booking); err != nil {
		return nil, err
	}
	return &booking, nil
}
