package storage

import (
	"context"
	"time"
)

// ReservationUpdate is an append-only record of a booking change that
// fell inside the notification window. Rows are never updated or
// deleted by this system.
type ReservationUpdate struct {
	ID        string    `json:"id"`
	GuestName string    `json:"guest_name"`
	CheckIn   time.Time `json:"check_in"`
	CheckOut  time.Time `json:"check_out"`
	Status    string    `json:"status"`
	CreatedAt time.Time `json:"created_at"`
	ListingID string    `json:"listing_id"`
}

// NewReservationUpdate carries the caller-supplied fields of a record.
// The store assigns ID and CreatedAt.
type NewReservationUpdate struct {
	GuestName string
	CheckIn   time.Time
	CheckOut  time.Time
	Status    string
	ListingID string
}

type ReservationUpdateStore interface {
	Create(ctx context.Context, upd NewReservationUpdate) (ReservationUpdate, error)
}

// CleanerTask tells the downstream cleaning workflow that a stay needs
// attention. Consumption happens outside this system.
type CleanerTask struct {
	BookingID    int64     `json:"booking_id"`
	ListingID    string    `json:"listing_id"`
	PropertyName string    `json:"property_name"`
	GuestName    string    `json:"guest_name"`
	CheckIn      time.Time `json:"check_in"`
	CheckOut     time.Time `json:"check_out"`
	Status       string    `json:"status"`
	EnqueuedAt   time.Time `json:"enqueued_at"`
}

type CleanerQueue interface {
	Enqueue(ctx context.Context, task CleanerTask) error
}
