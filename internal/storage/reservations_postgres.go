package storage

import (
	"context"
	"fmt"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgtype"
	"github.com/jackc/pgx/v5/pgxpool"
)

const insertReservationUpdate = `
INSERT INTO reservation_updates (id, guest_name, check_in, check_out, status, listing_id)
VALUES ($1, $2, $3, $4, $5, $6)
RETURNING created_at`

var _ ReservationUpdateStore = (*PostgresReservationStore)(nil)

type PostgresReservationStore struct {
	pool *pgxpool.Pool
}

func NewPostgresReservationStore(pool *pgxpool.Pool) *PostgresReservationStore {
	return &PostgresReservationStore{pool: pool}
}

func (s *PostgresReservationStore) Create(ctx context.Context, upd NewReservationUpdate) (ReservationUpdate, error) {
	id := uuid.New().String()

	var createdAt pgtype.Timestamptz
	err := s.pool.QueryRow(ctx, insertReservationUpdate,
		id,
		upd.GuestName,
		pgtype.Timestamptz{Time: upd.CheckIn, Valid: true},
		pgtype.Timestamptz{Time: upd.CheckOut, Valid: true},
		upd.Status,
		upd.ListingID,
	).Scan(&createdAt)
	if err != nil {
		return ReservationUpdate{}, fmt.Errorf("insert reservation update: %w", err)
	}

	return ReservationUpdate{
		ID:        id,
		GuestName: upd.GuestName,
		CheckIn:   upd.CheckIn,
		CheckOut:  upd.CheckOut,
		Status:    upd.Status,
		CreatedAt: createdAt.Time,
		ListingID: upd.ListingID,
	}, nil
}

func (s *PostgresReservationStore) Ping(ctx context.Context) error {
	return s.pool.Ping(ctx)
}
