package storage

import (
	"context"
	"sync"
	"time"

	"github.com/google/uuid"
)

var _ ReservationUpdateStore = (*MemoryReservationStore)(nil)

// MemoryReservationStore is the in-memory store used in tests. It
// preserves insertion order and can be primed to fail.
type MemoryReservationStore struct {
	mu      sync.Mutex
	updates []ReservationUpdate
	nextErr error
}

func NewMemoryReservationStore() *MemoryReservationStore {
	return &MemoryReservationStore{}
}

func (s *MemoryReservationStore) Create(_ context.Context, upd NewReservationUpdate) (ReservationUpdate, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.nextErr != nil {
		err := s.nextErr
		s.nextErr = nil
		return ReservationUpdate{}, err
	}

	update := ReservationUpdate{
		ID:        uuid.New().String(),
		GuestName: upd.GuestName,
		CheckIn:   upd.CheckIn,
		CheckOut:  upd.CheckOut,
		Status:    upd.Status,
		CreatedAt: time.Now().UTC(),
		ListingID: upd.ListingID,
	}
	s.updates = append(s.updates, update)
	return update, nil
}

// FailNext makes the next Create call return err.
func (s *MemoryReservationStore) FailNext(err error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.nextErr = err
}

// Updates returns a copy of the stored records in insertion order.
func (s *MemoryReservationStore) Updates() []ReservationUpdate {
	s.mu.Lock()
	defer s.mu.Unlock()
	out := make([]ReservationUpdate, len(s.updates))
	copy(out, s.updates)
	return out
}

func (s *MemoryReservationStore) Ping(_ context.Context) error { return nil }

var _ CleanerQueue = (*MemoryCleanerQueue)(nil)

type MemoryCleanerQueue struct {
	mu      sync.Mutex
	tasks   []CleanerTask
	nextErr error
}

func NewMemoryCleanerQueue() *MemoryCleanerQueue {
	return &MemoryCleanerQueue{}
}

func (q *MemoryCleanerQueue) Enqueue(_ context.Context, task CleanerTask) error {
	q.mu.Lock()
	defer q.mu.Unlock()

	if q.nextErr != nil {
		err := q.nextErr
		q.nextErr = nil
		return err
	}

	q.tasks = append(q.tasks, task)
	return nil
}

// FailNext makes the next Enqueue call return err.
func (q *MemoryCleanerQueue) FailNext(err error) {
	q.mu.Lock()
	defer q.mu.Unlock()
	q.nextErr = err
}

// Tasks returns a copy of the enqueued tasks in order.
func (q *MemoryCleanerQueue) Tasks() []CleanerTask {
	q.mu.Lock()
	defer q.mu.Unlock()
	out := make([]CleanerTask, len(q.tasks))
	copy(out, q.tasks)
	return out
}

func (q *MemoryCleanerQueue) Ping(_ context.Context) error { return nil }
