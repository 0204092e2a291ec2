package webhook

import (
	"context"
	"log/slog"
	"strconv"
	"time"

	"github.com/Elzoidbergo/HostPilot/internal/storage"
	"github.com/Elzoidbergo/HostPilot/internal/xslog"
)

const DefaultLeadTime = 72 * time.Hour

// Processor applies the dispatch policy: booking changes arriving
// inside the lead-time window produce a reservation-update record and
// a cleaner task; every other event is observed and dropped.
type Processor struct {
	updates  storage.ReservationUpdateStore
	cleaner  storage.CleanerQueue
	leadTime time.Duration
	now      func() time.Time
}

var _ Service = (*Processor)(nil)

func NewProcessor(updates storage.ReservationUpdateStore, cleaner storage.CleanerQueue, leadTime time.Duration, opts ...ProcessorOption) *Processor {
	p := &Processor{
		updates:  updates,
		cleaner:  cleaner,
		leadTime: leadTime,
		now:      time.Now,
	}
	for _, opt := range opts {
		opt(p)
	}
	return p
}

type ProcessorOption func(*Processor)

// WithClock replaces the wall clock, for tests.
func WithClock(now func() time.Time) ProcessorOption {
	return func(p *Processor) { p.now = now }
}

// Outcome tallies what Process did with a batch. Each event lands in
// exactly one bucket. A booking whose record was written but whose
// cleaner enqueue failed counts as Failed; the record is kept.
type Outcome struct {
	Persisted int
	Skipped   int
	Observed  int
	Failed    int
}

func (p *Processor) ProcessPayload(ctx context.Context, body []byte) (Outcome, error) {
	events, err := Decode(body)
	if err != nil {
		return Outcome{}, err
	}
	return p.Process(ctx, events), nil
}

// Process handles events sequentially in delivery order. Store and
// queue failures never propagate: they are logged, counted, and the
// next event runs regardless.
func (p *Processor) Process(ctx context.Context, events []Event) Outcome {
	logger := xslog.FromContext(ctx)

	var outcome Outcome
	for i, event := range events {
		switch ev := event.(type) {
		case BookingChange:
			p.processBookingChange(ctx, i, ev, &outcome)
		case RateChange:
			logger.InfoContext(ctx, "observed rate change",
				xslog.EventIndex(i),
				xslog.PropertyID(ev.PropertyID),
				xslog.Count(len(ev.RoomTypeIDs)),
			)
			outcome.Observed++
		case AvailabilityChange:
			logger.InfoContext(ctx, "observed availability change",
				xslog.EventIndex(i),
				xslog.PropertyID(ev.PropertyID),
				xslog.Start(ev.Start.Time),
				xslog.End(ev.End.Time),
			)
			outcome.Observed++
		case GuestMessageReceived:
			logger.InfoContext(ctx, "observed guest message",
				xslog.EventIndex(i),
				xslog.ThreadID(ev.ThreadID),
			)
			outcome.Observed++
		}
	}
	return outcome
}

func (p *Processor) processBookingChange(ctx context.Context, index int, ev BookingChange, outcome *Outcome) {
	logger := xslog.FromContext(ctx)

	// Strict <: a booking arriving exactly at now+leadTime is not
	// notification-worthy. Past arrivals are always inside the window.
	untilArrival := ev.Booking.Arrival.Sub(p.now())
	if untilArrival >= p.leadTime {
		logger.DebugContext(ctx, "booking outside notification window",
			xslog.EventIndex(index),
			xslog.BookingID(ev.Booking.ID),
			xslog.HoursUntilArrival(untilArrival.Hours()),
		)
		outcome.Skipped++
		return
	}

	listingID := strconv.FormatInt(ev.Booking.PropertyID, 10)

	update, err := p.updates.Create(ctx, storage.NewReservationUpdate{
		GuestName: ev.Guest.Name,
		CheckIn:   ev.Booking.Arrival.Time,
		CheckOut:  ev.Booking.Departure.Time,
		Status:    ev.Booking.Status,
		ListingID: listingID,
	})
	if err != nil {
		logger.ErrorContext(ctx, "failed to persist reservation update",
			xslog.Error(err),
			xslog.EventIndex(index),
			xslog.BookingID(ev.Booking.ID),
			xslog.ListingID(listingID),
		)
		outcome.Failed++
		return
	}

	if err := p.cleaner.Enqueue(ctx, storage.CleanerTask{
		BookingID:    ev.Booking.ID,
		ListingID:    listingID,
		PropertyName: ev.Booking.PropertyName,
		GuestName:    ev.Guest.Name,
		CheckIn:      ev.Booking.Arrival.Time,
		CheckOut:     ev.Booking.Departure.Time,
		Status:       ev.Booking.Status,
		EnqueuedAt:   p.now().UTC(),
	}); err != nil {
		logger.ErrorContext(ctx, "failed to enqueue cleaner task",
			xslog.Error(err),
			xslog.EventIndex(index),
			xslog.BookingID(ev.Booking.ID),
			xslog.ListingID(listingID),
		)
		outcome.Failed++
		return
	}

	logger.InfoContext(ctx, "recorded reservation update",
		xslog.EventIndex(index),
		xslog.BookingID(ev.Booking.ID),
		xslog.ListingID(listingID),
		xslog.HoursUntilArrival(untilArrival.Hours()),
		slog.String("update_id", update.ID),
	)
	outcome.Persisted++
}
