package lodgify

// EventType identifies a webhook event a subscription can listen for.
type EventType string

const (
	EventRateChange           EventType = "rate_change"
	EventAvailabilityChange   EventType = "availability_change"
	EventBookingChange        EventType = "booking_change"
	EventGuestMessageReceived EventType = "guest_message_received"
)

// EventTypes returns every event type hostpilot subscribes to.
func EventTypes() []EventType {
	return []EventType{
		EventRateChange,
		EventAvailabilityChange,
		EventBookingChange,
		EventGuestMessageReceived,
	}
}

func ParseEventType(s string) (EventType, bool) {
	switch EventType(s) {
	case EventRateChange, EventAvailabilityChange, EventBookingChange, EventGuestMessageReceived:
		return EventType(s), true
	default:
		return "", false
	}
}
