package webhook

import (
	"bytes"
	"errors"
	"fmt"

	go_json "github.com/goccy/go-json"
)

// DecodeError reports the first part of a payload that failed
// validation. Index is the element's position in the delivered batch
// (0 for a single-object payload, -1 when the payload as a whole could
// not be read). Field, when set, names the offending field.
type DecodeError struct {
	Index int
	Field string
	Want  string
	Got   string
	err   error
}

func (e *DecodeError) Error() string {
	loc := "webhook payload"
	if e.Index >= 0 {
		loc = fmt.Sprintf("webhook event %d", e.Index)
	}
	switch {
	case e.Field != "":
		return fmt.Sprintf("%s: field %q: want %s, got %s", loc, e.Field, e.Want, e.Got)
	case e.err != nil:
		return fmt.Sprintf("%s: %v", loc, e.err)
	default:
		return loc + ": invalid"
	}
}

func (e *DecodeError) Unwrap() error { return e.err }

// Fields renders the failure keyed by field path, the shape the 400
// response body carries.
func (e *DecodeError) Fields() map[string]string {
	if e.Field == "" {
		return nil
	}
	return map[string]string{e.Field: fmt.Sprintf("want %s, got %s", e.Want, e.Got)}
}

const actionWant = `one of "booking_change", "rate_change", "availability_change", "guest_message_received"`

// Decode turns a raw webhook body into typed events. A single JSON
// object is treated as a batch of one. Validation is atomic: the first
// invalid element rejects the entire payload, and the returned events
// preserve delivery order.
func Decode(data []byte) ([]Event, error) {
	trimmed := bytes.TrimSpace(data)
	if len(trimmed) == 0 {
		return nil, &DecodeError{Index: -1, err: errors.New("empty body")}
	}

	var elements []go_json.RawMessage
	switch trimmed[0] {
	case '[':
		if err := go_json.Unmarshal(trimmed, &elements); err != nil {
			return nil, &DecodeError{Index: -1, err: err}
		}
	case '{':
		elements = []go_json.RawMessage{trimmed}
	default:
		return nil, &DecodeError{Index: -1, err: errors.New("payload must be a JSON object or array of objects")}
	}

	events := make([]Event, 0, len(elements))
	for i, element := range elements {
		event, err := decodeEvent(element)
		if err != nil {
			var derr *DecodeError
			if errors.As(err, &derr) {
				derr.Index = i
				return nil, derr
			}
			return nil, &DecodeError{Index: i, err: err}
		}
		events = append(events, event)
	}
	return events, nil
}

func decodeEvent(data []byte) (Event, error) {
	data = bytes.TrimSpace(data)
	if len(data) == 0 || data[0] != '{' {
		return nil, &DecodeError{err: errors.New("event must be a JSON object")}
	}

	var envelope struct {
		Action *string `json:"action"`
	}
	if err := go_json.Unmarshal(data, &envelope); err != nil {
		return nil, typeMismatch(err)
	}
	if envelope.Action == nil {
		return nil, &DecodeError{Field: "action", Want: actionWant, Got: "missing"}
	}

	switch Action(*envelope.Action) {
	case ActionBookingChange:
		return decodeBookingChange(data)
	case ActionRateChange:
		return decodeRateChange(data)
	case ActionAvailabilityChange:
		return decodeAvailabilityChange(data)
	case ActionGuestMessageReceived:
		return decodeGuestMessageReceived(data)
	default:
		return nil, &DecodeError{
			Field: "action",
			Want:  actionWant,
			Got:   fmt.Sprintf("%q", *envelope.Action),
			err:   fmt.Errorf("%w: %q", ErrUnknownAction, *envelope.Action),
		}
	}
}

func decodeBookingChange(data []byte) (Event, error) {
	var raw struct {
		Booking  *Booking  `json:"booking"`
		Guest    *Guest    `json:"guest"`
		Order    *Order    `json:"current_order"`
		Subowner *Subowner `json:"subowner"`
	}
	if err := go_json.Unmarshal(data, &raw); err != nil {
		return nil, typeMismatch(err)
	}

	if raw.Booking == nil {
		return nil, missingField("booking", "object")
	}
	if raw.Booking.ID == 0 {
		return nil, missingField("booking.id", "integer id")
	}
	if raw.Booking.Arrival.IsZero() {
		return nil, missingField("booking.arrival", "timestamp")
	}
	if raw.Booking.Departure.IsZero() {
		return nil, missingField("booking.departure", "timestamp")
	}
	if raw.Booking.PropertyID == 0 {
		return nil, missingField("booking.property_id", "integer id")
	}
	if raw.Booking.Status == "" {
		return nil, missingField("booking.status", "string")
	}
	if raw.Guest == nil {
		return nil, missingField("guest", "object")
	}

	return BookingChange{
		Booking:  *raw.Booking,
		Guest:    *raw.Guest,
		Order:    raw.Order,
		Subowner: raw.Subowner,
	}, nil
}

func decodeRateChange(data []byte) (Event, error) {
	var raw RateChange
	if err := go_json.Unmarshal(data, &raw); err != nil {
		return nil, typeMismatch(err)
	}

	if raw.PropertyID == 0 {
		return nil, missingField("property_id", "integer id")
	}
	if raw.RoomTypeIDs == nil {
		return nil, missingField("room_type_ids", "array of integer ids")
	}

	return raw, nil
}

func decodeAvailabilityChange(data []byte) (Event, error) {
	var raw AvailabilityChange
	if err := go_json.Unmarshal(data, &raw); err != nil {
		return nil, typeMismatch(err)
	}

	if raw.PropertyID == 0 {
		return nil, missingField("property_id", "integer id")
	}
	if raw.RoomTypeIDs == nil {
		return nil, missingField("room_type_ids", "array of integer ids")
	}
	if raw.Start.IsZero() {
		return nil, missingField("start", "timestamp")
	}
	if raw.End.IsZero() {
		return nil, missingField("end", "timestamp")
	}
	if raw.Source == "" {
		return nil, missingField("source", "string")
	}

	return raw, nil
}

func decodeGuestMessageReceived(data []byte) (Event, error) {
	var raw GuestMessageReceived
	if err := go_json.Unmarshal(data, &raw); err != nil {
		return nil, typeMismatch(err)
	}

	if raw.ThreadID == 0 {
		return nil, missingField("thread_id", "integer id")
	}
	if raw.MessageID == 0 {
		return nil, missingField("message_id", "integer id")
	}
	if raw.InboxID == 0 {
		return nil, missingField("inbox_id", "integer id")
	}
	if raw.GuestName == "" {
		return nil, missingField("guest_name", "string")
	}
	if raw.Message == "" {
		return nil, missingField("message", "string")
	}
	if raw.CreationTime.IsZero() {
		return nil, missingField("creation_time", "timestamp")
	}
	if raw.UserID == 0 {
		return nil, missingField("user_id", "integer id")
	}

	return raw, nil
}

func missingField(path, want string) *DecodeError {
	return &DecodeError{Field: path, Want: want, Got: "missing"}
}

func typeMismatch(err error) *DecodeError {
	var ute *go_json.UnmarshalTypeError
	if errors.As(err, &ute) && ute.Field != "" {
		return &DecodeError{Field: ute.Field, Want: ute.Type.String(), Got: ute.Value, err: err}
	}
	return &DecodeError{err: err}
}
