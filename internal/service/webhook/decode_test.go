package webhook

import (
	"errors"
	"testing"
	"time"

	go_json "github.com/goccy/go-json"
)

const validBookingChange = `{
	"action": "booking_change",
	"booking": {
		"id": 4872175,
		"arrival": "2026-09-12T16:00:00Z",
		"departure": "2026-09-15T10:00:00Z",
		"property_id": 333495,
		"property_name": "Seaside Cottage",
		"status": "Booked",
		"currency_code": "EUR",
		"rooms": [{"room_type_id": 551, "name": "Whole cottage", "people": 4}],
		"source": "Manual",
		"language": "EN",
		"is_new": true,
		"is_deleted": false
	},
	"guest": {"name": "Nora Berg", "email": "nora@example.com", "phone": "+4791234567", "country": "NO"}
}`

const validRateChange = `{
	"action": "rate_change",
	"property_id": 333495,
	"room_type_ids": [551, 552]
}`

const validAvailabilityChange = `{
	"action": "availability_change",
	"property_id": 333495,
	"room_type_ids": [551],
	"start": "2026-10-01",
	"end": "2026-10-08",
	"source": "Manual"
}`

const validGuestMessage = `{
	"action": "guest_message_received",
	"thread_id": 88121,
	"message_id": 991242,
	"inbox_id": 17,
	"guest_name": "Nora Berg",
	"subject": "Arrival time",
	"message": "We land at 14:30, is early check-in possible?",
	"creation_time": "2026-08-20T09:15:00Z",
	"has_attachment": false,
	"user_id": 5150
}`

func TestDecodeSingleObject(t *testing.T) {
	t.Parallel()

	events, err := Decode([]byte(validBookingChange))
	if err != nil {
		t.Fatalf("Decode() error = %v", err)
	}
	if len(events) != 1 {
		t.Fatalf("Decode() returned %d events, want 1", len(events))
	}

	ev, ok := events[0].(BookingChange)
	if !ok {
		t.Fatalf("events[0] = %T, want BookingChange", events[0])
	}
	if ev.GetAction() != ActionBookingChange {
		t.Errorf("GetAction() = %q, want %q", ev.GetAction(), ActionBookingChange)
	}
	if ev.Booking.ID != 4872175 {
		t.Errorf("Booking.ID = %d, want 4872175", ev.Booking.ID)
	}
	wantArrival := time.Date(2026, 9, 12, 16, 0, 0, 0, time.UTC)
	if !ev.Booking.Arrival.Equal(wantArrival) {
		t.Errorf("Booking.Arrival = %v, want %v", ev.Booking.Arrival, wantArrival)
	}
	if ev.Booking.Status != "Booked" {
		t.Errorf("Booking.Status = %q, want %q", ev.Booking.Status, "Booked")
	}
	if ev.Guest.Name != "Nora Berg" {
		t.Errorf("Guest.Name = %q, want %q", ev.Guest.Name, "Nora Berg")
	}
	if len(ev.Booking.Rooms) != 1 || ev.Booking.Rooms[0].RoomTypeID != 551 {
		t.Errorf("Booking.Rooms = %+v, want one room with type 551", ev.Booking.Rooms)
	}
	if ev.Order != nil {
		t.Errorf("Order = %+v, want nil when absent", ev.Order)
	}
}

func TestDecodeBatchPreservesOrder(t *testing.T) {
	t.Parallel()

	payload := "[" + validRateChange + "," + validBookingChange + "," + validGuestMessage + "]"

	events, err := Decode([]byte(payload))
	if err != nil {
		t.Fatalf("Decode() error = %v", err)
	}
	if len(events) != 3 {
		t.Fatalf("Decode() returned %d events, want 3", len(events))
	}

	wantActions := []Action{ActionRateChange, ActionBookingChange, ActionGuestMessageReceived}
	for i, want := range wantActions {
		if got := events[i].GetAction(); got != want {
			t.Errorf("events[%d].GetAction() = %q, want %q", i, got, want)
		}
	}
}

func TestDecodeEmptyArray(t *testing.T) {
	t.Parallel()

	events, err := Decode([]byte(`[]`))
	if err != nil {
		t.Fatalf("Decode() error = %v", err)
	}
	if len(events) != 0 {
		t.Errorf("Decode() returned %d events, want 0", len(events))
	}
}

func TestDecodeUnknownActionRejectsBatch(t *testing.T) {
	t.Parallel()

	payload := "[" + validBookingChange + "," + validRateChange + `,{"action": "pet_checked_in"}]`

	events, err := Decode([]byte(payload))
	if events != nil {
		t.Errorf("Decode() returned %d events, want none", len(events))
	}

	var derr *DecodeError
	if !errors.As(err, &derr) {
		t.Fatalf("Decode() error = %v, want *DecodeError", err)
	}
	if !errors.Is(err, ErrUnknownAction) {
		t.Errorf("Decode() error = %v, want ErrUnknownAction in chain", err)
	}
	if derr.Index != 2 {
		t.Errorf("Index = %d, want 2", derr.Index)
	}
	if derr.Field != "action" {
		t.Errorf("Field = %q, want %q", derr.Field, "action")
	}
}

func TestDecodeEmptyAction(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name    string
		payload string
		wantGot string
	}{
		{name: "absent key", payload: `{"booking": {"id": 1}}`, wantGot: "missing"},
		{name: "null", payload: `{"action": null}`, wantGot: "missing"},
		{name: "empty string", payload: `{"action": ""}`, wantGot: `""`},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			_, err := Decode([]byte(tt.payload))
			var derr *DecodeError
			if !errors.As(err, &derr) {
				t.Fatalf("Decode() error = %v, want *DecodeError", err)
			}
			if derr.Field != "action" {
				t.Errorf("Field = %q, want %q", derr.Field, "action")
			}
			if derr.Got != tt.wantGot {
				t.Errorf("Got = %q, want %q", derr.Got, tt.wantGot)
			}
		})
	}
}

func TestDecodeMissingRequiredFields(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name      string
		payload   string
		wantField string
	}{
		{
			name:      "missing action",
			payload:   `{"booking": {"id": 1}}`,
			wantField: "action",
		},
		{
			name:      "booking change without booking",
			payload:   `{"action": "booking_change", "guest": {"name": "A"}}`,
			wantField: "booking",
		},
		{
			name: "booking change without arrival",
			payload: `{"action": "booking_change",
				"booking": {"id": 1, "departure": "2026-09-15T10:00:00Z", "property_id": 2, "status": "Booked"},
				"guest": {}}`,
			wantField: "booking.arrival",
		},
		{
			name: "booking change with null arrival",
			payload: `{"action": "booking_change",
				"booking": {"id": 1, "arrival": null, "departure": "2026-09-15T10:00:00Z", "property_id": 2, "status": "Booked"},
				"guest": {}}`,
			wantField: "booking.arrival",
		},
		{
			name: "booking change without status",
			payload: `{"action": "booking_change",
				"booking": {"id": 1, "arrival": "2026-09-12T16:00:00Z", "departure": "2026-09-15T10:00:00Z", "property_id": 2},
				"guest": {}}`,
			wantField: "booking.status",
		},
		{
			name: "booking change without guest",
			payload: `{"action": "booking_change",
				"booking": {"id": 1, "arrival": "2026-09-12T16:00:00Z", "departure": "2026-09-15T10:00:00Z", "property_id": 2, "status": "Booked"}}`,
			wantField: "guest",
		},
		{
			name:      "rate change without property",
			payload:   `{"action": "rate_change", "room_type_ids": [1]}`,
			wantField: "property_id",
		},
		{
			name:      "rate change without room types",
			payload:   `{"action": "rate_change", "property_id": 1}`,
			wantField: "room_type_ids",
		},
		{
			name:      "availability change without window end",
			payload:   `{"action": "availability_change", "property_id": 1, "room_type_ids": [], "start": "2026-10-01", "source": "Manual"}`,
			wantField: "end",
		},
		{
			name:      "guest message without creation time",
			payload:   `{"action": "guest_message_received", "thread_id": 1, "message_id": 2, "inbox_id": 3, "guest_name": "A", "message": "hi", "user_id": 4}`,
			wantField: "creation_time",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			_, err := Decode([]byte(tt.payload))
			var derr *DecodeError
			if !errors.As(err, &derr) {
				t.Fatalf("Decode() error = %v, want *DecodeError", err)
			}
			if derr.Field != tt.wantField {
				t.Errorf("Field = %q, want %q", derr.Field, tt.wantField)
			}
			if derr.Index != 0 {
				t.Errorf("Index = %d, want 0", derr.Index)
			}
			if fields := derr.Fields(); fields[tt.wantField] == "" {
				t.Errorf("Fields() = %v, want detail under %q", fields, tt.wantField)
			}
		})
	}
}

func TestDecodeFieldTypeMismatch(t *testing.T) {
	t.Parallel()

	payload := `{"action": "rate_change", "property_id": "333495", "room_type_ids": [551]}`

	events, err := Decode([]byte(payload))
	if events != nil {
		t.Errorf("Decode() returned %d events, want none", len(events))
	}

	var derr *DecodeError
	if !errors.As(err, &derr) {
		t.Fatalf("Decode() error = %v, want *DecodeError", err)
	}
	if derr.Index != 0 {
		t.Errorf("Index = %d, want 0", derr.Index)
	}
	if derr.Field != "PropertyID" {
		t.Errorf("Field = %q, want %q", derr.Field, "PropertyID")
	}
	if derr.Want != "int64" {
		t.Errorf("Want = %q, want %q", derr.Want, "int64")
	}
	if derr.Got != `number "` {
		t.Errorf("Got = %q, want %q", derr.Got, `number "`)
	}

	var ute *go_json.UnmarshalTypeError
	if !errors.As(err, &ute) {
		t.Errorf("Decode() error = %v, want the decoder's type error in the chain", err)
	}
}

func TestDecodeRejectsNonObjectPayloads(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name    string
		payload string
	}{
		{name: "empty body", payload: ``},
		{name: "null", payload: `null`},
		{name: "string", payload: `"booking_change"`},
		{name: "number", payload: `42`},
		{name: "bool", payload: `true`},
		{name: "not json", payload: `{"action": "booking_change"`},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			events, err := Decode([]byte(tt.payload))
			if events != nil {
				t.Errorf("Decode() returned events for invalid payload")
			}
			var derr *DecodeError
			if !errors.As(err, &derr) {
				t.Fatalf("Decode() error = %v, want *DecodeError", err)
			}
		})
	}
}

func TestDecodeRejectsNonObjectElement(t *testing.T) {
	t.Parallel()

	payload := "[" + validRateChange + `, 42]`

	_, err := Decode([]byte(payload))
	var derr *DecodeError
	if !errors.As(err, &derr) {
		t.Fatalf("Decode() error = %v, want *DecodeError", err)
	}
	if derr.Index != 1 {
		t.Errorf("Index = %d, want 1", derr.Index)
	}
}

func TestDecodeIgnoresUnknownFields(t *testing.T) {
	t.Parallel()

	payload := `{
		"action": "rate_change",
		"property_id": 333495,
		"room_type_ids": [551],
		"experimental_flag": true,
		"metadata": {"source": "v3"}
	}`

	events, err := Decode([]byte(payload))
	if err != nil {
		t.Fatalf("Decode() error = %v", err)
	}
	ev, ok := events[0].(RateChange)
	if !ok {
		t.Fatalf("events[0] = %T, want RateChange", events[0])
	}
	if ev.PropertyID != 333495 {
		t.Errorf("PropertyID = %d, want 333495", ev.PropertyID)
	}
}

func TestDecodeNullableFields(t *testing.T) {
	t.Parallel()

	payload := `{
		"action": "guest_message_received",
		"thread_id": 88121,
		"message_id": 991242,
		"inbox_id": 17,
		"guest_name": "Nora Berg",
		"subject": null,
		"message": "hello",
		"creation_time": "2026-08-20 09:15:00",
		"has_attachment": false,
		"user_id": 5150
	}`

	events, err := Decode([]byte(payload))
	if err != nil {
		t.Fatalf("Decode() error = %v", err)
	}
	ev, ok := events[0].(GuestMessageReceived)
	if !ok {
		t.Fatalf("events[0] = %T, want GuestMessageReceived", events[0])
	}
	if ev.Subject != nil {
		t.Errorf("Subject = %v, want nil for JSON null", *ev.Subject)
	}
}

func TestDecodeEmptyGuestName(t *testing.T) {
	t.Parallel()

	payload := `{
		"action": "booking_change",
		"booking": {"id": 1, "arrival": "2026-09-12T16:00:00Z", "departure": "2026-09-15T10:00:00Z", "property_id": 2, "status": "Open"},
		"guest": {"name": "", "email": null}
	}`

	events, err := Decode([]byte(payload))
	if err != nil {
		t.Fatalf("Decode() error = %v", err)
	}
	ev := events[0].(BookingChange)
	if ev.Guest.Name != "" {
		t.Errorf("Guest.Name = %q, want empty", ev.Guest.Name)
	}
}

func TestTimestampFormats(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name  string
		input string
		want  time.Time
	}{
		{
			name:  "rfc3339",
			input: `"2026-09-12T16:00:00Z"`,
			want:  time.Date(2026, 9, 12, 16, 0, 0, 0, time.UTC),
		},
		{
			name:  "rfc3339 with offset normalizes to UTC",
			input: `"2026-09-12T18:00:00+02:00"`,
			want:  time.Date(2026, 9, 12, 16, 0, 0, 0, time.UTC),
		},
		{
			name:  "no zone",
			input: `"2026-09-12T16:00:00"`,
			want:  time.Date(2026, 9, 12, 16, 0, 0, 0, time.UTC),
		},
		{
			name:  "space separator",
			input: `"2026-09-12 16:00:00"`,
			want:  time.Date(2026, 9, 12, 16, 0, 0, 0, time.UTC),
		},
		{
			name:  "bare date",
			input: `"2026-09-12"`,
			want:  time.Date(2026, 9, 12, 0, 0, 0, 0, time.UTC),
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			var ts Timestamp
			if err := go_json.Unmarshal([]byte(tt.input), &ts); err != nil {
				t.Fatalf("Unmarshal(%s) error = %v", tt.input, err)
			}
			if !ts.Equal(tt.want) {
				t.Errorf("Unmarshal(%s) = %v, want %v", tt.input, ts.Time, tt.want)
			}
			if ts.Location() != time.UTC {
				t.Errorf("Unmarshal(%s) location = %v, want UTC", tt.input, ts.Location())
			}
		})
	}
}

func TestTimestampRejectsGarbage(t *testing.T) {
	t.Parallel()

	var ts Timestamp
	if err := go_json.Unmarshal([]byte(`"next tuesday"`), &ts); err == nil {
		t.Error("Unmarshal(garbage) error = nil, want error")
	}
}
