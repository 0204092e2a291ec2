package webhook

// Action discriminates the webhook payloads Lodgify delivers.
type Action string

const (
	ActionBookingChange        Action = "booking_change"
	ActionRateChange           Action = "rate_change"
	ActionAvailabilityChange   Action = "availability_change"
	ActionGuestMessageReceived Action = "guest_message_received"
)

// Event is the closed set of webhook payloads hostpilot understands.
// Decode is the only constructor; exactly one variant is produced per
// payload element.
type Event interface {
	webhookEvent()
	GetAction() Action
}

type BookingChange struct {
	Booking  Booking   `json:"booking"`
	Guest    Guest     `json:"guest"`
	Order    *Order    `json:"current_order"`
	Subowner *Subowner `json:"subowner"`
}

func (e BookingChange) webhookEvent()     {}
func (e BookingChange) GetAction() Action { return ActionBookingChange }

type Booking struct {
	ID           int64     `json:"id"`
	Arrival      Timestamp `json:"arrival"`
	Departure    Timestamp `json:"departure"`
	PropertyID   int64     `json:"property_id"`
	PropertyName string    `json:"property_name"`
	Status       string    `json:"status"`
	CurrencyCode string    `json:"currency_code"`
	Rooms        []Room    `json:"rooms"`
	Source       string    `json:"source"`
	Language     string    `json:"language"`
	IsNew        bool      `json:"is_new"`
	IsDeleted    bool      `json:"is_deleted"`
}

type Room struct {
	RoomTypeID int64  `json:"room_type_id"`
	Name       string `json:"name"`
	People     int    `json:"people"`
}

// Guest sub-fields are all nullable upstream; an empty name is valid.
type Guest struct {
	Name    string `json:"name"`
	Email   string `json:"email"`
	Phone   string `json:"phone"`
	Country string `json:"country"`
}

type Order struct {
	ID          int64   `json:"id"`
	AmountGross float64 `json:"amount_gross"`
	AmountNet   float64 `json:"amount_net"`
	Currency    string  `json:"currency"`
	Status      string  `json:"status"`
}

type Subowner struct {
	ID    int64  `json:"id"`
	Name  string `json:"name"`
	Email string `json:"email"`
}

type RateChange struct {
	PropertyID  int64   `json:"property_id"`
	RoomTypeIDs []int64 `json:"room_type_ids"`
}

func (e RateChange) webhookEvent()     {}
func (e RateChange) GetAction() Action { return ActionRateChange }

type AvailabilityChange struct {
	PropertyID  int64     `json:"property_id"`
	RoomTypeIDs []int64   `json:"room_type_ids"`
	Start       Timestamp `json:"start"`
	End         Timestamp `json:"end"`
	Source      string    `json:"source"`
}

func (e AvailabilityChange) webhookEvent()     {}
func (e AvailabilityChange) GetAction() Action { return ActionAvailabilityChange }

type GuestMessageReceived struct {
	ThreadID      int64     `json:"thread_id"`
	MessageID     int64     `json:"message_id"`
	InboxID       int64     `json:"inbox_id"`
	GuestName     string    `json:"guest_name"`
	Subject       *string   `json:"subject"`
	Message       string    `json:"message"`
	CreationTime  Timestamp `json:"creation_time"`
	HasAttachment bool      `json:"has_attachment"`
	UserID        int64     `json:"user_id"`
}

func (e GuestMessageReceived) webhookEvent()     {}
func (e GuestMessageReceived) GetAction() Action { return ActionGuestMessageReceived }
