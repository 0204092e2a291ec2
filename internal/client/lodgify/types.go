package lodgify

// Booking is the read model returned by the v2 reservations API.
// Arrival and departure stay as the raw strings Lodgify sends; the
// format has no timezone and varies by account settings.
type Booking struct {
	ID           int64         `json:"id"`
	Status       string        `json:"status"`
	Source       string        `json:"source"`
	Arrival      string        `json:"arrival"`
	Departure    string        `json:"departure"`
	PropertyID   int64         `json:"property_id"`
	PropertyName string        `json:"property_name"`
	CurrencyCode string        `json:"currency_code"`
	Language     string        `json:"language"`
	Guest        *BookingGuest `json:"guest"`
	Rooms        []BookingRoom `json:"rooms"`
	TotalAmount  float64       `json:"total_amount"`
	AmountPaid   float64       `json:"amount_paid"`
	AmountDue    float64       `json:"amount_due"`
	Notes        string        `json:"notes"`
}

type BookingGuest struct {
	ID      int64  `json:"id"`
	Name    string `json:"name"`
	Email   string `json:"email"`
	Phone   string `json:"phone"`
	Country string `json:"country"`
}

type BookingRoom struct {
	RoomTypeID int64  `json:"room_type_id"`
	Name       string `json:"name"`
	People     int    `json:"people"`
}
