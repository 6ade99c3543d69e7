package transdirect

import (
	"fmt"
	"time"
)

// BookingRequest is an outbound quote or order. The zero value is the
// documented default: zero declared value, both tailgate flags false, no
// items, no sender or receiver.
//
// Sender and Receiver are shared with the caller rather than copied; the
// request must not outlive the accounts it points to. The client never
// retains a request after the call returns.
type BookingRequest[T Count, U Amount] struct {
	DeclaredValue    U               `json:"declared_value"`
	Referrer         string          `json:"referrer,omitempty"`
	RequestingSite   string          `json:"requesting_site,omitempty"`
	TailgatePickup   bool            `json:"tailgate_pickup"`
	TailgateDelivery bool            `json:"tailgate_delivery"`
	Items            []Product[T, U] `json:"items"`
	Sender           *Account        `json:"sender,omitempty"`
	Receiver         *Account        `json:"receiver,omitempty"`
}

// NewBookingRequest returns an empty booking request.
func NewBookingRequest[T Count, U Amount]() *BookingRequest[T, U] {
	return &BookingRequest[T, U]{}
}

// BookingResponse is a booking record returned by the API. A quote is the
// same wire object as a booking, distinguished only by status. Responses are
// fully owned by the caller; the client retains no reference to them.
//
// ID, Status, and the three timestamps are always present in a valid
// response. Connote is nil until a carrier has accepted the booking; wire
// null decodes to nil, distinct from an empty string.
type BookingResponse[T Count, U Amount] struct {
	ID                  uint32                `json:"id"`
	Status              BookingStatus         `json:"status"`
	BookedAt            time.Time             `json:"booked_at"`
	BookedBy            string                `json:"booked_by"` // expected to equal "sender"
	CreatedAt           time.Time             `json:"created_at"`
	UpdatedAt           time.Time             `json:"updated_at"`
	DeclaredValue       U                     `json:"declared_value"`
	InsuredValue        U                     `json:"insured_value"`
	Description         *string               `json:"description"`
	Items               []Product[T, U]       `json:"items"`
	Label               string                `json:"label"`
	Notifications       map[string]bool       `json:"notifications"`
	Quotes              map[string]Service[U] `json:"quotes"`
	Sender              Account               `json:"sender"`
	Receiver            Account               `json:"receiver"`
	PickupWindow        []string              `json:"pickup_window"` // date strings, not yet parsed
	Connote             *string               `json:"connote"`
	ChargedWeight       T                     `json:"charged_weight"`
	ScannedWeight       T                     `json:"scanned_weight"`
	SpecialInstructions string                `json:"special_instructions"`
	TailgateDelivery    bool                  `json:"tailgate_delivery"`
}

// validate checks the fields the API never omits.
func (r *BookingResponse[T, U]) validate() error {
	if r.ID == 0 {
		return fmt.Errorf("booking response missing id")
	}
	if r.Status == "" {
		return fmt.Errorf("booking response missing status")
	}
	if r.BookedAt.IsZero() || r.CreatedAt.IsZero() || r.UpdatedAt.IsZero() {
		return fmt.Errorf("booking response missing timestamps")
	}
	return nil
}
