package transdirect

import "encoding/json"

// BookingStatus is the lifecycle state of a booking as reported by the
// Transdirect API. Wire values are lower-snake-case tokens.
//
// The remote vocabulary is expected to grow before this client is updated,
// so consumers switching on a BookingStatus must keep a default arm and
// treat ParseBookingStatus failures as recoverable.
type BookingStatus string

const (
	StatusNew            BookingStatus = "new"
	StatusPendingPayment BookingStatus = "pending_payment"
	StatusPaid           BookingStatus = "paid"
	StatusRequestSent    BookingStatus = "request_sent"
	StatusReviewed       BookingStatus = "reviewed"
	StatusConfirmed      BookingStatus = "confirmed"
	StatusCancelled      BookingStatus = "cancelled"
	StatusPendingReview  BookingStatus = "pending_review"
	StatusRequestFailed  BookingStatus = "request_failed"
	StatusBookedManually BookingStatus = "booked_manually"
)

// DefaultStatus is the status of a freshly created booking.
const DefaultStatus = StatusNew

var knownStatuses = []BookingStatus{
	StatusNew,
	StatusPendingPayment,
	StatusPaid,
	StatusRequestSent,
	StatusReviewed,
	StatusConfirmed,
	StatusCancelled,
	StatusPendingReview,
	StatusRequestFailed,
	StatusBookedManually,
}

// KnownStatuses returns all statuses this client version recognises.
func KnownStatuses() []BookingStatus {
	out := make([]BookingStatus, len(knownStatuses))
	copy(out, knownStatuses)
	return out
}

// ParseBookingStatus converts a wire token to a BookingStatus. Matching is
// exact: no case folding, no trimming. An unrecognised token fails with
// *UnknownStatusError rather than falling back to a default, so callers can
// distinguish "structurally valid but unknown" from transport failures.
func ParseBookingStatus(token string) (BookingStatus, error) {
	s := BookingStatus(token)
	if !s.Known() {
		return "", &UnknownStatusError{Token: token}
	}
	return s, nil
}

// Known reports whether the status is in this client's vocabulary.
func (s BookingStatus) Known() bool {
	for _, known := range knownStatuses {
		if s == known {
			return true
		}
	}
	return false
}

// String returns the wire token. It is the exact inverse of
// ParseBookingStatus for every known status.
func (s BookingStatus) String() string {
	return string(s)
}

// UnmarshalJSON parses the wire token through ParseBookingStatus, so an
// unknown token surfaces as *UnknownStatusError instead of a silent default.
func (s *BookingStatus) UnmarshalJSON(data []byte) error {
	var token string
	if err := json.Unmarshal(data, &token); err != nil {
		return err
	}
	parsed, err := ParseBookingStatus(token)
	if err != nil {
		return err
	}
	*s = parsed
	return nil
}
