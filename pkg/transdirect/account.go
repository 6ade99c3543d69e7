package transdirect

// Account is a party to a shipment, sender or receiver. Accounts have no
// identity beyond their field values and are immutable once constructed.
// Booking requests share accounts by pointer; booking responses embed them
// by value.
type Account struct {
	Address     string `json:"address"`
	Name        string `json:"name"`
	Email       string `json:"email"`
	Postcode    int    `json:"postcode"`
	State       string `json:"state"`
	Suburb      string `json:"suburb"`
	Kind        string `json:"kind"` // "residential" or "business"; open vocabulary
	Country     string `json:"country"`
	CompanyName string `json:"company_name"`
}

// Member is the authenticated member profile returned by the member
// endpoint. Fetching it is how Authenticate verifies credentials.
type Member struct {
	ID          uint32 `json:"id"`
	Name        string `json:"name"`
	Email       string `json:"email"`
	Address     string `json:"address"`
	Postcode    int    `json:"postcode"`
	State       string `json:"state"`
	Suburb      string `json:"suburb"`
	Country     string `json:"country"`
	CompanyName string `json:"company_name"`
}
