package transdirect

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"strconv"
	"strings"
	"sync"
	"sync/atomic"
	"time"

	"github.com/google/uuid"
)

// MockAPIClient is a mock implementation of APIClient for testing. Like the
// live API it rejects calls made without standing credentials, which makes
// the auth ordering of Client observable in tests.
type MockAPIClient struct {
	SimulateErrors  bool
	SimulateLatency time.Duration

	OnGet  func(ctx context.Context, path string) ([]byte, error)
	OnPost func(ctx context.Context, path string, body []byte) ([]byte, error)

	nextID atomic.Uint32

	mu    sync.Mutex
	creds Credentials
}

// NewMockAPIClient creates a new mock API client with default behavior.
func NewMockAPIClient() *MockAPIClient {
	m := &MockAPIClient{}
	m.nextID.Store(428000)
	return m
}

// SetCredentials replaces the standing credentials.
func (m *MockAPIClient) SetCredentials(creds Credentials) {
	m.mu.Lock()
	m.creds = creds
	m.mu.Unlock()
}

// Authenticated reports whether credentials are currently attached.
func (m *MockAPIClient) Authenticated() bool {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.creds != nil
}

// Get serves canned responses for the member and booking endpoints.
func (m *MockAPIClient) Get(ctx context.Context, path string) ([]byte, error) {
	if m.SimulateLatency > 0 {
		time.Sleep(m.SimulateLatency)
	}

	if m.SimulateErrors {
		return nil, NewHTTPError("simulated API error").WithStatusCode(http.StatusInternalServerError)
	}

	if m.OnGet != nil {
		return m.OnGet(ctx, path)
	}

	if !m.Authenticated() {
		return nil, NewHTTPError("authentication required").WithStatusCode(http.StatusUnauthorized)
	}

	switch {
	case path == memberPath:
		return m.mockMemberBody()
	case strings.HasPrefix(path, bookingsPath+"/"):
		id, err := strconv.ParseUint(strings.TrimPrefix(path, bookingsPath+"/"), 10, 32)
		if err != nil {
			return nil, NewHTTPError("booking not found").WithStatusCode(http.StatusNotFound)
		}
		return m.mockBookingBody(uint32(id), nil)
	default:
		return nil, NewHTTPError("not found").WithStatusCode(http.StatusNotFound)
	}
}

// Post serves the booking-creation endpoint, echoing the submitted request
// into the returned booking record.
func (m *MockAPIClient) Post(ctx context.Context, path string, body []byte) ([]byte, error) {
	if m.SimulateLatency > 0 {
		time.Sleep(m.SimulateLatency)
	}

	if m.SimulateErrors {
		return nil, NewHTTPError("simulated API error").WithStatusCode(http.StatusInternalServerError)
	}

	if m.OnPost != nil {
		return m.OnPost(ctx, path, body)
	}

	if !m.Authenticated() {
		return nil, NewHTTPError("authentication required").WithStatusCode(http.StatusUnauthorized)
	}

	if path != bookingsPath {
		return nil, NewHTTPError("not found").WithStatusCode(http.StatusNotFound)
	}

	return m.mockBookingBody(m.nextID.Add(1), body)
}

func (m *MockAPIClient) mockMemberBody() ([]byte, error) {
	return json.Marshal(Member{
		ID:          90001,
		Name:        "Test Member",
		Email:       "member@example.com",
		Address:     "8 Dock Rd",
		Postcode:    3000,
		State:       "VIC",
		Suburb:      "Melbourne",
		Country:     "AU",
		CompanyName: "Mock Freight Pty Ltd",
	})
}

// mockBookingBody builds a booking record. When a request body is supplied,
// its declared value, items, accounts, and tailgate flags are echoed back
// the way the live API does for a fresh quote.
func (m *MockAPIClient) mockBookingBody(id uint32, reqBody []byte) ([]byte, error) {
	declaredValue := json.RawMessage("0")
	items := json.RawMessage("[]")
	sender := mustMarshal(mockSender())
	receiver := mustMarshal(mockReceiver())
	tailgateDelivery := false

	if reqBody != nil {
		var req struct {
			DeclaredValue    json.RawMessage `json:"declared_value"`
			Items            json.RawMessage `json:"items"`
			Sender           json.RawMessage `json:"sender"`
			Receiver         json.RawMessage `json:"receiver"`
			TailgateDelivery bool            `json:"tailgate_delivery"`
		}
		if err := json.Unmarshal(reqBody, &req); err != nil {
			return nil, NewHTTPError("invalid booking request").WithStatusCode(http.StatusBadRequest).WithCause(err)
		}
		if len(req.DeclaredValue) > 0 && string(req.DeclaredValue) != "null" {
			declaredValue = req.DeclaredValue
		}
		if len(req.Items) > 0 && string(req.Items) != "null" {
			items = req.Items
		}
		if len(req.Sender) > 0 && string(req.Sender) != "null" {
			sender = req.Sender
		}
		if len(req.Receiver) > 0 && string(req.Receiver) != "null" {
			receiver = req.Receiver
		}
		tailgateDelivery = req.TailgateDelivery
	}

	now := time.Now().UTC()
	labelRef := uuid.New().String()[:8]

	return json.Marshal(map[string]any{
		"id":             id,
		"status":         "new",
		"booked_at":      now.Format(time.RFC3339),
		"booked_by":      "sender",
		"created_at":     now.Format(time.RFC3339),
		"updated_at":     now.Format(time.RFC3339),
		"declared_value": declaredValue,
		"insured_value":  declaredValue,
		"description":    nil,
		"items":          items,
		"label":          fmt.Sprintf("https://downloads.transdirect.com.au/labels/%s.pdf", labelRef),
		"notifications": map[string]bool{
			"email": true,
			"sms":   false,
		},
		"quotes": map[string]any{
			"toll": map[string]any{
				"total":        58.65,
				"transit_time": "2-5 days",
				"pickup_dates": []string{
					now.AddDate(0, 0, 1).Format("2006-01-02"),
					now.AddDate(0, 0, 2).Format("2006-01-02"),
				},
				"pickup_time": "Between 9am and 5pm",
			},
			"couriers_please": map[string]any{
				"total":        63.10,
				"transit_time": "1-3 days",
				"pickup_dates": []string{
					now.AddDate(0, 0, 1).Format("2006-01-02"),
				},
				"pickup_time": "Between 12pm and 5pm",
			},
		},
		"sender":   sender,
		"receiver": receiver,
		"pickup_window": []string{
			now.AddDate(0, 0, 1).Format("2006-01-02"),
			now.AddDate(0, 0, 3).Format("2006-01-02"),
		},
		"connote":              nil,
		"charged_weight":       0,
		"scanned_weight":       0,
		"special_instructions": "",
		"tailgate_delivery":    tailgateDelivery,
	})
}

func mockSender() Account {
	return Account{
		Address:     "130 Royal St",
		Name:        "John Smith",
		Email:       "jsmith@example.com",
		Postcode:    6004,
		State:       "WA",
		Suburb:      "East Perth",
		Kind:        "business",
		Country:     "AU",
		CompanyName: "Royal Australian Mint",
	}
}

func mockReceiver() Account {
	return Account{
		Address:     "1 Pearl Bay Ave",
		Name:        "Jane Doe",
		Email:       "jdoe@example.com",
		Postcode:    2088,
		State:       "NSW",
		Suburb:      "Mosman",
		Kind:        "residential",
		Country:     "AU",
		CompanyName: "Sydney Harbour Operations Ltd.",
	}
}

func mustMarshal(v any) json.RawMessage {
	b, err := json.Marshal(v)
	if err != nil {
		panic(err)
	}
	return b
}

var _ APIClient = (*MockAPIClient)(nil)
