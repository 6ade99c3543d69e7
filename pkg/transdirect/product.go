package transdirect

// Product is a physical item in a consignment. Dimensions are centimetres,
// weight kilograms.
type Product[T Count, U Amount] struct {
	Weight        T      `json:"weight"`
	Length        T      `json:"length"`
	Width         T      `json:"width"`
	Height        T      `json:"height"`
	Quantity      T      `json:"quantity"`
	Description   string `json:"description,omitempty"`
	DeclaredValue U      `json:"declared_value,omitempty"`
}

// NewProduct returns a zero-valued product.
func NewProduct[T Count, U Amount]() Product[T, U] {
	return Product[T, U]{}
}

// ProductFromDimensions builds a product from its length, width, height and
// quantity, leaving the remaining fields zero.
func ProductFromDimensions[T Count, U Amount](length, width, height, quantity T) Product[T, U] {
	return Product[T, U]{
		Length:   length,
		Width:    width,
		Height:   height,
		Quantity: quantity,
	}
}

// Service is one quoted carrier service. Services appear only inside
// BookingResponse.Quotes, keyed by service name.
type Service[U Amount] struct {
	Total       U        `json:"total"`
	TransitTime string   `json:"transit_time,omitempty"`
	PickupDates []string `json:"pickup_dates,omitempty"`
	PickupTime  string   `json:"pickup_time,omitempty"`
}
