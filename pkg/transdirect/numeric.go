package transdirect

// Count constrains the integral quantity and weight fields of the booking
// model. Restricting the type set to unsigned kinds rejects negative
// quantities and weights at compile time; callers pick the width they need.
type Count interface {
	~uint | ~uint8 | ~uint16 | ~uint32 | ~uint64
}

// Amount constrains the monetary and measurement fields of the booking model.
// Callers choose the float precision appropriate to their backend.
type Amount interface {
	~float32 | ~float64
}
