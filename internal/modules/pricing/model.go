// README: Quote request and estimate definitions for charter pricing.
package pricing

import "time"

const (
	// GuestPremium is charged per passenger above the vessel's rated capacity.
	GuestPremium int64 = 320
	// SummerFactor applies to sail dates in June, July and August (UTC).
	SummerFactor = 1.15
	// RoundingStep is the granularity of every estimate.
	RoundingStep int64 = 10
)

// QuoteRequest is built fresh for each computation. The vessel class is expected to be in
// the port's allowed set; an empty or unknown vessel class yields no estimate.
type QuoteRequest struct {
	PortID        string
	VesselClass   string
	Passengers    int
	SailDate      *time.Time
	TravelStyleID string
}

// Breakdown lists the factors that produced an estimate.
type Breakdown struct {
	BaseRate       int64   `json:"base_rate"`
	LocationFactor float64 `json:"location_factor"`
	StyleFactor    float64 `json:"style_factor"`
	SeasonalFactor float64 `json:"seasonal_factor"`
	ExcessGuests   int     `json:"excess_guests"`
	GuestPremium   int64   `json:"guest_premium"`
}

type Estimate struct {
	// TotalAmount is a non-negative multiple of RoundingStep; 0 means "no estimate".
	TotalAmount int64
	Currency    string
	Breakdown   Breakdown
}
