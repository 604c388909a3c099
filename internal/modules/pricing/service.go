// README: Pricing service computes charter estimates from the reference catalog.
package pricing

import (
	"github.com/shopspring/decimal"

	"charterquote/internal/modules/catalog"
	"charterquote/internal/types"
)

// Service is stateless apart from the immutable catalog and is safe for concurrent use.
type Service struct {
	catalog  *catalog.Catalog
	currency string
}

func NewService(cat *catalog.Catalog, currency string) *Service {
	if currency == "" {
		currency = types.DefaultCurrency
	}
	return &Service{catalog: cat, currency: currency}
}

func (s *Service) Catalog() *catalog.Catalog {
	return s.catalog
}

// Estimate prices a request. It never fails: an unresolved vessel class yields a zero
// estimate, unknown ports and styles fall back to a factor of 1.0, and the passenger
// count is used as given.
func (s *Service) Estimate(req QuoteRequest) Estimate {
	out := Estimate{Currency: s.currency}

	vessel, ok := s.catalog.Vessel(req.VesselClass)
	if !ok {
		return out
	}

	b := Breakdown{
		BaseRate:       vessel.BaseRate,
		LocationFactor: s.catalog.PortFactor(req.PortID),
		StyleFactor:    s.catalog.StyleFactor(req.TravelStyleID),
		SeasonalFactor: seasonalFactor(req.SailDate),
	}
	if excess := req.Passengers - vessel.Capacity; excess > 0 {
		b.ExcessGuests = excess
		b.GuestPremium = int64(excess) * GuestPremium
	}

	raw := decimal.NewFromInt(b.BaseRate).
		Mul(decimal.NewFromFloat(b.LocationFactor)).
		Mul(decimal.NewFromFloat(b.StyleFactor)).
		Mul(decimal.NewFromFloat(b.SeasonalFactor)).
		Add(decimal.NewFromInt(b.GuestPremium))

	out.TotalAmount = roundToStep(raw)
	out.Breakdown = b
	return out
}

// roundToStep rounds half up to the nearest RoundingStep.
func roundToStep(raw decimal.Decimal) int64 {
	step := decimal.NewFromInt(RoundingStep)
	return raw.Div(step).Add(decimal.NewFromFloat(0.5)).Floor().Mul(step).IntPart()
}

// Money wraps an amount in the service currency.
func (s *Service) Money(amount int64) types.Money {
	return types.Money{Amount: amount, Currency: s.currency}
}
