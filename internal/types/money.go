// README: Common money value object used across modules.
package types

// DefaultCurrency is the currency every catalog rate is quoted in.
const DefaultCurrency = "ILS"

type Money struct {
	Amount   int64
	Currency string
}

// Symbol returns the display symbol for the currency, or the ISO code when unknown.
func (m Money) Symbol() string {
	switch m.Currency {
	case "ILS":
		return "₪"
	case "EUR":
		return "€"
	case "USD":
		return "$"
	}
	return m.Currency + " "
}
