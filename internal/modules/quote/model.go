// README: Quote request/result as exchanged with callers of the quote service.
package quote

import (
	"charterquote/internal/modules/pricing"
	"charterquote/internal/types"
)

// Request carries the caller's selection. SailDate is an ISO-8601 date or empty;
// TravelStyleID may be empty to use the catalog's first style.
type Request struct {
	PortID        string
	VesselClass   string
	Passengers    int
	SailDate      string
	TravelStyleID string
}

type Result struct {
	Estimate      types.Money
	Advisories    []string
	Breakdown     pricing.Breakdown
	TravelStyleID string
}

// Selection is the outcome of the consistency check run after a port change.
type Selection struct {
	PortID      string
	VesselClass string
	Allowed     []string
}
