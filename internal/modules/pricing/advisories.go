package pricing

import (
	"fmt"
	"strings"

	"golang.org/x/text/language"
	"golang.org/x/text/message"
)

const (
	fallbackStyleLabel = "Voyage"
	fallbackScenic     = "the Mediterranean horizon"

	peakSeasonNote = "Peak Mediterranean light between April and July invites sunset receptions and waterfront arrivals into Tel Aviv Port."
	offPeakNote    = "Off-peak sailings unlock calmer marinas and boutique hotel partnerships along the coast."
)

var amountPrinter = message.NewPrinter(language.AmericanEnglish)

// Advisories returns the four advisory lines for a quote in fixed order: pricing,
// pairing, capacity, season. When the vessel class does not resolve there is nothing
// to advise on and the result is empty.
func (s *Service) Advisories(req QuoteRequest, estimate int64) []string {
	vessel, ok := s.catalog.Vessel(req.VesselClass)
	if !ok {
		return []string{}
	}

	label := fallbackStyleLabel
	if st, ok := s.catalog.Style(req.TravelStyleID); ok {
		label = st.Label
	}
	scenic := fallbackScenic
	if p, ok := s.catalog.Port(req.PortID); ok {
		scenic = p.ScenicHighlight
	}

	var capacity string
	if req.Passengers > vessel.Capacity {
		capacity = fmt.Sprintf("The selected vessel comfortably sleeps %d. Consider a tandem charter or contacting us for a superyacht upgrade.", vessel.Capacity)
	} else {
		capacity = fmt.Sprintf("The %s is ideal for parties up to %d, keeping service intimate and personalized.", strings.ToLower(vessel.Name), vessel.Capacity)
	}

	season := offPeakNote
	if isPeakAdvisory(req.SailDate) {
		season = peakSeasonNote
	}

	return []string{
		fmt.Sprintf("AI concierge estimate: %s (±10%%) including crew, fuel, and Tel Aviv arrival concierge.", s.formatAmount(estimate)),
		fmt.Sprintf("%s pairs beautifully with %s", label, scenic),
		capacity,
		season,
	}
}

func (s *Service) formatAmount(amount int64) string {
	return s.Money(amount).Symbol() + amountPrinter.Sprintf("%d", amount)
}
