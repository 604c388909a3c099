// README: Quote service validates caller input, applies selection rules and runs the pricing engine.
package quote

import (
	"context"
	"errors"
	"fmt"

	"github.com/rs/zerolog"

	"charterquote/internal/config"
	"charterquote/internal/modules/catalog"
	"charterquote/internal/modules/pricing"
)

var (
	ErrBadRequest       = errors.New("bad request")
	ErrUnknownPort      = errors.New("unknown departure port")
	ErrUnknownStyle     = errors.New("unknown travel style")
	ErrVesselNotAllowed = errors.New("vessel class not offered at this port")
)

// Recorder receives one observation per computed quote.
type Recorder interface {
	ObserveQuote(portID, vessel string, amount int64)
}

type Service struct {
	pricing *pricing.Service
	catalog *catalog.Catalog
	cfg     config.QuoteConfig
	metrics Recorder
}

func NewService(pricingSvc *pricing.Service, cfg config.QuoteConfig, metrics Recorder) *Service {
	return &Service{
		pricing: pricingSvc,
		catalog: pricingSvc.Catalog(),
		cfg:     cfg,
		metrics: metrics,
	}
}

// Quote validates a request the way the booking form does, then computes the estimate
// and, from it, the advisories. An empty vessel class is not an error: the result has
// a zero estimate and no advisories.
func (s *Service) Quote(ctx context.Context, req Request) (Result, error) {
	logger := zerolog.Ctx(ctx)

	sailDate, err := pricing.ParseSailDate(req.SailDate)
	if err != nil {
		return Result{}, fmt.Errorf("%w: sail date %q is not an ISO-8601 date", ErrBadRequest, req.SailDate)
	}
	if req.Passengers < s.cfg.MinPassengers || req.Passengers > s.cfg.MaxPassengers {
		return Result{}, fmt.Errorf("%w: passengers must be between %d and %d",
			ErrBadRequest, s.cfg.MinPassengers, s.cfg.MaxPassengers)
	}
	if _, ok := s.catalog.Port(req.PortID); !ok {
		return Result{}, fmt.Errorf("%w: %q", ErrUnknownPort, req.PortID)
	}
	styleID := req.TravelStyleID
	if styleID == "" {
		styleID = s.catalog.DefaultStyle().ID
	} else if _, ok := s.catalog.Style(styleID); !ok {
		return Result{}, fmt.Errorf("%w: %q", ErrUnknownStyle, styleID)
	}

	res := Result{
		Estimate:      s.pricing.Money(0),
		Advisories:    []string{},
		TravelStyleID: styleID,
	}
	if req.VesselClass == "" {
		logger.Debug().Str("port", req.PortID).Msg("quote without vessel selection")
		return res, nil
	}
	if !s.catalog.IsAllowed(req.PortID, req.VesselClass) {
		return Result{}, fmt.Errorf("%w: %q at %q", ErrVesselNotAllowed, req.VesselClass, req.PortID)
	}

	preq := pricing.QuoteRequest{
		PortID:        req.PortID,
		VesselClass:   req.VesselClass,
		Passengers:    req.Passengers,
		SailDate:      sailDate,
		TravelStyleID: styleID,
	}
	est := s.pricing.Estimate(preq)
	res.Estimate = s.pricing.Money(est.TotalAmount)
	res.Breakdown = est.Breakdown
	res.Advisories = s.pricing.Advisories(preq, est.TotalAmount)

	if s.metrics != nil {
		s.metrics.ObserveQuote(req.PortID, req.VesselClass, est.TotalAmount)
	}
	logger.Info().
		Str("port", req.PortID).
		Str("vessel", req.VesselClass).
		Str("style", styleID).
		Int("passengers", req.Passengers).
		Int64("estimate", est.TotalAmount).
		Msg("quote computed")
	return res, nil
}

// Reconcile runs the selection consistency check after the caller changes port.
func (s *Service) Reconcile(portID, current string) (Selection, error) {
	if _, ok := s.catalog.Port(portID); !ok {
		return Selection{}, fmt.Errorf("%w: %q", ErrUnknownPort, portID)
	}
	return Selection{
		PortID:      portID,
		VesselClass: s.catalog.ReconcileVessel(portID, current),
		Allowed:     s.catalog.AllowedVessels(portID),
	}, nil
}

func (s *Service) Catalog() *catalog.Catalog {
	return s.catalog
}
