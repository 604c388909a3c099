package quote

import (
	"bytes"
	"context"
	"testing"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"charterquote/internal/config"
	"charterquote/internal/modules/catalog"
	"charterquote/internal/modules/pricing"
)

type recorded struct {
	port, vessel string
	amount       int64
}

type fakeRecorder struct {
	calls []recorded
}

func (f *fakeRecorder) ObserveQuote(portID, vessel string, amount int64) {
	f.calls = append(f.calls, recorded{portID, vessel, amount})
}

func newTestService(rec Recorder) *Service {
	cfg := config.QuoteConfig{MinPassengers: 2, MaxPassengers: 24, Currency: "ILS"}
	return NewService(pricing.NewService(catalog.Default(), cfg.Currency), cfg, rec)
}

func TestQuote(t *testing.T) {
	rec := &fakeRecorder{}
	svc := newTestService(rec)

	res, err := svc.Quote(context.Background(), Request{
		PortID:        "haifa",
		VesselClass:   "Luxury Catamaran",
		Passengers:    14,
		TravelStyleID: "sunset",
	})
	require.NoError(t, err)
	assert.EqualValues(t, 6150, res.Estimate.Amount)
	assert.Equal(t, "ILS", res.Estimate.Currency)
	require.Len(t, res.Advisories, 4)
	assert.Contains(t, res.Advisories[2], "tandem charter")
	assert.Equal(t, 2, res.Breakdown.ExcessGuests)
	assert.Equal(t, []recorded{{"haifa", "Luxury Catamaran", 6150}}, rec.calls)
}

func TestQuoteScenarioC(t *testing.T) {
	svc := newTestService(nil)

	res, err := svc.Quote(context.Background(), Request{
		PortID:        "limassol",
		VesselClass:   "Mediterranean Superyacht",
		Passengers:    10,
		SailDate:      "2026-07-09",
		TravelStyleID: "executive",
	})
	require.NoError(t, err)
	assert.EqualValues(t, 18890, res.Estimate.Amount)
	assert.Equal(t, 1.15, res.Breakdown.SeasonalFactor)
	assert.Contains(t, res.Advisories[3], "Peak Mediterranean light")
}

func TestQuoteDefaultsTravelStyle(t *testing.T) {
	svc := newTestService(nil)

	res, err := svc.Quote(context.Background(), Request{PortID: "haifa", VesselClass: "Luxury Catamaran", Passengers: 8})
	require.NoError(t, err)
	assert.Equal(t, "sunset", res.TravelStyleID)
	assert.EqualValues(t, 5510, res.Estimate.Amount)
}

func TestQuoteWithoutVessel(t *testing.T) {
	rec := &fakeRecorder{}
	svc := newTestService(rec)

	res, err := svc.Quote(context.Background(), Request{PortID: "athens", Passengers: 8, TravelStyleID: "culinary"})
	require.NoError(t, err)
	assert.Zero(t, res.Estimate.Amount)
	assert.NotNil(t, res.Advisories)
	assert.Empty(t, res.Advisories)
	assert.Empty(t, rec.calls)
}

func TestQuoteValidation(t *testing.T) {
	svc := newTestService(nil)

	cases := []struct {
		name string
		req  Request
		want error
	}{
		{"too few passengers", Request{PortID: "haifa", VesselClass: "Luxury Catamaran", Passengers: 1}, ErrBadRequest},
		{"too many passengers", Request{PortID: "haifa", VesselClass: "Luxury Catamaran", Passengers: 25}, ErrBadRequest},
		{"bad date", Request{PortID: "haifa", VesselClass: "Luxury Catamaran", Passengers: 8, SailDate: "31/07/2026"}, ErrBadRequest},
		{"unknown port", Request{PortID: "eilat", VesselClass: "Luxury Catamaran", Passengers: 8}, ErrUnknownPort},
		{"unknown style", Request{PortID: "haifa", VesselClass: "Luxury Catamaran", Passengers: 8, TravelStyleID: "rave"}, ErrUnknownStyle},
		{"vessel not at port", Request{PortID: "athens", VesselClass: "Luxury Catamaran", Passengers: 8}, ErrVesselNotAllowed},
		{"unknown vessel", Request{PortID: "athens", VesselClass: "Rowboat", Passengers: 8}, ErrVesselNotAllowed},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			_, err := svc.Quote(context.Background(), tc.req)
			assert.ErrorIs(t, err, tc.want)
		})
	}
}

func TestQuoteLogsWithContextLogger(t *testing.T) {
	svc := newTestService(nil)
	var buf bytes.Buffer
	ctx := zerolog.New(&buf).WithContext(context.Background())

	_, err := svc.Quote(ctx, Request{PortID: "jaffa", VesselClass: "Performance Monohull", Passengers: 6})
	require.NoError(t, err)
	assert.Contains(t, buf.String(), `"message":"quote computed"`)
	assert.Contains(t, buf.String(), `"estimate":4630`)
}

func TestReconcile(t *testing.T) {
	svc := newTestService(nil)

	sel, err := svc.Reconcile("athens", "Luxury Catamaran")
	require.NoError(t, err)
	assert.Equal(t, "Mediterranean Superyacht", sel.VesselClass)
	assert.Equal(t, []string{"Mediterranean Superyacht", "Expedition Motor Yacht"}, sel.Allowed)

	sel, err = svc.Reconcile("jaffa", "Expedition Motor Yacht")
	require.NoError(t, err)
	assert.Equal(t, "Expedition Motor Yacht", sel.VesselClass)

	_, err = svc.Reconcile("eilat", "")
	assert.ErrorIs(t, err, ErrUnknownPort)
}
