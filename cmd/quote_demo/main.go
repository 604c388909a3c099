package main

import (
	"context"
	"flag"
	"fmt"
	"log"
	"os"

	"charterquote/internal/config"
	"charterquote/internal/modules/catalog"
	"charterquote/internal/modules/pricing"
	"charterquote/internal/modules/quote"
)

func main() {
	var (
		port       = flag.String("port", "haifa", "departure port id")
		vessel     = flag.String("vessel", "Luxury Catamaran", "vessel class name")
		passengers = flag.Int("passengers", 8, "party size")
		date       = flag.String("date", "", "sail date, YYYY-MM-DD")
		style      = flag.String("style", "", "travel style id (default: first style)")
		file       = flag.String("catalog", "", "YAML catalog file (default: built-in)")
		dump       = flag.Bool("dump", false, "print the catalog as YAML and exit")
	)
	flag.Parse()

	cat := catalog.Default()
	if *file != "" {
		var err error
		if cat, err = catalog.LoadFile(*file); err != nil {
			log.Fatalf("load catalog: %v", err)
		}
	}

	if *dump {
		if err := catalog.Encode(os.Stdout, cat); err != nil {
			log.Fatalf("encode catalog: %v", err)
		}
		return
	}

	cfg := config.QuoteConfig{MinPassengers: 2, MaxPassengers: 24, Currency: "ILS"}
	svc := quote.NewService(pricing.NewService(cat, cfg.Currency), cfg, nil)

	res, err := svc.Quote(context.Background(), quote.Request{
		PortID:        *port,
		VesselClass:   *vessel,
		Passengers:    *passengers,
		SailDate:      *date,
		TravelStyleID: *style,
	})
	if err != nil {
		log.Fatalf("quote: %v", err)
	}

	fmt.Printf("Estimate: %s%d\n", res.Estimate.Symbol(), res.Estimate.Amount)
	b := res.Breakdown
	fmt.Printf("Breakdown: base=%d port=%.2f style=%.2f season=%.2f extra_guests=%d premium=%d\n",
		b.BaseRate, b.LocationFactor, b.StyleFactor, b.SeasonalFactor, b.ExcessGuests, b.GuestPremium)
	for i, line := range res.Advisories {
		fmt.Printf("%d. %s\n", i+1, line)
	}
}
