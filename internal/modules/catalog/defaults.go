package catalog

// DefaultData is the built-in reference data used when no file or database source is configured.
func DefaultData() Data {
	return Data{
		Ports: []PortEntry{
			{
				Port: Port{
					ID:              "jaffa",
					Name:            "Jaffa Port · Tel Aviv",
					Tagline:         "Historic harbor, golden sunsets, and direct access into the heart of Tel Aviv.",
					ScenicHighlight: "Arrive with the skyline glowing behind you.",
				},
				Vessels: []string{"Luxury Catamaran", "Performance Monohull", "Expedition Motor Yacht"},
			},
			{
				Port: Port{
					ID:              "haifa",
					Name:            "Haifa Marina",
					Tagline:         "Dramatic Carmel cliffs, blue water crossings, and effortless onward transfers south.",
					ScenicHighlight: "Wake up to Bahá'í gardens cascading to the sea.",
				},
				Vessels: []string{"Luxury Catamaran", "Ocean Crossing Catamaran", "Expedition Motor Yacht"},
			},
			{
				Port: Port{
					ID:              "limassol",
					Name:            "Limassol · Cyprus",
					Tagline:         "Island hopping launchpad with vibrant culinary scene before you sail east.",
					ScenicHighlight: "Combine Cyprus wine country with a midnight arrival into Tel Aviv.",
				},
				Vessels: []string{"Ocean Crossing Catamaran", "Performance Monohull", "Mediterranean Superyacht"},
			},
			{
				Port: Port{
					ID:              "athens",
					Name:            "Athens Riviera · Greece",
					Tagline:         "Iconic Mediterranean departure with concierge connections to the Aegean islands.",
					ScenicHighlight: "Toast under the Acropolis before setting a course for the Levant.",
				},
				Vessels: []string{"Mediterranean Superyacht", "Expedition Motor Yacht"},
			},
		},
		Vessels: []VesselClass{
			{Name: "Luxury Catamaran", BaseRate: 5400, Capacity: 12, Style: "Panoramic decks and stability for effortless lounging."},
			{Name: "Performance Monohull", BaseRate: 4200, Capacity: 8, Style: "Wind-powered adventure for sailors craving heel and speed."},
			{Name: "Expedition Motor Yacht", BaseRate: 6800, Capacity: 10, Style: "Range-first explorer with refined interiors and crewed service."},
			{Name: "Ocean Crossing Catamaran", BaseRate: 7600, Capacity: 14, Style: "Bluewater ready with generous social zones and private suites."},
			{Name: "Mediterranean Superyacht", BaseRate: 11800, Capacity: 16, Style: "Flagship luxury with full crew, tenders, and bespoke concierge."},
		},
		Styles: []TravelStyle{
			{ID: "sunset", Label: "Sunset celebration"},
			{ID: "culinary", Label: "Chef-led gastronomy"},
			{ID: "pilgrimage", Label: "Spiritual pilgrimage"},
			{ID: "executive", Label: "Executive retreat"},
		},
		PortMultipliers: map[string]float64{
			"jaffa":    1.08,
			"haifa":    1.0,
			"limassol": 1.18,
			"athens":   1.32,
		},
		StyleMultipliers: map[string]float64{
			"sunset":     1.02,
			"culinary":   1.12,
			"pilgrimage": 1.05,
			"executive":  1.18,
		},
	}
}

// Default returns the built-in catalog.
func Default() *Catalog {
	return MustNew(DefaultData())
}
