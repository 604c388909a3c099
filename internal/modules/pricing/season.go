package pricing

import "time"

// The pricing season (June to August) and the advisory season (April to July) are
// separate rules.

func sailMonth(sailDate *time.Time) (time.Month, bool) {
	if sailDate == nil || sailDate.IsZero() {
		return 0, false
	}
	return sailDate.UTC().Month(), true
}

// seasonalFactor is SummerFactor for June through August, 1.0 otherwise or without a date.
func seasonalFactor(sailDate *time.Time) float64 {
	m, ok := sailMonth(sailDate)
	if ok && (m == time.June || m == time.July || m == time.August) {
		return SummerFactor
	}
	return 1.0
}

// isPeakAdvisory reports April through July.
func isPeakAdvisory(sailDate *time.Time) bool {
	m, ok := sailMonth(sailDate)
	return ok && m >= time.April && m <= time.July
}

// ParseSailDate accepts an ISO-8601 calendar date (2006-01-02) or an RFC3339 timestamp.
// An empty string means no date.
func ParseSailDate(s string) (*time.Time, error) {
	if s == "" {
		return nil, nil
	}
	if t, err := time.Parse(time.DateOnly, s); err == nil {
		return &t, nil
	}
	t, err := time.Parse(time.RFC3339, s)
	if err != nil {
		return nil, err
	}
	return &t, nil
}
