package profile

import (
	"strings"
	"time"
)

// SSR labels.
const (
	SSR004p        = "SSR 00-4p"
	SSR243p        = "SSR 24-3p"
	SSRDefaulted   = "SSR 24-3p (default; no hearing date provided)"
	SSRInvalidDate = "Unknown (invalid hearing date)"
)

const hearingDateLayout = "2006-01-02"

// ssr004pLastDay is the last hearing date SSR 00-4p applies to.
var ssr004pLastDay = time.Date(2025, time.January, 5, 0, 0, 0, 0, time.UTC)

// ApplicableSSR labels the ruling governing VE testimony for a hearing date
// in YYYY-MM-DD form. It never changes how a profile is built.
func ApplicableSSR(hearingDate string) string {
	hearingDate = strings.TrimSpace(hearingDate)
	if hearingDate == "" {
		return SSRDefaulted
	}
	d, err := time.Parse(hearingDateLayout, hearingDate)
	if err != nil {
		return SSRInvalidDate
	}
	if !d.After(ssr004pLastDay) {
		return SSR004p
	}
	return SSR243p
}
