package extension

import (
	"math/rand"
	"time"

	"distracto-server/entities"
)

// Synthesize fabricates a plausible day of usage scaled to the hour of day,
// for demos and empty accounts. The split lands between 60% and 80%
// productive. The report is clearly labeled so it is never mistaken for
// extension data.
func Synthesize(now time.Time) *Report {
	hour := now.Hour()
	base := float64(hour * 15)
	if base > 240 {
		base = 240
	}
	if base < 30 {
		base = 30
	}

	productiveShare := 0.6 + rand.Float64()*0.2
	productive := base * productiveShare
	unproductive := base - productive

	report := &Report{
		Source:      SourceSynthetic,
		LastUpdated: now,
		TopSites: []entities.SiteUsage{
			{URL: "work.com", Minutes: round2(productive * 0.45), Category: CategoryProductivity},
			{URL: "docs.google.com", Minutes: round2(productive * 0.35), Category: CategoryProductivity},
			{URL: "gmail.com", Minutes: round2(productive * 0.20), Category: CategoryCommunication},
			{URL: "youtube.com", Minutes: round2(unproductive * 0.5), Category: CategoryEntertainment},
			{URL: "reddit.com", Minutes: round2(unproductive * 0.3), Category: CategorySocialMedia},
			{URL: "news.com", Minutes: round2(unproductive * 0.2), Category: CategoryOther},
		},
	}
	report.finalize()
	return report
}
