package extension

import (
	"sort"
	"time"

	"distracto-server/entities"

	"gorm.io/datatypes"
)

// Source labels where a report's numbers came from. Synthetic and cached
// reports are never presented as extension data.
const (
	SourceExtension = "extension"
	SourceCached    = "cached"
	SourceSynthetic = "synthetic"
)

// Report is a normalized day of per-site usage, minutes-denominated.
type Report struct {
	Source              string               `json:"source"`
	TotalMinutes        float64              `json:"totalMinutes"`
	ProductiveMinutes   float64              `json:"productiveMinutes"`
	UnproductiveMinutes float64              `json:"unproductiveMinutes"`
	TopSites            []entities.SiteUsage `json:"topSites"`
	LastUpdated         time.Time            `json:"lastUpdated"`
}

// finalize sorts sites by minutes descending and derives the aggregates:
// productive = Productivity + Communication, unproductive = Social Media +
// Entertainment, total = everything.
func (r *Report) finalize() {
	sort.Slice(r.TopSites, func(i, j int) bool {
		return r.TopSites[i].Minutes > r.TopSites[j].Minutes
	})

	r.TotalMinutes = 0
	r.ProductiveMinutes = 0
	r.UnproductiveMinutes = 0
	for _, site := range r.TopSites {
		r.TotalMinutes += site.Minutes
		switch site.Category {
		case CategoryProductivity, CategoryCommunication:
			r.ProductiveMinutes += site.Minutes
		case CategorySocialMedia, CategoryEntertainment:
			r.UnproductiveMinutes += site.Minutes
		}
	}
}

// FromScreenTime rebuilds a report from the persisted record, labeled as
// cached so consumers can tell it apart from a live extension sample.
func FromScreenTime(record *entities.ScreenTime) *Report {
	return &Report{
		Source:              SourceCached,
		TotalMinutes:        record.TotalTime,
		ProductiveMinutes:   record.ProductiveTime,
		UnproductiveMinutes: record.UnproductiveTime,
		TopSites:            []entities.SiteUsage(record.TopSites),
		LastUpdated:         record.UpdatedAt,
	}
}

// ToScreenTime converts the report into the persisted record shape for the
// given user and day.
func (r *Report) ToScreenTime(userID string, date time.Time) *entities.ScreenTime {
	return &entities.ScreenTime{
		UserID:           userID,
		Date:             date,
		TotalTime:        r.TotalMinutes,
		ProductiveTime:   r.ProductiveMinutes,
		UnproductiveTime: r.UnproductiveMinutes,
		TopSites:         datatypes.JSONSlice[entities.SiteUsage](r.TopSites),
	}
}
