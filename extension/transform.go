package extension

import (
	"math"
	"regexp"
	"strconv"
	"time"

	"distracto-server/entities"
)

// Transform normalizes an arbitrary extension payload into a Report. Known
// shapes are tried in order: the distracto shape, a domains[] shape, then a
// generic scan over object values. A nil payload yields nil; an empty but
// well-formed payload yields a zero report. Transform never panics on
// malformed input.
func Transform(payload map[string]interface{}) *Report {
	if payload == nil {
		return nil
	}

	report := &Report{
		Source:      SourceExtension,
		TopSites:    []entities.SiteUsage{},
		LastUpdated: time.Now().UTC(),
	}

	if distracto, ok := payload["distracto"].(map[string]interface{}); ok {
		transformDistracto(distracto, report)
		report.finalize()
		// Summary totals survive only when no per-site rows were found.
		if len(report.TopSites) == 0 {
			applySummary(distracto, report)
		}
		return report
	}

	if domains, ok := payload["domains"].([]interface{}); ok {
		for _, raw := range domains {
			if site := siteFromEntry(raw); site != nil {
				report.TopSites = append(report.TopSites, *site)
			}
		}
		report.finalize()
		return report
	}

	// Generic fallback: scan every object value for anything that looks
	// like a site+time pair.
	for _, raw := range payload {
		if site := siteFromEntry(raw); site != nil {
			report.TopSites = append(report.TopSites, *site)
		}
	}
	report.finalize()
	return report
}

func transformDistracto(data map[string]interface{}, report *Report) {
	sites, ok := data["sites"].([]interface{})
	if !ok {
		return
	}
	for _, raw := range sites {
		entry, ok := raw.(map[string]interface{})
		if !ok {
			continue
		}

		var minutes float64
		if v, ok := toFloat(entry["timeSpent"]); ok {
			minutes = v / 60 // seconds
		} else if v, ok := toFloat(entry["minutes"]); ok {
			minutes = v
		}
		if minutes <= 0 {
			continue
		}

		url := firstString(entry, "url", "domain", "name")
		if url == "" {
			continue
		}
		report.TopSites = append(report.TopSites, entities.SiteUsage{
			URL:      url,
			Minutes:  round2(minutes),
			Category: Categorize(url),
		})
	}
}

func applySummary(data map[string]interface{}, report *Report) {
	summary, ok := data["summary"].(map[string]interface{})
	if !ok {
		return
	}
	if v, ok := toFloat(summary["productiveTime"]); ok {
		report.ProductiveMinutes = v / 60
	}
	if v, ok := toFloat(summary["distractingTime"]); ok {
		report.UnproductiveMinutes = v / 60
	}
	if v, ok := toFloat(summary["totalTime"]); ok {
		report.TotalMinutes = v / 60
	}
}

// siteFromEntry pulls a site+time pair out of one loosely shaped object.
func siteFromEntry(raw interface{}) *entities.SiteUsage {
	entry, ok := raw.(map[string]interface{})
	if !ok {
		return nil
	}

	url := firstString(entry, "domain", "url", "site", "name")
	if url == "" {
		return nil
	}

	var minutes float64
	switch t := entry["time"].(type) {
	case string:
		minutes = parseDurationString(t)
	case float64:
		minutes = t / 60 // bare number, assume seconds
	default:
		if v, ok := toFloat(entry["seconds"]); ok {
			minutes = v / 60
		} else if v, ok := toFloat(entry["minutes"]); ok {
			minutes = v
		}
	}
	if minutes <= 0 {
		return nil
	}

	return &entities.SiteUsage{
		URL:      url,
		Minutes:  round2(minutes),
		Category: Categorize(url),
	}
}

var (
	hoursRe   = regexp.MustCompile(`(\d+)\s*h`)
	minutesRe = regexp.MustCompile(`(\d+)\s*m`)
	secondsRe = regexp.MustCompile(`(\d+)\s*s`)
)

// parseDurationString handles "2h 3m 10s"-style values.
func parseDurationString(s string) float64 {
	var minutes float64
	if m := hoursRe.FindStringSubmatch(s); m != nil {
		v, _ := strconv.Atoi(m[1])
		minutes += float64(v) * 60
	}
	if m := minutesRe.FindStringSubmatch(s); m != nil {
		v, _ := strconv.Atoi(m[1])
		minutes += float64(v)
	}
	if m := secondsRe.FindStringSubmatch(s); m != nil {
		v, _ := strconv.Atoi(m[1])
		minutes += float64(v) / 60
	}
	return minutes
}

func firstString(entry map[string]interface{}, keys ...string) string {
	for _, key := range keys {
		if s, ok := entry[key].(string); ok && s != "" {
			return s
		}
	}
	return ""
}

func toFloat(v interface{}) (float64, bool) {
	switch t := v.(type) {
	case float64:
		return t, true
	case int:
		return float64(t), true
	case int64:
		return float64(t), true
	}
	return 0, false
}

func round2(v float64) float64 {
	return math.Round(v*100) / 100
}
