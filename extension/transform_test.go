package extension

import (
	"encoding/json"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func decode(t *testing.T, raw string) map[string]interface{} {
	t.Helper()
	var payload map[string]interface{}
	require.NoError(t, json.Unmarshal([]byte(raw), &payload))
	return payload
}

func TestTransformNilPayload(t *testing.T) {
	assert.Nil(t, Transform(nil))
}

func TestTransformEmptyPayload(t *testing.T) {
	report := Transform(map[string]interface{}{})
	require.NotNil(t, report)
	assert.Equal(t, SourceExtension, report.Source)
	assert.Zero(t, report.TotalMinutes)
	assert.Empty(t, report.TopSites)
}

func TestTransformDistractoShape(t *testing.T) {
	payload := decode(t, `{
		"distracto": {
			"sites": [
				{"url": "github.com", "timeSpent": 3600},
				{"url": "youtube.com", "minutes": 30},
				{"url": "", "timeSpent": 60},
				{"url": "zero.com", "timeSpent": 0}
			]
		}
	}`)

	report := Transform(payload)
	require.NotNil(t, report)
	require.Len(t, report.TopSites, 2)

	// Sorted by minutes descending.
	assert.Equal(t, "github.com", report.TopSites[0].URL)
	assert.Equal(t, 60.0, report.TopSites[0].Minutes)
	assert.Equal(t, CategoryProductivity, report.TopSites[0].Category)
	assert.Equal(t, "youtube.com", report.TopSites[1].URL)
	assert.Equal(t, CategoryEntertainment, report.TopSites[1].Category)

	assert.Equal(t, 90.0, report.TotalMinutes)
	assert.Equal(t, 60.0, report.ProductiveMinutes)
	assert.Equal(t, 30.0, report.UnproductiveMinutes)
}

func TestTransformDistractoSummaryFallback(t *testing.T) {
	payload := decode(t, `{
		"distracto": {
			"summary": {"totalTime": 7200, "productiveTime": 5400, "distractingTime": 1800}
		}
	}`)

	report := Transform(payload)
	require.NotNil(t, report)
	assert.Equal(t, 120.0, report.TotalMinutes)
	assert.Equal(t, 90.0, report.ProductiveMinutes)
	assert.Equal(t, 30.0, report.UnproductiveMinutes)
	assert.Empty(t, report.TopSites)
}

func TestTransformDistractoSitesWinOverSummary(t *testing.T) {
	payload := decode(t, `{
		"distracto": {
			"sites": [{"url": "slack.com", "timeSpent": 600}],
			"summary": {"totalTime": 999999}
		}
	}`)

	report := Transform(payload)
	require.NotNil(t, report)
	assert.Equal(t, 10.0, report.TotalMinutes)
}

func TestTransformDomainsShape(t *testing.T) {
	payload := decode(t, `{
		"domains": [
			{"domain": "github.com", "time": "2h 3m 10s"},
			{"domain": "reddit.com", "time": 900},
			{"domain": "mail.google.com", "seconds": 300},
			{"domain": "notes.app", "minutes": 5},
			{"nosite": true}
		]
	}`)

	report := Transform(payload)
	require.NotNil(t, report)
	require.Len(t, report.TopSites, 4)
	assert.Equal(t, "github.com", report.TopSites[0].URL)
	assert.InDelta(t, 123.17, report.TopSites[0].Minutes, 0.01)
	assert.Equal(t, 15.0, report.TopSites[1].Minutes)
	assert.Equal(t, CategorySocialMedia, report.TopSites[1].Category)
}

func TestTransformGenericScan(t *testing.T) {
	payload := decode(t, `{
		"whatever": {"site": "figma.com", "minutes": 45},
		"other":    {"name": "netflix.com", "seconds": 1800},
		"junk":     "not an object",
		"number":   42
	}`)

	report := Transform(payload)
	require.NotNil(t, report)
	require.Len(t, report.TopSites, 2)
	assert.Equal(t, 45.0, report.TopSites[0].Minutes)
	assert.Equal(t, 30.0, report.TopSites[1].Minutes)
	assert.Equal(t, 75.0, report.TotalMinutes)
}

func TestParseDurationString(t *testing.T) {
	cases := map[string]float64{
		"2h 3m 10s": 123 + 10.0/60,
		"45m":       45,
		"1h":        60,
		"30s":       0.5,
		"garbage":   0,
		"":          0,
	}
	for in, want := range cases {
		assert.InDelta(t, want, parseDurationString(in), 0.001, "input %q", in)
	}
}

func TestCategorize(t *testing.T) {
	cases := map[string]string{
		"github.com":      CategoryProductivity,
		"docs.google.com": CategoryProductivity,
		"gmail.com":       CategoryCommunication,
		"youtube.com":     CategoryEntertainment,
		"reddit.com":      CategorySocialMedia,
		"example.org":     CategoryOther,
	}
	for domain, want := range cases {
		assert.Equal(t, want, Categorize(domain), "domain %s", domain)
	}
}

func TestSynthesizeLabeledAndPlausible(t *testing.T) {
	report := Synthesize(time.Date(2026, 8, 31, 14, 0, 0, 0, time.UTC))
	require.NotNil(t, report)

	assert.Equal(t, SourceSynthetic, report.Source)
	assert.NotEmpty(t, report.TopSites)
	assert.Greater(t, report.TotalMinutes, 0.0)
	assert.Greater(t, report.ProductiveMinutes, report.UnproductiveMinutes)

	// Sites arrive sorted by minutes descending.
	for i := 1; i < len(report.TopSites); i++ {
		assert.GreaterOrEqual(t, report.TopSites[i-1].Minutes, report.TopSites[i].Minutes)
	}
}

func TestReportToScreenTime(t *testing.T) {
	report := Transform(decode(t, `{
		"domains": [{"domain": "github.com", "time": "1h"}]
	}`))
	require.NotNil(t, report)

	day := time.Date(2026, 8, 31, 0, 0, 0, 0, time.UTC)
	record := report.ToScreenTime("user-1", day)
	assert.Equal(t, "user-1", record.UserID)
	assert.Equal(t, day, record.Date)
	assert.Equal(t, 60.0, record.TotalTime)
	require.Len(t, record.TopSites, 1)
	assert.Equal(t, "github.com", record.TopSites[0].URL)
}
