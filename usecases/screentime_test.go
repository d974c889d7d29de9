package usecases

import (
	"testing"
	"time"

	"distracto-server/entities"
	"distracto-server/repositories"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/datatypes"
)

func f64(v float64) *float64 { return &v }

func TestMidnight(t *testing.T) {
	in := time.Date(2026, 3, 14, 15, 9, 26, 535, time.FixedZone("X", 3*3600))
	got := Midnight(in)

	assert.Equal(t, time.UTC, got.Location())
	assert.Equal(t, 0, got.Hour())
	assert.Equal(t, 0, got.Minute())
	assert.Equal(t, 14, got.Day())
}

func TestGetForDateCreatesZeroRecord(t *testing.T) {
	database := newTestDatabase(t)
	uc := NewScreenTimeUseCase(repositories.NewScreenTimePgRepository(database))
	user := createTestUser(t, database, "a@example.com", "Ana")

	record, err := uc.GetForDate(user.ID, time.Now())
	require.NoError(t, err)
	assert.NotEmpty(t, record.ID)
	assert.Equal(t, user.ID, record.UserID)
	assert.Zero(t, record.TotalTime)

	// A second read returns the same record, not a new one.
	again, err := uc.GetForDate(user.ID, time.Now())
	require.NoError(t, err)
	assert.Equal(t, record.ID, again.ID)
}

func TestUpdateUpsertsSingleRowPerDay(t *testing.T) {
	database := newTestDatabase(t)
	uc := NewScreenTimeUseCase(repositories.NewScreenTimePgRepository(database))
	user := createTestUser(t, database, "a@example.com", "Ana")

	day := time.Date(2026, 8, 30, 10, 0, 0, 0, time.UTC)

	first, err := uc.Update(user.ID, day, ScreenTimeUpdate{TotalTime: f64(120)})
	require.NoError(t, err)

	// Same calendar day, different clock time, new values.
	sites := datatypes.JSONSlice[entities.SiteUsage]{
		{URL: "github.com", Minutes: 150, Category: "Productivity"},
	}
	second, err := uc.Update(user.ID, day.Add(8*time.Hour), ScreenTimeUpdate{
		TotalTime:      f64(200),
		ProductiveTime: f64(150),
		TopSites:       &sites,
	})
	require.NoError(t, err)

	assert.Equal(t, first.ID, second.ID)
	assert.Equal(t, float64(200), second.TotalTime)
	assert.Len(t, second.TopSites, 1)

	var count int64
	require.NoError(t, database.GetDB().Model(&entities.ScreenTime{}).
		Where("user_id = ?", user.ID).Count(&count).Error)
	assert.Equal(t, int64(1), count)
}

func TestUpdateKeepsOmittedFields(t *testing.T) {
	database := newTestDatabase(t)
	uc := NewScreenTimeUseCase(repositories.NewScreenTimePgRepository(database))
	user := createTestUser(t, database, "a@example.com", "Ana")

	day := time.Date(2026, 8, 30, 0, 0, 0, 0, time.UTC)
	sites := datatypes.JSONSlice[entities.SiteUsage]{
		{URL: "github.com", Minutes: 100, Category: "Productivity"},
	}
	_, err := uc.Update(user.ID, day, ScreenTimeUpdate{
		TotalTime:      f64(120),
		ProductiveTime: f64(100),
		TopSites:       &sites,
	})
	require.NoError(t, err)

	// A later write touches only the fields it names.
	after, err := uc.Update(user.ID, day, ScreenTimeUpdate{TotalTime: f64(150)})
	require.NoError(t, err)
	assert.Equal(t, float64(150), after.TotalTime)
	assert.Equal(t, float64(100), after.ProductiveTime)
	assert.Len(t, after.TopSites, 1)
}

func TestWeeklyRangeInclusiveAndSorted(t *testing.T) {
	database := newTestDatabase(t)
	uc := NewScreenTimeUseCase(repositories.NewScreenTimePgRepository(database))
	user := createTestUser(t, database, "a@example.com", "Ana")

	start := time.Date(2026, 8, 24, 0, 0, 0, 0, time.UTC)
	// Seed days 0..7; day 7 falls outside the window.
	for i := 0; i <= 7; i++ {
		_, err := uc.Update(user.ID, start.AddDate(0, 0, i), ScreenTimeUpdate{TotalTime: f64(float64(i))})
		require.NoError(t, err)
	}

	week, err := uc.Weekly(user.ID, start)
	require.NoError(t, err)
	require.Len(t, week, 7)
	assert.Equal(t, start, week[0].Date.UTC())
	assert.Equal(t, start.AddDate(0, 0, 6), week[6].Date.UTC())
	for i := 1; i < len(week); i++ {
		assert.True(t, week[i].Date.After(week[i-1].Date))
	}
}

func TestWeeklyOtherUsersExcluded(t *testing.T) {
	database := newTestDatabase(t)
	uc := NewScreenTimeUseCase(repositories.NewScreenTimePgRepository(database))
	ana := createTestUser(t, database, "a@example.com", "Ana")
	ben := createTestUser(t, database, "b@example.com", "Ben")

	start := time.Date(2026, 8, 24, 0, 0, 0, 0, time.UTC)
	_, err := uc.Update(ana.ID, start, ScreenTimeUpdate{TotalTime: f64(10)})
	require.NoError(t, err)
	_, err = uc.Update(ben.ID, start, ScreenTimeUpdate{TotalTime: f64(99)})
	require.NoError(t, err)

	week, err := uc.Weekly(ana.ID, start)
	require.NoError(t, err)
	require.Len(t, week, 1)
	assert.Equal(t, float64(10), week[0].TotalTime)
}
