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

func TestBlockerCreateValidation(t *testing.T) {
	database := newTestDatabase(t)
	uc := NewBlockerUseCase(repositories.NewBlockedSitePgRepository(database))
	user := createTestUser(t, database, "ana@example.com", "Ana")

	err := uc.Create(user.ID, &entities.BlockedSite{URL: "  "})
	assert.Error(t, err)

	err = uc.Create(user.ID, &entities.BlockedSite{URL: "x.com", BlockType: "sometimes"})
	assert.Error(t, err)

	site := &entities.BlockedSite{URL: "facebook.com"}
	require.NoError(t, uc.Create(user.ID, site))
	assert.NotEmpty(t, site.ID)
	assert.Equal(t, entities.BlockTypeAlways, site.BlockType)
	assert.True(t, site.IsActive)
}

func TestBlockerOwnershipScoping(t *testing.T) {
	database := newTestDatabase(t)
	uc := NewBlockerUseCase(repositories.NewBlockedSitePgRepository(database))
	ana := createTestUser(t, database, "ana@example.com", "Ana")
	ben := createTestUser(t, database, "ben@example.com", "Ben")

	site := &entities.BlockedSite{URL: "facebook.com"}
	require.NoError(t, uc.Create(ana.ID, site))

	// Another user's update or delete of the row reads as not-found.
	other := "other.com"
	_, err := uc.Update(ben.ID, site.ID, BlockedSiteUpdate{URL: &other})
	assert.ErrorIs(t, err, ErrNotFound)
	assert.ErrorIs(t, uc.Delete(ben.ID, site.ID), ErrNotFound)

	require.NoError(t, uc.Delete(ana.ID, site.ID))
	sites, err := uc.List(ana.ID)
	require.NoError(t, err)
	assert.Empty(t, sites)
}

func TestBlockerUpdateSchedule(t *testing.T) {
	database := newTestDatabase(t)
	uc := NewBlockerUseCase(repositories.NewBlockedSitePgRepository(database))
	ana := createTestUser(t, database, "ana@example.com", "Ana")

	site := &entities.BlockedSite{URL: "tiktok.com"}
	require.NoError(t, uc.Create(ana.ID, site))

	scheduled := entities.BlockTypeScheduled
	start, end := "09:00", "17:00"
	updated, err := uc.Update(ana.ID, site.ID, BlockedSiteUpdate{
		BlockType:     &scheduled,
		ScheduleStart: &start,
		ScheduleEnd:   &end,
	})
	require.NoError(t, err)
	assert.Equal(t, entities.BlockTypeScheduled, updated.BlockType)
	assert.Equal(t, "09:00", updated.ScheduleStart)
}

func TestBlockerUpdateKeepsOmittedFields(t *testing.T) {
	database := newTestDatabase(t)
	uc := NewBlockerUseCase(repositories.NewBlockedSitePgRepository(database))
	ana := createTestUser(t, database, "ana@example.com", "Ana")

	site := &entities.BlockedSite{URL: "tiktok.com", ScheduleStart: "09:00"}
	require.NoError(t, uc.Create(ana.ID, site))

	// Renaming the URL alone must not deactivate the block or drop the
	// schedule.
	renamed := "tiktok.org"
	updated, err := uc.Update(ana.ID, site.ID, BlockedSiteUpdate{URL: &renamed})
	require.NoError(t, err)
	assert.Equal(t, "tiktok.org", updated.URL)
	assert.True(t, updated.IsActive)
	assert.Equal(t, "09:00", updated.ScheduleStart)

	off := false
	updated, err = uc.Update(ana.ID, site.ID, BlockedSiteUpdate{IsActive: &off})
	require.NoError(t, err)
	assert.False(t, updated.IsActive)
	assert.Equal(t, "tiktok.org", updated.URL)
}

func TestTimetableListDefaultsAndDateFilter(t *testing.T) {
	database := newTestDatabase(t)
	uc := NewTimetableUseCase(repositories.NewTimetablePgRepository(database))
	ana := createTestUser(t, database, "ana@example.com", "Ana")

	today := time.Date(2026, 8, 31, 0, 0, 0, 0, time.UTC)
	for i := 0; i < 12; i++ {
		tt := &entities.Timetable{
			Title: "Plan",
			Date:  today.AddDate(0, 0, -i),
			Tasks: datatypes.JSONSlice[entities.Task]{{Time: "09:00", Description: "Work"}},
		}
		require.NoError(t, uc.Create(ana.ID, tt))
	}

	all, err := uc.List(ana.ID, nil, 0)
	require.NoError(t, err)
	assert.Len(t, all, 10) // default limit

	noon := today.Add(12 * time.Hour)
	filtered, err := uc.List(ana.ID, &noon, 0)
	require.NoError(t, err)
	require.Len(t, filtered, 1)
	assert.Equal(t, today, filtered[0].Date.UTC())
}

func TestTimetableOwnershipScoping(t *testing.T) {
	database := newTestDatabase(t)
	uc := NewTimetableUseCase(repositories.NewTimetablePgRepository(database))
	ana := createTestUser(t, database, "ana@example.com", "Ana")
	ben := createTestUser(t, database, "ben@example.com", "Ben")

	tt := &entities.Timetable{Title: "Plan"}
	require.NoError(t, uc.Create(ana.ID, tt))

	_, err := uc.Update(ben.ID, tt.ID, &entities.Timetable{Title: "Hijack"})
	assert.ErrorIs(t, err, ErrNotFound)
	assert.ErrorIs(t, uc.Delete(ben.ID, tt.ID), ErrNotFound)
}

func TestAIGenerateTimetablePersists(t *testing.T) {
	database := newTestDatabase(t)
	timetables := NewTimetableUseCase(repositories.NewTimetablePgRepository(database))
	uc := NewAIUseCase(timetables)
	ana := createTestUser(t, database, "ana@example.com", "Ana")

	generated, err := uc.GenerateTimetable(ana.ID, "plan my day", "")
	require.NoError(t, err)
	assert.NotEmpty(t, generated.ID)
	assert.Equal(t, "gemini-1.5-flash", generated.AIModel)
	assert.NotEmpty(t, generated.Tasks)
	assert.NotEmpty(t, generated.Recommendations)

	stored, err := timetables.List(ana.ID, nil, 0)
	require.NoError(t, err)
	require.Len(t, stored, 1)
	assert.Equal(t, generated.ID, stored[0].ID)
}

func TestAIChatIsCanned(t *testing.T) {
	uc := NewAIUseCase(nil)

	reply := uc.Chat("how do I focus?", "")
	assert.Contains(t, reply, "mock AI response")
	assert.Contains(t, reply, "how do I focus?")
	assert.Contains(t, reply, "gemini-1.5-flash")
}
