package httpHandler

import (
	"bytes"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"distracto-server/db"
	"distracto-server/entities"
	"distracto-server/logger"
	"distracto-server/middleware"
	"distracto-server/repositories"
	"distracto-server/services"
	"distracto-server/usecases"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	gormLogger "gorm.io/gorm/logger"
)

func init() {
	gin.SetMode(gin.TestMode)
}

type screenTimeFixture struct {
	router   *gin.Engine
	database db.Database
	user     *entities.User
}

func newScreenTimeFixture(t *testing.T) *screenTimeFixture {
	t.Helper()

	dsn := fmt.Sprintf("file:%s?mode=memory&cache=shared", uuid.NewString())
	gdb, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{
		Logger: gormLogger.Default.LogMode(gormLogger.Silent),
	})
	require.NoError(t, err)
	require.NoError(t, db.Migrate(gdb))
	database := db.Wrap(gdb)

	user := &entities.User{Email: "ana@example.com", Password: "hashed", DisplayName: "Ana"}
	require.NoError(t, database.GetDB().Create(user).Error)

	repo := repositories.NewScreenTimePgRepository(database)
	useCase := usecases.NewScreenTimeUseCase(repo)
	processor := services.NewSyncProcessor(repo, logger.NewNop(), time.Hour)
	handler := NewScreenTimeHandler(useCase, processor, logger.NewNop())

	router := gin.New()
	authed := router.Group("", func(c *gin.Context) {
		c.Set(middleware.ContextUserID, user.ID)
	})
	authed.GET("/screen-time", handler.GetScreenTime)
	authed.PUT("/screen-time", handler.UpdateScreenTime)
	authed.POST("/screen-time/sync", handler.Sync)
	authed.GET("/screen-time/export", handler.Export)
	authed.GET("/screen-time/weekly/:startDate", handler.GetWeekly)
	authed.GET("/screen-time/:date", handler.GetScreenTime)
	authed.PUT("/screen-time/:date", handler.UpdateScreenTime)

	return &screenTimeFixture{router: router, database: database, user: user}
}

func (f *screenTimeFixture) do(t *testing.T, method, path string, body interface{}) *httptest.ResponseRecorder {
	t.Helper()
	var reader *bytes.Reader
	if body != nil {
		raw, err := json.Marshal(body)
		require.NoError(t, err)
		reader = bytes.NewReader(raw)
	} else {
		reader = bytes.NewReader(nil)
	}
	req := httptest.NewRequest(method, path, reader)
	req.Header.Set("Content-Type", "application/json")
	rec := httptest.NewRecorder()
	f.router.ServeHTTP(rec, req)
	return rec
}

func TestGetScreenTimeDefaultsToToday(t *testing.T) {
	f := newScreenTimeFixture(t)

	rec := f.do(t, http.MethodGet, "/screen-time", nil)
	require.Equal(t, http.StatusOK, rec.Code)

	var resp struct {
		Data entities.ScreenTime `json:"data"`
	}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	assert.Equal(t, f.user.ID, resp.Data.UserID)

	today := usecases.Midnight(time.Now())
	assert.Equal(t, today, resp.Data.Date.UTC())
}

func TestGetScreenTimeBadDate(t *testing.T) {
	f := newScreenTimeFixture(t)

	rec := f.do(t, http.MethodGet, "/screen-time/not-a-date", nil)
	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestUpdateScreenTimeUpserts(t *testing.T) {
	f := newScreenTimeFixture(t)

	body := map[string]interface{}{"totalTime": 180, "productiveTime": 120}
	rec := f.do(t, http.MethodPut, "/screen-time/2026-08-30", body)
	require.Equal(t, http.StatusOK, rec.Code)

	// Second write for the same day replaces values instead of inserting.
	body["totalTime"] = 240
	rec = f.do(t, http.MethodPut, "/screen-time/2026-08-30", body)
	require.Equal(t, http.StatusOK, rec.Code)

	var count int64
	require.NoError(t, f.database.GetDB().Model(&entities.ScreenTime{}).Count(&count).Error)
	assert.Equal(t, int64(1), count)

	var resp struct {
		Data entities.ScreenTime `json:"data"`
	}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	assert.Equal(t, float64(240), resp.Data.TotalTime)
}

func TestUpdateScreenTimeKeepsOmittedFields(t *testing.T) {
	f := newScreenTimeFixture(t)

	rec := f.do(t, http.MethodPut, "/screen-time/2026-08-30",
		map[string]interface{}{"totalTime": 120, "productiveTime": 100})
	require.Equal(t, http.StatusOK, rec.Code)

	// A body that never mentions productiveTime must leave it alone.
	rec = f.do(t, http.MethodPut, "/screen-time/2026-08-30",
		map[string]interface{}{"totalTime": 150})
	require.Equal(t, http.StatusOK, rec.Code)

	var resp struct {
		Data entities.ScreenTime `json:"data"`
	}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	assert.Equal(t, float64(150), resp.Data.TotalTime)
	assert.Equal(t, float64(100), resp.Data.ProductiveTime)
}

func TestWeeklyEndpoint(t *testing.T) {
	f := newScreenTimeFixture(t)

	for i := 0; i < 3; i++ {
		day := time.Date(2026, 8, 24+i, 0, 0, 0, 0, time.UTC)
		rec := f.do(t, http.MethodPut, "/screen-time/"+day.Format("2006-01-02"),
			map[string]interface{}{"totalTime": 60 * (i + 1)})
		require.Equal(t, http.StatusOK, rec.Code)
	}

	rec := f.do(t, http.MethodGet, "/screen-time/weekly/2026-08-24", nil)
	require.Equal(t, http.StatusOK, rec.Code)

	var resp struct {
		Data  []entities.ScreenTime `json:"data"`
		Count int                   `json:"count"`
	}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	assert.Equal(t, 3, resp.Count)
	assert.Len(t, resp.Data, 3)
}

func TestSyncNormalizesPayload(t *testing.T) {
	f := newScreenTimeFixture(t)

	payload := map[string]interface{}{
		"domains": []map[string]interface{}{
			{"domain": "github.com", "time": "1h 30m"},
			{"domain": "youtube.com", "time": 1800},
		},
	}
	rec := f.do(t, http.MethodPost, "/screen-time/sync", payload)
	require.Equal(t, http.StatusOK, rec.Code)

	var resp struct {
		Data struct {
			Source       string  `json:"source"`
			TotalMinutes float64 `json:"totalMinutes"`
		} `json:"data"`
	}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	assert.Equal(t, "extension", resp.Data.Source)
	assert.Equal(t, 120.0, resp.Data.TotalMinutes)
}

func TestSyncWithoutSitesAnswersFromStore(t *testing.T) {
	f := newScreenTimeFixture(t)

	rec := f.do(t, http.MethodPut, "/screen-time",
		map[string]interface{}{"totalTime": 240, "productiveTime": 180})
	require.Equal(t, http.StatusOK, rec.Code)

	// An empty sample carries nothing to buffer; the stored day comes back
	// labeled cached.
	rec = f.do(t, http.MethodPost, "/screen-time/sync",
		map[string]interface{}{"domains": []map[string]interface{}{}})
	require.Equal(t, http.StatusOK, rec.Code)

	var resp struct {
		Data struct {
			Source       string  `json:"source"`
			TotalMinutes float64 `json:"totalMinutes"`
		} `json:"data"`
	}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	assert.Equal(t, "cached", resp.Data.Source)
	assert.Equal(t, 240.0, resp.Data.TotalMinutes)
}

func TestExportCSV(t *testing.T) {
	f := newScreenTimeFixture(t)

	body := map[string]interface{}{
		"totalTime": 90,
		"topSites": []map[string]interface{}{
			{"url": "github.com", "minutes": 90, "category": "Productivity"},
		},
	}
	rec := f.do(t, http.MethodPut, "/screen-time", body)
	require.Equal(t, http.StatusOK, rec.Code)

	rec = f.do(t, http.MethodGet, "/screen-time/export", nil)
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Header().Get("Content-Type"), "text/csv")
	assert.Contains(t, rec.Body.String(), "date,site,minutes,category")
	assert.Contains(t, rec.Body.String(), "github.com")
}
