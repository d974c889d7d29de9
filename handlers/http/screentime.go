package httpHandler

import (
	"fmt"
	"net/http"
	"time"

	"distracto-server/extension"
	"distracto-server/logger"
	"distracto-server/middleware"
	"distracto-server/services"
	"distracto-server/usecases"

	"github.com/gin-gonic/gin"
)

type ScreenTimeHandler struct {
	useCase   *usecases.ScreenTimeUseCase
	processor *services.SyncProcessor
	log       *logger.Logger
}

func NewScreenTimeHandler(useCase *usecases.ScreenTimeUseCase, processor *services.SyncProcessor, log *logger.Logger) *ScreenTimeHandler {
	return &ScreenTimeHandler{useCase: useCase, processor: processor, log: log.With("handler", "screen-time")}
}

// parseDate accepts YYYY-MM-DD or RFC3339; an empty segment means today.
func parseDate(raw string) (time.Time, error) {
	if raw == "" {
		return time.Now().UTC(), nil
	}
	if t, err := time.Parse("2006-01-02", raw); err == nil {
		return t, nil
	}
	return time.Parse(time.RFC3339, raw)
}

// GetScreenTime handles GET /api/screen-time and /api/screen-time/:date
func (h *ScreenTimeHandler) GetScreenTime(c *gin.Context) {
	date, err := parseDate(c.Param("date"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid date"})
		return
	}

	record, err := h.useCase.GetForDate(middleware.UserID(c), date)
	if err != nil {
		h.log.Error("screen time fetch failed", "error", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Server error"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"data": record})
}

// UpdateScreenTime handles PUT /api/screen-time and /api/screen-time/:date
func (h *ScreenTimeHandler) UpdateScreenTime(c *gin.Context) {
	date, err := parseDate(c.Param("date"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid date"})
		return
	}

	var input usecases.ScreenTimeUpdate
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request body", "details": err.Error()})
		return
	}

	record, err := h.useCase.Update(middleware.UserID(c), date, input)
	if err != nil {
		h.log.Error("screen time update failed", "error", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Server error"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Screen time updated successfully", "data": record})
}

// GetWeekly handles GET /api/screen-time/weekly/:startDate
func (h *ScreenTimeHandler) GetWeekly(c *gin.Context) {
	start, err := parseDate(c.Param("startDate"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid start date"})
		return
	}

	records, err := h.useCase.Weekly(middleware.UserID(c), start)
	if err != nil {
		h.log.Error("weekly screen time fetch failed", "error", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Server error"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"data": records, "count": len(records)})
}

// Sync handles POST /api/screen-time/sync. The body is whatever the browser
// extension produced; it is normalized best-effort and buffered for
// persistence. The response always states the data source explicitly.
func (h *ScreenTimeHandler) Sync(c *gin.Context) {
	var payload map[string]interface{}
	if err := c.ShouldBindJSON(&payload); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request body", "details": err.Error()})
		return
	}

	report := extension.Transform(payload)
	if report == nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Unrecognized extension payload"})
		return
	}

	if len(report.TopSites) == 0 {
		// Nothing usable in the payload; answer from the stored day so
		// the extension still gets numbers, labeled by provenance.
		record, err := h.useCase.GetForDate(middleware.UserID(c), time.Now().UTC())
		if err != nil {
			h.log.Error("cached screen time fetch failed", "error", err)
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Server error"})
			return
		}
		c.JSON(http.StatusOK, gin.H{"data": extension.FromScreenTime(record)})
		return
	}

	h.processor.Add(middleware.UserID(c), *report)
	c.JSON(http.StatusOK, gin.H{"data": report})
}

// Export handles GET /api/screen-time/export, returning today's top sites
// as CSV.
func (h *ScreenTimeHandler) Export(c *gin.Context) {
	record, err := h.useCase.GetForDate(middleware.UserID(c), time.Now().UTC())
	if err != nil {
		h.log.Error("screen time export failed", "error", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Server error"})
		return
	}

	csv := "date,site,minutes,category\n"
	day := record.Date.Format("2006-01-02")
	for _, site := range record.TopSites {
		csv += fmt.Sprintf("%s,%s,%.2f,%s\n", day, site.URL, site.Minutes, site.Category)
	}

	c.Header("Content-Disposition", `attachment; filename="screen_time_data.csv"`)
	c.Data(http.StatusOK, "text/csv", []byte(csv))
}
