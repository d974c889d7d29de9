package httpHandler

import (
	"errors"
	"net/http"
	"strconv"
	"time"

	"distracto-server/entities"
	"distracto-server/logger"
	"distracto-server/middleware"
	"distracto-server/usecases"

	"github.com/gin-gonic/gin"
)

type TimetableHandler struct {
	useCase *usecases.TimetableUseCase
	log     *logger.Logger
}

func NewTimetableHandler(useCase *usecases.TimetableUseCase, log *logger.Logger) *TimetableHandler {
	return &TimetableHandler{useCase: useCase, log: log.With("handler", "timetable")}
}

// ListTimetables handles GET /api/timetable with optional date and limit
// query parameters.
func (h *TimetableHandler) ListTimetables(c *gin.Context) {
	var date *time.Time
	if raw := c.Query("date"); raw != "" {
		parsed, err := parseDate(raw)
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid date"})
			return
		}
		date = &parsed
	}

	limit := 0
	if raw := c.Query("limit"); raw != "" {
		parsed, err := strconv.Atoi(raw)
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid limit"})
			return
		}
		limit = parsed
	}

	timetables, err := h.useCase.List(middleware.UserID(c), date, limit)
	if err != nil {
		h.log.Error("timetable fetch failed", "error", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Server error"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"data": timetables, "count": len(timetables)})
}

// CreateTimetable handles POST /api/timetable
func (h *TimetableHandler) CreateTimetable(c *gin.Context) {
	var timetable entities.Timetable
	if err := c.ShouldBindJSON(&timetable); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request body", "details": err.Error()})
		return
	}

	if err := h.useCase.Create(middleware.UserID(c), &timetable); err != nil {
		h.log.Error("timetable create failed", "error", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Server error"})
		return
	}
	c.JSON(http.StatusCreated, gin.H{"message": "Timetable created successfully", "data": timetable})
}

// UpdateTimetable handles PUT /api/timetable/:id
func (h *TimetableHandler) UpdateTimetable(c *gin.Context) {
	var input entities.Timetable
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request body", "details": err.Error()})
		return
	}

	timetable, err := h.useCase.Update(middleware.UserID(c), c.Param("id"), &input)
	if err != nil {
		if errors.Is(err, usecases.ErrNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "Timetable not found"})
			return
		}
		h.log.Error("timetable update failed", "error", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Server error"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Timetable updated successfully", "data": timetable})
}

// DeleteTimetable handles DELETE /api/timetable/:id
func (h *TimetableHandler) DeleteTimetable(c *gin.Context) {
	if err := h.useCase.Delete(middleware.UserID(c), c.Param("id")); err != nil {
		if errors.Is(err, usecases.ErrNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "Timetable not found"})
			return
		}
		h.log.Error("timetable delete failed", "error", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Server error"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Timetable deleted successfully"})
}
