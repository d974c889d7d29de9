package httpHandler

import (
	"net/http"

	"distracto-server/logger"
	"distracto-server/middleware"
	"distracto-server/usecases"

	"github.com/gin-gonic/gin"
)

type AIHandler struct {
	useCase *usecases.AIUseCase
	log     *logger.Logger
}

func NewAIHandler(useCase *usecases.AIUseCase, log *logger.Logger) *AIHandler {
	return &AIHandler{useCase: useCase, log: log.With("handler", "ai")}
}

type aiChatRequest struct {
	Message string `json:"message" validate:"required"`
	Model   string `json:"model"`
}

type aiTimetableRequest struct {
	Prompt string `json:"prompt"`
	Model  string `json:"model"`
}

// Chat handles POST /api/ai/chat
func (h *AIHandler) Chat(c *gin.Context) {
	var req aiChatRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request body", "details": err.Error()})
		return
	}
	if err := validate.Struct(req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	reply := h.useCase.Chat(req.Message, req.Model)
	c.JSON(http.StatusOK, gin.H{"data": gin.H{"response": reply}})
}

// GenerateTimetable handles POST /api/ai/timetable
func (h *AIHandler) GenerateTimetable(c *gin.Context) {
	var req aiTimetableRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request body", "details": err.Error()})
		return
	}

	timetable, err := h.useCase.GenerateTimetable(middleware.UserID(c), req.Prompt, req.Model)
	if err != nil {
		h.log.Error("timetable generation failed", "error", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Server error"})
		return
	}
	c.JSON(http.StatusCreated, gin.H{"message": "Timetable generated successfully", "data": timetable})
}
