package httpHandler

import (
	"errors"
	"net/http"

	"distracto-server/logger"
	"distracto-server/middleware"
	"distracto-server/repositories"
	"distracto-server/usecases"
	"distracto-server/ws"

	"github.com/gin-gonic/gin"
)

type SocialHandler struct {
	useCase *usecases.SocialUseCase
	users   repositories.UserRepository
	manager *ws.Manager
	log     *logger.Logger
}

func NewSocialHandler(useCase *usecases.SocialUseCase, users repositories.UserRepository, manager *ws.Manager, log *logger.Logger) *SocialHandler {
	return &SocialHandler{useCase: useCase, users: users, manager: manager, log: log.With("handler", "social")}
}

type createChatRequest struct {
	Participants []string `json:"participants" validate:"required,min=1"`
	IsGroupChat  bool     `json:"isGroupChat"`
	GroupName    string   `json:"groupName"`
}

type sendMessageRequest struct {
	Content string `json:"content" validate:"required"`
}

// ListChats handles GET /api/social/chats
func (h *SocialHandler) ListChats(c *gin.Context) {
	chats, err := h.useCase.ListChats(middleware.UserID(c))
	if err != nil {
		h.log.Error("chat list failed", "error", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Server error"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"data": chats, "count": len(chats)})
}

// CreateChat handles POST /api/social/chats
func (h *SocialHandler) CreateChat(c *gin.Context) {
	var req createChatRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request body", "details": err.Error()})
		return
	}
	if err := validate.Struct(req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	chat, err := h.useCase.CreateChat(middleware.UserID(c), req.Participants, req.IsGroupChat, req.GroupName)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusCreated, gin.H{"data": chat})
}

// SendMessage handles POST /api/social/chats/:chatId/messages. Recipients with
// an open websocket get a new-message push.
func (h *SocialHandler) SendMessage(c *gin.Context) {
	var req sendMessageRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request body", "details": err.Error()})
		return
	}
	if err := validate.Struct(req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	userID := middleware.UserID(c)
	chatID := c.Param("chatId")

	msg, recipients, err := h.useCase.SendMessage(userID, chatID, req.Content)
	if err != nil {
		switch {
		case errors.Is(err, usecases.ErrNotFound):
			c.JSON(http.StatusNotFound, gin.H{"error": "Chat not found"})
		case errors.Is(err, usecases.ErrNotParticipant):
			c.JSON(http.StatusForbidden, gin.H{"error": "Not a participant in this chat"})
		default:
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		}
		return
	}

	senderName := ""
	if sender, err := h.users.GetByID(userID); err == nil {
		senderName = sender.DisplayName
	}
	for _, recipient := range recipients {
		h.manager.Emit(recipient, ws.Event{Event: "new-message", Data: gin.H{
			"chatId":     chatID,
			"message":    msg,
			"senderName": senderName,
		}})
	}

	c.JSON(http.StatusCreated, gin.H{"data": msg})
}

// MarkChatRead handles POST /api/social/chats/:chatId/read
func (h *SocialHandler) MarkChatRead(c *gin.Context) {
	chat, err := h.useCase.MarkRead(middleware.UserID(c), c.Param("chatId"))
	if err != nil {
		switch {
		case errors.Is(err, usecases.ErrNotFound):
			c.JSON(http.StatusNotFound, gin.H{"error": "Chat not found"})
		case errors.Is(err, usecases.ErrNotParticipant):
			c.JSON(http.StatusForbidden, gin.H{"error": "Not a participant in this chat"})
		default:
			h.log.Error("mark read failed", "error", err)
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Server error"})
		}
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Chat marked as read", "data": chat})
}

// GetFollowers handles GET /api/social/followers
func (h *SocialHandler) GetFollowers(c *gin.Context) {
	users, err := h.useCase.Followers(middleware.UserID(c))
	if err != nil {
		h.log.Error("followers fetch failed", "error", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Server error"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"data": users, "count": len(users)})
}

// GetFollowing handles GET /api/social/following
func (h *SocialHandler) GetFollowing(c *gin.Context) {
	users, err := h.useCase.Following(middleware.UserID(c))
	if err != nil {
		h.log.Error("following fetch failed", "error", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Server error"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"data": users, "count": len(users)})
}
