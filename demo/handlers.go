package demo

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
)

type Handler struct {
	store *Store
}

func NewHandler(store *Store) *Handler {
	return &Handler{store: store}
}

// RegisterRoutes mounts the demo endpoints on the given group.
func (h *Handler) RegisterRoutes(api *gin.RouterGroup) {
	api.GET("/friends", h.GetFriends)
	api.GET("/friends/requests", h.GetFriendRequests)
	api.POST("/friends/requests", h.SendFriendRequest)
	api.POST("/friends/requests/:id/accept", h.AcceptFriendRequest)
	api.GET("/groups", h.GetGroups)
	api.POST("/groups", h.CreateGroup)
	api.GET("/chats", h.GetThreads)
	api.POST("/chats", h.CreateThread)
	api.GET("/chats/:id", h.GetThread)
	api.POST("/chats/:id/messages", h.SendMessage)
	api.POST("/chats/:id/read", h.MarkRead)
}

func (h *Handler) GetFriends(c *gin.Context) {
	friends := h.store.Friends()
	c.JSON(http.StatusOK, gin.H{"data": friends, "count": len(friends)})
}

func (h *Handler) GetFriendRequests(c *gin.Context) {
	requests := h.store.FriendRequests()
	c.JSON(http.StatusOK, gin.H{"data": requests, "count": len(requests)})
}

func (h *Handler) SendFriendRequest(c *gin.Context) {
	var req struct {
		Email string `json:"email" binding:"required"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request body", "details": err.Error()})
		return
	}
	request, err := h.store.SendFriendRequest(req.Email)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusCreated, gin.H{"data": request})
}

func (h *Handler) AcceptFriendRequest(c *gin.Context) {
	friend, err := h.store.AcceptFriendRequest(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, gin.H{"data": friend})
}

func (h *Handler) GetGroups(c *gin.Context) {
	groups := h.store.Groups()
	c.JSON(http.StatusOK, gin.H{"data": groups, "count": len(groups)})
}

func (h *Handler) CreateGroup(c *gin.Context) {
	var req struct {
		Name      string   `json:"name" binding:"required"`
		MemberIDs []string `json:"memberIds"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request body", "details": err.Error()})
		return
	}
	c.JSON(http.StatusCreated, gin.H{"data": h.store.CreateGroup(req.Name, req.MemberIDs)})
}

func (h *Handler) GetThreads(c *gin.Context) {
	threads := h.store.Threads()
	c.JSON(http.StatusOK, gin.H{"data": threads, "count": len(threads)})
}

func (h *Handler) GetThread(c *gin.Context) {
	thread, err := h.store.Thread(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, gin.H{"data": thread})
}

func (h *Handler) CreateThread(c *gin.Context) {
	var req struct {
		ParticipantIDs []string `json:"participantIds" binding:"required"`
		IsGroupChat    bool     `json:"isGroupChat"`
		GroupName      string   `json:"groupName"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request body", "details": err.Error()})
		return
	}
	c.JSON(http.StatusCreated, gin.H{"data": h.store.CreateThread(req.ParticipantIDs, req.IsGroupChat, req.GroupName)})
}

func (h *Handler) SendMessage(c *gin.Context) {
	var req struct {
		Content string `json:"content" binding:"required"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request body", "details": err.Error()})
		return
	}
	msg, err := h.store.SendMessage(c.Param("id"), req.Content)
	if err != nil {
		if errors.Is(err, ErrThreadNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": err.Error()})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to send message"})
		return
	}
	c.JSON(http.StatusCreated, gin.H{"data": msg})
}

func (h *Handler) MarkRead(c *gin.Context) {
	if err := h.store.MarkThreadRead(c.Param("id")); err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Chat marked as read"})
}
