package httpHandler

import (
	"errors"
	"net/http"

	"distracto-server/logger"
	"distracto-server/middleware"
	"distracto-server/usecases"

	"github.com/gin-gonic/gin"
)

type UsersHandler struct {
	useCase *usecases.UsersUseCase
	log     *logger.Logger
}

func NewUsersHandler(useCase *usecases.UsersUseCase, log *logger.Logger) *UsersHandler {
	return &UsersHandler{useCase: useCase, log: log.With("handler", "users")}
}

// GetMe handles GET /api/users/me
func (h *UsersHandler) GetMe(c *gin.Context) {
	user, err := h.useCase.Get(middleware.UserID(c))
	if err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "User not found"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"data": user})
}

// GetProfile handles GET /api/users/profile
func (h *UsersHandler) GetProfile(c *gin.Context) {
	profile, err := h.useCase.Profile(middleware.UserID(c))
	if err != nil {
		if errors.Is(err, usecases.ErrNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "User not found"})
			return
		}
		h.log.Error("profile fetch failed", "error", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Server error"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"data": profile})
}

// UpdateProfile handles PUT /api/users/profile
func (h *UsersHandler) UpdateProfile(c *gin.Context) {
	var update usecases.ProfileUpdate
	if err := c.ShouldBindJSON(&update); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request body", "details": err.Error()})
		return
	}

	user, err := h.useCase.UpdateProfile(middleware.UserID(c), update)
	if err != nil {
		if errors.Is(err, usecases.ErrNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "User not found"})
			return
		}
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Profile updated successfully", "data": user})
}

// SearchUsers handles GET /api/users/search?q=&type=
func (h *UsersHandler) SearchUsers(c *gin.Context) {
	users, err := h.useCase.Search(c.Query("q"), c.Query("type"), middleware.UserID(c))
	if err != nil {
		h.log.Error("user search failed", "error", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Server error"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"data": users, "count": len(users)})
}

// FollowUser handles POST /api/users/follow/:userId
func (h *UsersHandler) FollowUser(c *gin.Context) {
	err := h.useCase.Follow(middleware.UserID(c), c.Param("userId"))
	switch {
	case err == nil:
		c.JSON(http.StatusOK, gin.H{"message": "User followed successfully"})
	case errors.Is(err, usecases.ErrSelfFollow):
		c.JSON(http.StatusBadRequest, gin.H{"error": "Cannot follow yourself"})
	case errors.Is(err, usecases.ErrNotFound):
		c.JSON(http.StatusNotFound, gin.H{"error": "User not found"})
	default:
		h.log.Error("follow failed", "error", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Server error"})
	}
}

// UnfollowUser handles DELETE /api/users/follow/:userId
func (h *UsersHandler) UnfollowUser(c *gin.Context) {
	err := h.useCase.Unfollow(middleware.UserID(c), c.Param("userId"))
	switch {
	case err == nil:
		c.JSON(http.StatusOK, gin.H{"message": "User unfollowed successfully"})
	case errors.Is(err, usecases.ErrSelfFollow):
		c.JSON(http.StatusBadRequest, gin.H{"error": "Cannot unfollow yourself"})
	case errors.Is(err, usecases.ErrNotFound):
		c.JSON(http.StatusNotFound, gin.H{"error": "User not found"})
	default:
		h.log.Error("unfollow failed", "error", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Server error"})
	}
}
