package httpHandler

import (
	"errors"
	"net/http"

	"distracto-server/entities"
	"distracto-server/logger"
	"distracto-server/middleware"
	"distracto-server/usecases"

	"github.com/gin-gonic/gin"
)

type BlockedSitesHandler struct {
	useCase *usecases.BlockerUseCase
	log     *logger.Logger
}

func NewBlockedSitesHandler(useCase *usecases.BlockerUseCase, log *logger.Logger) *BlockedSitesHandler {
	return &BlockedSitesHandler{useCase: useCase, log: log.With("handler", "blocked-sites")}
}

// ListBlockedSites handles GET /api/website-blocker
func (h *BlockedSitesHandler) ListBlockedSites(c *gin.Context) {
	sites, err := h.useCase.List(middleware.UserID(c))
	if err != nil {
		h.log.Error("blocked sites fetch failed", "error", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Server error"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"data": sites, "count": len(sites)})
}

// CreateBlockedSite handles POST /api/website-blocker
func (h *BlockedSitesHandler) CreateBlockedSite(c *gin.Context) {
	var site entities.BlockedSite
	if err := c.ShouldBindJSON(&site); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request body", "details": err.Error()})
		return
	}

	if err := h.useCase.Create(middleware.UserID(c), &site); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusCreated, gin.H{"message": "Site blocked successfully", "data": site})
}

// UpdateBlockedSite handles PUT /api/website-blocker/:id
func (h *BlockedSitesHandler) UpdateBlockedSite(c *gin.Context) {
	var input usecases.BlockedSiteUpdate
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request body", "details": err.Error()})
		return
	}

	site, err := h.useCase.Update(middleware.UserID(c), c.Param("id"), input)
	if err != nil {
		if errors.Is(err, usecases.ErrNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "Blocked site not found"})
			return
		}
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Blocked site updated successfully", "data": site})
}

// DeleteBlockedSite handles DELETE /api/website-blocker/:id
func (h *BlockedSitesHandler) DeleteBlockedSite(c *gin.Context) {
	if err := h.useCase.Delete(middleware.UserID(c), c.Param("id")); err != nil {
		if errors.Is(err, usecases.ErrNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "Blocked site not found"})
			return
		}
		h.log.Error("blocked site delete failed", "error", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Server error"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Site unblocked successfully"})
}
