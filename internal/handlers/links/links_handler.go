// internal/handlers/links/links_handler.go
package links

import (
	"net/http"

	"gameads-service/internal/domain/links"
	linksUsecase "gameads-service/internal/service/links"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

type LinksHandler struct {
	linksService *linksUsecase.LinksService
	logger       *zap.Logger
}

func NewLinksHandler(linksService *linksUsecase.LinksService, logger *zap.Logger) *LinksHandler {
	return &LinksHandler{linksService: linksService, logger: logger}
}

// Get handles GET /platform-links. Public; the footer reads this.
func (h *LinksHandler) Get(c *gin.Context) {
	p, err := h.linksService.Get(c.Request.Context())
	if err != nil {
		h.logger.Error("platform links fetch failed", zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Server error"})
		return
	}
	c.JSON(http.StatusOK, p)
}

// Update handles POST /platform-links/update behind the route guard.
func (h *LinksHandler) Update(c *gin.Context) {
	var req links.UpdateRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid input", "details": err.Error()})
		return
	}

	p, err := h.linksService.Update(c.Request.Context(), &req)
	if err != nil {
		h.logger.Error("platform links update failed", zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Server error"})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"message": "Platform links updated successfully",
		"links":   p,
	})
}
