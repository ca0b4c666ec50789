// internal/handlers/game/game_handler.go
package game

import (
	"errors"
	"net/http"
	"strconv"

	"gameads-service/internal/domain/game"
	xerrors "gameads-service/internal/pkg/errors"
	gameUsecase "gameads-service/internal/service/game"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

type GameHandler struct {
	gameService *gameUsecase.GameService
	logger      *zap.Logger
}

func NewGameHandler(gameService *gameUsecase.GameService, logger *zap.Logger) *GameHandler {
	return &GameHandler{gameService: gameService, logger: logger}
}

func parseID(c *gin.Context) (int64, bool) {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid game id"})
		return 0, false
	}
	return id, true
}

func (h *GameHandler) fail(c *gin.Context, err error) {
	switch {
	case errors.Is(err, xerrors.ErrNotFound):
		c.JSON(http.StatusNotFound, gin.H{"error": "Game not found"})
	case errors.Is(err, xerrors.ErrInvalidInput):
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
	default:
		h.logger.Error("game request failed", zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Server error"})
	}
}

// List handles GET /games with optional category/featured/limit filters.
func (h *GameHandler) List(c *gin.Context) {
	filter := game.ListFilter{
		Category:     c.Query("category"),
		FeaturedOnly: c.Query("featured") == "true",
	}
	if raw := c.Query("limit"); raw != "" {
		if n, err := strconv.Atoi(raw); err == nil && n > 0 {
			filter.Limit = n
		}
	}

	games, err := h.gameService.List(c.Request.Context(), filter)
	if err != nil {
		h.fail(c, err)
		return
	}
	c.JSON(http.StatusOK, games)
}

// ListAll handles GET /games/admin/all, inactive listings included.
func (h *GameHandler) ListAll(c *gin.Context) {
	games, err := h.gameService.ListAll(c.Request.Context())
	if err != nil {
		h.fail(c, err)
		return
	}
	c.JSON(http.StatusOK, games)
}

// Featured handles GET /games/featured.
func (h *GameHandler) Featured(c *gin.Context) {
	games, err := h.gameService.Featured(c.Request.Context())
	if err != nil {
		h.fail(c, err)
		return
	}
	c.JSON(http.StatusOK, games)
}

// NewReleases handles GET /games/new.
func (h *GameHandler) NewReleases(c *gin.Context) {
	games, err := h.gameService.NewReleases(c.Request.Context())
	if err != nil {
		h.fail(c, err)
		return
	}
	c.JSON(http.StatusOK, games)
}

// Get handles GET /games/:id.
func (h *GameHandler) Get(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}

	g, err := h.gameService.Get(c.Request.Context(), id)
	if err != nil {
		h.fail(c, err)
		return
	}
	c.JSON(http.StatusOK, g)
}

// Create handles POST /games.
func (h *GameHandler) Create(c *gin.Context) {
	var req game.UpsertRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid input", "details": err.Error()})
		return
	}

	g, err := h.gameService.Create(c.Request.Context(), &req)
	if err != nil {
		h.fail(c, err)
		return
	}
	c.JSON(http.StatusCreated, g)
}

// Update handles PUT /games/:id.
func (h *GameHandler) Update(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}

	var req game.UpsertRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid input", "details": err.Error()})
		return
	}

	g, err := h.gameService.Update(c.Request.Context(), id, &req)
	if err != nil {
		h.fail(c, err)
		return
	}
	c.JSON(http.StatusOK, g)
}

// Reorder handles PATCH /games/reorder.
func (h *GameHandler) Reorder(c *gin.Context) {
	var req game.ReorderRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid input", "details": err.Error()})
		return
	}

	if err := h.gameService.Reorder(c.Request.Context(), &req); err != nil {
		h.fail(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Games reordered successfully"})
}

// Delete handles DELETE /games/:id.
func (h *GameHandler) Delete(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}

	if err := h.gameService.Delete(c.Request.Context(), id); err != nil {
		h.fail(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Game deleted successfully"})
}
