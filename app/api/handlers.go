package api

import (
	"errors"
	"log/slog"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/mdolezal/newsdesk/app/cfg"
	"github.com/mdolezal/newsdesk/app/config"
	"github.com/mdolezal/newsdesk/app/news"
)

func NewHandler(service ServiceInterface, config *config.Config, cache *news.Cache) *Handler {
	return &Handler{
		service: service,
		config:  config,
		cache:   cache,
	}
}

// GetAllFeeds serves the merged view of every configured category.
func (h *Handler) GetAllFeeds(c *gin.Context) {
	results := h.service.AllCategories(c.Request.Context())
	c.JSON(http.StatusOK, results)
}

// GetFeed serves one category, or fans out over a group alias. The key is
// tried as a category first, then as a group.
func (h *Handler) GetFeed(c *gin.Context) {
	key := c.Param("key")

	result, err := h.service.Category(c.Request.Context(), key)
	if err == nil {
		c.JSON(http.StatusOK, result)
		return
	}

	results, err := h.service.Group(c.Request.Context(), key)
	if err == nil {
		c.JSON(http.StatusOK, results)
		return
	}

	if errors.Is(err, news.ErrUnknownCategory) {
		slog.Debug("Unknown category requested", "key", key)
		c.JSON(http.StatusNotFound, gin.H{"error": "Neznámá kategorie: " + key})
		return
	}

	slog.Error("Category lookup failed", "key", key, "error", err)
	c.Status(http.StatusInternalServerError)
}

// GetIndex serves the static category and group metadata the front page is
// rendered from.
func (h *Handler) GetIndex(c *gin.Context) {
	categories := make([]gin.H, 0, len(h.config.Categories))
	for _, category := range h.config.Categories {
		categories = append(categories, gin.H{
			"key":  category.Key,
			"name": category.Name,
			"icon": category.Icon,
		})
	}

	c.JSON(http.StatusOK, gin.H{
		"service":    "Newsdesk",
		"version":    cfg.GetVersion(),
		"categories": categories,
		"groups":     h.config.Groups,
		"endpoints": gin.H{
			"feeds":  "/api/feeds",
			"feed":   "/api/feeds/<key>",
			"health": "/health",
		},
	})
}

// GetHealth reports basic liveness information.
func (h *Handler) GetHealth(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"timestamp":  time.Now().In(time.Local).Format(time.RFC3339),
		"categories": len(h.config.Categories),
		"sources":    h.config.SourceCount(),
		"cached":     h.cache.Len(),
	})
}
