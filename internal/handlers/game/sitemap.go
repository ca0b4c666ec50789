// internal/handlers/game/sitemap.go
package game

import (
	"encoding/xml"
	"fmt"
	"net/http"

	"gameads-service/internal/domain/game"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

type sitemapURL struct {
	Loc        string `xml:"loc"`
	LastMod    string `xml:"lastmod,omitempty"`
	ChangeFreq string `xml:"changefreq,omitempty"`
	Priority   string `xml:"priority,omitempty"`
}

type urlSet struct {
	XMLName xml.Name     `xml:"urlset"`
	Xmlns   string       `xml:"xmlns,attr"`
	URLs    []sitemapURL `xml:"url"`
}

// Sitemap handles GET /sitemap.xml, built from the active game pages so
// crawlers pick up new listings without a deploy.
func (h *GameHandler) Sitemap(baseURL string) gin.HandlerFunc {
	return func(c *gin.Context) {
		games, err := h.gameService.List(c.Request.Context(), game.ListFilter{})
		if err != nil {
			h.logger.Error("sitemap generation failed", zap.Error(err))
			c.String(http.StatusInternalServerError, "Error generating sitemap")
			return
		}

		set := urlSet{
			Xmlns: "http://www.sitemaps.org/schemas/sitemap/0.9",
			URLs: []sitemapURL{
				{Loc: baseURL + "/", ChangeFreq: "daily", Priority: "1.0"},
			},
		}
		for _, g := range games {
			lastMod := g.UpdatedAt
			if lastMod.IsZero() {
				lastMod = g.CreatedAt
			}
			set.URLs = append(set.URLs, sitemapURL{
				Loc:        fmt.Sprintf("%s/game/%d", baseURL, g.ID),
				LastMod:    lastMod.Format("2006-01-02"),
				ChangeFreq: "monthly",
				Priority:   "0.6",
			})
		}

		body, err := xml.MarshalIndent(set, "", "  ")
		if err != nil {
			h.logger.Error("sitemap marshal failed", zap.Error(err))
			c.String(http.StatusInternalServerError, "Error generating sitemap")
			return
		}

		c.Header("Cache-Control", "public, max-age=3600")
		c.Data(http.StatusOK, "application/xml", append([]byte(xml.Header), body...))
	}
}
