// internal/domain/game/entity.go
package game

import (
	"time"

	"github.com/lib/pq"
)

// Category values accepted for a game listing.
var Categories = []string{
	"Simulation", "RPG", "Strategy", "Action", "Puzzle", "Adventure", "Sports", "Other",
}

// StoreLinks holds one URL per distribution platform. Empty string means the
// game is not published there.
type StoreLinks struct {
	GooglePlay     string `json:"googlePlay"`
	AppStore       string `json:"appStore"`
	HuaweiStore    string `json:"huaweiStore"`
	AmazonAppStore string `json:"amazonAppStore"`
	PS             string `json:"ps"`
	Xbox           string `json:"xbox"`
	NintendoSwitch string `json:"nintendoSwitch"`
	Steam          string `json:"steam"`
	EpicStore      string `json:"epicStore"`
}

// Game is a catalog listing shown on the marketing site.
type Game struct {
	ID               int64          `json:"id" db:"id"`
	Title            string         `json:"title" db:"title"`
	Description      string         `json:"description" db:"description"`
	ShortDescription string         `json:"shortDescription" db:"short_description"`
	Image            string         `json:"image" db:"image"`
	Thumbnail        string         `json:"thumbnail" db:"thumbnail"`
	Category         string         `json:"category" db:"category"`
	Platforms        pq.StringArray `json:"platforms" db:"platforms"`
	Links            StoreLinks     `json:"links" db:"links"`
	TrailerURL       string         `json:"trailerUrl" db:"trailer_url"`
	Featured         bool           `json:"featured" db:"featured"`
	IsNewRelease     bool           `json:"isNewRelease" db:"is_new_release"`
	Order            int            `json:"order" db:"sort_order"`
	ReleaseDate      time.Time      `json:"releaseDate" db:"release_date"`
	IsActive         bool           `json:"isActive" db:"is_active"`
	CreatedAt        time.Time      `json:"createdAt" db:"created_at"`
	UpdatedAt        time.Time      `json:"updatedAt" db:"updated_at"`
}
