// internal/domain/game/dto.go
package game

// ListFilter narrows the public game listing.
type ListFilter struct {
	Category     string
	FeaturedOnly bool
	Limit        int
}

// UpsertRequest creates or fully updates a listing from the admin dashboard.
type UpsertRequest struct {
	Title            string     `json:"title" binding:"required"`
	Description      string     `json:"description" binding:"required"`
	ShortDescription string     `json:"shortDescription" binding:"required,max=200"`
	Image            string     `json:"image" binding:"required"`
	Thumbnail        string     `json:"thumbnail"`
	Category         string     `json:"category" binding:"required"`
	Platforms        []string   `json:"platforms"`
	Links            StoreLinks `json:"links"`
	TrailerURL       string     `json:"trailerUrl"`
	Featured         bool       `json:"featured"`
	IsNewRelease     bool       `json:"isNewRelease"`
	Order            int        `json:"order"`
	IsActive         *bool      `json:"isActive"`
}

// OrderUpdate assigns one game its position in the catalog ordering.
type OrderUpdate struct {
	ID    int64 `json:"id" binding:"required"`
	Order int   `json:"order"`
}

// ReorderRequest repositions several games at once from the dashboard.
type ReorderRequest struct {
	Games []OrderUpdate `json:"games" binding:"required,min=1,dive"`
}

// ValidCategory reports whether c is one of the accepted categories.
func ValidCategory(c string) bool {
	for _, known := range Categories {
		if c == known {
			return true
		}
	}
	return false
}
