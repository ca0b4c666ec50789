// internal/domain/links/entity.go
package links

import "time"

// PlatformLinks is the singleton row of social/streaming profile URLs shown
// in the site footer. Created empty on first read if missing.
type PlatformLinks struct {
	ID        int64     `json:"id" db:"id"`
	TikTok    string    `json:"TikTok" db:"tiktok"`
	Rednote   string    `json:"Rednote" db:"rednote"`
	YouTube   string    `json:"YouTube" db:"youtube"`
	Facebook  string    `json:"Facebook" db:"facebook"`
	Instagram string    `json:"Instagram" db:"instagram"`
	Twitter   string    `json:"Twitter" db:"twitter"`
	Twitch    string    `json:"Twitch" db:"twitch"`
	Kick      string    `json:"Kick" db:"kick"`
	LinkedIn  string    `json:"LinkedIn" db:"linkedin"`
	Discord   string    `json:"Discord" db:"discord"`
	Reddit    string    `json:"Reddit" db:"reddit"`
	CreatedAt time.Time `json:"createdAt" db:"created_at"`
	UpdatedAt time.Time `json:"updatedAt" db:"updated_at"`
}

// UpdateRequest carries the fields to overwrite. Pointers distinguish
// "leave unchanged" from "clear".
type UpdateRequest struct {
	TikTok    *string `json:"TikTok"`
	Rednote   *string `json:"Rednote"`
	YouTube   *string `json:"YouTube"`
	Facebook  *string `json:"Facebook"`
	Instagram *string `json:"Instagram"`
	Twitter   *string `json:"Twitter"`
	Twitch    *string `json:"Twitch"`
	Kick      *string `json:"Kick"`
	LinkedIn  *string `json:"LinkedIn"`
	Discord   *string `json:"Discord"`
	Reddit    *string `json:"Reddit"`
}

// Apply overwrites the fields present in req.
func (p *PlatformLinks) Apply(req *UpdateRequest) {
	set := func(dst *string, src *string) {
		if src != nil {
			*dst = *src
		}
	}
	set(&p.TikTok, req.TikTok)
	set(&p.Rednote, req.Rednote)
	set(&p.YouTube, req.YouTube)
	set(&p.Facebook, req.Facebook)
	set(&p.Instagram, req.Instagram)
	set(&p.Twitter, req.Twitter)
	set(&p.Twitch, req.Twitch)
	set(&p.Kick, req.Kick)
	set(&p.LinkedIn, req.LinkedIn)
	set(&p.Discord, req.Discord)
	set(&p.Reddit, req.Reddit)
}
