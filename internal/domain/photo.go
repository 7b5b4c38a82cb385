package domain

import "strings"

// Photo is an image belonging to an album.
type Photo struct {
	AlbumID      int    `json:"albumId"`
	ID           int    `json:"id"`
	Title        string `json:"title"`
	URL          string `json:"url"`
	ThumbnailURL string `json:"thumbnailUrl"`
}

func (p Photo) EntityID() int { return p.ID }

func (p Photo) WithID(id int) Photo {
	p.ID = id
	return p
}

// ParentID returns the owning album's ID.
func (p Photo) ParentID() int { return p.AlbumID }

// Validate requires a title, an image URL, and a positive album ID.
func (p Photo) Validate() error {
	if strings.TrimSpace(p.Title) == "" {
		return NewValidationError("title", "Title is required")
	}
	if strings.TrimSpace(p.URL) == "" {
		return NewValidationError("url", "Url is required")
	}
	if p.AlbumID <= 0 {
		return NewValidationError("albumId", "Valid AlbumId is required")
	}
	return nil
}
