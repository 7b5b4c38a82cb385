package domain

import "strings"

// Album is a titled collection of photos owned by a user.
type Album struct {
	UserID int    `json:"userId"`
	ID     int    `json:"id"`
	Title  string `json:"title"`
}

func (a Album) EntityID() int { return a.ID }

func (a Album) WithID(id int) Album {
	a.ID = id
	return a
}

// ParentID returns the owning user's ID.
func (a Album) ParentID() int { return a.UserID }

// Validate requires a title and a positive owner ID.
func (a Album) Validate() error {
	if strings.TrimSpace(a.Title) == "" {
		return NewValidationError("title", "Title is required")
	}
	if a.UserID <= 0 {
		return NewValidationError("userId", "Valid UserId is required")
	}
	return nil
}
