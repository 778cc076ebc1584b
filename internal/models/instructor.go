package models

import "time"

// Instructor mirrors the upstream instructor resource.
type Instructor struct {
	ID        string    `json:"id"`
	NameFirst string    `json:"name_first"`
	NameLast  string    `json:"name_last"`
	Email     string    `json:"email"`
	Bio       string    `json:"bio,omitempty"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// FullName renders the display name used on course rows and search results.
func (i Instructor) FullName() string {
	return joinName(i.NameFirst, i.NameLast)
}
