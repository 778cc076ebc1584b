package models

import (
	"strings"
	"time"
)

// Student mirrors the upstream student resource.
type Student struct {
	ID        string    `json:"id"`
	NameFirst string    `json:"name_first"`
	NameLast  string    `json:"name_last"`
	Email     string    `json:"email"`
	Phone     string    `json:"phone,omitempty"`
	Company   string    `json:"company,omitempty"`
	Notes     string    `json:"notes,omitempty"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// FullName renders the display name used on rosters and search results.
func (s Student) FullName() string {
	return joinName(s.NameFirst, s.NameLast)
}

func joinName(first, last string) string {
	return strings.TrimSpace(strings.TrimSpace(first) + " " + strings.TrimSpace(last))
}
