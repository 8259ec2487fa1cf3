package models

import (
	"time"
)

// Section is one titled slice of a project's outline. Content is nil
// until generation has run for the section.
type Section struct {
	ID        string    `json:"id" db:"id"`
	ProjectID string    `json:"project_id" db:"project_id"`
	Index     int       `json:"index" db:"index"`
	Title     string    `json:"title" db:"title"`
	Content   *string   `json:"current_content" db:"content"`
	CreatedAt time.Time `json:"created_at" db:"created_at"`
	UpdatedAt time.Time `json:"updated_at" db:"updated_at"`
}

// OutlineEntry is one normalized (index, title) pair of a submitted
// outline. Titles are whitespace-trimmed; entries are kept sorted by
// index when compared against stored sections.
type OutlineEntry struct {
	Index int    `json:"index"`
	Title string `json:"title"`
}
