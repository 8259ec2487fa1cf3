package models

import (
	"time"
)

// Feedback is a single like/dislike vote on a section. Multiple entries
// per section form a running tally, not a single state.
type Feedback struct {
	ID        string    `json:"id" db:"id"`
	SectionID string    `json:"section_id" db:"section_id"`
	IsLike    bool      `json:"is_like" db:"is_like"`
	CreatedAt time.Time `json:"created_at" db:"created_at"`
}

// Comment is a free-text note attached to a section.
type Comment struct {
	ID        string    `json:"id" db:"id"`
	SectionID string    `json:"section_id" db:"section_id"`
	Comment   string    `json:"comment" db:"comment"`
	CreatedAt time.Time `json:"created_at" db:"created_at"`
}
