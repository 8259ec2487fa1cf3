package models

import (
	"time"
)

// Prompt markers recorded for automatic (non user-prompted) runs.
const (
	PromptInitialGeneration = "initial generation"
	PromptRegenerate        = "regenerate"
)

// Revision is one historical body snapshot for a section. The ledger is
// append-only; versions are per-section, gapless and start at 1.
type Revision struct {
	ID         string    `json:"id" db:"id"`
	SectionID  string    `json:"section_id" db:"section_id"`
	Version    int       `json:"version" db:"version"`
	Prompt     string    `json:"prompt" db:"prompt"`
	OldContent *string   `json:"old_content" db:"old_content"`
	NewContent string    `json:"new_content" db:"new_content"`
	CreatedAt  time.Time `json:"created_at" db:"created_at"`
}
