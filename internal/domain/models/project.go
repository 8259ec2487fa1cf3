package models

import (
	"time"
)

// DocType selects the export target of a project.
type DocType string

const (
	// DocTypeReport is a heading+paragraph structured Word document.
	DocTypeReport DocType = "docx"
	// DocTypeSlides is a one-slide-per-section deck.
	DocTypeSlides DocType = "pptx"
)

// Valid reports whether the doc type is one of the supported kinds.
func (d DocType) Valid() bool {
	return d == DocTypeReport || d == DocTypeSlides
}

// ProjectStatus tracks where a project is in its lifecycle. Every
// outline reconfiguration moves it back to configured.
type ProjectStatus string

const (
	StatusConfigured ProjectStatus = "configured"
	StatusGenerated  ProjectStatus = "generated"
)

type Project struct {
	ID        string        `json:"id" db:"id"`
	UserID    string        `json:"user_id" db:"user_id"`
	Title     string        `json:"title" db:"title"`
	DocType   DocType       `json:"doc_type" db:"doc_type"`
	MainTopic string        `json:"main_topic" db:"main_topic"`
	Status    ProjectStatus `json:"status" db:"status"`
	CreatedAt time.Time     `json:"created_at" db:"created_at"`
	UpdatedAt time.Time     `json:"updated_at" db:"updated_at"`
}
