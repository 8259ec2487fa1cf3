package repositories

import (
	"context"

	"draftdeck/internal/domain/models"
)

// RevisionRepository is the append-only revision ledger. Versions are
// computed at insert time from the latest existing revision of the
// section, never cached, so concurrent appends surface as conflicts
// instead of silent duplicates.
type RevisionRepository interface {
	// Append inserts the revision, filling in Version, ID and
	// CreatedAt. Returns domain.ConflictError when a concurrent
	// append claimed the same version.
	Append(ctx context.Context, rev *models.Revision) error

	// Latest returns the highest-version revision for the section,
	// or nil when the section has none.
	Latest(ctx context.Context, sectionID string) (*models.Revision, error)

	// DeleteByProject removes all revisions of the project's sections.
	DeleteByProject(ctx context.Context, projectID string) error
}
