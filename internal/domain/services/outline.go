package services

import (
	"context"
)

// Outcome is the result of reconciling a submitted outline against the
// stored one.
type Outcome string

const (
	// OutcomePreserved means the submitted outline matched the stored
	// sections; nothing dependent on them was touched.
	OutcomePreserved Outcome = "preserved"
	// OutcomeReset means the outline changed structurally and all
	// section-dependent state was replaced atomically.
	OutcomeReset Outcome = "reset"
)

// OutlineEntryInput is one raw submitted outline entry, before
// normalization. A nil Index or blank title drops the entry silently.
type OutlineEntryInput struct {
	Index *int
	Title string
}

// OutlineService reconciles a newly submitted outline with the stored
// section configuration: identical structure preserves every dependent
// row, any structural change resets them all in one transaction.
type OutlineService interface {
	Configure(ctx context.Context, projectID, userID string, entries []OutlineEntryInput) (Outcome, error)
}
