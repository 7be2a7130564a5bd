package diagnosis

import (
	"context"
	"errors"
)

// ErrNotFound reports that no posture-analysis record exists for the
// requested history id. Unlike infrastructure hiccups, this indicates a
// caller error and is surfaced to the gateway.
var ErrNotFound = errors.New("diagnosis: posture history not found")

// Context is a read-only snapshot of a user's posture-analysis record used
// to enrich outbound AI requests. It is fetched per request, never cached.
type Context struct {
	Diagnosis           string
	RecommendedExercise string
}

// Resolver fetches the diagnosis snapshot for a posture-history record.
type Resolver interface {
	Resolve(ctx context.Context, historyID int64) (Context, error)
}
