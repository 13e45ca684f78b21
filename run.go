package prospekt

import (
	"context"
	"time"
)

// Run represents one recorded extraction run.
type Run struct {
	ID           string    `json:"id"`
	SourceURL    string    `json:"sourceUrl"`
	DocumentHash string    `json:"documentHash"`
	LeafletCount int       `json:"leafletCount"`
	CreatedAt    time.Time `json:"createdAt"`

	// Leaflets holds the run's records in extraction order.
	// Populated on CreateRun input; loaded on demand via
	// FindLeafletsByRun.
	Leaflets []*Leaflet `json:"leaflets,omitempty"`
}

// Validate returns an error if the run contains invalid fields.
func (r *Run) Validate() error {
	if r.SourceURL == "" {
		return Errorf(EINVALID, "run source URL required")
	}
	for _, l := range r.Leaflets {
		if err := l.Validate(); err != nil {
			return err
		}
	}
	return nil
}

// RunFilter represents a filter for FindRuns.
type RunFilter struct {
	ID        *string `json:"id"`
	SourceURL *string `json:"sourceUrl"`

	Offset int `json:"offset"`
	Limit  int `json:"limit"`
}

// RunService represents a service for recording extraction runs.
// Recording runs is history keeping only; entries are never
// deduplicated across runs.
type RunService interface {
	// CreateRun records a run and its leaflets. The service assigns
	// the ID and creation time.
	CreateRun(ctx context.Context, run *Run) error

	// FindRunByID retrieves a run by ID.
	// Returns ENOTFOUND if the run does not exist.
	FindRunByID(ctx context.Context, id string) (*Run, error)

	// FindRuns retrieves runs matching the filter, newest first.
	FindRuns(ctx context.Context, filter RunFilter) ([]*Run, error)

	// FindLeafletsByRun retrieves a run's leaflets in extraction order.
	FindLeafletsByRun(ctx context.Context, runID string) ([]*Leaflet, error)
}
