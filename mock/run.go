package mock

import (
	"context"

	"github.com/ksiska/prospekt"
)

var _ prospekt.RunService = (*RunService)(nil)

// RunService is a mock implementation of prospekt.RunService.
type RunService struct {
	CreateRunFn         func(ctx context.Context, run *prospekt.Run) error
	FindRunByIDFn       func(ctx context.Context, id string) (*prospekt.Run, error)
	FindRunsFn          func(ctx context.Context, filter prospekt.RunFilter) ([]*prospekt.Run, error)
	FindLeafletsByRunFn func(ctx context.Context, runID string) ([]*prospekt.Leaflet, error)
}

func (s *RunService) CreateRun(ctx context.Context, run *prospekt.Run) error {
	return s.CreateRunFn(ctx, run)
}

func (s *RunService) FindRunByID(ctx context.Context, id string) (*prospekt.Run, error) {
	return s.FindRunByIDFn(ctx, id)
}

func (s *RunService) FindRuns(ctx context.Context, filter prospekt.RunFilter) ([]*prospekt.Run, error) {
	return s.FindRunsFn(ctx, filter)
}

func (s *RunService) FindLeafletsByRun(ctx context.Context, runID string) ([]*prospekt.Leaflet, error) {
	return s.FindLeafletsByRunFn(ctx, runID)
}
