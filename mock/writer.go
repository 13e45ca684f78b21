package mock

import (
	"context"

	"github.com/ksiska/prospekt"
)

var _ prospekt.LeafletWriter = (*LeafletWriter)(nil)

// LeafletWriter is a mock implementation of prospekt.LeafletWriter.
type LeafletWriter struct {
	WriteLeafletsFn func(ctx context.Context, leaflets []*prospekt.Leaflet) error
}

func (w *LeafletWriter) WriteLeaflets(ctx context.Context, leaflets []*prospekt.Leaflet) error {
	return w.WriteLeafletsFn(ctx, leaflets)
}
