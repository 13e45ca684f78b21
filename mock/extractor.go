package mock

import "github.com/ksiska/prospekt"

var _ prospekt.Extractor = (*Extractor)(nil)

// Extractor is a mock implementation of prospekt.Extractor.
type Extractor struct {
	ExtractFn func(html string) ([]*prospekt.Leaflet, error)
}

func (e *Extractor) Extract(html string) ([]*prospekt.Leaflet, error) {
	return e.ExtractFn(html)
}
