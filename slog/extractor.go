package slog

import (
	"log/slog"
	"time"

	"github.com/ksiska/prospekt"
)

// Ensure LoggingExtractor implements prospekt.Extractor.
var _ prospekt.Extractor = (*LoggingExtractor)(nil)

// LoggingExtractor wraps an Extractor with extraction logging.
type LoggingExtractor struct {
	next   prospekt.Extractor
	logger *slog.Logger
}

// NewLoggingExtractor creates a new LoggingExtractor.
func NewLoggingExtractor(next prospekt.Extractor, logger *slog.Logger) *LoggingExtractor {
	return &LoggingExtractor{next: next, logger: logger}
}

// Extract logs the number of extracted leaflets and delegates to the
// wrapped extractor.
func (e *LoggingExtractor) Extract(html string) (leaflets []*prospekt.Leaflet, err error) {
	defer func(begin time.Time) {
		e.logger.Info("extract",
			"leaflets", len(leaflets),
			"duration", time.Since(begin),
			"err", err,
		)
	}(time.Now())
	return e.next.Extract(html)
}
