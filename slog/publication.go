package slog

import (
	"context"
	"log/slog"
	"time"

	"github.com/fwojciec/pmcompare"
)

// Ensure LoggingPublicationReader implements pmcompare.PublicationReader.
var _ pmcompare.PublicationReader = (*LoggingPublicationReader)(nil)

// LoggingPublicationReader wraps a PublicationReader with debug logging.
type LoggingPublicationReader struct {
	next   pmcompare.PublicationReader
	logger *slog.Logger
}

// NewLoggingPublicationReader creates a new LoggingPublicationReader.
func NewLoggingPublicationReader(next pmcompare.PublicationReader, logger *slog.Logger) *LoggingPublicationReader {
	return &LoggingPublicationReader{next: next, logger: logger}
}

// ReadPublication logs the path and chapter count and delegates to the
// wrapped reader.
func (r *LoggingPublicationReader) ReadPublication(ctx context.Context, path string) (pub *pmcompare.Publication, err error) {
	defer func(begin time.Time) {
		chapters := 0
		if pub != nil {
			chapters = len(pub.Chapters)
		}
		r.logger.Info("read publication",
			"path", path,
			"chapters", chapters,
			"duration", time.Since(begin),
			"err", err,
		)
	}(time.Now())
	return r.next.ReadPublication(ctx, path)
}
