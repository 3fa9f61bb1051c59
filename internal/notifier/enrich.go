package notifier

import (
	"context"

	"go.uber.org/zap"

	"github.com/your-org/uploadnotifier/pkg/storage/objectstore"
)

// defaultContentType is substituted whenever the storage backend cannot
// tell us better.
const defaultContentType = "application/octet-stream"

// Enricher derives FileMetadata for a record with one head-object lookup
// against the storage backend. Lookup failures are recoverable: the lookup
// is never retried, the default content type is substituted, and a warning
// is logged. This keeps enrichment inside the invocation's time budget.
type Enricher struct {
	store  objectstore.Client
	logger *zap.Logger
}

func NewEnricher(store objectstore.Client, logger *zap.Logger) *Enricher {
	return &Enricher{store: store, logger: logger}
}

func (e *Enricher) Enrich(ctx context.Context, rec *UploadRecord) (FileMetadata, error) {
	formatted, err := FormatSize(rec.SizeBytes)
	if err != nil {
		return FileMetadata{}, err
	}

	contentType := defaultContentType
	info, err := e.store.Stat(ctx, rec.SourceBucket, rec.ObjectKey)
	switch {
	case err != nil:
		e.logger.Warn("content type lookup failed, using default",
			zap.String("bucket", rec.SourceBucket),
			zap.String("object_key", rec.ObjectKey),
			zap.Error(err))
	case info.ContentType == "":
		e.logger.Warn("no content type on object, using default",
			zap.String("object_key", rec.ObjectKey))
	default:
		contentType = info.ContentType
	}

	return FileMetadata{
		ContentType:   contentType,
		FormattedSize: formatted,
	}, nil
}
