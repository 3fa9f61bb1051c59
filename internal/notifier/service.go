package notifier

import (
	"context"
	"fmt"
	"net/http"
	"regexp"

	"go.uber.org/zap"

	"github.com/your-org/uploadnotifier/pkg/storage/objectstore"
)

// Service coordinates the per-record pipeline over one raw batch: parse,
// enrich, format, publish. Per-record failures are isolated and collected;
// only a bad target channel fails the invocation as a whole.
type Service struct {
	enricher  *Enricher
	publisher *Publisher
	topic     string
	logger    *zap.Logger
}

type Params struct {
	Store     objectstore.Client
	Transport Transport
	Topic     string
	Retry     RetryPolicy
	Logger    *zap.Logger
}

// NewService constructs the batch coordinator. The target channel is
// injected here, never read from the environment downstream.
func NewService(p Params) *Service {
	return &Service{
		enricher:  NewEnricher(p.Store, p.Logger),
		publisher: NewPublisher(p.Transport, p.Retry, p.Logger),
		topic:     p.Topic,
		logger:    p.Logger,
	}
}

// Kafka topic naming rules.
var topicNamePattern = regexp.MustCompile(`^[A-Za-z0-9._-]+$`)

func validateTarget(topic string) error {
	switch {
	case topic == "":
		return &ConfigurationError{Reason: "target channel is not set"}
	case len(topic) > 249:
		return &ConfigurationError{Reason: "target channel exceeds 249 characters"}
	case topic == "." || topic == "..":
		return &ConfigurationError{Reason: fmt.Sprintf("target channel %q is reserved", topic)}
	case !topicNamePattern.MatchString(topic):
		return &ConfigurationError{Reason: fmt.Sprintf("target channel %q contains invalid characters", topic)}
	}
	return nil
}

// ProcessBatch runs one invocation. It validates the target channel before
// touching any record; afterwards every failure is per-record and the
// batch always runs to completion.
func (s *Service) ProcessBatch(ctx context.Context, batch RawBatch) (*BatchResult, error) {
	if err := validateTarget(s.topic); err != nil {
		s.logger.Error("batch rejected", zap.Error(err))
		return nil, err
	}

	result := &BatchResult{
		StatusCode:     http.StatusOK,
		Message:        "Processing completed successfully",
		ProcessedFiles: []string{},
		Errors:         []string{},
	}

	if len(batch.Records) == 0 {
		s.logger.Warn("no records in batch")
		result.Message = "No records to process"
		return result, nil
	}

	s.logger.Info("processing batch",
		zap.Int("records", len(batch.Records)),
		zap.String("target", s.topic))

	for i, raw := range batch.Records {
		key, err := s.processRecord(ctx, raw)
		if err != nil {
			s.logger.Warn("record failed",
				zap.Int("index", i),
				zap.Error(err))
			result.Errors = append(result.Errors, err.Error())
			continue
		}
		result.ProcessedFiles = append(result.ProcessedFiles, key)
		result.ProcessedCount++
	}

	s.logger.Info("batch completed",
		zap.Int("processed", result.ProcessedCount),
		zap.Int("errors", len(result.Errors)))

	return result, nil
}

// processRecord runs the full pipeline for one raw entry and returns the
// object key on success.
func (s *Service) processRecord(ctx context.Context, raw RawRecord) (string, error) {
	rec, err := ParseRecord(raw)
	if err != nil {
		return "", err
	}

	meta, err := s.enricher.Enrich(ctx, rec)
	if err != nil {
		return "", fmt.Errorf("enrich %s: %w", rec.ObjectKey, err)
	}

	msg := BuildMessage(rec, meta, s.topic)

	outcome := s.publisher.Publish(ctx, msg)
	if !outcome.Success {
		return "", fmt.Errorf("publish notification for %s after %d attempts: %w",
			rec.ObjectKey, outcome.Attempts, outcome.Err)
	}

	s.logger.Info("file notified",
		zap.String("object_key", rec.ObjectKey),
		zap.String("bucket", rec.SourceBucket),
		zap.String("message_id", outcome.MessageID))

	return rec.ObjectKey, nil
}
