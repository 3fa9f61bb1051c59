package notifier

import (
	"context"
	"encoding/json"
	"time"

	"github.com/cenkalti/backoff/v5"
	"go.uber.org/zap"
)

// Transport is the distribution channel notifications are delivered
// through. Publish returns the transport-assigned message identifier.
type Transport interface {
	Publish(ctx context.Context, topic string, key []byte, value []byte, headers map[string]string) (string, error)
}

// RetryPolicy bounds delivery attempts. It is a plain value so tests can
// exercise it without a real transport behind it.
type RetryPolicy struct {
	MaxAttempts uint
	Interval    time.Duration
}

// DefaultRetryPolicy is one retry after a short fixed backoff.
var DefaultRetryPolicy = RetryPolicy{MaxAttempts: 2, Interval: time.Second}

// notificationEnvelope is the published payload.
type notificationEnvelope struct {
	Subject string `json:"subject"`
	Body    string `json:"body"`
}

// Publisher delivers formatted messages with bounded retry. Retry
// exhaustion is a reported condition, not an error: the outcome always
// comes back, with Success false and the last transport error captured.
type Publisher struct {
	transport Transport
	policy    RetryPolicy
	logger    *zap.Logger
}

func NewPublisher(transport Transport, policy RetryPolicy, logger *zap.Logger) *Publisher {
	if policy.MaxAttempts == 0 {
		policy = DefaultRetryPolicy
	}
	return &Publisher{transport: transport, policy: policy, logger: logger}
}

// Publish attempts delivery up to the policy's attempt bound and returns
// the per-message outcome.
func (p *Publisher) Publish(ctx context.Context, msg NotificationMessage) PublishOutcome {
	payload, err := json.Marshal(notificationEnvelope{Subject: msg.Subject, Body: msg.Body})
	if err != nil {
		return PublishOutcome{Success: false, Attempts: 0, Err: err}
	}

	headers := map[string]string{
		"event_type": "upload.notification",
	}

	attempts := 0
	operation := func() (string, error) {
		attempts++
		id, pubErr := p.transport.Publish(ctx, msg.Target, []byte(msg.Subject), payload, headers)
		if pubErr != nil {
			p.logger.Warn("publish attempt failed",
				zap.String("target", msg.Target),
				zap.Int("attempt", attempts),
				zap.Error(pubErr))
			return "", pubErr
		}
		return id, nil
	}

	messageID, err := backoff.Retry(ctx, operation,
		backoff.WithBackOff(backoff.NewConstantBackOff(p.policy.Interval)),
		backoff.WithMaxTries(p.policy.MaxAttempts),
	)
	if err != nil {
		p.logger.Error("publish failed after retries",
			zap.String("target", msg.Target),
			zap.Int("attempts", attempts),
			zap.Error(err))
		return PublishOutcome{Success: false, Attempts: attempts, Err: err}
	}

	p.logger.Info("notification published",
		zap.String("target", msg.Target),
		zap.String("message_id", messageID),
		zap.Int("attempts", attempts))

	return PublishOutcome{Success: true, MessageID: messageID, Attempts: attempts}
}
