package notifier

import "fmt"

// ConfigurationError is the single fatal condition in the pipeline: a
// missing or malformed target channel. It aborts the batch before any
// record is touched.
type ConfigurationError struct {
	Reason string
}

func (e *ConfigurationError) Error() string {
	return fmt.Sprintf("configuration error: %s", e.Reason)
}

// InvalidRecordError marks a raw entry that cannot become an UploadRecord.
// It is recovered at the batch level, never propagated past it.
type InvalidRecordError struct {
	Reason string
}

func (e *InvalidRecordError) Error() string {
	return fmt.Sprintf("invalid record: %s", e.Reason)
}
