package notifier

import "encoding/json"

// storageEventSource is the source tag carried by upload notifications from
// the watched object store. Entries with any other tag are skipped.
const storageEventSource = "aws:s3"

// RawBatch is one delivery from the trigger source: zero or more raw upload
// notifications, unvalidated.
type RawBatch struct {
	Records []RawRecord `json:"Records"`
}

// RawRecord mirrors the bucket-notification record shape on the wire. The
// object size is kept raw because producers are inconsistent about it; the
// parser coerces it.
type RawRecord struct {
	EventSource string     `json:"eventSource"`
	EventName   string     `json:"eventName"`
	EventTime   string     `json:"eventTime"`
	AwsRegion   string     `json:"awsRegion"`
	S3          *RawS3Data `json:"s3"`
}

type RawS3Data struct {
	Bucket *RawBucket `json:"bucket"`
	Object *RawObject `json:"object"`
}

type RawBucket struct {
	Name string `json:"name"`
}

type RawObject struct {
	Key  string          `json:"key"`
	Size json.RawMessage `json:"size"`
}

// UploadRecord is the validated form of one upload notification. ObjectKey
// is URL-decoded. Downstream stages never look at raw payload data again.
type UploadRecord struct {
	SourceBucket string
	ObjectKey    string
	FileName     string
	SizeBytes    int64
	EventTime    string
	EventName    string
	Region       string
}

// FileMetadata augments an UploadRecord with derived display fields.
type FileMetadata struct {
	ContentType   string
	FormattedSize string
}

// NotificationMessage is a formatted notification ready for publishing.
// Subject and Body are already within transport limits.
type NotificationMessage struct {
	Subject string
	Body    string
	Target  string
}

// PublishOutcome reports what happened to one message at the transport.
type PublishOutcome struct {
	Success   bool
	MessageID string
	Attempts  int
	Err       error
}

// BatchResult aggregates one invocation. ProcessedFiles holds the decoded
// object keys that were successfully notified, in processing order.
type BatchResult struct {
	StatusCode     int      `json:"statusCode"`
	Message        string   `json:"message"`
	ProcessedCount int      `json:"processed_count"`
	ProcessedFiles []string `json:"processed_files"`
	Errors         []string `json:"errors"`
}
