package notifier

import (
	"bytes"
	"net/url"
	"strconv"
	"strings"
)

// ParseRecord validates one raw notification entry and returns the typed
// record, or an *InvalidRecordError when required identity fields are
// missing. It has no side effects.
func ParseRecord(raw RawRecord) (*UploadRecord, error) {
	if raw.EventSource != storageEventSource {
		return nil, &InvalidRecordError{Reason: "unexpected event source " + strconv.Quote(raw.EventSource)}
	}
	if raw.S3 == nil {
		return nil, &InvalidRecordError{Reason: "missing s3 payload"}
	}
	if raw.S3.Bucket == nil || raw.S3.Bucket.Name == "" {
		return nil, &InvalidRecordError{Reason: "missing bucket name"}
	}
	if raw.S3.Object == nil || raw.S3.Object.Key == "" {
		return nil, &InvalidRecordError{Reason: "missing object key"}
	}
	if raw.EventTime == "" {
		return nil, &InvalidRecordError{Reason: "missing event time"}
	}

	key := decodeObjectKey(raw.S3.Object.Key)

	eventName := raw.EventName
	if eventName == "" {
		eventName = "Unknown"
	}
	region := raw.AwsRegion
	if region == "" {
		region = "Unknown"
	}

	return &UploadRecord{
		SourceBucket: raw.S3.Bucket.Name,
		ObjectKey:    key,
		FileName:     baseName(key),
		SizeBytes:    coerceSize(raw.S3.Object.Size),
		EventTime:    raw.EventTime,
		EventName:    eventName,
		Region:       region,
	}, nil
}

// decodeObjectKey resolves the URL encoding bucket notifications apply to
// keys ("+" for space, %XX escapes). A key that fails to decode is used
// verbatim rather than rejected.
func decodeObjectKey(key string) string {
	decoded, err := url.QueryUnescape(key)
	if err != nil {
		return key
	}
	return decoded
}

func baseName(key string) string {
	if idx := strings.LastIndex(key, "/"); idx >= 0 {
		return key[idx+1:]
	}
	return key
}

// coerceSize turns the raw size field into a byte count. Missing,
// non-numeric, or negative values become 0 so that "size unknown" flows
// through the pipeline as a zero-byte upload instead of killing the record.
func coerceSize(raw []byte) int64 {
	s := string(bytes.Trim(bytes.TrimSpace(raw), `"`))
	if s == "" || s == "null" {
		return 0
	}
	n, err := strconv.ParseInt(s, 10, 64)
	if err != nil || n < 0 {
		return 0
	}
	return n
}
