package notifier

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"sync"

	"github.com/your-org/uploadnotifier/pkg/storage/objectstore"
)

var errTransportDown = errors.New("broker unreachable")

type publishCall struct {
	topic string
	value string
}

// fakeTransport fails the first failTimes calls, plus every call whose
// payload contains failMatch.
type fakeTransport struct {
	mu        sync.Mutex
	calls     []publishCall
	failTimes int
	failMatch string
}

func (f *fakeTransport) Publish(ctx context.Context, topic string, key, value []byte, headers map[string]string) (string, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.calls = append(f.calls, publishCall{topic: topic, value: string(value)})
	if f.failMatch != "" && strings.Contains(string(value), f.failMatch) {
		return "", errTransportDown
	}
	if len(f.calls) <= f.failTimes {
		return "", errTransportDown
	}
	return fmt.Sprintf("msg-%d", len(f.calls)), nil
}

func (f *fakeTransport) callCount() int {
	f.mu.Lock()
	defer f.mu.Unlock()
	return len(f.calls)
}

type fakeStore struct {
	contentType string
	err         error
	calls       int
}

func (f *fakeStore) Stat(ctx context.Context, bucket, key string) (objectstore.ObjectInfo, error) {
	f.calls++
	if f.err != nil {
		return objectstore.ObjectInfo{}, f.err
	}
	return objectstore.ObjectInfo{ContentType: f.contentType}, nil
}

func (f *fakeStore) Close() error { return nil }

func validRawRecord(bucket, key string, size int64) RawRecord {
	return RawRecord{
		EventSource: "aws:s3",
		EventName:   "ObjectCreated:Put",
		EventTime:   "2026-08-28T10:30:00.000Z",
		AwsRegion:   "us-east-1",
		S3: &RawS3Data{
			Bucket: &RawBucket{Name: bucket},
			Object: &RawObject{Key: key, Size: []byte(fmt.Sprintf("%d", size))},
		},
	}
}
