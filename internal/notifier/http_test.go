package notifier

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

func newTestHandler(transport *fakeTransport, topic string) *HTTPHandler {
	svc := newTestService(transport, &fakeStore{contentType: "text/plain"}, topic)
	return NewHTTPHandler(svc, zap.NewNop(), time.Minute)
}

func TestHandleEvents(t *testing.T) {
	handler := newTestHandler(&fakeTransport{}, "upload.notifications")

	payload := `{
		"Records": [{
			"eventSource": "aws:s3",
			"eventName": "ObjectCreated:Put",
			"eventTime": "2026-08-28T10:30:00.000Z",
			"awsRegion": "us-east-1",
			"s3": {
				"bucket": {"name": "uploads"},
				"object": {"key": "incoming/report.pdf", "size": 2048}
			}
		}]
	}`

	req := httptest.NewRequest(http.MethodPost, "/api/v1/events", strings.NewReader(payload))
	rec := httptest.NewRecorder()
	handler.Router().ServeHTTP(rec, req)

	require.Equal(t, http.StatusOK, rec.Code)

	var result BatchResult
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &result))
	assert.Equal(t, 1, result.ProcessedCount)
	assert.Equal(t, []string{"incoming/report.pdf"}, result.ProcessedFiles)
	assert.Empty(t, result.Errors)
}

func TestHandleEventsInvalidJSON(t *testing.T) {
	handler := newTestHandler(&fakeTransport{}, "upload.notifications")

	req := httptest.NewRequest(http.MethodPost, "/api/v1/events", strings.NewReader("{nope"))
	rec := httptest.NewRecorder()
	handler.Router().ServeHTTP(rec, req)

	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestHandleEventsConfigurationError(t *testing.T) {
	transport := &fakeTransport{}
	handler := newTestHandler(transport, "")

	req := httptest.NewRequest(http.MethodPost, "/api/v1/events", strings.NewReader(`{"Records": []}`))
	rec := httptest.NewRecorder()
	handler.Router().ServeHTTP(rec, req)

	assert.Equal(t, http.StatusInternalServerError, rec.Code)

	var body map[string]string
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	assert.Equal(t, "Configuration error", body["error"])
	assert.Equal(t, 0, transport.callCount())
}

func TestHandleHealth(t *testing.T) {
	handler := newTestHandler(&fakeTransport{}, "upload.notifications")

	req := httptest.NewRequest(http.MethodGet, "/healthz", nil)
	rec := httptest.NewRecorder()
	handler.Router().ServeHTTP(rec, req)

	assert.Equal(t, http.StatusOK, rec.Code)
}
