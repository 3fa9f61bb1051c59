package notifier

import (
	"encoding/json"
	"errors"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"go.uber.org/zap"
)

// HTTPHandler exposes the webhook endpoint the storage service delivers
// upload-event batches to.
type HTTPHandler struct {
	service      *Service
	logger       *zap.Logger
	batchTimeout time.Duration
	router       chi.Router
}

// NewHTTPHandler constructs the HTTP handler and wires routes. The batch
// timeout is the overall execution budget for one invocation; a batch cut
// short by it is abandoned without a result.
func NewHTTPHandler(service *Service, logger *zap.Logger, batchTimeout time.Duration) *HTTPHandler {
	h := &HTTPHandler{
		service:      service,
		logger:       logger,
		batchTimeout: batchTimeout,
	}
	h.buildRouter()
	return h
}

func (h *HTTPHandler) buildRouter() {
	r := chi.NewRouter()
	r.Use(middleware.RequestID)
	r.Use(middleware.RealIP)
	r.Use(middleware.Recoverer)
	r.Use(middleware.Timeout(h.batchTimeout))

	r.Get("/healthz", h.handleHealth)
	r.Post("/api/v1/events", h.handleEvents)

	h.router = r
}

// Router exposes the configured chi router.
func (h *HTTPHandler) Router() http.Handler {
	return h.router
}

func (h *HTTPHandler) handleHealth(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, map[string]string{
		"status": "ok",
	})
}

func (h *HTTPHandler) handleEvents(w http.ResponseWriter, r *http.Request) {
	var batch RawBatch
	if err := json.NewDecoder(r.Body).Decode(&batch); err != nil {
		writeError(w, http.StatusBadRequest, "invalid event payload")
		return
	}

	result, err := h.service.ProcessBatch(r.Context(), batch)
	if err != nil {
		var cfgErr *ConfigurationError
		if errors.As(err, &cfgErr) {
			writeJSON(w, http.StatusInternalServerError, map[string]string{
				"error":   "Configuration error",
				"message": cfgErr.Reason,
			})
			return
		}
		h.logger.Error("batch processing failed", zap.Error(err))
		writeError(w, http.StatusInternalServerError, "batch processing failed")
		return
	}

	writeJSON(w, result.StatusCode, result)
}

func writeJSON(w http.ResponseWriter, status int, payload any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(payload); err != nil {
		http.Error(w, http.StatusText(http.StatusInternalServerError), http.StatusInternalServerError)
	}
}

func writeError(w http.ResponseWriter, status int, msg string) {
	writeJSON(w, status, map[string]string{
		"error": msg,
	})
}
