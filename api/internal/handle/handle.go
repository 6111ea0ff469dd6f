package handle

import (
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"

	"content-assessor/api/internal/apperrors"
	"content-assessor/api/internal/assess"
	"content-assessor/api/internal/assess/types"
	"content-assessor/api/internal/metrics"
)

const (
	msgMissingInput  = "Missing requirements or content"
	msgInternalError = "Internal Server Error"
)

type Handle struct {
	engine  assess.Engine
	logger  *slog.Logger
	metrics *metrics.Metrics
	now     func() time.Time
}

func New(engine assess.Engine, logger *slog.Logger, m *metrics.Metrics) *Handle {
	if logger == nil {
		logger = slog.Default()
	}
	return &Handle{
		engine:  engine,
		logger:  logger,
		metrics: m,
		now:     time.Now,
	}
}

// WithClock replaces the clock used for attestation timestamps.
func (h *Handle) WithClock(now func() time.Time) *Handle {
	if now != nil {
		h.now = now
	}
	return h
}

// Register mounts the assessment endpoints. Only "/" and "/assess" answer
// 501 to verbs other than GET and POST; other routes keep the router's 405.
func (h *Handle) Register(r chi.Router) {
	for _, p := range []string{"/", "/assess"} {
		r.HandleFunc(p, h.route)
	}
}

func (h *Handle) route(w http.ResponseWriter, r *http.Request) {
	switch r.Method {
	case http.MethodGet:
		h.Assess(w, r)
	case http.MethodPost:
		h.AssessPost(w, r)
	default:
		h.NotImplemented(w, r)
	}
}

func writeJSON(w http.ResponseWriter, code int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(code)
	enc := json.NewEncoder(w)
	enc.SetEscapeHTML(false)
	_ = enc.Encode(v)
}

// writeError renders err with its fixed public body. Details stay in logs.
func writeError(w http.ResponseWriter, err error) {
	code := apperrors.CodeOf(err)
	status := apperrors.HTTPStatus(code)
	switch code {
	case apperrors.CodeMissingInput:
		writeJSON(w, status, types.ErrorResponse{Error: msgMissingInput})
	case apperrors.CodeUnsupportedMethod:
		msg := "method not implemented"
		var e *apperrors.Error
		if errors.As(err, &e) && e.Message != "" {
			msg = e.Message
		}
		writeJSON(w, status, types.MessageResponse{Message: msg})
	default:
		writeJSON(w, status, types.ErrorResponse{Error: msgInternalError})
	}
}
