package handle

import (
	"encoding/json"
	"net/http"
	"net/url"
	"time"

	"content-assessor/api/internal/apperrors"
	"content-assessor/api/internal/assess"
	"content-assessor/api/internal/assess/types"
	"content-assessor/api/internal/fingerprint"
	"content-assessor/api/internal/requestctx"
)

// --- ASSESS -----------------------------------------------------------------

// Assess handles GET with requirements and content query parameters.
func (h *Handle) Assess(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	requestID := requestctx.RequestID(ctx)
	engine := h.engine.Name()

	q := r.URL.Query()
	in := types.AssessRequest{
		Requirements: q.Get("requirements"),
		Content:      q.Get("content"),
	}
	if in.Requirements == "" || in.Content == "" {
		h.logger.WarnContext(ctx, "assessment rejected: missing input",
			"request_id", requestID,
			"has_requirements", in.Requirements != "",
			"has_content", in.Content != "",
		)
		h.metrics.IncrementOutcome(engine, string(apperrors.CodeMissingInput))
		writeError(w, apperrors.New(apperrors.CodeMissingInput, "requirements and content are required"))
		return
	}

	start := time.Now()
	verdict, err := h.engine.Assess(ctx, assess.SystemPrompt, in)
	h.metrics.ObserveUpstreamLatency(engine, time.Since(start))
	if err != nil {
		h.logger.ErrorContext(ctx, "error assessing content",
			"request_id", requestID,
			"engine", engine,
			"code", string(apperrors.CodeOf(err)),
			"error", err,
		)
		h.metrics.IncrementOutcome(engine, string(apperrors.CodeOf(err)))
		writeError(w, err)
		return
	}

	res := types.Attestation{
		IsValid:     verdict.IsValid,
		Reason:      verdict.Reason,
		Timestamp:   h.now().UTC().Format(types.TimestampLayout),
		ContentHash: fingerprint.ContentHash(in.Content),
	}

	outcome := "invalid"
	if res.IsValid {
		outcome = "valid"
	}
	h.metrics.IncrementOutcome(engine, outcome)
	h.logger.InfoContext(ctx, "content assessed",
		"request_id", requestID,
		"engine", engine,
		"is_valid", res.IsValid,
		"content_hash", res.ContentHash,
		"duration_ms", time.Since(start).Milliseconds(),
	)

	w.Header().Set("X-Content-Cid", fingerprint.ContentCID(in.Content))
	writeJSON(w, http.StatusOK, res)
}

// maxBodyBytes caps a POST body; anything larger fails to decode.
const maxBodyBytes = 1 << 20

// AssessPost handles POST with a JSON body. A complete body is re-dispatched
// to Assess as the equivalent GET request.
func (h *Handle) AssessPost(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	r.Body = http.MaxBytesReader(w, r.Body, maxBodyBytes)

	var body types.AssessRequest
	if err := json.NewDecoder(r.Body).Decode(&body); err != nil || body.Requirements == "" || body.Content == "" {
		h.logger.WarnContext(ctx, "assessment rejected: missing input",
			"request_id", requestctx.RequestID(ctx),
			"decode_error", err != nil,
		)
		h.metrics.IncrementOutcome(h.engine.Name(), string(apperrors.CodeMissingInput))
		writeError(w, apperrors.New(apperrors.CodeMissingInput, "requirements and content are required"))
		return
	}

	h.Assess(w, asGet(r, body))
}

// asGet builds the GET request equivalent to a POST body.
func asGet(r *http.Request, body types.AssessRequest) *http.Request {
	get := r.Clone(r.Context())
	get.Method = http.MethodGet
	get.URL.RawQuery = url.Values{
		"requirements": {body.Requirements},
		"content":      {body.Content},
	}.Encode()
	get.Body = http.NoBody
	get.ContentLength = 0
	get.Header.Del("Content-Type")
	get.Header.Del("Content-Length")
	return get
}

// NotImplemented answers every verb other than GET and POST.
func (h *Handle) NotImplemented(w http.ResponseWriter, r *http.Request) {
	h.metrics.IncrementOutcome(h.engine.Name(), string(apperrors.CodeUnsupportedMethod))
	writeError(w, apperrors.New(apperrors.CodeUnsupportedMethod, r.Method+" method not implemented"))
}
