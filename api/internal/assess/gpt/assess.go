package gpt

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"

	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/trace"

	"content-assessor/api/internal/apperrors"
	"content-assessor/api/internal/assess"
	"content-assessor/api/internal/assess/types"
	"content-assessor/api/internal/util"
)

// Assess asks the chat-completions API for a JSON object and normalizes it.
// Transport and HTTP failures are upstream failures; an envelope without a
// message is malformed output. The message text itself never fails.
func (e *Engine) Assess(ctx context.Context, system string, in types.AssessRequest) (v types.Verdict, err error) {
	model := e.GetModel()
	ctx, span := e.tracer.Start(ctx, "gpt.Assess", trace.WithAttributes(attribute.String("llm.model", model)))
	defer func() {
		if err != nil {
			span.RecordError(err)
			span.SetStatus(codes.Error, "assessment failed")
		}
		span.End()
	}()

	if e.APIKey == "" {
		return types.Verdict{}, apperrors.New(apperrors.CodeUpstreamFailure, "OPENAI_API_KEY is empty")
	}

	body := chatRequest{
		Model: model,
		Messages: []chatMessage{
			// json_object mode requires the conversation to mention JSON
			{Role: "system", Content: system + "\n\nRespond only with a JSON object matching this schema:\n" + types.VerdictSchema},
			{Role: "user", Content: assess.UserMessage(in)},
		},
		ResponseFormat: responseFormat{Type: "json_object"},
	}
	payload, err := json.Marshal(body)
	if err != nil {
		return types.Verdict{}, apperrors.Wrap(err, apperrors.CodeUpstreamFailure, "openai: encode request")
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, e.BaseURL+"/chat/completions", bytes.NewReader(payload))
	if err != nil {
		return types.Verdict{}, apperrors.Wrap(err, apperrors.CodeUpstreamFailure, "openai: build request")
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Authorization", "Bearer "+e.APIKey)

	resp, err := e.httpc.Do(req)
	if err != nil {
		return types.Verdict{}, apperrors.Wrap(err, apperrors.CodeUpstreamFailure, "openai: request")
	}
	defer resp.Body.Close()

	raw, err := io.ReadAll(resp.Body)
	if err != nil {
		return types.Verdict{}, apperrors.Wrap(err, apperrors.CodeUpstreamFailure, "openai: read response")
	}
	if resp.StatusCode != http.StatusOK {
		return types.Verdict{}, apperrors.New(apperrors.CodeUpstreamFailure,
			fmt.Sprintf("openai assess %d: %s", resp.StatusCode, strings.TrimSpace(util.Truncate(raw, 1024))))
	}

	var cr chatResponse
	if err := json.Unmarshal(raw, &cr); err != nil {
		return types.Verdict{}, apperrors.Wrap(err, apperrors.CodeMalformedUpstreamOutput, "openai: bad envelope")
	}
	if len(cr.Choices) == 0 {
		return types.Verdict{}, apperrors.New(apperrors.CodeMalformedUpstreamOutput,
			"openai assess: empty choices; body="+util.Truncate(raw, 1024))
	}

	return assess.NormalizeVerdict(cr.Choices[0].Message.Content), nil
}
