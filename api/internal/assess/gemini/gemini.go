package gemini

import (
	"context"
	"strings"

	"github.com/google/generative-ai-go/genai"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/trace"
	"google.golang.org/api/option"

	"content-assessor/api/internal/apperrors"
	"content-assessor/api/internal/assess"
	"content-assessor/api/internal/assess/types"
)

var tracer = otel.Tracer("content-assessor/api/internal/assess/gemini")

type Engine struct {
	APIKey string
	Model  string
}

func New(apiKey, model string) *Engine {
	return &Engine{
		APIKey: strings.TrimSpace(apiKey),
		Model:  strings.TrimSpace(model),
	}
}

func (e *Engine) Name() string { return "gemini" }

func (e *Engine) GetModel() string {
	if e.Model != "" {
		return e.Model
	}
	return "gemini-2.5-flash"
}

// Assess returns the verdict for in. The response is constrained to the
// verdict schema, but the text still goes through NormalizeVerdict.
func (e *Engine) Assess(ctx context.Context, system string, in types.AssessRequest) (v types.Verdict, err error) {
	model := e.GetModel()
	ctx, span := tracer.Start(ctx, "gemini.Assess", trace.WithAttributes(attribute.String("llm.model", model)))
	defer func() {
		if err != nil {
			span.RecordError(err)
			span.SetStatus(codes.Error, "assessment failed")
		}
		span.End()
	}()

	if e.APIKey == "" {
		return types.Verdict{}, apperrors.New(apperrors.CodeUpstreamFailure, "GEMINI_API_KEY is empty")
	}

	cl, err := genai.NewClient(ctx, option.WithAPIKey(e.APIKey))
	if err != nil {
		return types.Verdict{}, apperrors.Wrap(err, apperrors.CodeUpstreamFailure, "gemini: client")
	}
	defer cl.Close()

	m := cl.GenerativeModel(model)
	if m == nil {
		return types.Verdict{}, apperrors.New(apperrors.CodeUpstreamFailure, "gemini: model is nil")
	}
	m.GenerationConfig = genai.GenerationConfig{
		Temperature:      ptrFloat32(0),
		ResponseMIMEType: "application/json",
		ResponseSchema:   verdictSchema(),
	}
	m.SystemInstruction = &genai.Content{
		Parts: []genai.Part{
			genai.Text(system),
			genai.Text("verdict.schema.json:\n" + types.VerdictSchema),
		},
	}

	resp, err := m.GenerateContent(ctx, genai.Text(assess.UserMessage(in)))
	if err != nil {
		return types.Verdict{}, apperrors.Wrap(err, apperrors.CodeUpstreamFailure, "gemini: generate")
	}
	out, ok := firstText(resp)
	if !ok {
		return types.Verdict{}, apperrors.New(apperrors.CodeMalformedUpstreamOutput, "gemini assess: no text candidate")
	}
	return assess.NormalizeVerdict(out), nil
}

func verdictSchema() *genai.Schema {
	return &genai.Schema{
		Type: genai.TypeObject,
		Properties: map[string]*genai.Schema{
			"isValid": {Type: genai.TypeBoolean},
			"reason":  {Type: genai.TypeString},
		},
		Required: []string{"isValid", "reason"},
	}
}

// firstText returns the first text part of any candidate.
func firstText(resp *genai.GenerateContentResponse) (string, bool) {
	if resp == nil || len(resp.Candidates) == 0 {
		return "", false
	}
	for _, c := range resp.Candidates {
		if c == nil || c.Content == nil {
			continue
		}
		for _, p := range c.Content.Parts {
			if t, ok := p.(genai.Text); ok {
				return string(t), true
			}
		}
	}
	return "", false
}

func ptrFloat32(v float32) *float32 { return &v }
