package gemini

import (
	"context"
	"testing"

	"github.com/google/generative-ai-go/genai"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"content-assessor/api/internal/apperrors"
	"content-assessor/api/internal/assess"
	"content-assessor/api/internal/assess/types"
)

func TestAssessWithoutKey(t *testing.T) {
	eng := New("  ", "")
	_, err := eng.Assess(context.Background(), assess.SystemPrompt, types.AssessRequest{Requirements: "r", Content: "c"})
	require.Error(t, err)
	assert.True(t, apperrors.HasCode(err, apperrors.CodeUpstreamFailure))
}

func TestGetModel(t *testing.T) {
	assert.Equal(t, "gemini-2.5-flash", New("k", "").GetModel())
	assert.Equal(t, "gemini-2.0-pro", New("k", " gemini-2.0-pro ").GetModel())
	assert.Equal(t, "gemini", New("k", "").Name())
}

func TestVerdictSchema(t *testing.T) {
	s := verdictSchema()
	assert.Equal(t, genai.TypeObject, s.Type)
	assert.ElementsMatch(t, []string{"isValid", "reason"}, s.Required)
	require.Contains(t, s.Properties, "isValid")
	assert.Equal(t, genai.TypeBoolean, s.Properties["isValid"].Type)
	assert.Equal(t, genai.TypeString, s.Properties["reason"].Type)
}

func TestFirstText(t *testing.T) {
	_, ok := firstText(nil)
	assert.False(t, ok)

	_, ok = firstText(&genai.GenerateContentResponse{})
	assert.False(t, ok)

	resp := &genai.GenerateContentResponse{
		Candidates: []*genai.Candidate{
			{Content: nil},
			{Content: &genai.Content{Parts: []genai.Part{genai.Text(`{"isValid":true,"reason":"ok"}`)}}},
		},
	}
	out, ok := firstText(resp)
	require.True(t, ok)
	assert.Equal(t, types.Verdict{IsValid: true, Reason: "ok"}, assess.NormalizeVerdict(out))
}
