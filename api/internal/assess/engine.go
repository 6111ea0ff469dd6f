package assess

import (
	"context"
	"fmt"

	"content-assessor/api/internal/assess/types"
)

// Engine is a hosted model able to judge content against requirements.
type Engine interface {
	Name() string
	Assess(ctx context.Context, system string, in types.AssessRequest) (types.Verdict, error)
}

type Engines struct {
	OpenAI Engine
	Gemini Engine
}

// GetEngine resolves an engine by its configured name.
func (e *Engines) GetEngine(llmName string) (Engine, error) {
	var eng Engine
	switch llmName {
	case "", "gpt", "openai":
		eng = e.OpenAI
	case "gemini":
		eng = e.Gemini
	default:
		return nil, fmt.Errorf("unknown llm_name %q; use 'gpt' or 'gemini'", llmName)
	}
	if eng == nil {
		return nil, fmt.Errorf("engine %q is not configured", llmName)
	}
	return eng, nil
}
