package router

import (
	"context"

	"university-assistant/internal/intake"
	"university-assistant/pkg/gemini"
	"university-assistant/pkg/log"
)

// Generator is the Gemini transport; both the REST client and the SDK client satisfy it.
type Generator interface {
	GenerateContent(ctx context.Context, req gemini.GenerateRequest) (*gemini.GenerateResponse, error)
}

var (
	_ Generator = (*gemini.Client)(nil)
	_ Generator = (*gemini.SDKClient)(nil)
)

// SemanticRouter classifies student queries into a unit and tone using Gemini.
type SemanticRouter struct {
	llm Generator
	l   log.Logger
}

var _ intake.Classifier = (*SemanticRouter)(nil)

// New creates a new SemanticRouter
func New(llm Generator, l log.Logger) *SemanticRouter {
	return &SemanticRouter{
		llm: llm,
		l:   l,
	}
}

// Disabled is the Classifier used when no model is configured.
type Disabled struct{}

var _ intake.Classifier = Disabled{}

// Classify always reports intake.ErrClassifierUnavailable.
func (Disabled) Classify(ctx context.Context, text string) (intake.Classification, error) {
	return intake.Classification{}, intake.ErrClassifierUnavailable
}
