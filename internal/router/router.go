package router

import (
	"context"
	"encoding/json"
	"fmt"
	"regexp"
	"strings"

	"university-assistant/internal/intake"
	"university-assistant/internal/intake/heuristic"
	"university-assistant/pkg/gemini"
)

var jsonObjectRe = regexp.MustCompile(`(?s)\{.*\}`)

// Classify asks the model for the unit and tone of a student query.
// When the reply is not JSON, unit keywords in the raw text are used instead.
func (r *SemanticRouter) Classify(ctx context.Context, text string) (intake.Classification, error) {
	if strings.TrimSpace(text) == "" {
		return intake.Classification{}, intake.ErrInvalidClassification
	}

	resp, err := r.llm.GenerateContent(ctx, gemini.GenerateRequest{
		SystemInstruction: &gemini.Content{
			Parts: []gemini.Part{{Text: PromptClassifierSystem}},
		},
		Contents: []gemini.Content{
			{
				Role:  "user",
				Parts: []gemini.Part{{Text: fmt.Sprintf(PromptStudentQuery, text)}},
			},
		},
		GenerationConfig: &gemini.GenerationConfig{
			Temperature:      RouterTemperature,
			ResponseMIMEType: gemini.MIMETypeJSON,
		},
	})
	if err != nil {
		return intake.Classification{}, fmt.Errorf("%s: %s: %w", LogPrefixClassify, ErrMsgLLMCallFailed, err)
	}

	responseText := strings.TrimSpace(resp.Text())
	if responseText == "" {
		r.l.Warnf(ctx, "%s: %s", LogPrefixClassify, ErrMsgEmptyResponse)
		return intake.Classification{}, fmt.Errorf("%s: %w", ErrMsgEmptyResponse, intake.ErrInvalidClassification)
	}

	if c, ok := parseJSON(responseText); ok {
		r.l.Infof(ctx, "%s: classified as %s (tone: %s)", LogPrefixClassify, c.Unit, c.Tone)
		return c, nil
	}

	if c, ok := heuristic.ClassifyFreeText(responseText); ok {
		r.l.Infof(ctx, "%s: recovered %s from free text", LogPrefixClassify, c.Unit)
		return c, nil
	}

	r.l.Warnf(ctx, "%s: %s: %q", LogPrefixClassify, ErrMsgNoClassification, responseText)
	return intake.Classification{}, intake.ErrInvalidClassification
}

// parseJSON extracts the first {...} object, tolerating code fences and surrounding prose.
func parseJSON(text string) (intake.Classification, bool) {
	obj := jsonObjectRe.FindString(text)
	if obj == "" {
		return intake.Classification{}, false
	}

	var out classifierOutput
	if err := json.Unmarshal([]byte(obj), &out); err != nil {
		return intake.Classification{}, false
	}

	unit := intake.Unit(strings.ToLower(strings.TrimSpace(out.Unit)))
	if !unit.Valid() {
		return intake.Classification{}, false
	}

	tone := intake.Tone(strings.ToLower(strings.TrimSpace(out.Tone)))
	if tone == "" {
		tone = intake.ToneNormal
	}
	if !tone.Valid() {
		tone = ""
	}
	return intake.Classification{Unit: unit, Tone: tone}, true
}
