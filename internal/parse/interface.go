package parse

import (
	"context"

	"lifelog-engine/pkg/translate"
)

//go:generate mockery --name UseCase
type UseCase interface {
	// Parse turns one free-text line into an ordered list of display-ready
	// result items. Collaborator failures degrade the result, they never
	// surface as an error; only empty input errors.
	Parse(ctx context.Context, input ParseInput) (ParseOutput, error)
}

// Translator is the best-effort translation collaborator. When it fails the
// pipeline continues with the original text.
type Translator interface {
	Translate(ctx context.Context, req translate.TranslateRequest) (*translate.Translation, error)
	Detect(ctx context.Context, text string) (string, error)
}
