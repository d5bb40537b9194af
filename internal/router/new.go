package router

import (
	"context"

	"lifelog-engine/pkg/llm"
	"lifelog-engine/pkg/log"
)

// Router is the interface for semantic intent classification
type Router interface {
	Classify(ctx context.Context, message string) (Output, error)
}

// SemanticRouter classifies user intent using LLM
type SemanticRouter struct {
	llm *llm.Manager
	l   log.Logger
}

// Ensure SemanticRouter implements Router interface
var _ Router = (*SemanticRouter)(nil)

// New creates a new SemanticRouter
// Convention: Factory function returns concrete type (not interface) for internal packages
func New(llmManager *llm.Manager, l log.Logger) *SemanticRouter {
	return &SemanticRouter{
		llm: llmManager,
		l:   l,
	}
}
