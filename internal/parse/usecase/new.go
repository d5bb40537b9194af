package usecase

import (
	"lifelog-engine/internal/parse"
	"lifelog-engine/internal/profile"
	"lifelog-engine/internal/router"
	"lifelog-engine/internal/vars"
	"lifelog-engine/pkg/datemath"
	"lifelog-engine/pkg/llm"
	"lifelog-engine/pkg/log"
)

// implUseCase is the private implementation of parse.UseCase.
type implUseCase struct {
	l          log.Logger
	router     router.Router
	llm        *llm.Manager
	translator parse.Translator
	sanitizer  *datemath.Sanitizer
	vars       vars.UseCase
	profile    profile.UseCase
}

var _ parse.UseCase = (*implUseCase)(nil)

// New creates a new parse UseCase implementation. The translator may be nil;
// translation is best-effort and the pipeline runs without it.
func New(
	l log.Logger,
	r router.Router,
	llmManager *llm.Manager,
	translator parse.Translator,
	sanitizer *datemath.Sanitizer,
	varsUC vars.UseCase,
	profileUC profile.UseCase,
) *implUseCase {
	return &implUseCase{
		l:          l,
		router:     r,
		llm:        llmManager,
		translator: translator,
		sanitizer:  sanitizer,
		vars:       varsUC,
		profile:    profileUC,
	}
}
