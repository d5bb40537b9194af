package usecase

import (
	"context"
	"strings"

	"lifelog-engine/internal/model"
	"lifelog-engine/internal/parse"
	"lifelog-engine/internal/router"
	"lifelog-engine/internal/vars"
	"lifelog-engine/pkg/datemath"
	"lifelog-engine/pkg/textnorm"
	"lifelog-engine/pkg/translate"
)

// line threads one input through classification, extraction and validation.
type line struct {
	text       string
	translated string
	scope      model.Scope
	routed     router.Output
	wire       *extractionWire
	sanitized  datemath.Result
	parsed     *model.ParsedResult
	degraded   bool
}

// Parse drives one free-text line to an ordered result. Local shortcuts run
// first; only when neither fires does the line go out to the classifier and
// the extractor. Collaborator failures degrade the result and mark it
// failed, they never surface as an error.
func (uc *implUseCase) Parse(ctx context.Context, input parse.ParseInput) (parse.ParseOutput, error) {
	text := strings.TrimSpace(input.Text)
	if text == "" {
		return parse.ParseOutput{State: parse.StateIdle}, parse.ErrEmptyText
	}

	sc := model.Scope{BaseCurrency: strings.ToUpper(strings.TrimSpace(input.BaseCurrency))}
	if sc.BaseCurrency == "" {
		sc.BaseCurrency = vars.DefaultBaseCurrency
	}

	if out, ok := uc.variableShortcut(ctx, sc, text); ok {
		return out, nil
	}
	if out, ok := uc.expressionShortcut(ctx, sc, text); ok {
		return out, nil
	}

	uc.l.Debugf(ctx, "parse.Parse state %s", parse.StateClassifying)
	routed, err := uc.router.Classify(ctx, text)
	if err != nil {
		uc.l.Warnf(ctx, "parse.Parse Classify: %v", err)
		return uc.degrade(text), nil
	}
	ln := &line{text: text, scope: sc, routed: routed}

	uc.l.Debugf(ctx, "parse.Parse state %s", parse.StateExtracting)
	ln.translated = uc.translateBestEffort(ctx, text)
	wire, err := uc.extract(ctx, routed.Intent, text)
	if err != nil {
		uc.l.Warnf(ctx, "parse.Parse extract: %v", err)
		ln.degraded = true
	} else {
		ln.wire = wire
	}

	uc.l.Debugf(ctx, "parse.Parse state %s", parse.StateValidating)
	uc.buildParsed(ln)
	items, sources := uc.dispatch(ctx, ln)

	state := parse.StateDone
	if ln.degraded {
		state = parse.StateFailed
	}
	return parse.ParseOutput{Intent: routed.Intent, State: state, Items: items, Sources: sources}, nil
}

// degrade is the classification-unavailable fallback: the line comes back as
// an unclassified echo so nothing the user typed is lost.
func (uc *implUseCase) degrade(text string) parse.ParseOutput {
	items := []model.ResultItem{
		model.InvalidItem(parse.FieldIntent, string(model.IntentNone), parse.MsgNoConnection),
		model.ValidItem(parse.FieldSubject, textnorm.Slugify(text)),
	}
	return parse.ParseOutput{Intent: model.IntentNone, State: parse.StateFailed, Items: items}
}

// translateBestEffort gives the sanitizer an English rendering of the line.
// English input skips the round trip; any translator failure falls back to
// the original text.
func (uc *implUseCase) translateBestEffort(ctx context.Context, text string) string {
	if uc.translator == nil {
		return text
	}
	if lang, err := uc.translator.Detect(ctx, text); err == nil && lang == "en" {
		return text
	}
	out, err := uc.translator.Translate(ctx, translate.TranslateRequest{Text: text, Target: "en"})
	if err != nil || out == nil || strings.TrimSpace(out.Text) == "" {
		if err != nil {
			uc.l.Warnf(ctx, "parse.translateBestEffort: %v", err)
		}
		return text
	}
	return out.Text
}
