package usecase

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/afklabs/afk-responder/internal/biz/domain"
	"github.com/afklabs/afk-responder/internal/locale"
)

// PromptUsecase synthesizes the persona-flavored prompt handed verbatim to
// the AI collaborator. Deterministic over (persona, language, event).
type PromptUsecase struct {
	locales *locale.Resolver
}

// NewPromptUsecase creates a prompt synthesizer.
func NewPromptUsecase(locales *locale.Resolver) *PromptUsecase {
	return &PromptUsecase{locales: locales}
}

// Synthesize builds the prompt as ordered text blocks. It never fails past
// its own boundary: any internal problem degrades to a minimal prompt that
// still carries the sender name and the raw message text.
func (uc *PromptUsecase) Synthesize(persona domain.Persona, lang string, ev *domain.ClassifiedEvent) string {
	return uc.build(persona, lang, ev)
}

func (uc *PromptUsecase) build(persona domain.Persona, lang string, ev *domain.ClassifiedEvent) (out string) {
	defer func() {
		if r := recover(); r != nil || strings.TrimSpace(out) == "" {
			out = fallbackPrompt(ev)
		}
	}()

	get := func(key string, args locale.Args) string {
		return uc.locales.Get(lang, key, args)
	}
	pick := func(on bool, onKey, offKey string) string {
		if on {
			return get(onKey, nil)
		}
		return get(offKey, nil)
	}

	var b strings.Builder

	b.WriteString(get("prompt_preamble", nil))
	b.WriteString("\n\n")

	b.WriteString(get("prompt_identity", locale.Args{
		"age":    strconv.Itoa(persona.Age),
		"gender": persona.GenderPhrase,
	}))
	b.WriteString(" ")
	b.WriteString(pick(persona.MakeJokes, "prompt_jokes_on", "prompt_jokes_off"))
	b.WriteString(" ")
	b.WriteString(pick(persona.UseSwearing, "prompt_swearing_on", "prompt_swearing_off"))
	b.WriteString(" ")
	b.WriteString(pick(persona.CanInsult, "prompt_insult_on", "prompt_insult_off"))
	b.WriteString("\n\n")

	b.WriteString(get("prompt_context_intro", nil))
	b.WriteString("\n")
	b.WriteString(get(kindKey(ev.Kind), locale.Args{"name": ev.DisplayName}))
	b.WriteString("\n---\n")
	b.WriteString(ev.Text)
	b.WriteString("\n---\n\n")

	b.WriteString(get("prompt_closing", nil))

	return b.String()
}

func kindKey(kind domain.InteractionKind) string {
	switch kind {
	case domain.KindMention:
		return "prompt_kind_mention"
	case domain.KindReply:
		return "prompt_kind_reply"
	default:
		return "prompt_kind_direct"
	}
}

// fallbackPrompt is the degraded prompt used when synthesis fails. It still
// embeds the sender name and the raw message so the pipeline can proceed.
func fallbackPrompt(ev *domain.ClassifiedEvent) string {
	name, text := "", ""
	if ev != nil {
		name, text = ev.DisplayName, ev.Text
	}
	return fmt.Sprintf(
		"Reply briefly on behalf of an account owner who is away from the keyboard.\n'%s' wrote:\n---\n%s\n---",
		name, text,
	)
}
