package usecase

import (
	"context"
	"strconv"
	"strings"
	"sync"

	"go.uber.org/zap"

	"github.com/afklabs/afk-responder/internal/biz/domain"
	"github.com/afklabs/afk-responder/internal/locale"
)

// Callback actions rendered into inline keyboards.
const (
	ActionToggleListening = "toggle_listening"
	ActionSelectLanguage  = "select_language"
	ActionLangPrefix      = "lang_"
	ActionPersonaMenu     = "persona_menu"
	ActionPersonaAge      = "persona_age"
	ActionPersonaGender   = "persona_gender"
	ActionPersonaSuffix   = "persona_suffix"
	ActionPersonaJokes    = "persona_jokes"
	ActionPersonaSwearing = "persona_swearing"
	ActionPersonaInsult   = "persona_insult"
	ActionListLedger      = "list_interactions"
	ActionMainMenu        = "main_menu"
)

// SuffixClearToken is the literal admin input that empties the suffix.
const SuffixClearToken = "-"

// ledgerListLimit caps the interactions listing.
const ledgerListLimit = 20

// Button is one inline-keyboard button: a label and its callback action.
type Button struct {
	Label  string
	Action string
}

// View is a render instruction for the control transport. Edit means the
// triggering menu message is edited in place rather than a new one sent.
type View struct {
	Text      string
	Keyboard  [][]Button
	Edit      bool
	HTML      bool
	NoPreview bool
}

// AdminUsecase is the control-plane decision core: menu navigation, the
// pending single-field-input machine, and the settings mutations behind
// every button. It is transport-free; the server layer maps Views onto the
// messaging API.
type AdminUsecase struct {
	settings *SettingsManager
	locales  *locale.Resolver
	logger   *zap.Logger

	mu      sync.Mutex
	pending domain.PendingAction
}

// NewAdminUsecase creates the control decision core.
func NewAdminUsecase(settings *SettingsManager, locales *locale.Resolver, logger *zap.Logger) *AdminUsecase {
	return &AdminUsecase{
		settings: settings,
		locales:  locales,
		logger:   logger.Named("admin"),
	}
}

// Pending returns the currently armed input state.
func (uc *AdminUsecase) Pending() domain.PendingAction {
	uc.mu.Lock()
	defer uc.mu.Unlock()
	return uc.pending
}

func (uc *AdminUsecase) setPending(p domain.PendingAction) {
	uc.mu.Lock()
	uc.pending = p
	uc.mu.Unlock()
}

// takePending consumes and clears the armed state.
func (uc *AdminUsecase) takePending() domain.PendingAction {
	uc.mu.Lock()
	defer uc.mu.Unlock()
	p := uc.pending
	uc.pending = domain.PendingNone
	return p
}

// HandleCommand handles /start and /settings: show the main menu.
func (uc *AdminUsecase) HandleCommand(ctx context.Context, command string) []View {
	switch command {
	case "start", "settings":
		uc.setPending(domain.PendingNone)
		return []View{uc.mainMenu(uc.settings.Snapshot(), false)}
	default:
		s := uc.settings.Snapshot()
		return []View{{Text: uc.get(s.Language, "unknown_command", nil)}}
	}
}

// HandleCallback handles an inline-keyboard press. Any action other than the
// three input-arming ones silently cancels a pending input; the last admin
// action is authoritative.
func (uc *AdminUsecase) HandleCallback(ctx context.Context, action string) []View {
	uc.logger.Debug("callback", zap.String("action", action))

	switch action {
	case ActionPersonaAge:
		uc.setPending(domain.PendingAge)
		s := uc.settings.Snapshot()
		return []View{{Text: uc.get(s.Language, "enter_age", nil), Edit: true}}
	case ActionPersonaGender:
		uc.setPending(domain.PendingGender)
		s := uc.settings.Snapshot()
		return []View{{Text: uc.get(s.Language, "enter_gender", nil), Edit: true}}
	case ActionPersonaSuffix:
		uc.setPending(domain.PendingSuffix)
		s := uc.settings.Snapshot()
		return []View{{Text: uc.get(s.Language, "enter_suffix", nil), Edit: true}}
	}

	uc.setPending(domain.PendingNone)

	switch action {
	case ActionToggleListening:
		s := uc.settings.Update(ctx, func(s *domain.Settings) {
			s.IsListening = !s.IsListening
		})
		key := "listening_stopped"
		if s.IsListening {
			key = "listening_started"
		}
		return []View{
			{Text: uc.get(s.Language, key, nil)},
			uc.mainMenu(s, true),
		}

	case ActionSelectLanguage:
		s := uc.settings.Snapshot()
		return []View{uc.languageMenu(s)}

	case ActionPersonaMenu:
		return []View{uc.personaMenu(uc.settings.Snapshot(), true)}

	case ActionPersonaJokes:
		return uc.flipPersona(ctx, func(p *domain.Persona) { p.MakeJokes = !p.MakeJokes })
	case ActionPersonaSwearing:
		return uc.flipPersona(ctx, func(p *domain.Persona) { p.UseSwearing = !p.UseSwearing })
	case ActionPersonaInsult:
		return uc.flipPersona(ctx, func(p *domain.Persona) { p.CanInsult = !p.CanInsult })

	case ActionListLedger:
		return []View{uc.ledgerView(uc.settings.Snapshot())}

	case ActionMainMenu:
		return []View{uc.mainMenu(uc.settings.Snapshot(), true)}
	}

	if strings.HasPrefix(action, ActionLangPrefix) {
		code := strings.TrimPrefix(action, ActionLangPrefix)
		if !domain.ValidLanguage(code) {
			uc.logger.Warn("invalid language code", zap.String("code", code))
			return nil
		}
		s := uc.settings.Update(ctx, func(s *domain.Settings) {
			s.Language = code
		})
		return []View{uc.mainMenu(s, true)}
	}

	uc.logger.Warn("unknown callback action", zap.String("action", action))
	return nil
}

// HandleText consumes the admin's free-text input. Stray text with no
// pending action is ignored. A failed validation re-arms the same pending
// state so the admin can retry.
func (uc *AdminUsecase) HandleText(ctx context.Context, text string) []View {
	pending := uc.takePending()
	if pending == domain.PendingNone {
		return nil
	}

	text = strings.TrimSpace(text)
	lang := uc.settings.Snapshot().Language

	switch pending {
	case domain.PendingAge:
		age, err := strconv.Atoi(text)
		if err != nil {
			uc.setPending(domain.PendingAge)
			return []View{{Text: uc.get(lang, "error_age_number", nil)}}
		}
		if !domain.ValidAge(age) {
			uc.setPending(domain.PendingAge)
			return []View{{Text: uc.get(lang, "error_age_range", nil)}}
		}
		s := uc.settings.Update(ctx, func(s *domain.Settings) {
			s.Persona.Age = age
		})
		return []View{
			{Text: uc.get(s.Language, "age_updated", locale.Args{"age": strconv.Itoa(age)})},
			uc.personaMenu(s, false),
		}

	case domain.PendingGender:
		if text == "" {
			uc.setPending(domain.PendingGender)
			return []View{{Text: uc.get(lang, "error_invalid_input", nil)}}
		}
		phrase := truncateRunes(text, domain.MaxGenderLen)
		s := uc.settings.Update(ctx, func(s *domain.Settings) {
			s.Persona.GenderPhrase = phrase
		})
		return []View{
			{Text: uc.get(s.Language, "gender_updated", locale.Args{"gender": phrase})},
			uc.personaMenu(s, false),
		}

	case domain.PendingSuffix:
		if text == SuffixClearToken {
			s := uc.settings.Update(ctx, func(s *domain.Settings) {
				s.Persona.Suffix = ""
			})
			return []View{
				{Text: uc.get(s.Language, "suffix_cleared", nil)},
				uc.personaMenu(s, false),
			}
		}
		suffix := truncateRunes(text, domain.MaxSuffixLen)
		s := uc.settings.Update(ctx, func(s *domain.Settings) {
			s.Persona.Suffix = suffix
		})
		return []View{
			{Text: uc.get(s.Language, "suffix_updated", locale.Args{"suffix": suffix})},
			uc.personaMenu(s, false),
		}
	}

	return nil
}

func (uc *AdminUsecase) flipPersona(ctx context.Context, flip func(*domain.Persona)) []View {
	s := uc.settings.Update(ctx, func(s *domain.Settings) {
		flip(&s.Persona)
	})
	return []View{
		{Text: uc.get(s.Language, "setting_updated", nil)},
		uc.personaMenu(s, true),
	}
}

func (uc *AdminUsecase) mainMenu(s domain.Settings, edit bool) View {
	status := uc.get(s.Language, "status_off", nil)
	if s.IsListening {
		status = uc.get(s.Language, "status_on", nil)
	}
	return View{
		Text: uc.get(s.Language, "start_message", locale.Args{"status": status}),
		Keyboard: [][]Button{
			{{Label: uc.get(s.Language, "toggle_listening", nil), Action: ActionToggleListening}},
			{{Label: uc.get(s.Language, "language_select", nil), Action: ActionSelectLanguage}},
			{{Label: uc.get(s.Language, "persona_settings", nil), Action: ActionPersonaMenu}},
			{{Label: uc.get(s.Language, "list_interactions", nil), Action: ActionListLedger}},
		},
		Edit: edit,
	}
}

func (uc *AdminUsecase) languageMenu(s domain.Settings) View {
	return View{
		Text: uc.get(s.Language, "select_language_prompt", nil),
		Keyboard: [][]Button{
			{
				{Label: "🇹🇷 Türkçe", Action: ActionLangPrefix + domain.LangTurkish},
				{Label: "🇬🇧 English", Action: ActionLangPrefix + domain.LangEnglish},
				{Label: "🇷🇺 Русский", Action: ActionLangPrefix + domain.LangRussian},
			},
			{{Label: uc.get(s.Language, "back_button", nil), Action: ActionMainMenu}},
		},
		Edit: true,
	}
}

func (uc *AdminUsecase) personaMenu(s domain.Settings, edit bool) View {
	yesNo := func(v bool) string {
		if v {
			return uc.get(s.Language, "yes_label", nil)
		}
		return uc.get(s.Language, "no_label", nil)
	}
	suffix := s.Persona.Suffix
	if suffix == "" {
		suffix = SuffixClearToken
	}
	return View{
		Text: uc.get(s.Language, "persona_menu_title", nil),
		Keyboard: [][]Button{
			{{Label: uc.get(s.Language, "set_age", locale.Args{"age": strconv.Itoa(s.Persona.Age)}), Action: ActionPersonaAge}},
			{{Label: uc.get(s.Language, "set_gender", locale.Args{"gender": s.Persona.GenderPhrase}), Action: ActionPersonaGender}},
			{{Label: uc.get(s.Language, "toggle_swearing", locale.Args{"status": yesNo(s.Persona.UseSwearing)}), Action: ActionPersonaSwearing}},
			{{Label: uc.get(s.Language, "toggle_jokes", locale.Args{"status": yesNo(s.Persona.MakeJokes)}), Action: ActionPersonaJokes}},
			{{Label: uc.get(s.Language, "toggle_insult", locale.Args{"status": yesNo(s.Persona.CanInsult)}), Action: ActionPersonaInsult}},
			{{Label: uc.get(s.Language, "edit_suffix", locale.Args{"suffix": suffix}), Action: ActionPersonaSuffix}},
			{{Label: uc.get(s.Language, "back_button", nil), Action: ActionMainMenu}},
		},
		Edit: edit,
	}
}

func (uc *AdminUsecase) ledgerView(s domain.Settings) View {
	back := [][]Button{{{Label: uc.get(s.Language, "back_button", nil), Action: ActionMainMenu}}}

	entries, omitted := s.ListRecentInteractions(ledgerListLimit)
	if len(entries) == 0 {
		return View{
			Text:     uc.get(s.Language, "list_empty", nil),
			Keyboard: back,
			Edit:     true,
		}
	}

	var b strings.Builder
	b.WriteString(uc.get(s.Language, "list_title", nil))
	b.WriteString("\n\n")
	for _, e := range entries {
		b.WriteString("• ")
		switch {
		case e.Kind == string(domain.KindDirect):
			b.WriteString(uc.get(s.Language, "list_format_dm", locale.Args{
				"user_id": e.SenderID,
				"name":    htmlEscape(e.DisplayName),
			}))
		case e.OriginLink != "":
			b.WriteString(uc.get(s.Language, "list_format_group", locale.Args{
				"link": e.OriginLink,
				"name": htmlEscape(e.DisplayName),
				"type": e.Kind,
			}))
		default:
			b.WriteString(htmlEscape(e.DisplayName))
			b.WriteString(" (")
			b.WriteString(e.Kind)
			b.WriteString(")")
		}
		b.WriteString("\n")
	}
	if omitted > 0 {
		b.WriteString("\n")
		b.WriteString(uc.get(s.Language, "list_more", locale.Args{"count": strconv.Itoa(omitted)}))
	}

	return View{
		Text:      b.String(),
		Keyboard:  back,
		Edit:      true,
		HTML:      true,
		NoPreview: true,
	}
}

func (uc *AdminUsecase) get(lang, key string, args locale.Args) string {
	return uc.locales.Get(lang, key, args)
}

func truncateRunes(s string, n int) string {
	r := []rune(s)
	if len(r) <= n {
		return s
	}
	return string(r[:n])
}

func htmlEscape(s string) string {
	r := strings.NewReplacer("&", "&amp;", "<", "&lt;", ">", "&gt;")
	return r.Replace(s)
}
