package domain

// Supported interface languages.
const (
	LangTurkish = "tr"
	LangEnglish = "en"
	LangRussian = "ru"
)

// Persona field limits.
const (
	MinAge          = 1
	MaxAge          = 149
	MaxGenderLen    = 30
	MaxSuffixLen    = 50
	DefaultAge      = 23
	DefaultModel    = "gemini-1.5-flash"
	DefaultLanguage = LangTurkish
)

// Persona holds the parameters that shape the synthesized reply prompt.
type Persona struct {
	Age          int    `json:"age"`
	GenderPhrase string `json:"gender_phrase"`
	UseSwearing  bool   `json:"use_swearing"`
	MakeJokes    bool   `json:"make_jokes"`
	CanInsult    bool   `json:"can_insult"`
	Suffix       string `json:"suffix"`
}

// Settings is the single persisted configuration record shared by the
// listener and the control plane. Mutations go through the settings
// manager; nothing else touches a live instance.
type Settings struct {
	IsListening bool                   `json:"is_listening"`
	Language    string                 `json:"language"`
	Persona     Persona                `json:"persona"`
	Ledger      map[string]Interaction `json:"interaction_ledger"`
	ModelName   string                 `json:"model_name"`
}

// DefaultSettings returns a fresh copy of the built-in defaults.
func DefaultSettings() *Settings {
	return &Settings{
		IsListening: false,
		Language:    DefaultLanguage,
		Persona: Persona{
			Age:          DefaultAge,
			GenderPhrase: "erkeğim",
			UseSwearing:  true,
			MakeJokes:    true,
			CanInsult:    false,
			Suffix:       "- Afk Mesajı",
		},
		Ledger:    make(map[string]Interaction),
		ModelName: DefaultModel,
	}
}

// Clone returns a deep copy. Interaction values are plain data, so copying
// the map is enough.
func (s *Settings) Clone() *Settings {
	c := *s
	c.Ledger = make(map[string]Interaction, len(s.Ledger))
	for k, v := range s.Ledger {
		c.Ledger[k] = v
	}
	return &c
}

// ValidAge reports whether age is inside the accepted range.
func ValidAge(age int) bool {
	return age >= MinAge && age <= MaxAge
}

// ValidLanguage reports whether code is a supported language.
func ValidLanguage(code string) bool {
	switch code {
	case LangTurkish, LangEnglish, LangRussian:
		return true
	}
	return false
}
