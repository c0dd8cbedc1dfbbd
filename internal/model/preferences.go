package model

import "errors"

var (
	ErrUnknownLanguage = errors.New("unknown language")
)

type Language string

const (
	LanguageEnglish = Language("English")
	LanguageHindi   = Language("Hindi")
)

func ParseLanguage(s string) (Language, error) {
	switch Language(s) {
	case LanguageEnglish:
		return LanguageEnglish, nil
	case LanguageHindi:
		return LanguageHindi, nil
	default:
		return "", ErrUnknownLanguage
	}
}

// Other returns the second of the two supported locales.
func (l Language) Other() Language {
	if l == LanguageHindi {
		return LanguageEnglish
	}
	return LanguageHindi
}

type Preferences struct {
	DarkMode          bool
	AnimationsEnabled bool
	AudioEnabled      bool
	Language          Language
}

func DefaultPreferences() Preferences {
	return Preferences{
		DarkMode:          false,
		AnimationsEnabled: true,
		AudioEnabled:      true,
		Language:          LanguageEnglish,
	}
}
