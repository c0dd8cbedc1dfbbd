package local

import (
	"fmt"

	"github.com/iamvkosarev/krishisahay-bot/internal/model"
)

// languages lists the supported locales with their ISO 639-1 codes. The
// first one is the fallback for texts without a translation.
var languages = []struct {
	language model.Language
	code     string
}{
	{language: model.LanguageEnglish, code: "en"},
	{language: model.LanguageHindi, code: "hi"},
}

// Languages returns every supported language, fallback first.
func Languages() []model.Language {
	result := make([]model.Language, 0, len(languages))
	for _, l := range languages {
		result = append(result, l.language)
	}
	return result
}

// LanguageCode returns the ISO 639-1 code of language, as Telegram clients report it.
func LanguageCode(language model.Language) string {
	for _, l := range languages {
		if l.language == language {
			return l.code
		}
	}
	return languages[0].code
}

type Localization struct {
	language model.Language
	text     string
}

func NewTrans(language model.Language, text string) Localization {
	return Localization{
		language: language,
		text:     text,
	}
}

// TextSet is one user-facing text in every language it was translated to.
type TextSet struct {
	texts map[model.Language]string
}

// NewSet builds a set from the fallback language text and its translations.
func NewSet(fallback string, localizations ...Localization) TextSet {
	set := TextSet{
		texts: map[model.Language]string{
			languages[0].language: fallback,
		},
	}
	for _, localization := range localizations {
		set.texts[localization.language] = localization.text
	}
	return set
}

// Translated reports whether the set has its own text for language.
func (s TextSet) Translated(language model.Language) bool {
	_, ok := s.texts[language]
	return ok
}

func (s TextSet) Text(language model.Language) string {
	if text, ok := s.texts[language]; ok {
		return text
	}
	return s.texts[languages[0].language]
}

func (s TextSet) Format(language model.Language, a ...any) string {
	return fmt.Sprintf(s.Text(language), a...)
}
