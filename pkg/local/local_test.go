package local

import (
	"testing"

	"github.com/iamvkosarev/krishisahay-bot/internal/model"
)

func TestTextSet(t *testing.T) {
	set := NewSet("Chat %d", NewTrans(model.LanguageHindi, "बातचीत %d"))

	if got := set.Text(model.LanguageEnglish); got != "Chat %d" {
		t.Errorf("Text(English) = %q", got)
	}
	if got := set.Format(model.LanguageHindi, 3); got != "बातचीत 3" {
		t.Errorf("Format(Hindi) = %q", got)
	}
	if got := set.Format(model.LanguageEnglish, 3); got != "Chat 3" {
		t.Errorf("Format(English) = %q", got)
	}
	if got := set.Text(model.Language("Tamil")); got != "Chat %d" {
		t.Errorf("unknown language must fall back to English, got %q", got)
	}
}

func TestEveryTextHasHindi(t *testing.T) {
	sets := map[string]TextSet{
		"welcome":        TextWelcome,
		"help":           TextHelp,
		"enter":          TextPleaseEnter,
		"thinking":       TextThinking,
		"deleted":        TextChatDeleted,
		"settings":       TextSettings,
		"command new":    TextCommandNew,
		"command chats":  TextCommandChats,
		"crop info":      TextCropInfoFormat,
		"crop rotation":  TextCropRotationFormat,
		"no fertilizer":  TextNoFertilizerData,
		"no rotation":    TextNoRotationData,
		"command lang":   TextCommandLanguage,
		"command audio":  TextCommandAudio,
		"command help":   TextCommandHelp,
		"command config": TextCommandSettings,
	}
	for name, set := range sets {
		if !set.Translated(model.LanguageHindi) {
			t.Errorf("%s has no hindi translation", name)
		}
	}
}

func TestLanguages(t *testing.T) {
	langs := Languages()
	if len(langs) != 2 || langs[0] != model.LanguageEnglish || langs[1] != model.LanguageHindi {
		t.Fatalf("unexpected languages %v", langs)
	}
	if LanguageCode(model.LanguageHindi) != "hi" || LanguageCode(model.LanguageEnglish) != "en" {
		t.Error("unexpected language codes")
	}
	if LanguageCode(model.Language("Tamil")) != "en" {
		t.Error("unknown language must map to the fallback code")
	}
}
