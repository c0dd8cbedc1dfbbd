package storage

import (
	"context"
	"errors"
	"fmt"
	"strconv"

	"github.com/iamvkosarev/krishisahay-bot/internal/model"
)

type PreferenceKey string

const (
	PreferenceDarkMode   = PreferenceKey("dark_mode")
	PreferenceAnimations = PreferenceKey("animations")
	PreferenceAudio      = PreferenceKey("audio")
	PreferenceLanguage   = PreferenceKey("language")
)

type PreferencesStorage struct {
	kv KV
}

func NewPreferencesStorage(kv KV) *PreferencesStorage {
	return &PreferencesStorage{
		kv: kv,
	}
}

// LoadPreferences reads every preference of owner, falling back to the
// default for keys that were never written.
func (p *PreferencesStorage) LoadPreferences(ctx context.Context, owner string) (model.Preferences, error) {
	prefs := model.DefaultPreferences()

	var err error
	if prefs.DarkMode, err = p.getBool(ctx, owner, PreferenceDarkMode, prefs.DarkMode); err != nil {
		return model.Preferences{}, err
	}
	if prefs.AnimationsEnabled, err = p.getBool(
		ctx, owner, PreferenceAnimations, prefs.AnimationsEnabled,
	); err != nil {
		return model.Preferences{}, err
	}
	if prefs.AudioEnabled, err = p.getBool(ctx, owner, PreferenceAudio, prefs.AudioEnabled); err != nil {
		return model.Preferences{}, err
	}

	raw, err := p.kv.Get(ctx, getPreferenceKey(owner, PreferenceLanguage))
	switch {
	case errors.Is(err, ErrKeyNotFound):
	case err != nil:
		return model.Preferences{}, fmt.Errorf("failed to get language preference: %w", err)
	default:
		language, err := model.ParseLanguage(string(raw))
		if err != nil {
			return model.Preferences{}, fmt.Errorf("failed to parse language preference %q: %w", raw, err)
		}
		prefs.Language = language
	}
	return prefs, nil
}

func (p *PreferencesStorage) SetBool(ctx context.Context, owner string, key PreferenceKey, value bool) error {
	prefKey := getPreferenceKey(owner, key)
	if err := p.kv.Set(ctx, prefKey, []byte(strconv.FormatBool(value))); err != nil {
		return fmt.Errorf("failed to save preference %s: %w", prefKey, err)
	}
	return nil
}

func (p *PreferencesStorage) SetLanguage(ctx context.Context, owner string, language model.Language) error {
	prefKey := getPreferenceKey(owner, PreferenceLanguage)
	if err := p.kv.Set(ctx, prefKey, []byte(language)); err != nil {
		return fmt.Errorf("failed to save preference %s: %w", prefKey, err)
	}
	return nil
}

func (p *PreferencesStorage) getBool(
	ctx context.Context, owner string, key PreferenceKey, fallback bool,
) (bool, error) {
	prefKey := getPreferenceKey(owner, key)
	raw, err := p.kv.Get(ctx, prefKey)
	if err != nil {
		if errors.Is(err, ErrKeyNotFound) {
			return fallback, nil
		}
		return false, fmt.Errorf("failed to get preference %s: %w", prefKey, err)
	}
	value, err := strconv.ParseBool(string(raw))
	if err != nil {
		return false, fmt.Errorf("failed to parse preference %s: %w", prefKey, err)
	}
	return value, nil
}

func getPreferenceKey(owner string, key PreferenceKey) string {
	return fmt.Sprintf("pref_%v_%v", key, owner)
}
