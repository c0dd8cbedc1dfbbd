package usecase

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/iamvkosarev/krishisahay-bot/internal/model"
	"github.com/iamvkosarev/krishisahay-bot/internal/storage"
)

type PreferencesStorage interface {
	LoadPreferences(ctx context.Context, owner string) (model.Preferences, error)
	SetBool(ctx context.Context, owner string, key storage.PreferenceKey, value bool) error
	SetLanguage(ctx context.Context, owner string, language model.Language) error
}

type PreferencesUsecaseDeps struct {
	PreferencesStorage PreferencesStorage
	Logger             *slog.Logger
}

type PreferencesUsecase struct {
	PreferencesUsecaseDeps
}

func NewPreferencesUsecase(deps PreferencesUsecaseDeps) *PreferencesUsecase {
	if deps.Logger == nil {
		deps.Logger = slog.Default()
	}
	return &PreferencesUsecase{
		PreferencesUsecaseDeps: deps,
	}
}

// Get returns the owner's preferences, or the defaults if they cannot be read.
func (p *PreferencesUsecase) Get(ctx context.Context, owner string) model.Preferences {
	prefs, err := p.PreferencesStorage.LoadPreferences(ctx, owner)
	if err != nil {
		p.Logger.Warn("failed to load preferences, using defaults", "owner", owner, "error", err)
		return model.DefaultPreferences()
	}
	return prefs
}

func (p *PreferencesUsecase) ToggleDarkMode(ctx context.Context, owner string) (bool, error) {
	prefs := p.Get(ctx, owner)
	return p.setBool(ctx, owner, storage.PreferenceDarkMode, !prefs.DarkMode)
}

func (p *PreferencesUsecase) ToggleAnimations(ctx context.Context, owner string) (bool, error) {
	prefs := p.Get(ctx, owner)
	return p.setBool(ctx, owner, storage.PreferenceAnimations, !prefs.AnimationsEnabled)
}

func (p *PreferencesUsecase) ToggleAudio(ctx context.Context, owner string) (bool, error) {
	prefs := p.Get(ctx, owner)
	return p.setBool(ctx, owner, storage.PreferenceAudio, !prefs.AudioEnabled)
}

func (p *PreferencesUsecase) SetLanguage(ctx context.Context, owner string, language string) (model.Language, error) {
	lang, err := model.ParseLanguage(language)
	if err != nil {
		return "", fmt.Errorf("failed to set language %q: %w", language, err)
	}
	if err = p.PreferencesStorage.SetLanguage(ctx, owner, lang); err != nil {
		return "", fmt.Errorf("failed to set language: %w", err)
	}
	return lang, nil
}

// ToggleLanguage switches to the other supported locale.
func (p *PreferencesUsecase) ToggleLanguage(ctx context.Context, owner string) (model.Language, error) {
	prefs := p.Get(ctx, owner)
	return p.SetLanguage(ctx, owner, string(prefs.Language.Other()))
}

func (p *PreferencesUsecase) setBool(
	ctx context.Context, owner string, key storage.PreferenceKey, value bool,
) (bool, error) {
	if err := p.PreferencesStorage.SetBool(ctx, owner, key, value); err != nil {
		return false, fmt.Errorf("failed to set preference %s: %w", key, err)
	}
	return value, nil
}
