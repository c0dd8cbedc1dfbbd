package app

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"net/url"

	api "github.com/OvyFlash/telegram-bot-api"
	"github.com/iamvkosarev/krishisahay-bot/config"
	"github.com/iamvkosarev/krishisahay-bot/internal/storage"
	in_memory "github.com/iamvkosarev/krishisahay-bot/internal/storage/in-memory"
	key_value "github.com/iamvkosarev/krishisahay-bot/internal/storage/key-value"
	sql_kv "github.com/iamvkosarev/krishisahay-bot/internal/storage/sql-kv"
	"github.com/iamvkosarev/krishisahay-bot/internal/usecase"
	"github.com/redis/go-redis/v9"
)

var (
	ErrUnknownStorageDriver = errors.New("unknown storage driver")
	ErrUnknownBackendMode   = errors.New("unknown backend mode")
)

func Run(ctx context.Context, cfg *config.Config, logger *slog.Logger) error {
	kv, closer, err := NewKV(ctx, cfg.Storage)
	if err != nil {
		return fmt.Errorf("failed to open storage: %w", err)
	}
	defer func() {
		if err := closer.Close(); err != nil {
			logger.Warn("failed to close storage", "error", err)
		}
	}()

	asker, err := NewAsker(cfg, logger)
	if err != nil {
		return fmt.Errorf("failed to create asker: %w", err)
	}

	bot, err := api.NewBotAPI(cfg.Telegram.TelegramAPIToken)
	if err != nil {
		return fmt.Errorf("failed to create new bot: %w", err)
	}
	logger.Info("authorized on telegram", "username", bot.Self.UserName)

	sessions := usecase.NewSessionRegistry(storage.NewHistoryStorage(kv), cfg.Session, logger)

	askUsecase := usecase.NewAskUsecase(
		usecase.AskUsecaseDeps{
			Asker:  asker,
			Logger: logger,
		},
	)

	preferencesUsecase := usecase.NewPreferencesUsecase(
		usecase.PreferencesUsecaseDeps{
			PreferencesStorage: storage.NewPreferencesStorage(kv),
			Logger:             logger,
		},
	)

	telegramUsecase, err := usecase.NewTelegramUsecase(
		cfg.Telegram, usecase.TelegramUsecaseDeps{
			Bot:         bot,
			Sessions:    sessions,
			Ask:         askUsecase,
			Preferences: preferencesUsecase,
			Logger:      logger,
		},
	)
	if err != nil {
		return fmt.Errorf("failed to create telegram usecase: %w", err)
	}

	logger.Info("starting bot", "backend_mode", cfg.Backend.Mode, "storage_driver", cfg.Storage.Driver)
	return telegramUsecase.Run(ctx)
}

// NewKV opens the key-value backend selected by cfg.Driver.
func NewKV(ctx context.Context, cfg config.Storage) (storage.KV, io.Closer, error) {
	switch cfg.Driver {
	case config.StorageDriverRedis:
		rdb := redis.NewClient(
			&redis.Options{
				Addr:     cfg.Redis.Endpoint,
				Password: cfg.Redis.Password,
				DB:       cfg.Redis.DB,
			},
		)
		if err := rdb.Ping(ctx).Err(); err != nil {
			_ = rdb.Close()
			return nil, nil, fmt.Errorf("failed to ping redis %s: %w", cfg.Redis.Endpoint, err)
		}
		return key_value.NewKV(rdb, cfg.Redis.KeyPrefix), rdb, nil
	case config.StorageDriverSQLite:
		kv, err := sql_kv.Open(cfg.SQLite.Path)
		if err != nil {
			return nil, nil, err
		}
		return kv, kv, nil
	case config.StorageDriverMemory:
		return in_memory.NewKV(), closerFunc(func() error { return nil }), nil
	default:
		return nil, nil, fmt.Errorf("%w: %q", ErrUnknownStorageDriver, cfg.Driver)
	}
}

// NewAsker builds the backend collaborator selected by cfg.Backend.Mode.
func NewAsker(cfg *config.Config, logger *slog.Logger) (usecase.Asker, error) {
	switch cfg.Backend.Mode {
	case config.BackendModeHTTP:
		backend, err := usecase.NewBackendUsecase(cfg.Backend, nil)
		if err != nil {
			return nil, err
		}
		return backend, nil
	case config.BackendModeOpenAI:
		openAICfg := cfg.OpenAI
		baseURL, err := url.JoinPath(openAICfg.OpenAIBaseURL, "/v1")
		if err != nil {
			return nil, err
		}
		openAICfg.OpenAIBaseURL = baseURL
		return usecase.NewOpenAIUsecase(openAICfg, nil, logger), nil
	default:
		return nil, fmt.Errorf("%w: %q", ErrUnknownBackendMode, cfg.Backend.Mode)
	}
}

type closerFunc func() error

func (f closerFunc) Close() error {
	return f()
}
