package usecase

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"strconv"
	"strings"
	"sync"

	api "github.com/OvyFlash/telegram-bot-api"
	"github.com/iamvkosarev/krishisahay-bot/config"
	"github.com/iamvkosarev/krishisahay-bot/internal/model"
	"github.com/iamvkosarev/krishisahay-bot/pkg/local"
	"github.com/sourcegraph/conc"
	"github.com/sourcegraph/conc/pool"
)

const (
	CommandStart    = "start"
	CommandHelp     = "help"
	CommandNew      = "new"
	CommandChats    = "chats"
	CommandLanguage = "lang"
	CommandSettings = "settings"
	CommandAudio    = "audio"

	callbackOpen          = "open"
	callbackDelete        = "del"
	callbackDeleteConfirm = "delok"
	callbackDeleteCancel  = "delno"
	callbackSetting       = "set"

	settingAudio      = "audio"
	settingAnimations = "anim"
	settingDarkMode   = "theme"

	deleteButtonText = "🗑"
)

// TelegramBot is the part of the Bot API client the front end uses.
type TelegramBot interface {
	Send(c api.Chattable) (api.Message, error)
	Request(c api.Chattable) (*api.APIResponse, error)
	GetUpdatesChan(config api.UpdateConfig) api.UpdatesChannel
	StopReceivingUpdates()
}

type TelegramUsecaseDeps struct {
	Bot         TelegramBot
	Sessions    *SessionRegistry
	Ask         *AskUsecase
	Preferences *PreferencesUsecase
	Logger      *slog.Logger
}

type TelegramUsecase struct {
	TelegramUsecaseDeps
	cfg          config.Telegram
	allowedUsers map[int64]struct{}

	renderersMu sync.Mutex
	renderers   map[int64]*telegramRenderer
}

func NewTelegramUsecase(cfg config.Telegram, deps TelegramUsecaseDeps) (*TelegramUsecase, error) {
	if deps.Logger == nil {
		deps.Logger = slog.Default()
	}
	allowedUsers := make(map[int64]struct{})
	for _, userID := range cfg.AllowedTelegramID {
		allowedUsers[userID] = struct{}{}
	}

	if err := registerCommands(deps.Bot); err != nil {
		return nil, err
	}

	return &TelegramUsecase{
		TelegramUsecaseDeps: deps,
		cfg:                 cfg,
		allowedUsers:        allowedUsers,
		renderers:           make(map[int64]*telegramRenderer),
	}, nil
}

// registerCommands sets the default command list and one per supported
// language, so clients show descriptions in their own locale.
func registerCommands(bot TelegramBot) error {
	configs := []api.SetMyCommandsConfig{
		api.NewSetMyCommands(botCommands(model.LanguageEnglish)...),
	}
	for _, language := range local.Languages() {
		configs = append(
			configs, api.NewSetMyCommandsWithScopeAndLanguage(
				api.NewBotCommandScopeDefault(), local.LanguageCode(language), botCommands(language)...,
			),
		)
	}
	for _, cfg := range configs {
		if _, err := bot.Request(cfg); err != nil {
			return fmt.Errorf("failed to set bot commands for %q: %w", cfg.LanguageCode, err)
		}
	}
	return nil
}

func botCommands(language model.Language) []api.BotCommand {
	return []api.BotCommand{
		{
			Command:     CommandNew,
			Description: local.TextCommandNew.Text(language),
		},
		{
			Command:     CommandChats,
			Description: local.TextCommandChats.Text(language),
		},
		{
			Command:     CommandLanguage,
			Description: local.TextCommandLanguage.Text(language),
		},
		{
			Command:     CommandSettings,
			Description: local.TextCommandSettings.Text(language),
		},
		{
			Command:     CommandAudio,
			Description: local.TextCommandAudio.Text(language),
		},
		{
			Command:     CommandHelp,
			Description: local.TextCommandHelp.Text(language),
		},
	}
}

// Run handles updates until ctx is cancelled.
func (t *TelegramUsecase) Run(ctx context.Context) error {
	u := api.NewUpdate(0)
	u.Timeout = 60
	updates := t.Bot.GetUpdatesChan(u)

	maxGoroutines := t.cfg.MaxConcurrentUpdates
	if maxGoroutines <= 0 {
		maxGoroutines = 1
	}
	p := pool.New().WithMaxGoroutines(maxGoroutines)
	defer p.Wait()

	for {
		select {
		case <-ctx.Done():
			t.Bot.StopReceivingUpdates()
			return nil
		case update, ok := <-updates:
			if !ok {
				return nil
			}
			p.Go(
				func() {
					t.HandleUpdate(ctx, update)
				},
			)
		}
	}
}

func (t *TelegramUsecase) HandleUpdate(ctx context.Context, update api.Update) {
	if update.Message != nil {
		if err := t.handleMessage(ctx, update.Message); err != nil {
			t.Logger.Error("error handling message", "chat_id", update.Message.Chat.ID, "error", err)
		}
	}
	if update.CallbackQuery != nil {
		if err := t.handleCallbackQuery(ctx, update.CallbackQuery); err != nil {
			t.Logger.Error("error handling callback query", "error", err)
		}
	}
}

func (t *TelegramUsecase) handleMessage(ctx context.Context, message *api.Message) error {
	chatID := message.Chat.ID
	owner := ownerForChat(chatID)
	prefs := t.Preferences.Get(ctx, owner)

	if !t.isAllowed(chatID) {
		t.sendMessageAndHandleErr(chatID, local.TextNoAccess.Text(prefs.Language))
		return nil
	}

	session := t.session(ctx, chatID)

	if message.IsCommand() {
		return t.handleCommand(ctx, session, chatID, message.Command(), prefs)
	}
	return t.handleQuestion(ctx, session, chatID, message.Text, prefs)
}

func (t *TelegramUsecase) handleCommand(
	ctx context.Context,
	session *SessionStore,
	chatID int64,
	command string,
	prefs model.Preferences,
) error {
	owner := session.Owner()
	switch command {
	case CommandStart:
		t.sendMessageAndHandleErr(chatID, local.TextWelcome.Text(prefs.Language))
	case CommandHelp:
		t.sendMessageAndHandleErr(chatID, local.TextHelp.Text(prefs.Language))
	case CommandNew:
		if err := session.StartNewChat(ctx); err != nil {
			return fmt.Errorf("failed to start new chat: %w", err)
		}
	case CommandChats:
		t.renderer(chatID).sendHistoryList(ctx, session.History())
	case CommandLanguage:
		language, err := t.Preferences.ToggleLanguage(ctx, owner)
		if err != nil {
			t.sendMessageAndHandleErr(chatID, local.TextServerError.Text(prefs.Language))
			return fmt.Errorf("failed to toggle language: %w", err)
		}
		t.sendMessageAndHandleErr(chatID, local.TextLanguageChanged.Text(language))
		if len(session.Conversation()) == 0 {
			if err = session.StartNewChat(ctx); err != nil {
				return fmt.Errorf("failed to refresh welcome: %w", err)
			}
		}
	case CommandSettings:
		msg := api.NewMessage(chatID, local.TextSettings.Text(prefs.Language))
		msg.ReplyMarkup = settingsKeyboard(prefs)
		if _, err := t.Bot.Send(msg); err != nil {
			return fmt.Errorf("failed to send settings: %w", err)
		}
	case CommandAudio:
		enabled, err := t.Preferences.ToggleAudio(ctx, owner)
		if err != nil {
			t.sendMessageAndHandleErr(chatID, local.TextServerError.Text(prefs.Language))
			return fmt.Errorf("failed to toggle audio: %w", err)
		}
		if enabled {
			t.sendMessageAndHandleErr(chatID, local.TextVoiceOutputOn.Text(prefs.Language))
		} else {
			t.sendMessageAndHandleErr(chatID, local.TextVoiceOutputOff.Text(prefs.Language))
		}
	default:
		t.sendMessageAndHandleErr(chatID, local.TextUnknownCommand.Text(prefs.Language))
	}
	return nil
}

func (t *TelegramUsecase) handleQuestion(
	ctx context.Context,
	session *SessionStore,
	chatID int64,
	text string,
	prefs model.Preferences,
) error {
	question := truncateRunes(strings.TrimSpace(text), t.cfg.MaxQuestionLength)
	if question == "" {
		t.sendMessageAndHandleErr(chatID, local.TextPleaseEnter.Text(prefs.Language))
		return nil
	}

	var (
		resp        model.AskResponse
		askErr      error
		thinkingMsg api.Message
	)
	wg := conc.NewWaitGroup()
	if prefs.AnimationsEnabled {
		thinkingMsg = t.sendMessageAndHandleErr(chatID, local.TextThinking.Text(prefs.Language))
		wg.Go(
			func() {
				if _, err := t.Bot.Request(api.NewChatAction(chatID, api.ChatTyping)); err != nil {
					t.Logger.Warn("failed to send typing action", "chat_id", chatID, "error", err)
				}
			},
		)
	}
	wg.Go(
		func() {
			resp, askErr = t.Ask.Ask(ctx, session, question, prefs.Language)
		},
	)
	wg.Wait()

	if askErr != nil {
		return t.reportAskError(chatID, thinkingMsg.MessageID, askErr, prefs.Language)
	}

	if thinkingMsg.MessageID != 0 {
		if _, err := t.Bot.Send(api.NewEditMessageText(chatID, thinkingMsg.MessageID, resp.Answer)); err != nil {
			t.Logger.Warn("failed to edit thinking message", "chat_id", chatID, "error", err)
			t.sendMessageAndHandleErr(chatID, resp.Answer)
		}
	} else {
		t.sendMessageAndHandleErr(chatID, resp.Answer)
	}

	if resp.AudioURL != "" && prefs.AudioEnabled {
		if _, err := t.Bot.Send(api.NewAudio(chatID, api.FileURL(resp.AudioURL))); err != nil {
			t.Logger.Warn("failed to send audio", "chat_id", chatID, "audio_url", resp.AudioURL, "error", err)
		}
	}
	return nil
}

func (t *TelegramUsecase) reportAskError(chatID int64, thinkingMsgID int, err error, language model.Language) error {
	var notice string
	var backendErr *BackendError
	switch {
	case errors.Is(err, ErrEmptyQuestion), errors.Is(err, ErrEmptyMessage):
		notice = local.TextPleaseEnter.Text(language)
	case errors.Is(err, ErrAskInFlight):
		notice = local.TextAskInFlight.Text(language)
	case errors.Is(err, ErrStaleResponse):
		t.deleteMessage(chatID, thinkingMsgID)
		return nil
	case errors.As(err, &backendErr):
		notice = local.TextErrorFormat.Format(language, backendErr.Message)
	default:
		notice = local.TextRequestFailedFormat.Format(language, askFailureCause(err))
	}

	if thinkingMsgID != 0 {
		if _, sendErr := t.Bot.Send(api.NewEditMessageText(chatID, thinkingMsgID, notice)); sendErr == nil {
			return askErrorForLog(err)
		}
	}
	t.sendMessageAndHandleErr(chatID, notice)
	return askErrorForLog(err)
}

func (t *TelegramUsecase) handleCallbackQuery(ctx context.Context, query *api.CallbackQuery) error {
	if query.Message == nil {
		return nil
	}
	chatID := query.Message.Chat.ID
	if _, err := t.Bot.Request(api.NewCallback(query.ID, "")); err != nil {
		t.Logger.Warn("failed to answer callback", "chat_id", chatID, "error", err)
	}
	owner := ownerForChat(chatID)
	prefs := t.Preferences.Get(ctx, owner)
	if !t.isAllowed(chatID) {
		t.sendMessageAndHandleErr(chatID, local.TextNoAccess.Text(prefs.Language))
		return nil
	}

	action, arg, _ := strings.Cut(query.Data, ":")
	session := t.session(ctx, chatID)

	switch action {
	case callbackOpen:
		if !session.LoadChatByKey(ctx, arg) {
			t.sendMessageAndHandleErr(chatID, local.TextChatNotFound.Text(prefs.Language))
		}
	case callbackDelete:
		entry, index, ok := session.Entry(arg)
		if !ok {
			t.sendMessageAndHandleErr(chatID, local.TextChatNotFound.Text(prefs.Language))
			return nil
		}
		msg := api.NewMessage(
			chatID, local.TextConfirmDeleteFormat.Format(prefs.Language, entryTitle(entry, index, prefs.Language)),
		)
		msg.ReplyMarkup = api.NewInlineKeyboardMarkup(
			api.NewInlineKeyboardRow(
				api.NewInlineKeyboardButtonData(
					local.TextYes.Text(prefs.Language), callbackDeleteConfirm+":"+arg,
				),
				api.NewInlineKeyboardButtonData(local.TextNo.Text(prefs.Language), callbackDeleteCancel),
			),
		)
		if _, err := t.Bot.Send(msg); err != nil {
			return fmt.Errorf("failed to send delete confirmation: %w", err)
		}
	case callbackDeleteConfirm:
		t.deleteMessage(chatID, query.Message.MessageID)
		deleted, err := session.DeleteChatByKey(ctx, arg)
		if err != nil {
			t.sendMessageAndHandleErr(chatID, local.TextServerError.Text(prefs.Language))
			return fmt.Errorf("failed to delete chat: %w", err)
		}
		if !deleted {
			t.sendMessageAndHandleErr(chatID, local.TextChatNotFound.Text(prefs.Language))
			return nil
		}
		t.sendMessageAndHandleErr(chatID, local.TextChatDeleted.Text(prefs.Language))
	case callbackDeleteCancel:
		t.deleteMessage(chatID, query.Message.MessageID)
	case callbackSetting:
		var err error
		switch arg {
		case settingAudio:
			_, err = t.Preferences.ToggleAudio(ctx, owner)
		case settingAnimations:
			_, err = t.Preferences.ToggleAnimations(ctx, owner)
		case settingDarkMode:
			_, err = t.Preferences.ToggleDarkMode(ctx, owner)
		default:
			return fmt.Errorf("unknown setting %q", arg)
		}
		if err != nil {
			t.sendMessageAndHandleErr(chatID, local.TextServerError.Text(prefs.Language))
			return fmt.Errorf("failed to toggle setting %s: %w", arg, err)
		}
		prefs = t.Preferences.Get(ctx, owner)
		edit := api.NewEditMessageReplyMarkup(chatID, query.Message.MessageID, settingsKeyboard(prefs))
		if _, err = t.Bot.Send(edit); err != nil {
			return fmt.Errorf("failed to update settings keyboard: %w", err)
		}
	default:
		return fmt.Errorf("unknown callback %q", query.Data)
	}
	return nil
}

func (t *TelegramUsecase) isAllowed(chatID int64) bool {
	if !t.cfg.IsNotPublic {
		return true
	}
	_, ok := t.allowedUsers[chatID]
	return ok
}

func (t *TelegramUsecase) session(ctx context.Context, chatID int64) *SessionStore {
	return t.Sessions.Session(ctx, ownerForChat(chatID), t.renderer(chatID))
}

func (t *TelegramUsecase) renderer(chatID int64) *telegramRenderer {
	t.renderersMu.Lock()
	defer t.renderersMu.Unlock()
	r, ok := t.renderers[chatID]
	if !ok {
		r = &telegramRenderer{
			telegram: t,
			chatID:   chatID,
		}
		t.renderers[chatID] = r
	}
	return r
}

func (t *TelegramUsecase) deleteMessage(chatID int64, messageID int) {
	if messageID == 0 {
		return
	}
	if _, err := t.Bot.Request(api.NewDeleteMessage(chatID, messageID)); err != nil {
		t.Logger.Warn("failed to delete message", "chat_id", chatID, "error", err)
	}
}

func (t *TelegramUsecase) sendMessageAndHandleErr(chatID int64, message string) api.Message {
	msg, err := t.Bot.Send(api.NewMessage(chatID, message))
	if err != nil {
		t.Logger.Warn("failed to send message", "chat_id", chatID, "error", err)
	}
	return msg
}

// telegramRenderer shows one chat's session. The history list is the last
// message sent by /chats; it is edited in place when the history changes.
type telegramRenderer struct {
	telegram *TelegramUsecase
	chatID   int64

	mu               sync.Mutex
	historyMessageID int
}

func (r *telegramRenderer) RenderConversation(ctx context.Context, conversation model.Conversation) {
	prefs := r.telegram.Preferences.Get(ctx, ownerForChat(r.chatID))
	if len(conversation) == 0 {
		r.telegram.sendMessageAndHandleErr(r.chatID, local.TextWelcome.Text(prefs.Language))
		return
	}
	colors := paletteFor(prefs)
	for _, msg := range conversation {
		text := msg.Content
		if msg.Type == model.MessageTypeUser {
			text = colors.user + text
		}
		r.telegram.sendMessageAndHandleErr(r.chatID, text)
	}
}

func (r *telegramRenderer) RenderHistory(ctx context.Context, entries []model.HistoryEntry) {
	r.mu.Lock()
	messageID := r.historyMessageID
	r.mu.Unlock()
	if messageID == 0 {
		return
	}

	prefs := r.telegram.Preferences.Get(ctx, ownerForChat(r.chatID))
	text, markup := historyList(entries, prefs.Language)
	var edit api.Chattable
	if markup != nil {
		edit = api.NewEditMessageTextAndMarkup(r.chatID, messageID, text, *markup)
	} else {
		edit = api.NewEditMessageText(r.chatID, messageID, text)
	}
	if _, err := r.telegram.Bot.Send(edit); err != nil {
		r.telegram.Logger.Debug("failed to refresh history list", "chat_id", r.chatID, "error", err)
	}
}

func (r *telegramRenderer) sendHistoryList(ctx context.Context, entries []model.HistoryEntry) {
	prefs := r.telegram.Preferences.Get(ctx, ownerForChat(r.chatID))
	text, markup := historyList(entries, prefs.Language)
	msg := api.NewMessage(r.chatID, text)
	if markup != nil {
		msg.ReplyMarkup = *markup
	}
	sent, err := r.telegram.Bot.Send(msg)
	if err != nil {
		r.telegram.Logger.Warn("failed to send history list", "chat_id", r.chatID, "error", err)
		return
	}
	r.mu.Lock()
	r.historyMessageID = sent.MessageID
	r.mu.Unlock()
}

func historyList(entries []model.HistoryEntry, language model.Language) (string, *api.InlineKeyboardMarkup) {
	if len(entries) == 0 {
		return local.TextNoChats.Text(language), nil
	}
	rows := make([][]api.InlineKeyboardButton, 0, len(entries))
	for i := len(entries) - 1; i >= 0; i-- {
		key := entries[i].Key()
		rows = append(
			rows, api.NewInlineKeyboardRow(
				api.NewInlineKeyboardButtonData(entryTitle(entries[i], i, language), callbackOpen+":"+key),
				api.NewInlineKeyboardButtonData(deleteButtonText, callbackDelete+":"+key),
			),
		)
	}
	markup := api.NewInlineKeyboardMarkup(rows...)
	return local.TextChatHistory.Text(language), &markup
}

// palette holds the markers the bot decorates messages with. Telegram
// clients own their theme, so dark mode picks markers that read well on a
// dark background.
type palette struct {
	user string
	on   string
	off  string
}

var (
	lightPalette = palette{
		user: "👨‍🌾 ",
		on:   "✅ ",
		off:  "⬜ ",
	}
	darkPalette = palette{
		user: "🧑‍🌾 ",
		on:   "☑️ ",
		off:  "⬛ ",
	}
)

func paletteFor(prefs model.Preferences) palette {
	if prefs.DarkMode {
		return darkPalette
	}
	return lightPalette
}

func settingsKeyboard(prefs model.Preferences) api.InlineKeyboardMarkup {
	colors := paletteFor(prefs)
	toggle := func(enabled bool, label string) string {
		if enabled {
			return colors.on + label
		}
		return colors.off + label
	}
	return api.NewInlineKeyboardMarkup(
		api.NewInlineKeyboardRow(
			api.NewInlineKeyboardButtonData(
				toggle(prefs.AudioEnabled, local.TextEnableAudio.Text(prefs.Language)),
				callbackSetting+":"+settingAudio,
			),
		),
		api.NewInlineKeyboardRow(
			api.NewInlineKeyboardButtonData(
				toggle(prefs.AnimationsEnabled, local.TextEnableAnimations.Text(prefs.Language)),
				callbackSetting+":"+settingAnimations,
			),
		),
		api.NewInlineKeyboardRow(
			api.NewInlineKeyboardButtonData(
				toggle(prefs.DarkMode, local.TextDarkMode.Text(prefs.Language)),
				callbackSetting+":"+settingDarkMode,
			),
		),
	)
}

func entryTitle(entry model.HistoryEntry, index int, language model.Language) string {
	if entry.Title != "" {
		return entry.Title
	}
	return local.TextChatFallbackTitleFormat.Format(language, index+1)
}

func ownerForChat(chatID int64) string {
	return strconv.FormatInt(chatID, 10)
}

func truncateRunes(s string, limit int) string {
	if limit <= 0 {
		return s
	}
	runes := []rune(s)
	if len(runes) <= limit {
		return s
	}
	return string(runes[:limit])
}

// askFailureCause strips the ErrAskFailed marker joined in by AskUsecase.
func askFailureCause(err error) error {
	if joined, ok := err.(interface{ Unwrap() []error }); ok {
		if errs := joined.Unwrap(); len(errs) > 0 {
			return errs[len(errs)-1]
		}
	}
	return err
}

// askErrorForLog keeps user mistakes out of the error log.
func askErrorForLog(err error) error {
	if errors.Is(err, ErrEmptyQuestion) || errors.Is(err, ErrEmptyMessage) || errors.Is(err, ErrAskInFlight) {
		return nil
	}
	return err
}
