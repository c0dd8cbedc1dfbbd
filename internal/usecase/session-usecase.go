package usecase

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"slices"
	"strings"
	"sync"
	"time"

	"github.com/google/uuid"
	"github.com/iamvkosarev/krishisahay-bot/config"
	"github.com/iamvkosarev/krishisahay-bot/internal/model"
)

var (
	ErrEmptyMessage  = errors.New("message is empty")
	ErrAskInFlight   = errors.New("previous question is still being answered")
	ErrStaleResponse = errors.New("conversation was replaced while waiting for the answer")
)

type HistoryStorage interface {
	LoadHistory(ctx context.Context, owner string) ([]model.HistoryEntry, error)
	SaveHistory(ctx context.Context, owner string, entries []model.HistoryEntry) error
}

// SessionRenderer presents a session. RenderConversation is called when the
// live conversation is replaced wholesale, RenderHistory after every change
// of the history log.
type SessionRenderer interface {
	RenderConversation(ctx context.Context, conversation model.Conversation)
	RenderHistory(ctx context.Context, entries []model.HistoryEntry)
}

type SessionStoreDeps struct {
	HistoryStorage HistoryStorage
	Renderer       SessionRenderer
	Logger         *slog.Logger
}

type pendingAsk struct {
	token uuid.UUID
	index int
}

// SessionStore owns the live conversation and the bounded history log of one owner.
type SessionStore struct {
	SessionStoreDeps
	cfg   config.Session
	owner string
	now   func() time.Time

	mu          sync.Mutex
	currentChat model.Conversation
	chatHistory []model.HistoryEntry
	pending     *pendingAsk
}

// NewSessionStore creates the store and loads the owner's history. A failed
// load is logged and leaves the history empty.
func NewSessionStore(ctx context.Context, deps SessionStoreDeps, cfg config.Session, owner string) *SessionStore {
	if cfg.HistoryLimit <= 0 || cfg.HistoryLimit > model.DefaultHistoryLimit {
		cfg.HistoryLimit = model.DefaultHistoryLimit
	}
	if cfg.TitleLength <= 0 {
		cfg.TitleLength = model.DefaultTitleLength
	}
	if deps.Logger == nil {
		deps.Logger = slog.Default()
	}
	s := &SessionStore{
		SessionStoreDeps: deps,
		cfg:              cfg,
		owner:            owner,
		now:              time.Now,
		currentChat:      model.Conversation{},
		chatHistory:      []model.HistoryEntry{},
	}
	s.loadHistoryFromStorage(ctx)
	return s
}

func (s *SessionStore) Owner() string {
	return s.owner
}

func (s *SessionStore) Conversation() model.Conversation {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.currentChat.Clone()
}

func (s *SessionStore) History() []model.HistoryEntry {
	s.mu.Lock()
	defer s.mu.Unlock()
	return model.CloneHistory(s.chatHistory)
}

// Entry returns the history entry with the given conversation key and its
// current position in the log.
func (s *SessionStore) Entry(key string) (model.HistoryEntry, int, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	index := s.indexOfLocked(key)
	if index == -1 {
		return model.HistoryEntry{}, -1, false
	}
	return s.chatHistory[index].Clone(), index, true
}

func (s *SessionStore) AppendUserMessage(text string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.appendUserMessageLocked(text)
}

// AppendAssistantMessage appends the answer and commits the conversation.
func (s *SessionStore) AppendAssistantMessage(ctx context.Context, text string) error {
	s.mu.Lock()
	entries, committed, err := s.appendAnswerLocked(ctx, text)
	s.mu.Unlock()

	if committed {
		s.renderHistory(ctx, entries)
	}
	return err
}

func (s *SessionStore) CommitConversation(ctx context.Context) error {
	s.mu.Lock()
	entries, committed, err := s.commitLocked(ctx)
	s.mu.Unlock()

	if committed {
		s.renderHistory(ctx, entries)
	}
	return err
}

// StartNewChat saves a non-empty live conversation and resets it.
func (s *SessionStore) StartNewChat(ctx context.Context) error {
	s.mu.Lock()
	var (
		entries   []model.HistoryEntry
		committed bool
		err       error
	)
	if len(s.currentChat) > 0 {
		entries, committed, err = s.commitLocked(ctx)
	}
	s.resetLocked()
	s.mu.Unlock()

	if committed {
		s.renderHistory(ctx, entries)
	}
	s.renderConversation(ctx, model.Conversation{})
	return err
}

// LoadChat replaces the live conversation with a copy of history entry index.
// It reports false when index is out of range.
func (s *SessionStore) LoadChat(ctx context.Context, index int) bool {
	s.mu.Lock()
	return s.loadChatLocked(ctx, index)
}

// LoadChatByKey is LoadChat for the entry with the given conversation key.
func (s *SessionStore) LoadChatByKey(ctx context.Context, key string) bool {
	s.mu.Lock()
	return s.loadChatLocked(ctx, s.indexOfLocked(key))
}

// loadChatLocked releases the lock before rendering.
func (s *SessionStore) loadChatLocked(ctx context.Context, index int) bool {
	if index < 0 || index >= len(s.chatHistory) {
		s.mu.Unlock()
		return false
	}
	s.currentChat = s.chatHistory[index].Messages.Clone()
	s.pending = nil
	conversation := s.currentChat.Clone()
	s.mu.Unlock()

	s.renderConversation(ctx, conversation)
	return true
}

// DeleteChat removes history entry index. Confirmation is the caller's job.
// When nothing stays on display the session falls back to a new chat; the
// removed conversation is not saved again.
func (s *SessionStore) DeleteChat(ctx context.Context, index int) (bool, error) {
	s.mu.Lock()
	return s.deleteChatLocked(ctx, index)
}

// DeleteChatByKey is DeleteChat for the entry with the given conversation
// key. The key survives shifts of the log between listing and confirmation.
func (s *SessionStore) DeleteChatByKey(ctx context.Context, key string) (bool, error) {
	s.mu.Lock()
	return s.deleteChatLocked(ctx, s.indexOfLocked(key))
}

// deleteChatLocked releases the lock before rendering.
func (s *SessionStore) deleteChatLocked(ctx context.Context, index int) (bool, error) {
	if index < 0 || index >= len(s.chatHistory) {
		s.mu.Unlock()
		return false, nil
	}
	removed := s.chatHistory[index]
	s.chatHistory = slices.Delete(s.chatHistory, index, index+1)
	err := s.persistLocked(ctx)

	resetView := len(s.chatHistory) == 0 ||
		len(s.currentChat) == 0 ||
		removed.SameConversation(s.currentChat)
	if resetView {
		s.resetLocked()
	}
	entries := model.CloneHistory(s.chatHistory)
	s.mu.Unlock()

	s.renderHistory(ctx, entries)
	if resetView {
		s.renderConversation(ctx, model.Conversation{})
	}
	return true, err
}

// BeginAsk appends the question as a pending user message. At most one ask
// may be pending per session. The returned turns include the question.
func (s *SessionStore) BeginAsk(question string) (uuid.UUID, []model.HistoryTurn, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.pending != nil {
		return uuid.Nil, nil, ErrAskInFlight
	}
	if err := s.appendUserMessageLocked(question); err != nil {
		return uuid.Nil, nil, err
	}
	s.pending = &pendingAsk{
		token: uuid.New(),
		index: len(s.currentChat) - 1,
	}
	return s.pending.token, s.chatHistoryLocked(), nil
}

// CompleteAsk records the answer of the pending ask identified by token.
func (s *SessionStore) CompleteAsk(ctx context.Context, token uuid.UUID, answer string) error {
	s.mu.Lock()
	if s.pending == nil || s.pending.token != token {
		s.mu.Unlock()
		return ErrStaleResponse
	}
	s.pending = nil
	entries, committed, err := s.appendAnswerLocked(ctx, answer)
	s.mu.Unlock()

	if committed {
		s.renderHistory(ctx, entries)
	}
	return err
}

// RollbackUserMessage drops the pending user message of a failed ask. It
// reports false if the ask is no longer pending.
func (s *SessionStore) RollbackUserMessage(token uuid.UUID) bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.pending == nil || s.pending.token != token {
		return false
	}
	index := s.pending.index
	s.pending = nil
	if index < 0 || index >= len(s.currentChat) || s.currentChat[index].Type != model.MessageTypeUser {
		return false
	}
	s.currentChat = slices.Delete(s.currentChat, index, index+1)
	return true
}

func (s *SessionStore) loadHistoryFromStorage(ctx context.Context) {
	entries, err := s.HistoryStorage.LoadHistory(ctx, s.owner)
	if err != nil {
		s.Logger.Error("failed to load chat history", "owner", s.owner, "error", err)
		return
	}
	s.chatHistory = model.ClampHistory(entries, s.cfg.HistoryLimit)
}

func (s *SessionStore) appendUserMessageLocked(text string) error {
	if strings.TrimSpace(text) == "" {
		return ErrEmptyMessage
	}
	s.appendMessageLocked(model.MessageTypeUser, text)
	return nil
}

func (s *SessionStore) appendMessageLocked(messageType model.MessageType, text string) {
	s.currentChat = append(
		s.currentChat, model.Message{
			Type:      messageType,
			Content:   text,
			Timestamp: s.now(),
		},
	)
}

// commitLocked saves a snapshot of the live conversation into the history
// log, replacing the entry started with the same first user message.
func (s *SessionStore) commitLocked(ctx context.Context) ([]model.HistoryEntry, bool, error) {
	if len(s.currentChat) == 0 {
		return nil, false, nil
	}
	firstUserMsg, ok := s.currentChat.FirstUserMessage()
	if !ok {
		return nil, false, nil
	}

	entry := model.HistoryEntry{
		Title:     model.MakeTitle(firstUserMsg.Content, s.cfg.TitleLength),
		Messages:  s.currentChat.Clone(),
		Timestamp: s.now(),
	}
	existingIndex := slices.IndexFunc(
		s.chatHistory, func(h model.HistoryEntry) bool {
			return h.SameConversation(s.currentChat)
		},
	)
	if existingIndex != -1 {
		s.chatHistory[existingIndex] = entry
	} else {
		s.chatHistory = append(s.chatHistory, entry)
	}
	if overflow := len(s.chatHistory) - s.cfg.HistoryLimit; overflow > 0 {
		s.chatHistory = slices.Delete(s.chatHistory, 0, overflow)
	}

	err := s.persistLocked(ctx)
	return model.CloneHistory(s.chatHistory), true, err
}

func (s *SessionStore) appendAnswerLocked(ctx context.Context, answer string) ([]model.HistoryEntry, bool, error) {
	s.appendMessageLocked(model.MessageTypeAssistant, answer)
	return s.commitLocked(ctx)
}

func (s *SessionStore) indexOfLocked(key string) int {
	if key == "" {
		return -1
	}
	return slices.IndexFunc(
		s.chatHistory, func(h model.HistoryEntry) bool {
			return h.Key() == key
		},
	)
}

func (s *SessionStore) persistLocked(ctx context.Context) error {
	if err := s.HistoryStorage.SaveHistory(ctx, s.owner, s.chatHistory); err != nil {
		s.Logger.Error("failed to persist chat history", "owner", s.owner, "error", err)
		return fmt.Errorf("failed to persist history: %w", err)
	}
	return nil
}

func (s *SessionStore) resetLocked() {
	s.currentChat = model.Conversation{}
	s.pending = nil
}

func (s *SessionStore) chatHistoryLocked() []model.HistoryTurn {
	turns := make([]model.HistoryTurn, 0, len(s.currentChat))
	for _, msg := range s.currentChat {
		turns = append(
			turns, model.HistoryTurn{
				Type:    msg.Type,
				Content: msg.Content,
			},
		)
	}
	return turns
}

func (s *SessionStore) renderConversation(ctx context.Context, conversation model.Conversation) {
	if s.Renderer != nil {
		s.Renderer.RenderConversation(ctx, conversation)
	}
}

func (s *SessionStore) renderHistory(ctx context.Context, entries []model.HistoryEntry) {
	if s.Renderer != nil {
		s.Renderer.RenderHistory(ctx, entries)
	}
}

// SessionRegistry keeps one SessionStore per owner for the process lifetime.
type SessionRegistry struct {
	HistoryStorage HistoryStorage
	Logger         *slog.Logger
	cfg            config.Session

	mu       sync.Mutex
	sessions map[string]*SessionStore
}

func NewSessionRegistry(historyStorage HistoryStorage, cfg config.Session, logger *slog.Logger) *SessionRegistry {
	return &SessionRegistry{
		HistoryStorage: historyStorage,
		Logger:         logger,
		cfg:            cfg,
		sessions:       make(map[string]*SessionStore),
	}
}

// Session returns the owner's store, creating it with renderer on first use.
func (r *SessionRegistry) Session(ctx context.Context, owner string, renderer SessionRenderer) *SessionStore {
	r.mu.Lock()
	defer r.mu.Unlock()
	if session, ok := r.sessions[owner]; ok {
		return session
	}
	session := NewSessionStore(
		ctx, SessionStoreDeps{
			HistoryStorage: r.HistoryStorage,
			Renderer:       renderer,
			Logger:         r.Logger,
		}, r.cfg, owner,
	)
	r.sessions[owner] = session
	return session
}
