package usecase

import (
	"context"
	"errors"
	"sync"
	"testing"
	"time"

	"github.com/iamvkosarev/krishisahay-bot/config"
	"github.com/iamvkosarev/krishisahay-bot/internal/model"
	"github.com/iamvkosarev/krishisahay-bot/internal/storage"
	in_memory "github.com/iamvkosarev/krishisahay-bot/internal/storage/in-memory"
)

var errStorageDown = errors.New("storage down")

type failingHistoryStorage struct {
	loadErr error
	saveErr error
}

func (f *failingHistoryStorage) LoadHistory(context.Context, string) ([]model.HistoryEntry, error) {
	return nil, f.loadErr
}

func (f *failingHistoryStorage) SaveHistory(context.Context, string, []model.HistoryEntry) error {
	return f.saveErr
}

type recordingRenderer struct {
	mu            sync.Mutex
	conversations []model.Conversation
	histories     [][]model.HistoryEntry
}

func (r *recordingRenderer) RenderConversation(_ context.Context, conversation model.Conversation) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.conversations = append(r.conversations, conversation)
}

func (r *recordingRenderer) RenderHistory(_ context.Context, entries []model.HistoryEntry) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.histories = append(r.histories, entries)
}

type fakeClock struct {
	now time.Time
}

func (c *fakeClock) Now() time.Time {
	c.now = c.now.Add(time.Second)
	return c.now
}

type testSession struct {
	store          *SessionStore
	historyStorage *storage.HistoryStorage
	renderer       *recordingRenderer
}

func newTestSession(t *testing.T) testSession {
	t.Helper()
	return newTestSessionWithKV(t, in_memory.NewKV())
}

func newTestSessionWithKV(t *testing.T, kv storage.KV) testSession {
	t.Helper()
	historyStorage := storage.NewHistoryStorage(kv)
	renderer := &recordingRenderer{}
	store := NewSessionStore(
		context.Background(), SessionStoreDeps{
			HistoryStorage: historyStorage,
			Renderer:       renderer,
		}, config.Session{}, "owner",
	)
	clock := &fakeClock{now: time.Date(2024, 11, 2, 9, 0, 0, 0, time.UTC)}
	store.now = clock.Now
	return testSession{
		store:          store,
		historyStorage: historyStorage,
		renderer:       renderer,
	}
}

// askAndAnswer runs a successful ask cycle directly on the store.
func askAndAnswer(t *testing.T, store *SessionStore, question, answer string) {
	t.Helper()
	token, _, err := store.BeginAsk(question)
	if err != nil {
		t.Fatalf("BeginAsk(%q) failed: %v", question, err)
	}
	if err = store.CompleteAsk(context.Background(), token, answer); err != nil {
		t.Fatalf("CompleteAsk failed: %v", err)
	}
}
