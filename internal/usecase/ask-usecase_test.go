package usecase

import (
	"context"
	"errors"
	"testing"

	"github.com/iamvkosarev/krishisahay-bot/internal/model"
)

type fakeAsker struct {
	requests []model.AskRequest
	resp     model.AskResponse
	err      error
	onAsk    func()
}

func (f *fakeAsker) Ask(_ context.Context, req model.AskRequest) (model.AskResponse, error) {
	f.requests = append(f.requests, req)
	if f.onAsk != nil {
		f.onAsk()
	}
	return f.resp, f.err
}

func TestAskSuccess(t *testing.T) {
	ctx := context.Background()
	s := newTestSession(t)
	asker := &fakeAsker{resp: model.AskResponse{Answer: "Sow in November.", AudioURL: "http://b/audio/x.mp3"}}
	askUsecase := NewAskUsecase(AskUsecaseDeps{Asker: asker})

	resp, err := askUsecase.Ask(ctx, s.store, "  How do I grow wheat?  ", model.LanguageHindi)
	if err != nil {
		t.Fatalf("Ask failed: %v", err)
	}
	if resp.Answer != "Sow in November." || resp.AudioURL != "http://b/audio/x.mp3" {
		t.Errorf("unexpected response %+v", resp)
	}

	if len(asker.requests) != 1 {
		t.Fatalf("expected 1 request, got %d", len(asker.requests))
	}
	req := asker.requests[0]
	if req.Question != "How do I grow wheat?" || req.Language != model.LanguageHindi {
		t.Errorf("unexpected request %+v", req)
	}
	if len(req.ChatHistory) != 1 || req.ChatHistory[0].Type != model.MessageTypeUser {
		t.Errorf("expected history with the question, got %+v", req.ChatHistory)
	}

	conversation := s.store.Conversation()
	if len(conversation) != 2 || conversation[1].Type != model.MessageTypeAssistant {
		t.Errorf("unexpected conversation %+v", conversation)
	}
	if len(s.store.History()) != 1 {
		t.Error("expected the conversation to be committed")
	}
}

func TestAskSendsConversationSoFar(t *testing.T) {
	ctx := context.Background()
	s := newTestSession(t)
	asker := &fakeAsker{resp: model.AskResponse{Answer: "answer"}}
	askUsecase := NewAskUsecase(AskUsecaseDeps{Asker: asker})

	for _, q := range []string{"one", "two"} {
		if _, err := askUsecase.Ask(ctx, s.store, q, model.LanguageEnglish); err != nil {
			t.Fatal(err)
		}
	}
	want := []model.HistoryTurn{
		{Type: model.MessageTypeUser, Content: "one"},
		{Type: model.MessageTypeAssistant, Content: "answer"},
		{Type: model.MessageTypeUser, Content: "two"},
	}
	got := asker.requests[1].ChatHistory
	if len(got) != len(want) {
		t.Fatalf("expected %d turns, got %d", len(want), len(got))
	}
	for i := range want {
		if got[i] != want[i] {
			t.Errorf("turn %d: got %+v, want %+v", i, got[i], want[i])
		}
	}
}

func TestAskRejectsEmptyQuestion(t *testing.T) {
	s := newTestSession(t)
	asker := &fakeAsker{}
	askUsecase := NewAskUsecase(AskUsecaseDeps{Asker: asker})

	_, err := askUsecase.Ask(context.Background(), s.store, " \n\t", model.LanguageEnglish)
	if !errors.Is(err, ErrEmptyQuestion) {
		t.Errorf("expected ErrEmptyQuestion, got %v", err)
	}
	if len(asker.requests) != 0 || len(s.store.Conversation()) != 0 {
		t.Error("empty question must not mutate state or reach the backend")
	}
}

func TestAskFailureRollsBack(t *testing.T) {
	ctx := context.Background()
	s := newTestSession(t)
	ok := &fakeAsker{resp: model.AskResponse{Answer: "Sow in November."}}
	if _, err := NewAskUsecase(AskUsecaseDeps{Asker: ok}).Ask(ctx, s.store, "How do I grow wheat?", model.LanguageEnglish); err != nil {
		t.Fatal(err)
	}
	before := len(s.store.Conversation())
	historyBefore := s.store.History()

	transportErr := errors.New("connection refused")
	failing := NewAskUsecase(AskUsecaseDeps{Asker: &fakeAsker{err: transportErr}})
	_, err := failing.Ask(ctx, s.store, "And rice?", model.LanguageEnglish)
	if !errors.Is(err, ErrAskFailed) || !errors.Is(err, transportErr) {
		t.Errorf("expected wrapped transport error, got %v", err)
	}

	if got := len(s.store.Conversation()); got != before {
		t.Errorf("conversation length %d, want %d", got, before)
	}
	historyAfter := s.store.History()
	if len(historyAfter) != len(historyBefore) || len(historyAfter[0].Messages) != len(historyBefore[0].Messages) {
		t.Error("history changed after a failed ask")
	}
}

func TestAskBackendErrorIsExposed(t *testing.T) {
	s := newTestSession(t)
	asker := &fakeAsker{err: &BackendError{StatusCode: 500, Message: "model overloaded"}}

	_, err := NewAskUsecase(AskUsecaseDeps{Asker: asker}).Ask(context.Background(), s.store, "q", model.LanguageEnglish)
	var backendErr *BackendError
	if !errors.As(err, &backendErr) || backendErr.Message != "model overloaded" {
		t.Errorf("expected BackendError, got %v", err)
	}
	if len(s.store.Conversation()) != 0 {
		t.Error("failed question must be rolled back")
	}
}

func TestAskDropsStaleAnswer(t *testing.T) {
	ctx := context.Background()
	s := newTestSession(t)
	asker := &fakeAsker{resp: model.AskResponse{Answer: "late"}}
	asker.onAsk = func() {
		if err := s.store.StartNewChat(ctx); err != nil {
			t.Error(err)
		}
	}

	_, err := NewAskUsecase(AskUsecaseDeps{Asker: asker}).Ask(ctx, s.store, "q", model.LanguageEnglish)
	if !errors.Is(err, ErrStaleResponse) {
		t.Errorf("expected ErrStaleResponse, got %v", err)
	}
	if len(s.store.Conversation()) != 0 {
		t.Error("stale answer must not be appended")
	}
}

func TestAskRejectsConcurrentAsk(t *testing.T) {
	ctx := context.Background()
	s := newTestSession(t)
	askUsecase := NewAskUsecase(AskUsecaseDeps{Asker: &fakeAsker{resp: model.AskResponse{Answer: "a"}}})

	var nestedErr error
	asker := &fakeAsker{resp: model.AskResponse{Answer: "first answer"}}
	asker.onAsk = func() {
		_, nestedErr = askUsecase.Ask(ctx, s.store, "second", model.LanguageEnglish)
	}
	if _, err := NewAskUsecase(AskUsecaseDeps{Asker: asker}).Ask(ctx, s.store, "first", model.LanguageEnglish); err != nil {
		t.Fatal(err)
	}
	if !errors.Is(nestedErr, ErrAskInFlight) {
		t.Errorf("expected ErrAskInFlight, got %v", nestedErr)
	}
	if got := len(s.store.Conversation()); got != 2 {
		t.Errorf("expected only the first exchange, got %d messages", got)
	}
}
