package usecase

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"strings"

	"github.com/iamvkosarev/krishisahay-bot/internal/model"
)

var (
	ErrEmptyQuestion = errors.New("question is empty")
	ErrAskFailed     = errors.New("ask request failed")
)

type Asker interface {
	Ask(ctx context.Context, req model.AskRequest) (model.AskResponse, error)
}

type AskUsecaseDeps struct {
	Asker  Asker
	Logger *slog.Logger
}

type AskUsecase struct {
	AskUsecaseDeps
}

func NewAskUsecase(deps AskUsecaseDeps) *AskUsecase {
	if deps.Logger == nil {
		deps.Logger = slog.Default()
	}
	return &AskUsecase{
		AskUsecaseDeps: deps,
	}
}

// Ask runs one ask cycle on session. On failure the question is rolled back
// and nothing is committed to the history log.
func (a *AskUsecase) Ask(
	ctx context.Context,
	session *SessionStore,
	question string,
	language model.Language,
) (model.AskResponse, error) {
	question = strings.TrimSpace(question)
	if question == "" {
		return model.AskResponse{}, ErrEmptyQuestion
	}

	token, chatHistory, err := session.BeginAsk(question)
	if err != nil {
		return model.AskResponse{}, err
	}

	resp, err := a.Asker.Ask(
		ctx, model.AskRequest{
			Question:    question,
			Language:    language,
			ChatHistory: chatHistory,
		},
	)
	if err != nil {
		session.RollbackUserMessage(token)
		return model.AskResponse{}, fmt.Errorf("%w: %w", ErrAskFailed, err)
	}

	if err = session.CompleteAsk(ctx, token, resp.Answer); err != nil {
		if errors.Is(err, ErrStaleResponse) {
			a.Logger.Info("dropping stale answer", "owner", session.Owner())
			return model.AskResponse{}, err
		}
		a.Logger.Warn("answer delivered but history not persisted", "owner", session.Owner(), "error", err)
	}
	return resp, nil
}
