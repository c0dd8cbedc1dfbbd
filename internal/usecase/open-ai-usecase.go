package usecase

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	"github.com/iamvkosarev/krishisahay-bot/config"
	"github.com/iamvkosarev/krishisahay-bot/internal/model"
	"github.com/iamvkosarev/krishisahay-bot/pkg/cropinfo"
	openai_tools "github.com/iamvkosarev/krishisahay-bot/pkg/openai-tools"
	"github.com/sashabaranov/go-openai"
)

const (
	OpenAIRoleUser      = "user"
	OpenAIRoleAssistant = "assistant"
	OpenAIRoleUnknown   = "unknown"

	advisorPromptFormat = `You are an expert agricultural advisor. Answer questions directly and practically.

LANGUAGE: You MUST respond ONLY in %[1]s. Do not mix languages. Every word must be in %[1]s.

INSTRUCTIONS:
- Provide direct, practical advice without any greetings or flowery language.
- Do not start with "Namaste", "Hello", or any cultural greetings.
- Write in simple, easy-to-understand language.
- Format as continuous paragraphs without bullet points.
- This will be converted to audio, so keep it natural and conversational.
- Reference previous conversation if relevant to maintain context.
- Keep response to 2-3 paragraphs maximum.`
)

var (
	ErrEmptyCompletion = errors.New("model returned no choices")
)

type TokenCounter func(messages []openai.ChatCompletionMessage, model string) (int, error)

// OpenAIUsecase answers questions through an OpenAI-compatible chat API
// instead of the farming backend.
type OpenAIUsecase struct {
	cfg        config.OpenAI
	client     *openai.Client
	countToken TokenCounter
	logger     *slog.Logger
}

func NewOpenAIUsecase(cfg config.OpenAI, countToken TokenCounter, logger *slog.Logger) *OpenAIUsecase {
	clientConfig := openai.DefaultConfig(cfg.OpenAIAPIKey)
	clientConfig.BaseURL = cfg.OpenAIBaseURL
	if countToken == nil {
		countToken = openai_tools.CountToken
	}
	if logger == nil {
		logger = slog.Default()
	}
	return &OpenAIUsecase{
		cfg:        cfg,
		client:     openai.NewClientWithConfig(clientConfig),
		countToken: countToken,
		logger:     logger,
	}
}

func (o *OpenAIUsecase) Ask(ctx context.Context, req model.AskRequest) (model.AskResponse, error) {
	previous := req.ChatHistory
	if n := len(previous); n > 0 && previous[n-1].Type == model.MessageTypeUser && previous[n-1].Content == req.Question {
		previous = previous[:n-1]
	}

	messageHistory := make([]openai.ChatCompletionMessage, 0, len(previous))
	for _, turn := range previous {
		messageHistory = append(
			messageHistory, openai.ChatCompletionMessage{
				Role:    parseMessageTypeToRole(turn.Type),
				Content: turn.Content,
			},
		)
	}
	systemMessage := openai.ChatCompletionMessage{
		Role:    openai.ChatMessageRoleSystem,
		Content: advisorPrompt(req.Question, req.Language),
	}
	question := openai.ChatCompletionMessage{
		Role:    OpenAIRoleUser,
		Content: req.Question,
	}

	messageHistory = o.trimHistory(systemMessage, messageHistory, question)

	messages := make([]openai.ChatCompletionMessage, 0, len(messageHistory)+2)
	messages = append(messages, systemMessage)
	messages = append(messages, messageHistory...)
	messages = append(messages, question)

	resp, err := o.client.CreateChatCompletion(
		ctx, openai.ChatCompletionRequest{
			Model:       o.cfg.OpenAIModel,
			Temperature: o.cfg.ModelTemperature,
			TopP:        1,
			N:           1,
			Messages:    messages,
		},
	)
	if err != nil {
		return model.AskResponse{}, fmt.Errorf("failed to create chat completion: %w", err)
	}
	if len(resp.Choices) == 0 {
		return model.AskResponse{}, ErrEmptyCompletion
	}
	return model.AskResponse{
		Answer: resp.Choices[0].Message.Content,
	}, nil
}

// trimHistory drops the oldest turns until the prompt fits MaxContextTokens.
func (o *OpenAIUsecase) trimHistory(
	systemMessage openai.ChatCompletionMessage,
	messageHistory []openai.ChatCompletionMessage,
	question openai.ChatCompletionMessage,
) []openai.ChatCompletionMessage {
	if o.cfg.MaxContextTokens <= 0 {
		return messageHistory
	}
	for len(messageHistory) > 0 {
		prompt := make([]openai.ChatCompletionMessage, 0, len(messageHistory)+2)
		prompt = append(prompt, systemMessage)
		prompt = append(prompt, messageHistory...)
		prompt = append(prompt, question)

		tokenCount, err := o.countToken(prompt, o.cfg.OpenAIModel)
		if err != nil {
			o.logger.Warn("failed to count tokens, sending history untrimmed", "error", err)
			return messageHistory
		}
		if tokenCount < o.cfg.MaxContextTokens {
			break
		}
		messageHistory = messageHistory[1:]
		o.logger.Debug("history trimmed due to token limit", "tokens", tokenCount)
	}
	return messageHistory
}

// advisorPrompt builds the system prompt, adding the catalog block of the
// crop the question is about.
func advisorPrompt(question string, language model.Language) string {
	prompt := fmt.Sprintf(advisorPromptFormat, language)
	if cropContext, ok := cropinfo.ContextFor(question, language); ok {
		prompt += "\n\nCrop Information: " + cropContext
	}
	return prompt
}

func parseMessageTypeToRole(messageType model.MessageType) string {
	switch messageType {
	case model.MessageTypeUser:
		return OpenAIRoleUser
	case model.MessageTypeAssistant:
		return OpenAIRoleAssistant
	default:
		return OpenAIRoleUnknown
	}
}
