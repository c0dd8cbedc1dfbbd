package usecase

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"

	"github.com/iamvkosarev/krishisahay-bot/config"
	"github.com/iamvkosarev/krishisahay-bot/internal/model"
)

const DefaultBackendErrorMessage = "Unknown error occurred"

// BackendError is a non-success answer of the ask endpoint.
type BackendError struct {
	StatusCode int
	Message    string
}

func (e *BackendError) Error() string {
	return fmt.Sprintf("backend responded with status %d: %s", e.StatusCode, e.Message)
}

type backendErrorResponse struct {
	Error string `json:"error"`
}

// BackendUsecase talks to the farming assistant backend over its ask endpoint.
type BackendUsecase struct {
	client  *http.Client
	baseURL *url.URL
	askURL  string
}

func NewBackendUsecase(cfg config.Backend, client *http.Client) (*BackendUsecase, error) {
	baseURL, err := url.Parse(cfg.BaseURL)
	if err != nil {
		return nil, fmt.Errorf("failed to parse backend url %s: %w", cfg.BaseURL, err)
	}
	askURL, err := url.JoinPath(cfg.BaseURL, cfg.AskPath)
	if err != nil {
		return nil, fmt.Errorf("failed to build ask url: %w", err)
	}
	if client == nil {
		client = &http.Client{
			Timeout: cfg.RequestTimeout,
		}
	}
	return &BackendUsecase{
		client:  client,
		baseURL: baseURL,
		askURL:  askURL,
	}, nil
}

func (b *BackendUsecase) Ask(ctx context.Context, askReq model.AskRequest) (model.AskResponse, error) {
	if askReq.ChatHistory == nil {
		askReq.ChatHistory = []model.HistoryTurn{}
	}
	body, err := json.Marshal(askReq)
	if err != nil {
		return model.AskResponse{}, fmt.Errorf("failed to marshal ask request: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, b.askURL, bytes.NewReader(body))
	if err != nil {
		return model.AskResponse{}, fmt.Errorf("failed to create request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := b.client.Do(req)
	if err != nil {
		return model.AskResponse{}, fmt.Errorf("failed to send request: %w", err)
	}
	defer resp.Body.Close()

	respBody, err := io.ReadAll(resp.Body)
	if err != nil {
		return model.AskResponse{}, fmt.Errorf("failed to read response body: %w", err)
	}

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		backendErr := &BackendError{
			StatusCode: resp.StatusCode,
			Message:    DefaultBackendErrorMessage,
		}
		var errResp backendErrorResponse
		if err = json.Unmarshal(respBody, &errResp); err == nil && errResp.Error != "" {
			backendErr.Message = errResp.Error
		}
		return model.AskResponse{}, backendErr
	}

	var askResp model.AskResponse
	if err = json.Unmarshal(respBody, &askResp); err != nil {
		return model.AskResponse{}, fmt.Errorf("failed to unmarshal ask response: %w", err)
	}
	if askResp.AudioURL != "" {
		if askResp.AudioURL, err = b.resolve(askResp.AudioURL); err != nil {
			return model.AskResponse{}, err
		}
	}
	return askResp, nil
}

func (b *BackendUsecase) resolve(ref string) (string, error) {
	refURL, err := url.Parse(ref)
	if err != nil {
		return "", fmt.Errorf("failed to parse audio url %s: %w", ref, err)
	}
	return b.baseURL.ResolveReference(refURL).String(), nil
}
