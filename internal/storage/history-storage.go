package storage

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/iamvkosarev/krishisahay-bot/internal/model"
)

const historySchemaVersion = 1

var (
	ErrUnsupportedSchemaVersion = errors.New("unsupported history schema version")
)

type messageInternal struct {
	Type      model.MessageType `json:"type"`
	Content   string            `json:"content"`
	Timestamp time.Time         `json:"timestamp"`
}

type historyEntryInternal struct {
	Title     string            `json:"title"`
	Messages  []messageInternal `json:"messages"`
	Timestamp time.Time         `json:"timestamp"`
}

type historyInternal struct {
	Version int                    `json:"version"`
	Entries []historyEntryInternal `json:"entries"`
}

type HistoryStorage struct {
	kv KV
}

func NewHistoryStorage(kv KV) *HistoryStorage {
	return &HistoryStorage{
		kv: kv,
	}
}

// LoadHistory returns the stored history log of owner, oldest first.
// A missing log is an empty log.
func (h *HistoryStorage) LoadHistory(ctx context.Context, owner string) ([]model.HistoryEntry, error) {
	historyKey := getHistoryKey(owner)
	raw, err := h.kv.Get(ctx, historyKey)
	if err != nil {
		if errors.Is(err, ErrKeyNotFound) {
			return []model.HistoryEntry{}, nil
		}
		return nil, fmt.Errorf("failed to get history %s: %w", historyKey, err)
	}
	historyInt, err := decodeHistory(raw)
	if err != nil {
		return nil, fmt.Errorf("failed to decode history %s: %w", historyKey, err)
	}

	entries := make([]model.HistoryEntry, 0, len(historyInt.Entries))
	for _, entryInt := range historyInt.Entries {
		messages := make(model.Conversation, 0, len(entryInt.Messages))
		for _, msg := range entryInt.Messages {
			messages = append(
				messages, model.Message{
					Type:      msg.Type,
					Content:   msg.Content,
					Timestamp: msg.Timestamp,
				},
			)
		}
		entries = append(
			entries, model.HistoryEntry{
				Title:     entryInt.Title,
				Messages:  messages,
				Timestamp: entryInt.Timestamp,
			},
		)
	}
	return entries, nil
}

// SaveHistory replaces the stored history log of owner. An empty log
// removes the key.
func (h *HistoryStorage) SaveHistory(ctx context.Context, owner string, entries []model.HistoryEntry) error {
	historyKey := getHistoryKey(owner)
	if len(entries) == 0 {
		if err := h.kv.Delete(ctx, historyKey); err != nil {
			return fmt.Errorf("failed to delete history %s: %w", historyKey, err)
		}
		return nil
	}

	historyInt := historyInternal{
		Version: historySchemaVersion,
		Entries: make([]historyEntryInternal, 0, len(entries)),
	}
	for _, entry := range entries {
		messages := make([]messageInternal, 0, len(entry.Messages))
		for _, msg := range entry.Messages {
			messages = append(
				messages, messageInternal{
					Type:      msg.Type,
					Content:   msg.Content,
					Timestamp: msg.Timestamp,
				},
			)
		}
		historyInt.Entries = append(
			historyInt.Entries, historyEntryInternal{
				Title:     entry.Title,
				Messages:  messages,
				Timestamp: entry.Timestamp,
			},
		)
	}

	historyJSON, err := json.Marshal(historyInt)
	if err != nil {
		return fmt.Errorf("failed to marshal history: %w", err)
	}
	if err = h.kv.Set(ctx, historyKey, historyJSON); err != nil {
		return fmt.Errorf("failed to save history %s: %w", historyKey, err)
	}
	return nil
}

// decodeHistory accepts the versioned document and the bare entry array
// written by the browser client, which is treated as version 0.
func decodeHistory(raw []byte) (historyInternal, error) {
	trimmed := bytes.TrimSpace(raw)
	if len(trimmed) > 0 && trimmed[0] == '[' {
		var entries []historyEntryInternal
		if err := json.Unmarshal(trimmed, &entries); err != nil {
			return historyInternal{}, fmt.Errorf("failed to unmarshal legacy history: %w", err)
		}
		return historyInternal{
			Version: historySchemaVersion,
			Entries: entries,
		}, nil
	}

	var historyInt historyInternal
	if err := json.Unmarshal(trimmed, &historyInt); err != nil {
		return historyInternal{}, fmt.Errorf("failed to unmarshal history: %w", err)
	}
	if historyInt.Version != historySchemaVersion {
		return historyInternal{}, fmt.Errorf("%w: %d", ErrUnsupportedSchemaVersion, historyInt.Version)
	}
	return historyInt, nil
}

func getHistoryKey(owner string) string {
	return fmt.Sprintf("history_%v", owner)
}
