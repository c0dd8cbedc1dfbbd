package model

import (
	"slices"
	"time"
)

const (
	DefaultHistoryLimit = 50
	DefaultTitleLength  = 30
	titleEllipsis       = "..."
)

type HistoryEntry struct {
	Title     string
	Messages  Conversation
	Timestamp time.Time
}

// SameConversation reports whether two entries were started with the same
// first user message.
func (h HistoryEntry) SameConversation(conversation Conversation) bool {
	first, ok := h.Messages.FirstUserMessage()
	if !ok {
		return false
	}
	other, ok := conversation.FirstUserMessage()
	if !ok {
		return false
	}
	return first.Content == other.Content
}

// Key is the entry's conversation key, empty for an entry without user messages.
func (h HistoryEntry) Key() string {
	key, _ := h.Messages.Key()
	return key
}

func (h HistoryEntry) Clone() HistoryEntry {
	return HistoryEntry{
		Title:     h.Title,
		Messages:  h.Messages.Clone(),
		Timestamp: h.Timestamp,
	}
}

// MakeTitle truncates content to maxLength code points, marking the cut with an ellipsis.
func MakeTitle(content string, maxLength int) string {
	runes := []rune(content)
	if len(runes) <= maxLength {
		return content
	}
	return string(runes[:maxLength]) + titleEllipsis
}

func CloneHistory(entries []HistoryEntry) []HistoryEntry {
	cloned := make([]HistoryEntry, 0, len(entries))
	for _, entry := range entries {
		cloned = append(cloned, entry.Clone())
	}
	return cloned
}

// ClampHistory keeps the most recent limit entries.
func ClampHistory(entries []HistoryEntry, limit int) []HistoryEntry {
	if limit <= 0 || len(entries) <= limit {
		return entries
	}
	return slices.Clone(entries[len(entries)-limit:])
}
