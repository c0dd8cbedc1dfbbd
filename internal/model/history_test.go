package model

import (
	"strings"
	"testing"
	"time"
)

func TestMakeTitle(t *testing.T) {
	tests := []struct {
		name    string
		content string
		want    string
	}{
		{
			name:    "short question is kept",
			content: "How do I grow wheat?",
			want:    "How do I grow wheat?",
		},
		{
			name:    "exactly thirty characters",
			content: strings.Repeat("a", 30),
			want:    strings.Repeat("a", 30),
		},
		{
			name:    "long question is truncated",
			content: "What fertilizer works best for rice paddies and similar crops?",
			want:    "What fertilizer works best for...",
		},
		{
			name:    "hindi is cut on code points",
			content: "गेहूं की खेती के लिए सबसे अच्छा उर्वरक कौन सा है?",
			want:    string([]rune("गेहूं की खेती के लिए सबसे अच्छा उर्वरक कौन सा है?")[:30]) + "...",
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := MakeTitle(tt.content, DefaultTitleLength); got != tt.want {
				t.Errorf("MakeTitle() = %q, want %q", got, tt.want)
			}
		})
	}
}

func TestSameConversation(t *testing.T) {
	now := time.Now()
	entry := HistoryEntry{
		Messages: Conversation{
			{Type: MessageTypeUser, Content: "How do I grow wheat?", Timestamp: now},
			{Type: MessageTypeAssistant, Content: "Sow in November.", Timestamp: now},
		},
	}

	same := Conversation{{Type: MessageTypeUser, Content: "How do I grow wheat?"}}
	if !entry.SameConversation(same) {
		t.Error("expected conversations with equal first user message to match")
	}

	other := Conversation{{Type: MessageTypeUser, Content: "How do I grow rice?"}}
	if entry.SameConversation(other) {
		t.Error("expected different first user message not to match")
	}

	if entry.SameConversation(Conversation{{Type: MessageTypeAssistant, Content: "hi"}}) {
		t.Error("expected conversation without user message not to match")
	}
}

func TestHistoryEntryCloneDoesNotAlias(t *testing.T) {
	entry := HistoryEntry{
		Title:    "q",
		Messages: Conversation{{Type: MessageTypeUser, Content: "q"}},
	}
	cloned := entry.Clone()
	cloned.Messages[0].Content = "changed"
	cloned.Messages = append(cloned.Messages, Message{Type: MessageTypeAssistant, Content: "a"})

	if entry.Messages[0].Content != "q" || len(entry.Messages) != 1 {
		t.Errorf("original entry was mutated: %+v", entry.Messages)
	}
}

func TestClampHistory(t *testing.T) {
	entries := make([]HistoryEntry, 0, 60)
	for i := 0; i < 60; i++ {
		entries = append(entries, HistoryEntry{Title: strings.Repeat("x", i+1)})
	}
	clamped := ClampHistory(entries, DefaultHistoryLimit)
	if len(clamped) != DefaultHistoryLimit {
		t.Fatalf("expected %d entries, got %d", DefaultHistoryLimit, len(clamped))
	}
	if clamped[0].Title != entries[10].Title {
		t.Errorf("expected oldest kept entry to be #10, got title of length %d", len(clamped[0].Title))
	}

	short := entries[:3]
	if got := ClampHistory(short, DefaultHistoryLimit); len(got) != 3 {
		t.Errorf("expected short history to be untouched, got %d", len(got))
	}
}

func TestParseLanguage(t *testing.T) {
	if lang, err := ParseLanguage("Hindi"); err != nil || lang != LanguageHindi {
		t.Errorf("ParseLanguage(Hindi) = %q, %v", lang, err)
	}
	if _, err := ParseLanguage("French"); err != ErrUnknownLanguage {
		t.Errorf("expected ErrUnknownLanguage, got %v", err)
	}
	if LanguageEnglish.Other() != LanguageHindi || LanguageHindi.Other() != LanguageEnglish {
		t.Error("Other() should switch between the two locales")
	}
}

func TestConversationKey(t *testing.T) {
	wheat := Conversation{
		{Type: MessageTypeUser, Content: "How do I grow wheat?"},
		{Type: MessageTypeAssistant, Content: "Sow in November."},
	}
	followUp := append(wheat.Clone(), Message{Type: MessageTypeUser, Content: "And water?"})
	rice := Conversation{{Type: MessageTypeUser, Content: "Best rice variety?"}}

	key, ok := wheat.Key()
	if !ok || key == "" {
		t.Fatal("expected a key for a conversation with a user message")
	}
	if other, _ := followUp.Key(); other != key {
		t.Error("key must not change when messages are appended")
	}
	if other, _ := rice.Key(); other == key {
		t.Error("different conversations must have different keys")
	}
	if entry := (HistoryEntry{Messages: wheat}); entry.Key() != key {
		t.Error("entry key must match its conversation key")
	}
	if _, ok = (Conversation{{Type: MessageTypeAssistant, Content: "hi"}}).Key(); ok {
		t.Error("conversation without user message has no key")
	}
	if len(key)+len("delok:") > 64 {
		t.Errorf("key %q does not fit telegram callback data", key)
	}
}
