package model

import (
	"slices"
	"time"

	"github.com/google/uuid"
)

type MessageType string

const (
	MessageTypeUser      = MessageType("user")
	MessageTypeAssistant = MessageType("assistant")
)

type Message struct {
	Type      MessageType
	Content   string
	Timestamp time.Time
}

// Conversation is the live, in-progress chat in display order.
type Conversation []Message

// FirstUserMessage returns the first message sent by the user.
func (c Conversation) FirstUserMessage() (Message, bool) {
	for _, msg := range c {
		if msg.Type == MessageTypeUser {
			return msg, true
		}
	}
	return Message{}, false
}

func (c Conversation) Clone() Conversation {
	if c == nil {
		return Conversation{}
	}
	return slices.Clone(c)
}

// Key identifies the conversation by its first user message. It is stable
// while messages are appended, so it can be handed out to the presentation.
func (c Conversation) Key() (string, bool) {
	first, ok := c.FirstUserMessage()
	if !ok {
		return "", false
	}
	return uuid.NewSHA1(uuid.NameSpaceOID, []byte(first.Content)).String(), true
}
