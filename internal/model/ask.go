package model

type HistoryTurn struct {
	Type    MessageType `json:"type"`
	Content string      `json:"content"`
}

type AskRequest struct {
	Question    string        `json:"question"`
	Language    Language      `json:"language"`
	ChatHistory []HistoryTurn `json:"chat_history"`
}

type AskResponse struct {
	Answer   string `json:"answer"`
	AudioURL string `json:"audio_url,omitempty"`
}
