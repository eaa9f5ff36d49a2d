package chat

import "time"

// Turn captures one user-message/assistant-reply exchange. Turns are
// immutable once recorded; SessionID groups an ordered conversation.
type Turn struct {
	ID          string    `json:"id,omitempty"`
	SessionID   string    `json:"sessionId"`
	UserMessage string    `json:"userMessage"`
	BotResponse string    `json:"botResponse"`
	CreatedAt   time.Time `json:"createdAt"`
}
