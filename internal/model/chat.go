package model

import "time"

// Role identifies the author of a chat turn.
type Role string

const (
	RoleUser      Role = "user"
	RoleAssistant Role = "assistant"
)

// ChatTurn is one message in a follow-up conversation. Turns are append-only
// and held by the presentation layer, never by the engine.
type ChatTurn struct {
	Role    Role      `json:"role"`
	Content string    `json:"content"`
	At      time.Time `json:"at"`
}

// NewTurn creates a turn stamped with the current time.
func NewTurn(role Role, content string) ChatTurn {
	return ChatTurn{Role: role, Content: content, At: time.Now().UTC()}
}
