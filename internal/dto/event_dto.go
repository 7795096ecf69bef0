package dto

import (
	"time"

	"github.com/google/uuid"
)

// PublishChatTurnMessage is the event payload emitted for every turn appended
// to a conversation log.
type PublishChatTurnMessage struct {
	SessionId uuid.UUID `json:"session_id"`
	Role      string    `json:"role"`
	Content   string    `json:"content"`
	Html      string    `json:"html"`
	CreatedAt time.Time `json:"created_at"`
}
