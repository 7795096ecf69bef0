package dto

import (
	"time"

	"github.com/google/uuid"
)

type CreateSessionResponse struct {
	Id uuid.UUID `json:"id"`
}

type SendChatRequest struct {
	Message string `json:"message" validate:"required"`
}

// TurnResponse is one transcript entry. Html carries the display form: assistant
// turns are run through the markup formatter, user turns are escaped literal text.
type TurnResponse struct {
	Role      string    `json:"role"`
	Content   string    `json:"content"`
	Html      string    `json:"html"`
	CreatedAt time.Time `json:"created_at"`
}

type SendChatResponse struct {
	Sent  *TurnResponse `json:"sent"`
	Reply *TurnResponse `json:"reply,omitempty"`
}

type GenerateRoutineResponse struct {
	Turns []TurnResponse `json:"turns"`
}

type GetChatHistoryResponse struct {
	SessionId uuid.UUID      `json:"session_id"`
	Turns     []TurnResponse `json:"turns"`
}
