package service

import (
	"context"
	"encoding/json"

	"beauty-advisor-be/internal/dto"
	"beauty-advisor-be/internal/pkg/logger"

	"github.com/ThreeDotsLabs/watermill/message"
	"github.com/ThreeDotsLabs/watermill/pubsub/gochannel"
	"github.com/google/uuid"
)

// ITurnFeed delivers a rendered turn to whoever is watching a session.
// Implemented by the websocket hub.
type ITurnFeed interface {
	Broadcast(sessionId uuid.UUID, payload []byte)
}

// ITranscriptService consumes turn events: every appended turn goes to the
// transcript log and out to connected websocket clients.
type ITranscriptService interface {
	Consume(ctx context.Context) error
}

type transcriptService struct {
	pubSub    *gochannel.GoChannel
	topicName string
	feed      ITurnFeed
	logger    logger.ILogger
}

func NewTranscriptService(
	pubSub *gochannel.GoChannel,
	topicName string,
	feed ITurnFeed,
	log logger.ILogger,
) ITranscriptService {
	return &transcriptService{
		pubSub:    pubSub,
		topicName: topicName,
		feed:      feed,
		logger:    log,
	}
}

func (ts *transcriptService) Consume(ctx context.Context) error {
	messages, err := ts.pubSub.Subscribe(ctx, ts.topicName)
	if err != nil {
		return err
	}

	go func() {
		for msg := range messages {
			ts.processMessage(msg)
		}
	}()

	return nil
}

func (ts *transcriptService) processMessage(msg *message.Message) {
	var payload dto.PublishChatTurnMessage
	if err := json.Unmarshal(msg.Payload, &payload); err != nil {
		ts.logger.Error("Transcript", "Failed to unmarshal turn event", map[string]interface{}{"error": err.Error()})
		msg.Ack() // Ack invalid messages to prevent infinite retry
		return
	}

	ts.logger.Info("Transcript", "Turn appended", map[string]interface{}{
		"session_id": payload.SessionId,
		"role":       payload.Role,
		"content":    payload.Content,
	})

	if ts.feed != nil {
		if data, err := json.Marshal(map[string]interface{}{
			"type": "chat_turn",
			"data": payload,
		}); err == nil {
			ts.feed.Broadcast(payload.SessionId, data)
		}
	}

	msg.Ack()
}
