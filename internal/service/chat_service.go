package service

import (
	"context"
	"encoding/json"
	"errors"
	"strings"
	"time"

	"beauty-advisor-be/internal/constant"
	"beauty-advisor-be/internal/dto"
	"beauty-advisor-be/internal/entity"
	"beauty-advisor-be/internal/pkg/logger"
	"beauty-advisor-be/internal/pkg/serverutils"
	"beauty-advisor-be/internal/repository/memory"
	"beauty-advisor-be/pkg/markup"
	"beauty-advisor-be/pkg/relay"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
)

// IRelaySender is the one exchange the chat service performs against the
// relay. Satisfied by relay.Client.
type IRelaySender interface {
	Send(ctx context.Context, request relay.Request) (string, error)
}

type IChatService interface {
	CreateSession(ctx context.Context) (*dto.CreateSessionResponse, error)
	GetHistory(ctx context.Context, sessionId uuid.UUID) (*dto.GetChatHistoryResponse, error)
	SendChat(ctx context.Context, sessionId uuid.UUID, request *dto.SendChatRequest) (*dto.SendChatResponse, error)
	GenerateRoutine(ctx context.Context, sessionId uuid.UUID) (*dto.GenerateRoutineResponse, error)
	AnnounceSelectionCleared(ctx context.Context, sessionId uuid.UUID) error
}

type chatService struct {
	sessionRepo      *memory.SessionRepository
	catalogService   ICatalogService
	selectionService ISelectionService
	relaySender      IRelaySender
	publisherService IPublisherService
	logger           logger.ILogger
}

func NewChatService(
	sessionRepo *memory.SessionRepository,
	catalogService ICatalogService,
	selectionService ISelectionService,
	relaySender IRelaySender,
	publisherService IPublisherService,
	log logger.ILogger,
) IChatService {
	return &chatService{
		sessionRepo:      sessionRepo,
		catalogService:   catalogService,
		selectionService: selectionService,
		relaySender:      relaySender,
		publisherService: publisherService,
		logger:           log,
	}
}

func (cs *chatService) CreateSession(ctx context.Context) (*dto.CreateSessionResponse, error) {
	session := cs.sessionRepo.Create()
	return &dto.CreateSessionResponse{Id: session.Id}, nil
}

func (cs *chatService) GetHistory(ctx context.Context, sessionId uuid.UUID) (*dto.GetChatHistoryResponse, error) {
	session, found := cs.sessionRepo.Get(sessionId)
	if !found {
		return nil, serverutils.NewAppError(fiber.StatusNotFound, "Chat session not found")
	}

	turns := session.Turns()
	responses := make([]dto.TurnResponse, 0, len(turns))
	for _, turn := range turns {
		responses = append(responses, toTurnResponse(turn))
	}
	return &dto.GetChatHistoryResponse{
		SessionId: session.Id,
		Turns:     responses,
	}, nil
}

// SendChat appends the user's text and dispatches a chat_message exchange.
// Whitespace-only input is rejected without touching the log or the relay.
// Relay failures never bubble up: the transcript already carries the apology
// and the not-configured line by the time this returns.
func (cs *chatService) SendChat(ctx context.Context, sessionId uuid.UUID, request *dto.SendChatRequest) (*dto.SendChatResponse, error) {
	session, found := cs.sessionRepo.Get(sessionId)
	if !found {
		return nil, serverutils.NewAppError(fiber.StatusNotFound, "Chat session not found")
	}

	text := strings.TrimSpace(request.Message)
	if text == "" {
		return nil, serverutils.NewAppError(fiber.StatusBadRequest, "Message must not be empty")
	}

	sent := cs.appendTurn(ctx, session, constant.ChatMessageRoleUser, text)

	reply, err := cs.dispatch(ctx, session, relay.Request{
		Type:    constant.RelayTypeChatMessage,
		Message: text,
	})
	if err != nil {
		cs.appendTurn(ctx, session, constant.ChatMessageRoleAssistant, constant.MsgChatNotConfigured)
		sentResp := toTurnResponse(sent)
		return &dto.SendChatResponse{Sent: &sentResp}, nil
	}

	sentResp := toTurnResponse(sent)
	replyResp := toTurnResponse(reply)
	return &dto.SendChatResponse{Sent: &sentResp, Reply: &replyResp}, nil
}

// GenerateRoutine requires a non-empty selection. It records the action and a
// readable product summary in the transcript, then dispatches the structured
// generate_routine request. Failures surface as an extra transcript line.
func (cs *chatService) GenerateRoutine(ctx context.Context, sessionId uuid.UUID) (*dto.GenerateRoutineResponse, error) {
	session, found := cs.sessionRepo.Get(sessionId)
	if !found {
		return nil, serverutils.NewAppError(fiber.StatusNotFound, "Chat session not found")
	}

	selected := cs.catalogService.ByIDs(cs.selectionService.IDs())
	if len(selected) == 0 {
		required := cs.appendTurn(ctx, session, constant.ChatMessageRoleAssistant, constant.MsgSelectionRequired)
		return &dto.GenerateRoutineResponse{
			Turns: []dto.TurnResponse{toTurnResponse(required)},
		}, nil
	}

	appended := []entity.Turn{
		cs.appendTurn(ctx, session, constant.ChatMessageRoleUser, constant.MsgGenerateRoutine),
	}

	payloadProducts := make([]relay.Product, 0, len(selected))
	var summary strings.Builder
	summary.WriteString("Selected products:")
	for _, p := range selected {
		payloadProducts = append(payloadProducts, relay.Product{
			Name:        p.Name,
			Brand:       p.Brand,
			Category:    p.Category,
			Description: p.Description,
		})
		summary.WriteString("\n- " + p.Name)
	}
	appended = append(appended, cs.appendTurn(ctx, session, constant.ChatMessageRoleUser, summary.String()))

	reply, err := cs.dispatch(ctx, session, relay.Request{
		Type:     constant.RelayTypeGenerateRoutine,
		Products: payloadProducts,
	})
	if err != nil {
		cs.logger.Error("Chat", "Routine generation failed", map[string]interface{}{"error": err.Error(), "session_id": sessionId})
		appended = append(appended, cs.appendTurn(ctx, session, constant.ChatMessageRoleAssistant, constant.MsgRoutineErrorPrefix+err.Error()))
	} else {
		appended = append(appended, reply)
	}

	responses := make([]dto.TurnResponse, 0, len(appended))
	for _, turn := range appended {
		responses = append(responses, toTurnResponse(turn))
	}
	return &dto.GenerateRoutineResponse{Turns: responses}, nil
}

// AnnounceSelectionCleared drops the confirmation line into the transcript
// after a non-empty selection was cleared.
func (cs *chatService) AnnounceSelectionCleared(ctx context.Context, sessionId uuid.UUID) error {
	session, found := cs.sessionRepo.Get(sessionId)
	if !found {
		return serverutils.NewAppError(fiber.StatusNotFound, "Chat session not found")
	}
	cs.appendTurn(ctx, session, constant.ChatMessageRoleAssistant, constant.MsgSelectionsCleared)
	return nil
}

// dispatch serializes the full conversation, performs the exchange, and
// appends the reply. A missing endpoint propagates untouched; every other
// failure appends the apology before propagating, so the user always sees
// something.
func (cs *chatService) dispatch(ctx context.Context, session *memory.ConversationSession, request relay.Request) (entity.Turn, error) {
	turns := session.Turns()
	request.Messages = make([]relay.Turn, len(turns))
	for i, turn := range turns {
		request.Messages[i] = relay.Turn{Role: turn.Role, Content: turn.Content}
	}

	replyText, err := cs.relaySender.Send(ctx, request)
	if err != nil {
		if errors.Is(err, relay.ErrNotConfigured) {
			return entity.Turn{}, err
		}
		cs.logger.Error("Chat", "Relay exchange failed", map[string]interface{}{"error": err.Error(), "type": request.Type})
		cs.appendTurn(ctx, session, constant.ChatMessageRoleAssistant, constant.MsgRelayFailure)
		return entity.Turn{}, err
	}

	return cs.appendTurn(ctx, session, constant.ChatMessageRoleAssistant, replyText), nil
}

func (cs *chatService) appendTurn(ctx context.Context, session *memory.ConversationSession, role, content string) entity.Turn {
	turn := entity.Turn{
		Role:      role,
		Content:   content,
		CreatedAt: time.Now(),
	}
	session.Append(turn)

	rendered := toTurnResponse(turn)
	payload, err := json.Marshal(dto.PublishChatTurnMessage{
		SessionId: session.Id,
		Role:      turn.Role,
		Content:   turn.Content,
		Html:      rendered.Html,
		CreatedAt: turn.CreatedAt,
	})
	if err == nil {
		if err := cs.publisherService.Publish(ctx, payload); err != nil {
			cs.logger.Warn("Chat", "Failed to publish turn event", map[string]interface{}{"error": err.Error()})
		}
	}
	return turn
}

// toTurnResponse renders a turn for display: assistant text goes through the
// markup formatter, everything else stays literal escaped text.
func toTurnResponse(turn entity.Turn) dto.TurnResponse {
	html := markup.EscapeText(turn.Content)
	if turn.Role == constant.ChatMessageRoleAssistant {
		html = markup.Format(turn.Content)
	}
	return dto.TurnResponse{
		Role:      turn.Role,
		Content:   turn.Content,
		Html:      html,
		CreatedAt: turn.CreatedAt,
	}
}
