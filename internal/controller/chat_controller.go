package controller

import (
	"beauty-advisor-be/internal/dto"
	"beauty-advisor-be/internal/pkg/logger"
	"beauty-advisor-be/internal/pkg/serverutils"
	"beauty-advisor-be/internal/repository/memory"
	"beauty-advisor-be/internal/service"
	internalWS "beauty-advisor-be/internal/websocket"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/websocket/v2"
	"github.com/google/uuid"
)

type IChatController interface {
	RegisterRoutes(r fiber.Router)
	CreateSession(ctx *fiber.Ctx) error
	History(ctx *fiber.Ctx) error
	SendMessage(ctx *fiber.Ctx) error
	GenerateRoutine(ctx *fiber.Ctx) error
	ServeWs(ctx *fiber.Ctx) error
}

type chatController struct {
	chatService service.IChatService
	sessionRepo *memory.SessionRepository
	hub         *internalWS.Hub
	logger      logger.ILogger
}

func NewChatController(
	chatService service.IChatService,
	sessionRepo *memory.SessionRepository,
	hub *internalWS.Hub,
	log logger.ILogger,
) IChatController {
	return &chatController{
		chatService: chatService,
		sessionRepo: sessionRepo,
		hub:         hub,
		logger:      log,
	}
}

func (c *chatController) RegisterRoutes(r fiber.Router) {
	h := r.Group("/chat/v1")
	h.Post("session", c.CreateSession)
	h.Get(":session/history", c.History)
	h.Post(":session/message", c.SendMessage)
	h.Post(":session/routine", c.GenerateRoutine)
	h.Get(":session/ws", c.ServeWs)
}

func (c *chatController) CreateSession(ctx *fiber.Ctx) error {
	res, err := c.chatService.CreateSession(ctx.Context())
	if err != nil {
		return err
	}
	return ctx.JSON(serverutils.SuccessResponse("Success create chat session", res))
}

func (c *chatController) History(ctx *fiber.Ctx) error {
	sessionId, err := sessionParam(ctx)
	if err != nil {
		return err
	}

	res, err := c.chatService.GetHistory(ctx.Context(), sessionId)
	if err != nil {
		return err
	}
	return ctx.JSON(serverutils.SuccessResponse("Success get chat history", res))
}

func (c *chatController) SendMessage(ctx *fiber.Ctx) error {
	sessionId, err := sessionParam(ctx)
	if err != nil {
		return err
	}

	var req dto.SendChatRequest
	if err := ctx.BodyParser(&req); err != nil {
		return serverutils.NewAppError(fiber.StatusBadRequest, "Invalid request body")
	}

	if err := serverutils.ValidateRequest(req); err != nil {
		return err
	}

	res, err := c.chatService.SendChat(ctx.Context(), sessionId, &req)
	if err != nil {
		return err
	}
	return ctx.JSON(serverutils.SuccessResponse("Success send chat message", res))
}

func (c *chatController) GenerateRoutine(ctx *fiber.Ctx) error {
	sessionId, err := sessionParam(ctx)
	if err != nil {
		return err
	}

	res, err := c.chatService.GenerateRoutine(ctx.Context(), sessionId)
	if err != nil {
		return err
	}
	return ctx.JSON(serverutils.SuccessResponse("Success generate routine", res))
}

// ServeWs upgrades the connection and attaches it to the session's live
// transcript feed.
func (c *chatController) ServeWs(ctx *fiber.Ctx) error {
	sessionId, err := sessionParam(ctx)
	if err != nil {
		return err
	}

	if _, found := c.sessionRepo.Get(sessionId); !found {
		return serverutils.NewAppError(fiber.StatusNotFound, "Chat session not found")
	}

	if websocket.IsWebSocketUpgrade(ctx) {
		return websocket.New(func(conn *websocket.Conn) {
			c.logger.Info("ChatController", "Transcript feed attached", map[string]interface{}{"session_id": sessionId})
			internalWS.ServeWs(c.hub, conn, sessionId)
			c.logger.Info("ChatController", "Transcript feed detached", map[string]interface{}{"session_id": sessionId})
		})(ctx)
	}
	return fiber.ErrUpgradeRequired
}

func sessionParam(ctx *fiber.Ctx) (uuid.UUID, error) {
	sessionId, err := uuid.Parse(ctx.Params("session"))
	if err != nil {
		return uuid.Nil, serverutils.NewAppError(fiber.StatusBadRequest, "Invalid session id")
	}
	return sessionId, nil
}
