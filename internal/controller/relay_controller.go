package controller

import (
	"beauty-advisor-be/internal/dto"
	"beauty-advisor-be/internal/pkg/serverutils"
	"beauty-advisor-be/internal/service"

	"github.com/gofiber/fiber/v2"
)

type IRelayController interface {
	RegisterRoutes(r fiber.Router)
	Preflight(ctx *fiber.Ctx) error
	Forward(ctx *fiber.Ctx) error
}

type relayController struct {
	relayService service.IRelayService
}

func NewRelayController(relayService service.IRelayService) IRelayController {
	return &relayController{
		relayService: relayService,
	}
}

func (c *relayController) RegisterRoutes(r fiber.Router) {
	r.Options("/", c.Preflight)
	r.Post("/", c.Forward)
}

func (c *relayController) Preflight(ctx *fiber.Ctx) error {
	setRelayHeaders(ctx)
	return ctx.SendStatus(fiber.StatusNoContent)
}

// Forward performs one upstream exchange and hands the upstream body back
// verbatim with status 200. Upstream error payloads pass through unchanged so
// the caller's extraction logic sees exactly what the model API said.
func (c *relayController) Forward(ctx *fiber.Ctx) error {
	setRelayHeaders(ctx)

	var req dto.RelayRequest
	if err := ctx.BodyParser(&req); err != nil {
		return serverutils.NewAppError(fiber.StatusBadRequest, "Invalid request body")
	}

	body, err := c.relayService.Forward(ctx.Context(), &req)
	if err != nil {
		return serverutils.WrapAppError(fiber.StatusInternalServerError, "Upstream exchange failed", err)
	}

	return ctx.Status(fiber.StatusOK).Send(body)
}

// setRelayHeaders applies the permissive CORS surface the relay exposes to
// browser callers on any origin.
func setRelayHeaders(ctx *fiber.Ctx) {
	ctx.Set("Access-Control-Allow-Origin", "*")
	ctx.Set("Access-Control-Allow-Methods", "GET, POST, OPTIONS")
	ctx.Set("Access-Control-Allow-Headers", "Content-Type")
	ctx.Set("Content-Type", "application/json")
}
