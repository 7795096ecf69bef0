package server

import (
	"log"

	"beauty-advisor-be/internal/config"
	"beauty-advisor-be/internal/controller"
	"beauty-advisor-be/internal/pkg/serverutils"

	"github.com/gofiber/fiber/v2"
)

// RelayServer is the standalone proxy in front of the model API. It carries no
// application state; CORS is handled per handler because the relay answers any
// origin unconditionally.
type RelayServer struct {
	app *fiber.App
	cfg *config.Config
}

func NewRelay(cfg *config.Config, relayController controller.IRelayController) *RelayServer {
	app := fiber.New(fiber.Config{
		BodyLimit: 1 * 1024 * 1024,
	})

	app.Use(serverutils.ErrorHandlerMiddleware())

	app.Get("/health", func(ctx *fiber.Ctx) error {
		return ctx.JSON(fiber.Map{"status": "ok"})
	})

	relayController.RegisterRoutes(app)

	return &RelayServer{
		app: app,
		cfg: cfg,
	}
}

func (s *RelayServer) GetApp() *fiber.App {
	return s.app
}

func (s *RelayServer) Run() error {
	log.Printf("✅ Relay is running on http://localhost:%s", s.cfg.Relay.Port)
	return s.app.Listen(":" + s.cfg.Relay.Port)
}
