package bootstrap

import (
	"context"
	"log"

	"beauty-advisor-be/internal/config"
	"beauty-advisor-be/internal/constant"
	"beauty-advisor-be/internal/controller"
	"beauty-advisor-be/internal/pkg/logger"
	"beauty-advisor-be/internal/repository/contract"
	"beauty-advisor-be/internal/repository/implementation"
	"beauty-advisor-be/internal/repository/memory"
	"beauty-advisor-be/internal/service"
	"beauty-advisor-be/internal/websocket"
	"beauty-advisor-be/pkg/relay"

	"github.com/ThreeDotsLabs/watermill"
	"github.com/ThreeDotsLabs/watermill/pubsub/gochannel"
	"github.com/redis/go-redis/v9"
	"gorm.io/gorm"
)

type Container struct {
	// Controllers
	CatalogController   controller.ICatalogController
	SelectionController controller.ISelectionController
	ChatController      controller.IChatController

	// Background Services (Exposed for main.go to run)
	TranscriptService service.ITranscriptService

	// WebSockets
	WebSocketHub *websocket.Hub
}

// NewContainer wires the application graph. db is optional: it is only used
// when the catalog source is "database".
func NewContainer(db *gorm.DB, cfg *config.Config) *Container {
	sysLogger := logger.NewZapLogger(cfg.App.LogFilePath, cfg.App.Environment == "production")

	// Event Bus
	watermillLogger := watermill.NewStdLogger(false, false)
	pubSub := gochannel.NewGoChannel(
		gochannel.Config{},
		watermillLogger,
	)

	// Redis is optional. With it, the selection survives in redis and turn
	// events fan out across instances; without it, the selection lives in a
	// local file and the hub stays single-instance.
	var rdb *redis.Client
	if cfg.App.RedisURL != "" {
		opt, err := redis.ParseURL(cfg.App.RedisURL)
		if err != nil {
			log.Printf("[WARN] Failed to parse Redis URL: %v. Using direct Addr", err)
			opt = &redis.Options{
				Addr: cfg.App.RedisURL,
			}
		}
		rdb = redis.NewClient(opt)
		if _, err := rdb.Ping(context.Background()).Result(); err != nil {
			log.Printf("[WARN] Failed to connect to Redis: %v", err)
		}
	}

	// WebSocket Hub
	transcriptLogger := logger.NewIsolatedLogger(cfg.App.TranscriptLogPath)
	wsHub := websocket.NewHub(rdb, transcriptLogger)
	go wsHub.Run()

	// Catalog source
	var catalogRepo contract.ICatalogRepository
	if cfg.Catalog.Source == "database" && db != nil {
		catalogRepo = implementation.NewCatalogGormRepository(db)
		log.Printf("[INFO] Using Catalog Source: DATABASE")
	} else {
		catalogRepo = implementation.NewCatalogFileRepository(cfg.Catalog.FilePath)
		log.Printf("[INFO] Using Catalog Source: FILE (%s)", cfg.Catalog.FilePath)
	}

	// Selection store
	var selectionStore contract.ISelectionStore
	if rdb != nil {
		selectionStore = implementation.NewSelectionRedisStore(rdb)
		log.Printf("[INFO] Using Selection Store: REDIS")
	} else {
		selectionStore = implementation.NewSelectionFileStore(cfg.App.SelectionFilePath)
		log.Printf("[INFO] Using Selection Store: FILE (%s)", cfg.App.SelectionFilePath)
	}

	// In-memory conversation sessions
	sessionRepo := memory.NewSessionRepository()

	publisherService := service.NewPublisherService(constant.ChatTurnTopic, pubSub)
	transcriptService := service.NewTranscriptService(pubSub, constant.ChatTurnTopic, wsHub, transcriptLogger)

	catalogService := service.NewCatalogService(catalogRepo)
	if err := catalogService.Load(context.Background()); err != nil {
		log.Fatalf("[FATAL] Failed to load catalog: %v", err)
	}

	selectionService := service.NewSelectionService(selectionStore, sysLogger)
	selectionService.Restore(context.Background())

	relayClient := relay.NewClient(cfg.Relay.URL)
	if cfg.Relay.URL == "" {
		log.Printf("[WARN] RELAY_URL not set, chat responses are disabled")
	}

	chatService := service.NewChatService(
		sessionRepo,
		catalogService,
		selectionService,
		relayClient,
		publisherService,
		sysLogger,
	)

	return &Container{
		CatalogController:   controller.NewCatalogController(catalogService, selectionService),
		SelectionController: controller.NewSelectionController(selectionService, catalogService, chatService),
		ChatController:      controller.NewChatController(chatService, sessionRepo, wsHub, sysLogger),

		TranscriptService: transcriptService,

		WebSocketHub: wsHub,
	}
}
