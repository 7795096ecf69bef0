package controller

import (
	"beauty-advisor-be/internal/dto"
	"beauty-advisor-be/internal/pkg/serverutils"
	"beauty-advisor-be/internal/service"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
)

// HeaderSessionId lets selection endpoints echo confirmations into a chat
// transcript when the client has one open.
const HeaderSessionId = "X-Session-Id"

type ISelectionController interface {
	RegisterRoutes(r fiber.Router)
	Show(ctx *fiber.Ctx) error
	Toggle(ctx *fiber.Ctx) error
	Clear(ctx *fiber.Ctx) error
}

type selectionController struct {
	selectionService service.ISelectionService
	catalogService   service.ICatalogService
	chatService      service.IChatService
}

func NewSelectionController(
	selectionService service.ISelectionService,
	catalogService service.ICatalogService,
	chatService service.IChatService,
) ISelectionController {
	return &selectionController{
		selectionService: selectionService,
		catalogService:   catalogService,
		chatService:      chatService,
	}
}

func (c *selectionController) RegisterRoutes(r fiber.Router) {
	h := r.Group("/selection/v1")
	h.Get("", c.Show)
	h.Post("toggle", c.Toggle)
	h.Delete("", c.Clear)
}

func (c *selectionController) Show(ctx *fiber.Ctx) error {
	ids := c.selectionService.IDs()
	products := c.catalogService.ByIDs(ids)

	res := dto.GetSelectionResponse{
		Ids:      ids,
		Products: make([]dto.ProductResponse, 0, len(products)),
	}
	for _, p := range products {
		res.Products = append(res.Products, dto.ProductResponse{
			Id:          p.Id,
			Name:        p.Name,
			Brand:       p.Brand,
			Category:    p.Category,
			Image:       p.Image,
			Description: p.Description,
		})
	}
	return ctx.JSON(serverutils.SuccessResponse("Success get selection", res))
}

func (c *selectionController) Toggle(ctx *fiber.Ctx) error {
	var req dto.ToggleSelectionRequest
	if err := ctx.BodyParser(&req); err != nil {
		return serverutils.NewAppError(fiber.StatusBadRequest, "Invalid request body")
	}

	if err := serverutils.ValidateRequest(req); err != nil {
		return err
	}

	id := string(req.Id)
	if _, known := c.catalogService.Get(id); !known {
		return serverutils.NewAppError(fiber.StatusNotFound, "Product not found")
	}

	selected, err := c.selectionService.Toggle(ctx.Context(), id)
	if err != nil {
		return err
	}

	return ctx.JSON(serverutils.SuccessResponse("Success toggle selection", dto.ToggleSelectionResponse{
		Id:       id,
		Selected: selected,
	}))
}

// Clear empties the selection. Clearing an already empty selection is a no-op
// and no confirmation is echoed into the transcript.
func (c *selectionController) Clear(ctx *fiber.Ctx) error {
	cleared, err := c.selectionService.Clear(ctx.Context())
	if err != nil {
		return err
	}

	if cleared > 0 {
		if sessionId, parseErr := uuid.Parse(ctx.Get(HeaderSessionId)); parseErr == nil {
			if announceErr := c.chatService.AnnounceSelectionCleared(ctx.Context(), sessionId); announceErr != nil {
				return announceErr
			}
		}
	}

	return ctx.JSON(serverutils.SuccessResponse("Success clear selection", dto.ClearSelectionResponse{
		Cleared: cleared,
	}))
}
