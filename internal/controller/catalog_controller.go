package controller

import (
	"beauty-advisor-be/internal/dto"
	"beauty-advisor-be/internal/pkg/serverutils"
	"beauty-advisor-be/internal/render"
	"beauty-advisor-be/internal/service"

	"github.com/gofiber/fiber/v2"
)

type ICatalogController interface {
	RegisterRoutes(r fiber.Router)
	List(ctx *fiber.Ctx) error
	Categories(ctx *fiber.Ctx) error
	View(ctx *fiber.Ctx) error
}

type catalogController struct {
	catalogService   service.ICatalogService
	selectionService service.ISelectionService
}

func NewCatalogController(catalogService service.ICatalogService, selectionService service.ISelectionService) ICatalogController {
	return &catalogController{
		catalogService:   catalogService,
		selectionService: selectionService,
	}
}

func (c *catalogController) RegisterRoutes(r fiber.Router) {
	h := r.Group("/catalog/v1")
	h.Get("", c.List)
	h.Get("categories", c.Categories)

	v := r.Group("/view/v1")
	v.Get("", c.View)
}

func (c *catalogController) List(ctx *fiber.Ctx) error {
	products := c.catalogService.All()
	if category := ctx.Query("category"); category != "" {
		products = c.catalogService.ByCategory(category)
	}
	res := make([]dto.ProductResponse, 0, len(products))
	for _, p := range products {
		res = append(res, dto.ProductResponse{
			Id:          p.Id,
			Name:        p.Name,
			Brand:       p.Brand,
			Category:    p.Category,
			Image:       p.Image,
			Description: p.Description,
		})
	}
	return ctx.JSON(serverutils.SuccessResponse("Success get catalog", res))
}

func (c *catalogController) Categories(ctx *fiber.Ctx) error {
	res := dto.GetCategoriesResponse{Categories: c.catalogService.Categories()}
	return ctx.JSON(serverutils.SuccessResponse("Success get categories", res))
}

// View renders the product-selection screen for the requested category. An
// absent or empty category yields the placeholder view.
func (c *catalogController) View(ctx *fiber.Ctx) error {
	category := ctx.Query("category")
	view := render.Render(category, c.catalogService.All(), c.selectionService.Set())
	return ctx.JSON(serverutils.SuccessResponse("Success render view", view))
}
