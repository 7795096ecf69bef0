// Package render turns (catalog, category filter, selection) into a view
// description. It is a pure function over its inputs: interactions come back
// as named actions for the client to route, nothing is wired here.
package render

import (
	"beauty-advisor-be/internal/constant"
	"beauty-advisor-be/internal/dto"
	"beauty-advisor-be/internal/entity"
)

const (
	ActionToggle            = "toggle"
	ActionToggleDescription = "toggle-description"
	ActionRemove            = "remove"
)

var (
	cardActions         = []string{ActionToggle, ActionToggleDescription}
	selectedItemActions = []string{ActionRemove}
)

// Render builds the product-selection view. An empty category yields the
// placeholder and no cards; the selected panel is always populated because a
// selection can outlive the filter that created it.
func Render(category string, products []*entity.Product, selected map[string]bool) dto.View {
	view := dto.View{
		Category: category,
		Cards:    []dto.CardView{},
		Selected: selectedPanel(products, selected),
	}

	if category == "" {
		view.Placeholder = constant.MsgCategoryPlaceholder
		return view
	}

	for _, p := range products {
		if p.Category != category {
			continue
		}
		view.Cards = append(view.Cards, dto.CardView{
			Product:     toProductResponse(p),
			Selected:    selected[p.Id],
			Description: descriptionOrDefault(p),
			Actions:     cardActions,
		})
	}
	return view
}

// selectedPanel lists every selected product in catalog order, regardless of
// the active category filter.
func selectedPanel(products []*entity.Product, selected map[string]bool) []dto.SelectedItemView {
	items := []dto.SelectedItemView{}
	for _, p := range products {
		if !selected[p.Id] {
			continue
		}
		items = append(items, dto.SelectedItemView{
			Id:      p.Id,
			Name:    p.Name,
			Actions: selectedItemActions,
		})
	}
	return items
}

func descriptionOrDefault(p *entity.Product) string {
	if p.Description == "" {
		return constant.MsgNoDescription
	}
	return p.Description
}

func toProductResponse(p *entity.Product) dto.ProductResponse {
	return dto.ProductResponse{
		Id:          p.Id,
		Name:        p.Name,
		Brand:       p.Brand,
		Category:    p.Category,
		Image:       p.Image,
		Description: p.Description,
	}
}
