package render

import (
	"testing"

	"beauty-advisor-be/internal/constant"
	"beauty-advisor-be/internal/entity"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func catalog() []*entity.Product {
	return []*entity.Product{
		{Id: "1", Name: "Gentle Cleanser", Brand: "CeraVe", Category: "cleanser", Position: 0},
		{Id: "2", Name: "Glow Serum", Brand: "L'Oréal", Category: "serum", Description: "Vitamin C serum.", Position: 1},
		{Id: "3", Name: "Night Cream", Brand: "Lancôme", Category: "moisturizer", Position: 2},
		{Id: "4", Name: "Foam Cleanser", Brand: "Garnier", Category: "cleanser", Position: 3},
	}
}

func TestRenderWithoutCategoryShowsPlaceholder(t *testing.T) {
	view := Render("", catalog(), map[string]bool{"2": true})

	assert.Equal(t, constant.MsgCategoryPlaceholder, view.Placeholder)
	assert.Empty(t, view.Cards)
	// Selection may be non-empty even without an active filter.
	require.Len(t, view.Selected, 1)
	assert.Equal(t, "Glow Serum", view.Selected[0].Name)
}

func TestRenderFiltersByExactCategoryInSourceOrder(t *testing.T) {
	view := Render("cleanser", catalog(), nil)

	require.Len(t, view.Cards, 2)
	assert.Equal(t, "Gentle Cleanser", view.Cards[0].Product.Name)
	assert.Equal(t, "Foam Cleanser", view.Cards[1].Product.Name)
	assert.Empty(t, view.Placeholder)
}

func TestRenderMarksSelectedCards(t *testing.T) {
	view := Render("cleanser", catalog(), map[string]bool{"4": true})

	require.Len(t, view.Cards, 2)
	assert.False(t, view.Cards[0].Selected)
	assert.True(t, view.Cards[1].Selected)
}

func TestRenderCardActions(t *testing.T) {
	view := Render("serum", catalog(), nil)

	require.Len(t, view.Cards, 1)
	assert.Equal(t, []string{ActionToggle, ActionToggleDescription}, view.Cards[0].Actions)
}

func TestRenderDescriptionDefault(t *testing.T) {
	view := Render("cleanser", catalog(), nil)

	assert.Equal(t, constant.MsgNoDescription, view.Cards[0].Description)

	serums := Render("serum", catalog(), nil)
	assert.Equal(t, "Vitamin C serum.", serums.Cards[0].Description)
}

func TestRenderSelectedPanelIgnoresFilter(t *testing.T) {
	view := Render("cleanser", catalog(), map[string]bool{"2": true, "3": true})

	require.Len(t, view.Selected, 2)
	assert.Equal(t, "Glow Serum", view.Selected[0].Name)
	assert.Equal(t, "Night Cream", view.Selected[1].Name)
	assert.Equal(t, []string{ActionRemove}, view.Selected[0].Actions)
}

func TestRenderUnknownCategoryYieldsNoCards(t *testing.T) {
	view := Render("fragrance", catalog(), nil)

	assert.Empty(t, view.Cards)
	assert.Empty(t, view.Placeholder)
}
