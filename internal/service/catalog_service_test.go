package service

import (
	"context"
	"errors"
	"testing"

	"beauty-advisor-be/internal/entity"

	"github.com/stretchr/testify/assert"
)

type stubCatalogRepo struct {
	products []*entity.Product
	err      error
}

func (r *stubCatalogRepo) LoadAll(ctx context.Context) ([]*entity.Product, error) {
	return r.products, r.err
}

func fixtureProducts() []*entity.Product {
	return []*entity.Product{
		{Id: "1", Name: "Serum", Brand: "BrandA", Category: "skincare", Position: 0},
		{Id: "2", Name: "Shampoo", Brand: "BrandB", Category: "haircare", Position: 1},
		{Id: "3", Name: "Cleanser", Brand: "BrandA", Category: "skincare", Position: 2},
		{Id: "4", Name: "Mascara", Brand: "BrandC", Category: "makeup", Position: 3},
	}
}

func loadedCatalog(t *testing.T) ICatalogService {
	t.Helper()
	svc := NewCatalogService(&stubCatalogRepo{products: fixtureProducts()})
	assert.NoError(t, svc.Load(context.Background()))
	return svc
}

func TestLoadPropagatesRepositoryError(t *testing.T) {
	svc := NewCatalogService(&stubCatalogRepo{err: errors.New("boom")})
	err := svc.Load(context.Background())
	assert.Error(t, err)
	assert.Contains(t, err.Error(), "load catalog")
}

func TestCategoriesFirstSeenOrder(t *testing.T) {
	svc := loadedCatalog(t)
	assert.Equal(t, []string{"skincare", "haircare", "makeup"}, svc.Categories())
}

func TestByCategoryPreservesSourceOrder(t *testing.T) {
	svc := loadedCatalog(t)

	skincare := svc.ByCategory("skincare")
	assert.Len(t, skincare, 2)
	assert.Equal(t, "1", skincare[0].Id)
	assert.Equal(t, "3", skincare[1].Id)

	assert.Empty(t, svc.ByCategory("fragrance"))
}

func TestByIDsCatalogOrderAndSkipsUnknown(t *testing.T) {
	svc := loadedCatalog(t)

	// Request order does not matter, catalog order wins. Stale ids vanish.
	products := svc.ByIDs([]string{"4", "99", "1"})
	assert.Len(t, products, 2)
	assert.Equal(t, "1", products[0].Id)
	assert.Equal(t, "4", products[1].Id)
}

func TestGet(t *testing.T) {
	svc := loadedCatalog(t)

	p, ok := svc.Get("2")
	assert.True(t, ok)
	assert.Equal(t, "Shampoo", p.Name)

	_, ok = svc.Get("missing")
	assert.False(t, ok)
}
