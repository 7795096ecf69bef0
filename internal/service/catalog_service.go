package service

import (
	"context"
	"fmt"

	"beauty-advisor-be/internal/entity"
	"beauty-advisor-be/internal/repository/contract"
)

// ICatalogService serves the static catalog loaded once at startup.
type ICatalogService interface {
	Load(ctx context.Context) error
	All() []*entity.Product
	Categories() []string
	ByCategory(category string) []*entity.Product
	ByIDs(ids []string) []*entity.Product
	Get(id string) (*entity.Product, bool)
}

type catalogService struct {
	repo contract.ICatalogRepository

	products []*entity.Product
	byID     map[string]*entity.Product
}

func NewCatalogService(repo contract.ICatalogRepository) ICatalogService {
	return &catalogService{
		repo: repo,
		byID: make(map[string]*entity.Product),
	}
}

// Load fetches and indexes the catalog. A missing or malformed source is a
// startup failure; there is no recovery path for a broken catalog.
func (cs *catalogService) Load(ctx context.Context) error {
	products, err := cs.repo.LoadAll(ctx)
	if err != nil {
		return fmt.Errorf("load catalog: %w", err)
	}

	cs.products = products
	cs.byID = make(map[string]*entity.Product, len(products))
	for _, p := range products {
		cs.byID[p.Id] = p
	}
	return nil
}

func (cs *catalogService) All() []*entity.Product {
	return cs.products
}

// Categories returns distinct categories in first-seen source order.
func (cs *catalogService) Categories() []string {
	seen := make(map[string]bool)
	categories := []string{}
	for _, p := range cs.products {
		if seen[p.Category] {
			continue
		}
		seen[p.Category] = true
		categories = append(categories, p.Category)
	}
	return categories
}

func (cs *catalogService) ByCategory(category string) []*entity.Product {
	matched := []*entity.Product{}
	for _, p := range cs.products {
		if p.Category == category {
			matched = append(matched, p)
		}
	}
	return matched
}

// ByIDs resolves identifiers to products in catalog order. Unknown ids are
// skipped; a stale persisted selection must not break rendering.
func (cs *catalogService) ByIDs(ids []string) []*entity.Product {
	wanted := make(map[string]bool, len(ids))
	for _, id := range ids {
		wanted[id] = true
	}

	matched := []*entity.Product{}
	for _, p := range cs.products {
		if wanted[p.Id] {
			matched = append(matched, p)
		}
	}
	return matched
}

func (cs *catalogService) Get(id string) (*entity.Product, bool) {
	p, ok := cs.byID[id]
	return p, ok
}
