package implementation

import (
	"context"
	"encoding/json"
	"fmt"
	"os"

	"beauty-advisor-be/internal/entity"
	"beauty-advisor-be/internal/repository/contract"
)

type catalogFileRepository struct {
	path string
}

func NewCatalogFileRepository(path string) contract.ICatalogRepository {
	return &catalogFileRepository{path: path}
}

// catalogDocument mirrors the static products document. Ids may be numbers or
// strings in the source, so they decode through json.Number-friendly RawMessage.
type catalogDocument struct {
	Products []catalogProduct `json:"products"`
}

type catalogProduct struct {
	Id          json.RawMessage `json:"id"`
	Name        string          `json:"name"`
	Brand       string          `json:"brand"`
	Category    string          `json:"category"`
	Image       string          `json:"image"`
	Description string          `json:"description"`
}

func (r *catalogFileRepository) LoadAll(ctx context.Context) ([]*entity.Product, error) {
	raw, err := os.ReadFile(r.path)
	if err != nil {
		return nil, fmt.Errorf("read catalog %s: %w", r.path, err)
	}

	var doc catalogDocument
	if err := json.Unmarshal(raw, &doc); err != nil {
		return nil, fmt.Errorf("parse catalog %s: %w", r.path, err)
	}

	products := make([]*entity.Product, 0, len(doc.Products))
	for i, p := range doc.Products {
		id, err := normalizeID(p.Id)
		if err != nil {
			return nil, fmt.Errorf("catalog entry %d: %w", i, err)
		}
		products = append(products, &entity.Product{
			Id:          id,
			Name:        p.Name,
			Brand:       p.Brand,
			Category:    p.Category,
			Image:       p.Image,
			Description: p.Description,
			Position:    i,
		})
	}
	return products, nil
}

func normalizeID(raw json.RawMessage) (string, error) {
	if len(raw) == 0 {
		return "", fmt.Errorf("missing id")
	}
	var s string
	if err := json.Unmarshal(raw, &s); err == nil {
		return s, nil
	}
	var n json.Number
	if err := json.Unmarshal(raw, &n); err == nil {
		return n.String(), nil
	}
	return "", fmt.Errorf("id is neither string nor number: %s", string(raw))
}
