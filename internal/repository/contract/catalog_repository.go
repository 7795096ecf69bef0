package contract

import (
	"context"

	"beauty-advisor-be/internal/entity"
)

// ICatalogRepository loads the static product catalog. Implementations must
// preserve source document order and normalize identifiers to strings.
type ICatalogRepository interface {
	LoadAll(ctx context.Context) ([]*entity.Product, error)
}
