package implementation

import (
	"context"

	"beauty-advisor-be/internal/entity"
	"beauty-advisor-be/internal/repository/contract"

	"gorm.io/gorm"
)

// catalogGormRepository reads the catalog from Postgres. Used when the catalog
// is seeded into a database instead of shipped as a static file; row order is
// the seeded source order.
type catalogGormRepository struct {
	db *gorm.DB
}

func NewCatalogGormRepository(db *gorm.DB) contract.ICatalogRepository {
	return &catalogGormRepository{db: db}
}

func (r *catalogGormRepository) LoadAll(ctx context.Context) ([]*entity.Product, error) {
	var products []*entity.Product
	err := r.db.WithContext(ctx).
		Order("position asc").
		Find(&products).Error
	if err != nil {
		return nil, err
	}
	return products, nil
}
