package ports

import (
	"context"

	"github.com/sendbol/videoshop-catalog/internal/domain"
)

// CatalogService — поверхность каталога, которую потребляет транспортный слой.
type CatalogService interface {
	AllProducts(ctx context.Context) ([]*domain.Product, error)
	SearchByTitle(ctx context.Context, query string) ([]*domain.Product, error)
	ProductByID(ctx context.Context, id string) (*domain.Product, error)
	ProductsByIDs(ctx context.Context, ids []string) ([]*domain.Product, error)
	ProductsByCategory(ctx context.Context, categoryID string) ([]*domain.Product, error)
	ProductsByPlatform(ctx context.Context, platformID string) ([]*domain.Product, error)
	ProductsByPriceRange(ctx context.Context, min, max float64) ([]*domain.Product, error)
	AddProduct(ctx context.Context, p *domain.Product) (*domain.Product, error)

	TopByRating(ctx context.Context, limit int, desc bool) ([]*domain.Product, error)
	TopByNetLikes(ctx context.Context, limit int, desc bool) ([]*domain.Product, error)

	RecordRating(ctx context.Context, id string, rating int) error
	RecordVotes(ctx context.Context, id string, likes, dislikes int) error

	Query(ctx context.Context, f domain.ProductFilter) ([]*domain.Product, error)
}
