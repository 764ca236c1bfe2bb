package ports

import (
	"context"

	"github.com/sendbol/videoshop-catalog/internal/domain"
)

// ProductRepository — контракт первичного хранилища товаров.
// Отсутствие записи — это (nil, nil), а не ошибка.
type ProductRepository interface {
	FindAll(ctx context.Context) ([]*domain.Product, error)
	FindByID(ctx context.Context, id string) (*domain.Product, error)
	FindByIDs(ctx context.Context, ids []string) ([]*domain.Product, error)

	// FindByFilter — выборка по предикатной части фильтра
	// (категория, платформа, диапазон цены); сортировка — забота вызывающего.
	FindByFilter(ctx context.Context, f domain.ProductFilter) ([]*domain.Product, error)

	Insert(ctx context.Context, p *domain.Product) error

	// UpdateRating / UpdateVotes — запись абсолютных значений метрик.
	UpdateRating(ctx context.Context, id string, rating int) error
	UpdateVotes(ctx context.Context, id string, likes, dislikes int) error
}
