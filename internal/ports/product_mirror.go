package ports

import (
	"context"

	"github.com/sendbol/videoshop-catalog/internal/domain"
)

// ProductMirror — hash-зеркало товаров, ключ «{collection}:{id}».
// Требования к реализации: Put/PutAll заменяют полный набор полей записи
// атомарно по ключу; GetAll на холодном зеркале возвращает пустой список
// (решение о прогреве принимает вызывающий).
type ProductMirror interface {
	// GetAll — все зеркалированные товары без определённого порядка.
	GetAll(ctx context.Context) ([]*domain.Product, error)

	// Get — товар по id; (nil, false, nil) при отсутствии в зеркале.
	Get(ctx context.Context, id string) (*domain.Product, bool, error)

	Put(ctx context.Context, p *domain.Product) error
	PutAll(ctx context.Context, items []*domain.Product) error
}
