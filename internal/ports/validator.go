package ports

import (
	"context"

	"github.com/sendbol/videoshop-catalog/internal/domain"
)

// ProductValidator — доменная валидация товара перед вставкой.
type ProductValidator interface {
	Validate(ctx context.Context, p *domain.Product) error
}

// MetricEventValidator — валидация события метрик (Kafka/HTTP).
type MetricEventValidator interface {
	Validate(ctx context.Context, e *domain.MetricEvent) error
}
