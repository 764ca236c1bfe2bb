package validate

import (
	"context"
	"errors"
	"fmt"

	"github.com/sendbol/videoshop-catalog/internal/domain"
	"github.com/sendbol/videoshop-catalog/internal/ports"
)

// Проверка, что MetricEventValidator удовлетворяет интерфейсу MetricEventValidator.
var _ ports.MetricEventValidator = (*MetricEventValidator)(nil)

// ErrInvalidEvent — базовая (sentinel error) ошибка валидации события метрик.
// Консьюмер, увидев её, коммитит оффсет и пропускает сообщение навсегда.
var ErrInvalidEvent = errors.New("metric event validation failed")

// MetricEventValidator — валидация событий rating/votes.
type MetricEventValidator struct{}

// NewMetricEventValidator — конструктор MetricEventValidator.
func NewMetricEventValidator() *MetricEventValidator { return &MetricEventValidator{} }

// Validate — проверяет корректность события.
// Неизвестный action — не ошибка валидации: его обрабатывают как no-op выше.
func (v *MetricEventValidator) Validate(_ context.Context, e *domain.MetricEvent) error {
	if e == nil {
		return fmt.Errorf("%w: событие не может быть nil", ErrInvalidEvent)
	}
	if e.ProductID == "" {
		return fmt.Errorf("%w: product_id обязателен", ErrInvalidEvent)
	}
	switch e.Action {
	case domain.MetricActionRating:
		if e.Rating < 0 || e.Rating > maxRating {
			return fmt.Errorf("%w: rating вне диапазона [0, %d]", ErrInvalidEvent, maxRating)
		}
	case domain.MetricActionVotes:
		// Значения абсолютные: счётчики не могут быть отрицательными.
		if e.Likes < 0 || e.Dislikes < 0 {
			return fmt.Errorf("%w: likes/dislikes не могут быть отрицательными", ErrInvalidEvent)
		}
	}
	return nil
}
