package validate

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/sendbol/videoshop-catalog/internal/domain"
	"github.com/sendbol/videoshop-catalog/internal/ports"
)

// Проверка, что ProductValidator удовлетворяет интерфейсу ProductValidator.
var _ ports.ProductValidator = (*ProductValidator)(nil)

// ErrInvalidProduct — базовая (sentinel error) ошибка валидации товара.
var ErrInvalidProduct = errors.New("product validation failed")

// ProductValidator — структура для валидации товара.
// Возвращает ErrInvalidProduct (с обёрнутой причиной) при любой проблеме.
type ProductValidator struct{}

// NewProductValidator — конструктор ProductValidator.
func NewProductValidator() *ProductValidator { return &ProductValidator{} }

// Validate — проверяет корректность полей товара перед вставкой.
// ID может быть пустым: он назначается сервисом при создании.
func (v *ProductValidator) Validate(_ context.Context, p *domain.Product) error {
	if p == nil {
		return fmt.Errorf("%w: товар не может быть nil", ErrInvalidProduct)
	}
	if strings.TrimSpace(p.Title) == "" {
		return fmt.Errorf("%w: title обязателен", ErrInvalidProduct)
	}
	if p.Price < 0 {
		return fmt.Errorf("%w: price не может быть отрицательной", ErrInvalidProduct)
	}
	if p.Quantity < 0 || p.Stock < 0 {
		return fmt.Errorf("%w: quantity/stock не могут быть отрицательными", ErrInvalidProduct)
	}
	if p.Rating < 0 || p.Rating > maxRating {
		return fmt.Errorf("%w: rating вне диапазона [0, %d]", ErrInvalidProduct, maxRating)
	}
	if p.Likes < 0 || p.Dislikes < 0 {
		return fmt.Errorf("%w: likes/dislikes не могут быть отрицательными", ErrInvalidProduct)
	}
	return nil
}

// maxRating — верхняя граница оценки товара.
const maxRating = 5
