package validate_test

import (
	"context"
	"errors"
	"testing"

	"github.com/sendbol/videoshop-catalog/internal/domain"
	"github.com/sendbol/videoshop-catalog/pkg/validate"
)

func validProduct() *domain.Product {
	return &domain.Product{
		ID:     "p-1",
		Title:  "Controller X",
		Price:  59.99,
		Rating: 4,
		Likes:  10,
	}
}

func TestProductValidator_OK(t *testing.T) {
	v := validate.NewProductValidator()
	if err := v.Validate(context.Background(), validProduct()); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
}

// ID не обязателен — его назначает сервис при создании.
func TestProductValidator_EmptyID_OK(t *testing.T) {
	v := validate.NewProductValidator()
	p := validProduct()
	p.ID = ""
	if err := v.Validate(context.Background(), p); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
}

func TestProductValidator_Invalid(t *testing.T) {
	v := validate.NewProductValidator()

	cases := []struct {
		name   string
		mutate func(p *domain.Product)
	}{
		{"nil", nil},
		{"empty title", func(p *domain.Product) { p.Title = "  " }},
		{"negative price", func(p *domain.Product) { p.Price = -0.01 }},
		{"negative stock", func(p *domain.Product) { p.Stock = -1 }},
		{"rating above max", func(p *domain.Product) { p.Rating = 6 }},
		{"negative likes", func(p *domain.Product) { p.Likes = -1 }},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			var p *domain.Product
			if tc.mutate != nil {
				p = validProduct()
				tc.mutate(p)
			}
			err := v.Validate(context.Background(), p)
			if !errors.Is(err, validate.ErrInvalidProduct) {
				t.Fatalf("want ErrInvalidProduct, got %v", err)
			}
		})
	}
}

func TestMetricEventValidator(t *testing.T) {
	v := validate.NewMetricEventValidator()
	ctx := context.Background()

	ok := &domain.MetricEvent{ProductID: "p-1", Action: domain.MetricActionRating, Rating: 4}
	if err := v.Validate(ctx, ok); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	// Неизвестный action валиден: no-op решается на уровне сервиса.
	unknown := &domain.MetricEvent{ProductID: "p-1", Action: "boost"}
	if err := v.Validate(ctx, unknown); err != nil {
		t.Fatalf("unknown action must pass validation, got %v", err)
	}

	bad := []*domain.MetricEvent{
		nil,
		{Action: domain.MetricActionRating, Rating: 4},                          // нет product_id
		{ProductID: "p-1", Action: domain.MetricActionRating, Rating: 9},       // rating вне диапазона
		{ProductID: "p-1", Action: domain.MetricActionVotes, Likes: -1},        // отрицательный счётчик
		{ProductID: "p-1", Action: domain.MetricActionVotes, Dislikes: -1},     // отрицательный счётчик
	}
	for i, e := range bad {
		if err := v.Validate(ctx, e); !errors.Is(err, validate.ErrInvalidEvent) {
			t.Fatalf("case %d: want ErrInvalidEvent, got %v", i, err)
		}
	}
}
