//go:build integration

package testutil

import (
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/sendbol/videoshop-catalog/internal/domain"
)

// MakeProduct — валидный уникальный товар для интеграционных тестов.
func MakeProduct(opts ...func(*domain.Product)) domain.Product {
	id := uuid.NewString()
	p := domain.Product{
		ID:          id,
		Title:       fmt.Sprintf("Game %s", id[:8]),
		Price:       49.99,
		Quantity:    1,
		Description: "интеграционный тестовый товар",
		Images:      []string{"cover.png"},
		CategoryID:  "cat-games",
		PlatformIDs: []string{"pc"},
		Stock:       10,
		CreatedAt:   time.Now().UTC().Truncate(time.Microsecond),
		Rating:      0,
		Likes:       0,
		Dislikes:    0,
		TagIDs:      []string{"itest"},
	}
	for _, opt := range opts {
		opt(&p)
	}
	return p
}

// WithRating — задать рейтинг товара.
func WithRating(rating int) func(*domain.Product) {
	return func(p *domain.Product) { p.Rating = rating }
}

// WithVotes — задать счётчики голосов.
func WithVotes(likes, dislikes int) func(*domain.Product) {
	return func(p *domain.Product) {
		p.Likes = likes
		p.Dislikes = dislikes
	}
}

// MakeRatingEvent — событие установки рейтинга.
func MakeRatingEvent(productID string, rating int) domain.MetricEvent {
	return domain.MetricEvent{ProductID: productID, Action: domain.MetricActionRating, Rating: rating}
}

// MakeVotesEvent — событие установки счётчиков голосов.
func MakeVotesEvent(productID string, likes, dislikes int) domain.MetricEvent {
	return domain.MetricEvent{ProductID: productID, Action: domain.MetricActionVotes, Likes: likes, Dislikes: dislikes}
}
