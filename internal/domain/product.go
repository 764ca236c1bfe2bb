package domain

import "time"

// Product — карточка товара каталога. Первичное хранилище — Postgres,
// зеркало — Redis-хэши, метрики (rating/likes/dislikes) — Redis ZSET.
// ID назначается при создании и далее неизменен.
type Product struct {
	ID          string    `json:"id"`
	Title       string    `json:"title"`
	Price       float64   `json:"price"`
	Quantity    int       `json:"quantity"`
	Description string    `json:"description"`
	Images      []string  `json:"images"`
	CategoryID  string    `json:"category_id"`
	PlatformIDs []string  `json:"platform_ids"`
	Stock       int       `json:"stock"`
	CreatedAt   time.Time `json:"created_at"`
	Rating      int       `json:"rating"`
	Likes       int       `json:"likes"`
	Dislikes    int       `json:"dislikes"`
	TagIDs      []string  `json:"tag_ids"`
}

// ProductFilter — составной фильтр каталога.
// Пустая строка / nil означают «не фильтровать по этому измерению».
type ProductFilter struct {
	CategoryID string
	PlatformID string
	MinPrice   *float64
	MaxPrice   *float64
	SortBy     string // "price" | "rating" | "ranking" | "likes" | "" (порядок хранилища)
	Desc       bool
}

// HasPriceRange — задана ли хотя бы одна граница цены.
func (f ProductFilter) HasPriceRange() bool {
	return f.MinPrice != nil || f.MaxPrice != nil
}

// Matches — проверка товара на соответствие предикатной части фильтра
// (категория, платформа, диапазон цены). Сортировка здесь не учитывается.
func (f ProductFilter) Matches(p *Product) bool {
	if p == nil {
		return false
	}
	if f.CategoryID != "" && p.CategoryID != f.CategoryID {
		return false
	}
	if f.PlatformID != "" && !containsString(p.PlatformIDs, f.PlatformID) {
		return false
	}
	// Границы диапазона включительные.
	if f.MinPrice != nil && p.Price < *f.MinPrice {
		return false
	}
	if f.MaxPrice != nil && p.Price > *f.MaxPrice {
		return false
	}
	return true
}

func containsString(set []string, v string) bool {
	for _, s := range set {
		if s == v {
			return true
		}
	}
	return false
}
