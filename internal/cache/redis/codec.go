package redis

import (
	"encoding/json"
	"strconv"
	"time"

	"github.com/sendbol/videoshop-catalog/internal/domain"
)

// Codec — кодек записи для hash-зеркала: полный набор полей в канонических
// строковых представлениях и обратно. Decode толерантен к порче: отсутствующее
// или нечитаемое поле даёт нулевое значение типа, а не ошибку всей записи.
type Codec[T any] interface {
	// ID — ключевая часть записи («{collection}:{id}»).
	ID(v *T) string
	Encode(v *T) map[string]string
	Decode(fields map[string]string) *T
}

// ---- канонические строковые представления ----

func encInt(v int) string       { return strconv.Itoa(v) }
func encFloat(v float64) string { return strconv.FormatFloat(v, 'f', -1, 64) }
func encTime(v time.Time) string {
	if v.IsZero() {
		return ""
	}
	return v.UTC().Format(time.RFC3339Nano)
}
func encList(v []string) string {
	if len(v) == 0 {
		return "[]"
	}
	b, err := json.Marshal(v)
	if err != nil {
		return "[]"
	}
	return string(b)
}

// ---- толерантный разбор: порча поля → нулевое значение ----

func decInt(fields map[string]string, key string) int {
	v, err := strconv.Atoi(fields[key])
	if err != nil {
		return 0
	}
	return v
}

func decFloat(fields map[string]string, key string) float64 {
	v, err := strconv.ParseFloat(fields[key], 64)
	if err != nil {
		return 0
	}
	return v
}

func decTime(fields map[string]string, key string) time.Time {
	v, err := time.Parse(time.RFC3339Nano, fields[key])
	if err != nil {
		return time.Time{}
	}
	return v
}

func decList(fields map[string]string, key string) []string {
	raw := fields[key]
	if raw == "" {
		return nil
	}
	var v []string
	if err := json.Unmarshal([]byte(raw), &v); err != nil {
		return nil
	}
	return v
}

// ---- кодеки коллекций ----

// ProductCodec — кодек товара для зеркала «products:{id}».
type ProductCodec struct{}

func (ProductCodec) ID(p *domain.Product) string { return p.ID }

func (ProductCodec) Encode(p *domain.Product) map[string]string {
	return map[string]string{
		"id":           p.ID,
		"title":        p.Title,
		"price":        encFloat(p.Price),
		"quantity":     encInt(p.Quantity),
		"description":  p.Description,
		"images":       encList(p.Images),
		"category_id":  p.CategoryID,
		"platform_ids": encList(p.PlatformIDs),
		"stock":        encInt(p.Stock),
		"created_at":   encTime(p.CreatedAt),
		"rating":       encInt(p.Rating),
		"likes":        encInt(p.Likes),
		"dislikes":     encInt(p.Dislikes),
		"tag_ids":      encList(p.TagIDs),
	}
}

func (ProductCodec) Decode(fields map[string]string) *domain.Product {
	return &domain.Product{
		ID:          fields["id"],
		Title:       fields["title"],
		Price:       decFloat(fields, "price"),
		Quantity:    decInt(fields, "quantity"),
		Description: fields["description"],
		Images:      decList(fields, "images"),
		CategoryID:  fields["category_id"],
		PlatformIDs: decList(fields, "platform_ids"),
		Stock:       decInt(fields, "stock"),
		CreatedAt:   decTime(fields, "created_at"),
		Rating:      decInt(fields, "rating"),
		Likes:       decInt(fields, "likes"),
		Dislikes:    decInt(fields, "dislikes"),
		TagIDs:      decList(fields, "tag_ids"),
	}
}

// CategoryCodec — кодек категории для зеркала «categories:{id}».
type CategoryCodec struct{}

func (CategoryCodec) ID(c *domain.Category) string { return c.ID }

func (CategoryCodec) Encode(c *domain.Category) map[string]string {
	return map[string]string{
		"id":       c.ID,
		"title":    c.Title,
		"chiptags": encList(c.Chiptags),
	}
}

func (CategoryCodec) Decode(fields map[string]string) *domain.Category {
	return &domain.Category{
		ID:       fields["id"],
		Title:    fields["title"],
		Chiptags: decList(fields, "chiptags"),
	}
}

// PlatformCodec — кодек платформы для зеркала «platforms:{id}».
type PlatformCodec struct{}

func (PlatformCodec) ID(p *domain.Platform) string { return p.ID }

func (PlatformCodec) Encode(p *domain.Platform) map[string]string {
	return map[string]string{"id": p.ID, "title": p.Title}
}

func (PlatformCodec) Decode(fields map[string]string) *domain.Platform {
	return &domain.Platform{ID: fields["id"], Title: fields["title"]}
}

// TagCodec — кодек метки для зеркала «tags:{id}».
type TagCodec struct{}

func (TagCodec) ID(t *domain.Tag) string { return t.ID }

func (TagCodec) Encode(t *domain.Tag) map[string]string {
	return map[string]string{"id": t.ID, "title": t.Title}
}

func (TagCodec) Decode(fields map[string]string) *domain.Tag {
	return &domain.Tag{ID: fields["id"], Title: fields["title"]}
}

// ChiptagCodec — кодек чиптега для зеркала «chiptags:{id}».
type ChiptagCodec struct{}

func (ChiptagCodec) ID(c *domain.Chiptag) string { return c.ID }

func (ChiptagCodec) Encode(c *domain.Chiptag) map[string]string {
	return map[string]string{"id": c.ID, "title": c.Title}
}

func (ChiptagCodec) Decode(fields map[string]string) *domain.Chiptag {
	return &domain.Chiptag{ID: fields["id"], Title: fields["title"]}
}
