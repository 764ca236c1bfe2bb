package postgres

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/sendbol/videoshop-catalog/internal/domain"
	"github.com/sendbol/videoshop-catalog/internal/ports"
)

// Проверка, что ProductRepository удовлетворяет интерфейсу ProductRepository.
var _ ports.ProductRepository = (*ProductRepository)(nil)

// ProductRepository — реализация хранилища товаров на Postgres (pgxpool).
// Одна строка таблицы = один документ каталога; списочные поля — массивы.
type ProductRepository struct {
	pool *pgxpool.Pool
}

// NewProductRepository — конструктор ProductRepository.
func NewProductRepository(pool *pgxpool.Pool) *ProductRepository {
	return &ProductRepository{pool: pool}
}

const productColumns = `
	id, title, price, quantity, description, images, category_id,
	platform_ids, stock, created_at, rating, likes, dislikes, tag_ids`

// scanProduct — читает одну строку результата в доменную структуру.
func scanProduct(row pgx.Row) (*domain.Product, error) {
	var p domain.Product
	if err := row.Scan(
		&p.ID, &p.Title, &p.Price, &p.Quantity, &p.Description, &p.Images,
		&p.CategoryID, &p.PlatformIDs, &p.Stock, &p.CreatedAt,
		&p.Rating, &p.Likes, &p.Dislikes, &p.TagIDs,
	); err != nil {
		return nil, err
	}
	return &p, nil
}

func collectProducts(rows pgx.Rows) ([]*domain.Product, error) {
	defer rows.Close()

	var result []*domain.Product
	for rows.Next() {
		p, err := scanProduct(rows)
		if err != nil {
			return nil, fmt.Errorf("scan product: %w", err)
		}
		result = append(result, p)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("products rows: %w", err)
	}
	return result, nil
}

// FindAll — все товары каталога (для прогрева зеркала и индексов).
func (r *ProductRepository) FindAll(ctx context.Context) ([]*domain.Product, error) {
	rows, err := r.pool.Query(ctx, `SELECT `+productColumns+` FROM products`)
	if err != nil {
		return nil, fmt.Errorf("select products: %w", err)
	}
	return collectProducts(rows)
}

// FindByID — товар по id. Если не нашли, возвращает (nil, nil).
func (r *ProductRepository) FindByID(ctx context.Context, id string) (*domain.Product, error) {
	p, err := scanProduct(r.pool.QueryRow(ctx,
		`SELECT `+productColumns+` FROM products WHERE id = $1`, id))
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("select product: %w", err)
	}
	return p, nil
}

// FindByIDs — товары по множеству id. Порядок результата — порядок хранилища;
// переупорядочивание по внешнему списку id — забота вызывающего.
func (r *ProductRepository) FindByIDs(ctx context.Context, ids []string) ([]*domain.Product, error) {
	if len(ids) == 0 {
		return nil, nil
	}
	rows, err := r.pool.Query(ctx,
		`SELECT `+productColumns+` FROM products WHERE id = ANY($1::text[])`, ids)
	if err != nil {
		return nil, fmt.Errorf("select products by ids: %w", err)
	}
	return collectProducts(rows)
}

// FindByFilter — выборка по предикатной части фильтра: равенство категории,
// членство платформы в массиве, включительный диапазон цены.
func (r *ProductRepository) FindByFilter(ctx context.Context, f domain.ProductFilter) ([]*domain.Product, error) {
	var (
		conds []string
		args  []any
	)
	if f.CategoryID != "" {
		args = append(args, f.CategoryID)
		conds = append(conds, fmt.Sprintf("category_id = $%d", len(args)))
	}
	if f.PlatformID != "" {
		args = append(args, f.PlatformID)
		conds = append(conds, fmt.Sprintf("$%d = ANY(platform_ids)", len(args)))
	}
	if f.MinPrice != nil {
		args = append(args, *f.MinPrice)
		conds = append(conds, fmt.Sprintf("price >= $%d", len(args)))
	}
	if f.MaxPrice != nil {
		args = append(args, *f.MaxPrice)
		conds = append(conds, fmt.Sprintf("price <= $%d", len(args)))
	}

	query := `SELECT ` + productColumns + ` FROM products`
	if len(conds) > 0 {
		query += " WHERE " + strings.Join(conds, " AND ")
	}

	rows, err := r.pool.Query(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("select products by filter: %w", err)
	}
	return collectProducts(rows)
}

// Insert — вставка нового товара. ID уже назначен вызывающим.
func (r *ProductRepository) Insert(ctx context.Context, p *domain.Product) error {
	if p == nil || p.ID == "" {
		return errors.New("product is empty or id is required")
	}

	if _, err := r.pool.Exec(ctx, `
		INSERT INTO products (
			id, title, price, quantity, description, images, category_id,
			platform_ids, stock, created_at, rating, likes, dislikes, tag_ids
		) VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14)
	`,
		p.ID, p.Title, p.Price, p.Quantity, p.Description, p.Images, p.CategoryID,
		p.PlatformIDs, p.Stock, p.CreatedAt, p.Rating, p.Likes, p.Dislikes, p.TagIDs,
	); err != nil {
		return fmt.Errorf("insert product: %w", err)
	}
	return nil
}

// UpdateRating — запись абсолютного значения оценки.
func (r *ProductRepository) UpdateRating(ctx context.Context, id string, rating int) error {
	if _, err := r.pool.Exec(ctx,
		`UPDATE products SET rating = $2 WHERE id = $1`, id, rating); err != nil {
		return fmt.Errorf("update rating: %w", err)
	}
	return nil
}

// UpdateVotes — запись абсолютных значений счётчиков likes/dislikes.
func (r *ProductRepository) UpdateVotes(ctx context.Context, id string, likes, dislikes int) error {
	if _, err := r.pool.Exec(ctx,
		`UPDATE products SET likes = $2, dislikes = $3 WHERE id = $1`,
		id, likes, dislikes); err != nil {
		return fmt.Errorf("update votes: %w", err)
	}
	return nil
}
