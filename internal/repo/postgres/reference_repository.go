package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/sendbol/videoshop-catalog/internal/domain"
)

// Репозитории справочных коллекций (категории, платформы, метки).
// CRUD здесь нарочно минимальный: чтение идёт через зеркальный кэш,
// хранилище нужно для прогрева и вставки.

// CategoryRepository — категории с chiptags.
type CategoryRepository struct {
	pool *pgxpool.Pool
}

func NewCategoryRepository(pool *pgxpool.Pool) *CategoryRepository {
	return &CategoryRepository{pool: pool}
}

func (r *CategoryRepository) FindAll(ctx context.Context) ([]*domain.Category, error) {
	rows, err := r.pool.Query(ctx, `SELECT id, title, chiptags FROM categories`)
	if err != nil {
		return nil, fmt.Errorf("select categories: %w", err)
	}
	defer rows.Close()

	var result []*domain.Category
	for rows.Next() {
		var c domain.Category
		if err := rows.Scan(&c.ID, &c.Title, &c.Chiptags); err != nil {
			return nil, fmt.Errorf("scan category: %w", err)
		}
		result = append(result, &c)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("categories rows: %w", err)
	}
	return result, nil
}

func (r *CategoryRepository) FindByID(ctx context.Context, id string) (*domain.Category, error) {
	var c domain.Category
	err := r.pool.QueryRow(ctx,
		`SELECT id, title, chiptags FROM categories WHERE id = $1`, id).
		Scan(&c.ID, &c.Title, &c.Chiptags)
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("select category: %w", err)
	}
	return &c, nil
}

func (r *CategoryRepository) Insert(ctx context.Context, c *domain.Category) error {
	if c == nil || c.ID == "" {
		return errors.New("category is empty or id is required")
	}
	if _, err := r.pool.Exec(ctx,
		`INSERT INTO categories (id, title, chiptags) VALUES ($1, $2, $3)`,
		c.ID, c.Title, c.Chiptags); err != nil {
		return fmt.Errorf("insert category: %w", err)
	}
	return nil
}

// PlatformRepository — игровые платформы.
type PlatformRepository struct {
	pool *pgxpool.Pool
}

func NewPlatformRepository(pool *pgxpool.Pool) *PlatformRepository {
	return &PlatformRepository{pool: pool}
}

func (r *PlatformRepository) FindAll(ctx context.Context) ([]*domain.Platform, error) {
	rows, err := r.pool.Query(ctx, `SELECT id, title FROM platforms`)
	if err != nil {
		return nil, fmt.Errorf("select platforms: %w", err)
	}
	defer rows.Close()

	var result []*domain.Platform
	for rows.Next() {
		var p domain.Platform
		if err := rows.Scan(&p.ID, &p.Title); err != nil {
			return nil, fmt.Errorf("scan platform: %w", err)
		}
		result = append(result, &p)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("platforms rows: %w", err)
	}
	return result, nil
}

func (r *PlatformRepository) FindByID(ctx context.Context, id string) (*domain.Platform, error) {
	var p domain.Platform
	err := r.pool.QueryRow(ctx,
		`SELECT id, title FROM platforms WHERE id = $1`, id).Scan(&p.ID, &p.Title)
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("select platform: %w", err)
	}
	return &p, nil
}

func (r *PlatformRepository) Insert(ctx context.Context, p *domain.Platform) error {
	if p == nil || p.ID == "" {
		return errors.New("platform is empty or id is required")
	}
	if _, err := r.pool.Exec(ctx,
		`INSERT INTO platforms (id, title) VALUES ($1, $2)`, p.ID, p.Title); err != nil {
		return fmt.Errorf("insert platform: %w", err)
	}
	return nil
}

// TagRepository — метки товаров.
type TagRepository struct {
	pool *pgxpool.Pool
}

func NewTagRepository(pool *pgxpool.Pool) *TagRepository {
	return &TagRepository{pool: pool}
}

func (r *TagRepository) FindAll(ctx context.Context) ([]*domain.Tag, error) {
	rows, err := r.pool.Query(ctx, `SELECT id, title FROM tags`)
	if err != nil {
		return nil, fmt.Errorf("select tags: %w", err)
	}
	defer rows.Close()

	var result []*domain.Tag
	for rows.Next() {
		var tg domain.Tag
		if err := rows.Scan(&tg.ID, &tg.Title); err != nil {
			return nil, fmt.Errorf("scan tag: %w", err)
		}
		result = append(result, &tg)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("tags rows: %w", err)
	}
	return result, nil
}

func (r *TagRepository) FindByID(ctx context.Context, id string) (*domain.Tag, error) {
	var tg domain.Tag
	err := r.pool.QueryRow(ctx,
		`SELECT id, title FROM tags WHERE id = $1`, id).Scan(&tg.ID, &tg.Title)
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("select tag: %w", err)
	}
	return &tg, nil
}

func (r *TagRepository) Insert(ctx context.Context, tg *domain.Tag) error {
	if tg == nil || tg.ID == "" {
		return errors.New("tag is empty or id is required")
	}
	if _, err := r.pool.Exec(ctx,
		`INSERT INTO tags (id, title) VALUES ($1, $2)`, tg.ID, tg.Title); err != nil {
		return fmt.Errorf("insert tag: %w", err)
	}
	return nil
}

// ChiptagRepository — чиптеги как самостоятельный справочник.
type ChiptagRepository struct {
	pool *pgxpool.Pool
}

func NewChiptagRepository(pool *pgxpool.Pool) *ChiptagRepository {
	return &ChiptagRepository{pool: pool}
}

func (r *ChiptagRepository) FindAll(ctx context.Context) ([]*domain.Chiptag, error) {
	rows, err := r.pool.Query(ctx, `SELECT id, title FROM chiptags`)
	if err != nil {
		return nil, fmt.Errorf("select chiptags: %w", err)
	}
	defer rows.Close()

	var result []*domain.Chiptag
	for rows.Next() {
		var ct domain.Chiptag
		if err := rows.Scan(&ct.ID, &ct.Title); err != nil {
			return nil, fmt.Errorf("scan chiptag: %w", err)
		}
		result = append(result, &ct)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("chiptags rows: %w", err)
	}
	return result, nil
}

func (r *ChiptagRepository) FindByID(ctx context.Context, id string) (*domain.Chiptag, error) {
	var ct domain.Chiptag
	err := r.pool.QueryRow(ctx,
		`SELECT id, title FROM chiptags WHERE id = $1`, id).Scan(&ct.ID, &ct.Title)
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("select chiptag: %w", err)
	}
	return &ct, nil
}

func (r *ChiptagRepository) Insert(ctx context.Context, ct *domain.Chiptag) error {
	if ct == nil || ct.ID == "" {
		return errors.New("chiptag is empty or id is required")
	}
	if _, err := r.pool.Exec(ctx,
		`INSERT INTO chiptags (id, title) VALUES ($1, $2)`, ct.ID, ct.Title); err != nil {
		return fmt.Errorf("insert chiptag: %w", err)
	}
	return nil
}
