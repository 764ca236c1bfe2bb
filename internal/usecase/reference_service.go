package usecase

import (
	"context"
	"fmt"
	"strings"

	"github.com/google/uuid"
	"golang.org/x/sync/singleflight"

	"github.com/sendbol/videoshop-catalog/internal/ports"
	"github.com/sendbol/videoshop-catalog/pkg/metrics"
)

// referenceRepo — минимальный контракт хранилища справочной коллекции.
type referenceRepo[T any] interface {
	FindAll(ctx context.Context) ([]*T, error)
	FindByID(ctx context.Context, id string) (*T, error)
	Insert(ctx context.Context, v *T) error
}

// referenceMirror — hash-зеркало справочной коллекции; семантика та же,
// что у зеркала товаров (полная перезапись по ключу, пустота — не ошибка).
type referenceMirror[T any] interface {
	Get(ctx context.Context, id string) (*T, bool, error)
	GetAll(ctx context.Context) ([]*T, error)
	Put(ctx context.Context, v *T) error
	PutAll(ctx context.Context, items []*T) error
}

// ReferenceService — mirror-first чтение справочной коллекции
// (категории, платформы, метки) с ленивым прогревом из хранилища.
type ReferenceService[T any] struct {
	repo       referenceRepo[T]
	mirror     referenceMirror[T]
	log        ports.Logger
	collection string // имя коллекции для логов и метрик

	title func(v *T) string // извлечение названия для поиска
	setID func(v *T, id string)    // назначить id, если тот пуст

	sf singleflight.Group
}

// NewReferenceService — DI-конструктор справочного сервиса.
func NewReferenceService[T any](
	repo referenceRepo[T],
	mirror referenceMirror[T],
	log ports.Logger,
	collection string,
	title func(v *T) string,
	setID func(v *T, id string),
) *ReferenceService[T] {
	return &ReferenceService[T]{
		repo:       repo,
		mirror:     mirror,
		log:        log,
		collection: collection,
		title:      title,
		setID:      setID,
	}
}

// All — вся коллекция из зеркала; пустое зеркало перестраивается из
// хранилища под singleflight, ошибка перестроения пробрасывается.
func (s *ReferenceService[T]) All(ctx context.Context) ([]*T, error) {
	items, err := s.mirror.GetAll(ctx)
	if err != nil {
		s.log.Errorf(ctx, "mirror.GetAll failed collection=%s err=%v", s.collection, err)
		return nil, err
	}
	if len(items) > 0 {
		return items, nil
	}

	v, err, _ := s.sf.Do("mirror:"+s.collection, func() (any, error) {
		all, err := s.repo.FindAll(ctx)
		if err != nil {
			return nil, fmt.Errorf("warm %s: %w", s.collection, err)
		}
		if err := s.mirror.PutAll(ctx, all); err != nil {
			return nil, fmt.Errorf("warm %s: %w", s.collection, err)
		}
		metrics.CacheRebuilds.WithLabelValues(s.collection).Inc()
		s.log.Infof(ctx, "mirror warmed collection=%s items=%d", s.collection, len(all))
		return all, nil
	})
	if err != nil {
		s.log.Errorf(ctx, "warm %s failed err=%v", s.collection, err)
		return nil, err
	}
	return v.([]*T), nil
}

// GetByID — запись по id: зеркало, при промахе хранилище с дозаписью
// в зеркало (best effort). (nil, nil) — записи нет.
func (s *ReferenceService[T]) GetByID(ctx context.Context, id string) (*T, error) {
	v, found, err := s.mirror.Get(ctx, id)
	if err != nil {
		s.log.Errorf(ctx, "mirror.Get failed collection=%s id=%s err=%v", s.collection, id, err)
		return nil, err
	}
	if found {
		return v, nil
	}

	v, err = s.repo.FindByID(ctx, id)
	if err != nil {
		s.log.Errorf(ctx, "repo.FindByID failed collection=%s id=%s err=%v", s.collection, id, err)
		return nil, err
	}
	if v != nil {
		if putErr := s.mirror.Put(ctx, v); putErr != nil {
			s.log.Warnf(ctx, "mirror.Put failed collection=%s id=%s err=%v", s.collection, id, putErr)
		}
	}
	return v, nil
}

// SearchByTitle — подстрочный поиск по названию без учёта регистра.
func (s *ReferenceService[T]) SearchByTitle(ctx context.Context, query string) ([]*T, error) {
	items, err := s.All(ctx)
	if err != nil {
		return nil, err
	}
	q := strings.ToLower(strings.TrimSpace(query))
	if q == "" {
		return items, nil
	}

	var result []*T
	for _, v := range items {
		if strings.Contains(strings.ToLower(s.title(v)), q) {
			result = append(result, v)
		}
	}
	return result, nil
}

// Add — вставить запись: хранилище первым, затем зеркало (best effort).
func (s *ReferenceService[T]) Add(ctx context.Context, v *T) (*T, error) {
	s.setID(v, uuid.NewString())

	if err := s.repo.Insert(ctx, v); err != nil {
		s.log.Errorf(ctx, "repo.Insert failed collection=%s err=%v", s.collection, err)
		return nil, fmt.Errorf("failed to insert %s: %w", s.collection, err)
	}
	if err := s.mirror.Put(ctx, v); err != nil {
		s.log.Warnf(ctx, "mirror.Put failed collection=%s err=%v", s.collection, err)
	}
	return v, nil
}
