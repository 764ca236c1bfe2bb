package redis

import (
	"context"
	"fmt"

	"github.com/redis/go-redis/v9"

	"github.com/sendbol/videoshop-catalog/internal/domain"
	"github.com/sendbol/videoshop-catalog/internal/ports"
	"github.com/sendbol/videoshop-catalog/pkg/metrics"
)

// Проверка, что Mirror[Product] удовлетворяет интерфейсу ProductMirror.
var _ ports.ProductMirror = (*Mirror[domain.Product])(nil)

// Mirror — hash-зеркало коллекции в Redis: одна запись = один hash
// под ключом «{collection}:{id}». Зеркало неограниченное, без вытеснения:
// записи создаются лениво при промахе и перезаписываются при каждой мутации.
//
// GetAll сканирует ключи по префиксу — это O(числа ключей в инстансе);
// для размеров каталога в рамках задачи приемлемо, но не масштабируется.
type Mirror[T any] struct {
	client     *redis.Client
	collection string
	codec      Codec[T]
}

// NewMirror — конструктор зеркала коллекции.
func NewMirror[T any](client *redis.Client, collection string, codec Codec[T]) *Mirror[T] {
	return &Mirror[T]{client: client, collection: collection, codec: codec}
}

func (m *Mirror[T]) key(id string) string { return m.collection + ":" + id }

// GetAll — все зеркалированные записи без определённого порядка.
// Холодное зеркало — пустой список, не ошибка: решение о прогреве за вызывающим.
func (m *Mirror[T]) GetAll(ctx context.Context) ([]*T, error) {
	var result []*T

	iter := m.client.Scan(ctx, 0, m.collection+":*", 0).Iterator()
	for iter.Next(ctx) {
		fields, err := m.client.HGetAll(ctx, iter.Val()).Result()
		if err != nil {
			return nil, fmt.Errorf("hgetall %s: %w", iter.Val(), err)
		}
		// Ключ мог исчезнуть между SCAN и HGETALL — пропускаем.
		if len(fields) == 0 {
			continue
		}
		result = append(result, m.codec.Decode(fields))
	}
	if err := iter.Err(); err != nil {
		return nil, fmt.Errorf("scan %s: %w", m.collection, err)
	}

	if len(result) == 0 {
		metrics.MirrorOps.WithLabelValues(m.collection, "miss").Inc()
	} else {
		metrics.MirrorOps.WithLabelValues(m.collection, "hit").Inc()
	}
	return result, nil
}

// Get — запись по id; (nil, false, nil) при отсутствии в зеркале.
func (m *Mirror[T]) Get(ctx context.Context, id string) (*T, bool, error) {
	fields, err := m.client.HGetAll(ctx, m.key(id)).Result()
	if err != nil {
		return nil, false, fmt.Errorf("hgetall %s: %w", m.key(id), err)
	}
	if len(fields) == 0 {
		metrics.MirrorOps.WithLabelValues(m.collection, "miss").Inc()
		return nil, false, nil
	}
	metrics.MirrorOps.WithLabelValues(m.collection, "hit").Inc()
	return m.codec.Decode(fields), true, nil
}

// Put — перезапись полного набора полей записи. DEL+HSET внутри MULTI/EXEC:
// читатель никогда не видит частичный набор полей (HSET поверх старого hash
// оставил бы устаревшие поля).
func (m *Mirror[T]) Put(ctx context.Context, v *T) error {
	return m.put(ctx, v)
}

// PutAll — последовательность независимых перезаписей по ключам.
// Каждая запись идемпотентна (last-write-wins по ключу); атомарности
// между ключами нет — конкурентные прогревы сходятся к одному состоянию.
func (m *Mirror[T]) PutAll(ctx context.Context, items []*T) error {
	if len(items) == 0 {
		return nil
	}
	for _, v := range items {
		if err := m.put(ctx, v); err != nil {
			return err
		}
	}
	return nil
}

func (m *Mirror[T]) put(ctx context.Context, v *T) error {
	id := m.codec.ID(v)
	if id == "" {
		return fmt.Errorf("mirror %s: запись без id", m.collection)
	}
	fields := m.codec.Encode(v)

	if _, err := m.client.TxPipelined(ctx, func(pipe redis.Pipeliner) error {
		pipe.Del(ctx, m.key(id))
		pipe.HSet(ctx, m.key(id), fields)
		return nil
	}); err != nil {
		return fmt.Errorf("hset %s: %w", m.key(id), err)
	}
	return nil
}
