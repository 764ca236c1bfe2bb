package redis

import (
	"context"
	"fmt"

	"github.com/redis/go-redis/v9"

	"github.com/sendbol/videoshop-catalog/internal/domain"
	"github.com/sendbol/videoshop-catalog/internal/ports"
	"github.com/sendbol/videoshop-catalog/pkg/metrics"
)

var _ ports.RankingIndex = (*RankingIndex)(nil)

// RankingIndex — реализация рейтинговых наборов поверх Redis ZSET.
// Каждый логический набор («ranking:score», «ranking:likes», ...) —
// отдельный ключ; score задаётся абсолютным значением (ZADD перезаписывает).
type RankingIndex struct {
	client *redis.Client
}

func NewRankingIndex(client *redis.Client) *RankingIndex {
	return &RankingIndex{client: client}
}

// Upsert — ZADD: для существующего id score заменяется, повтор безвреден.
func (r *RankingIndex) Upsert(ctx context.Context, set, id string, score float64) error {
	if err := r.client.ZAdd(ctx, set, redis.Z{Member: id, Score: score}).Err(); err != nil {
		return fmt.Errorf("ranking upsert %s: %w", set, err)
	}
	metrics.RankingOps.WithLabelValues(set, "upsert").Inc()
	return nil
}

// UpsertBatch — засев набора одним MULTI/EXEC: конкурентный Count не
// увидит частично заполненный ZSET как «непустой и полный».
func (r *RankingIndex) UpsertBatch(ctx context.Context, set string, members []domain.MemberScore) error {
	if len(members) == 0 {
		return nil
	}

	zs := make([]redis.Z, 0, len(members))
	for _, m := range members {
		zs = append(zs, redis.Z{Member: m.ID, Score: m.Score})
	}

	_, err := r.client.TxPipelined(ctx, func(pipe redis.Pipeliner) error {
		pipe.ZAdd(ctx, set, zs...)
		return nil
	})
	if err != nil {
		return fmt.Errorf("ranking seed %s: %w", set, err)
	}
	metrics.RankingOps.WithLabelValues(set, "seed").Inc()
	return nil
}

// RangeByRank — идентификаторы по рангу. limit <= 0 трактуем как «пусто»:
// фасад всегда передаёт положительную верхнюю границу.
func (r *RankingIndex) RangeByRank(ctx context.Context, set string, desc bool, limit int64) ([]string, error) {
	if limit <= 0 {
		return nil, nil
	}

	var (
		ids []string
		err error
	)
	if desc {
		ids, err = r.client.ZRevRange(ctx, set, 0, limit-1).Result()
	} else {
		ids, err = r.client.ZRange(ctx, set, 0, limit-1).Result()
	}
	if err != nil {
		return nil, fmt.Errorf("ranking range %s: %w", set, err)
	}
	return ids, nil
}

func (r *RankingIndex) Count(ctx context.Context, set string) (int64, error) {
	n, err := r.client.ZCard(ctx, set).Result()
	if err != nil {
		return 0, fmt.Errorf("ranking count %s: %w", set, err)
	}
	return n, nil
}

// ScoresWithValues — полный дамп набора (без усечения: диапазон 0..-1).
func (r *RankingIndex) ScoresWithValues(ctx context.Context, set string) ([]domain.MemberScore, error) {
	zs, err := r.client.ZRangeWithScores(ctx, set, 0, -1).Result()
	if err != nil {
		return nil, fmt.Errorf("ranking dump %s: %w", set, err)
	}

	out := make([]domain.MemberScore, 0, len(zs))
	for _, z := range zs {
		id, ok := z.Member.(string)
		if !ok {
			continue
		}
		out = append(out, domain.MemberScore{ID: id, Score: z.Score})
	}
	return out, nil
}
