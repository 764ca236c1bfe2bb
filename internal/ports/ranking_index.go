package ports

import (
	"context"

	"github.com/sendbol/videoshop-catalog/internal/domain"
)

// RankingIndex — именованные сортированные структуры (id → score)
// с range-запросами. Порядок при равных score — стабильный,
// но не специфицирован: вызывающие не должны на него полагаться.
type RankingIndex interface {
	// Upsert — установить/заменить score для id. Идемпотентен.
	Upsert(ctx context.Context, set, id string, score float64) error

	// UpsertBatch — пакетная загрузка одной логической операцией:
	// конкурентный читатель не должен увидеть частично засеянную
	// структуру как «непустую и полную».
	UpsertBatch(ctx context.Context, set string, members []domain.MemberScore) error

	// RangeByRank — до limit идентификаторов по возрастанию
	// (desc=false) или убыванию score.
	RangeByRank(ctx context.Context, set string, desc bool, limit int64) ([]string, error)

	// Count — число элементов; используется синхронизатором как признак «пусто».
	Count(ctx context.Context, set string) (int64, error)

	// ScoresWithValues — полный дамп (id, score).
	ScoresWithValues(ctx context.Context, set string) ([]domain.MemberScore, error)
}
