package usecase

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"sort"
	"strings"
	"time"

	"github.com/google/uuid"
	"golang.org/x/sync/singleflight"

	"github.com/sendbol/videoshop-catalog/internal/domain"
	"github.com/sendbol/videoshop-catalog/internal/ports"
	"github.com/sendbol/videoshop-catalog/pkg/metrics"
)

// defaultRankingFetchLimit — верхняя граница выборки из индекса ранжирования
// при сортированных запросах фасада.
const defaultRankingFetchLimit = 5000

var _ ports.CatalogService = (*CatalogService)(nil)

// CatalogService — прикладная логика каталога (без знаний о транспорте).
// Чтения идут через зеркало с ленивым прогревом; мутации пишутся сначала
// в хранилище, затем в зеркало и индекс ранжирования.
type CatalogService struct {
	repo           ports.ProductRepository    // первичное хранилище
	mirror         ports.ProductMirror        // hash-зеркало товаров
	ranking        ports.RankingIndex         // сортированные наборы метрик
	log            ports.Logger               // прямой доступ к логгеру
	validator      ports.ProductValidator     // доменная валидация товара
	eventValidator ports.MetricEventValidator // валидация событий метрик

	// sf схлопывает конкурентные прогревы одного региона кэша:
	// хранилище получает один запрос, остальные ждут его результат.
	sf         singleflight.Group
	fetchLimit int
}

// NewCatalogService — DI-конструктор. fetchLimit <= 0 включает значение по умолчанию.
func NewCatalogService(
	repo ports.ProductRepository,
	mirror ports.ProductMirror,
	ranking ports.RankingIndex,
	log ports.Logger,
	validator ports.ProductValidator,
	eventValidator ports.MetricEventValidator,
	fetchLimit int,
) *CatalogService {
	if fetchLimit <= 0 {
		fetchLimit = defaultRankingFetchLimit
	}
	return &CatalogService{
		repo:           repo,
		mirror:         mirror,
		ranking:        ranking,
		log:            log,
		validator:      validator,
		eventValidator: eventValidator,
		fetchLimit:     fetchLimit,
	}
}

// ---------------------------------------------------------------------------
// Прогрев регионов кэша
// ---------------------------------------------------------------------------

// warmProducts — каталог из зеркала; пустое зеркало перестраивается из
// хранилища под singleflight. Ошибка перестроения пробрасывается наверх:
// сбой кэша не должен выглядеть как пустой каталог.
func (s *CatalogService) warmProducts(ctx context.Context) ([]*domain.Product, error) {
	items, err := s.mirror.GetAll(ctx)
	if err != nil {
		s.log.Errorf(ctx, "mirror.GetAll failed err=%v", err)
		return nil, err
	}
	if len(items) > 0 {
		return items, nil
	}

	v, err, _ := s.sf.Do("mirror:products", func() (any, error) {
		products, err := s.repo.FindAll(ctx)
		if err != nil {
			return nil, fmt.Errorf("warm products: %w", err)
		}
		if err := s.mirror.PutAll(ctx, products); err != nil {
			return nil, fmt.Errorf("warm products: %w", err)
		}
		metrics.CacheRebuilds.WithLabelValues("products").Inc()
		s.log.Infof(ctx, "mirror warmed collection=products items=%d", len(products))
		return products, nil
	})
	if err != nil {
		s.log.Errorf(ctx, "warm products failed err=%v", err)
		return nil, err
	}
	return v.([]*domain.Product), nil
}

// ensureRatingWarm — засев «ranking:score» из хранилища, если набор пуст.
func (s *CatalogService) ensureRatingWarm(ctx context.Context) error {
	n, err := s.ranking.Count(ctx, domain.RankingRating)
	if err != nil {
		return err
	}
	if n > 0 {
		return nil
	}

	_, err, _ = s.sf.Do(domain.RankingRating, func() (any, error) {
		products, err := s.repo.FindAll(ctx)
		if err != nil {
			return nil, fmt.Errorf("warm rating: %w", err)
		}
		members := make([]domain.MemberScore, 0, len(products))
		for _, p := range products {
			members = append(members, domain.MemberScore{ID: p.ID, Score: float64(p.Rating)})
		}
		if err := s.ranking.UpsertBatch(ctx, domain.RankingRating, members); err != nil {
			return nil, fmt.Errorf("warm rating: %w", err)
		}
		metrics.CacheRebuilds.WithLabelValues(domain.RankingRating).Inc()
		s.log.Infof(ctx, "ranking warmed set=%s members=%d", domain.RankingRating, len(members))
		return nil, nil
	})
	return err
}

// ensureVotesWarm — засев «ranking:likes» и «ranking:dislikes». Наборы
// живут парой: пустота любого из них означает холодный регион, и сеются
// оба (иначе разность лайков считалась бы по рассинхронизированной паре).
func (s *CatalogService) ensureVotesWarm(ctx context.Context) error {
	likes, err := s.ranking.Count(ctx, domain.RankingLikes)
	if err != nil {
		return err
	}
	dislikes, err := s.ranking.Count(ctx, domain.RankingDislikes)
	if err != nil {
		return err
	}
	if likes > 0 && dislikes > 0 {
		return nil
	}

	_, err, _ = s.sf.Do("ranking:votes", func() (any, error) {
		products, err := s.repo.FindAll(ctx)
		if err != nil {
			return nil, fmt.Errorf("warm votes: %w", err)
		}
		likeMembers := make([]domain.MemberScore, 0, len(products))
		dislikeMembers := make([]domain.MemberScore, 0, len(products))
		for _, p := range products {
			likeMembers = append(likeMembers, domain.MemberScore{ID: p.ID, Score: float64(p.Likes)})
			dislikeMembers = append(dislikeMembers, domain.MemberScore{ID: p.ID, Score: float64(p.Dislikes)})
		}
		if err := s.ranking.UpsertBatch(ctx, domain.RankingLikes, likeMembers); err != nil {
			return nil, fmt.Errorf("warm votes: %w", err)
		}
		if err := s.ranking.UpsertBatch(ctx, domain.RankingDislikes, dislikeMembers); err != nil {
			return nil, fmt.Errorf("warm votes: %w", err)
		}
		metrics.CacheRebuilds.WithLabelValues("ranking:votes").Inc()
		s.log.Infof(ctx, "ranking warmed set=votes members=%d", len(likeMembers))
		return nil, nil
	})
	return err
}

// WarmUp — опциональный прогрев всех регионов на старте приложения.
func (s *CatalogService) WarmUp(ctx context.Context) error {
	if _, err := s.warmProducts(ctx); err != nil {
		return err
	}
	if err := s.ensureRatingWarm(ctx); err != nil {
		return err
	}
	return s.ensureVotesWarm(ctx)
}

// ---------------------------------------------------------------------------
// Чтения
// ---------------------------------------------------------------------------

// AllProducts — весь каталог из зеркала (с ленивым прогревом).
func (s *CatalogService) AllProducts(ctx context.Context) ([]*domain.Product, error) {
	return s.warmProducts(ctx)
}

// SearchByTitle — подстрочный поиск по названию без учёта регистра.
// Пустой запрос эквивалентен AllProducts.
func (s *CatalogService) SearchByTitle(ctx context.Context, query string) ([]*domain.Product, error) {
	items, err := s.warmProducts(ctx)
	if err != nil {
		return nil, err
	}
	q := strings.ToLower(strings.TrimSpace(query))
	if q == "" {
		return items, nil
	}

	var result []*domain.Product
	for _, p := range items {
		if strings.Contains(strings.ToLower(p.Title), q) {
			result = append(result, p)
		}
	}
	return result, nil
}

// ProductByID — товар по id: зеркало, при промахе хранилище с дозаписью
// в зеркало. (nil, nil) — товара нет.
func (s *CatalogService) ProductByID(ctx context.Context, id string) (*domain.Product, error) {
	p, found, err := s.mirror.Get(ctx, id)
	if err != nil {
		s.log.Errorf(ctx, "mirror.Get failed product_id=%s err=%v", id, err)
		return nil, err
	}
	if found {
		return p, nil
	}

	p, err = s.repo.FindByID(ctx, id)
	if err != nil {
		s.log.Errorf(ctx, "repo.FindByID failed product_id=%s err=%v", id, err)
		return nil, err
	}
	if p != nil {
		if putErr := s.mirror.Put(ctx, p); putErr != nil {
			s.log.Warnf(ctx, "mirror.Put failed product_id=%s err=%v", id, putErr)
		}
	}
	return p, nil
}

// ProductsByIDs — товары в порядке запрошенных id; неизвестные id молча
// пропускаются. Промахи зеркала добираются одним запросом к хранилищу.
func (s *CatalogService) ProductsByIDs(ctx context.Context, ids []string) ([]*domain.Product, error) {
	if len(ids) == 0 {
		return nil, nil
	}

	byID := make(map[string]*domain.Product, len(ids))
	var misses []string
	for _, id := range ids {
		if _, seen := byID[id]; seen {
			continue
		}
		p, found, err := s.mirror.Get(ctx, id)
		if err != nil {
			return nil, err
		}
		if found {
			byID[id] = p
		} else {
			misses = append(misses, id)
		}
	}

	if len(misses) > 0 {
		fetched, err := s.repo.FindByIDs(ctx, misses)
		if err != nil {
			s.log.Errorf(ctx, "repo.FindByIDs failed err=%v", err)
			return nil, err
		}
		for _, p := range fetched {
			byID[p.ID] = p
			if putErr := s.mirror.Put(ctx, p); putErr != nil {
				s.log.Warnf(ctx, "mirror.Put failed product_id=%s err=%v", p.ID, putErr)
			}
		}
	}

	result := make([]*domain.Product, 0, len(ids))
	seen := make(map[string]bool, len(ids))
	for _, id := range ids {
		if seen[id] {
			continue
		}
		seen[id] = true
		if p, ok := byID[id]; ok {
			result = append(result, p)
		}
	}
	return result, nil
}

// Предикатные чтения идут в хранилище напрямую, не через зеркало:
// зеркальная запись после неудачного best-effort Put может отставать,
// а непустое зеркало не перестраивается.

// ProductsByCategory — товары категории по предикату хранилища.
func (s *CatalogService) ProductsByCategory(ctx context.Context, categoryID string) ([]*domain.Product, error) {
	return s.repo.FindByFilter(ctx, domain.ProductFilter{CategoryID: categoryID})
}

// ProductsByPlatform — товары платформы по предикату хранилища.
func (s *CatalogService) ProductsByPlatform(ctx context.Context, platformID string) ([]*domain.Product, error) {
	return s.repo.FindByFilter(ctx, domain.ProductFilter{PlatformID: platformID})
}

// ProductsByPriceRange — товары в ценовом диапазоне; границы включительные.
func (s *CatalogService) ProductsByPriceRange(ctx context.Context, min, max float64) ([]*domain.Product, error) {
	return s.repo.FindByFilter(ctx, domain.ProductFilter{MinPrice: &min, MaxPrice: &max})
}

// ---------------------------------------------------------------------------
// Ранжированные выборки
// ---------------------------------------------------------------------------

// TopByRating — товары по рейтингу из индекса ранжирования.
// limit <= 0 означает «без ограничения» (в пределах fetchLimit).
func (s *CatalogService) TopByRating(ctx context.Context, limit int, desc bool) ([]*domain.Product, error) {
	if err := s.ensureRatingWarm(ctx); err != nil {
		s.log.Errorf(ctx, "rating warm failed err=%v", err)
		return nil, err
	}
	if limit <= 0 || limit > s.fetchLimit {
		limit = s.fetchLimit
	}
	ids, err := s.ranking.RangeByRank(ctx, domain.RankingRating, desc, int64(limit))
	if err != nil {
		return nil, err
	}
	return s.ProductsByIDs(ctx, ids)
}

// TopByNetLikes — товары по чистым лайкам (likes − dislikes).
// Область перечисления — набор лайков: товар, попавший только в набор
// дизлайков, в выдачу не входит. Оба набора читаются полностью, разность
// считается по всем участникам, сортировка стабильная.
func (s *CatalogService) TopByNetLikes(ctx context.Context, limit int, desc bool) ([]*domain.Product, error) {
	ids, err := s.netLikesOrder(ctx, desc)
	if err != nil {
		return nil, err
	}
	if limit > 0 && len(ids) > limit {
		ids = ids[:limit]
	}
	return s.ProductsByIDs(ctx, ids)
}

func (s *CatalogService) netLikesOrder(ctx context.Context, desc bool) ([]string, error) {
	if err := s.ensureVotesWarm(ctx); err != nil {
		s.log.Errorf(ctx, "votes warm failed err=%v", err)
		return nil, err
	}

	likes, err := s.ranking.ScoresWithValues(ctx, domain.RankingLikes)
	if err != nil {
		return nil, err
	}
	dislikes, err := s.ranking.ScoresWithValues(ctx, domain.RankingDislikes)
	if err != nil {
		return nil, err
	}

	dislikeByID := make(map[string]float64, len(dislikes))
	for _, m := range dislikes {
		dislikeByID[m.ID] = m.Score
	}

	type entry struct {
		id  string
		net float64
	}
	entries := make([]entry, 0, len(likes))
	for _, m := range likes {
		entries = append(entries, entry{id: m.ID, net: m.Score - dislikeByID[m.ID]})
	}

	// Исходный порядок дампа детерминирован, стабильная сортировка
	// сохраняет его для равных значений.
	sort.SliceStable(entries, func(i, j int) bool {
		if desc {
			return entries[i].net > entries[j].net
		}
		return entries[i].net < entries[j].net
	})

	ids := make([]string, 0, len(entries))
	for _, e := range entries {
		ids = append(ids, e.id)
	}
	return ids, nil
}

// Query — составной запрос фасада: предикаты + сортировка.
//   - rating/ranking: порядок индекса рейтинга, затем предикатная фильтрация
//     с сохранением порядка;
//   - likes: порядок по чистым лайкам;
//   - price: предикатная выборка из хранилища, стабильная сортировка по цене;
//   - прочее (включая пустой SortBy): порядок хранилища, предикаты уходят в SQL.
func (s *CatalogService) Query(ctx context.Context, f domain.ProductFilter) ([]*domain.Product, error) {
	switch f.SortBy {
	case "rating", "ranking":
		if err := s.ensureRatingWarm(ctx); err != nil {
			return nil, err
		}
		ids, err := s.ranking.RangeByRank(ctx, domain.RankingRating, f.Desc, int64(s.fetchLimit))
		if err != nil {
			return nil, err
		}
		return s.resolveFiltered(ctx, ids, f)

	case "likes":
		ids, err := s.netLikesOrder(ctx, f.Desc)
		if err != nil {
			return nil, err
		}
		return s.resolveFiltered(ctx, ids, f)

	case "price":
		items, err := s.repo.FindByFilter(ctx, f)
		if err != nil {
			return nil, err
		}
		sort.SliceStable(items, func(i, j int) bool {
			if f.Desc {
				return items[i].Price > items[j].Price
			}
			return items[i].Price < items[j].Price
		})
		return items, nil

	default:
		return s.repo.FindByFilter(ctx, f)
	}
}

// resolveFiltered — резолв id в товары с фильтрацией, порядок ids сохраняется.
func (s *CatalogService) resolveFiltered(ctx context.Context, ids []string, f domain.ProductFilter) ([]*domain.Product, error) {
	products, err := s.ProductsByIDs(ctx, ids)
	if err != nil {
		return nil, err
	}
	var result []*domain.Product
	for _, p := range products {
		if f.Matches(p) {
			result = append(result, p)
		}
	}
	return result, nil
}

// ---------------------------------------------------------------------------
// Мутации
// ---------------------------------------------------------------------------

// AddProduct — создать товар: валидация, назначение id, запись в хранилище,
// затем зеркало и индекс ранжирования. Сбои кэша после удачной записи в
// хранилище не роняют операцию — зеркало и индекс восстановимы прогревом.
func (s *CatalogService) AddProduct(ctx context.Context, p *domain.Product) (*domain.Product, error) {
	if err := s.validator.Validate(ctx, p); err != nil {
		s.log.Warnf(ctx, "validation failed title=%q err=%v", p.Title, err)
		return nil, fmt.Errorf("validation failed: %w", err)
	}

	if p.ID == "" {
		p.ID = uuid.NewString()
	}
	if p.CreatedAt.IsZero() {
		p.CreatedAt = time.Now().UTC()
	}

	if err := s.repo.Insert(ctx, p); err != nil {
		s.log.Errorf(ctx, "repo.Insert failed product_id=%s err=%v", p.ID, err)
		return nil, fmt.Errorf("failed to insert product: %w", err)
	}

	if err := s.mirror.Put(ctx, p); err != nil {
		s.log.Warnf(ctx, "mirror.Put failed product_id=%s err=%v", p.ID, err)
	}

	// Индекс пополняется только после прогрева: одиночная запись в холодный
	// набор отключила бы прогрев-по-пустоте. Прогрев после Insert уже видит
	// новый товар, поэтому при сбое upsert ничего не теряется.
	if err := s.ensureRatingWarm(ctx); err != nil {
		s.log.Warnf(ctx, "rating warm failed product_id=%s err=%v", p.ID, err)
	} else if err := s.ranking.Upsert(ctx, domain.RankingRating, p.ID, float64(p.Rating)); err != nil {
		s.log.Warnf(ctx, "ranking.Upsert failed set=%s product_id=%s err=%v", domain.RankingRating, p.ID, err)
	}
	if err := s.ensureVotesWarm(ctx); err != nil {
		s.log.Warnf(ctx, "votes warm failed product_id=%s err=%v", p.ID, err)
	} else {
		if err := s.ranking.Upsert(ctx, domain.RankingLikes, p.ID, float64(p.Likes)); err != nil {
			s.log.Warnf(ctx, "ranking.Upsert failed set=%s product_id=%s err=%v", domain.RankingLikes, p.ID, err)
		}
		if err := s.ranking.Upsert(ctx, domain.RankingDislikes, p.ID, float64(p.Dislikes)); err != nil {
			s.log.Warnf(ctx, "ranking.Upsert failed set=%s product_id=%s err=%v", domain.RankingDislikes, p.ID, err)
		}
	}

	s.log.Infof(ctx, "product created id=%s title=%q", p.ID, p.Title)
	return p, nil
}

// RecordRating — записать абсолютное значение рейтинга: хранилище первым,
// затем прогрев индекса и одиночный upsert. Прогрев перед upsert обязателен:
// запись в пустой набор сделала бы его непустым с единственным участником,
// и прогрев-по-пустоте больше никогда бы не сработал. Ошибка индекса
// пробрасывается: операция идемпотентна и безопасна для повтора, а «тихо»
// отставший непустой набор сам не заживёт.
func (s *CatalogService) RecordRating(ctx context.Context, id string, rating int) error {
	if err := s.repo.UpdateRating(ctx, id, rating); err != nil {
		s.log.Errorf(ctx, "repo.UpdateRating failed product_id=%s err=%v", id, err)
		return err
	}
	if err := s.ensureRatingWarm(ctx); err != nil {
		s.log.Errorf(ctx, "rating warm failed product_id=%s err=%v", id, err)
		return err
	}
	if err := s.ranking.Upsert(ctx, domain.RankingRating, id, float64(rating)); err != nil {
		s.log.Errorf(ctx, "ranking.Upsert failed set=%s product_id=%s err=%v", domain.RankingRating, id, err)
		return err
	}
	s.refreshMirror(ctx, id)
	return nil
}

// RecordVotes — записать абсолютные значения лайков и дизлайков.
// Как и в RecordRating, холодная пара наборов сначала сеется целиком.
func (s *CatalogService) RecordVotes(ctx context.Context, id string, likes, dislikes int) error {
	if err := s.repo.UpdateVotes(ctx, id, likes, dislikes); err != nil {
		s.log.Errorf(ctx, "repo.UpdateVotes failed product_id=%s err=%v", id, err)
		return err
	}
	if err := s.ensureVotesWarm(ctx); err != nil {
		s.log.Errorf(ctx, "votes warm failed product_id=%s err=%v", id, err)
		return err
	}
	if err := s.ranking.Upsert(ctx, domain.RankingLikes, id, float64(likes)); err != nil {
		s.log.Errorf(ctx, "ranking.Upsert failed set=%s product_id=%s err=%v", domain.RankingLikes, id, err)
		return err
	}
	if err := s.ranking.Upsert(ctx, domain.RankingDislikes, id, float64(dislikes)); err != nil {
		s.log.Errorf(ctx, "ranking.Upsert failed set=%s product_id=%s err=%v", domain.RankingDislikes, id, err)
		return err
	}
	s.refreshMirror(ctx, id)
	return nil
}

// refreshMirror — перечитать товар из хранилища и перезаписать зеркало.
// Best effort: сбой оставляет зеркальную запись устаревшей до следующей мутации.
func (s *CatalogService) refreshMirror(ctx context.Context, id string) {
	p, err := s.repo.FindByID(ctx, id)
	if err != nil {
		s.log.Warnf(ctx, "mirror refresh: repo.FindByID failed product_id=%s err=%v", id, err)
		return
	}
	if p == nil {
		return
	}
	if err := s.mirror.Put(ctx, p); err != nil {
		s.log.Warnf(ctx, "mirror refresh: mirror.Put failed product_id=%s err=%v", id, err)
	}
}

// ApplyMetricFromMessage — применить событие метрик, пришедшее из Kafka (raw JSON).
// Шаги:
//  1. строгий парсинг JSON (DisallowUnknownFields) —> отлавливаем незадокументированные поля;
//  2. доменная валидация (вернёт validate.ErrInvalidEvent при проблемах);
//  3. диспетчеризация по действию; неизвестное действие — no-op, не ошибка.
func (s *CatalogService) ApplyMetricFromMessage(ctx context.Context, raw []byte) error {
	var event domain.MetricEvent
	dec := json.NewDecoder(bytes.NewReader(raw))
	dec.DisallowUnknownFields()
	if err := dec.Decode(&event); err != nil {
		s.log.Warnf(ctx, "invalid json err=%v", err)
		return fmt.Errorf("invalid json: %w", err)
	}

	// Убеждаемся, что после объекта нет лишних данных.
	if err := dec.Decode(new(struct{})); err != io.EOF {
		s.log.Warnf(ctx, "invalid json: trailing data")
		return fmt.Errorf("invalid json: trailing data")
	}

	if err := s.eventValidator.Validate(ctx, &event); err != nil {
		s.log.Warnf(ctx, "validation failed product_id=%s err=%v", event.ProductID, err)
		return fmt.Errorf("validation failed: %w", err)
	}

	switch event.Action {
	case domain.MetricActionRating:
		return s.RecordRating(ctx, event.ProductID, event.Rating)
	case domain.MetricActionVotes:
		return s.RecordVotes(ctx, event.ProductID, event.Likes, event.Dislikes)
	default:
		s.log.Warnf(ctx, "unknown metric action=%q product_id=%s, skipping", event.Action, event.ProductID)
		return nil
	}
}
