package usecase_test

import (
	"context"
	"errors"
	"testing"

	"github.com/sendbol/videoshop-catalog/internal/domain"
	"github.com/sendbol/videoshop-catalog/internal/usecase"
)

// Ручные фейки: mockgen не генерирует обобщённые контракты.

type fakeCategoryRepo struct {
	items    []*domain.Category
	findErr  error
	inserted []*domain.Category
}

func (f *fakeCategoryRepo) FindAll(context.Context) ([]*domain.Category, error) {
	return f.items, f.findErr
}

func (f *fakeCategoryRepo) FindByID(_ context.Context, id string) (*domain.Category, error) {
	if f.findErr != nil {
		return nil, f.findErr
	}
	for _, c := range f.items {
		if c.ID == id {
			return c, nil
		}
	}
	return nil, nil
}

func (f *fakeCategoryRepo) Insert(_ context.Context, c *domain.Category) error {
	f.inserted = append(f.inserted, c)
	return nil
}

type fakeCategoryMirror struct {
	items  []*domain.Category
	getErr error
	puts   []*domain.Category
}

func (f *fakeCategoryMirror) Get(_ context.Context, id string) (*domain.Category, bool, error) {
	if f.getErr != nil {
		return nil, false, f.getErr
	}
	for _, c := range f.items {
		if c.ID == id {
			return c, true, nil
		}
	}
	return nil, false, nil
}

func (f *fakeCategoryMirror) GetAll(context.Context) ([]*domain.Category, error) {
	return f.items, f.getErr
}

func (f *fakeCategoryMirror) Put(_ context.Context, c *domain.Category) error {
	f.puts = append(f.puts, c)
	return nil
}

func (f *fakeCategoryMirror) PutAll(_ context.Context, items []*domain.Category) error {
	f.puts = append(f.puts, items...)
	return nil
}

func newCategoryService(repo *fakeCategoryRepo, mirror *fakeCategoryMirror) *usecase.ReferenceService[domain.Category] {
	return usecase.NewReferenceService[domain.Category](
		repo, mirror, noopLogger{}, "categories",
		func(c *domain.Category) string { return c.Title },
		func(c *domain.Category, id string) {
			if c.ID == "" {
				c.ID = id
			}
		},
	)
}

func TestReferenceAll_MirrorHit_NoRepoCall(t *testing.T) {
	repo := &fakeCategoryRepo{findErr: errors.New("repo must not be called")}
	mirror := &fakeCategoryMirror{items: []*domain.Category{{ID: "c-1", Title: "Игры"}}}
	svc := newCategoryService(repo, mirror)

	got, err := svc.All(context.Background())
	if err != nil || len(got) != 1 {
		t.Fatalf("expected mirror hit, got err=%v n=%d", err, len(got))
	}
}

func TestReferenceAll_EmptyMirror_Rebuilds(t *testing.T) {
	repo := &fakeCategoryRepo{items: []*domain.Category{{ID: "c-1"}, {ID: "c-2"}}}
	mirror := &fakeCategoryMirror{}
	svc := newCategoryService(repo, mirror)

	got, err := svc.All(context.Background())
	if err != nil || len(got) != 2 {
		t.Fatalf("expected rebuild, got err=%v n=%d", err, len(got))
	}
	if len(mirror.puts) != 2 {
		t.Fatalf("прогрев должен заполнить зеркало, puts=%d", len(mirror.puts))
	}
}

func TestReferenceAll_RebuildFailure_Propagates(t *testing.T) {
	boom := errors.New("db down")
	svc := newCategoryService(&fakeCategoryRepo{findErr: boom}, &fakeCategoryMirror{})

	if _, err := svc.All(context.Background()); !errors.Is(err, boom) {
		t.Fatalf("expected propagated error, got %v", err)
	}
}

func TestReferenceGetByID_MirrorHit(t *testing.T) {
	repo := &fakeCategoryRepo{findErr: errors.New("repo must not be called")}
	mirror := &fakeCategoryMirror{items: []*domain.Category{{ID: "c-1", Title: "Игры"}}}
	svc := newCategoryService(repo, mirror)

	got, err := svc.GetByID(context.Background(), "c-1")
	if err != nil || got == nil || got.Title != "Игры" {
		t.Fatalf("expected mirror hit, got err=%v %+v", err, got)
	}
}

func TestReferenceGetByID_MirrorMiss_FetchAndBackfill(t *testing.T) {
	repo := &fakeCategoryRepo{items: []*domain.Category{{ID: "c-1", Title: "Игры"}}}
	mirror := &fakeCategoryMirror{}
	svc := newCategoryService(repo, mirror)

	got, err := svc.GetByID(context.Background(), "c-1")
	if err != nil || got == nil {
		t.Fatalf("expected store fallback, got err=%v %+v", err, got)
	}
	if len(mirror.puts) != 1 {
		t.Fatalf("промах должен дозаписываться в зеркало, puts=%d", len(mirror.puts))
	}
}

func TestReferenceGetByID_Absent_NilNil(t *testing.T) {
	svc := newCategoryService(&fakeCategoryRepo{}, &fakeCategoryMirror{})

	got, err := svc.GetByID(context.Background(), "nope")
	if err != nil || got != nil {
		t.Fatalf("expected (nil, nil), got err=%v %+v", err, got)
	}
}

func TestReferenceSearchByTitle_CaseInsensitive(t *testing.T) {
	mirror := &fakeCategoryMirror{items: []*domain.Category{
		{ID: "c-1", Title: "Видеоигры"},
		{ID: "c-2", Title: "Фильмы"},
	}}
	svc := newCategoryService(&fakeCategoryRepo{}, mirror)

	got, err := svc.SearchByTitle(context.Background(), "ИГРЫ")
	if err != nil || len(got) != 1 || got[0].ID != "c-1" {
		t.Fatalf("expected case-insensitive match, got err=%v %+v", err, got)
	}

	all, err := svc.SearchByTitle(context.Background(), "  ")
	if err != nil || len(all) != 2 {
		t.Fatalf("пустой запрос — вся коллекция, got err=%v n=%d", err, len(all))
	}
}

func TestReferenceAdd_AssignsID_StoreThenMirror(t *testing.T) {
	repo := &fakeCategoryRepo{}
	mirror := &fakeCategoryMirror{}
	svc := newCategoryService(repo, mirror)

	got, err := svc.Add(context.Background(), &domain.Category{Title: "Игры"})
	if err != nil {
		t.Fatalf("unexpected err=%v", err)
	}
	if got.ID == "" {
		t.Fatalf("id должен назначаться при вставке")
	}
	if len(repo.inserted) != 1 || len(mirror.puts) != 1 {
		t.Fatalf("ожидалась запись в хранилище и зеркало: inserted=%d puts=%d", len(repo.inserted), len(mirror.puts))
	}
}
