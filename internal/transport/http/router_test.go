package rest_test

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/golang/mock/gomock"

	"github.com/sendbol/videoshop-catalog/internal/domain"
	"github.com/sendbol/videoshop-catalog/internal/ports/mocks"
	rest "github.com/sendbol/videoshop-catalog/internal/transport/http"
	"github.com/sendbol/videoshop-catalog/internal/usecase"
	"github.com/sendbol/videoshop-catalog/pkg/validate"
)

type noopLogger struct{}

func (noopLogger) Infof(context.Context, string, ...any)  {}
func (noopLogger) Warnf(context.Context, string, ...any)  {}
func (noopLogger) Errorf(context.Context, string, ...any) {}

// ---- фейки справочных коллекций ----
// ReferenceService — конкретный дженерик-тип, мокать нечего: собираем его
// поверх фейкового хранилища и прогретого зеркала в памяти.

type fakeRefRepo[T any] struct {
	items    []*T
	inserted []*T
	findErr  error
	id       func(*T) string
}

func (f *fakeRefRepo[T]) FindAll(context.Context) ([]*T, error) { return f.items, f.findErr }
func (f *fakeRefRepo[T]) FindByID(_ context.Context, id string) (*T, error) {
	if f.findErr != nil {
		return nil, f.findErr
	}
	for _, v := range f.items {
		if f.id(v) == id {
			return v, nil
		}
	}
	return nil, nil
}
func (f *fakeRefRepo[T]) Insert(_ context.Context, v *T) error {
	f.inserted = append(f.inserted, v)
	return nil
}

type fakeRefMirror[T any] struct {
	items []*T
	id    func(*T) string
}

func (f *fakeRefMirror[T]) GetAll(context.Context) ([]*T, error) { return f.items, nil }
func (f *fakeRefMirror[T]) Get(_ context.Context, id string) (*T, bool, error) {
	for _, v := range f.items {
		if f.id(v) == id {
			return v, true, nil
		}
	}
	return nil, false, nil
}
func (f *fakeRefMirror[T]) Put(_ context.Context, v *T) error {
	f.items = append(f.items, v)
	return nil
}
func (f *fakeRefMirror[T]) PutAll(_ context.Context, items []*T) error {
	f.items = items
	return nil
}

type testEnv struct {
	catalog    *mocks.MockCatalogService
	categories *fakeRefMirror[domain.Category]
	router     http.Handler
}

func newTestRouter(t *testing.T) *testEnv {
	t.Helper()
	ctrl := gomock.NewController(t)

	catalog := mocks.NewMockCatalogService(ctrl)
	log := noopLogger{}

	catID := func(v *domain.Category) string { return v.ID }
	platID := func(v *domain.Platform) string { return v.ID }
	tagID := func(v *domain.Tag) string { return v.ID }
	chipID := func(v *domain.Chiptag) string { return v.ID }

	catMirror := &fakeRefMirror[domain.Category]{id: catID, items: []*domain.Category{
		{ID: "c-1", Title: "RPG"},
		{ID: "c-2", Title: "Strategy"},
	}}
	categories := usecase.NewReferenceService[domain.Category](
		&fakeRefRepo[domain.Category]{id: catID}, catMirror, log, "categories",
		func(v *domain.Category) string { return v.Title },
		func(v *domain.Category, id string) { v.ID = id },
	)
	platforms := usecase.NewReferenceService[domain.Platform](
		&fakeRefRepo[domain.Platform]{id: platID}, &fakeRefMirror[domain.Platform]{id: platID, items: []*domain.Platform{{ID: "p-1", Title: "PC"}}}, log, "platforms",
		func(v *domain.Platform) string { return v.Title },
		func(v *domain.Platform, id string) { v.ID = id },
	)
	tags := usecase.NewReferenceService[domain.Tag](
		&fakeRefRepo[domain.Tag]{id: tagID}, &fakeRefMirror[domain.Tag]{id: tagID, items: []*domain.Tag{{ID: "t-1", Title: "indie"}}}, log, "tags",
		func(v *domain.Tag) string { return v.Title },
		func(v *domain.Tag, id string) { v.ID = id },
	)
	chiptags := usecase.NewReferenceService[domain.Chiptag](
		&fakeRefRepo[domain.Chiptag]{id: chipID}, &fakeRefMirror[domain.Chiptag]{id: chipID, items: []*domain.Chiptag{{ID: "ch-1", Title: "co-op"}}}, log, "chiptags",
		func(v *domain.Chiptag) string { return v.Title },
		func(v *domain.Chiptag, id string) { v.ID = id },
	)

	h := rest.NewHandler(catalog, categories, platforms, tags, chiptags, log, 0)
	return &testEnv{
		catalog:    catalog,
		categories: catMirror,
		router:     rest.NewRouter(h, "", ""),
	}
}

func doJSON(t *testing.T, r http.Handler, method, path string, body any) *httptest.ResponseRecorder {
	t.Helper()
	var rd *bytes.Reader
	if body != nil {
		b, err := json.Marshal(body)
		if err != nil {
			t.Fatalf("marshal body: %v", err)
		}
		rd = bytes.NewReader(b)
	} else {
		rd = bytes.NewReader(nil)
	}
	req := httptest.NewRequest(method, path, rd)
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

func TestListProducts_NoParams_FullCatalog(t *testing.T) {
	env := newTestRouter(t)

	want := []*domain.Product{{ID: "g-1", Title: "Elden Ring"}, {ID: "g-2", Title: "Hades"}}
	env.catalog.EXPECT().AllProducts(gomock.Any()).Return(want, nil)

	w := doJSON(t, env.router, http.MethodGet, "/products", nil)

	if w.Code != http.StatusOK {
		t.Fatalf("want 200, got %d, body=%s", w.Code, w.Body.String())
	}
	var got []*domain.Product
	if err := json.Unmarshal(w.Body.Bytes(), &got); err != nil {
		t.Fatalf("invalid json: %v", err)
	}
	if len(got) != 2 || got[0].ID != "g-1" || got[1].ID != "g-2" {
		t.Fatalf("unexpected result: %+v", got)
	}
}

func TestListProducts_WithFilter_Query(t *testing.T) {
	env := newTestRouter(t)

	wantFilter := domain.ProductFilter{CategoryID: "c-1", SortBy: "price", Desc: false}
	env.catalog.EXPECT().Query(gomock.Any(), wantFilter).Return([]*domain.Product{{ID: "g-1"}}, nil)

	w := doJSON(t, env.router, http.MethodGet, "/products?category=c-1&sort=price&order=asc", nil)

	if w.Code != http.StatusOK {
		t.Fatalf("want 200, got %d, body=%s", w.Code, w.Body.String())
	}
}

func TestListProducts_PriceRangeFilter(t *testing.T) {
	env := newTestRouter(t)

	lo, hi := 10.0, 59.99
	wantFilter := domain.ProductFilter{MinPrice: &lo, MaxPrice: &hi, Desc: true}
	env.catalog.EXPECT().Query(gomock.Any(), wantFilter).Return(nil, nil)

	w := doJSON(t, env.router, http.MethodGet, "/products?min_price=10&max_price=59.99", nil)

	if w.Code != http.StatusOK {
		t.Fatalf("want 200, got %d, body=%s", w.Code, w.Body.String())
	}
	// Пустая выборка сериализуется как [], не null.
	if w.Body.String() != "[]" {
		t.Fatalf("want [], got %s", w.Body.String())
	}
}

func TestListProducts_BadPrice(t *testing.T) {
	env := newTestRouter(t)

	w := doJSON(t, env.router, http.MethodGet, "/products?min_price=cheap", nil)

	if w.Code != http.StatusBadRequest {
		t.Fatalf("want 400, got %d, body=%s", w.Code, w.Body.String())
	}
}

func TestListProducts_InternalError(t *testing.T) {
	env := newTestRouter(t)

	env.catalog.EXPECT().AllProducts(gomock.Any()).Return(nil, errors.New("redis down"))

	w := doJSON(t, env.router, http.MethodGet, "/products", nil)

	if w.Code != http.StatusInternalServerError {
		t.Fatalf("want 500, got %d, body=%s", w.Code, w.Body.String())
	}
}

func TestSearchProducts(t *testing.T) {
	env := newTestRouter(t)

	env.catalog.EXPECT().SearchByTitle(gomock.Any(), "ring").
		Return([]*domain.Product{{ID: "g-1", Title: "Elden Ring"}}, nil)

	w := doJSON(t, env.router, http.MethodGet, "/products/search?q=ring", nil)

	if w.Code != http.StatusOK {
		t.Fatalf("want 200, got %d, body=%s", w.Code, w.Body.String())
	}
}

func TestProductsByIDs_Batch(t *testing.T) {
	env := newTestRouter(t)

	env.catalog.EXPECT().ProductsByIDs(gomock.Any(), []string{"g-1", "g-2"}).
		Return([]*domain.Product{{ID: "g-1"}, {ID: "g-2"}}, nil)

	w := doJSON(t, env.router, http.MethodGet, "/products/batch?ids=g-1,%20g-2", nil)

	if w.Code != http.StatusOK {
		t.Fatalf("want 200, got %d, body=%s", w.Code, w.Body.String())
	}
}

func TestProductsByIDs_EmptyIDs(t *testing.T) {
	env := newTestRouter(t)

	w := doJSON(t, env.router, http.MethodGet, "/products/batch?ids=,", nil)

	if w.Code != http.StatusBadRequest {
		t.Fatalf("want 400, got %d, body=%s", w.Code, w.Body.String())
	}
}

func TestProductsByCategory(t *testing.T) {
	env := newTestRouter(t)

	env.catalog.EXPECT().ProductsByCategory(gomock.Any(), "c-1").
		Return([]*domain.Product{{ID: "g-1"}}, nil)

	w := doJSON(t, env.router, http.MethodGet, "/products/category/c-1", nil)

	if w.Code != http.StatusOK {
		t.Fatalf("want 200, got %d, body=%s", w.Code, w.Body.String())
	}
}

func TestProductsByPriceRange(t *testing.T) {
	env := newTestRouter(t)

	env.catalog.EXPECT().ProductsByPriceRange(gomock.Any(), 10.0, 60.0).Return(nil, nil)

	w := doJSON(t, env.router, http.MethodGet, "/products/price?min=10&max=60", nil)

	if w.Code != http.StatusOK {
		t.Fatalf("want 200, got %d, body=%s", w.Code, w.Body.String())
	}
}

func TestProductsByPriceRange_BadBounds(t *testing.T) {
	env := newTestRouter(t)

	w := doJSON(t, env.router, http.MethodGet, "/products/price?min=10", nil)

	if w.Code != http.StatusBadRequest {
		t.Fatalf("want 400, got %d, body=%s", w.Code, w.Body.String())
	}
}

func TestGetProduct_Found(t *testing.T) {
	env := newTestRouter(t)

	env.catalog.EXPECT().ProductByID(gomock.Any(), "g-1").
		Return(&domain.Product{ID: "g-1", Title: "Elden Ring"}, nil)

	w := doJSON(t, env.router, http.MethodGet, "/products/g-1", nil)

	if w.Code != http.StatusOK {
		t.Fatalf("want 200, got %d, body=%s", w.Code, w.Body.String())
	}
	var got domain.Product
	if err := json.Unmarshal(w.Body.Bytes(), &got); err != nil {
		t.Fatalf("invalid json: %v", err)
	}
	if got.ID != "g-1" {
		t.Fatalf("wrong product: %+v", got)
	}
}

func TestGetProduct_NotFound(t *testing.T) {
	env := newTestRouter(t)

	env.catalog.EXPECT().ProductByID(gomock.Any(), "missing").Return(nil, nil)

	w := doJSON(t, env.router, http.MethodGet, "/products/missing", nil)

	if w.Code != http.StatusNotFound {
		t.Fatalf("want 404, got %d, body=%s", w.Code, w.Body.String())
	}
}

func TestAddProduct_Created(t *testing.T) {
	env := newTestRouter(t)

	env.catalog.EXPECT().AddProduct(gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, p *domain.Product) (*domain.Product, error) {
			p.ID = "g-new"
			return p, nil
		})

	w := doJSON(t, env.router, http.MethodPost, "/products",
		domain.Product{Title: "Hades II", Price: 29.99, CategoryID: "c-1"})

	if w.Code != http.StatusCreated {
		t.Fatalf("want 201, got %d, body=%s", w.Code, w.Body.String())
	}
	var got domain.Product
	if err := json.Unmarshal(w.Body.Bytes(), &got); err != nil {
		t.Fatalf("invalid json: %v", err)
	}
	if got.ID != "g-new" {
		t.Fatalf("id not assigned: %+v", got)
	}
}

func TestAddProduct_ValidationError(t *testing.T) {
	env := newTestRouter(t)

	env.catalog.EXPECT().AddProduct(gomock.Any(), gomock.Any()).
		Return(nil, validate.ErrInvalidProduct)

	w := doJSON(t, env.router, http.MethodPost, "/products", domain.Product{Title: ""})

	if w.Code != http.StatusBadRequest {
		t.Fatalf("want 400, got %d, body=%s", w.Code, w.Body.String())
	}
}

func TestTopByRating_Params(t *testing.T) {
	env := newTestRouter(t)

	env.catalog.EXPECT().TopByRating(gomock.Any(), 3, false).
		Return([]*domain.Product{{ID: "g-1"}}, nil)

	w := doJSON(t, env.router, http.MethodGet, "/products/top/rating?limit=3&order=asc", nil)

	if w.Code != http.StatusOK {
		t.Fatalf("want 200, got %d, body=%s", w.Code, w.Body.String())
	}
}

func TestTopByNetLikes_Defaults(t *testing.T) {
	env := newTestRouter(t)

	env.catalog.EXPECT().TopByNetLikes(gomock.Any(), 10, true).Return(nil, nil)

	w := doJSON(t, env.router, http.MethodGet, "/products/top/likes", nil)

	if w.Code != http.StatusOK {
		t.Fatalf("want 200, got %d, body=%s", w.Code, w.Body.String())
	}
}

func TestRecordRating_OK(t *testing.T) {
	env := newTestRouter(t)

	env.catalog.EXPECT().RecordRating(gomock.Any(), "g-1", 4).Return(nil)

	w := doJSON(t, env.router, http.MethodPost, "/products/g-1/rating", map[string]int{"rating": 4})

	if w.Code != http.StatusNoContent {
		t.Fatalf("want 204, got %d, body=%s", w.Code, w.Body.String())
	}
}

func TestRecordRating_OutOfRange(t *testing.T) {
	env := newTestRouter(t)

	w := doJSON(t, env.router, http.MethodPost, "/products/g-1/rating", map[string]int{"rating": 6})

	if w.Code != http.StatusBadRequest {
		t.Fatalf("want 400, got %d, body=%s", w.Code, w.Body.String())
	}
}

func TestRecordVotes_OK(t *testing.T) {
	env := newTestRouter(t)

	env.catalog.EXPECT().RecordVotes(gomock.Any(), "g-1", 10, 2).Return(nil)

	w := doJSON(t, env.router, http.MethodPost, "/products/g-1/votes",
		map[string]int{"likes": 10, "dislikes": 2})

	if w.Code != http.StatusNoContent {
		t.Fatalf("want 204, got %d, body=%s", w.Code, w.Body.String())
	}
}

func TestRecordVotes_Negative(t *testing.T) {
	env := newTestRouter(t)

	w := doJSON(t, env.router, http.MethodPost, "/products/g-1/votes",
		map[string]int{"likes": -1, "dislikes": 0})

	if w.Code != http.StatusBadRequest {
		t.Fatalf("want 400, got %d, body=%s", w.Code, w.Body.String())
	}
}

func TestListCategories_Search(t *testing.T) {
	env := newTestRouter(t)

	w := doJSON(t, env.router, http.MethodGet, "/categories?q=rpg", nil)

	if w.Code != http.StatusOK {
		t.Fatalf("want 200, got %d, body=%s", w.Code, w.Body.String())
	}
	var got []*domain.Category
	if err := json.Unmarshal(w.Body.Bytes(), &got); err != nil {
		t.Fatalf("invalid json: %v", err)
	}
	if len(got) != 1 || got[0].Title != "RPG" {
		t.Fatalf("unexpected result: %+v", got)
	}
}

func TestGetCategory_Found(t *testing.T) {
	env := newTestRouter(t)

	w := doJSON(t, env.router, http.MethodGet, "/categories/c-2", nil)

	if w.Code != http.StatusOK {
		t.Fatalf("want 200, got %d, body=%s", w.Code, w.Body.String())
	}
	var got domain.Category
	if err := json.Unmarshal(w.Body.Bytes(), &got); err != nil {
		t.Fatalf("invalid json: %v", err)
	}
	if got.ID != "c-2" || got.Title != "Strategy" {
		t.Fatalf("unexpected category: %+v", got)
	}
}

func TestGetCategory_NotFound(t *testing.T) {
	env := newTestRouter(t)

	w := doJSON(t, env.router, http.MethodGet, "/categories/missing", nil)

	if w.Code != http.StatusNotFound {
		t.Fatalf("want 404, got %d, body=%s", w.Code, w.Body.String())
	}
}

func TestAddCategory_EmptyTitle(t *testing.T) {
	env := newTestRouter(t)

	w := doJSON(t, env.router, http.MethodPost, "/categories", map[string]string{"title": "  "})

	if w.Code != http.StatusBadRequest {
		t.Fatalf("want 400, got %d, body=%s", w.Code, w.Body.String())
	}
}

func TestAddPlatform_Created(t *testing.T) {
	env := newTestRouter(t)

	w := doJSON(t, env.router, http.MethodPost, "/platforms", map[string]string{"title": "PS5"})

	if w.Code != http.StatusCreated {
		t.Fatalf("want 201, got %d, body=%s", w.Code, w.Body.String())
	}
	var got domain.Platform
	if err := json.Unmarshal(w.Body.Bytes(), &got); err != nil {
		t.Fatalf("invalid json: %v", err)
	}
	if got.ID == "" || got.Title != "PS5" {
		t.Fatalf("unexpected platform: %+v", got)
	}
}

func TestChiptags_ListAndGet(t *testing.T) {
	env := newTestRouter(t)

	w := doJSON(t, env.router, http.MethodGet, "/chiptags", nil)
	if w.Code != http.StatusOK {
		t.Fatalf("want 200, got %d, body=%s", w.Code, w.Body.String())
	}
	var got []*domain.Chiptag
	if err := json.Unmarshal(w.Body.Bytes(), &got); err != nil {
		t.Fatalf("invalid json: %v", err)
	}
	if len(got) != 1 || got[0].Title != "co-op" {
		t.Fatalf("unexpected result: %+v", got)
	}

	w = doJSON(t, env.router, http.MethodGet, "/chiptags/ch-1", nil)
	if w.Code != http.StatusOK {
		t.Fatalf("want 200, got %d, body=%s", w.Code, w.Body.String())
	}
}

func TestAddChiptag_Created(t *testing.T) {
	env := newTestRouter(t)

	w := doJSON(t, env.router, http.MethodPost, "/chiptags", map[string]string{"title": "roguelike"})

	if w.Code != http.StatusCreated {
		t.Fatalf("want 201, got %d, body=%s", w.Code, w.Body.String())
	}
	var got domain.Chiptag
	if err := json.Unmarshal(w.Body.Bytes(), &got); err != nil {
		t.Fatalf("invalid json: %v", err)
	}
	if got.ID == "" || got.Title != "roguelike" {
		t.Fatalf("unexpected chiptag: %+v", got)
	}
}

func TestPing(t *testing.T) {
	env := newTestRouter(t)

	w := doJSON(t, env.router, http.MethodGet, "/ping", nil)

	if w.Code != http.StatusOK || w.Body.String() != "pong" {
		t.Fatalf("unexpected ping response: %d %s", w.Code, w.Body.String())
	}
}

func TestMethodNotAllowed_SetsAllow(t *testing.T) {
	env := newTestRouter(t)

	w := doJSON(t, env.router, http.MethodDelete, "/products/search", nil)

	if w.Code != http.StatusMethodNotAllowed {
		t.Fatalf("want 405, got %d, body=%s", w.Code, w.Body.String())
	}
	if allow := w.Header().Get("Allow"); allow == "" {
		t.Fatalf("Allow header is empty")
	}
}

func TestUnknownRoute_NotFound(t *testing.T) {
	env := newTestRouter(t)

	w := doJSON(t, env.router, http.MethodGet, "/no/such/route", nil)

	if w.Code != http.StatusNotFound {
		t.Fatalf("want 404, got %d", w.Code)
	}
}
