package rest

import (
	"context"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"

	"github.com/sendbol/videoshop-catalog/internal/domain"
)

// Хэндлеры справочных коллекций. Все коллекции устроены одинаково, поэтому
// выражены через общие listReference/getReference/addReference поверх
// дженерик-сервиса.

func (h *Handler) listCategories(c *gin.Context) {
	listReference(h, c, "categories", h.categories.SearchByTitle)
}

func (h *Handler) getCategory(c *gin.Context) {
	getReference(h, c, "categories", h.categories.GetByID)
}

func (h *Handler) addCategory(c *gin.Context) {
	addReference(h, c, "categories", func(v *domain.Category) string { return v.Title }, h.categories.Add)
}

func (h *Handler) listPlatforms(c *gin.Context) {
	listReference(h, c, "platforms", h.platforms.SearchByTitle)
}

func (h *Handler) getPlatform(c *gin.Context) {
	getReference(h, c, "platforms", h.platforms.GetByID)
}

func (h *Handler) addPlatform(c *gin.Context) {
	addReference(h, c, "platforms", func(v *domain.Platform) string { return v.Title }, h.platforms.Add)
}

func (h *Handler) listTags(c *gin.Context) {
	listReference(h, c, "tags", h.tags.SearchByTitle)
}

func (h *Handler) getTag(c *gin.Context) {
	getReference(h, c, "tags", h.tags.GetByID)
}

func (h *Handler) addTag(c *gin.Context) {
	addReference(h, c, "tags", func(v *domain.Tag) string { return v.Title }, h.tags.Add)
}

func (h *Handler) listChiptags(c *gin.Context) {
	listReference(h, c, "chiptags", h.chiptags.SearchByTitle)
}

func (h *Handler) getChiptag(c *gin.Context) {
	getReference(h, c, "chiptags", h.chiptags.GetByID)
}

func (h *Handler) addChiptag(c *gin.Context) {
	addReference(h, c, "chiptags", func(v *domain.Chiptag) string { return v.Title }, h.chiptags.Add)
}

// listReference — GET коллекции; ?q= сужает выдачу подстрочным поиском.
func listReference[T any](
	h *Handler,
	c *gin.Context,
	collection string,
	search func(ctx context.Context, query string) ([]*T, error),
) {
	ctx, cancel := h.reqCtx(c)
	defer cancel()

	items, err := search(ctx, c.Query("q"))
	if err != nil {
		h.log.Errorf(ctx, "list %s failed err=%v", collection, err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "internal server error"})
		return
	}
	if items == nil {
		items = []*T{}
	}
	c.JSON(http.StatusOK, items)
}

// getReference — GET одной записи; отсутствие отличается от ошибки хранилища.
func getReference[T any](
	h *Handler,
	c *gin.Context,
	collection string,
	get func(ctx context.Context, id string) (*T, error),
) {
	ctx, cancel := h.reqCtx(c)
	defer cancel()

	v, err := get(ctx, c.Param("id"))
	if err != nil {
		h.log.Errorf(ctx, "get %s failed id=%s err=%v", collection, c.Param("id"), err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "internal server error"})
		return
	}
	if v == nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "not found"})
		return
	}
	c.JSON(http.StatusOK, v)
}

// addReference — POST в коллекцию; пустое название отклоняется до хранилища.
func addReference[T any](
	h *Handler,
	c *gin.Context,
	collection string,
	title func(v *T) string,
	add func(ctx context.Context, v *T) (*T, error),
) {
	ctx, cancel := h.reqCtx(c)
	defer cancel()

	var v T
	if err := c.ShouldBindJSON(&v); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid json"})
		return
	}
	if strings.TrimSpace(title(&v)) == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "title is required"})
		return
	}

	created, err := add(ctx, &v)
	if err != nil {
		h.log.Errorf(ctx, "add %s failed err=%v", collection, err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "internal server error"})
		return
	}
	c.JSON(http.StatusCreated, created)
}
