package rest

import (
	"errors"
	"net/http"
	"strconv"
	"strings"

	"github.com/gin-gonic/gin"

	"github.com/sendbol/videoshop-catalog/internal/domain"
	"github.com/sendbol/videoshop-catalog/pkg/httpx"
	"github.com/sendbol/videoshop-catalog/pkg/validate"
)

const maxRating = 5

// listProducts — GET /products.
// Без параметров — весь каталог; с параметрами — составной запрос
// (category, platform, min_price, max_price, sort, order).
func (h *Handler) listProducts(c *gin.Context) {
	ctx, cancel := h.reqCtx(c)
	defer cancel()

	f, hasFilter, err := parseFilter(c)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	var products []*domain.Product
	if hasFilter {
		products, err = h.catalog.Query(ctx, f)
	} else {
		products, err = h.catalog.AllProducts(ctx)
	}
	if err != nil {
		h.log.Errorf(ctx, "list products failed err=%v", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "internal server error"})
		return
	}
	c.JSON(http.StatusOK, emptyAsList(products))
}

// searchProducts — GET /products/search?q=...
func (h *Handler) searchProducts(c *gin.Context) {
	ctx, cancel := h.reqCtx(c)
	defer cancel()

	products, err := h.catalog.SearchByTitle(ctx, c.Query("q"))
	if err != nil {
		h.log.Errorf(ctx, "search products failed err=%v", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "internal server error"})
		return
	}
	c.JSON(http.StatusOK, emptyAsList(products))
}

// getProductByID — GET /products/:id.
func (h *Handler) getProductByID(c *gin.Context) {
	ctx, cancel := h.reqCtx(c)
	defer cancel()

	id := c.Param("id")
	product, err := h.catalog.ProductByID(ctx, id)
	if err != nil {
		h.log.Errorf(ctx, "ProductByID failed id=%s err=%v", id, err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "internal server error"})
		return
	}
	if product == nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "product not found"})
		return
	}
	c.JSON(http.StatusOK, product)
}

// addProduct — POST /products.
func (h *Handler) addProduct(c *gin.Context) {
	ctx, cancel := h.reqCtx(c)
	defer cancel()

	var p domain.Product
	if err := c.ShouldBindJSON(&p); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid json"})
		return
	}

	created, err := h.catalog.AddProduct(ctx, &p)
	if err != nil {
		if errors.Is(err, validate.ErrInvalidProduct) {
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
			return
		}
		h.log.Errorf(ctx, "AddProduct failed err=%v", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "internal server error"})
		return
	}
	c.JSON(http.StatusCreated, created)
}

// productsByIDs — GET /products/batch?ids=a,b,c. Порядок выдачи — порядок
// запрошенных id, неизвестные молча пропускаются.
func (h *Handler) productsByIDs(c *gin.Context) {
	ctx, cancel := h.reqCtx(c)
	defer cancel()

	var ids []string
	for _, raw := range strings.Split(c.Query("ids"), ",") {
		if id := strings.TrimSpace(raw); id != "" {
			ids = append(ids, id)
		}
	}
	if len(ids) == 0 {
		c.JSON(http.StatusBadRequest, gin.H{"error": "ids is required"})
		return
	}

	products, err := h.catalog.ProductsByIDs(ctx, ids)
	if err != nil {
		h.log.Errorf(ctx, "ProductsByIDs failed err=%v", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "internal server error"})
		return
	}
	c.JSON(http.StatusOK, emptyAsList(products))
}

// productsByCategory — GET /products/category/:id.
func (h *Handler) productsByCategory(c *gin.Context) {
	ctx, cancel := h.reqCtx(c)
	defer cancel()

	products, err := h.catalog.ProductsByCategory(ctx, c.Param("id"))
	if err != nil {
		h.log.Errorf(ctx, "ProductsByCategory failed err=%v", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "internal server error"})
		return
	}
	c.JSON(http.StatusOK, emptyAsList(products))
}

// productsByPlatform — GET /products/platform/:id.
func (h *Handler) productsByPlatform(c *gin.Context) {
	ctx, cancel := h.reqCtx(c)
	defer cancel()

	products, err := h.catalog.ProductsByPlatform(ctx, c.Param("id"))
	if err != nil {
		h.log.Errorf(ctx, "ProductsByPlatform failed err=%v", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "internal server error"})
		return
	}
	c.JSON(http.StatusOK, emptyAsList(products))
}

// productsByPriceRange — GET /products/price?min=&max=. Границы включительные.
func (h *Handler) productsByPriceRange(c *gin.Context) {
	ctx, cancel := h.reqCtx(c)
	defer cancel()

	min, errMin := strconv.ParseFloat(c.Query("min"), 64)
	max, errMax := strconv.ParseFloat(c.Query("max"), 64)
	if errMin != nil || errMax != nil || min < 0 || max < 0 {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid price bounds"})
		return
	}

	products, err := h.catalog.ProductsByPriceRange(ctx, min, max)
	if err != nil {
		h.log.Errorf(ctx, "ProductsByPriceRange failed err=%v", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "internal server error"})
		return
	}
	c.JSON(http.StatusOK, emptyAsList(products))
}

// topByRating — GET /products/top/rating?limit=&order=
func (h *Handler) topByRating(c *gin.Context) {
	ctx, cancel := h.reqCtx(c)
	defer cancel()

	limit, desc := parseTopParams(c)
	products, err := h.catalog.TopByRating(ctx, limit, desc)
	if err != nil {
		h.log.Errorf(ctx, "TopByRating failed err=%v", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "internal server error"})
		return
	}
	c.JSON(http.StatusOK, emptyAsList(products))
}

// topByNetLikes — GET /products/top/likes?limit=&order=
func (h *Handler) topByNetLikes(c *gin.Context) {
	ctx, cancel := h.reqCtx(c)
	defer cancel()

	limit, desc := parseTopParams(c)
	products, err := h.catalog.TopByNetLikes(ctx, limit, desc)
	if err != nil {
		h.log.Errorf(ctx, "TopByNetLikes failed err=%v", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "internal server error"})
		return
	}
	c.JSON(http.StatusOK, emptyAsList(products))
}

// recordRating — POST /products/:id/rating {"rating": 0..5}.
func (h *Handler) recordRating(c *gin.Context) {
	ctx, cancel := h.reqCtx(c)
	defer cancel()

	id := c.Param("id")
	var body struct {
		Rating int `json:"rating"`
	}
	if err := c.ShouldBindJSON(&body); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid json"})
		return
	}
	if body.Rating < 0 || body.Rating > maxRating {
		c.JSON(http.StatusBadRequest, gin.H{"error": "rating out of range"})
		return
	}

	if err := h.catalog.RecordRating(ctx, id, body.Rating); err != nil {
		h.log.Errorf(ctx, "RecordRating failed id=%s err=%v", id, err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "internal server error"})
		return
	}
	c.Status(http.StatusNoContent)
}

// recordVotes — POST /products/:id/votes {"likes": n, "dislikes": m}.
func (h *Handler) recordVotes(c *gin.Context) {
	ctx, cancel := h.reqCtx(c)
	defer cancel()

	id := c.Param("id")
	var body struct {
		Likes    int `json:"likes"`
		Dislikes int `json:"dislikes"`
	}
	if err := c.ShouldBindJSON(&body); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid json"})
		return
	}
	if body.Likes < 0 || body.Dislikes < 0 {
		c.JSON(http.StatusBadRequest, gin.H{"error": "negative counters"})
		return
	}

	if err := h.catalog.RecordVotes(ctx, id, body.Likes, body.Dislikes); err != nil {
		h.log.Errorf(ctx, "RecordVotes failed id=%s err=%v", id, err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "internal server error"})
		return
	}
	c.Status(http.StatusNoContent)
}

// ---- разбор параметров ----

// parseFilter — фильтр из query; hasFilter=false, если параметров нет вовсе.
func parseFilter(c *gin.Context) (domain.ProductFilter, bool, error) {
	var (
		f   domain.ProductFilter
		has bool
	)

	if v := c.Query("category"); v != "" {
		f.CategoryID = v
		has = true
	}
	if v := c.Query("platform"); v != "" {
		f.PlatformID = v
		has = true
	}
	if v := c.Query("min_price"); v != "" {
		p, err := strconv.ParseFloat(v, 64)
		if err != nil || p < 0 {
			return f, false, errors.New("invalid min_price")
		}
		f.MinPrice = &p
		has = true
	}
	if v := c.Query("max_price"); v != "" {
		p, err := strconv.ParseFloat(v, 64)
		if err != nil || p < 0 {
			return f, false, errors.New("invalid max_price")
		}
		f.MaxPrice = &p
		has = true
	}
	if v := c.Query("sort"); v != "" {
		f.SortBy = v
		has = true
	}
	f.Desc = c.DefaultQuery("order", "desc") != "asc"

	return f, has, nil
}

// parseTopParams — limit (1..1000, по умолчанию 10) и направление сортировки.
func parseTopParams(c *gin.Context) (limit int, desc bool) {
	limit = httpx.ParseBoundedInt(c, "limit", 10, 1, 1000)
	desc = c.DefaultQuery("order", "desc") != "asc"
	return
}

// emptyAsList — отдаём [] вместо null для пустых выборок.
func emptyAsList(products []*domain.Product) []*domain.Product {
	if products == nil {
		return []*domain.Product{}
	}
	return products
}
