package rest

import (
	"context"
	"net/http"
	"path/filepath"
	"strings"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"go.opentelemetry.io/contrib/instrumentation/github.com/gin-gonic/gin/otelgin"

	"github.com/sendbol/videoshop-catalog/internal/domain"
	"github.com/sendbol/videoshop-catalog/internal/ports"
	"github.com/sendbol/videoshop-catalog/internal/usecase"
	"github.com/sendbol/videoshop-catalog/pkg/httpx"
)

// Handler — HTTP-обработчики каталога. Зависит от портов, а не реализаций.
type Handler struct {
	catalog    ports.CatalogService
	categories *usecase.ReferenceService[domain.Category]
	platforms  *usecase.ReferenceService[domain.Platform]
	tags       *usecase.ReferenceService[domain.Tag]
	chiptags   *usecase.ReferenceService[domain.Chiptag]
	log        ports.Logger

	// handlerTimeout — бюджет на обработку одного запроса; 0 — без ограничения.
	handlerTimeout time.Duration
}

func NewHandler(
	catalog ports.CatalogService,
	categories *usecase.ReferenceService[domain.Category],
	platforms *usecase.ReferenceService[domain.Platform],
	tags *usecase.ReferenceService[domain.Tag],
	chiptags *usecase.ReferenceService[domain.Chiptag],
	log ports.Logger,
	handlerTimeout time.Duration,
) *Handler {
	return &Handler{
		catalog:        catalog,
		categories:     categories,
		platforms:      platforms,
		tags:           tags,
		chiptags:       chiptags,
		log:            log,
		handlerTimeout: handlerTimeout,
	}
}

// NewRouter — маршруты и middleware. otelServiceName != "" включает otelgin.
func NewRouter(h *Handler, staticDir, otelServiceName string) *gin.Engine {
	r := gin.New()
	r.Use(gin.Recovery())
	r.Use(httpx.RequestIDMiddleware())
	if otelServiceName != "" {
		r.Use(otelgin.Middleware(otelServiceName))
	}
	r.Use(httpx.RequestLogger(h.log))

	r.HandleMethodNotAllowed = true
	r.NoMethod(func(c *gin.Context) {
		if allowed := allowedMethods(r, c.Request.URL.Path); len(allowed) > 0 {
			c.Header("Allow", strings.Join(allowed, ", "))
		}
		c.JSON(http.StatusMethodNotAllowed, gin.H{"error": "method not allowed"})
	})

	r.GET("/ping", func(c *gin.Context) { c.String(http.StatusOK, "pong") })
	r.GET("/metrics", gin.WrapH(promhttp.Handler()))

	products := r.Group("/products")
	{
		products.GET("", h.listProducts)
		products.POST("", h.addProduct)
		products.GET("/search", h.searchProducts)
		products.GET("/batch", h.productsByIDs)
		products.GET("/category/:id", h.productsByCategory)
		products.GET("/platform/:id", h.productsByPlatform)
		products.GET("/price", h.productsByPriceRange)
		products.GET("/top/rating", h.topByRating)
		products.GET("/top/likes", h.topByNetLikes)
		products.GET("/:id", h.getProductByID)
		products.POST("/:id/rating", h.recordRating)
		products.POST("/:id/votes", h.recordVotes)
	}

	r.GET("/categories", h.listCategories)
	r.GET("/categories/:id", h.getCategory)
	r.POST("/categories", h.addCategory)
	r.GET("/platforms", h.listPlatforms)
	r.GET("/platforms/:id", h.getPlatform)
	r.POST("/platforms", h.addPlatform)
	r.GET("/tags", h.listTags)
	r.GET("/tags/:id", h.getTag)
	r.POST("/tags", h.addTag)
	r.GET("/chiptags", h.listChiptags)
	r.GET("/chiptags/:id", h.getChiptag)
	r.POST("/chiptags", h.addChiptag)

	if staticDir != "" {
		r.Static("/static", staticDir)
		r.StaticFile("/", filepath.Join(staticDir, "index.html"))
	}

	return r
}

// allowedMethods — методы, зарегистрированные для пути (для заголовка Allow).
func allowedMethods(r *gin.Engine, path string) []string {
	var methods []string
	for _, route := range r.Routes() {
		if routeMatches(route.Path, path) {
			methods = append(methods, route.Method)
		}
	}
	return methods
}

// routeMatches — посегментное сравнение шаблона gin с конкретным путём.
func routeMatches(pattern, path string) bool {
	pp := strings.Split(strings.Trim(pattern, "/"), "/")
	sp := strings.Split(strings.Trim(path, "/"), "/")
	if len(pp) != len(sp) {
		return false
	}
	for i := range pp {
		if strings.HasPrefix(pp[i], ":") || strings.HasPrefix(pp[i], "*") {
			continue
		}
		if pp[i] != sp[i] {
			return false
		}
	}
	return true
}

// reqCtx — контекст запроса с бюджетом handlerTimeout.
func (h *Handler) reqCtx(c *gin.Context) (context.Context, context.CancelFunc) {
	ctx := c.Request.Context()
	if h.handlerTimeout > 0 {
		return context.WithTimeout(ctx, h.handlerTimeout)
	}
	return ctx, func() {}
}
