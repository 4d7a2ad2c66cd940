package http

import (
	"io"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"

	"github.com/mrlokans/bookstore/internal/apperrors"
	"github.com/mrlokans/bookstore/internal/auth"
	"github.com/mrlokans/bookstore/internal/logging"
)

// NewRouter creates and configures the HTTP router with all endpoints.
func NewRouter(cfg RouterConfig) *gin.Engine {
	log := cfg.Logger
	if log == nil {
		log = logrus.StandardLogger()
	}

	router := gin.New()
	router.Use(logging.GinMiddleware(log))
	router.Use(gin.CustomRecoveryWithWriter(io.Discard, func(c *gin.Context, recovered any) {
		log.WithFields(logrus.Fields{
			"panic":  recovered,
			"method": c.Request.Method,
			"path":   c.Request.URL.Path,
		}).Error("recovered from panic")
		c.AbortWithStatusJSON(http.StatusInternalServerError, ErrorResponse{
			Message: "internal server error",
			Code:    apperrors.CodeInternal,
		})
	}))

	// Apply security headers to all responses
	router.Use(auth.SecurityHeadersMiddleware())
	router.Use(auth.StrictTransportSecurityMiddleware())

	router.NoRoute(func(c *gin.Context) {
		c.JSON(http.StatusNotFound, ErrorResponse{Message: "route not found", Code: apperrors.CodeNotFound})
	})

	healthController := NewHealthController(cfg.Database, cfg.Version)
	router.GET("/health", healthController.Status)
	router.GET("/ping", healthController.Ping)

	requireToken := cfg.AuthMiddleware.RequireToken()

	api := router.Group("/api")

	authController := NewAuthController(cfg.Auth, log)
	api.POST("/signup", authController.Signup)
	api.POST("/login", authController.Login)

	authorsController := NewAuthorsController(cfg.Catalog, log)
	api.GET("/authors", authorsController.List)
	api.GET("/authors/:id", authorsController.Get)
	api.POST("/authors/add", requireToken, authorsController.Add)
	api.PUT("/authors/update/:id", requireToken, authorsController.Update)
	api.DELETE("/authors/delete/:id", requireToken, authorsController.Delete)

	categoriesController := NewCategoriesController(cfg.Catalog, log)
	api.GET("/categories", categoriesController.List)
	api.POST("/categories/add", requireToken, categoriesController.Add)
	api.DELETE("/categories/delete/:id", requireToken, categoriesController.Delete)

	booksController := NewBooksController(cfg.Catalog, log)
	api.GET("/books", booksController.List)
	api.GET("/books/search", booksController.SearchByName)
	api.GET("/books/search/price", booksController.SearchByMaxPrice)
	api.POST("/books/add", requireToken, booksController.Add)

	return router
}
