package http

import (
	"github.com/sirupsen/logrus"

	"github.com/mrlokans/bookstore/internal/auth"
)

// RouterConfig contains all dependencies and configuration needed
// to create the HTTP router.
type RouterConfig struct {
	// Core dependencies
	Auth     AuthService
	Catalog  CatalogService
	Database Pinger

	// Bearer token gate for mutating endpoints
	AuthMiddleware *auth.Middleware

	Logger *logrus.Logger

	// Application info
	Version string
}
