package entrypoint

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"

	"github.com/mrlokans/bookstore/internal/auth"
	"github.com/mrlokans/bookstore/internal/catalog"
	"github.com/mrlokans/bookstore/internal/config"
	"github.com/mrlokans/bookstore/internal/database"
	http_controllers "github.com/mrlokans/bookstore/internal/http"
	"github.com/mrlokans/bookstore/internal/logging"
)

// ShutdownFunc is called once the server has stopped accepting requests.
type ShutdownFunc func(ctx context.Context)

// App holds the wired application.
type App struct {
	Router *gin.Engine
	DB     *database.Database
	Auth   *auth.Service
}

// Close releases the database connection.
func (a *App) Close() error {
	return a.DB.Close()
}

// TokenSecret returns the configured signing key, or a random one when none is set.
func TokenSecret(cfg config.Auth, log *logrus.Logger) ([]byte, error) {
	if cfg.TokenSecret != "" {
		return []byte(cfg.TokenSecret), nil
	}

	secret, err := auth.GenerateTokenSecret()
	if err != nil {
		return nil, fmt.Errorf("failed to generate token secret: %w", err)
	}
	log.Warn("AUTH_TOKEN_SECRET is not set, generated a random secret; tokens will not survive a restart")
	return secret, nil
}

// Build opens the database and wires services, middleware and router.
func Build(cfg *config.Config, log *logrus.Logger, version string) (*App, error) {
	db, err := database.NewDatabase(cfg.Database)
	if err != nil {
		return nil, fmt.Errorf("failed to initialize database: %w", err)
	}
	log.WithField("driver", db.Driver).Info("database ready")

	secret, err := TokenSecret(cfg.Auth, log)
	if err != nil {
		db.Close()
		return nil, err
	}

	tokens := auth.NewTokenManager(secret, cfg.Auth.TokenIssuer, cfg.Auth.TokenExpiry)
	authService := auth.NewService(db.DB, tokens, cfg.Auth)

	router := http_controllers.NewRouter(http_controllers.RouterConfig{
		Auth:           authService,
		Catalog:        catalog.NewService(db.DB),
		Database:       db,
		AuthMiddleware: auth.NewMiddleware(authService),
		Logger:         log,
		Version:        version,
	})

	return &App{Router: router, DB: db, Auth: authService}, nil
}

// Serve runs the HTTP server until SIGINT or SIGTERM, then shuts it down gracefully.
func Serve(router http.Handler, cfg *config.Config, log *logrus.Logger, onShutdown ShutdownFunc) error {
	timeout := time.Duration(cfg.Global.ShutdownTimeoutInSeconds) * time.Second

	srv := &http.Server{
		Addr:              fmt.Sprintf("%s:%d", cfg.HTTP.Host, cfg.HTTP.Port),
		Handler:           router,
		ReadHeaderTimeout: 10 * time.Second,
	}

	serveErr := make(chan error, 1)
	go func() {
		log.Infof("Starting server at %s", srv.Addr)
		// service connections
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			serveErr <- err
		}
	}()

	// kill (no param) default send syscall.SIGTERM
	// kill -2 is syscall.SIGINT
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	defer signal.Stop(quit)

	select {
	case err := <-serveErr:
		if onShutdown != nil {
			onShutdown(context.Background())
		}
		return fmt.Errorf("listen: %w", err)
	case <-quit:
	}
	log.Infof("Shutdown Server, waiting %v before killing", timeout)

	ctx, cancel := context.WithTimeout(context.Background(), timeout)
	defer cancel()

	shutdownErr := srv.Shutdown(ctx)
	if onShutdown != nil {
		onShutdown(ctx)
	}
	if shutdownErr != nil {
		return fmt.Errorf("server shutdown: %w", shutdownErr)
	}

	log.Info("Server exiting")
	return nil
}

func Run(cfg *config.Config, version string) error {
	log := logging.New(cfg.Log)
	log.Infof("Starting Bookstore v%s", version)

	gin.SetMode(cfg.HTTP.GinMode)

	app, err := Build(cfg, log, version)
	if err != nil {
		return err
	}

	return Serve(app.Router, cfg, log, func(context.Context) {
		if err := app.Close(); err != nil {
			log.WithError(err).Error("Error closing database")
		}
	})
}
