// Package app wires configuration, storage, optional infrastructure and the
// HTTP router into a runnable server.
package app

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	_ "socialnet/docs" // Swagger docs
	httpctl "socialnet/internal/controller/http"
	"socialnet/internal/model"
	"socialnet/internal/repo"
	"socialnet/internal/repo/inmemory"
	"socialnet/internal/repo/persistent"
	"socialnet/internal/usecase"
	"socialnet/pkg/cache"
	"socialnet/pkg/config"
	"socialnet/pkg/database"
	"socialnet/pkg/jwt"
	"socialnet/pkg/logger"
	"socialnet/pkg/middleware"
	"socialnet/pkg/queue"
	"socialnet/pkg/s3"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/redis/go-redis/v9"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
	"gorm.io/gorm"
)

const shutdownTimeout = 5 * time.Second

type repositories struct {
	users     repo.UserRepository
	posts     repo.PostRepository
	comments  repo.CommentRepository
	likes     repo.LikeRepository
	relations repo.RelationRepository
}

type App struct {
	cfg         *config.Config
	log         *logger.Logger
	db          *gorm.DB
	redisClient *redis.Client
	queueClient *queue.Client
	router      *gin.Engine
}

// New connects to every configured backend and builds the router. Redis,
// S3 and RabbitMQ are skipped when their host or bucket is not set.
func New(cfg *config.Config, log *logger.Logger) (*App, error) {
	a := &App{cfg: cfg, log: log}

	repos, err := a.openStorage()
	if err != nil {
		return nil, err
	}

	if cfg.RedisEnabled() {
		a.redisClient, err = cache.NewRedisClient(cfg)
		if err != nil {
			a.Close()
			return nil, err
		}
		log.Info("Redis connected at %s:%s", cfg.RedisHost, cfg.RedisPort)
	}

	var storage usecase.ObjectStorage
	if cfg.S3Enabled() {
		s3Client, err := s3.NewClient(cfg)
		if err != nil {
			a.Close()
			return nil, err
		}
		storage = s3Client
		log.Info("Object storage enabled, bucket=%s", cfg.S3BucketName)
	}

	var publisher usecase.EventPublisher
	if cfg.RabbitMQEnabled() {
		a.queueClient, err = queue.NewRabbitMQClient(cfg, log)
		if err != nil {
			a.Close()
			return nil, err
		}
		publisher = a.queueClient
	}

	jwtService := jwt.NewService(cfg.JWTSecret, cfg.JWTExpiration)

	handlers := httpctl.Handlers{
		User:        httpctl.NewUserHandler(usecase.NewUserUseCase(repos.users, storage, a.redisClient, log), log),
		Auth:        httpctl.NewAuthHandler(usecase.NewAuthUseCase(repos.users, jwtService, log), log),
		Post:        httpctl.NewPostHandler(usecase.NewPostUseCase(repos.posts, a.redisClient, log), log),
		Interaction: httpctl.NewInteractionHandler(usecase.NewInteractionUseCase(repos.posts, repos.likes, repos.comments, publisher, log), log),
		Relation:    httpctl.NewRelationHandler(usecase.NewRelationUseCase(repos.users, repos.relations, publisher, log), log),
	}

	var authLimiter gin.HandlerFunc
	if a.redisClient != nil {
		authLimiter = middleware.RateLimitMiddleware(a.redisClient, cfg.AuthRateLimit, cfg.AuthRateWindow)
	}

	r := gin.New()
	if err := r.SetTrustedProxies(cfg.TrustedProxies); err != nil {
		a.Close()
		return nil, fmt.Errorf("invalid trusted proxies: %w", err)
	}
	r.Use(gin.Recovery())
	r.Use(middleware.RequestLogger(log))
	r.Use(cors.New(cors.Config{
		AllowOrigins:     cfg.CORSAllowedOrigins,
		AllowMethods:     []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowHeaders:     []string{"Origin", "Content-Type", "Authorization", "Accept"},
		ExposeHeaders:    []string{"Content-Length"},
		AllowCredentials: true,
		MaxAge:           12 * time.Hour,
	}))

	r.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))
	httpctl.RegisterRoutes(r, handlers, jwtService, authLimiter)

	a.router = r
	return a, nil
}

func (a *App) openStorage() (*repositories, error) {
	switch a.cfg.StorageDriver {
	case "memory":
		a.log.Warn("Using in-memory storage; data is lost on exit")
		store := inmemory.NewStore()
		return &repositories{
			users:     store.Users(),
			posts:     store.Posts(),
			comments:  store.Comments(),
			likes:     store.Likes(),
			relations: store.Relations(),
		}, nil
	case "postgres":
		db, err := database.NewPostgresDB(a.cfg)
		if err != nil {
			return nil, err
		}
		a.db = db

		// Production schemas are managed by goose, see cmd/migrate.
		if a.cfg.DBAutoMigrate {
			if err := db.AutoMigrate(model.All()...); err != nil {
				a.Close()
				return nil, fmt.Errorf("failed to migrate database: %w", err)
			}
		}
		return &repositories{
			users:     persistent.NewUserRepository(db),
			posts:     persistent.NewPostRepository(db),
			comments:  persistent.NewCommentRepository(db),
			likes:     persistent.NewLikeRepository(db),
			relations: persistent.NewRelationRepository(db),
		}, nil
	default:
		return nil, fmt.Errorf("unknown storage driver %q", a.cfg.StorageDriver)
	}
}

func (a *App) Handler() http.Handler {
	return a.router
}

// Run serves HTTP until SIGINT or SIGTERM, then shuts down gracefully.
func (a *App) Run() error {
	srv := &http.Server{
		Addr:    ":" + a.cfg.ServerPort,
		Handler: a.router,
	}

	serveErr := make(chan error, 1)
	go func() {
		a.log.Info("Server starting on port %s", a.cfg.ServerPort)
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			serveErr <- err
		}
		close(serveErr)
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	defer signal.Stop(quit)

	select {
	case err := <-serveErr:
		a.Close()
		return fmt.Errorf("failed to start server: %w", err)
	case <-quit:
	}
	a.log.Info("Shutting down server...")

	ctx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()

	err := srv.Shutdown(ctx)
	if err != nil {
		a.log.Error("Server forced to shutdown: %v", err)
	}
	a.Close()

	a.log.Info("Server exited")
	return err
}

// Close releases database, Redis and RabbitMQ connections.
func (a *App) Close() {
	if a.db != nil {
		if sqlDB, err := a.db.DB(); err == nil {
			if err := sqlDB.Close(); err != nil {
				a.log.Error("Error closing database: %v", err)
			}
		}
		a.db = nil
	}

	if a.redisClient != nil {
		if err := a.redisClient.Close(); err != nil {
			a.log.Error("Error closing Redis: %v", err)
		}
		a.redisClient = nil
	}

	if a.queueClient != nil {
		if err := a.queueClient.Close(); err != nil {
			a.log.Error("Error closing RabbitMQ: %v", err)
		}
		a.queueClient = nil
	}
}
