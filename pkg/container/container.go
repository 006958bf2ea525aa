package container

import (
	"context"
	"fmt"

	"locallibrary/internal/config"
	infraCache "locallibrary/internal/infrastructure/cache"
	"locallibrary/internal/infrastructure/database"
	"locallibrary/internal/shared/render"
	"locallibrary/pkg/cache"
	"locallibrary/pkg/logger"

	authorHandler "locallibrary/internal/domains/author/handler"
	authorRepo "locallibrary/internal/domains/author/repository"
	authorService "locallibrary/internal/domains/author/service"
	bookHandler "locallibrary/internal/domains/book/handler"
	bookRepo "locallibrary/internal/domains/book/repository"
	bookService "locallibrary/internal/domains/book/service"
	instanceHandler "locallibrary/internal/domains/bookinstance/handler"
	instanceRepo "locallibrary/internal/domains/bookinstance/repository"
	instanceService "locallibrary/internal/domains/bookinstance/service"
	catalogHandler "locallibrary/internal/domains/catalog/handler"
	catalogService "locallibrary/internal/domains/catalog/service"
	genreHandler "locallibrary/internal/domains/genre/handler"
	genreRepo "locallibrary/internal/domains/genre/repository"
	genreService "locallibrary/internal/domains/genre/service"
)

// Container holds every dependency of the application. It is built
// once at startup; initialization order matters: config first, then
// infrastructure, then repositories, services and handlers.
type Container struct {
	Config *config.Config
	DB     *database.MongoDB
	Cache  cache.Cache

	Renderer render.Renderer

	AuthorRepo   authorRepo.Repository
	BookRepo     bookRepo.Repository
	GenreRepo    genreRepo.Repository
	InstanceRepo instanceRepo.Repository

	AuthorService   authorService.Service
	BookService     bookService.Service
	GenreService    genreService.Service
	InstanceService instanceService.Service
	CatalogService  catalogService.Service

	CatalogHandler  *catalogHandler.CatalogHandler
	BookHandler     *bookHandler.BookHandler
	AuthorHandler   *authorHandler.AuthorHandler
	GenreHandler    *genreHandler.GenreHandler
	InstanceHandler *instanceHandler.BookInstanceHandler
}

// NewContainer wires the full dependency graph.
func NewContainer(ctx context.Context) (*Container, error) {
	c := &Container{}

	cfg, err := config.Load()
	if err != nil {
		return nil, fmt.Errorf("failed to load config: %w", err)
	}
	c.Config = cfg
	logger.Info("config loaded", map[string]interface{}{
		"environment": cfg.App.Environment,
	})

	connectCtx, cancel := context.WithTimeout(ctx, cfg.Mongo.ConnectTimeout)
	defer cancel()

	db, err := database.Connect(connectCtx, &database.MongoConfig{
		URI:            cfg.Mongo.URI,
		Database:       cfg.Mongo.Database,
		ConnectTimeout: cfg.Mongo.ConnectTimeout,
		MaxPoolSize:    uint64(cfg.Mongo.MaxPoolSize),
	})
	if err != nil {
		return nil, fmt.Errorf("failed to connect to mongodb: %w", err)
	}
	c.DB = db
	logger.Info("mongodb connected", map[string]interface{}{
		"database": cfg.Mongo.Database,
	})

	// Redis is optional. A failed connection disables the summary
	// cache instead of aborting startup.
	if cfg.Redis.Enabled {
		rc := infraCache.NewRedisCache(cfg.Redis.Host, cfg.Redis.Password, cfg.Redis.DB)
		if err := rc.Ping(ctx); err != nil {
			logger.Warn("redis unavailable, summary cache disabled", err)
		} else {
			c.Cache = rc
			logger.Info("redis connected", nil)
		}
	}

	c.Renderer = render.New(cfg.App.Environment)

	c.initRepositories()
	c.initServices()
	c.initHandlers()

	return c, nil
}

func (c *Container) initRepositories() {
	db := c.DB.Database

	c.AuthorRepo = authorRepo.NewMongoRepository(db)
	c.BookRepo = bookRepo.NewMongoRepository(db)
	c.GenreRepo = genreRepo.NewMongoRepository(db)
	c.InstanceRepo = instanceRepo.NewMongoRepository(db)
}

func (c *Container) initServices() {
	c.AuthorService = authorService.NewService(c.AuthorRepo, c.BookRepo)
	c.GenreService = genreService.NewService(c.GenreRepo, c.BookRepo)
	c.BookService = bookService.NewService(c.BookRepo, c.AuthorRepo, c.GenreRepo, c.InstanceRepo)
	c.InstanceService = instanceService.NewService(c.InstanceRepo, c.BookRepo)
	c.CatalogService = catalogService.NewService(
		c.BookRepo,
		c.AuthorRepo,
		c.GenreRepo,
		c.InstanceRepo,
		c.Cache,
		c.Config.Redis.SummaryTTL,
	)
}

func (c *Container) initHandlers() {
	c.CatalogHandler = catalogHandler.NewCatalogHandler(c.CatalogService, c.Renderer)
	c.BookHandler = bookHandler.NewBookHandler(c.BookService, c.Renderer)
	c.AuthorHandler = authorHandler.NewAuthorHandler(c.AuthorService, c.Renderer)
	c.GenreHandler = genreHandler.NewGenreHandler(c.GenreService, c.Renderer)
	c.InstanceHandler = instanceHandler.NewBookInstanceHandler(c.InstanceService, c.Renderer)
}

// Cleanup releases infrastructure resources during shutdown.
func (c *Container) Cleanup(ctx context.Context) {
	if c.Cache != nil {
		if rc, ok := c.Cache.(*infraCache.RedisCache); ok {
			if err := rc.Close(); err != nil {
				logger.Warn("failed to close redis", err)
			}
		}
	}

	if c.DB != nil {
		if err := c.DB.Close(ctx); err != nil {
			logger.Warn("failed to close mongodb", err)
		}
	}
}
