package bootstrap

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"

	appAuth "github.com/yigit/forensicsite/internal/app/auth"
	"github.com/yigit/forensicsite/internal/app/content"
	appControllers "github.com/yigit/forensicsite/internal/app/controllers"
	"github.com/yigit/forensicsite/internal/app/editsession"
	appMigrations "github.com/yigit/forensicsite/internal/app/migrations"
	appRoutes "github.com/yigit/forensicsite/internal/app/routes"
	"github.com/yigit/forensicsite/internal/app/sections"
	appServices "github.com/yigit/forensicsite/internal/app/services"
	"github.com/yigit/forensicsite/internal/app/views"
	"github.com/yigit/forensicsite/internal/config"
	"github.com/yigit/forensicsite/internal/db"
	appMiddleware "github.com/yigit/forensicsite/internal/middleware"
	pkgAuth "github.com/yigit/forensicsite/internal/pkg/auth"
	"github.com/yigit/forensicsite/internal/pkg/email"
	"github.com/yigit/forensicsite/internal/pkg/filestorage"
	"github.com/yigit/forensicsite/internal/pkg/helpers"
	"github.com/yigit/forensicsite/internal/pkg/imageupload"
	"github.com/yigit/forensicsite/internal/pkg/kvstore"
	"github.com/yigit/forensicsite/internal/pkg/logger"
	"github.com/yigit/forensicsite/internal/pkg/upstream"
	"github.com/yigit/forensicsite/internal/pkg/websocket"
	"github.com/yigit/forensicsite/internal/seed"
)

// DefaultConfigPath is where the server and the CLI look for configuration.
var DefaultConfigPath = filepath.Join("configs", "config.yaml")

// sweepInterval is how often expired edit sessions are closed.
const sweepInterval = time.Minute

// Storage is the opened content store and the database behind it, if any.
type Storage struct {
	Adapter *kvstore.Adapter
	DB      *db.PostgresDB
}

// Close releases the store and the database pool.
func (s *Storage) Close() {
	if s.Adapter != nil {
		if err := s.Adapter.Close(); err != nil {
			log.Warn().Err(err).Msg("Failed to close content store")
		}
	}
	if s.DB != nil {
		s.DB.Close()
	}
}

// Dependencies holds all the application dependencies
type Dependencies struct {
	Storage  *Storage
	Registry *content.Registry
	Editors  *sections.Editors
	Sessions *editsession.Manager
	Hub      *websocket.Hub

	JWTService     *pkgAuth.JWTService
	AuthMiddleware *appMiddleware.AuthMiddleware
	Controllers    appRoutes.Controllers
	Logger         zerolog.Logger

	stopRelay func()
	cancel    context.CancelFunc
}

// Close stops background work and releases the store.
func (d *Dependencies) Close() {
	if d.cancel != nil {
		d.cancel()
	}
	if d.Sessions != nil {
		d.Sessions.Shutdown()
	}
	if d.stopRelay != nil {
		d.stopRelay()
	}
	if d.Hub != nil {
		d.Hub.Stop()
	}
	if d.Storage != nil {
		d.Storage.Close()
	}
}

// LoadConfigAndSetupLogger loads configuration and initializes the logger.
func LoadConfigAndSetupLogger(configPath string) (*config.Config, zerolog.Logger, error) {
	cfg, err := config.LoadConfig(configPath)
	if err != nil {
		logger.Error().Err(err).Msg("Failed to load configuration")
		return nil, zerolog.Logger{}, err
	}

	logLevel := logger.ParseLevel(cfg.Logging.Level)
	lgr := logger.Configure(logger.Config{
		Level:  logLevel,
		Pretty: strings.ToLower(cfg.Logging.Format) == "text",
	})

	lgr.Info().Str("logLevel", string(logLevel)).Str("logFormat", cfg.Logging.Format).Msg("Logger configured")
	return cfg, lgr, nil
}

// SetupStorage opens the configured content store. The postgres driver also runs the
// migrations in the configured directory.
func SetupStorage(ctx context.Context, cfg *config.Config, lgr zerolog.Logger) (*Storage, error) {
	storage := &Storage{}
	var backend kvstore.ByteStore

	switch cfg.Store.Driver {
	case config.StoreDriverMemory:
		lgr.Warn().Msg("Using in-memory content store, edits are lost on restart")
		backend = kvstore.NewMemoryStore()

	case config.StoreDriverFile:
		fileStore, err := kvstore.NewFileStore(cfg.Store.Path)
		if err != nil {
			return nil, err
		}
		backend = fileStore

	case config.StoreDriverSQLite:
		sqliteStore, err := kvstore.NewSQLiteStore(ctx, cfg.Store.Path)
		if err != nil {
			return nil, err
		}
		backend = sqliteStore

	case config.StoreDriverPostgres:
		lgr.Info().Msg("Establishing database connection...")
		database, err := db.NewPostgresDB(ctx, cfg, lgr)
		if err != nil {
			lgr.Error().Err(err).Msg("Failed to connect to database")
			return nil, err
		}
		lgr.Info().Msg("Database connection successfully established.")

		migrationsDir := cfg.Database.MigrationsDir
		if _, err := os.Stat(migrationsDir); err != nil {
			database.Close()
			return nil, fmt.Errorf("migrations directory not found at %s: %w", migrationsDir, err)
		}
		migrator := appMigrations.NewMigrator(database.Pool, logger.Component("migrations"))
		if err := migrator.MigrateFS(ctx, os.DirFS(migrationsDir)); err != nil {
			database.Close()
			lgr.Error().Err(err).Msg("Database migration error")
			return nil, fmt.Errorf("database migrations failed: %w", err)
		}
		lgr.Info().Msg("Database migrations successfully applied.")

		storage.DB = database
		backend = kvstore.NewPostgresStore(database.Pool)

	default:
		return nil, fmt.Errorf("unsupported store driver %q", cfg.Store.Driver)
	}

	storage.Adapter = kvstore.NewAdapter(backend,
		kvstore.WithQuota(cfg.Store.QuotaBytes),
		kvstore.WithLogger(logger.Component("kvstore")),
	)
	lgr.Info().Str("driver", cfg.Store.Driver).Str("path", cfg.Store.Path).Msg("Content store ready")
	return storage, nil
}

// NewRegistry creates the page registry over an opened store.
func NewRegistry(cfg *config.Config, storage *Storage) *content.Registry {
	return content.NewRegistry(storage.Adapter, cfg.Store.KeyPrefix, logger.Component("pagedata"))
}

func newUploader(cfg *config.Config) (*imageupload.Uploader, error) {
	if cfg.Images.Mode != config.ImageModeFile {
		return imageupload.NewUploader(imageupload.DataURIEncoder{}, int64(cfg.Images.MaxBytes)), nil
	}

	storage, err := filestorage.NewLocalStorage(cfg.Server.StoragePath, cfg.BaseURL()+"/uploads")
	if err != nil {
		return nil, fmt.Errorf("failed to initialize file storage: %w", err)
	}
	encoder := imageupload.FileEncoder{Storage: storage, SubPath: "images"}
	return imageupload.NewUploader(encoder, int64(cfg.Images.MaxBytes)), nil
}

// BuildDependencies loads the pages and initializes services, controllers and background work.
func BuildDependencies(ctx context.Context, cfg *config.Config, storage *Storage, lgr zerolog.Logger) (*Dependencies, error) {
	deps := &Dependencies{Storage: storage, Logger: lgr}

	deps.Registry = NewRegistry(cfg, storage)
	if _, err := seed.SeedRealms(ctx, deps.Registry, lgr); err != nil {
		// pages still serve defaults from memory
		lgr.Error().Err(err).Msg("Failed to write default page content, proceeding anyway...")
	}
	deps.Editors = sections.NewEditors(deps.Registry)

	deps.JWTService = pkgAuth.NewJWTService(pkgAuth.JWTConfig{
		SecretKey:      cfg.JWT.Secret,
		AccessTokenExp: helpers.ParseDuration(cfg.JWT.AccessTokenExpiration, 8*time.Hour),
		TokenIssuer:    cfg.JWT.Issuer,
	})
	editor := appAuth.NewEditorAuthenticator(cfg.Editor.Username, cfg.Editor.PasswordHash)

	emailService := email.NewEmailService(email.SMTPConfig{
		Host:      cfg.SMTP.Host,
		Port:      cfg.SMTP.Port,
		Username:  cfg.SMTP.Username,
		Password:  cfg.SMTP.Password,
		FromName:  cfg.SMTP.FromName,
		FromEmail: cfg.SMTP.FromEmail,
		UseTLS:    cfg.SMTP.UseTLS,
		BaseURL:   cfg.BaseURL(),
	}, logger.Component("email"))
	mailer := appServices.NewSaveMailer(emailService, cfg.SMTP.NotifyEmail, cfg.BaseURL(), lgr)

	deps.Sessions = editsession.NewManager(editor, editsession.ManagerConfig{
		Delays: editsession.Delays{
			Edit: helpers.ParseDuration(cfg.Editor.EditDelay, 600*time.Millisecond),
			Save: helpers.ParseDuration(cfg.Editor.SaveDelay, 800*time.Millisecond),
		},
		TTL:      helpers.ParseDuration(cfg.Editor.SessionTTL, 2*time.Hour),
		Notifier: mailer,
		Logger:   logger.Component("editsession"),
	})

	runCtx, cancel := context.WithCancel(context.Background())
	deps.cancel = cancel
	go deps.Sessions.Run(runCtx, sweepInterval)

	deps.Hub = websocket.NewHub(logger.Component("websocket"))
	go deps.Hub.Run()
	pages := deps.Registry.Pages()
	subscribers := make([]websocket.Subscriber, len(pages))
	for i, p := range pages {
		subscribers[i] = p
	}
	deps.stopRelay = websocket.Relay(deps.Hub, subscribers...)

	client, err := upstream.NewClient(cfg.Upstream.BaseURL,
		helpers.ParseDuration(cfg.Upstream.Timeout, 5*time.Second),
		upstream.WithLogger(logger.Component("upstream")),
	)
	if err != nil {
		deps.Close()
		return nil, err
	}
	if cfg.Upstream.BaseURL == "" {
		lgr.Warn().Msg("Upstream API is not configured, catalog pages show empty lists")
	}

	uploader, err := newUploader(cfg)
	if err != nil {
		deps.Close()
		return nil, err
	}

	renderer, err := views.New()
	if err != nil {
		deps.Close()
		return nil, fmt.Errorf("failed to parse page templates: %w", err)
	}

	authService := appServices.NewAuthService(editor, deps.JWTService, lgr)
	pageService := appServices.NewPageService(deps.Registry, lgr)
	sectionService := appServices.NewSectionService(deps.Registry, deps.Editors, lgr)
	editService := appServices.NewEditService(deps.Registry, deps.Sessions, lgr)
	catalogService := appServices.NewCatalogService(client, lgr)
	mediaService := appServices.NewMediaService(uploader, lgr)

	deps.AuthMiddleware = appMiddleware.NewAuthMiddleware(deps.JWTService, deps.Sessions)

	realmExists := func(realm string) bool {
		_, err := deps.Registry.Page(realm)
		return err == nil
	}

	deps.Controllers = appRoutes.Controllers{
		Auth:    appControllers.NewAuthController(authService, lgr),
		Page:    appControllers.NewPageController(pageService, lgr),
		Edit:    appControllers.NewEditController(editService, lgr),
		Section: appControllers.NewSectionController(sectionService, lgr),
		Catalog: appControllers.NewCatalogController(catalogService, lgr),
		Media:   appControllers.NewMediaController(mediaService, lgr),
		Site:    appControllers.NewSiteController(deps.Registry, catalogService, renderer, lgr),
		Live:    websocket.NewHandler(deps.Hub, realmExists, cfg.Server.AllowedOrigins, logger.Component("websocket")),
	}

	return deps, nil
}

// SetupRouter configures the Gin engine with middleware and routes.
func SetupRouter(cfg *config.Config, deps *Dependencies, lgr zerolog.Logger) *gin.Engine {
	if strings.ToLower(cfg.Server.Mode) == "production" {
		gin.SetMode(gin.ReleaseMode)
		lgr.Info().Msg("Setting Gin mode to release")
	} else {
		gin.SetMode(gin.DebugMode)
		lgr.Info().Msg("Setting Gin mode to debug")
	}

	appMiddleware.RegisterValidators()

	router := gin.New()
	router.Use(gin.Recovery(), appMiddleware.RequestLogger(logger.Component("http")))

	appRoutes.SetupSwagger(router)
	appRoutes.SetupRouter(router, deps.Controllers, deps.AuthMiddleware)

	if cfg.Images.Mode == config.ImageModeFile {
		router.Static("/uploads", cfg.Server.StoragePath)
		lgr.Info().Str("path", cfg.Server.StoragePath).Msg("Static file serving configured for uploads directory")
	}

	return router
}
