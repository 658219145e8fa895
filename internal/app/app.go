package app

import (
	"context"
	"fmt"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"tradelens_backend/internal/config"
	"tradelens_backend/internal/controller"
	"tradelens_backend/internal/repository"
	"tradelens_backend/internal/service"
	"tradelens_backend/pkg/database"
	"tradelens_backend/pkg/kvstore"
	"tradelens_backend/pkg/logger"
	"tradelens_backend/pkg/monitoring"
	"tradelens_backend/pkg/security"
	"tradelens_backend/pkg/tracing"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
	sdktrace "go.opentelemetry.io/otel/sdk/trace"
)

type App struct {
	Config          *config.Config
	Router          *gin.Engine
	Store           kvstore.Store
	tracerProvider  *sdktrace.TracerProvider
	configCallbacks []func(*config.Config)
}

type repositories struct {
	user       *repository.UserRepository
	prediction *repository.PredictionRepository
	lesson     *repository.LessonRepository
	post       *repository.PostRepository
	settings   *repository.SettingsRepository
}

type services struct {
	auth       *service.AuthService
	user       *service.UserService
	prediction *service.PredictionService
	learning   *service.LearningService
	community  *service.CommunityService
	mentor     service.MentorProvider
	settings   *service.SettingsService
	snapshot   *service.SnapshotService
	market     *service.MarketService
}

type controllers struct {
	auth       *controller.AuthController
	user       *controller.UserController
	prediction *controller.PredictionController
	learning   *controller.LearningController
	community  *controller.CommunityController
	mentor     *controller.MentorController
	settings   *controller.SettingsController
	snapshot   *controller.SnapshotController
	market     *controller.MarketController
	health     *controller.HealthController
}

func (a *App) RegisterConfigCallback(callback func(*config.Config)) {
	a.configCallbacks = append(a.configCallbacks, callback)
}

// ReloadConfig hands a freshly parsed config to every registered callback.
func (a *App) ReloadConfig(cfg *config.Config) {
	a.Config = cfg
	for _, cb := range a.configCallbacks {
		cb(cfg)
	}
	logger.Log.Info("Config reloaded")
}

// initStore builds the key-value store behind the gateway. file keeps
// every collection as a JSON document on disk; redis and mysql move the
// same documents into shared infrastructure.
func initStore(cfg *config.Config) (kvstore.Store, error) {
	switch cfg.Storage.Driver {
	case kvstore.DriverFile:
		return kvstore.NewFileStore(cfg.Storage.DataDir)
	case kvstore.DriverRedis:
		rdb, err := database.InitRedis(&cfg.Redis)
		if err != nil {
			return nil, err
		}
		return kvstore.NewRedisStore(rdb), nil
	case kvstore.DriverMySQL:
		db, err := database.InitDB(&cfg.Database)
		if err != nil {
			return nil, err
		}
		return kvstore.NewMySQLStore(db)
	default:
		return nil, fmt.Errorf("unknown storage driver %q", cfg.Storage.Driver)
	}
}

func (a *App) initRepositories(store kvstore.Store) *repositories {
	gw := repository.NewGateway(store)
	return &repositories{
		user:       repository.NewUserRepository(gw),
		prediction: repository.NewPredictionRepository(gw),
		lesson:     repository.NewLessonRepository(gw),
		post:       repository.NewPostRepository(gw),
		settings:   repository.NewSettingsRepository(gw),
	}
}

func (a *App) initServices(repos *repositories, cfg *config.Config) *services {
	backup := service.NewBackupProvider(cfg)
	return &services{
		auth:       service.NewAuthService(repos.user, cfg),
		user:       service.NewUserService(repos.user),
		prediction: service.NewPredictionService(repos.prediction, repos.user),
		learning:   service.NewLearningService(repos.lesson, repos.user),
		community:  service.NewCommunityService(repos.post),
		mentor:     service.NewStaticMentor(),
		settings:   service.NewSettingsService(repos.settings),
		snapshot: service.NewSnapshotService(
			repos.user, repos.prediction, repos.lesson, repos.post, repos.settings, backup),
		market: service.NewMarketService(),
	}
}

func (a *App) initControllers(s *services) *controllers {
	return &controllers{
		auth:       controller.NewAuthController(s.auth),
		user:       controller.NewUserController(s.user),
		prediction: controller.NewPredictionController(s.prediction),
		learning:   controller.NewLearningController(s.learning),
		community:  controller.NewCommunityController(s.community),
		mentor:     controller.NewMentorController(s.mentor),
		settings:   controller.NewSettingsController(s.settings),
		snapshot:   controller.NewSnapshotController(s.snapshot),
		market:     controller.NewMarketController(s.market),
		health:     controller.NewHealthController(a.Store, a.Config.Storage.Driver),
	}
}

func (a *App) setupMiddlewares(router *gin.Engine, cfg *config.Config) {
	router.Use(security.CORS(cfg.CORS.AllowedOrigins))
	router.Use(security.Secure())

	maxRequests := cfg.RateLimit.MaxRequests
	if maxRequests <= 0 {
		maxRequests = 1000
	}
	window := time.Duration(cfg.RateLimit.WindowMinutes) * time.Minute
	if window <= 0 {
		window = time.Minute
	}
	router.Use(security.RateLimiter(maxRequests, window))

	if cfg.Tracing.Enabled {
		router.Use(tracing.GinMiddleware())
	}

	router.Use(monitoring.MetricsMiddleware())
}

func NewApp(cfg *config.Config) *App {
	logger.InitLogger(cfg.Server.Mode)
	logger.Log.Info("Logger initialized successfully")

	if cfg.Server.Mode == "release" {
		gin.SetMode(gin.ReleaseMode)
	}

	store, err := initStore(cfg)
	if err != nil {
		logger.Log.Fatal("Failed to initialize storage", zap.Error(err))
	}

	app := &App{
		Config: cfg,
		Store:  store,
	}

	repos := app.initRepositories(store)
	services := app.initServices(repos, cfg)
	controllers := app.initControllers(services)

	if cfg.Community.SeedSampleData {
		if err := repos.post.SeedSampleData(context.Background()); err != nil {
			logger.Log.Error("Failed to seed community posts", zap.Error(err))
		}
	}

	monitoring.Init()

	router := gin.Default()
	app.Router = router

	app.setupMiddlewares(router, cfg)

	if cfg.Tracing.Enabled {
		tp, err := tracing.InitTracer("tradelens-backend", cfg.Tracing.CollectorEndpoint)
		if err != nil {
			logger.Log.Fatal("Failed to initialize tracing", zap.Error(err))
		}
		app.tracerProvider = tp
	}

	app.registerRoutes(router, controllers, cfg)

	return app
}

func (a *App) Run() {
	srv := &http.Server{
		Addr:    ":" + a.Config.Server.Port,
		Handler: a.Router,
	}

	go func() {
		log.Printf("Server running on port %s", a.Config.Server.Port)
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatalf("listen: %s\n", err)
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit
	log.Println("Shutting down server...")

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := srv.Shutdown(ctx); err != nil {
		log.Fatal("Server forced to shutdown:", err)
	}

	if a.tracerProvider != nil {
		if err := a.tracerProvider.Shutdown(ctx); err != nil {
			logger.Log.Error("Failed to shutdown tracer provider", zap.Error(err))
		}
	}

	log.Println("Server exiting")
}
