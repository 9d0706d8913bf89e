package app

import (
	"context"
	"fmt"
	"learnhub_backend/internal/config"
	"learnhub_backend/internal/controller"
	"learnhub_backend/internal/kvstore"
	"learnhub_backend/internal/repository"
	"learnhub_backend/internal/service"
	"learnhub_backend/pkg/database"
	"learnhub_backend/pkg/logger"
	"learnhub_backend/pkg/monitoring"
	"learnhub_backend/pkg/security"
	"learnhub_backend/pkg/tracing"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gin-gonic/gin"
	sdktrace "go.opentelemetry.io/otel/sdk/trace"
	"go.uber.org/zap"
)

type App struct {
	Config          *config.Config
	Router          *gin.Engine
	Store           kvstore.Store
	services        *services
	tracerProvider  *sdktrace.TracerProvider
	configCallbacks []func(*config.Config)
	stopBackground  chan struct{}
}

type repositories struct {
	user      *repository.UserRepository
	course    *repository.CourseRepository
	category  *repository.CategoryRepository
	feedback  *repository.FeedbackRepository
	session   *repository.SessionRepository
	blocklist *repository.BlocklistRepository
}

type services struct {
	blocklist *service.BlocklistService
	user      *service.UserService
	course    *service.CourseService
	student   *service.StudentService
	feedback  *service.FeedbackService
	category  *service.CategoryService
}

type controllers struct {
	auth     *controller.AuthController
	course   *controller.CourseController
	student  *controller.StudentController
	feedback *controller.FeedbackController
	category *controller.CategoryController
	health   *controller.HealthController
}

func (a *App) RegisterConfigCallback(callback func(*config.Config)) {
	a.configCallbacks = append(a.configCallbacks, callback)
}

// ApplyConfig hands a reloaded config to the registered callbacks.
func (a *App) ApplyConfig(cfg *config.Config) {
	a.Config = cfg
	for _, cb := range a.configCallbacks {
		cb(cfg)
	}
}

// initStore builds the document store backend selected by config.
func initStore(cfg *config.Config) (kvstore.Store, error) {
	switch cfg.Storage.Type {
	case "memory":
		return kvstore.NewMemory(), nil
	case "file":
		return kvstore.NewFileDir(cfg.Storage.LocalPath)
	case "mysql":
		db, err := database.InitDB(&cfg.Database)
		if err != nil {
			return nil, err
		}
		return kvstore.NewGormStore(db), nil
	case "redis":
		rdb, err := database.InitRedis(&cfg.Redis)
		if err != nil {
			return nil, err
		}
		return kvstore.NewRedisStore(rdb), nil
	case "minio":
		return kvstore.NewMinioStore(
			cfg.Storage.MinioEndpoint,
			cfg.Storage.MinioAccessID,
			cfg.Storage.MinioSecret,
			cfg.Storage.MinioBucket,
			cfg.Storage.MinioUseSSL,
		)
	default:
		return nil, fmt.Errorf("unknown storage type %q", cfg.Storage.Type)
	}
}

func initRepositories(store kvstore.Store) *repositories {
	return &repositories{
		user:      repository.NewUserRepository(store),
		course:    repository.NewCourseRepository(store),
		category:  repository.NewCategoryRepository(store),
		feedback:  repository.NewFeedbackRepository(store),
		session:   repository.NewSessionRepository(store),
		blocklist: repository.NewBlocklistRepository(store),
	}
}

func initServices(repos *repositories, cfg *config.Config) *services {
	s := &services{}

	s.blocklist = service.NewBlocklistService(repos.blocklist, cfg.Blocklist)
	s.user = service.NewUserService(repos.user, repos.session, s.blocklist, cfg.Session.LoginRedirect)
	s.course = service.NewCourseService(repos.course, cfg.Catalog, cfg.Media)
	s.student = service.NewStudentService(repos.user, repos.course, cfg.Enrollment.DefaultPaid)
	s.feedback = service.NewFeedbackService(repos.feedback)
	s.category = service.NewCategoryService(repos.category, repos.course)

	return s
}

func initControllers(s *services, store kvstore.Store) *controllers {
	return &controllers{
		auth:     controller.NewAuthController(s.user),
		course:   controller.NewCourseController(s.course, s.feedback),
		student:  controller.NewStudentController(s.student),
		feedback: controller.NewFeedbackController(s.feedback),
		category: controller.NewCategoryController(s.category),
		health:   controller.NewHealthController(store),
	}
}

func (a *App) setupMiddlewares(router *gin.Engine, cfg *config.Config) {
	router.Use(security.CORS(cfg.CORS.AllowedOrigins))
	router.Use(security.Secure())

	window := time.Duration(cfg.RateLimit.WindowMinutes) * time.Minute
	if window <= 0 {
		window = time.Minute
	}
	router.Use(security.RateLimiter(cfg.RateLimit.MaxRequests, window))

	if cfg.Tracing.Enabled {
		router.Use(tracing.GinMiddleware())
	}

	router.Use(monitoring.MetricsMiddleware())
}

// bootstrap mirrors the original init step: create the empty collection
// documents, refresh the blocklist when stale and seed the course
// catalog when the table is empty.
func (a *App) bootstrap(repos *repositories, s *services) {
	ctx := context.Background()

	for key, ensure := range map[string]func(context.Context) error{
		repository.KeyUsers:      repos.user.Col.EnsureExists,
		repository.KeyCourses:    repos.course.Col.EnsureExists,
		repository.KeyCategories: repos.category.Col.EnsureExists,
		repository.KeyFeedback:   repos.feedback.Col.EnsureExists,
	} {
		if err := ensure(ctx); err != nil {
			logger.Log.Error("table init failed", zap.String("key", key), zap.Error(err))
		}
	}

	s.blocklist.EnsureFresh(ctx)
	s.course.SeedFromCatalog(ctx)
	if _, err := s.category.SyncFromCourses(ctx); err != nil {
		logger.Log.Error("category sync failed", zap.Error(err))
	}
}

func (a *App) startBackgroundTasks(s *services, cfg *config.Config) {
	go func() {
		ticker := time.NewTicker(cfg.Blocklist.CheckInterval())
		defer ticker.Stop()
		for {
			select {
			case <-ticker.C:
				s.blocklist.EnsureFresh(context.Background())
			case <-a.stopBackground:
				return
			}
		}
	}()
}

func NewApp(cfg *config.Config) *App {
	logger.InitLogger(cfg)

	logger.Log.Info("Logger initialized successfully")

	store, err := initStore(cfg)
	if err != nil {
		logger.Log.Fatal("Failed to initialize storage", zap.Error(err))
	}

	app := &App{
		Config:         cfg,
		Store:          store,
		stopBackground: make(chan struct{}),
	}

	repos := initRepositories(store)
	services := initServices(repos, cfg)
	app.services = services
	controllers := initControllers(services, store)

	monitoring.Init()

	gin.SetMode(ginMode(cfg.Server.Mode))
	router := gin.Default()
	app.Router = router

	app.setupMiddlewares(router, cfg)

	if cfg.Tracing.Enabled {
		tp, err := tracing.InitTracer("learnhub-backend", cfg.Tracing.CollectorEndpoint)
		if err != nil {
			logger.Log.Fatal("Failed to initialize tracing", zap.Error(err))
		}
		app.tracerProvider = tp
	}

	app.registerRoutes(router, controllers)

	app.bootstrap(repos, services)
	app.startBackgroundTasks(services, cfg)

	return app
}

func ginMode(mode string) string {
	if mode == "release" {
		return gin.ReleaseMode
	}
	return gin.DebugMode
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

	close(a.stopBackground)

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := srv.Shutdown(ctx); err != nil {
		log.Fatal("Server forced to shutdown:", err)
	}

	if a.tracerProvider != nil {
		if err := a.tracerProvider.Shutdown(context.Background()); err != nil {
			logger.Log.Error("Failed to shutdown tracer provider", zap.Error(err))
		}
	}

	log.Println("Server exiting")
}
