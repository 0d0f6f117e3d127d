package app

import (
	"context"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"
	"walkalong_backend/internal/config"
	"walkalong_backend/internal/controller"
	"walkalong_backend/internal/repository"
	"walkalong_backend/internal/service"
	"walkalong_backend/pkg/configwatcher"
	"walkalong_backend/pkg/database"
	"walkalong_backend/pkg/logger"
	"walkalong_backend/pkg/monitoring"
	"walkalong_backend/pkg/security"
	"walkalong_backend/pkg/tracing"

	"github.com/gin-gonic/gin"
	"github.com/go-redis/redis/v8"
	"go.uber.org/zap"
	"gorm.io/gorm"
)

type App struct {
	Config          *config.Config
	Router          *gin.Engine
	DB              *gorm.DB
	Redis           *redis.Client
	configCallbacks []func(*config.Config)
}

type repositories struct {
	user       *repository.UserRepository
	stream     *repository.StreamRepository
	streamNote *repository.StreamNoteRepository
	task       *repository.TaskRepository
	mood       *repository.MoodRepository
	workDone   *repository.WorkDoneRepository
	calendar   *repository.CalendarRepository
	answer     *repository.AnswerRepository
	motivation *repository.MotivationRepository
}

type services struct {
	auth       *service.AuthService
	storage    *service.StorageService
	task       *service.TaskService
	stream     *service.StreamService
	streamNote *service.StreamNoteService
	mood       *service.MoodService
	workDone   *service.WorkDoneService
	viewPlan   *service.ViewPlanService
	dashboard  *service.DashboardService
	analytics  *service.AnalyticsService
	answer     *service.AnswerService
	calendar   *service.CalendarService
	motivation *service.MotivationService
}

type controllers struct {
	auth       *controller.AuthController
	task       *controller.TaskController
	stream     *controller.StreamController
	streamNote *controller.StreamNoteController
	mood       *controller.MoodController
	workDone   *controller.WorkDoneController
	viewPlan   *controller.ViewPlanController
	dashboard  *controller.DashboardController
	analytics  *controller.AnalyticsController
	answer     *controller.AnswerController
	calendar   *controller.CalendarController
	motivation *controller.MotivationController
	health     *controller.HealthController
}

func (a *App) RegisterConfigCallback(callback func(*config.Config)) {
	a.configCallbacks = append(a.configCallbacks, callback)
}

func (a *App) initRepositories(db *gorm.DB) *repositories {
	return &repositories{
		user:       repository.NewUserRepository(db),
		stream:     repository.NewStreamRepository(db),
		streamNote: repository.NewStreamNoteRepository(db),
		task:       repository.NewTaskRepository(db),
		mood:       repository.NewMoodRepository(db),
		workDone:   repository.NewWorkDoneRepository(db),
		calendar:   repository.NewCalendarRepository(db),
		answer:     repository.NewAnswerRepository(db),
		motivation: repository.NewMotivationRepository(db),
	}
}

func (a *App) initServices(repos *repositories, cfg *config.Config, rdb *redis.Client) *services {
	s := &services{}

	s.storage = service.NewStorageService(cfg)
	s.auth = service.NewAuthService(repos.user, cfg)
	s.task = service.NewTaskService(repos.task, repos.stream)
	s.stream = service.NewStreamService(repos.stream)
	s.streamNote = service.NewStreamNoteService(repos.streamNote, repos.stream)
	s.mood = service.NewMoodService(repos.mood)
	s.workDone = service.NewWorkDoneService(repos.workDone)
	s.viewPlan = service.NewViewPlanService(repos.task)
	s.dashboard = service.NewDashboardService(repos.task, repos.calendar)
	s.analytics = service.NewAnalyticsService(repos.task, repos.workDone, repos.answer, repos.calendar)
	s.answer = service.NewAnswerService(repos.answer, s.storage)
	s.calendar = service.NewCalendarService(repos.calendar)
	s.motivation = service.NewMotivationService(repos.motivation, rdb)

	return s
}

func (a *App) initControllers(s *services, db *gorm.DB, rdb *redis.Client) *controllers {
	return &controllers{
		auth:       controller.NewAuthController(s.auth),
		task:       controller.NewTaskController(s.task),
		stream:     controller.NewStreamController(s.stream),
		streamNote: controller.NewStreamNoteController(s.streamNote),
		mood:       controller.NewMoodController(s.mood),
		workDone:   controller.NewWorkDoneController(s.workDone),
		viewPlan:   controller.NewViewPlanController(s.viewPlan),
		dashboard:  controller.NewDashboardController(s.dashboard, s.stream, s.motivation),
		analytics:  controller.NewAnalyticsController(s.analytics),
		answer:     controller.NewAnswerController(s.answer),
		calendar:   controller.NewCalendarController(s.calendar),
		motivation: controller.NewMotivationController(s.motivation),
		health:     controller.NewHealthController(db, rdb),
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

	// 非 release 模式默认自动迁移，release 模式需显式 -migrate
	migrate := cfg.ForceMigrate || cfg.Server.Mode != "release"
	db, err := database.InitDB(&cfg.Database, migrate)
	if err != nil {
		logger.Log.Fatal("Failed to initialize database", zap.Error(err))
	}

	// Redis 不可用时降级运行，仅失去激励短句缓存
	rdb, err := database.InitRedis(&cfg.Redis)
	if err != nil {
		logger.Log.Warn("Failed to initialize redis, running without cache", zap.Error(err))
		rdb = nil
	}

	app := &App{
		Config: cfg,
		DB:     db,
		Redis:  rdb,
	}

	repos := app.initRepositories(db)
	services := app.initServices(repos, cfg, rdb)
	controllers := app.initControllers(services, db, rdb)

	monitoring.Init()

	gin.SetMode(cfg.Server.Mode)
	router := gin.Default()
	app.Router = router

	app.setupMiddlewares(router, cfg)

	if cfg.Tracing.Enabled {
		_, err := tracing.InitTracer("walkalong", cfg.Tracing.CollectorEndpoint)
		if err != nil {
			logger.Log.Fatal("Failed to initialize tracing", zap.Error(err))
		}
	}

	app.registerRoutes(router, controllers, repos, cfg)

	if cfg.Storage.Type == "local" {
		router.Static("/uploads", cfg.Storage.LocalPath)
	}

	// 配置热重载，回调方自行决定哪些项支持运行时变更
	go configwatcher.WatchConfig("configs/config.yaml", func(newCfg *config.Config) {
		app.Config = newCfg
		for _, cb := range app.configCallbacks {
			cb(newCfg)
		}
	})

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

	// 等待中断信号优雅关闭
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit
	log.Println("Shutting down server...")

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := srv.Shutdown(ctx); err != nil {
		log.Fatal("Server forced to shutdown:", err)
	}

	logger.Sync()
	log.Println("Server exiting")
}
