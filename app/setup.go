package app

import (
	"os"
	"os/signal"
	"syscall"

	"github.com/biosecret/go-tasks/config"
	"github.com/biosecret/go-tasks/database"
	"github.com/biosecret/go-tasks/events"
	"github.com/biosecret/go-tasks/logger"
	"github.com/biosecret/go-tasks/middleware"
	"github.com/biosecret/go-tasks/router"
	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/cors"
	"github.com/gofiber/fiber/v2/middleware/recover"
	"github.com/gofiber/fiber/v2/middleware/requestid"
	"github.com/google/uuid"
	"go.uber.org/zap"
)

// SetupAndRunApp khởi động ứng dụng Fiber
func SetupAndRunApp() error {
	// Load biến môi trường từ file .env
	if err := config.LoadENV(); err != nil {
		return err
	}
	cfg := config.Load()

	log, err := newLogger(cfg)
	if err != nil {
		return err
	}
	defer func() { _ = log.Sync() }()
	zap.ReplaceGlobals(log)

	// Dữ liệu mẫu lỗi thì không nên chạy tiếp
	if err := database.LoadSeed(); err != nil {
		return err
	}

	// MQTT là tùy chọn, lỗi kết nối chỉ ghi log
	if cfg.MQTTURL != "" {
		if err := events.InitMQTTPublisher(cfg.MQTTURL, cfg.AppName+"-"+uuid.NewString()[:8]); err != nil {
			log.Warn("MQTT publisher disabled", zap.Error(err))
		}
		defer events.Close()
	}

	app := NewApp(cfg, log)

	// Tắt server khi nhận SIGINT/SIGTERM
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, os.Interrupt, syscall.SIGTERM)
	go func() {
		sig := <-quit
		log.Info("shutting down", zap.String("signal", sig.String()))
		if err := app.ShutdownWithTimeout(cfg.ShutdownTimeout); err != nil {
			log.Error("forced shutdown", zap.Error(err))
		}
	}()

	log.Info("server starting", zap.String("app", cfg.AppName), zap.String("port", cfg.Port), zap.String("env", cfg.AppEnv))
	return app.Listen(":" + cfg.Port)
}

// newLogger chọn cấu hình zap theo APP_ENV và LOG_LEVEL
func newLogger(cfg config.Config) (*zap.Logger, error) {
	return logger.New(cfg.IsProduction(), cfg.LogLevel)
}

// NewApp tạo ứng dụng Fiber với middleware và route đầy đủ
func NewApp(cfg config.Config, log *zap.Logger) *fiber.App {
	app := fiber.New(fiber.Config{
		AppName:      cfg.AppName,
		ErrorHandler: middleware.ErrorHandler,
	})

	app.Use(requestid.New(requestid.Config{Generator: uuid.NewString}))
	app.Use(middleware.ZapLogger(log))
	app.Use(recover.New())
	app.Use(cors.New(cors.Config{
		AllowOrigins: cfg.CORSOrigins,
		AllowMethods: "GET,POST,PUT,DELETE,OPTIONS",
		AllowHeaders: "Origin,Content-Type,Accept,Authorization",
	}))
	app.Use(middleware.Metrics())

	// Thiết lập route cho ứng dụng
	router.SetupRoutes(app)

	// Đính kèm Swagger
	config.AddSwaggerRoutes(app)

	return app
}
