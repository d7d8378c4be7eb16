package main

import (
	"context"
	"errors"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/labstack/echo/v4"
	echomw "github.com/labstack/echo/v4/middleware"
	"go.uber.org/zap"

	"github.com/icmlopes/drivent-booking/internal/config"
	"github.com/icmlopes/drivent-booking/internal/database"
	"github.com/icmlopes/drivent-booking/internal/handler"
	"github.com/icmlopes/drivent-booking/internal/middleware"
	"github.com/icmlopes/drivent-booking/internal/obs"
	"github.com/icmlopes/drivent-booking/internal/queue"
	"github.com/icmlopes/drivent-booking/internal/repository"
	"github.com/icmlopes/drivent-booking/internal/router"
	"github.com/icmlopes/drivent-booking/internal/service"
)

const serviceName = "drivent-booking"

func main() {
	cfg, err := config.Load()
	if err != nil {
		panic(err)
	}

	logger, err := newLogger(cfg)
	if err != nil {
		panic(err)
	}
	defer func() { _ = logger.Sync() }()

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	shutdownTracer, err := obs.InitTracer(ctx, serviceName, cfg.Env, cfg.OTelEndpoint)
	if err != nil {
		logger.Fatal("init tracer", zap.Error(err))
	}

	db, err := database.Open(cfg.DBUser, cfg.DBPass, cfg.DBHost, cfg.DBPort, cfg.DBName)
	if err != nil {
		logger.Fatal("open database", zap.Error(err))
	}
	defer db.Close()

	bookings := repository.NewBookingRepo(db)
	rooms := repository.NewRoomRepo(db)
	enrollments := repository.NewEnrollmentRepo(db)
	tickets := repository.NewTicketRepo(db)
	users := repository.NewUserRepo(db)
	sessions := repository.NewSessionRepo(db)

	// Events are best effort: without a broker the service still books.
	var events service.EventPublisher
	if pub, err := queue.NewPublisher(cfg.RabbitURL); err != nil {
		logger.Warn("rabbitmq unavailable, booking events disabled", zap.Error(err))
	} else {
		defer pub.Close()
		events = pub
		go func() {
			consumer := queue.NewAuditConsumer(cfg.RabbitURL, cfg.AuditLogPath, logger.Named("audit"))
			if err := consumer.Run(ctx); err != nil && !errors.Is(err, context.Canceled) {
				logger.Error("audit consumer stopped", zap.Error(err))
			}
		}()
	}

	bookingSvc := service.NewBookingService(
		bookings,
		service.NewEligibilityChecker(enrollments, tickets),
		service.NewRoomAvailabilityChecker(rooms),
		events,
		logger.Named("booking"),
	)
	authSvc := service.NewAuthService(users, sessions, service.AuthConfig{
		JWTSecret:    cfg.JWTSecret,
		AccessTTLMin: cfg.AccessTTLMin,
		BcryptCost:   cfg.BcryptCost,
	}, logger.Named("auth"))

	rdb := config.NewRedisClient(cfg.Redis)
	if rdb == nil {
		logger.Warn("redis unavailable, rate limiting disabled", zap.String("addr", cfg.Redis.Address()))
	} else {
		defer rdb.Close()
	}

	e := echo.New()
	e.HideBanner = true
	e.Use(echomw.Recover())
	e.Use(echomw.CORS())
	e.Use(echomw.RequestLoggerWithConfig(echomw.RequestLoggerConfig{
		LogMethod:  true,
		LogURI:     true,
		LogStatus:  true,
		LogLatency: true,
		LogError:   true,
		LogValuesFunc: func(c echo.Context, v echomw.RequestLoggerValues) error {
			fields := []zap.Field{
				zap.String("method", v.Method),
				zap.String("uri", v.URI),
				zap.Int("status", v.Status),
				zap.Duration("latency", v.Latency),
			}
			if v.Error != nil {
				logger.Error("request", append(fields, zap.Error(v.Error))...)
				return nil
			}
			logger.Info("request", fields...)
			return nil
		},
	}))

	router.RegisterRoutes(e)
	router.RegisterAuth(e, handler.NewAuthHandler(authSvc, logger.Named("http")))
	router.RegisterBooking(e, handler.NewBookingHandler(bookingSvc, logger.Named("http")),
		middleware.JWTAuth(cfg.JWTSecret, sessions, logger.Named("auth")),
		middleware.NewTokenBucket(cfg.RateLimit, rdb),
	)

	go func() {
		addr := ":" + cfg.Port
		logger.Info("listening", zap.String("addr", addr), zap.String("env", cfg.Env))
		if err := e.Start(addr); err != nil && !errors.Is(err, http.ErrServerClosed) {
			logger.Fatal("server", zap.Error(err))
		}
	}()

	<-ctx.Done()
	logger.Info("shutting down")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := e.Shutdown(shutdownCtx); err != nil {
		logger.Error("http shutdown", zap.Error(err))
	}
	if err := shutdownTracer(shutdownCtx); err != nil {
		logger.Error("tracer shutdown", zap.Error(err))
	}
}

func newLogger(cfg config.Config) (*zap.Logger, error) {
	if cfg.IsProd() {
		return zap.NewProduction()
	}
	return zap.NewDevelopment()
}
