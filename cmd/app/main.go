package main

import (
	"context"
	"log"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/vehrenweb/rentals/api"
	"github.com/vehrenweb/rentals/config"
	"github.com/vehrenweb/rentals/internal/bootstrap"
	"github.com/vehrenweb/rentals/internal/cache"
	"github.com/vehrenweb/rentals/internal/kafka"
	"github.com/vehrenweb/rentals/internal/repository"
	"github.com/vehrenweb/rentals/internal/service/auth"
	"github.com/vehrenweb/rentals/internal/service/booking"
	"github.com/vehrenweb/rentals/internal/service/licenses"
	"github.com/vehrenweb/rentals/internal/service/payments"
	"github.com/vehrenweb/rentals/internal/service/vehicles"
)

func main() {
	cfgPath := os.Getenv("CONFIG_PATH")
	if cfgPath == "" {
		cfgPath = "config.yaml"
	}

	cfg, err := config.LoadConfig(cfgPath)
	if err != nil {
		log.Fatalf("load config: %v", err)
	}

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	pool, err := pgxpool.New(ctx, cfg.Database.DSN())
	if err != nil {
		log.Fatalf("connect postgres: %v", err)
	}
	defer pool.Close()

	redisCache := cache.NewRedisCache(cfg.Redis, time.Duration(cfg.Booking.VehiclesCacheTTLSeconds)*time.Second)
	producer := kafka.NewProducer(cfg.Kafka.Brokers)
	defer producer.Close()

	txManager := repository.NewTxManager(pool)
	bookingRepo := repository.NewBookingRepository(pool)
	vehicleRepo := repository.NewVehicleRepository(pool)
	customerRepo := repository.NewCustomerRepository(pool)
	locationRepo := repository.NewLocationRepository(pool)
	paymentRepo := repository.NewPaymentRepository(pool)
	userRepo := repository.NewUserRepository(pool)

	bookingService := booking.NewBookingService(
		txManager,
		bookingRepo,
		vehicleRepo,
		customerRepo,
		redisCache,
		producer,
		cfg.Kafka.BookingEventsTopic,
		time.Duration(cfg.Booking.DraftTTLMinutes)*time.Minute,
		booking.WithNotificationsTopic(cfg.Kafka.NotificationsTopic),
	)
	vehicleService := vehicles.NewVehicleService(vehicleRepo, locationRepo, redisCache)
	paymentService := payments.NewPaymentService(paymentRepo)
	licenseService := licenses.NewLicenseService(customerRepo)
	authService := auth.NewAuthService(userRepo, cfg.Auth.JWTSecret, time.Duration(cfg.Auth.TokenTTLMinutes)*time.Minute)

	router := api.NewRouter(api.Handlers{
		Bookings: api.NewBookingHandler(bookingService, cfg.App.Env),
		Vehicles: api.NewVehicleHandler(vehicleService),
		Payments: api.NewPaymentHandler(paymentService),
		Licenses: api.NewLicenseHandler(licenseService),
		Auth:     api.NewAuthHandler(authService),
	}, cfg.Auth.JWTSecret)

	if err := bootstrap.Run(ctx, cfg, router); err != nil {
		log.Fatalf("server error: %v", err)
	}
}
