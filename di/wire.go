//go:build wireinject
// +build wireinject

package di

import (
	"rentcar/config"
	"rentcar/infras/jwt"
	"rentcar/infras/kafka"
	"rentcar/infras/otel"
	"rentcar/infras/postgres"
	"rentcar/infras/redis"
	"rentcar/infras/s3"
	"rentcar/internal/events"
	"rentcar/permissions"
	"rentcar/shared/cache"
	"rentcar/transport/http"
	"rentcar/transport/http/middleware"
	"rentcar/transport/http/router"

	"github.com/google/wire"

	authService "rentcar/internal/domains/auth/service"
	bookingRepository "rentcar/internal/domains/booking/repository"
	bookingService "rentcar/internal/domains/booking/service"
	carRepository "rentcar/internal/domains/car/repository"
	carService "rentcar/internal/domains/car/service"
	statsService "rentcar/internal/domains/stats/service"
	userRepository "rentcar/internal/domains/user/repository"
	userService "rentcar/internal/domains/user/service"
	authHandler "rentcar/internal/handlers/auth"
	bookingHandler "rentcar/internal/handlers/booking"
	carHandler "rentcar/internal/handlers/car"
	statsHandler "rentcar/internal/handlers/stats"
	userHandler "rentcar/internal/handlers/user"
)

var configurations = wire.NewSet(
	config.Get,
)

var infrastructures = wire.NewSet(
	postgres.New,
	otel.New,
	redis.New,
	jwt.New,
	kafka.New,
	s3.New,
	permissions.Get,
)

var middlewares = wire.NewSet(
	middleware.NewAppMiddleware,
	middleware.NewAuthRoleMiddleware,
)

var sharedHelpers = wire.NewSet(
	cache.NewRedisCache,
	events.New,
)

var authDomain = wire.NewSet(
	userRepository.New,
	authService.New,
	userService.New,
)

var carDomain = wire.NewSet(
	carRepository.New,
	carService.New,
)

var bookingDomain = wire.NewSet(
	bookingRepository.New,
	bookingService.New,
)

var statsDomain = wire.NewSet(
	statsService.New,
)

var domains = wire.NewSet(
	authDomain,
	carDomain,
	bookingDomain,
	statsDomain,
)

var routing = wire.NewSet(
	wire.Struct(new(router.DomainHandlers), "*"),
	authHandler.New,
	userHandler.New,
	carHandler.New,
	bookingHandler.New,
	statsHandler.New,
	router.New,
)

func InitializeService() *http.HTTP {
	wire.Build(
		configurations,
		infrastructures,
		middlewares,
		sharedHelpers,
		domains,
		routing,
		http.New,
	)

	return &http.HTTP{}
}
