//go:build wireinject
// +build wireinject

package di

import (
	"github.com/google/wire"

	"github.com/Fairanova/2026-room-booking-backend/config"
	"github.com/Fairanova/2026-room-booking-backend/infras/jwt"
	"github.com/Fairanova/2026-room-booking-backend/infras/kafka"
	"github.com/Fairanova/2026-room-booking-backend/infras/otel"
	"github.com/Fairanova/2026-room-booking-backend/infras/postgres"
	"github.com/Fairanova/2026-room-booking-backend/infras/redis"
	"github.com/Fairanova/2026-room-booking-backend/permissions"
	"github.com/Fairanova/2026-room-booking-backend/shared/cache"
	"github.com/Fairanova/2026-room-booking-backend/shared/timezone"
	"github.com/Fairanova/2026-room-booking-backend/transport/http"
	"github.com/Fairanova/2026-room-booking-backend/transport/http/middleware"
	"github.com/Fairanova/2026-room-booking-backend/transport/http/router"

	bookingEvent "github.com/Fairanova/2026-room-booking-backend/internal/domains/booking/event"
	bookingRepository "github.com/Fairanova/2026-room-booking-backend/internal/domains/booking/repository"
	bookingService "github.com/Fairanova/2026-room-booking-backend/internal/domains/booking/service"
	roomRepository "github.com/Fairanova/2026-room-booking-backend/internal/domains/room/repository"
	roomService "github.com/Fairanova/2026-room-booking-backend/internal/domains/room/service"

	bookingHandler "github.com/Fairanova/2026-room-booking-backend/internal/handlers/booking"
	roomHandler "github.com/Fairanova/2026-room-booking-backend/internal/handlers/room"
)

var configurations = wire.NewSet(
	config.Get,
	permissions.Get,
)

var infrastructures = wire.NewSet(
	postgres.New,
	otel.New,
	redis.New,
	jwt.New,
	kafka.New,
)

var middlewares = wire.NewSet(
	middleware.NewAppMiddleware,
	middleware.NewAuthRoleMiddleware,
)

var sharedHelpers = wire.NewSet(
	cache.NewRedisCache,
	timezone.NewClock,
)

var roomDomain = wire.NewSet(
	roomRepository.New,
	roomService.New,
)

var bookingDomain = wire.NewSet(
	bookingRepository.New,
	bookingEvent.NewPublisher,
	bookingService.New,
)

var domains = wire.NewSet(
	roomDomain,
	bookingDomain,
)

var routing = wire.NewSet(
	wire.Struct(new(router.DomainHandlers), "*"),
	roomHandler.New,
	bookingHandler.New,
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
