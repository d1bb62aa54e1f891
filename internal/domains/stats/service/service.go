package service

import (
	"context"
	"fmt"

	"rentcar/config"
	"rentcar/infras/otel"
	bookingRepo "rentcar/internal/domains/booking/repository"
	carRepo "rentcar/internal/domains/car/repository"
	"rentcar/internal/domains/stats/model"
	"rentcar/internal/domains/stats/model/dto"
	"rentcar/shared/cache"
	"rentcar/shared/constant"
	gDto "rentcar/shared/dto"
	"rentcar/shared/timezone"

	"github.com/rs/zerolog/log"
)

const cacheStats = "stats:dashboard"

type Stats interface {
	Get(ctx context.Context) (dto.StatsResponse, error)
}

type serviceImpl struct {
	carRepo     carRepo.Car
	bookingRepo bookingRepo.Booking
	cfg         *config.Config
	cache       cache.RedisCache
	otel        otel.Otel
}

func New(carRepo carRepo.Car, bookingRepo bookingRepo.Booking, cfg *config.Config, cache cache.RedisCache, otel otel.Otel) Stats {
	return &serviceImpl{
		carRepo:     carRepo,
		bookingRepo: bookingRepo,
		cfg:         cfg,
		cache:       cache,
		otel:        otel,
	}
}

func (s *serviceImpl) Get(ctx context.Context) (res dto.StatsResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".Get")
	defer scope.End()
	defer scope.TraceIfError(err)

	err = s.cache.Get(ctx, cacheStats, &res)
	if err == nil {
		log.Info().Str("cacheKey", cacheStats).Msg("cache hit for stats")

		return res, nil
	}

	cars, err := s.carRepo.GetAll(ctx, gDto.QueryParams{}, gDto.FilterGroup{})
	if err != nil {
		log.Error().Err(err).Msg("failed to get cars for stats")

		return res, fmt.Errorf("failed to get cars for stats: %w", err)
	}

	bookings, err := s.bookingRepo.GetAll(ctx, gDto.QueryParams{}, gDto.FilterGroup{})
	if err != nil {
		log.Error().Err(err).Msg("failed to get bookings for stats")

		return res, fmt.Errorf("failed to get bookings for stats: %w", err)
	}

	res.FromModel(model.Compute(cars, bookings, timezone.Now()))

	go func() {
		c := context.WithoutCancel(ctx)

		if err := s.cache.Save(c, cacheStats, res, s.cfg.Cache.TTL); err != nil {
			log.Error().Err(err).Msg("failed to save stats to cache")
		}
	}()

	return res, nil
}
