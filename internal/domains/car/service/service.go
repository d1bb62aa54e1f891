package service

import (
	"context"
	"fmt"
	"time"

	"rentcar/config"
	"rentcar/infras/otel"
	"rentcar/infras/s3"
	bookingModel "rentcar/internal/domains/booking/model"
	bookingRepo "rentcar/internal/domains/booking/repository"
	"rentcar/internal/domains/car/model"
	"rentcar/internal/domains/car/model/dto"
	"rentcar/internal/domains/car/repository"
	"rentcar/shared"
	"rentcar/shared/base64"
	"rentcar/shared/cache"
	"rentcar/shared/constant"
	gDto "rentcar/shared/dto"
	"rentcar/shared/failure"
	"rentcar/shared/timezone"

	"github.com/google/uuid"
	"github.com/rs/zerolog/log"
)

const (
	cacheGetCar    = "car:get"
	cacheGetAllCar = "car:gets"
	cacheCountCar  = "car:count"
)

type Car interface {
	Create(ctx context.Context, req dto.CreateCarRequest) error
	GetAll(ctx context.Context, req gDto.QueryParams, filter gDto.FilterGroup) (dto.GetCarsResponse, error)
	Count(ctx context.Context, req gDto.QueryParams, filter gDto.FilterGroup) (int, error)
	Get(ctx context.Context, id string) (dto.CarResponse, error)
	Update(ctx context.Context, req dto.UpdateCarRequest, id string) error
	Delete(ctx context.Context, id string) error
}

type serviceImpl struct {
	repo        repository.Car
	bookingRepo bookingRepo.Booking
	cfg         *config.Config
	cache       cache.RedisCache
	otel        otel.Otel
	s3          s3.S3
}

func New(repo repository.Car, bookingRepo bookingRepo.Booking, cfg *config.Config, cache cache.RedisCache, otel otel.Otel, s3 s3.S3) Car {
	return &serviceImpl{
		repo:        repo,
		bookingRepo: bookingRepo,
		cfg:         cfg,
		cache:       cache,
		otel:        otel,
		s3:          s3,
	}
}

func (s *serviceImpl) Create(ctx context.Context, req dto.CreateCarRequest) (err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".Create")
	defer scope.End()
	defer scope.TraceIfError(err)

	user, ok := ctx.Value(constant.ContextKeyUserEmail).(string)
	if !ok {
		user = constant.ContextGuest
	}

	imageURL := constant.Empty

	if req.Image != constant.Empty {
		imageURL, err = s.uploadImage(ctx, req.Image)
		if err != nil {
			log.Error().Err(err).Msg("failed to upload car image")

			return fmt.Errorf("failed to upload car image: %w", err)
		}
	}

	if err = s.repo.Insert(ctx, req.ToModel(user, imageURL)); err != nil {
		log.Error().Err(err).Msg("failed to create car")

		return fmt.Errorf("failed to create car: %w", err)
	}

	go func() {
		c := context.WithoutCancel(ctx)

		shared.InvalidateCaches(c, s.cache, cacheGetAllCar)
		shared.InvalidateCaches(c, s.cache, cacheCountCar)
	}()

	return nil
}

func (s *serviceImpl) GetAll(ctx context.Context, req gDto.QueryParams, filter gDto.FilterGroup) (res dto.GetCarsResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".GetAll")
	defer scope.End()
	defer scope.TraceIfError(err)

	cacheKey := shared.BuildCacheKeyWithQuery(cacheGetAllCar, req, filter)

	err = s.cache.Get(ctx, cacheKey, &res)
	if err == nil {
		log.Info().Str("cacheKey", cacheKey).Msg("cache hit for cars")

		return res, nil
	}

	total, err := s.Count(ctx, req, filter)
	if err != nil {
		log.Error().Err(err).Msg("failed to count cars")

		return res, fmt.Errorf("failed to count cars: %w", err)
	}

	cars, err := s.repo.GetAll(ctx, req, filter)
	if err != nil {
		log.Error().Err(err).Msg("failed to get cars")

		return res, fmt.Errorf("failed to get cars: %w", err)
	}

	bookedUntil, err := s.bookedUntilByCar(ctx)
	if err != nil {
		log.Error().Err(err).Msg("failed to derive car availability")

		return res, fmt.Errorf("failed to derive car availability: %w", err)
	}

	res.FromModels(cars, bookedUntil, total, req.Limit)

	go func() {
		c := context.WithoutCancel(ctx)

		if err := s.cache.Save(c, cacheKey, res, s.cfg.Cache.TTL); err != nil {
			log.Error().Err(err).Msg("failed to save cars to cache")
		}
	}()

	return res, nil
}

func (s *serviceImpl) Count(ctx context.Context, req gDto.QueryParams, filter gDto.FilterGroup) (res int, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".Count")
	defer scope.End()
	defer scope.TraceIfError(err)

	cacheKey := shared.BuildCacheKeyWithQuery(cacheCountCar, req, filter)

	err = s.cache.Get(ctx, cacheKey, &res)
	if err == nil {
		log.Info().Str("cacheKey", cacheKey).Msg("cache hit for car count")

		return res, nil
	}

	res, err = s.repo.Count(ctx, filter)
	if err != nil {
		log.Error().Err(err).Msg("failed to count cars")

		return res, fmt.Errorf("failed to count cars: %w", err)
	}

	go func() {
		c := context.WithoutCancel(ctx)

		if err := s.cache.Save(c, cacheKey, res, s.cfg.Cache.TTL); err != nil {
			log.Error().Err(err).Msg("failed to save car count to cache")
		}
	}()

	return res, nil
}

func (s *serviceImpl) Get(ctx context.Context, id string) (res dto.CarResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".Get")
	defer scope.End()
	defer scope.TraceIfError(err)

	cacheKey := shared.BuildCacheKey(cacheGetCar, id)

	err = s.cache.Get(ctx, cacheKey, &res)
	if err == nil {
		log.Info().Str("cacheKey", cacheKey).Msg("cache hit for car")

		return res, nil
	}

	car, err := s.repo.Get(ctx, shared.FilterByID(id, model.FieldID, model.TableName))
	if err != nil {
		log.Error().Err(err).Msg("failed to get car")

		return res, fmt.Errorf("failed to get car: %w", err)
	}

	if car.ID == constant.Empty {
		return res, failure.NotFound("car not found")
	}

	bookedUntil, err := s.bookedUntilByCar(ctx)
	if err != nil {
		log.Error().Err(err).Msg("failed to derive car availability")

		return res, fmt.Errorf("failed to derive car availability: %w", err)
	}

	res.FromModel(car, bookedUntil[car.ID])

	go func() {
		c := context.WithoutCancel(ctx)

		if err := s.cache.Save(c, cacheKey, res, s.cfg.Cache.TTL); err != nil {
			log.Error().Err(err).Msg("failed to save car to cache")
		}
	}()

	return res, nil
}

func (s *serviceImpl) Update(ctx context.Context, req dto.UpdateCarRequest, id string) (err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".Update")
	defer scope.End()
	defer scope.TraceIfError(err)

	if req == (dto.UpdateCarRequest{}) {
		return failure.BadRequestFromString("update request cannot be empty")
	}

	user, ok := ctx.Value(constant.ContextKeyUserEmail).(string)
	if !ok {
		user = constant.ContextGuest
	}

	filter := shared.FilterByID(id, model.FieldID, model.TableName)

	exist, err := s.repo.Exist(ctx, filter)
	if err != nil {
		log.Error().Err(err).Msg("failed to check if car exists")

		return fmt.Errorf("failed to check if car exists: %w", err)
	}

	if !exist {
		log.Error().Msg("car not found")

		return failure.NotFound("car not found")
	}

	if req.Image != nil && *req.Image != constant.Empty && base64.GetContentType(*req.Image) != constant.Empty {
		imageURL, err := s.uploadImage(ctx, *req.Image)
		if err != nil {
			log.Error().Err(err).Msg("failed to upload car image")

			return fmt.Errorf("failed to upload car image: %w", err)
		}

		req.Image = &imageURL
	}

	updatedFields := shared.TransformFields(req, user)
	if err := s.repo.Update(ctx, updatedFields, filter); err != nil {
		log.Error().Err(err).Msg("failed to update car")

		return fmt.Errorf("failed to update car: %w", err)
	}

	go func() {
		c := context.WithoutCancel(ctx)

		if err := s.cache.Delete(c, shared.BuildCacheKey(cacheGetCar, id)); err != nil {
			log.Error().Err(err).Msg("failed to delete car from cache")
		}

		shared.InvalidateCaches(c, s.cache, cacheGetAllCar)
		shared.InvalidateCaches(c, s.cache, cacheCountCar)
	}()

	return nil
}

func (s *serviceImpl) Delete(ctx context.Context, id string) (err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".Delete")
	defer scope.End()
	defer scope.TraceIfError(err)

	filter := shared.FilterByID(id, model.FieldID, model.TableName)

	car, err := s.repo.Get(ctx, filter)
	if err != nil {
		log.Error().Err(err).Msg("failed to get car for deletion")

		return fmt.Errorf("failed to get car: %w", err)
	}

	if car.ID == constant.Empty {
		log.Error().Msg("car not found")

		return failure.NotFound("car not found")
	}

	if err = s.repo.Delete(ctx, filter); err != nil {
		log.Error().Err(err).Msg("failed to delete car")

		return fmt.Errorf("failed to delete car: %w", err)
	}

	go func() {
		c := context.WithoutCancel(ctx)

		if err := s.cache.Delete(c, shared.BuildCacheKey(cacheGetCar, id)); err != nil {
			log.Error().Err(err).Msg("failed to delete car from cache")
		}

		shared.InvalidateCaches(c, s.cache, cacheGetAllCar)
		shared.InvalidateCaches(c, s.cache, cacheCountCar)

		if car.Image != constant.Empty {
			bucketName := s.cfg.External.S3.BucketName

			objectName := s.s3.GetObjectNameFromURL(bucketName, car.Image)
			if objectName == constant.Empty {
				return
			}

			if err := s.s3.DeleteFile(c, bucketName, model.EntityName, objectName); err != nil {
				log.Error().Err(err).Str("objectName", objectName).Msg("failed to delete car image from S3")
			}
		}
	}()

	return nil
}

// bookedUntilByCar derives the busy-until date per car from bookings whose
// end date has not passed. The result is recomputed on every call and never
// persisted.
func (s *serviceImpl) bookedUntilByCar(ctx context.Context) (map[string]*time.Time, error) {
	now := timezone.Now()

	filter := gDto.FilterGroup{
		Filters: []any{
			gDto.Filter{
				Field:    bookingModel.FieldEndDate,
				Operator: gDto.FilterOperatorGreaterEq,
				Value:    now.Format(constant.BookingDateFormat),
				Table:    bookingModel.TableName,
			},
		},
	}

	bookings, err := s.bookingRepo.GetAll(ctx, gDto.QueryParams{}, filter)
	if err != nil {
		return nil, fmt.Errorf("failed to get open bookings: %w", err)
	}

	bookedUntil := map[string]*time.Time{}
	for _, booking := range bookings {
		bookedUntil[booking.CarID] = bookingModel.BusyUntil(booking.CarID, bookings, now)
	}

	return bookedUntil, nil
}

func (s *serviceImpl) uploadImage(ctx context.Context, image string) (string, error) {
	contentType := base64.GetContentType(image)
	if contentType == constant.Empty {
		return constant.Empty, failure.BadRequestFromString("image must be a base64 data URI")
	}

	fileData, err := base64.Decode(image)
	if err != nil {
		return constant.Empty, failure.BadRequestFromString("image payload is not valid base64")
	}

	return s.s3.UploadFileBytes(ctx, s.cfg.External.S3.BucketName, model.EntityName, uuid.NewString(), contentType, fileData)
}
