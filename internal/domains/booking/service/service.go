package service

import (
	"context"
	"fmt"
	"time"

	"github.com/jmoiron/sqlx"
	"github.com/rs/zerolog/log"

	"github.com/Fairanova/2026-room-booking-backend/config"
	"github.com/Fairanova/2026-room-booking-backend/infras/otel"
	"github.com/Fairanova/2026-room-booking-backend/infras/postgres"
	"github.com/Fairanova/2026-room-booking-backend/internal/domains/booking/event"
	"github.com/Fairanova/2026-room-booking-backend/internal/domains/booking/model"
	"github.com/Fairanova/2026-room-booking-backend/internal/domains/booking/model/dto"
	"github.com/Fairanova/2026-room-booking-backend/internal/domains/booking/repository"
	"github.com/Fairanova/2026-room-booking-backend/internal/domains/booking/schedule"
	roomModel "github.com/Fairanova/2026-room-booking-backend/internal/domains/room/model"
	roomDto "github.com/Fairanova/2026-room-booking-backend/internal/domains/room/model/dto"
	roomRepo "github.com/Fairanova/2026-room-booking-backend/internal/domains/room/repository"
	"github.com/Fairanova/2026-room-booking-backend/shared"
	"github.com/Fairanova/2026-room-booking-backend/shared/cache"
	"github.com/Fairanova/2026-room-booking-backend/shared/constant"
	gDto "github.com/Fairanova/2026-room-booking-backend/shared/dto"
	"github.com/Fairanova/2026-room-booking-backend/shared/failure"
	"github.com/Fairanova/2026-room-booking-backend/shared/timezone"
)

const (
	cacheGetBooking    = "booking:get"
	cacheGetAllBooking = "booking:gets"
	cacheCountBooking  = "booking:count"
)

type Booking interface {
	Create(ctx context.Context, actor schedule.Actor, req dto.CreateBookingRequest) error
	GetAll(ctx context.Context, actor schedule.Actor, req gDto.QueryParams, filter gDto.FilterGroup) (dto.GetBookingsResponse, error)
	Count(ctx context.Context, req gDto.QueryParams, filter gDto.FilterGroup) (int, error)
	Get(ctx context.Context, actor schedule.Actor, id string) (dto.BookingResponse, error)
	UpdateStatus(ctx context.Context, actor schedule.Actor, req dto.UpdateStatusRequest, id string) error
	Cancel(ctx context.Context, actor schedule.Actor, id string) error
	AvailableRooms(ctx context.Context, req dto.AvailableRoomsRequest) (roomDto.GetRoomsResponse, error)
}

type serviceImpl struct {
	repo     repository.Booking
	roomRepo roomRepo.Room
	events   event.Publisher
	cfg      *config.Config
	cache    cache.RedisCache
	otel     otel.Otel
	clock    timezone.Clock
}

func New(repo repository.Booking, roomRepo roomRepo.Room, events event.Publisher, cfg *config.Config, cache cache.RedisCache, otel otel.Otel, clock timezone.Clock) Booking {
	return &serviceImpl{
		repo:     repo,
		roomRepo: roomRepo,
		events:   events,
		cfg:      cfg,
		cache:    cache,
		otel:     otel,
		clock:    clock,
	}
}

func (s *serviceImpl) Create(ctx context.Context, actor schedule.Actor, req dto.CreateBookingRequest) (err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".Create")
	defer scope.End()
	defer scope.TraceIfError(err)

	booking, err := req.ToModel(actor.ID)
	if err != nil {
		log.Error().Err(err).Msg("failed to parse booking request")

		return err
	}

	requested := schedule.FromBooking(booking)
	if !requested.IsValid() {
		return failure.BadRequestFromString("end time must be after start time") // nolint:wrapcheck
	}

	today := timezone.ToAppTime(s.clock())
	if beforeDay(booking.BookingDate, today) {
		return failure.BadRequestFromString("booking date cannot be in the past") // nolint:wrapcheck
	}

	room, err := s.roomRepo.Get(ctx, shared.FilterByID(req.RoomID, roomModel.FieldID, roomModel.TableName))
	if err != nil {
		log.Error().Err(err).Msg("failed to get room")

		return fmt.Errorf("failed to get room: %w", err)
	}

	if room.ID == constant.Empty {
		return failure.BadRequestFromString("room does not exist") // nolint:wrapcheck
	}

	if !room.Active {
		return failure.BadRequestFromString("room is not open for booking") // nolint:wrapcheck
	}

	// The conflict check and the insert run in one serializable transaction,
	// so two requests racing for the same slot cannot both commit.
	err = s.repo.Transact(ctx, func(sqltx *sqlx.Tx) error {
		existing, txErr := s.repo.GetAllTx(ctx, sqltx, gDto.QueryParams{}, repository.ActiveOnRoomAndDateFilter(req.RoomID, booking.BookingDate))
		if txErr != nil {
			return txErr
		}

		if schedule.HasConflict(requested, existing, constant.Empty) {
			return failure.SlotConflict("room is already booked for the requested time") // nolint:wrapcheck
		}

		return s.repo.InsertTx(ctx, sqltx, booking)
	})
	if err != nil {
		if postgres.IsSerializationFailure(err) {
			return failure.SlotConflict("room is already booked for the requested time") // nolint:wrapcheck
		}

		log.Error().Err(err).Msg("failed to create booking")

		return err
	}

	go func() {
		c := context.WithoutCancel(ctx)

		s.events.Publish(c, event.TypeCreated, actor.ID, booking)

		shared.InvalidateCaches(c, s.cache, cacheGetAllBooking)
		shared.InvalidateCaches(c, s.cache, cacheCountBooking)
	}()

	return nil
}

func (s *serviceImpl) GetAll(ctx context.Context, actor schedule.Actor, req gDto.QueryParams, filter gDto.FilterGroup) (res dto.GetBookingsResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".GetAll")
	defer scope.End()
	defer scope.TraceIfError(err)

	if actor.ScopedToOwn() {
		filter.Filters = append(filter.Filters, gDto.Filter{
			Field:    model.FieldCreatedBy,
			Value:    actor.ID,
			Operator: gDto.FilterOperatorEq,
			Table:    model.TableName,
		})

		if filter.Operator == constant.Empty {
			filter.Operator = gDto.FilterGroupOperatorAnd
		}
	}

	cacheKey := shared.BuildCacheKeyWithQuery(cacheGetAllBooking, req, filter)

	err = s.cache.Get(ctx, cacheKey, &res)
	if err == nil {
		log.Info().Str("cacheKey", cacheKey).Msg("cache hit for bookings")

		return res, nil
	}

	total, err := s.Count(ctx, req, filter)
	if err != nil {
		log.Error().Err(err).Msg("failed to count bookings")

		return res, fmt.Errorf("failed to count bookings: %w", err)
	}

	models, err := s.repo.GetAll(ctx, req, filter)
	if err != nil {
		log.Error().Err(err).Msg("failed to get bookings")

		return res, fmt.Errorf("failed to get bookings: %w", err)
	}

	res.FromModels(models, total, req.Limit)

	go func() {
		c := context.WithoutCancel(ctx)

		if err := s.cache.Save(c, cacheKey, res, s.cfg.Cache.TTL); err != nil {
			log.Error().Err(err).Msg("failed to save bookings to cache")
		}
	}()

	return res, nil
}

func (s *serviceImpl) Count(ctx context.Context, req gDto.QueryParams, filter gDto.FilterGroup) (res int, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".Count")
	defer scope.End()
	defer scope.TraceIfError(err)

	cacheKey := shared.BuildCacheKeyWithQuery(cacheCountBooking, req, filter)

	err = s.cache.Get(ctx, cacheKey, &res)
	if err == nil {
		log.Info().Str("cacheKey", cacheKey).Msg("cache hit for booking count")

		return res, nil
	}

	res, err = s.repo.Count(ctx, filter)
	if err != nil {
		log.Error().Err(err).Msg("failed to count bookings")

		return res, fmt.Errorf("failed to count bookings: %w", err)
	}

	go func() {
		c := context.WithoutCancel(ctx)

		if err := s.cache.Save(c, cacheKey, res, s.cfg.Cache.TTL); err != nil {
			log.Error().Err(err).Msg("failed to save booking count to cache")
		}
	}()

	return res, nil
}

func (s *serviceImpl) Get(ctx context.Context, actor schedule.Actor, id string) (res dto.BookingResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".Get")
	defer scope.End()
	defer scope.TraceIfError(nil)

	// The key carries the actor so a cached response is never served across
	// authorization scopes.
	cacheKey := shared.BuildCacheKey(cacheGetBooking, id+":"+actor.ID)

	err = s.cache.Get(ctx, cacheKey, &res)
	if err == nil {
		log.Info().Str("cacheKey", cacheKey).Msg("cache hit for booking")

		return res, nil
	}

	booking, err := s.repo.Get(ctx, shared.FilterByID(id, model.FieldID, model.TableName))
	if err != nil {
		log.Error().Err(err).Msg("failed to get booking")

		return res, fmt.Errorf("failed to get booking: %w", err)
	}

	// A booking the actor may not see is reported as missing so the response
	// does not leak its existence.
	if booking.ID == constant.Empty || !actor.CanSee(booking) {
		return res, failure.NotFound("booking not found") // nolint:wrapcheck
	}

	res.FromModel(booking)

	go func() {
		c := context.WithoutCancel(ctx)

		if err := s.cache.Save(c, cacheKey, res, s.cfg.Cache.TTL); err != nil {
			log.Error().Err(err).Msg("failed to save booking to cache")
		}
	}()

	return res, nil
}

func (s *serviceImpl) UpdateStatus(ctx context.Context, actor schedule.Actor, req dto.UpdateStatusRequest, id string) (err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".UpdateStatus")
	defer scope.End()
	defer scope.TraceIfError(err)

	if err = actor.AuthorizeDecision(); err != nil {
		return err
	}

	filter := shared.FilterByID(id, model.FieldID, model.TableName)

	booking, err := s.repo.Get(ctx, filter)
	if err != nil {
		log.Error().Err(err).Msg("failed to get booking")

		return fmt.Errorf("failed to get booking: %w", err)
	}

	if booking.ID == constant.Empty {
		return failure.NotFound("booking not found") // nolint:wrapcheck
	}

	if err = schedule.ValidateTransition(booking.Status, req.Status); err != nil {
		return err
	}

	// The rejection reason lives and dies with the rejected status.
	var reason *string
	if req.Status == model.StatusRejected {
		reason = &req.RejectionReason
	}

	updatedFields := map[string]any{
		model.FieldStatus:          req.Status,
		model.FieldRejectionReason: reason,
		constant.FieldModifiedAt:   timezone.ToAppTime(s.clock()),
		constant.FieldModifiedBy:   actor.ID,
	}

	if err = s.repo.Update(ctx, updatedFields, filter); err != nil {
		log.Error().Err(err).Msg("failed to update booking status")

		return fmt.Errorf("failed to update booking status: %w", err)
	}

	booking.Status = req.Status
	booking.RejectionReason = reason

	go func() {
		c := context.WithoutCancel(ctx)

		s.events.Publish(c, event.TypeDecided, actor.ID, booking)

		shared.InvalidateCaches(c, s.cache, shared.BuildCacheKey(cacheGetBooking, id))
		shared.InvalidateCaches(c, s.cache, cacheGetAllBooking)
		shared.InvalidateCaches(c, s.cache, cacheCountBooking)
	}()

	return nil
}

func (s *serviceImpl) Cancel(ctx context.Context, actor schedule.Actor, id string) (err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".Cancel")
	defer scope.End()
	defer scope.TraceIfError(err)

	filter := shared.FilterByID(id, model.FieldID, model.TableName)

	booking, err := s.repo.Get(ctx, filter)
	if err != nil {
		log.Error().Err(err).Msg("failed to get booking")

		return fmt.Errorf("failed to get booking: %w", err)
	}

	if booking.ID == constant.Empty || !actor.CanSee(booking) {
		return failure.NotFound("booking not found") // nolint:wrapcheck
	}

	if err = actor.AuthorizeCancellation(booking); err != nil {
		return err
	}

	updatedFields := map[string]any{
		model.FieldStatus:        model.StatusCancelled,
		constant.FieldModifiedAt: timezone.ToAppTime(s.clock()),
		constant.FieldModifiedBy: actor.ID,
	}

	if err = s.repo.Update(ctx, updatedFields, filter); err != nil {
		log.Error().Err(err).Msg("failed to cancel booking")

		return fmt.Errorf("failed to cancel booking: %w", err)
	}

	booking.Status = model.StatusCancelled

	go func() {
		c := context.WithoutCancel(ctx)

		s.events.Publish(c, event.TypeCancelled, actor.ID, booking)

		shared.InvalidateCaches(c, s.cache, shared.BuildCacheKey(cacheGetBooking, id))
		shared.InvalidateCaches(c, s.cache, cacheGetAllBooking)
		shared.InvalidateCaches(c, s.cache, cacheCountBooking)
	}()

	return nil
}

func (s *serviceImpl) AvailableRooms(ctx context.Context, req dto.AvailableRoomsRequest) (res roomDto.GetRoomsResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".AvailableRooms")
	defer scope.End()
	defer scope.TraceIfError(err)

	requested, err := req.ToSlot()
	if err != nil {
		return res, err
	}

	if !requested.IsValid() {
		return res, failure.BadRequestFromString("end time must be after start time") // nolint:wrapcheck
	}

	params := gDto.QueryParams{
		SortBy:  roomModel.FieldRoomCode,
		SortDir: gDto.SortDirAsc,
	}

	rooms, err := s.roomRepo.GetAll(ctx, params, roomRepo.ActiveFilter())
	if err != nil {
		log.Error().Err(err).Msg("failed to get rooms")

		return res, fmt.Errorf("failed to get rooms: %w", err)
	}

	bookings, err := s.repo.GetAll(ctx, gDto.QueryParams{}, repository.ActiveOnDateFilter(requested.Date))
	if err != nil {
		log.Error().Err(err).Msg("failed to get bookings")

		return res, fmt.Errorf("failed to get bookings: %w", err)
	}

	occupied := map[string][]model.Booking{}
	for _, booking := range bookings {
		occupied[booking.RoomID] = append(occupied[booking.RoomID], booking)
	}

	available := []roomModel.Room{}

	for _, room := range rooms {
		if schedule.HasConflict(requested, occupied[room.ID], constant.Empty) {
			continue
		}

		available = append(available, room)
	}

	res.FromModels(available, len(available), 0)

	return res, nil
}

func beforeDay(a, b time.Time) bool {
	ay, am, ad := a.Date()
	by, bm, bd := b.Date()

	if ay != by {
		return ay < by
	}

	if am != bm {
		return am < bm
	}

	return ad < bd
}
