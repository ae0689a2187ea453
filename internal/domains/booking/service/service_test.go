package service_test

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"go.uber.org/mock/gomock"

	"github.com/Fairanova/2026-room-booking-backend/config"
	"github.com/Fairanova/2026-room-booking-backend/infras/otel/mocks"
	eventMocks "github.com/Fairanova/2026-room-booking-backend/internal/domains/booking/event/mocks"
	bookingMocks "github.com/Fairanova/2026-room-booking-backend/internal/domains/booking/mocks"
	"github.com/Fairanova/2026-room-booking-backend/internal/domains/booking/model"
	"github.com/Fairanova/2026-room-booking-backend/internal/domains/booking/model/dto"
	"github.com/Fairanova/2026-room-booking-backend/internal/domains/booking/schedule"
	"github.com/Fairanova/2026-room-booking-backend/internal/domains/booking/service"
	roomMocks "github.com/Fairanova/2026-room-booking-backend/internal/domains/room/mocks"
	roomModel "github.com/Fairanova/2026-room-booking-backend/internal/domains/room/model"
	"github.com/Fairanova/2026-room-booking-backend/shared/cache"
	cacheMocks "github.com/Fairanova/2026-room-booking-backend/shared/cache/mocks"
	"github.com/Fairanova/2026-room-booking-backend/shared/constant"
	gDto "github.com/Fairanova/2026-room-booking-backend/shared/dto"
	"github.com/Fairanova/2026-room-booking-backend/shared/failure"
	"github.com/Fairanova/2026-room-booking-backend/shared/timezone"

	"github.com/jmoiron/sqlx"
	"github.com/lib/pq"
)

func serializationError() error {
	return &pq.Error{Code: pq.ErrorCode(constant.PqErrorCodeSerializationFailure)}
}

var fixedNow = time.Date(2026, 2, 1, 8, 0, 0, 0, time.UTC)

var (
	studentActor = schedule.Actor{ID: "student-1", Role: constant.RoleStudent}
	staffActor   = schedule.Actor{ID: "staff-1", Role: constant.RoleStaff}
	adminActor   = schedule.Actor{ID: "admin-1", Role: constant.RoleAdmin}
)

type testDeps struct {
	repo     *bookingMocks.MockBooking
	roomRepo *roomMocks.MockRoom
	events   *eventMocks.MockPublisher
	cache    *cacheMocks.MockRedisCache
}

func newService(ctrl *gomock.Controller) (service.Booking, testDeps) {
	mockRepo := bookingMocks.NewMockBooking(ctrl)
	mockRoomRepo := roomMocks.NewMockRoom(ctrl)
	mockEvents := eventMocks.NewMockPublisher(ctrl)
	mockCache := cacheMocks.NewMockRedisCache(ctrl)
	mockOtel := mocks.NewOtel()

	cfg := &config.Config{}
	cfg.Cache.TTL = 3600

	svc := service.New(mockRepo, mockRoomRepo, mockEvents, cfg, mockCache, mockOtel, timezone.FixedClock(fixedNow))

	return svc, testDeps{
		repo:     mockRepo,
		roomRepo: mockRoomRepo,
		events:   mockEvents,
		cache:    mockCache,
	}
}

func activeRoom(id string) roomModel.Room {
	return roomModel.Room{
		ID:       id,
		RoomCode: "LAB-101",
		RoomName: "Physics Lab",
		Active:   true,
	}
}

func storedBooking(id, owner, status string) model.Booking {
	booking := model.Booking{
		ID:          id,
		RoomID:      "room-1",
		BookingDate: time.Date(2026, 2, 10, 0, 0, 0, 0, time.UTC),
		StartTime:   time.Date(0, 1, 1, 9, 0, 0, 0, time.UTC),
		EndTime:     time.Date(0, 1, 1, 10, 0, 0, 0, time.UTC),
		Purpose:     "weekly sync",
		Status:      status,
	}
	booking.CreatedBy = owner

	return booking
}

func validCreateRequest() dto.CreateBookingRequest {
	return dto.CreateBookingRequest{
		RoomID:      "550e8400-e29b-41d4-a716-446655440000",
		BookingDate: "2026-02-10",
		StartTime:   "09:00",
		EndTime:     "10:00",
		Purpose:     "thesis defense",
	}
}

func TestBookingService_Create(t *testing.T) {
	tests := []struct {
		name         string
		req          dto.CreateBookingRequest
		setupMock    func(deps testDeps)
		wantErr      bool
		expectedKind string
	}{
		{
			name: "successful creation",
			req:  validCreateRequest(),
			setupMock: func(deps testDeps) {
				deps.roomRepo.EXPECT().
					Get(gomock.Any(), gomock.Any()).
					Return(activeRoom("550e8400-e29b-41d4-a716-446655440000"), nil)

				deps.repo.EXPECT().
					Transact(gomock.Any(), gomock.Any()).
					DoAndReturn(func(ctx context.Context, fn func(*sqlx.Tx) error) error {
						return fn(nil)
					})

				deps.repo.EXPECT().
					GetAllTx(gomock.Any(), gomock.Nil(), gomock.Any(), gomock.Any()).
					Return([]model.Booking{}, nil)

				deps.repo.EXPECT().
					InsertTx(gomock.Any(), gomock.Nil(), gomock.Any()).
					Return(nil)
			},
		},
		{
			name: "slot conflict",
			req:  validCreateRequest(),
			setupMock: func(deps testDeps) {
				deps.roomRepo.EXPECT().
					Get(gomock.Any(), gomock.Any()).
					Return(activeRoom("550e8400-e29b-41d4-a716-446655440000"), nil)

				deps.repo.EXPECT().
					Transact(gomock.Any(), gomock.Any()).
					DoAndReturn(func(ctx context.Context, fn func(*sqlx.Tx) error) error {
						return fn(nil)
					})

				deps.repo.EXPECT().
					GetAllTx(gomock.Any(), gomock.Nil(), gomock.Any(), gomock.Any()).
					Return([]model.Booking{storedBooking("existing", "someone", model.StatusApproved)}, nil)
			},
			wantErr:      true,
			expectedKind: failure.KindSlotConflict,
		},
		{
			name: "adjacent slot is not a conflict",
			req: dto.CreateBookingRequest{
				RoomID:      "550e8400-e29b-41d4-a716-446655440000",
				BookingDate: "2026-02-10",
				StartTime:   "10:00",
				EndTime:     "11:00",
				Purpose:     "study group",
			},
			setupMock: func(deps testDeps) {
				deps.roomRepo.EXPECT().
					Get(gomock.Any(), gomock.Any()).
					Return(activeRoom("550e8400-e29b-41d4-a716-446655440000"), nil)

				deps.repo.EXPECT().
					Transact(gomock.Any(), gomock.Any()).
					DoAndReturn(func(ctx context.Context, fn func(*sqlx.Tx) error) error {
						return fn(nil)
					})

				deps.repo.EXPECT().
					GetAllTx(gomock.Any(), gomock.Nil(), gomock.Any(), gomock.Any()).
					Return([]model.Booking{storedBooking("existing", "someone", model.StatusApproved)}, nil)

				deps.repo.EXPECT().
					InsertTx(gomock.Any(), gomock.Nil(), gomock.Any()).
					Return(nil)
			},
		},
		{
			name: "rejected booking does not block the slot",
			req:  validCreateRequest(),
			setupMock: func(deps testDeps) {
				deps.roomRepo.EXPECT().
					Get(gomock.Any(), gomock.Any()).
					Return(activeRoom("550e8400-e29b-41d4-a716-446655440000"), nil)

				deps.repo.EXPECT().
					Transact(gomock.Any(), gomock.Any()).
					DoAndReturn(func(ctx context.Context, fn func(*sqlx.Tx) error) error {
						return fn(nil)
					})

				deps.repo.EXPECT().
					GetAllTx(gomock.Any(), gomock.Nil(), gomock.Any(), gomock.Any()).
					Return([]model.Booking{storedBooking("existing", "someone", model.StatusRejected)}, nil)

				deps.repo.EXPECT().
					InsertTx(gomock.Any(), gomock.Nil(), gomock.Any()).
					Return(nil)
			},
		},
		{
			name: "end before start",
			req: dto.CreateBookingRequest{
				RoomID:      "550e8400-e29b-41d4-a716-446655440000",
				BookingDate: "2026-02-10",
				StartTime:   "10:00",
				EndTime:     "09:00",
				Purpose:     "thesis defense",
			},
			setupMock:    func(deps testDeps) {},
			wantErr:      true,
			expectedKind: failure.KindValidation,
		},
		{
			name: "zero length slot",
			req: dto.CreateBookingRequest{
				RoomID:      "550e8400-e29b-41d4-a716-446655440000",
				BookingDate: "2026-02-10",
				StartTime:   "09:00",
				EndTime:     "09:00",
				Purpose:     "thesis defense",
			},
			setupMock:    func(deps testDeps) {},
			wantErr:      true,
			expectedKind: failure.KindValidation,
		},
		{
			name: "booking date in the past",
			req: dto.CreateBookingRequest{
				RoomID:      "550e8400-e29b-41d4-a716-446655440000",
				BookingDate: "2026-01-31",
				StartTime:   "09:00",
				EndTime:     "10:00",
				Purpose:     "thesis defense",
			},
			setupMock:    func(deps testDeps) {},
			wantErr:      true,
			expectedKind: failure.KindValidation,
		},
		{
			name: "room does not exist",
			req:  validCreateRequest(),
			setupMock: func(deps testDeps) {
				deps.roomRepo.EXPECT().
					Get(gomock.Any(), gomock.Any()).
					Return(roomModel.Room{}, nil)
			},
			wantErr:      true,
			expectedKind: failure.KindValidation,
		},
		{
			name: "room is inactive",
			req:  validCreateRequest(),
			setupMock: func(deps testDeps) {
				room := activeRoom("550e8400-e29b-41d4-a716-446655440000")
				room.Active = false

				deps.roomRepo.EXPECT().
					Get(gomock.Any(), gomock.Any()).
					Return(room, nil)
			},
			wantErr:      true,
			expectedKind: failure.KindValidation,
		},
		{
			name: "serialization failure maps to slot conflict",
			req:  validCreateRequest(),
			setupMock: func(deps testDeps) {
				deps.roomRepo.EXPECT().
					Get(gomock.Any(), gomock.Any()).
					Return(activeRoom("550e8400-e29b-41d4-a716-446655440000"), nil)

				deps.repo.EXPECT().
					Transact(gomock.Any(), gomock.Any()).
					Return(serializationError())
			},
			wantErr:      true,
			expectedKind: failure.KindSlotConflict,
		},
		{
			name: "repository error",
			req:  validCreateRequest(),
			setupMock: func(deps testDeps) {
				deps.roomRepo.EXPECT().
					Get(gomock.Any(), gomock.Any()).
					Return(activeRoom("550e8400-e29b-41d4-a716-446655440000"), nil)

				deps.repo.EXPECT().
					Transact(gomock.Any(), gomock.Any()).
					Return(errors.New("database error"))
			},
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			defer ctrl.Finish()

			svc, deps := newService(ctrl)

			deps.events.EXPECT().Publish(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).AnyTimes()
			deps.cache.EXPECT().Clear(gomock.Any(), gomock.Any()).Return(nil).AnyTimes()

			tt.setupMock(deps)

			err := svc.Create(context.Background(), studentActor, tt.req)

			if tt.wantErr {
				assert.Error(t, err)

				if tt.expectedKind != "" {
					assert.Equal(t, tt.expectedKind, failure.GetKind(err))
				}
			} else {
				assert.NoError(t, err)
			}

			time.Sleep(10 * time.Millisecond)
		})
	}
}

func TestBookingService_Get(t *testing.T) {
	tests := []struct {
		name         string
		actor        schedule.Actor
		setupMock    func(deps testDeps)
		wantErr      bool
		expectedKind string
	}{
		{
			name:  "owner reads own booking",
			actor: studentActor,
			setupMock: func(deps testDeps) {
				deps.repo.EXPECT().
					Get(gomock.Any(), gomock.Any()).
					Return(storedBooking("b1", "student-1", model.StatusPending), nil)
			},
		},
		{
			name:  "staff reads any booking",
			actor: staffActor,
			setupMock: func(deps testDeps) {
				deps.repo.EXPECT().
					Get(gomock.Any(), gomock.Any()).
					Return(storedBooking("b1", "student-1", model.StatusPending), nil)
			},
		},
		{
			name:  "foreign booking is hidden from students",
			actor: schedule.Actor{ID: "student-2", Role: constant.RoleStudent},
			setupMock: func(deps testDeps) {
				deps.repo.EXPECT().
					Get(gomock.Any(), gomock.Any()).
					Return(storedBooking("b1", "student-1", model.StatusPending), nil)
			},
			wantErr:      true,
			expectedKind: failure.KindNotFound,
		},
		{
			name:  "booking not found",
			actor: studentActor,
			setupMock: func(deps testDeps) {
				deps.repo.EXPECT().
					Get(gomock.Any(), gomock.Any()).
					Return(model.Booking{}, nil)
			},
			wantErr:      true,
			expectedKind: failure.KindNotFound,
		},
		{
			name:  "repository error",
			actor: studentActor,
			setupMock: func(deps testDeps) {
				deps.repo.EXPECT().
					Get(gomock.Any(), gomock.Any()).
					Return(model.Booking{}, errors.New("database error"))
			},
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			defer ctrl.Finish()

			svc, deps := newService(ctrl)

			deps.cache.EXPECT().Get(gomock.Any(), gomock.Any(), gomock.Any()).Return(cache.Nil).AnyTimes()
			deps.cache.EXPECT().Save(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).Return(nil).AnyTimes()

			tt.setupMock(deps)

			res, err := svc.Get(context.Background(), tt.actor, "b1")

			if tt.wantErr {
				assert.Error(t, err)

				if tt.expectedKind != "" {
					assert.Equal(t, tt.expectedKind, failure.GetKind(err))
				}
			} else {
				assert.NoError(t, err)
				assert.Equal(t, "b1", res.ID)
			}

			time.Sleep(10 * time.Millisecond)
		})
	}
}

func TestBookingService_GetAll(t *testing.T) {
	t.Run("student listing is scoped to own bookings", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()

		svc, deps := newService(ctrl)

		deps.cache.EXPECT().Get(gomock.Any(), gomock.Any(), gomock.Any()).Return(cache.Nil).AnyTimes()
		deps.cache.EXPECT().Save(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).Return(nil).AnyTimes()

		var capturedFilter gDto.FilterGroup

		deps.repo.EXPECT().
			Count(gomock.Any(), gomock.Any()).
			Return(1, nil)

		deps.repo.EXPECT().
			GetAll(gomock.Any(), gomock.Any(), gomock.Any()).
			DoAndReturn(func(ctx context.Context, params gDto.QueryParams, filter gDto.FilterGroup, columns ...string) ([]model.Booking, error) {
				capturedFilter = filter

				return []model.Booking{storedBooking("b1", "student-1", model.StatusPending)}, nil
			})

		res, err := svc.GetAll(context.Background(), studentActor, gDto.QueryParams{Page: 1, Limit: 10}, gDto.FilterGroup{})

		assert.NoError(t, err)
		assert.Len(t, res.Bookings, 1)
		assert.Equal(t, 1, res.TotalData)

		scoped := false

		for _, raw := range capturedFilter.Filters {
			if filter, ok := raw.(gDto.Filter); ok && filter.Field == model.FieldCreatedBy {
				scoped = true

				assert.Equal(t, "student-1", filter.Value)
			}
		}

		assert.True(t, scoped, "expected listing filter to be scoped to the student")

		time.Sleep(10 * time.Millisecond)
	})

	t.Run("staff listing is not scoped", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()

		svc, deps := newService(ctrl)

		deps.cache.EXPECT().Get(gomock.Any(), gomock.Any(), gomock.Any()).Return(cache.Nil).AnyTimes()
		deps.cache.EXPECT().Save(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).Return(nil).AnyTimes()

		var capturedFilter gDto.FilterGroup

		deps.repo.EXPECT().
			Count(gomock.Any(), gomock.Any()).
			Return(2, nil)

		deps.repo.EXPECT().
			GetAll(gomock.Any(), gomock.Any(), gomock.Any()).
			DoAndReturn(func(ctx context.Context, params gDto.QueryParams, filter gDto.FilterGroup, columns ...string) ([]model.Booking, error) {
				capturedFilter = filter

				return []model.Booking{
					storedBooking("b1", "student-1", model.StatusPending),
					storedBooking("b2", "student-2", model.StatusApproved),
				}, nil
			})

		res, err := svc.GetAll(context.Background(), staffActor, gDto.QueryParams{Page: 1, Limit: 10}, gDto.FilterGroup{})

		assert.NoError(t, err)
		assert.Len(t, res.Bookings, 2)

		for _, raw := range capturedFilter.Filters {
			if filter, ok := raw.(gDto.Filter); ok {
				assert.NotEqual(t, model.FieldCreatedBy, filter.Field)
			}
		}

		time.Sleep(10 * time.Millisecond)
	})

	t.Run("repository error", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()

		svc, deps := newService(ctrl)

		deps.cache.EXPECT().Get(gomock.Any(), gomock.Any(), gomock.Any()).Return(cache.Nil).AnyTimes()

		deps.repo.EXPECT().
			Count(gomock.Any(), gomock.Any()).
			Return(0, errors.New("database error"))

		_, err := svc.GetAll(context.Background(), staffActor, gDto.QueryParams{Page: 1, Limit: 10}, gDto.FilterGroup{})

		assert.Error(t, err)
	})
}

func TestBookingService_UpdateStatus(t *testing.T) {
	tests := []struct {
		name           string
		actor          schedule.Actor
		req            dto.UpdateStatusRequest
		setupMock      func(deps testDeps)
		wantErr        bool
		expectedKind   string
		expectedFields map[string]any
	}{
		{
			name:  "staff approves pending booking",
			actor: staffActor,
			req:   dto.UpdateStatusRequest{Status: model.StatusApproved},
			setupMock: func(deps testDeps) {
				deps.repo.EXPECT().
					Get(gomock.Any(), gomock.Any()).
					Return(storedBooking("b1", "student-1", model.StatusPending), nil)
			},
			expectedFields: map[string]any{
				model.FieldStatus:          model.StatusApproved,
				model.FieldRejectionReason: (*string)(nil),
			},
		},
		{
			name:  "staff rejects with reason",
			actor: staffActor,
			req:   dto.UpdateStatusRequest{Status: model.StatusRejected, RejectionReason: "room under maintenance"},
			setupMock: func(deps testDeps) {
				deps.repo.EXPECT().
					Get(gomock.Any(), gomock.Any()).
					Return(storedBooking("b1", "student-1", model.StatusPending), nil)
			},
			expectedFields: map[string]any{
				model.FieldStatus: model.StatusRejected,
			},
		},
		{
			name:  "approving a rejected booking clears the reason",
			actor: adminActor,
			req:   dto.UpdateStatusRequest{Status: model.StatusApproved},
			setupMock: func(deps testDeps) {
				booking := storedBooking("b1", "student-1", model.StatusRejected)
				reason := "was double booked"
				booking.RejectionReason = &reason

				deps.repo.EXPECT().
					Get(gomock.Any(), gomock.Any()).
					Return(booking, nil)
			},
			expectedFields: map[string]any{
				model.FieldStatus:          model.StatusApproved,
				model.FieldRejectionReason: (*string)(nil),
			},
		},
		{
			name:         "student cannot decide",
			actor:        studentActor,
			req:          dto.UpdateStatusRequest{Status: model.StatusApproved},
			setupMock:    func(deps testDeps) {},
			wantErr:      true,
			expectedKind: failure.KindForbidden,
		},
		{
			name:  "booking not found",
			actor: staffActor,
			req:   dto.UpdateStatusRequest{Status: model.StatusApproved},
			setupMock: func(deps testDeps) {
				deps.repo.EXPECT().
					Get(gomock.Any(), gomock.Any()).
					Return(model.Booking{}, nil)
			},
			wantErr:      true,
			expectedKind: failure.KindNotFound,
		},
		{
			name:  "cancelled booking is terminal",
			actor: staffActor,
			req:   dto.UpdateStatusRequest{Status: model.StatusApproved},
			setupMock: func(deps testDeps) {
				deps.repo.EXPECT().
					Get(gomock.Any(), gomock.Any()).
					Return(storedBooking("b1", "student-1", model.StatusCancelled), nil)
			},
			wantErr:      true,
			expectedKind: failure.KindInvalidTransition,
		},
		{
			name:  "cannot set status back to pending",
			actor: staffActor,
			req:   dto.UpdateStatusRequest{Status: model.StatusPending},
			setupMock: func(deps testDeps) {
				deps.repo.EXPECT().
					Get(gomock.Any(), gomock.Any()).
					Return(storedBooking("b1", "student-1", model.StatusApproved), nil)
			},
			wantErr:      true,
			expectedKind: failure.KindInvalidTransition,
		},
		{
			name:  "unknown status",
			actor: staffActor,
			req:   dto.UpdateStatusRequest{Status: "archived"},
			setupMock: func(deps testDeps) {
				deps.repo.EXPECT().
					Get(gomock.Any(), gomock.Any()).
					Return(storedBooking("b1", "student-1", model.StatusPending), nil)
			},
			wantErr:      true,
			expectedKind: failure.KindValidation,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			defer ctrl.Finish()

			svc, deps := newService(ctrl)

			deps.events.EXPECT().Publish(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).AnyTimes()
			deps.cache.EXPECT().Clear(gomock.Any(), gomock.Any()).Return(nil).AnyTimes()

			tt.setupMock(deps)

			if tt.expectedFields != nil {
				deps.repo.EXPECT().
					Update(gomock.Any(), gomock.Any(), gomock.Any()).
					DoAndReturn(func(ctx context.Context, fields map[string]any, filter gDto.FilterGroup) error {
						for key, expected := range tt.expectedFields {
							assert.Equal(t, expected, fields[key])
						}

						if tt.req.Status == model.StatusRejected {
							reason, ok := fields[model.FieldRejectionReason].(*string)

							assert.True(t, ok)
							assert.NotNil(t, reason)
							assert.Equal(t, tt.req.RejectionReason, *reason)
						}

						return nil
					})
			}

			err := svc.UpdateStatus(context.Background(), tt.actor, tt.req, "b1")

			if tt.wantErr {
				assert.Error(t, err)

				if tt.expectedKind != "" {
					assert.Equal(t, tt.expectedKind, failure.GetKind(err))
				}
			} else {
				assert.NoError(t, err)
			}

			time.Sleep(10 * time.Millisecond)
		})
	}
}

func TestBookingService_Cancel(t *testing.T) {
	tests := []struct {
		name         string
		actor        schedule.Actor
		setupMock    func(deps testDeps)
		wantUpdate   bool
		wantErr      bool
		expectedKind string
	}{
		{
			name:  "owner cancels own pending booking",
			actor: studentActor,
			setupMock: func(deps testDeps) {
				deps.repo.EXPECT().
					Get(gomock.Any(), gomock.Any()).
					Return(storedBooking("b1", "student-1", model.StatusPending), nil)
			},
			wantUpdate: true,
		},
		{
			name:  "owner cannot cancel approved booking",
			actor: studentActor,
			setupMock: func(deps testDeps) {
				deps.repo.EXPECT().
					Get(gomock.Any(), gomock.Any()).
					Return(storedBooking("b1", "student-1", model.StatusApproved), nil)
			},
			wantErr:      true,
			expectedKind: failure.KindNotCancellable,
		},
		{
			name:  "admin cancels approved booking",
			actor: adminActor,
			setupMock: func(deps testDeps) {
				deps.repo.EXPECT().
					Get(gomock.Any(), gomock.Any()).
					Return(storedBooking("b1", "student-1", model.StatusApproved), nil)
			},
			wantUpdate: true,
		},
		{
			name:  "already cancelled",
			actor: adminActor,
			setupMock: func(deps testDeps) {
				deps.repo.EXPECT().
					Get(gomock.Any(), gomock.Any()).
					Return(storedBooking("b1", "student-1", model.StatusCancelled), nil)
			},
			wantErr:      true,
			expectedKind: failure.KindNotCancellable,
		},
		{
			name:  "foreign booking is hidden from students",
			actor: schedule.Actor{ID: "student-2", Role: constant.RoleStudent},
			setupMock: func(deps testDeps) {
				deps.repo.EXPECT().
					Get(gomock.Any(), gomock.Any()).
					Return(storedBooking("b1", "student-1", model.StatusPending), nil)
			},
			wantErr:      true,
			expectedKind: failure.KindNotFound,
		},
		{
			name:  "staff cannot cancel someone else's booking",
			actor: staffActor,
			setupMock: func(deps testDeps) {
				deps.repo.EXPECT().
					Get(gomock.Any(), gomock.Any()).
					Return(storedBooking("b1", "student-1", model.StatusPending), nil)
			},
			wantErr:      true,
			expectedKind: failure.KindForbidden,
		},
		{
			name:  "booking not found",
			actor: adminActor,
			setupMock: func(deps testDeps) {
				deps.repo.EXPECT().
					Get(gomock.Any(), gomock.Any()).
					Return(model.Booking{}, nil)
			},
			wantErr:      true,
			expectedKind: failure.KindNotFound,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			defer ctrl.Finish()

			svc, deps := newService(ctrl)

			deps.events.EXPECT().Publish(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).AnyTimes()
			deps.cache.EXPECT().Clear(gomock.Any(), gomock.Any()).Return(nil).AnyTimes()

			tt.setupMock(deps)

			if tt.wantUpdate {
				deps.repo.EXPECT().
					Update(gomock.Any(), gomock.Any(), gomock.Any()).
					DoAndReturn(func(ctx context.Context, fields map[string]any, filter gDto.FilterGroup) error {
						assert.Equal(t, model.StatusCancelled, fields[model.FieldStatus])

						return nil
					})
			}

			err := svc.Cancel(context.Background(), tt.actor, "b1")

			if tt.wantErr {
				assert.Error(t, err)

				if tt.expectedKind != "" {
					assert.Equal(t, tt.expectedKind, failure.GetKind(err))
				}
			} else {
				assert.NoError(t, err)
			}

			time.Sleep(10 * time.Millisecond)
		})
	}
}

func TestBookingService_AvailableRooms(t *testing.T) {
	roomOne := activeRoom("room-1")
	roomTwo := activeRoom("room-2")
	roomTwo.RoomCode = "LAB-102"

	tests := []struct {
		name          string
		req           dto.AvailableRoomsRequest
		setupMock     func(deps testDeps)
		wantErr       bool
		expectedKind  string
		expectedRooms []string
	}{
		{
			name: "occupied room is excluded",
			req:  dto.AvailableRoomsRequest{Date: "2026-02-10", StartTime: "09:30", EndTime: "10:30"},
			setupMock: func(deps testDeps) {
				deps.roomRepo.EXPECT().
					GetAll(gomock.Any(), gomock.Any(), gomock.Any()).
					Return([]roomModel.Room{roomOne, roomTwo}, nil)

				deps.repo.EXPECT().
					GetAll(gomock.Any(), gomock.Any(), gomock.Any()).
					Return([]model.Booking{storedBooking("b1", "student-1", model.StatusApproved)}, nil)
			},
			expectedRooms: []string{"room-2"},
		},
		{
			name: "adjacent slot keeps the room available",
			req:  dto.AvailableRoomsRequest{Date: "2026-02-10", StartTime: "10:00", EndTime: "11:00"},
			setupMock: func(deps testDeps) {
				deps.roomRepo.EXPECT().
					GetAll(gomock.Any(), gomock.Any(), gomock.Any()).
					Return([]roomModel.Room{roomOne, roomTwo}, nil)

				deps.repo.EXPECT().
					GetAll(gomock.Any(), gomock.Any(), gomock.Any()).
					Return([]model.Booking{storedBooking("b1", "student-1", model.StatusApproved)}, nil)
			},
			expectedRooms: []string{"room-1", "room-2"},
		},
		{
			name:         "end before start",
			req:          dto.AvailableRoomsRequest{Date: "2026-02-10", StartTime: "11:00", EndTime: "10:00"},
			setupMock:    func(deps testDeps) {},
			wantErr:      true,
			expectedKind: failure.KindValidation,
		},
		{
			name: "room repository error",
			req:  dto.AvailableRoomsRequest{Date: "2026-02-10", StartTime: "09:00", EndTime: "10:00"},
			setupMock: func(deps testDeps) {
				deps.roomRepo.EXPECT().
					GetAll(gomock.Any(), gomock.Any(), gomock.Any()).
					Return(nil, errors.New("database error"))
			},
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			defer ctrl.Finish()

			svc, deps := newService(ctrl)

			tt.setupMock(deps)

			res, err := svc.AvailableRooms(context.Background(), tt.req)

			if tt.wantErr {
				assert.Error(t, err)

				if tt.expectedKind != "" {
					assert.Equal(t, tt.expectedKind, failure.GetKind(err))
				}

				return
			}

			assert.NoError(t, err)
			assert.Len(t, res.Rooms, len(tt.expectedRooms))

			for i, id := range tt.expectedRooms {
				assert.Equal(t, id, res.Rooms[i].ID)
			}
		})
	}
}
