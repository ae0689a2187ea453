package repository

//go:generate go run go.uber.org/mock/mockgen -source=./repository.go -destination=../mocks/repository_mock.go -package=mocks

import (
	"context"
	"time"

	"github.com/jmoiron/sqlx"

	"github.com/Fairanova/2026-room-booking-backend/infras/otel"
	"github.com/Fairanova/2026-room-booking-backend/infras/postgres"
	"github.com/Fairanova/2026-room-booking-backend/internal/domains/booking/model"
	"github.com/Fairanova/2026-room-booking-backend/shared/constant"
	gDto "github.com/Fairanova/2026-room-booking-backend/shared/dto"
	gRepo "github.com/Fairanova/2026-room-booking-backend/shared/repository"
)

type Booking interface {
	Insert(ctx context.Context, model model.Booking) error
	InsertTx(ctx context.Context, sqltx *sqlx.Tx, model model.Booking) error
	Get(ctx context.Context, filter gDto.FilterGroup, columns ...string) (model.Booking, error)
	GetAll(ctx context.Context, params gDto.QueryParams, filter gDto.FilterGroup, columns ...string) ([]model.Booking, error)
	GetAllTx(ctx context.Context, sqltx *sqlx.Tx, params gDto.QueryParams, filter gDto.FilterGroup, columns ...string) ([]model.Booking, error)
	Exist(ctx context.Context, filter gDto.FilterGroup) (bool, error)
	Count(ctx context.Context, filter gDto.FilterGroup) (int, error)
	Update(ctx context.Context, req map[string]any, filter gDto.FilterGroup) error
	Transact(ctx context.Context, fn func(sqltx *sqlx.Tx) error) error
}

type repositoryImpl struct {
	gRepo.Repository[model.Booking]
	db   *postgres.Connection
	otel otel.Otel
}

func New(db *postgres.Connection, otel otel.Otel) Booking {
	return &repositoryImpl{
		Repository: gRepo.NewRepository[model.Booking](model.EntityName, model.TableName, model.FieldID, db, otel),
		db:         db,
		otel:       otel,
	}
}

// ActiveOnDateFilter matches bookings that still occupy their slot on the
// given date, i.e. pending or approved ones.
func ActiveOnDateFilter(date time.Time) gDto.FilterGroup {
	return gDto.FilterGroup{
		Operator: gDto.FilterGroupOperatorAnd,
		Filters: []any{
			gDto.Filter{
				Field:    model.FieldBookingDate,
				Value:    date.Format(constant.DateFormat),
				Operator: gDto.FilterOperatorEq,
				Table:    model.TableName,
			},
			gDto.Filter{
				Field:    model.FieldStatus,
				Value:    []string{model.StatusPending, model.StatusApproved},
				Operator: gDto.FilterOperatorIn,
				Table:    model.TableName,
			},
		},
	}
}

// ActiveOnRoomAndDateFilter narrows ActiveOnDateFilter to a single room.
func ActiveOnRoomAndDateFilter(roomID string, date time.Time) gDto.FilterGroup {
	filter := ActiveOnDateFilter(date)
	filter.Filters = append(filter.Filters, gDto.Filter{
		Field:    model.FieldRoomID,
		Value:    roomID,
		Operator: gDto.FilterOperatorEq,
		Table:    model.TableName,
	})

	return filter
}
