package dto_test

import (
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/Fairanova/2026-room-booking-backend/shared/dto"
)

func TestFilterGetWhereClause(t *testing.T) {
	tests := []struct {
		name          string
		filter        dto.Filter
		expectedWhere string
		expectedArgs  map[string]any
	}{
		{
			name: "eq operator",
			filter: dto.Filter{
				Field:    "status",
				Value:    "pending",
				Operator: dto.FilterOperatorEq,
				Table:    "room_bookings",
			},
			expectedWhere: "room_bookings.status = :status",
			expectedArgs:  map[string]any{"status": "pending"},
		},
		{
			name: "eq operator without table",
			filter: dto.Filter{
				Field:    "id",
				Value:    "abc",
				Operator: dto.FilterOperatorEq,
			},
			expectedWhere: "id = :id",
			expectedArgs:  map[string]any{"id": "abc"},
		},
		{
			name: "eq operator with arg name",
			filter: dto.Filter{
				ArgName:  "start_of_day",
				Field:    "booking_date",
				Value:    "2026-02-10",
				Operator: dto.FilterOperatorEq,
				Table:    "room_bookings",
			},
			expectedWhere: "room_bookings.booking_date = :start_of_day",
			expectedArgs:  map[string]any{"start_of_day": "2026-02-10"},
		},
		{
			name: "like operator",
			filter: dto.Filter{
				Field:    "room_name",
				Value:    "lab",
				Operator: dto.FilterOperatorLike,
				Table:    "rooms",
			},
			expectedWhere: "LOWER(rooms.room_name) LIKE LOWER(:room_name) ",
			expectedArgs:  map[string]any{"room_name": "%lab%"},
		},
		{
			name: "in operator with slice",
			filter: dto.Filter{
				Field:    "status",
				Value:    []string{"pending", "approved"},
				Operator: dto.FilterOperatorIn,
				Table:    "room_bookings",
			},
			expectedWhere: "room_bookings.status IN (:status_0, :status_1) ",
			expectedArgs:  map[string]any{"status_0": "pending", "status_1": "approved"},
		},
		{
			name: "not eq operator",
			filter: dto.Filter{
				Field:    "status",
				Value:    "cancelled",
				Operator: dto.FilterOperatorNotEq,
			},
			expectedWhere: "status != :status",
			expectedArgs:  map[string]any{"status": "cancelled"},
		},
		{
			name: "less eq operator",
			filter: dto.Filter{
				Field:    "start_time",
				Value:    "10:00",
				Operator: dto.FilterOperatorLessEq,
			},
			expectedWhere: "start_time <= :start_time",
			expectedArgs:  map[string]any{"start_time": "10:00"},
		},
		{
			name: "greater eq operator",
			filter: dto.Filter{
				Field:    "end_time",
				Value:    "09:00",
				Operator: dto.FilterOperatorGreaterEq,
			},
			expectedWhere: "end_time >= :end_time",
			expectedArgs:  map[string]any{"end_time": "09:00"},
		},
		{
			name: "plain query",
			filter: dto.Filter{
				Value:    "start_time < :end_time AND end_time > :start_time",
				Operator: dto.FilterPlainQuery,
			},
			expectedWhere: "(start_time < :end_time AND end_time > :start_time)",
			expectedArgs:  map[string]any{},
		},
		{
			name: "is null",
			filter: dto.Filter{
				Field:    "rejection_reason",
				Operator: dto.FilterIsNull,
			},
			expectedWhere: "rejection_reason IS NULL",
			expectedArgs:  map[string]any{},
		},
		{
			name: "is not null",
			filter: dto.Filter{
				Field:    "rejection_reason",
				Operator: dto.FilterIsNotNull,
				Table:    "room_bookings",
			},
			expectedWhere: "room_bookings.rejection_reason IS NOT NULL",
			expectedArgs:  map[string]any{},
		},
		{
			name: "unknown operator",
			filter: dto.Filter{
				Field:    "status",
				Operator: "between",
			},
			expectedWhere: "",
			expectedArgs:  map[string]any{},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			where, args := tt.filter.GetWhereClause()

			assert.Equal(t, tt.expectedWhere, where)
			assert.Equal(t, tt.expectedArgs, args)
		})
	}
}

func TestFilterGroupGetWhereClause(t *testing.T) {
	t.Run("empty group", func(t *testing.T) {
		group := dto.FilterGroup{Operator: dto.FilterGroupOperatorAnd}

		where, args := group.GetWhereClause()

		assert.Empty(t, where)
		assert.Empty(t, args)
	})

	t.Run("and group", func(t *testing.T) {
		group := dto.FilterGroup{
			Operator: dto.FilterGroupOperatorAnd,
			Filters: []any{
				dto.Filter{Field: "room_id", Value: "r1", Operator: dto.FilterOperatorEq},
				dto.Filter{Field: "booking_date", Value: "2026-02-10", Operator: dto.FilterOperatorEq},
			},
		}

		where, args := group.GetWhereClause()

		assert.Equal(t, "(room_id = :room_id AND booking_date = :booking_date)", where)
		assert.Equal(t, map[string]any{"room_id": "r1", "booking_date": "2026-02-10"}, args)
	})

	t.Run("nested group", func(t *testing.T) {
		group := dto.FilterGroup{
			Operator: dto.FilterGroupOperatorAnd,
			Filters: []any{
				dto.Filter{Field: "room_id", Value: "r1", Operator: dto.FilterOperatorEq},
				dto.FilterGroup{
					Operator: dto.FilterGroupOperatorOr,
					Filters: []any{
						dto.Filter{ArgName: "status_pending", Field: "status", Value: "pending", Operator: dto.FilterOperatorEq},
						dto.Filter{ArgName: "status_approved", Field: "status", Value: "approved", Operator: dto.FilterOperatorEq},
					},
				},
			},
		}

		where, args := group.GetWhereClause()

		assert.Equal(t, "(room_id = :room_id AND (status = :status_pending OR status = :status_approved))", where)
		assert.Equal(t, map[string]any{"room_id": "r1", "status_pending": "pending", "status_approved": "approved"}, args)
	})
}

func TestQueryParamsFromRequest(t *testing.T) {
	tests := []struct {
		name           string
		target         string
		defaultRequest bool
		expected       dto.QueryParams
	}{
		{
			name:           "full params",
			target:         "/v1/bookings?page=2&limit=25&sort_by=booking_date&sort_dir=desc",
			defaultRequest: false,
			expected:       dto.QueryParams{Page: 2, Limit: 25, SortBy: "booking_date", SortDir: "DESC"},
		},
		{
			name:           "missing params without defaults",
			target:         "/v1/bookings",
			defaultRequest: false,
			expected:       dto.QueryParams{},
		},
		{
			name:           "missing params with defaults",
			target:         "/v1/bookings",
			defaultRequest: true,
			expected:       dto.QueryParams{Page: 1, Limit: 10},
		},
		{
			name:           "invalid page and limit ignored",
			target:         "/v1/bookings?page=abc&limit=-3",
			defaultRequest: true,
			expected:       dto.QueryParams{Page: 1, Limit: 10},
		},
		{
			name:           "invalid sort dir ignored",
			target:         "/v1/bookings?sort_by=room_code&sort_dir=sideways",
			defaultRequest: false,
			expected:       dto.QueryParams{SortBy: "room_code"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := httptest.NewRequest("GET", tt.target, nil)

			var params dto.QueryParams
			params.FromRequest(req, tt.defaultRequest)

			assert.Equal(t, tt.expected, params)
		})
	}
}
