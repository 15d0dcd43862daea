package dto_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"summitbooking/shared/constant"
	"summitbooking/shared/dto"
)

func TestFilter_GetWhereClause(t *testing.T) {
	tests := []struct {
		name       string
		filter     dto.Filter
		wantClause string
		wantArgs   map[string]any
	}{
		{
			name: "eq with table",
			filter: dto.Filter{
				Field:    "status",
				Value:    "Scheduled",
				Operator: dto.FilterOperatorEq,
				Table:    "trips",
			},
			wantClause: "trips.status = :status",
			wantArgs:   map[string]any{"status": "Scheduled"},
		},
		{
			name: "eq without table",
			filter: dto.Filter{
				Field:    "email",
				Value:    "clerk@summitcoaches.com",
				Operator: dto.FilterOperatorEq,
			},
			wantClause: "email = :email",
			wantArgs:   map[string]any{"email": "clerk@summitcoaches.com"},
		},
		{
			name: "custom arg name",
			filter: dto.Filter{
				ArgName:  "min_id",
				Field:    "id",
				Value:    1,
				Operator: dto.FilterOperatorGreaterEq,
				Table:    "users",
			},
			wantClause: "users.id >= :min_id",
			wantArgs:   map[string]any{"min_id": 1},
		},
		{
			name: "not eq",
			filter: dto.Filter{
				Field:    "status",
				Value:    "Cancelled",
				Operator: dto.FilterOperatorNotEq,
			},
			wantClause: "status != :status",
			wantArgs:   map[string]any{"status": "Cancelled"},
		},
		{
			name: "is null",
			filter: dto.Filter{
				Field:    "description",
				Operator: dto.FilterIsNull,
				Table:    "bus_types",
			},
			wantClause: "bus_types.description IS NULL",
			wantArgs:   map[string]any{},
		},
		{
			name: "unknown operator",
			filter: dto.Filter{
				Field:    "status",
				Operator: "between",
			},
			wantClause: "",
			wantArgs:   map[string]any{},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			clause, args := tt.filter.GetWhereClause()
			assert.Equal(t, tt.wantClause, clause)
			assert.Equal(t, tt.wantArgs, args)
		})
	}
}

func TestFilter_GetWhereClause_In(t *testing.T) {
	filter := dto.Filter{
		Field:    "status",
		Value:    []string{"Scheduled", "In Transit"},
		Operator: dto.FilterOperatorIn,
		Table:    "trips",
	}

	clause, args := filter.GetWhereClause()
	assert.Equal(t, "trips.status IN (:status_0, :status_1) ", clause)
	assert.Equal(t, map[string]any{"status_0": "Scheduled", "status_1": "In Transit"}, args)
}

func TestFilterGroup_GetWhereClause(t *testing.T) {
	group := dto.FilterGroup{
		Filters: []any{
			dto.Filter{Field: "clerk_id", Value: 2, Operator: dto.FilterOperatorEq, Table: "bookings"},
			dto.Filter{Field: "status", Value: "Confirmed", Operator: dto.FilterOperatorEq, Table: "bookings"},
		},
	}

	clause, args := group.GetWhereClause()
	assert.Equal(t, "(bookings.clerk_id = :clerk_id AND bookings.status = :status)", clause)
	assert.Len(t, args, 2)
}

func TestFilterGroup_GetWhereClause_Or(t *testing.T) {
	group := dto.FilterGroup{
		Operator: dto.FilterGroupOperatorOr,
		Filters: []any{
			dto.Filter{Field: "origin", Value: "Kampala", Operator: dto.FilterOperatorEq},
			dto.Filter{Field: "destination", Value: "Kampala", Operator: dto.FilterOperatorEq, ArgName: "dest"},
		},
	}

	clause, args := group.GetWhereClause()
	assert.Equal(t, "(origin = :origin OR destination = :dest)", clause)
	assert.Len(t, args, 2)
}

func TestFilterGroup_GetWhereClause_Empty(t *testing.T) {
	group := dto.FilterGroup{}

	clause, args := group.GetWhereClause()
	assert.Empty(t, clause)
	assert.Empty(t, args)
}

func TestQueryParams_WithDefaults(t *testing.T) {
	params := dto.QueryParams{}
	params.WithDefaults()

	assert.Equal(t, constant.DefaultValuePage, params.Page)
	assert.Equal(t, constant.DefaultValueLimit, params.Limit)
	assert.Equal(t, constant.DefaultValueSortBy, params.SortBy)
	assert.Equal(t, constant.DefaultValueSortDir, params.SortDir)

	custom := dto.QueryParams{Page: 3, Limit: 25, SortBy: "trips.trip_date", SortDir: "ASC"}
	custom.WithDefaults()

	assert.Equal(t, 3, custom.Page)
	assert.Equal(t, 25, custom.Limit)
	assert.Equal(t, "trips.trip_date", custom.SortBy)
	assert.Equal(t, "ASC", custom.SortDir)
}
