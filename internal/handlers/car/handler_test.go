package car

import (
	"net/http/httptest"
	"testing"

	"rentcar/internal/domains/car/model"
	gDto "rentcar/shared/dto"

	"github.com/stretchr/testify/assert"
)

func TestCatalogFilter(t *testing.T) {
	tests := []struct {
		name    string
		target  string
		filters []gDto.Filter
	}{
		{
			name:    "no params yields no filters",
			target:  "/v1/cars",
			filters: nil,
		},
		{
			name:    "category all yields no filters",
			target:  "/v1/cars?category=all",
			filters: nil,
		},
		{
			name:   "category",
			target: "/v1/cars?category=suv",
			filters: []gDto.Filter{
				{Field: model.FieldCategory, Operator: gDto.FilterOperatorEq, Value: "suv", Table: model.TableName},
			},
		},
		{
			name:   "search",
			target: "/v1/cars?search=jeep",
			filters: []gDto.Filter{
				{Field: model.FieldName, Operator: gDto.FilterOperatorLike, Value: "jeep", Table: model.TableName},
			},
		},
		{
			name:   "available",
			target: "/v1/cars?available=true",
			filters: []gDto.Filter{
				{Field: model.FieldAvailable, Operator: gDto.FilterOperatorEq, Value: true, Table: model.TableName},
			},
		},
		{
			name:    "available not parseable yields no filters",
			target:  "/v1/cars?available=maybe",
			filters: nil,
		},
		{
			name:   "combined",
			target: "/v1/cars?category=sport&search=gt&available=false",
			filters: []gDto.Filter{
				{Field: model.FieldCategory, Operator: gDto.FilterOperatorEq, Value: "sport", Table: model.TableName},
				{Field: model.FieldName, Operator: gDto.FilterOperatorLike, Value: "gt", Table: model.TableName},
				{Field: model.FieldAvailable, Operator: gDto.FilterOperatorEq, Value: false, Table: model.TableName},
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := httptest.NewRequest("GET", tt.target, nil)

			filterGroup := catalogFilter(req)

			assert.Equal(t, gDto.FilterGroupOperatorAnd, filterGroup.Operator)
			assert.Len(t, filterGroup.Filters, len(tt.filters))

			for idx, expected := range tt.filters {
				assert.Equal(t, expected, filterGroup.Filters[idx])
			}
		})
	}
}

func TestCatalogFilter_NoParamsScansEverything(t *testing.T) {
	req := httptest.NewRequest("GET", "/v1/cars", nil)

	filterGroup := catalogFilter(req)

	where, args := filterGroup.GetWhereClause()
	assert.Empty(t, where)
	assert.Empty(t, args)
}
