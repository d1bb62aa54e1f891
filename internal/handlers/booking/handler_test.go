package booking

import (
	"net/http/httptest"
	"testing"

	"rentcar/internal/domains/booking/model"
	gDto "rentcar/shared/dto"

	"github.com/stretchr/testify/assert"
)

func TestListFilter(t *testing.T) {
	t.Run("no params yields no filters", func(t *testing.T) {
		req := httptest.NewRequest("GET", "/v1/bookings", nil)

		filterGroup := listFilter(req)

		assert.Empty(t, filterGroup.Filters)

		where, args := filterGroup.GetWhereClause()
		assert.Empty(t, where)
		assert.Empty(t, args)
	})

	t.Run("car_id filters by car", func(t *testing.T) {
		req := httptest.NewRequest("GET", "/v1/bookings?car_id=0199a8bc-5b6e-7c8d-9e0f-1a2b3c4d5e6f", nil)

		filterGroup := listFilter(req)

		assert.Len(t, filterGroup.Filters, 1)
		assert.Equal(t, gDto.Filter{
			Field:    model.FieldCarID,
			Operator: gDto.FilterOperatorEq,
			Value:    "0199a8bc-5b6e-7c8d-9e0f-1a2b3c4d5e6f",
			Table:    model.TableName,
		}, filterGroup.Filters[0])
	})
}
