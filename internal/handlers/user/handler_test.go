package user

import (
	"net/http/httptest"
	"testing"

	"rentcar/internal/domains/user/model"
	gDto "rentcar/shared/dto"

	"github.com/stretchr/testify/assert"
)

func TestListFilter(t *testing.T) {
	t.Run("no params yields no filters", func(t *testing.T) {
		req := httptest.NewRequest("GET", "/v1/users", nil)

		filterGroup := listFilter(req)

		assert.Empty(t, filterGroup.Filters)
	})

	t.Run("email and level filters", func(t *testing.T) {
		req := httptest.NewRequest("GET", "/v1/users?email=admin@example.com&level=admin", nil)

		filterGroup := listFilter(req)

		assert.Len(t, filterGroup.Filters, 2)
		assert.Equal(t, gDto.Filter{
			Field:    model.FieldEmail,
			Operator: gDto.FilterOperatorEq,
			Value:    "admin@example.com",
			Table:    model.TableName,
		}, filterGroup.Filters[0])
		assert.Equal(t, gDto.Filter{
			Field:    model.FieldLevel,
			Operator: gDto.FilterOperatorEq,
			Value:    "admin",
			Table:    model.TableName,
		}, filterGroup.Filters[1])
	})
}
