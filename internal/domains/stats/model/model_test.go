package model_test

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	bookingModel "rentcar/internal/domains/booking/model"
	carModel "rentcar/internal/domains/car/model"
	"rentcar/internal/domains/stats/model"
	gModel "rentcar/shared/model"
)

func date(year int, month time.Month, day int) time.Time {
	return time.Date(year, month, day, 0, 0, 0, 0, time.UTC)
}

func booking(carID string, start, end, createdAt time.Time) bookingModel.Booking {
	return bookingModel.Booking{
		CarID:     carID,
		StartDate: start,
		EndDate:   end,
		Status:    bookingModel.StatusConfirmed,
		Metadata:  gModel.Metadata{CreatedAt: createdAt},
	}
}

func TestCompute(t *testing.T) {
	now := date(2026, time.March, 10)

	cars := []carModel.Car{
		{ID: "car-1", Price: 100},
		{ID: "car-2", Price: 250},
	}

	t.Run("empty input", func(t *testing.T) {
		stats := model.Compute(nil, nil, now)

		assert.Zero(t, stats.TotalRevenue)
		assert.Zero(t, stats.ActiveRentals)
		assert.Len(t, stats.DailySeries, 7)

		for _, day := range stats.DailySeries {
			assert.Zero(t, day.Income)
		}
	})

	t.Run("revenue is price times inclusive day count", func(t *testing.T) {
		bookings := []bookingModel.Booking{
			// 3 days at 100.
			booking("car-1", date(2026, time.March, 8), date(2026, time.March, 10), now),
			// 1 day at 250.
			booking("car-2", date(2026, time.April, 1), date(2026, time.April, 1), now),
		}

		stats := model.Compute(cars, bookings, now)

		assert.Equal(t, int64(3*100+1*250), stats.TotalRevenue)
	})

	t.Run("missing car contributes zero revenue", func(t *testing.T) {
		bookings := []bookingModel.Booking{
			booking("car-1", date(2026, time.March, 8), date(2026, time.March, 10), now),
			booking("deleted-car", date(2026, time.March, 9), date(2026, time.March, 11), now),
		}

		stats := model.Compute(cars, bookings, now)

		assert.Equal(t, int64(300), stats.TotalRevenue)
		// The dangling booking still counts as an active rental.
		assert.Equal(t, 2, stats.ActiveRentals)
	})

	t.Run("active rentals contain now inclusively", func(t *testing.T) {
		bookings := []bookingModel.Booking{
			booking("car-1", date(2026, time.March, 10), date(2026, time.March, 12), now), // starts today
			booking("car-1", date(2026, time.March, 5), date(2026, time.March, 10), now),  // ends today
			booking("car-2", date(2026, time.March, 11), date(2026, time.March, 12), now), // future
			booking("car-2", date(2026, time.March, 1), date(2026, time.March, 9), now),   // past
		}

		stats := model.Compute(cars, bookings, now)

		assert.Equal(t, 2, stats.ActiveRentals)
	})

	t.Run("daily series spans the last seven days", func(t *testing.T) {
		bookings := []bookingModel.Booking{
			// Created today: 2 days at 100.
			booking("car-1", date(2026, time.March, 20), date(2026, time.March, 21), now),
			// Created three days ago: 1 day at 250.
			booking("car-2", date(2026, time.March, 7), date(2026, time.March, 7), date(2026, time.March, 7)),
			// Created outside the window: counted in the total only.
			booking("car-2", date(2026, time.March, 1), date(2026, time.March, 1), date(2026, time.March, 1)),
		}

		stats := model.Compute(cars, bookings, now)

		assert.Len(t, stats.DailySeries, 7)

		// March 10 2026 is a Tuesday, so the series runs Wed..Tue.
		labels := make([]string, 0, len(stats.DailySeries))
		for _, day := range stats.DailySeries {
			labels = append(labels, day.Label)
		}

		assert.Equal(t, []string{"Wed", "Thu", "Fri", "Sat", "Sun", "Mon", "Tue"}, labels)

		assert.Equal(t, int64(250), stats.DailySeries[3].Income) // Sat, March 7
		assert.Equal(t, int64(200), stats.DailySeries[6].Income) // today
		assert.Equal(t, int64(200+250+250), stats.TotalRevenue)
	})

	t.Run("deterministic for the same input", func(t *testing.T) {
		bookings := []bookingModel.Booking{
			booking("car-1", date(2026, time.March, 8), date(2026, time.March, 10), now),
			booking("car-2", date(2026, time.March, 9), date(2026, time.March, 11), now),
		}

		first := model.Compute(cars, bookings, now)
		second := model.Compute(cars, bookings, now)

		assert.Equal(t, first, second)
	})
}
