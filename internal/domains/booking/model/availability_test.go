package model_test

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"rentcar/internal/domains/booking/model"
)

func date(year int, month time.Month, day int) time.Time {
	return time.Date(year, month, day, 0, 0, 0, 0, time.UTC)
}

func TestIsBusy(t *testing.T) {
	now := date(2026, time.March, 10)

	tests := []struct {
		name     string
		carID    string
		bookings []model.Booking
		expected bool
	}{
		{
			name:     "no bookings",
			carID:    "car-1",
			bookings: nil,
			expected: false,
		},
		{
			name:  "booking in progress",
			carID: "car-1",
			bookings: []model.Booking{
				{CarID: "car-1", StartDate: date(2026, time.March, 8), EndDate: date(2026, time.March, 12)},
			},
			expected: true,
		},
		{
			name:  "booking not started yet",
			carID: "car-1",
			bookings: []model.Booking{
				{CarID: "car-1", StartDate: date(2026, time.March, 20), EndDate: date(2026, time.March, 25)},
			},
			expected: true,
		},
		{
			name:  "booking ends today",
			carID: "car-1",
			bookings: []model.Booking{
				{CarID: "car-1", StartDate: date(2026, time.March, 8), EndDate: date(2026, time.March, 10)},
			},
			expected: true,
		},
		{
			name:  "booking ended yesterday",
			carID: "car-1",
			bookings: []model.Booking{
				{CarID: "car-1", StartDate: date(2026, time.March, 5), EndDate: date(2026, time.March, 9)},
			},
			expected: false,
		},
		{
			name:  "other car busy",
			carID: "car-1",
			bookings: []model.Booking{
				{CarID: "car-2", StartDate: date(2026, time.March, 8), EndDate: date(2026, time.March, 12)},
			},
			expected: false,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, model.IsBusy(tt.carID, tt.bookings, now))
		})
	}
}

func TestBusyUntil(t *testing.T) {
	now := date(2026, time.March, 10)

	t.Run("free car returns nil", func(t *testing.T) {
		bookings := []model.Booking{
			{CarID: "car-1", StartDate: date(2026, time.March, 1), EndDate: date(2026, time.March, 5)},
		}

		assert.Nil(t, model.BusyUntil("car-1", bookings, now))
	})

	t.Run("returns the booking end date", func(t *testing.T) {
		bookings := []model.Booking{
			{CarID: "car-1", StartDate: date(2026, time.March, 8), EndDate: date(2026, time.March, 14)},
		}

		until := model.BusyUntil("car-1", bookings, now)
		assert.NotNil(t, until)
		assert.Equal(t, date(2026, time.March, 14), *until)
	})

	t.Run("returns the latest end date across bookings", func(t *testing.T) {
		bookings := []model.Booking{
			{CarID: "car-1", StartDate: date(2026, time.March, 8), EndDate: date(2026, time.March, 12)},
			{CarID: "car-1", StartDate: date(2026, time.March, 20), EndDate: date(2026, time.March, 27)},
			{CarID: "car-2", StartDate: date(2026, time.March, 8), EndDate: date(2026, time.April, 30)},
		}

		until := model.BusyUntil("car-1", bookings, now)
		assert.NotNil(t, until)
		assert.Equal(t, date(2026, time.March, 27), *until)
	})

	t.Run("expired bookings do not contribute", func(t *testing.T) {
		bookings := []model.Booking{
			{CarID: "car-1", StartDate: date(2026, time.February, 1), EndDate: date(2026, time.February, 5)},
			{CarID: "car-1", StartDate: date(2026, time.March, 1), EndDate: date(2026, time.March, 9)},
		}

		assert.Nil(t, model.BusyUntil("car-1", bookings, now))
	})
}

func TestBookingActiveAt(t *testing.T) {
	booking := model.Booking{
		CarID:     "car-1",
		StartDate: date(2026, time.March, 8),
		EndDate:   date(2026, time.March, 12),
	}

	tests := []struct {
		name     string
		now      time.Time
		expected bool
	}{
		{name: "before window", now: date(2026, time.March, 7), expected: false},
		{name: "first day", now: date(2026, time.March, 8), expected: true},
		{name: "inside window", now: date(2026, time.March, 10), expected: true},
		{name: "last day", now: date(2026, time.March, 12), expected: true},
		{name: "after window", now: date(2026, time.March, 13), expected: false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, booking.ActiveAt(tt.now))
		})
	}
}

func TestBookingOverlaps(t *testing.T) {
	booking := model.Booking{
		CarID:     "car-1",
		StartDate: date(2026, time.March, 8),
		EndDate:   date(2026, time.March, 12),
	}

	tests := []struct {
		name     string
		start    time.Time
		end      time.Time
		expected bool
	}{
		{name: "fully before", start: date(2026, time.March, 1), end: date(2026, time.March, 7), expected: false},
		{name: "fully after", start: date(2026, time.March, 13), end: date(2026, time.March, 20), expected: false},
		{name: "touching start boundary", start: date(2026, time.March, 5), end: date(2026, time.March, 8), expected: true},
		{name: "touching end boundary", start: date(2026, time.March, 12), end: date(2026, time.March, 15), expected: true},
		{name: "contained", start: date(2026, time.March, 9), end: date(2026, time.March, 11), expected: true},
		{name: "containing", start: date(2026, time.March, 1), end: date(2026, time.March, 31), expected: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, booking.Overlaps(tt.start, tt.end))
		})
	}
}

func TestRentalDays(t *testing.T) {
	tests := []struct {
		name     string
		booking  model.Booking
		expected int64
	}{
		{
			name:     "single day",
			booking:  model.Booking{StartDate: date(2026, time.March, 8), EndDate: date(2026, time.March, 8)},
			expected: 1,
		},
		{
			name:     "inclusive range",
			booking:  model.Booking{StartDate: date(2026, time.March, 8), EndDate: date(2026, time.March, 12)},
			expected: 5,
		},
		{
			name:     "across month boundary",
			booking:  model.Booking{StartDate: date(2026, time.March, 30), EndDate: date(2026, time.April, 2)},
			expected: 4,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, tt.booking.RentalDays())
		})
	}
}
