package model

import "time"

// Availability is derived from the booking store on every read and is never
// persisted. A booking keeps its car busy while its end date has not passed:
// both a rental currently in progress and one that has not started yet count,
// so a car already reserved for next week shows as unavailable today.

// dayOf strips the clock, keeping the calendar date in t's location.
func dayOf(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, t.Location())
}

// busyAt reports whether the booking keeps its car busy at now,
// meaning the booking's end date is today or later.
func (b Booking) busyAt(now time.Time) bool {
	return !dayOf(b.EndDate).Before(dayOf(now))
}

// ActiveAt reports whether now falls inside the booking's rental window,
// both boundary dates included.
func (b Booking) ActiveAt(now time.Time) bool {
	day := dayOf(now)

	return !dayOf(b.StartDate).After(day) && !dayOf(b.EndDate).Before(day)
}

// Overlaps reports whether the booking's window intersects [start, end],
// boundaries included.
func (b Booking) Overlaps(start, end time.Time) bool {
	return !dayOf(b.StartDate).After(dayOf(end)) && !dayOf(b.EndDate).Before(dayOf(start))
}

// IsBusy reports whether any booking keeps carID busy at now.
func IsBusy(carID string, bookings []Booking, now time.Time) bool {
	for _, b := range bookings {
		if b.CarID == carID && b.busyAt(now) {
			return true
		}
	}

	return false
}

// BusyUntil returns the latest end date among the bookings keeping carID busy
// at now, or nil when the car is free.
func BusyUntil(carID string, bookings []Booking, now time.Time) *time.Time {
	var until *time.Time

	for _, b := range bookings {
		if b.CarID != carID || !b.busyAt(now) {
			continue
		}

		endDate := b.EndDate
		if until == nil || endDate.After(*until) {
			until = &endDate
		}
	}

	return until
}
