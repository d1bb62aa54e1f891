package model

import (
	"time"

	"rentcar/shared/model"
)

const (
	TableName  = "bookings"
	EntityName = "booking"

	FieldID        = "id"
	FieldCarID     = "car_id"
	FieldStartDate = "start_date"
	FieldEndDate   = "end_date"
	FieldCarName   = "car_name"
	FieldCarImage  = "car_image"
	FieldStatus    = "status"
)

const (
	StatusConfirmed = "confirmed"
)

type Booking struct {
	ID        string    `db:"id"`
	CarID     string    `db:"car_id"`
	StartDate time.Time `db:"start_date"`
	EndDate   time.Time `db:"end_date"`
	CarName   string    `db:"car_name"`
	CarImage  string    `db:"car_image"`
	Status    string    `db:"status"`
	model.Metadata
}

// RentalDays counts the booked days, both boundary dates included.
func (b Booking) RentalDays() int64 {
	days := int64(dayOf(b.EndDate).Sub(dayOf(b.StartDate)).Hours()/24) + 1
	if days < 1 {
		return 1
	}

	return days
}
