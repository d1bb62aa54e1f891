package dto

import (
	"time"

	"rentcar/internal/domains/booking/model"
	carModel "rentcar/internal/domains/car/model"
	"rentcar/shared"
	"rentcar/shared/constant"
	gDto "rentcar/shared/dto"
	gModel "rentcar/shared/model"
	"rentcar/shared/timezone"

	"github.com/google/uuid"
)

type CreateBookingRequest struct {
	CarID     string `json:"car_id"     validate:"required,uuid4"`
	StartDate string `json:"start_date" validate:"required"`
	EndDate   string `json:"end_date"   validate:"required"`
}

func (r *CreateBookingRequest) ToModel(car carModel.Car, startDate, endDate time.Time, username string) model.Booking {
	return model.Booking{
		ID:        uuid.NewString(),
		CarID:     car.ID,
		StartDate: startDate,
		EndDate:   endDate,
		CarName:   car.Name,
		CarImage:  car.Image,
		Status:    model.StatusConfirmed,
		Metadata: gModel.Metadata{
			CreatedAt:  timezone.Now(),
			ModifiedAt: timezone.Now(),
			CreatedBy:  username,
			ModifiedBy: username,
		},
	}
}

type BookingResponse struct {
	ID        string `json:"id"`
	CarID     string `json:"car_id"`
	CarName   string `json:"car_name"`
	CarImage  string `json:"car_image,omitempty"`
	StartDate string `json:"start_date"`
	EndDate   string `json:"end_date"`
	Status    string `json:"status"`
	gDto.Metadata
}

func (r *BookingResponse) FromModel(booking model.Booking) {
	r.ID = booking.ID
	r.CarID = booking.CarID
	r.CarName = booking.CarName
	r.CarImage = booking.CarImage
	r.StartDate = booking.StartDate.Format(constant.BookingDateFormat)
	r.EndDate = booking.EndDate.Format(constant.BookingDateFormat)
	r.Status = booking.Status
	r.Metadata.FromModel(booking.Metadata)
}

type GetBookingsResponse struct {
	Bookings  []BookingResponse `json:"bookings"`
	TotalPage int               `json:"total_page"`
	TotalData int               `json:"total_data"`
}

func (r *GetBookingsResponse) FromModels(bookings []model.Booking, totalData, limit int) {
	r.TotalData = totalData
	r.TotalPage = shared.CalculateTotalPage(totalData, limit)

	r.Bookings = make([]BookingResponse, len(bookings))
	for i, booking := range bookings {
		r.Bookings[i].FromModel(booking)
	}
}
