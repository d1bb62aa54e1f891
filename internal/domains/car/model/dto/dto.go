package dto

import (
	"strings"
	"time"

	"rentcar/internal/domains/car/model"
	"rentcar/shared"
	"rentcar/shared/constant"
	gDto "rentcar/shared/dto"
	gModel "rentcar/shared/model"
	"rentcar/shared/timezone"

	"github.com/google/uuid"
)

type CreateCarRequest struct {
	Name        string   `json:"name"                  validate:"required"`
	Brand       string   `json:"brand"                 validate:"required"`
	Model       string   `json:"model"                 validate:"required"`
	Category    string   `json:"category"              validate:"required,oneof=sport business premium suv bus armored electric"`
	Price       int64    `json:"price"                 validate:"required,min=0"`
	Year        int      `json:"year"                  validate:"required,min=1900"`
	Seats       int      `json:"seats"                 validate:"required,min=1"`
	Description string   `json:"description,omitempty"`
	Options     []string `json:"options,omitempty"`
	Image       string   `json:"image,omitempty"       validate:"omitempty,datauri"`
	IsNew       bool     `json:"is_new"`
	Featured    bool     `json:"featured"`
	Available   *bool    `json:"available,omitempty"`
}

func (r *CreateCarRequest) ToModel(username, imageURL string) model.Car {
	available := true
	if r.Available != nil {
		available = *r.Available
	}

	return model.Car{
		ID:          uuid.NewString(),
		Name:        r.Name,
		Brand:       r.Brand,
		Model:       r.Model,
		Category:    r.Category,
		Price:       r.Price,
		Year:        r.Year,
		Seats:       r.Seats,
		Description: r.Description,
		Options:     strings.Join(r.Options, ","),
		Image:       imageURL,
		IsNew:       r.IsNew,
		Featured:    r.Featured,
		Available:   available,
		Metadata: gModel.Metadata{
			CreatedAt:  timezone.Now(),
			ModifiedAt: timezone.Now(),
			CreatedBy:  username,
			ModifiedBy: username,
		},
	}
}

type UpdateCarRequest struct {
	Name        *string `db:"name"        json:"name,omitempty"`
	Brand       *string `db:"brand"       json:"brand,omitempty"`
	Model       *string `db:"model"       json:"model,omitempty"`
	Category    *string `db:"category"    json:"category,omitempty"    validate:"omitempty,oneof=sport business premium suv bus armored electric"`
	Price       *int64  `db:"price"       json:"price,omitempty"       validate:"omitempty,min=0"`
	Year        *int    `db:"year"        json:"year,omitempty"        validate:"omitempty,min=1900"`
	Seats       *int    `db:"seats"       json:"seats,omitempty"       validate:"omitempty,min=1"`
	Description *string `db:"description" json:"description,omitempty"`
	Options     *string `db:"options"     json:"options,omitempty"`
	Image       *string `db:"image"       json:"image,omitempty"`
	IsNew       *bool   `db:"is_new"      json:"is_new,omitempty"`
	Featured    *bool   `db:"featured"    json:"featured,omitempty"`
	Available   *bool   `db:"available"   json:"available,omitempty"`
}

type CarResponse struct {
	ID          string   `json:"id"`
	Name        string   `json:"name"`
	Brand       string   `json:"brand"`
	Model       string   `json:"model"`
	Category    string   `json:"category"`
	Price       int64    `json:"price"`
	Year        int      `json:"year"`
	Seats       int      `json:"seats"`
	Description string   `json:"description,omitempty"`
	Options     []string `json:"options,omitempty"`
	Image       string   `json:"image,omitempty"`
	IsNew       bool     `json:"is_new"`
	Featured    bool     `json:"featured"`
	Available   bool     `json:"available"`
	BookedUntil *string  `json:"booked_until"`
	gDto.Metadata
}

func (r *CarResponse) FromModel(car model.Car, bookedUntil *time.Time) {
	r.ID = car.ID
	r.Name = car.Name
	r.Brand = car.Brand
	r.Model = car.Model
	r.Category = car.Category
	r.Price = car.Price
	r.Year = car.Year
	r.Seats = car.Seats
	r.Description = car.Description
	r.Image = car.Image
	r.IsNew = car.IsNew
	r.Featured = car.Featured
	r.Available = car.Available

	if car.Options != "" {
		r.Options = strings.Split(car.Options, ",")
	}

	if bookedUntil != nil {
		formatted := bookedUntil.Format(constant.BookingDateFormat)
		r.BookedUntil = &formatted
	}

	r.Metadata.FromModel(car.Metadata)
}

type GetCarsResponse struct {
	Cars      []CarResponse `json:"cars"`
	TotalPage int           `json:"total_page"`
	TotalData int           `json:"total_data"`
}

func (r *GetCarsResponse) FromModels(cars []model.Car, bookedUntil map[string]*time.Time, totalData, limit int) {
	r.TotalData = totalData
	r.TotalPage = shared.CalculateTotalPage(totalData, limit)

	r.Cars = make([]CarResponse, len(cars))
	for i, car := range cars {
		r.Cars[i].FromModel(car, bookedUntil[car.ID])
	}
}
