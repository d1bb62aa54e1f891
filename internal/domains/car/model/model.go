package model

import "rentcar/shared/model"

const (
	TableName  = "cars"
	EntityName = "car"

	FieldID          = "id"
	FieldName        = "name"
	FieldBrand       = "brand"
	FieldModel       = "model"
	FieldCategory    = "category"
	FieldPrice       = "price"
	FieldYear        = "year"
	FieldSeats       = "seats"
	FieldDescription = "description"
	FieldOptions     = "options"
	FieldImage       = "image"
	FieldIsNew       = "is_new"
	FieldFeatured    = "featured"
	FieldAvailable   = "available"
)

const (
	CategoryAll      = "all"
	CategorySport    = "sport"
	CategoryBusiness = "business"
	CategoryPremium  = "premium"
	CategorySUV      = "suv"
	CategoryBus      = "bus"
	CategoryArmored  = "armored"
	CategoryElectric = "electric"
)

type Car struct {
	ID          string `db:"id"`
	Name        string `db:"name"`
	Brand       string `db:"brand"`
	Model       string `db:"model"`
	Category    string `db:"category"`
	Price       int64  `db:"price"`
	Year        int    `db:"year"`
	Seats       int    `db:"seats"`
	Description string `db:"description"`
	Options     string `db:"options"`
	Image       string `db:"image"`
	IsNew       bool   `db:"is_new"`
	Featured    bool   `db:"featured"`
	Available   bool   `db:"available"`
	model.Metadata
}
