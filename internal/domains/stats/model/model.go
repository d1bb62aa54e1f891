package model

import (
	"time"

	bookingModel "rentcar/internal/domains/booking/model"
	carModel "rentcar/internal/domains/car/model"
	"rentcar/shared/constant"
)

type DailyIncome struct {
	Label  string `json:"label"`
	Income int64  `json:"income"`
}

type Stats struct {
	TotalRevenue  int64         `json:"total_revenue"`
	ActiveRentals int           `json:"active_rentals"`
	DailySeries   []DailyIncome `json:"daily_series"`
}

// Compute aggregates the admin dashboard figures from full catalog and
// booking snapshots. Revenue per booking is the car's daily price times the
// booked day count, both boundary dates included. A booking whose car no
// longer exists contributes zero revenue but still counts as an active
// rental when its window contains now.
func Compute(cars []carModel.Car, bookings []bookingModel.Booking, now time.Time) Stats {
	priceByCar := make(map[string]int64, len(cars))
	for _, car := range cars {
		priceByCar[car.ID] = car.Price
	}

	stats := Stats{
		DailySeries: make([]DailyIncome, constant.StatsSeriesDays),
	}

	incomeByDay := map[string]int64{}

	for _, booking := range bookings {
		revenue := priceByCar[booking.CarID] * booking.RentalDays()

		stats.TotalRevenue += revenue
		incomeByDay[dayKey(booking.CreatedAt.In(now.Location()))] += revenue

		if booking.ActiveAt(now) {
			stats.ActiveRentals++
		}
	}

	for i := range constant.StatsSeriesDays {
		day := now.AddDate(0, 0, i-(constant.StatsSeriesDays-1))

		stats.DailySeries[i] = DailyIncome{
			Label:  day.Format("Mon"),
			Income: incomeByDay[dayKey(day)],
		}
	}

	return stats
}

func dayKey(t time.Time) string {
	return t.Format(constant.BookingDateFormat)
}
