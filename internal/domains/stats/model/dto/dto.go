package dto

import "rentcar/internal/domains/stats/model"

type DailyIncomeResponse struct {
	Label  string `json:"label"`
	Income int64  `json:"income"`
}

type StatsResponse struct {
	TotalRevenue  int64                 `json:"total_revenue"`
	ActiveRentals int                   `json:"active_rentals"`
	DailySeries   []DailyIncomeResponse `json:"daily_series"`
}

func (r *StatsResponse) FromModel(stats model.Stats) {
	r.TotalRevenue = stats.TotalRevenue
	r.ActiveRentals = stats.ActiveRentals

	r.DailySeries = make([]DailyIncomeResponse, len(stats.DailySeries))
	for i, day := range stats.DailySeries {
		r.DailySeries[i] = DailyIncomeResponse{
			Label:  day.Label,
			Income: day.Income,
		}
	}
}
