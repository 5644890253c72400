package dto

import (
	"github.com/nutrition-tracker/backend/internal/application/usecase/calorie"
)

// DailyCaloriesResponse represents one day's calorie total.
type DailyCaloriesResponse struct {
	Date       string `json:"date"`
	Calories   int    `json:"calories"`
	EntryCount int    `json:"entry_count"`
}

// DailySummaryResponse represents the daily calorie summary over the
// trailing thirty days. Days without entries are absent.
type DailySummaryResponse struct {
	Days           []DailyCaloriesResponse `json:"days"`
	TodayCalories  int                     `json:"today_calories"`
	TargetCalories *float64                `json:"target_calories,omitempty"`
}

// WeeklyCaloriesResponse represents one week's calorie aggregate.
type WeeklyCaloriesResponse struct {
	WeekStart       string  `json:"week_start"`
	WeekEnd         string  `json:"week_end"`
	TotalCalories   int     `json:"total_calories"`
	AverageCalories float64 `json:"average_calories"`
	DaysWithData    int     `json:"days_with_data"`
}

// WeeklySummaryResponse represents the weekly calorie summary over the
// trailing twelve weeks, plus the frozen records archived when past weeks
// completed.
type WeeklySummaryResponse struct {
	Weeks    []WeeklyCaloriesResponse `json:"weeks"`
	Archived []WeeklyCaloriesResponse `json:"archived"`
}

// ToDailySummaryResponse converts the daily summary output to its DTO.
func ToDailySummaryResponse(output *calorie.GetDailySummaryOutput) DailySummaryResponse {
	days := make([]DailyCaloriesResponse, 0, len(output.Days))
	for _, day := range output.Days {
		days = append(days, DailyCaloriesResponse{
			Date:       day.Date.Format("2006-01-02"),
			Calories:   day.Calories,
			EntryCount: day.EntryCount,
		})
	}
	return DailySummaryResponse{
		Days:           days,
		TodayCalories:  output.TodayCalories,
		TargetCalories: output.TargetCalories,
	}
}

// ToWeeklySummaryResponse converts the weekly summary output to its DTO.
func ToWeeklySummaryResponse(output *calorie.GetWeeklySummaryOutput) WeeklySummaryResponse {
	weeks := make([]WeeklyCaloriesResponse, 0, len(output.Weeks))
	for _, week := range output.Weeks {
		weeks = append(weeks, WeeklyCaloriesResponse{
			WeekStart:       week.WeekStart.Format("2006-01-02"),
			WeekEnd:         week.WeekEnd.Format("2006-01-02"),
			TotalCalories:   week.TotalCalories,
			AverageCalories: week.AverageCalories,
			DaysWithData:    week.DaysWithData,
		})
	}
	archived := make([]WeeklyCaloriesResponse, 0, len(output.Archived))
	for _, record := range output.Archived {
		archived = append(archived, WeeklyCaloriesResponse{
			WeekStart:       record.WeekStart.Format("2006-01-02"),
			WeekEnd:         record.WeekEnd.Format("2006-01-02"),
			TotalCalories:   record.TotalCalories,
			AverageCalories: record.AverageCalories,
			DaysWithData:    record.DaysWithData,
		})
	}
	return WeeklySummaryResponse{
		Weeks:    weeks,
		Archived: archived,
	}
}
