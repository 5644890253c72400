// Package calorie contains calorie aggregation and auto goal use cases.
package calorie

import (
	"sort"
	"time"

	"github.com/nutrition-tracker/backend/internal/domain/entity"
)

// DailyTotal is the calorie sum for a single local calendar day.
type DailyTotal struct {
	Date       time.Time // midnight, local
	Calories   int
	EntryCount int
}

// WeeklyTotal is the calorie aggregate for a single ISO week.
type WeeklyTotal struct {
	WeekStart       time.Time // Monday, midnight local
	WeekEnd         time.Time // Sunday, midnight local
	TotalCalories   int
	AverageCalories float64 // average over days with entries, not over 7
	DaysWithData    int
}

// localDay truncates an instant to midnight of its calendar day in loc.
// Aggregation buckets by the user's local date, so an entry logged at 23:30
// and one at 00:30 the next morning land on different days.
func localDay(t time.Time, loc *time.Location) time.Time {
	local := t.In(loc)
	return time.Date(local.Year(), local.Month(), local.Day(), 0, 0, 0, 0, loc)
}

// weekStart returns the Monday midnight opening the ISO week containing t.
func weekStart(t time.Time, loc *time.Location) time.Time {
	day := localDay(t, loc)
	offset := (int(day.Weekday()) + 6) % 7 // Monday=0 .. Sunday=6
	return day.AddDate(0, 0, -offset)
}

// dailyTotals buckets food entries by local calendar day, newest day first.
func dailyTotals(entries []*entity.FoodEntry, loc *time.Location) []DailyTotal {
	byDay := make(map[time.Time]*DailyTotal)
	for _, e := range entries {
		day := localDay(e.CreatedAt, loc)
		total, ok := byDay[day]
		if !ok {
			total = &DailyTotal{Date: day}
			byDay[day] = total
		}
		total.Calories += e.Calories
		total.EntryCount++
	}

	totals := make([]DailyTotal, 0, len(byDay))
	for _, t := range byDay {
		totals = append(totals, *t)
	}
	sort.Slice(totals, func(i, j int) bool {
		return totals[i].Date.After(totals[j].Date)
	})
	return totals
}

// weeklyTotals buckets food entries by ISO week, newest week first.
func weeklyTotals(entries []*entity.FoodEntry, loc *time.Location) []WeeklyTotal {
	type bucket struct {
		total int
		days  map[time.Time]struct{}
	}

	byWeek := make(map[time.Time]*bucket)
	for _, e := range entries {
		start := weekStart(e.CreatedAt, loc)
		b, ok := byWeek[start]
		if !ok {
			b = &bucket{days: make(map[time.Time]struct{})}
			byWeek[start] = b
		}
		b.total += e.Calories
		b.days[localDay(e.CreatedAt, loc)] = struct{}{}
	}

	weeks := make([]WeeklyTotal, 0, len(byWeek))
	for start, b := range byWeek {
		week := WeeklyTotal{
			WeekStart:     start,
			WeekEnd:       start.AddDate(0, 0, 6),
			TotalCalories: b.total,
			DaysWithData:  len(b.days),
		}
		if week.DaysWithData > 0 {
			week.AverageCalories = float64(b.total) / float64(week.DaysWithData)
		}
		weeks = append(weeks, week)
	}
	sort.Slice(weeks, func(i, j int) bool {
		return weeks[i].WeekStart.After(weeks[j].WeekStart)
	})
	return weeks
}
