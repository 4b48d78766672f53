package services

import (
	"math"
	"sort"
	"time"

	"github.com/gazostheque/gazostheque/internal/models"
	"gorm.io/gorm"
)

// CountStats is the total + monthly-trend payload of /materials/count/.
type CountStats struct {
	TotalCount        int64   `json:"total_count"`
	CurrentMonthCount int64   `json:"current_month_count"`
	PercentageDiff    float64 `json:"percentage_diff"`
	IsPositive        bool    `json:"is_positive"`
}

// TotalCountStats computes the material total and the month-over-month
// trend at the given reference time. Month windows are half-open
// [start, nextMonth) range queries, so the previous month of January
// lands in December of the prior year without special casing.
func TotalCountStats(db *gorm.DB, now time.Time) (*CountStats, error) {
	var total int64
	if err := db.Model(&models.Material{}).Count(&total).Error; err != nil {
		return nil, err
	}

	monthStart := time.Date(now.Year(), now.Month(), 1, 0, 0, 0, 0, now.Location())
	lastMonthStart := monthStart.AddDate(0, -1, 0)
	nextMonthStart := monthStart.AddDate(0, 1, 0)

	thisMonth, err := countCreatedBetween(db, monthStart, nextMonthStart)
	if err != nil {
		return nil, err
	}
	lastMonth, err := countCreatedBetween(db, lastMonthStart, monthStart)
	if err != nil {
		return nil, err
	}

	// The sign is taken before rounding: a drop inside (-0.05, 0)
	// rounds to 0 but still reports negative.
	var diff float64
	if lastMonth > 0 {
		diff = float64(thisMonth-lastMonth) / float64(lastMonth) * 100
	}

	return &CountStats{
		TotalCount:        total,
		CurrentMonthCount: thisMonth,
		PercentageDiff:    round1(diff),
		IsPositive:        diff >= 0,
	}, nil
}

func countCreatedBetween(db *gorm.DB, from, to time.Time) (int64, error) {
	var count int64
	err := db.Model(&models.Material{}).
		Where("created_at >= ? AND created_at < ?", from, to).
		Count(&count).Error
	return count, err
}

// round1 rounds to one decimal place.
func round1(v float64) float64 {
	return math.Round(v*10) / 10
}

// CountByLab counts materials per enumerated destination lab.
func CountByLab(db *gorm.DB) (map[string]int64, error) {
	counts := make(map[string]int64, len(models.LabChoices))
	for _, lab := range models.LabChoices {
		var count int64
		if err := db.Model(&models.Material{}).
			Where("lab_destination = ?", lab).
			Count(&count).Error; err != nil {
			return nil, err
		}
		counts[lab] = count
	}
	return counts, nil
}

// LabSeries is one lab's data row in the bar-chart payload, aligned
// position-wise with the years list.
type LabSeries struct {
	Name string  `json:"name"`
	Data []int64 `json:"data"`
}

// BarChart is the per-year-per-lab payload of /materials/bar-chart.
type BarChart struct {
	Years  []int       `json:"years"`
	Series []LabSeries `json:"series"`
}

// YearLabSeries groups materials by creation year and lab destination
// and pivots the counts into one series per lab. Year extraction
// happens in Go so the same query runs on every supported dialect;
// the table is small enough that a scan per request is cheap and
// always reflects current store state.
func YearLabSeries(db *gorm.DB) (*BarChart, error) {
	var rows []struct {
		CreatedAt      time.Time
		LabDestination string
	}
	if err := db.Model(&models.Material{}).
		Select("created_at", "lab_destination").
		Find(&rows).Error; err != nil {
		return nil, err
	}

	counts := make(map[int]map[string]int64)
	labSet := make(map[string]struct{})
	for _, row := range rows {
		year := row.CreatedAt.Year()
		if counts[year] == nil {
			counts[year] = make(map[string]int64)
		}
		counts[year][row.LabDestination]++
		if row.LabDestination != "" {
			labSet[row.LabDestination] = struct{}{}
		}
	}

	years := make([]int, 0, len(counts))
	for year := range counts {
		years = append(years, year)
	}
	sort.Ints(years)

	labs := make([]string, 0, len(labSet))
	for lab := range labSet {
		labs = append(labs, lab)
	}
	sort.Strings(labs)

	chart := &BarChart{Years: years, Series: make([]LabSeries, 0, len(labs))}
	for _, lab := range labs {
		data := make([]int64, len(years))
		for i, year := range years {
			data[i] = counts[year][lab]
		}
		chart.Series = append(chart.Series, LabSeries{Name: lab, Data: data})
	}

	return chart, nil
}
