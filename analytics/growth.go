package analytics

import (
	"sort"

	"github.com/mkravets/marketpulse/models"
)

// GrowthPoint is the number of customers registered in one calendar month.
type GrowthPoint struct {
	Month string `json:"month"`
	Count int    `json:"count"`
}

// CustomerGrowth buckets registrations by "YYYY-MM" (UTC) and returns the
// buckets sorted ascending by month key. Months with no registrations are
// absent, not zero-filled.
func CustomerGrowth(customers []models.Customer) []GrowthPoint {
	counts := make(map[string]int)
	for _, c := range customers {
		counts[c.RegisteredAt.UTC().Format("2006-01")]++
	}

	points := make([]GrowthPoint, 0, len(counts))
	for month, count := range counts {
		points = append(points, GrowthPoint{Month: month, Count: count})
	}

	sort.Slice(points, func(i, j int) bool {
		return points[i].Month < points[j].Month
	})

	return points
}
