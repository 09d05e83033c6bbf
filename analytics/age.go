package analytics

import (
	"time"

	"github.com/mkravets/marketpulse/models"
)

// AgeBucket is one labeled range of the age histogram.
type AgeBucket struct {
	Range string `json:"range"`
	Count int    `json:"count"`
}

// ageRanges fixes the output order of the histogram.
var ageRanges = []string{"18-25", "26-35", "36-50", "51+", "Unknown"}

// AgeDistribution buckets customers by age. Age is current year minus birth
// year, with no month/day adjustment. All five buckets are always emitted,
// in fixed order, including zero counts.
func AgeDistribution(customers []models.Customer, now time.Time) []AgeBucket {
	counts := make(map[string]int, len(ageRanges))
	for _, c := range customers {
		counts[ageRange(c.DateOfBirth, now)]++
	}

	buckets := make([]AgeBucket, 0, len(ageRanges))
	for _, r := range ageRanges {
		buckets = append(buckets, AgeBucket{Range: r, Count: counts[r]})
	}
	return buckets
}

func ageRange(dateOfBirth *time.Time, now time.Time) string {
	if dateOfBirth == nil {
		return "Unknown"
	}

	age := now.Year() - dateOfBirth.Year()
	switch {
	case age >= 18 && age <= 25:
		return "18-25"
	case age <= 35:
		// The cascade has no lower bound after the first check, so ages
		// under 18 land here. Kept to match the shipped behavior.
		return "26-35"
	case age <= 50:
		return "36-50"
	default:
		return "51+"
	}
}
