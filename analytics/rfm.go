package analytics

import (
	"math"
	"time"

	"github.com/mkravets/marketpulse/models"
)

// staleRecencyDays is the recency assigned to customers with no orders.
const staleRecencyDays = 999

// RFM segment labels, checked in priority order.
const (
	SegmentHigh   = "High"
	SegmentMedium = "Medium"
	SegmentLow    = "Low"
)

// RFMRecord is the per-customer recency/frequency/monetary classification.
// ID and CustomerID are always equal; both are kept for client decoding.
type RFMRecord struct {
	ID         uint    `json:"id"`
	CustomerID uint    `json:"customer_id"`
	Recency    int     `json:"recency"`
	Frequency  int     `json:"frequency"`
	Monetary   float64 `json:"monetary"`
	Segment    string  `json:"segment"`
}

// RFMSegments classifies each customer from its loaded orders.
//
// Recency is the whole number of days since the LAST order in the loaded
// slice, i.e. store return order, not the chronologically latest order.
// The Orders association is preloaded without an ORDER BY, so this follows
// whatever order the store returns. Known deviation, kept on purpose.
func RFMSegments(customers []models.Customer, now time.Time) []RFMRecord {
	result := make([]RFMRecord, 0, len(customers))
	for _, c := range customers {
		recency := staleRecencyDays
		if n := len(c.Orders); n > 0 {
			last := c.Orders[n-1]
			recency = int(math.Floor(now.Sub(last.OrderDate).Hours() / 24))
		}

		frequency := len(c.Orders)

		monetary := 0.0
		for _, o := range c.Orders {
			monetary += o.TotalAmount.Float64()
		}

		segment := SegmentLow
		if recency < 30 && frequency >= 3 && monetary >= 300 {
			segment = SegmentHigh
		} else if frequency >= 2 && monetary >= 150 {
			segment = SegmentMedium
		}

		result = append(result, RFMRecord{
			ID:         c.ID,
			CustomerID: c.ID,
			Recency:    recency,
			Frequency:  frequency,
			Monetary:   monetary,
			Segment:    segment,
		})
	}
	return result
}
