// Package analytics holds the pure aggregation functions that turn fetched
// rows into derived business metrics. Nothing here touches the database or
// mutates its inputs; every function is a plain transform over a
// request-scoped snapshot.
package analytics

import (
	"sort"

	"github.com/mkravets/marketpulse/models"
)

// DiscountStat summarizes the usage of one discount across its orders.
type DiscountStat struct {
	ID           uint    `json:"id"`
	Name         string  `json:"name"`
	UsageCount   int     `json:"usage_count"`
	TotalSales   float64 `json:"total_sales"`
	AverageOrder float64 `json:"average_order"`
	Rate         float64 `json:"rate"`
}

// TopDiscounts ranks discounts by total sales, descending. Orders with a
// null amount count toward usage but contribute zero to the totals. The
// sort is stable, so equal totals keep their fetch order.
func TopDiscounts(discounts []models.Discount) []DiscountStat {
	stats := make([]DiscountStat, 0, len(discounts))
	for _, d := range discounts {
		count := len(d.Orders)
		total := 0.0
		for _, o := range d.Orders {
			total += o.TotalAmount.Float64()
		}
		avg := 0.0
		if count > 0 {
			avg = total / float64(count)
		}
		stats = append(stats, DiscountStat{
			ID:           d.ID,
			Name:         d.Name,
			UsageCount:   count,
			TotalSales:   total,
			AverageOrder: avg,
			Rate:         d.DiscountRate.InexactFloat64(),
		})
	}

	sort.SliceStable(stats, func(i, j int) bool {
		return stats[i].TotalSales > stats[j].TotalSales
	})

	return stats
}
