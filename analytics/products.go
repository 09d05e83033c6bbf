package analytics

import (
	"sort"

	"github.com/mkravets/marketpulse/models"
)

// popularProductLimit caps the popular-products ranking.
const popularProductLimit = 10

// ProductQuantity is an intermediate ranking entry before product names
// are resolved.
type ProductQuantity struct {
	ProductID uint
	Quantity  int
}

// ProductUsage is one resolved entry in the popular-products ranking. ID is
// null when the ranked product id has no matching product record.
type ProductUsage struct {
	ID    *uint  `json:"id"`
	Name  string `json:"name"`
	Count int    `json:"count"`
}

// RankProductUsage groups order details by product, sums quantities and
// returns at most the top ten products by total quantity, descending.
// Products with equal totals keep their first-seen order.
func RankProductUsage(details []models.OrderDetail) []ProductQuantity {
	totals := make(map[uint]int)
	var seen []uint
	for _, d := range details {
		if _, ok := totals[d.ProductID]; !ok {
			seen = append(seen, d.ProductID)
		}
		totals[d.ProductID] += d.Quantity
	}

	ranked := make([]ProductQuantity, 0, len(seen))
	for _, id := range seen {
		ranked = append(ranked, ProductQuantity{ProductID: id, Quantity: totals[id]})
	}

	sort.SliceStable(ranked, func(i, j int) bool {
		return ranked[i].Quantity > ranked[j].Quantity
	})

	if len(ranked) > popularProductLimit {
		ranked = ranked[:popularProductLimit]
	}
	return ranked
}

// ProductIDs extracts the product ids from a ranking, in rank order.
func ProductIDs(ranked []ProductQuantity) []uint {
	ids := make([]uint, 0, len(ranked))
	for _, r := range ranked {
		ids = append(ids, r.ProductID)
	}
	return ids
}

// ResolveProducts joins a ranking with the product records fetched for it.
// A ranked id with no matching product is not an error: the entry keeps its
// count, the name defaults to "Unknown" and the id stays null.
func ResolveProducts(ranked []ProductQuantity, products []models.Product) []ProductUsage {
	byID := make(map[uint]models.Product, len(products))
	for _, p := range products {
		byID[p.ID] = p
	}

	result := make([]ProductUsage, 0, len(ranked))
	for _, r := range ranked {
		entry := ProductUsage{Name: "Unknown", Count: r.Quantity}
		if p, ok := byID[r.ProductID]; ok {
			id := p.ID
			entry.ID = &id
			entry.Name = p.Name
		}
		result = append(result, entry)
	}
	return result
}
