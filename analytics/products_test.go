package analytics

import (
	"fmt"
	"testing"

	"github.com/mkravets/marketpulse/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRankProductUsageGroupsAndSorts(t *testing.T) {
	details := []models.OrderDetail{
		{ProductID: 1, Quantity: 2},
		{ProductID: 2, Quantity: 10},
		{ProductID: 1, Quantity: 5},
		{ProductID: 3, Quantity: 3},
	}

	ranked := RankProductUsage(details)
	require.Len(t, ranked, 3)

	assert.Equal(t, ProductQuantity{ProductID: 2, Quantity: 10}, ranked[0])
	assert.Equal(t, ProductQuantity{ProductID: 1, Quantity: 7}, ranked[1])
	assert.Equal(t, ProductQuantity{ProductID: 3, Quantity: 3}, ranked[2])
}

func TestRankProductUsageCapsAtTen(t *testing.T) {
	var details []models.OrderDetail
	for i := 1; i <= 15; i++ {
		details = append(details, models.OrderDetail{ProductID: uint(i), Quantity: i})
	}

	ranked := RankProductUsage(details)
	require.Len(t, ranked, 10)

	// Highest totals survive the cut
	assert.Equal(t, uint(15), ranked[0].ProductID)
	assert.Equal(t, uint(6), ranked[9].ProductID)
}

func TestRankProductUsageTiesKeepFirstSeenOrder(t *testing.T) {
	details := []models.OrderDetail{
		{ProductID: 9, Quantity: 4},
		{ProductID: 4, Quantity: 4},
		{ProductID: 7, Quantity: 4},
	}

	ranked := RankProductUsage(details)
	require.Len(t, ranked, 3)

	assert.Equal(t, uint(9), ranked[0].ProductID)
	assert.Equal(t, uint(4), ranked[1].ProductID)
	assert.Equal(t, uint(7), ranked[2].ProductID)
}

func TestResolveProductsFillsNamesAndIds(t *testing.T) {
	ranked := []ProductQuantity{
		{ProductID: 2, Quantity: 10},
		{ProductID: 5, Quantity: 4},
	}
	products := []models.Product{
		{ID: 2, Name: "Espresso Beans"},
		{ID: 5, Name: "Filter Paper"},
	}

	resolved := ResolveProducts(ranked, products)
	require.Len(t, resolved, 2)

	require.NotNil(t, resolved[0].ID)
	assert.Equal(t, uint(2), *resolved[0].ID)
	assert.Equal(t, "Espresso Beans", resolved[0].Name)
	assert.Equal(t, 10, resolved[0].Count)
}

func TestResolveProductsMissingProductIsUnknown(t *testing.T) {
	ranked := []ProductQuantity{{ProductID: 42, Quantity: 6}}

	resolved := ResolveProducts(ranked, nil)
	require.Len(t, resolved, 1)

	assert.Nil(t, resolved[0].ID)
	assert.Equal(t, "Unknown", resolved[0].Name)
	assert.Equal(t, 6, resolved[0].Count)
}

func TestProductIDsKeepRankOrder(t *testing.T) {
	ranked := []ProductQuantity{{ProductID: 3}, {ProductID: 1}, {ProductID: 2}}
	assert.Equal(t, []uint{3, 1, 2}, ProductIDs(ranked))
}

func TestRankProductUsageEmptyInput(t *testing.T) {
	assert.Empty(t, RankProductUsage(nil))
}

func ExampleResolveProducts() {
	ranked := []ProductQuantity{{ProductID: 1, Quantity: 3}}
	resolved := ResolveProducts(ranked, []models.Product{{ID: 1, Name: "Grinder"}})
	fmt.Println(resolved[0].Name, resolved[0].Count)
	// Output: Grinder 3
}
