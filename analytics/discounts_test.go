package analytics

import (
	"testing"

	"github.com/mkravets/marketpulse/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func orderWithAmount(amount float64) models.Order {
	return models.Order{TotalAmount: models.NullMoneyFromFloat(amount)}
}

func TestTopDiscountsRanksByTotalSales(t *testing.T) {
	discounts := []models.Discount{
		{ID: 1, Name: "Spring Sale", DiscountRate: models.MoneyFromFloat(10), Orders: []models.Order{
			orderWithAmount(100),
		}},
		{ID: 2, Name: "Black Friday", DiscountRate: models.MoneyFromFloat(25), Orders: []models.Order{
			orderWithAmount(400),
			orderWithAmount(200),
		}},
		{ID: 3, Name: "Welcome", DiscountRate: models.MoneyFromFloat(5), Orders: []models.Order{
			orderWithAmount(150),
			orderWithAmount(50),
		}},
	}

	stats := TopDiscounts(discounts)
	require.Len(t, stats, 3)

	assert.Equal(t, uint(2), stats[0].ID)
	assert.Equal(t, uint(3), stats[1].ID)
	assert.Equal(t, uint(1), stats[2].ID)

	for i := 1; i < len(stats); i++ {
		assert.GreaterOrEqual(t, stats[i-1].TotalSales, stats[i].TotalSales)
	}

	assert.Equal(t, 2, stats[0].UsageCount)
	assert.Equal(t, 600.0, stats[0].TotalSales)
	assert.Equal(t, 300.0, stats[0].AverageOrder)
	assert.Equal(t, 25.0, stats[0].Rate)
}

func TestTopDiscountsNullAmountsCountAsZero(t *testing.T) {
	discounts := []models.Discount{
		{ID: 1, Name: "Mixed", Orders: []models.Order{
			orderWithAmount(90),
			{TotalAmount: models.NullMoney{}},
		}},
	}

	stats := TopDiscounts(discounts)
	require.Len(t, stats, 1)

	assert.Equal(t, 2, stats[0].UsageCount)
	assert.Equal(t, 90.0, stats[0].TotalSales)
	assert.Equal(t, 45.0, stats[0].AverageOrder)
}

func TestTopDiscountsNoOrders(t *testing.T) {
	stats := TopDiscounts([]models.Discount{{ID: 7, Name: "Unused"}})
	require.Len(t, stats, 1)

	assert.Equal(t, 0, stats[0].UsageCount)
	assert.Equal(t, 0.0, stats[0].TotalSales)
	assert.Equal(t, 0.0, stats[0].AverageOrder)
}

func TestTopDiscountsTiesKeepFetchOrder(t *testing.T) {
	discounts := []models.Discount{
		{ID: 1, Orders: []models.Order{orderWithAmount(100)}},
		{ID: 2, Orders: []models.Order{orderWithAmount(100)}},
		{ID: 3, Orders: []models.Order{orderWithAmount(100)}},
	}

	stats := TopDiscounts(discounts)
	require.Len(t, stats, 3)

	assert.Equal(t, uint(1), stats[0].ID)
	assert.Equal(t, uint(2), stats[1].ID)
	assert.Equal(t, uint(3), stats[2].ID)
}

func TestTopDiscountsEmptyInput(t *testing.T) {
	assert.Empty(t, TopDiscounts(nil))
}
