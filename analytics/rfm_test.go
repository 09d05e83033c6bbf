package analytics

import (
	"testing"
	"time"

	"github.com/mkravets/marketpulse/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var rfmNow = time.Date(2026, time.September, 1, 12, 0, 0, 0, time.UTC)

func orderOn(daysAgo int, amount float64) models.Order {
	return models.Order{
		OrderDate:   rfmNow.AddDate(0, 0, -daysAgo),
		TotalAmount: models.NullMoneyFromFloat(amount),
	}
}

func TestRFMSegmentsHighValueCustomer(t *testing.T) {
	customers := []models.Customer{
		{ID: 1, Orders: []models.Order{
			orderOn(40, 100),
			orderOn(20, 250),
			orderOn(10, 50),
		}},
	}

	records := RFMSegments(customers, rfmNow)
	require.Len(t, records, 1)

	assert.Equal(t, uint(1), records[0].ID)
	assert.Equal(t, uint(1), records[0].CustomerID)
	assert.Equal(t, 10, records[0].Recency)
	assert.Equal(t, 3, records[0].Frequency)
	assert.Equal(t, 400.0, records[0].Monetary)
	assert.Equal(t, SegmentHigh, records[0].Segment)
}

func TestRFMSegmentsMediumValueCustomer(t *testing.T) {
	customers := []models.Customer{
		{ID: 2, Orders: []models.Order{
			orderOn(30, 100),
			orderOn(5, 60),
		}},
	}

	records := RFMSegments(customers, rfmNow)
	require.Len(t, records, 1)

	// Frequency 2 fails High; frequency>=2 and monetary>=150 is Medium
	assert.Equal(t, 5, records[0].Recency)
	assert.Equal(t, 2, records[0].Frequency)
	assert.Equal(t, 160.0, records[0].Monetary)
	assert.Equal(t, SegmentMedium, records[0].Segment)
}

func TestRFMSegmentsCustomerWithoutOrders(t *testing.T) {
	records := RFMSegments([]models.Customer{{ID: 3}}, rfmNow)
	require.Len(t, records, 1)

	assert.Equal(t, 999, records[0].Recency)
	assert.Equal(t, 0, records[0].Frequency)
	assert.Equal(t, 0.0, records[0].Monetary)
	assert.Equal(t, SegmentLow, records[0].Segment)
}

func TestRFMSegmentsRecencyUsesLastLoadedOrder(t *testing.T) {
	// The last order in the slice is older than an earlier one; recency
	// follows the slice, not the calendar.
	customers := []models.Customer{
		{ID: 4, Orders: []models.Order{
			orderOn(3, 500),
			orderOn(90, 500),
		}},
	}

	records := RFMSegments(customers, rfmNow)
	require.Len(t, records, 1)

	assert.Equal(t, 90, records[0].Recency)
	// Recency 90 fails High despite frequency and monetary
	assert.Equal(t, SegmentMedium, records[0].Segment)
}

func TestRFMSegmentsNullAmountsAreZero(t *testing.T) {
	customers := []models.Customer{
		{ID: 5, Orders: []models.Order{
			orderOn(1, 100),
			{OrderDate: rfmNow.AddDate(0, 0, -1), TotalAmount: models.NullMoney{}},
		}},
	}

	records := RFMSegments(customers, rfmNow)
	require.Len(t, records, 1)

	assert.Equal(t, 100.0, records[0].Monetary)
	// Monetary 100 fails Medium's 150 floor
	assert.Equal(t, SegmentLow, records[0].Segment)
}

func TestRFMSegmentsRecencyBoundaryMissesHigh(t *testing.T) {
	// recency 30 misses the strict <30 check even with strong F and M
	customers := []models.Customer{
		{ID: 6, Orders: []models.Order{
			orderOn(1, 200),
			orderOn(1, 200),
			orderOn(30, 200),
		}},
	}

	records := RFMSegments(customers, rfmNow)
	require.Len(t, records, 1)

	assert.Equal(t, 30, records[0].Recency)
	assert.Equal(t, SegmentMedium, records[0].Segment)
}
