package services

import (
	"testing"

	"github.com/Rudrakshsachdev/TravelSource/models"
	"github.com/stretchr/testify/assert"
)

func tripWithPrice(id uint, price float64) models.Trip {
	t := models.Trip{Price: price}
	t.ID = id
	return t
}

func TestMeanPrice(t *testing.T) {
	assert.Equal(t, 0.0, MeanPrice(nil))
	assert.Equal(t, 100.0, MeanPrice([]models.Trip{tripWithPrice(1, 100)}))

	trips := []models.Trip{
		tripWithPrice(1, 50),
		tripWithPrice(2, 100),
		tripWithPrice(3, 150),
	}
	assert.Equal(t, 100.0, MeanPrice(trips))
}

func TestFilterByPriceBand(t *testing.T) {
	trips := []models.Trip{
		tripWithPrice(1, 59),  // just below 0.6 * 100
		tripWithPrice(2, 60),  // lower bound inclusive
		tripWithPrice(3, 100),
		tripWithPrice(4, 140), // upper bound inclusive
		tripWithPrice(5, 141), // just above 1.4 * 100
	}

	banded := FilterByPriceBand(trips, 100)

	ids := make([]uint, 0, len(banded))
	for _, trip := range banded {
		ids = append(ids, trip.ID)
	}
	assert.Equal(t, []uint{2, 3, 4}, ids)
}

func TestFilterByPriceBandZeroMean(t *testing.T) {
	trips := []models.Trip{
		tripWithPrice(1, 0),
		tripWithPrice(2, 100),
	}

	// A zero mean collapses the band to free trips only.
	banded := FilterByPriceBand(trips, 0)
	assert.Len(t, banded, 1)
	assert.Equal(t, uint(1), banded[0].ID)
}

func TestParseExcludeIDs(t *testing.T) {
	assert.Nil(t, ParseExcludeIDs(""))
	assert.Equal(t, []uint{1, 2, 3}, ParseExcludeIDs("1,2,3"))
	assert.Equal(t, []uint{4, 7}, ParseExcludeIDs(" 4 , 7 "))

	// Malformed entries are dropped, not rejected.
	assert.Equal(t, []uint{5}, ParseExcludeIDs("abc,5,-1,0,"))
	assert.Empty(t, ParseExcludeIDs("x,y,z"))
}

func TestCapTrips(t *testing.T) {
	trips := make([]models.Trip, 0, RecommendLimit+4)
	for i := 1; i <= RecommendLimit+4; i++ {
		trips = append(trips, tripWithPrice(uint(i), float64(i)))
	}

	assert.Len(t, capTrips(trips), RecommendLimit)
	assert.Len(t, capTrips(trips[:2]), 2)
	assert.Empty(t, capTrips(nil))
}
