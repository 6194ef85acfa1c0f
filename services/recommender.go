package services

import (
	"strconv"
	"strings"

	"github.com/Rudrakshsachdev/TravelSource/models"
	"github.com/Rudrakshsachdev/TravelSource/storage"
)

// Tuning knobs for the price-similarity heuristic. The band factors define how
// far a candidate's price may stray from the mean of the user's viewed trips;
// below MinBandedCandidates matches the band is dropped entirely.
const (
	RecommendLimit      = 6
	MinBandedCandidates = 3
	LowBandFactor       = 0.6
	HighBandFactor      = 1.4
)

// RecommendForUser picks up to RecommendLimit active trips the user has not
// viewed, preferring trips priced near the mean of what they have looked at.
func RecommendForUser(userID uint) ([]models.Trip, error) {
	var views []models.TripView
	if err := storage.DB.Where("user_id = ?", userID).Find(&views).Error; err != nil {
		return nil, err
	}

	viewedIDs := make([]uint, 0, len(views))
	for _, v := range views {
		viewedIDs = append(viewedIDs, v.TripID)
	}

	if len(viewedIDs) == 0 {
		return activeTrips(nil)
	}

	var viewedTrips []models.Trip
	if err := storage.DB.Where("id IN ?", viewedIDs).Find(&viewedTrips).Error; err != nil {
		return nil, err
	}

	candidates, err := allActiveExcluding(viewedIDs)
	if err != nil {
		return nil, err
	}

	banded := FilterByPriceBand(candidates, MeanPrice(viewedTrips))
	if len(banded) < MinBandedCandidates {
		return capTrips(candidates), nil
	}
	return capTrips(banded), nil
}

// RecommendForAnonymous only honours the client-supplied exclusion list.
func RecommendForAnonymous(excludeIDs []uint) ([]models.Trip, error) {
	return activeTrips(excludeIDs)
}

// MeanPrice is the arithmetic mean over the given trips, 0 for an empty slice.
func MeanPrice(trips []models.Trip) float64 {
	if len(trips) == 0 {
		return 0
	}
	var sum float64
	for _, t := range trips {
		sum += t.Price
	}
	return sum / float64(len(trips))
}

// FilterByPriceBand keeps trips priced within [LowBandFactor*mean, HighBandFactor*mean].
func FilterByPriceBand(trips []models.Trip, mean float64) []models.Trip {
	low := LowBandFactor * mean
	high := HighBandFactor * mean

	banded := make([]models.Trip, 0, len(trips))
	for _, t := range trips {
		if t.Price >= low && t.Price <= high {
			banded = append(banded, t)
		}
	}
	return banded
}

// ParseExcludeIDs parses a comma-separated ID list from a query parameter.
// Malformed entries are dropped silently.
func ParseExcludeIDs(raw string) []uint {
	if raw == "" {
		return nil
	}
	ids := make([]uint, 0)
	for _, part := range strings.Split(raw, ",") {
		id, err := strconv.ParseUint(strings.TrimSpace(part), 10, 32)
		if err != nil || id == 0 {
			continue
		}
		ids = append(ids, uint(id))
	}
	return ids
}

func activeTrips(excludeIDs []uint) ([]models.Trip, error) {
	q := storage.DB.Where("is_active = ?", true).Limit(RecommendLimit)
	if len(excludeIDs) > 0 {
		q = q.Where("id NOT IN ?", excludeIDs)
	}
	var trips []models.Trip
	if err := q.Find(&trips).Error; err != nil {
		return nil, err
	}
	return trips, nil
}

func allActiveExcluding(excludeIDs []uint) ([]models.Trip, error) {
	q := storage.DB.Where("is_active = ?", true)
	if len(excludeIDs) > 0 {
		q = q.Where("id NOT IN ?", excludeIDs)
	}
	var trips []models.Trip
	if err := q.Find(&trips).Error; err != nil {
		return nil, err
	}
	return trips, nil
}

func capTrips(trips []models.Trip) []models.Trip {
	if len(trips) > RecommendLimit {
		return trips[:RecommendLimit]
	}
	return trips
}
