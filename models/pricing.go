package models

import (
	"database/sql/driver"
	"math"
	"sort"
)

// PriceTier pairs a minimum group size with the per-person price that size unlocks.
// Tiers are authored so that larger groups get cheaper per-person prices, but
// nothing here enforces that ordering.
type PriceTier struct {
	MinPeople int     `json:"minPeople"`
	Price     float64 `json:"price"`
}

// PriceTiers is stored as a JSONB column on destinations.
type PriceTiers []PriceTier

func (t PriceTiers) Value() (driver.Value, error) {
	if t == nil {
		return jsonbValue([]PriceTier{})
	}
	return jsonbValue([]PriceTier(t))
}

func (t *PriceTiers) Scan(value interface{}) error {
	return jsonbScan(t, value)
}

// safeTiers guards against destinations saved without any tier.
func safeTiers(tiers PriceTiers) PriceTiers {
	if len(tiers) == 0 {
		return PriceTiers{{MinPeople: 1, Price: 0}}
	}
	return tiers
}

// PriceForParticipants returns the per-person price for a group of the given
// size: the tier with the highest MinPeople the group still satisfies wins.
// If the group is smaller than every tier's minimum, the cheapest tier price
// is used as a fallback.
func PriceForParticipants(tiers PriceTiers, count int) float64 {
	safe := safeTiers(tiers)

	sorted := make(PriceTiers, len(safe))
	copy(sorted, safe)
	sort.Slice(sorted, func(i, j int) bool {
		return sorted[i].MinPeople > sorted[j].MinPeople
	})

	for _, tier := range sorted {
		if count >= tier.MinPeople {
			return tier.Price
		}
	}

	lowest := safe[0].Price
	for _, tier := range safe[1:] {
		if tier.Price < lowest {
			lowest = tier.Price
		}
	}
	return lowest
}

// OrderTotal is the authoritative total for a booking: per-person price times
// the participant count.
func OrderTotal(tiers PriceTiers, count int) float64 {
	return PriceForParticipants(tiers, count) * float64(count)
}

// DiscountPercent reports how far the applicable tier sits below the most
// expensive tier, as a rounded percentage. Display-only, never persisted.
func DiscountPercent(tiers PriceTiers, count int) int {
	safe := safeTiers(tiers)

	maxPrice := safe[0].Price
	for _, tier := range safe[1:] {
		if tier.Price > maxPrice {
			maxPrice = tier.Price
		}
	}

	price := PriceForParticipants(tiers, count)
	if price < maxPrice && maxPrice > 0 {
		return int(math.Round((maxPrice - price) / maxPrice * 100))
	}
	return 0
}
