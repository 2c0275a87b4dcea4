// Package auction holds the normalized listing model, the error kinds shared by
// the API clients, and the fuzzy name filter.
package auction

import (
	"github.com/minhyannv/auction-finder-go/pkg/similarity"
)

// DefaultThreshold is the minimum similarity a listing name needs to survive filtering.
const DefaultThreshold = 0.6

// Listing is one active auction normalized from the marketplace response.
type Listing struct {
	ID          string `json:"uuid"`
	DisplayName string `json:"name"`
	Tier        string `json:"tier"`
	// Payload is the serialized item data; it is passed through untouched.
	Payload string `json:"item_bytes"`
}

// FilterBySimilarity returns the listings whose display name scores at least
// threshold against query. The result is a new slice in input order; listings
// is never modified.
func FilterBySimilarity(query string, listings []Listing, threshold float64) []Listing {
	out := make([]Listing, 0, len(listings))
	for _, l := range listings {
		if similarity.Compare(query, l.DisplayName) >= threshold {
			out = append(out, l)
		}
	}
	return out
}
