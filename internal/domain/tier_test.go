package domain

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestTierForBoundaries(t *testing.T) {
	cases := []struct {
		points int64
		want   Tier
	}{
		{0, TierNewTraveler},
		{50, TierNewTraveler},
		{99, TierNewTraveler},
		{100, TierActiveTraveler},
		{499, TierActiveTraveler},
		{500, TierExperiencedTraveler},
		{999, TierExperiencedTraveler},
		{1000, TierExpertTraveler},
		{1999, TierExpertTraveler},
		{2000, TierStarTraveler},
		{100000, TierStarTraveler},
	}
	for _, tc := range cases {
		assert.Equal(t, tc.want, TierFor(tc.points), "points=%d", tc.points)
	}
}
