package domain

type Tier string

const (
	TierNewTraveler         Tier = "New Traveler"
	TierActiveTraveler      Tier = "Active Traveler"
	TierExperiencedTraveler Tier = "Experienced Traveler"
	TierExpertTraveler      Tier = "Expert Traveler"
	TierStarTraveler        Tier = "Star Traveler"
)

const (
	RegistrationPoints = 50
	FavoriteAddPoints  = 5
)

// TierFor maps cumulative points to a traveler tier.
func TierFor(points int64) Tier {
	switch {
	case points < 100:
		return TierNewTraveler
	case points < 500:
		return TierActiveTraveler
	case points < 1000:
		return TierExperiencedTraveler
	case points < 2000:
		return TierExpertTraveler
	default:
		return TierStarTraveler
	}
}
