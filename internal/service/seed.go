package service

import (
	"context"
	"log"

	"github.com/azerguest/azerguest-api/internal/domain"
	"github.com/azerguest/azerguest-api/internal/repository/ports"
)

type seedPlace struct {
	name        string
	category    domain.PlaceCategory
	region      string
	price       int64
	rating      float64
	views       int64
	image       string
	description string
	features    []string
}

var defaultPlaces = []seedPlace{
	{"Göygöl", domain.PlaceCategoryLake, "Gəncə-Qazax", 50, 4.8, 2567, "114f9a2ec33af4cc6204a9ec1ef7893a.jpg", "Gözəl təbiət və təmiz hava", []string{"WiFi", "Restoran", "Parking"}},
	{"Böyük Qafqaz dağları", domain.PlaceCategoryMountain, "Şimal", 85, 4.9, 1234, "b1ed4c30ca688758ad1df626823f3e9d.jpg", "Dağ turizmi və hiking", []string{"Treking", "Kamp", "Bələdçi"}},
	{"Şəki Xan sarayı", domain.PlaceCategoryHistoric, "Şəki-Zaqatala", 40, 4.7, 856, "d80231b02fc0ee33596e4b3ad7093174.jpg", "Tarixi abidə və memarlıq", []string{"Muzey", "Ekskursiya", "Foto"}},
	{"Nohur gölü", domain.PlaceCategoryLake, "Qəbələ", 110, 4.9, 3421, "f407fe6a8ada9d1e8234c27432a0d291.jpg", "Sakit göl və piknik", []string{"Qayıq", "Balıq ovu", "Piknik"}},
	{"Şahdağ", domain.PlaceCategoryMountain, "Qusar", 95, 4.8, 2890, "44b52ba9e8ae6016db193e363f587dc1.jpg", "Qış turizmi və xizək", []string{"Xizək", "Teleferik", "Otel"}},
	{"Lahıc", domain.PlaceCategoryAdventure, "İsmayıllı", 85, 4.6, 1567, "bd6b575e4a642c8623419a2e042634d1.jpg", "Dağ kəndi və sənətkarlıq", []string{"Sənətkarlıq", "Tarixi evlər"}},
	{"İçərişəhər", domain.PlaceCategoryHistoric, "Bakı", 70, 4.9, 4123, "d81dd0d67b5c1ddfbbb7518278daeaf3.jpg", "Qədim şəhər və muzeylər", []string{"Muzeylər", "Mağazalar", "Restoranlar"}},
	{"Xəzər dənizi sahili", domain.PlaceCategorySea, "Abşeron", 60, 4.5, 3456, "114f9a2ec33af4cc6204a9ec1ef7893a.jpg", "Çimərlik və su əyləncələri", []string{"Çimərlik", "Su idmanı", "Kafe"}},
	{"Quba dağları", domain.PlaceCategoryMountain, "Quba", 75, 4.7, 2134, "b1ed4c30ca688758ad1df626823f3e9d.jpg", "Təbiət və trekking", []string{"Kamp", "Treking", "Təbiət"}},
	{"Lənkəran sahili", domain.PlaceCategorySea, "Lənkəran", 45, 4.6, 1890, "d80231b02fc0ee33596e4b3ad7093174.jpg", "Subtropik iqlim və çay", []string{"Çimərlik", "Çay bağları"}},
	{"Qobustan", domain.PlaceCategoryHistoric, "Abşeron", 55, 4.8, 2678, "f407fe6a8ada9d1e8234c27432a0d291.jpg", "Qədim qaya rəsmləri", []string{"Muzey", "Palçıq vulkanı"}},
	{"Tufandağ", domain.PlaceCategoryAdventure, "Qəbələ", 120, 4.9, 3890, "44b52ba9e8ae6016db193e363f587dc1.jpg", "Dağ kurort və aktivlər", []string{"Xizək", "Teleferik", "Restoran"}},
}

// SeedPlaces inserts the starter catalog when the places table is empty and
// reports how many rows were written.
func SeedPlaces(ctx context.Context, places ports.PlaceRepository) (int, error) {
	count, err := places.Count(ctx)
	if err != nil {
		return 0, err
	}
	if count > 0 {
		return 0, nil
	}

	for i, p := range defaultPlaces {
		region := p.region
		image := "/assets/img/" + p.image
		description := p.description
		if _, err := places.Create(ctx, domain.PlaceInput{
			Name:        p.name,
			Category:    p.category,
			Region:      &region,
			Price:       p.price,
			Rating:      p.rating,
			Views:       p.views,
			Image:       &image,
			Description: &description,
			Features:    p.features,
		}); err != nil {
			return i, err
		}
	}
	log.Printf("seeded %d places", len(defaultPlaces))
	return len(defaultPlaces), nil
}
