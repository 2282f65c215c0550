package catalog

import "github.com/kykylib/shoebot/internal/models"

// FixtureItems returns the built-in fallback catalog used when the remote
// feed is unavailable or malformed. The store is never empty after bootstrap.
func FixtureItems() []models.CatalogItem {
	return []models.CatalogItem{
		{Brand: "Nike", Model: "Air Max 270", Size: 42, Style: models.StyleSport, Type: models.TypeSneakers, Price: 3499,
			ImageURL: "https://static.nike.com/a/images/t_PDP_1280_v1/air-max-270-mens-shoes.png"},
		{Brand: "Adidas", Model: "Ultraboost 22", Size: 41, Style: models.StyleSport, Type: models.TypeSneakers, Price: 3999,
			ImageURL: "https://assets.adidas.com/images/Ultraboost_22_Shoes_Black_GZ0127_01_standard.jpg"},
		{Brand: "Puma", Model: "RS-X3 Puzzle", Size: 40, Style: models.StyleCasual, Type: models.TypeSneakers, Price: 2799,
			ImageURL: "https://images.puma.com/image/upload/global/376220/02/sv01/fnd/EEA/RS-X3-Puzzle-Unisex-Sneakers.png"},
		{Brand: "Timberland", Model: "Premium Boot", Size: 43, Style: models.StyleOutdoor, Type: models.TypeBoots, Price: 5999,
			ImageURL: "https://images.timberland.com/is/image/TimberlandEU/10061713-hero.jpg"},
		{Brand: "Clarks", Model: "Desert Trek", Size: 44, Style: models.StyleFormal, Type: models.TypeBoots, Price: 4599,
			ImageURL: "https://www.clarksusa.com/dw/image/v2/images/large/26175754_A.jpg"},
		{Brand: "Vans", Model: "Old Skool Pro", Size: 39, Style: models.StyleCasual, Type: models.TypeSneakers, Price: 2299,
			ImageURL: "https://images.vans.com/is/image/VansEU/VN0A38G1P8O-HERO.png"},
	}
}
