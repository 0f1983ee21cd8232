package entity

import "time"

// FoodCategory determines how long a donation may stay edible after preparation.
type FoodCategory string

const (
	FoodCategoryCookedMeal   FoodCategory = "cooked_meal"
	FoodCategoryDairy        FoodCategory = "dairy"
	FoodCategoryBakery       FoodCategory = "bakery"
	FoodCategoryFreshProduce FoodCategory = "fresh_produce"
	FoodCategoryPackaged     FoodCategory = "packaged"
	FoodCategoryBeverage     FoodCategory = "beverage"
)

var maxShelfLife = map[FoodCategory]time.Duration{
	FoodCategoryCookedMeal:   6 * time.Hour,
	FoodCategoryDairy:        12 * time.Hour,
	FoodCategoryBakery:       24 * time.Hour,
	FoodCategoryFreshProduce: 48 * time.Hour,
	FoodCategoryPackaged:     48 * time.Hour,
	FoodCategoryBeverage:     72 * time.Hour,
}

// MaxShelfLife returns the longest allowed span between preparation and expiry.
func (c FoodCategory) MaxShelfLife() (time.Duration, bool) {
	d, ok := maxShelfLife[c]

	return d, ok
}

// IsValid reports whether c is a known category.
func (c FoodCategory) IsValid() bool {
	_, ok := maxShelfLife[c]

	return ok
}
