package services

import (
	"backend/config"
	"backend/models"
	"backend/utils"
)

// recentBeverageWindow caps how many presets the primary screen shows.
const recentBeverageWindow = 3

var defaultBeverages = []models.Beverage{
	{Name: "Coffee", Emoji: "☕", HydrationLevel: 0.8},
	{Name: "Yogurt", Emoji: "🍶", HydrationLevel: 0.7},
	{Name: "Tea", Emoji: "🍵", HydrationLevel: 0.9},
}

// AddBeverage appends a preset to the user's list. HydrationLevel defaults
// to 1.0 (plain water) when the client omits it.
func AddBeverage(userID uint, name, emoji string, hydrationLevel float64) (*models.Beverage, error) {
	if name == "" {
		return nil, utils.Invalid("beverage", "name is required")
	}
	if hydrationLevel <= 0 {
		hydrationLevel = 1.0
	}

	b := models.Beverage{
		UserID:         userID,
		Name:           name,
		Emoji:          emoji,
		HydrationLevel: hydrationLevel,
	}
	if err := config.DB.Create(&b).Error; err != nil {
		return nil, err
	}
	return &b, nil
}

// RecentBeverages returns the most recently added presets, newest first,
// capped at the rotating window. Users with no presets get the stock three.
func RecentBeverages(userID uint) ([]models.Beverage, error) {
	var list []models.Beverage
	err := config.DB.
		Where("user_id = ?", userID).
		Order("created_at desc").
		Limit(recentBeverageWindow).
		Find(&list).Error
	if err != nil {
		return nil, err
	}
	if len(list) == 0 {
		return defaultBeverages, nil
	}
	return list, nil
}

func ListBeverages(userID uint) ([]models.Beverage, error) {
	var list []models.Beverage
	err := config.DB.
		Where("user_id = ?", userID).
		Order("created_at asc").
		Find(&list).Error
	return list, err
}
