package models

import "gorm.io/gorm"

// Beverage is a user-scoped drink preset. HydrationLevel is a relative
// contribution factor (1.0 = water); the home screen rotates the most
// recently added three.
type Beverage struct {
    gorm.Model
    UserID         uint   `gorm:"index;not null"`
    Name           string `gorm:"not null"`
    Emoji          string
    HydrationLevel float64 `gorm:"default:1.0"`
}
