package models

import (
    "time"

    "gorm.io/datatypes"
    "gorm.io/gorm"
)

// WeeklyProgress is the fixed 7-day challenge window. Slot 0 corresponds to
// StartDate; once 7 calendar days have elapsed the window resets rather than
// sliding.
type WeeklyProgress struct {
    gorm.Model
    UserID    uint      `gorm:"uniqueIndex;not null"`
    StartDate time.Time `gorm:"not null"` // truncated to local midnight
    Slots     datatypes.JSON              // JSON array of 7 booleans
}
