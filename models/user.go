package models

import (
    "time"

    "gorm.io/gorm"
)

// User holds the hydration profile captured at onboarding. Accounts are
// soft-disabled, never deleted; ConsumedMl is a denormalized copy of the
// intake log and may be reset without touching history.
type User struct {
    gorm.Model
    Email         string `gorm:"uniqueIndex;not null"`
    Password      string `gorm:"not null"`
    Username      string
    PhoneNumber   string
    ProfilePicURL string

    Age           int
    WeightKg      float64
    Gender        string
    ActivityLevel string // Sedentary | Light Active | Moderate Active | Very Active | Extra Active
    WakeUpTime    string // "HH:MM", local time of day
    Bedtime       string // "HH:MM"

    BaseGoalMl  float64 // biometric goal before temperature adjustment
    DailyGoalMl float64 // effective goal persisted for display
    ConsumedMl  float64 // cached running total for today, unclamped

    SelectedDisease string
    UsesDiseasePlan bool
    PlanGoalL       float64 // disease-plan goal in liters, valid while UsesDiseasePlan

    ResetToken    string
    ResetTokenExp time.Time

    Onboarded bool
    Disabled  bool `gorm:"default:false"`
}
