package models

import (
    "time"

    "github.com/google/uuid"
    "gorm.io/gorm"
)

// IntakeLog is the append-only record of a single logged drink. Entries are
// never mutated or deleted; "reset" only zeroes the user's cached counter.
type IntakeLog struct {
    ID          uuid.UUID `gorm:"primaryKey"`
    CreatedAt   time.Time
    UserID      uint      `gorm:"index;not null"`
    AmountMl    float64   `gorm:"not null"`
    Beverage    string    // "Water", "Tea", ...
    DiseasePlan string    // plan name active at log time, empty if none
    Timestamp   time.Time `gorm:"index;not null"`
}

func (l *IntakeLog) BeforeCreate(tx *gorm.DB) (err error) {
    l.ID = uuid.New()
    return
}
