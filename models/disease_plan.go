package models

import (
    "gorm.io/datatypes"
    "gorm.io/gorm"
)

// DiseasePlan is immutable reference data. Schedule, Tips and Milestones
// arrive as serialized JSON blobs and must be parsed and validated before
// use; a plan whose blobs fail to parse is excluded from the available set.
type DiseasePlan struct {
    gorm.Model
    Name               string  `gorm:"uniqueIndex;not null"`
    Description        string  `gorm:"type:text"`
    RecommendedIntakeL float64 `gorm:"not null"`
    Notes              string  `gorm:"type:text"`
    Schedule           datatypes.JSON
    Tips               datatypes.JSON
    Milestones         datatypes.JSON
}
