package models

import "time"

// MilestoneAward records a milestone that fired for a user on a given local
// day. The (user, day, fraction) key is what makes firing idempotent: the
// evaluator only emits milestones with no existing row for today.
type MilestoneAward struct {
    ID           uint      `gorm:"primaryKey"`
    UserID       uint      `gorm:"index:idx_award_user_day,unique"`
    Day          time.Time `gorm:"index:idx_award_user_day,unique"` // local midnight
    GoalFraction float64   `gorm:"index:idx_award_user_day,unique"`
    TimeLabel    string
    Reward       string
    CreatedAt    time.Time
}
