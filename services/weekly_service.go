package services

import (
	"encoding/json"
	"errors"
	"math"
	"time"

	"backend/config"
	"backend/models"

	"gorm.io/datatypes"
	"gorm.io/gorm"
)

const weekLength = 7

// daysBetween counts whole calendar days from a to b in local time. The
// quotient is rounded, not truncated, so a 23-hour DST transition day still
// counts as one day.
func daysBetween(a, b time.Time) int {
	return int(math.Round(dayStartLocal(b).Sub(dayStartLocal(a)).Hours() / 24))
}

// advanceWindow applies the rollover rule: once 7 calendar days have elapsed
// since the anchor, every slot clears and the anchor moves to today. Within
// the window the anchor and slots are returned unchanged. The returned index
// is today's slot.
func advanceWindow(start time.Time, slots [weekLength]bool, today time.Time) (time.Time, [weekLength]bool, int) {
	idx := daysBetween(start, today)
	if idx < 0 || idx >= weekLength {
		return dayStartLocal(today), [weekLength]bool{}, 0
	}
	return start, slots, idx
}

func decodeSlots(raw datatypes.JSON) [weekLength]bool {
	var slots [weekLength]bool
	if len(raw) > 0 {
		_ = json.Unmarshal(raw, &slots)
	}
	return slots
}

func encodeSlots(slots [weekLength]bool) datatypes.JSON {
	raw, _ := json.Marshal(slots)
	return raw
}

func loadOrStartWindow(userID uint, today time.Time) (*models.WeeklyProgress, error) {
	var wp models.WeeklyProgress
	err := config.DB.Where("user_id = ?", userID).First(&wp).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		wp = models.WeeklyProgress{
			UserID:    userID,
			StartDate: dayStartLocal(today),
			Slots:     encodeSlots([weekLength]bool{}),
		}
		if err := config.DB.Create(&wp).Error; err != nil {
			return nil, err
		}
		return &wp, nil
	}
	if err != nil {
		return nil, err
	}
	return &wp, nil
}

// UpdateWeeklyProgress rolls the window forward if needed and, when today's
// goal is fully met, marks today's slot. Completion is monotonic: a slot
// already marked stays marked even if progress later drops.
func UpdateWeeklyProgress(userID uint, today time.Time, complete bool) error {
	wp, err := loadOrStartWindow(userID, today)
	if err != nil {
		return err
	}

	start, slots, idx := advanceWindow(wp.StartDate, decodeSlots(wp.Slots), today)
	if complete {
		slots[idx] = true
	}

	wp.StartDate = start
	wp.Slots = encodeSlots(slots)
	return config.DB.Save(wp).Error
}

// WeeklyOverview is the 7-slot challenge window plus the display-only
// monthly completion ratio.
type WeeklyOverview struct {
	StartDate      string  `json:"start_date"`
	EndDate        string  `json:"end_date"`
	Days           []bool  `json:"days"`
	CompletedDays  int     `json:"completed_days"`
	MonthlyPercent float64 `json:"monthly_percent"`
}

// GetWeeklyOverview returns the current window, rolling it over first when
// it has expired so a stale window is never served.
func GetWeeklyOverview(userID uint, today time.Time) (*WeeklyOverview, error) {
	wp, err := loadOrStartWindow(userID, today)
	if err != nil {
		return nil, err
	}

	start, slots, _ := advanceWindow(wp.StartDate, decodeSlots(wp.Slots), today)
	if !start.Equal(wp.StartDate) {
		wp.StartDate = start
		wp.Slots = encodeSlots(slots)
		if err := config.DB.Save(wp).Error; err != nil {
			return nil, err
		}
	}

	completed := 0
	days := make([]bool, weekLength)
	for i, s := range slots {
		days[i] = s
		if s {
			completed++
		}
	}

	return &WeeklyOverview{
		StartDate:      start.Format("2006-01-02"),
		EndDate:        start.AddDate(0, 0, weekLength).Format("2006-01-02"),
		Days:           days,
		CompletedDays:  completed,
		MonthlyPercent: monthlyPercent(completed, today),
	}, nil
}

// monthlyPercent reports completed slots against the days in the current
// calendar month; it is a derived display metric, nothing more.
func monthlyPercent(completed int, today time.Time) float64 {
	days := daysInMonth(today)
	if days == 0 {
		return 0
	}
	return float64(completed) / float64(days) * 100
}

func daysInMonth(t time.Time) int {
	firstOfNext := time.Date(t.Year(), t.Month(), 1, 0, 0, 0, 0, t.Location()).AddDate(0, 1, 0)
	return firstOfNext.AddDate(0, 0, -1).Day()
}
