package services

import (
	"errors"
	"fmt"
	"math"
	"strings"
	"time"

	"backend/models"
	"backend/utils"

	"gorm.io/gorm"
)

type ReportService struct{ db *gorm.DB }

func NewReportService(db *gorm.DB) *ReportService { return &ReportService{db: db} }

// DayTotal is one day's summed intake.
type DayTotal struct {
	Date    string  `json:"date"`
	TotalMl float64 `json:"total_ml"`
	Percent float64 `json:"percent"`
}

// HydrationReport covers a date range: per-day totals against the goal that
// is currently active, average intake, adherence and today's awards.
type HydrationReport struct {
	Range struct {
		From string `json:"from"`
		To   string `json:"to"`
	} `json:"range"`

	GoalMl       float64                 `json:"goal_ml"`
	Days         []DayTotal              `json:"days"`
	AvgIntakeMl  float64                 `json:"avg_intake_ml"`
	AdherencePct float64                 `json:"adherence_pct"`
	Milestones   []models.MilestoneAward `json:"milestones"`
	Insight      string                  `json:"insight"`
}

func (s *ReportService) Summary(userID uint, from, to time.Time) (*HydrationReport, error) {
	var user models.User
	if err := s.db.First(&user, userID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrUserNotFound
		}
		return nil, err
	}

	goal := user.DailyGoalMl
	if goal <= 0 {
		goal = DefaultDailyGoalMl
	}

	logs, err := ListIntakeLogs(userID, dayStartLocal(from), to)
	if err != nil {
		return nil, err
	}

	// bucket entries by local day
	byDay := map[string]float64{}
	for _, l := range logs {
		byDay[dayStartLocal(l.Timestamp).Format("2006-01-02")] += l.AmountMl
	}

	out := &HydrationReport{GoalMl: goal}
	out.Range.From = from.Format("2006-01-02")
	out.Range.To = to.Format("2006-01-02")

	var sum float64
	var counted int
	for d := dayStartLocal(from); !d.After(to); d = d.AddDate(0, 0, 1) {
		key := d.Format("2006-01-02")
		total := byDay[key]
		out.Days = append(out.Days, DayTotal{
			Date:    key,
			TotalMl: round2(total),
			Percent: round2(pctOf(total, goal)),
		})
		if total > 0 {
			sum += total
			counted++
		}
	}
	if counted > 0 {
		out.AvgIntakeMl = round2(sum / float64(counted))
	}
	out.AdherencePct = round2(pctOf(out.AvgIntakeMl, goal))

	awards, err := AchievedMilestones(userID, dayStartLocal(time.Now()))
	if err != nil {
		return nil, err
	}
	out.Milestones = awards
	out.Insight = diseaseInsight(user.SelectedDisease, out.AvgIntakeMl/1000, out.AdherencePct)

	return out, nil
}

// EmailWeeklyReport renders the last-7-day summary as plain text and mails
// it to the user's address.
func (s *ReportService) EmailWeeklyReport(userID uint) error {
	var user models.User
	if err := s.db.First(&user, userID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return ErrUserNotFound
		}
		return err
	}

	now := time.Now()
	report, err := s.Summary(userID, now.AddDate(0, 0, -6), now)
	if err != nil {
		return err
	}

	var b strings.Builder
	fmt.Fprintf(&b, "Hydration Report %s to %s\n\n", report.Range.From, report.Range.To)
	fmt.Fprintf(&b, "Daily goal: %.0f ml\n", report.GoalMl)
	fmt.Fprintf(&b, "Average intake: %.0f ml/day (%.0f%% adherence)\n\n", report.AvgIntakeMl, report.AdherencePct)
	for _, d := range report.Days {
		fmt.Fprintf(&b, "  %s  %6.0f ml  (%.0f%%)\n", d.Date, d.TotalMl, d.Percent)
	}
	if len(report.Milestones) > 0 {
		b.WriteString("\nMilestones achieved today:\n")
		for _, m := range report.Milestones {
			fmt.Fprintf(&b, "  - %s\n", m.Reward)
		}
	}
	if report.Insight != "" {
		b.WriteString("\n" + report.Insight + "\n")
	}

	return utils.SendHydrationReport(user.Email, b.String())
}

var insightTemplates = map[string]string{
	"Dengue Fever":             "Consistent hydration is critical for recovery.",
	"Chronic Kidney Disease":   "Monitor your restricted intake with your doctor.",
	"Heart Failure":            "Controlled hydration is essential.",
	"Gastritis":                "Steady intake supports gastric health.",
	"Hypertension":             "Regular hydration aids blood pressure management.",
	"Diabetes":                 "Hydration supports metabolic balance.",
	"Liver Disease":            "Adequate water intake promotes liver function.",
	"Asthma":                   "Hydration helps keep airways moist.",
	"Urinary Tract Infections": "High intake is crucial for flushing bacteria.",
	"Kidney Stones":            "High intake is essential for stone prevention.",
}

func diseaseInsight(disease string, avgL, adherencePct float64) string {
	tail, ok := insightTemplates[disease]
	if !ok {
		return "Follow your hydration plan to support health."
	}
	return fmt.Sprintf("Your average intake of %.2f L/day is %.0f%% of the goal. %s", avgL, adherencePct, tail)
}

func round2(v float64) float64 { return math.Round(v*100) / 100 }
