package pregnancy

import (
	"math"
	"sort"
	"time"
)

// GestationDays is the fixed full-term assumption used everywhere: 40 weeks.
const GestationDays = 280

const (
	MinWeek = 1
	MaxWeek = 40
)

type Progress struct {
	Week         int    `json:"week"`
	Trimester    int    `json:"trimester"`
	DaysUntilDue int    `json:"days_until_due"`
	DaysPassed   int    `json:"days_passed"`
	WeekTip      string `json:"week_tip"`
}

// CalculateProgress maps a due date and a reference time to a progress
// snapshot. Both inputs are truncated to their calendar day so the result is
// stable for the whole day regardless of when it is computed. It never
// returns an error: a due date in the past clamps to week 40 with zero days
// remaining, and a due date further than 280 days out clamps to week 1.
func CalculateProgress(dueDate, now time.Time) Progress {
	due := midnight(dueDate)
	today := midnight(now)

	// Rounding instead of flooring keeps whole-day differences exact even
	// when a DST change makes a calendar day 23 or 25 hours long.
	daysUntilDue := int(math.Round(due.Sub(today).Hours() / 24))
	if daysUntilDue < 0 {
		daysUntilDue = 0
	}
	// A due date further out than a full term clamps to day zero, keeping
	// daysPassed+daysUntilDue == GestationDays for any pair of inputs.
	if daysUntilDue > GestationDays {
		daysUntilDue = GestationDays
	}
	daysPassed := GestationDays - daysUntilDue

	week := daysPassed/7 + 1
	if week < MinWeek {
		week = MinWeek
	}
	if week > MaxWeek {
		week = MaxWeek
	}

	return Progress{
		Week:         week,
		Trimester:    Trimester(week),
		DaysUntilDue: daysUntilDue,
		DaysPassed:   daysPassed,
		WeekTip:      WeekTip(week),
	}
}

// Trimester follows the standard medical split: weeks 1-13, 14-27, 28-40.
func Trimester(week int) int {
	switch {
	case week <= 13:
		return 1
	case week <= 27:
		return 2
	default:
		return 3
	}
}

func TrimesterName(trimester int) string {
	switch trimester {
	case 1:
		return "First Trimester"
	case 2:
		return "Second Trimester"
	case 3:
		return "Third Trimester"
	default:
		return "Pregnancy"
	}
}

var weekTips = map[int]string{
	1:  "Start a prenatal vitamin with at least 400 mcg of folic acid.",
	4:  "Your baby is the size of a poppy seed. Keep caffeine under 200 mg a day.",
	8:  "If nausea hits, small frequent meals and ginger can help.",
	12: "Nuchal translucency screening usually happens around now.",
	13: "Welcome to the second trimester next week! Energy often improves.",
	16: "You may feel the first flutters of movement in the coming weeks.",
	20: "Halfway there! The anatomy scan typically happens this week.",
	24: "Glucose screening for gestational diabetes is usually done at 24-28 weeks.",
	27: "Last week of the second trimester. Start counting kicks daily.",
	28: "Third trimester! Iron needs rise; pair iron-rich foods with vitamin C.",
	32: "Baby is practicing breathing movements. Keep up calcium intake.",
	36: "Pack your hospital bag and review your birth plan.",
	37: "Baby is considered early term. Eat smaller meals as space gets tight.",
	40: "Due date week! Stay hydrated and rest when you can.",
}

// WeekTip returns the tip for the tabulated milestone week nearest to week.
// When two milestones are equidistant the smaller week wins, which keeps the
// lookup deterministic.
func WeekTip(week int) string {
	if tip, ok := weekTips[week]; ok {
		return tip
	}
	keys := make([]int, 0, len(weekTips))
	for k := range weekTips {
		keys = append(keys, k)
	}
	if len(keys) == 0 {
		return "Every week counts. Keep nourishing yourself and your baby."
	}
	sort.Ints(keys)
	best := keys[0]
	for _, k := range keys[1:] {
		if abs(k-week) < abs(best-week) {
			best = k
		}
	}
	return weekTips[best]
}

func midnight(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, t.Location())
}

func abs(v int) int {
	if v < 0 {
		return -v
	}
	return v
}
