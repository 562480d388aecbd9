package core

import (
	"fmt"
	"regexp"
	"strings"

	"github.com/shopspring/decimal"

	"smartsalary/backend/models"
)

// Grammar: Spend ≤ ₹3,000 in Food. Comparator is ≤ or <=, currency glyph
// optional, amount may contain commas, category is a single word.
var spendLimitRe = regexp.MustCompile(`(?i)spend\s*(?:≤|<=)\s*₹?([0-9][0-9,]*)\s*in\s*(\w+)`)

// TaskState is the derived status of one roadmap action.
type TaskState string

const (
	TaskCompleted TaskState = "Completed"
	TaskFailed    TaskState = "Failed"
	TaskOnTrack   TaskState = "On-Track"
	TaskPending   TaskState = "Pending"
)

// TaskLimit is a spend ceiling extracted from a task's text.
type TaskLimit struct {
	Limit    decimal.Decimal
	Category string
}

// TaskProgress pairs a parsed limit with the amount already spent against it.
type TaskProgress struct {
	Limit decimal.Decimal
	Used  decimal.Decimal
}

// Progress is the roadmap-level rollup.
type Progress struct {
	CompletedTasks   int     `json:"completedTasks"`
	TotalTasks       int     `json:"totalTasks"`
	Percent          float64 `json:"percent"`
	PotentialReward  int     `json:"potentialReward"`
	PotentialPenalty int     `json:"potentialPenalty"`
}

// ParseTaskLimit extracts the spend ceiling from a task written in the
// "Spend ≤ ₹X in CATEGORY" grammar. The comparator may be the ≤ glyph or a
// literal <=, the rupee sign is optional, and the amount may carry thousands
// separators. Returns nil for any task that does not match; such tasks carry
// no derived progress.
func ParseTaskLimit(task string) *TaskLimit {
	m := spendLimitRe.FindStringSubmatch(task)
	if m == nil {
		return nil
	}
	amount, err := decimal.NewFromString(strings.ReplaceAll(m[1], ",", ""))
	if err != nil {
		return nil
	}
	return &TaskLimit{Limit: amount, Category: m[2]}
}

// TaskStatus derives the state of one action for the given day of month.
// progress is nil when the task text carries no parseable spend limit.
func TaskStatus(a models.Action, today int, progress *TaskProgress) TaskState {
	if a.Completed {
		return TaskCompleted
	}
	if today > a.DeadlineDay {
		return TaskFailed
	}
	if progress == nil {
		return TaskPending
	}
	// Compare used against limit directly; a ratio would divide by zero on
	// zero-limit tasks.
	if progress.Used.GreaterThan(progress.Limit) {
		return TaskFailed
	}
	return TaskOnTrack
}

// AggregateProgress rolls up completion and the score deltas at stake across
// every action in the roadmap. An empty roadmap reports zero percent.
func AggregateProgress(r *models.Roadmap) Progress {
	var p Progress
	if r == nil {
		return p
	}
	for _, w := range r.WeeklyRoadmap {
		for _, a := range w.Actions {
			p.TotalTasks++
			if a.Completed {
				p.CompletedTasks++
			}
			p.PotentialReward += a.ScoreIfCompleted
			p.PotentialPenalty += a.ScoreIfIgnored
		}
	}
	if p.TotalTasks > 0 {
		p.Percent = float64(p.CompletedTasks) / float64(p.TotalTasks) * 100
	}
	return p
}

// ToggleTask flips the completed flag of exactly one action in place. Applying
// it twice restores the original value.
func ToggleTask(r *models.Roadmap, week, action int) error {
	if r == nil || week < 0 || week >= len(r.WeeklyRoadmap) {
		return fmt.Errorf("week index %d out of range", week)
	}
	acts := r.WeeklyRoadmap[week].Actions
	if action < 0 || action >= len(acts) {
		return fmt.Errorf("action index %d out of range", action)
	}
	acts[action].Completed = !acts[action].Completed
	return nil
}

// CategorySpend sums expense amounts for one category, case-insensitively.
// The caller passes a ledger already filtered to the month in question.
func CategorySpend(txs []models.Transaction, category string) decimal.Decimal {
	total := decimal.Zero
	for _, t := range txs {
		if t.Type != models.TxExpense {
			continue
		}
		if strings.EqualFold(t.Category, category) {
			total = total.Add(decimal.NewFromFloat(t.Amount))
		}
	}
	return total
}
