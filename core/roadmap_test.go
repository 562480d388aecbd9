package core

import (
	"testing"

	"github.com/shopspring/decimal"

	"smartsalary/backend/models"
)

func TestParseTaskLimit(t *testing.T) {
	tests := []struct {
		task         string
		wantLimit    int64
		wantCategory string
		wantNil      bool
	}{
		{task: "Spend ≤ ₹3,000 in Food", wantLimit: 3000, wantCategory: "Food"},
		{task: "Spend <= 500 in Entertainment", wantLimit: 500, wantCategory: "Entertainment"},
		{task: "spend≤₹12,500 in travel", wantLimit: 12500, wantCategory: "travel"},
		{task: "This week: Spend ≤ ₹1,000 in Shopping only", wantLimit: 1000, wantCategory: "Shopping"},
		{task: "Save more money", wantNil: true},
		{task: "Spend exactly ₹500 in Food", wantNil: true},
		{task: "", wantNil: true},
	}
	for _, tt := range tests {
		t.Run(tt.task, func(t *testing.T) {
			got := ParseTaskLimit(tt.task)
			if tt.wantNil {
				if got != nil {
					t.Fatalf("ParseTaskLimit(%q) = %+v, want nil", tt.task, got)
				}
				return
			}
			if got == nil {
				t.Fatalf("ParseTaskLimit(%q) = nil, want limit %d", tt.task, tt.wantLimit)
			}
			if !got.Limit.Equal(decimal.NewFromInt(tt.wantLimit)) || got.Category != tt.wantCategory {
				t.Errorf("ParseTaskLimit(%q) = {%s %s}, want {%d %s}",
					tt.task, got.Limit, got.Category, tt.wantLimit, tt.wantCategory)
			}
		})
	}
}

func TestTaskStatus(t *testing.T) {
	action := models.Action{DeadlineDay: 10}

	tests := []struct {
		name     string
		action   models.Action
		today    int
		progress *TaskProgress
		want     TaskState
	}{
		{
			name:   "completed wins over everything",
			action: models.Action{DeadlineDay: 10, Completed: true},
			today:  15,
			want:   TaskCompleted,
		},
		{
			name:     "overdue is failed regardless of progress",
			action:   action,
			today:    15,
			progress: &TaskProgress{Limit: d(1000), Used: d(0)},
			want:     TaskFailed,
		},
		{
			name:     "over limit is failed",
			action:   action,
			today:    5,
			progress: &TaskProgress{Limit: d(1000), Used: d(1001)},
			want:     TaskFailed,
		},
		{
			name:     "under limit is on track",
			action:   action,
			today:    5,
			progress: &TaskProgress{Limit: d(1000), Used: d(999)},
			want:     TaskOnTrack,
		},
		{
			name:     "at limit is still on track",
			action:   action,
			today:    5,
			progress: &TaskProgress{Limit: d(1000), Used: d(1000)},
			want:     TaskOnTrack,
		},
		{
			name:   "no parseable limit is pending",
			action: action,
			today:  5,
			want:   TaskPending,
		},
		{
			name:     "zero limit with no spend stays on track",
			action:   action,
			today:    5,
			progress: &TaskProgress{Limit: d(0), Used: d(0)},
			want:     TaskOnTrack,
		},
		{
			name:     "zero limit fails on first spend",
			action:   action,
			today:    5,
			progress: &TaskProgress{Limit: d(0), Used: d(1)},
			want:     TaskFailed,
		},
		{
			name:   "deadline day itself is not overdue",
			action: action,
			today:  10,
			want:   TaskPending,
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := TaskStatus(tt.action, tt.today, tt.progress); got != tt.want {
				t.Errorf("TaskStatus = %q, want %q", got, tt.want)
			}
		})
	}
}

func sampleRoadmap() *models.Roadmap {
	return &models.Roadmap{
		Month: "2026-08",
		WeeklyRoadmap: []models.Week{
			{Week: 1, Focus: "stabilize", Actions: []models.Action{
				{ID: "w1a1", Task: "Spend ≤ ₹2,000 in Food", DeadlineDay: 7, ScoreIfCompleted: 5, ScoreIfIgnored: -5},
				{ID: "w1a2", Task: "Review subscriptions", DeadlineDay: 7, ScoreIfCompleted: 3, ScoreIfIgnored: -2, Completed: true},
			}},
			{Week: 2, Focus: "trim wants", Actions: []models.Action{
				{ID: "w2a1", Task: "Spend ≤ ₹1,000 in Shopping", DeadlineDay: 14, ScoreIfCompleted: 5, ScoreIfIgnored: -5},
			}},
		},
	}
}

func TestAggregateProgress(t *testing.T) {
	p := AggregateProgress(sampleRoadmap())
	if p.TotalTasks != 3 || p.CompletedTasks != 1 {
		t.Errorf("tasks = %d/%d, want 1/3", p.CompletedTasks, p.TotalTasks)
	}
	if p.Percent < 33.3 || p.Percent > 33.4 {
		t.Errorf("percent = %f, want ~33.33", p.Percent)
	}
	if p.PotentialReward != 13 {
		t.Errorf("reward = %d, want 13", p.PotentialReward)
	}
	if p.PotentialPenalty != -12 {
		t.Errorf("penalty = %d, want -12", p.PotentialPenalty)
	}
}

func TestAggregateProgress_EmptyRoadmap(t *testing.T) {
	p := AggregateProgress(&models.Roadmap{})
	if p.Percent != 0 || p.TotalTasks != 0 {
		t.Errorf("empty roadmap progress = %+v, want zeroes", p)
	}
}

func TestToggleTask_RoundTrip(t *testing.T) {
	r := sampleRoadmap()
	orig := r.WeeklyRoadmap[0].Actions[0].Completed

	if err := ToggleTask(r, 0, 0); err != nil {
		t.Fatalf("first toggle: %v", err)
	}
	if r.WeeklyRoadmap[0].Actions[0].Completed == orig {
		t.Error("toggle did not flip the flag")
	}
	if err := ToggleTask(r, 0, 0); err != nil {
		t.Fatalf("second toggle: %v", err)
	}
	if r.WeeklyRoadmap[0].Actions[0].Completed != orig {
		t.Error("double toggle did not restore the original value")
	}

	// Neighbors untouched.
	if !r.WeeklyRoadmap[0].Actions[1].Completed {
		t.Error("sibling action was modified")
	}
	if r.WeeklyRoadmap[1].Actions[0].Completed {
		t.Error("other week's action was modified")
	}
}

func TestToggleTask_OutOfRange(t *testing.T) {
	r := sampleRoadmap()
	if err := ToggleTask(r, 5, 0); err == nil {
		t.Error("expected error for week out of range")
	}
	if err := ToggleTask(r, 0, 9); err == nil {
		t.Error("expected error for action out of range")
	}
	if err := ToggleTask(nil, 0, 0); err == nil {
		t.Error("expected error for nil roadmap")
	}
}

func TestCategorySpend(t *testing.T) {
	txs := []models.Transaction{
		{Type: models.TxExpense, Category: "Food", Amount: 1200},
		{Type: models.TxExpense, Category: "food", Amount: 300},
		{Type: models.TxExpense, Category: "Shopping", Amount: 999},
		{Type: models.TxIncome, Category: "Food", Amount: 5000}, // income never counts
	}
	if got := CategorySpend(txs, "Food"); !got.Equal(d(1500)) {
		t.Errorf("CategorySpend(Food) = %s, want 1500", got)
	}
	if got := CategorySpend(txs, "Rent"); !got.Equal(decimal.Zero) {
		t.Errorf("CategorySpend(Rent) = %s, want 0", got)
	}
}
