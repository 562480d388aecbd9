package controllers

import (
	"testing"
	"time"

	"smartsalary/backend/models"
)

func TestEffectiveDay(t *testing.T) {
	now := time.Date(2026, time.August, 15, 12, 0, 0, 0, time.UTC)

	if got := effectiveDay("2026-08", now); got != 15 {
		t.Errorf("current month day = %d, want 15", got)
	}
	// A finished month is past every deadline.
	if got := effectiveDay("2026-07", now); got != 32 {
		t.Errorf("past month day = %d, want 32", got)
	}
	// A future month has not started.
	if got := effectiveDay("2026-09", now); got != 0 {
		t.Errorf("future month day = %d, want 0", got)
	}
}

func TestClassifyMonth(t *testing.T) {
	rec := &models.MonthRecord{
		NetIncome:    40000,
		ExpenseTotal: 12000,
		Score:        85,
		BudgetPlan:   models.BudgetPlan{Wants: 8000},
	}

	if got := classifyMonth(rec, nil); got != models.GrowthMode {
		t.Errorf("mode = %q, want Growth", got)
	}

	// Wants spend across the discretionary categories above the wants bucket
	// trips Correction.
	txs := []models.Transaction{
		{Type: models.TxExpense, Category: "Shopping", Amount: 5000},
		{Type: models.TxExpense, Category: "Entertainment", Amount: 2500},
		{Type: models.TxExpense, Category: "Travel", Amount: 1000},
	}
	if got := classifyMonth(rec, txs); got != models.CorrectionMode {
		t.Errorf("mode = %q, want Correction", got)
	}

	overspent := &models.MonthRecord{NetIncome: 40000, ExpenseTotal: 50000, Score: 85}
	if got := classifyMonth(overspent, nil); got != models.DamageControlMode {
		t.Errorf("mode = %q, want Damage Control", got)
	}

	first := &models.MonthRecord{FirstSalary: true, NetIncome: 40000, Score: 10}
	if got := classifyMonth(first, nil); got != models.FoundationMode {
		t.Errorf("mode = %q, want Foundation", got)
	}
}
