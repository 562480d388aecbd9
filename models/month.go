package models

import "time"

// BudgetPlan is the four-bucket allocation for one month plus the running
// pools carried forward from earlier months.
type BudgetPlan struct {
	Needs                int64 `json:"needs" firestore:"needs"`
	Wants                int64 `json:"wants" firestore:"wants"`
	Savings              int64 `json:"savings" firestore:"savings"`
	Emergency            int64 `json:"emergency" firestore:"emergency"`
	AccumulatedSavings   int64 `json:"accumulatedSavings" firestore:"accumulatedSavings"`
	AccumulatedEmergency int64 `json:"accumulatedEmergency" firestore:"accumulatedEmergency"`
}

// Accumulated holds the running savings/emergency pools of a previous month.
type Accumulated struct {
	Savings   int64 `json:"savings"`
	Emergency int64 `json:"emergency"`
}

// MonthRecord is the per-user, per-calendar-month document keyed by "YYYY-MM".
type MonthRecord struct {
	Month          string     `json:"month" firestore:"month"`
	Income         float64    `json:"income" firestore:"income"`
	EMI            float64    `json:"emi" firestore:"emi"`
	NetIncome      float64    `json:"netIncome" firestore:"netIncome"`
	BudgetPlan     BudgetPlan `json:"budgetPlan" firestore:"budgetPlan"`
	ExpenseTotal   float64    `json:"expenseTotal" firestore:"expenseTotal"`
	Score          int        `json:"score" firestore:"score"`
	FirstSalary    bool       `json:"firstSalary" firestore:"firstSalary"`
	ImpulseHistory []string   `json:"impulseHistory" firestore:"impulseHistory"`
	UpdatedAt      time.Time  `json:"updatedAt" firestore:"updatedAt,serverTimestamp"`
}
