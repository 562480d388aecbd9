package models

import "time"

const (
	TxIncome  = "income"
	TxExpense = "expense"
)

// Categories accepted for transactions. "Other" is the catch-all; the simpler
// dashboard path also allows free-form labels, which are stored as given.
var Categories = []string{"Food", "Rent", "Bills", "Travel", "Shopping", "Entertainment", "Other"}

// WantsCategories are the discretionary labels counted against the wants bucket.
var WantsCategories = []string{"Travel", "Shopping", "Entertainment"}

// Transaction is a single income/expense event. Immutable once created.
type Transaction struct {
	ID          string    `json:"id" firestore:"-"`
	Description string    `json:"description" firestore:"description"`
	Amount      float64   `json:"amount" firestore:"amount"`
	Type        string    `json:"type" firestore:"type"`
	Category    string    `json:"category" firestore:"category"`
	Month       string    `json:"month" firestore:"month"`
	Impulse     bool      `json:"impulse" firestore:"impulse"`
	CreatedAt   time.Time `json:"createdAt" firestore:"createdAt,serverTimestamp"`
}
