package core

import (
	"github.com/shopspring/decimal"

	"smartsalary/backend/models"
)

// ModeInput carries the signals the mode classifier looks at for one month.
type ModeInput struct {
	FirstSalary  bool
	RealSavings  decimal.Decimal // net income minus tracked expenses
	Score        int
	WantsUsed    decimal.Decimal
	WantsLimit   decimal.Decimal
	ImpulseCount int
}

// ClassifyMode evaluates the ordered decision list and returns the first match.
// The ordering is fixed: a first-salary month is Foundation even when the
// score would otherwise trip Damage Control.
func ClassifyMode(in ModeInput) models.Mode {
	switch {
	case in.FirstSalary:
		return models.FoundationMode
	case in.RealSavings.IsNegative() || in.Score < 40:
		return models.DamageControlMode
	case in.WantsUsed.GreaterThan(in.WantsLimit):
		return models.CorrectionMode
	case in.ImpulseCount > 3:
		return models.DisciplineMode
	default:
		return models.GrowthMode
	}
}
