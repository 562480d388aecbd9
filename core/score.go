package core

import "github.com/shopspring/decimal"

// Score bands for display. Banding is presentation only and never feeds back
// into scoring.
const (
	BandSafe    = "Safe"
	BandAverage = "Average"
	BandRisky   = "Risky"
)

var hundred = decimal.NewFromInt(100)

// ComputeScore maps the month's ratios to a 0-100 financial health score.
// Starts at 100 and applies three penalties:
//   - expense above 50% of income: minus the excess percentage points
//   - savings below 25% of income: minus the shortfall percentage points
//   - EMI above 30% of income: minus a flat 10
//
// Income must be positive on this path; callers with zero income initialize
// the score to 100 at plan creation and let live expense tracking degrade it.
func ComputeScore(income, expense, emi, savings decimal.Decimal) int {
	if !income.IsPositive() {
		return 100
	}

	score := hundred
	expensePct := expense.Div(income).Mul(hundred)
	savingsPct := savings.Div(income).Mul(hundred)
	emiPct := emi.Div(income).Mul(hundred)

	if fifty := decimal.NewFromInt(50); expensePct.GreaterThan(fifty) {
		score = score.Sub(expensePct.Sub(fifty))
	}
	if twentyFive := decimal.NewFromInt(25); savingsPct.LessThan(twentyFive) {
		score = score.Sub(twentyFive.Sub(savingsPct))
	}
	if emiPct.GreaterThan(decimal.NewFromInt(30)) {
		score = score.Sub(decimal.NewFromInt(10))
	}

	if score.IsNegative() {
		return 0
	}
	if score.GreaterThan(hundred) {
		return 100
	}
	return int(score.Round(0).IntPart())
}

// ScoreBand labels a score for display: >70 Safe, 41-70 Average, <=40 Risky.
func ScoreBand(score int) string {
	switch {
	case score > 70:
		return BandSafe
	case score > 40:
		return BandAverage
	default:
		return BandRisky
	}
}
