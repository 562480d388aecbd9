package core

import (
	"github.com/shopspring/decimal"

	"smartsalary/backend/models"
)

// Allocation shares for one net-income tier (needs, wants, savings, emergency).
type allocation struct {
	needs, wants, savings, emergency decimal.Decimal
}

var (
	tierLow  = allocation{pct(60), pct(15), pct(15), pct(10)} // netIncome < 20k
	tierMid  = allocation{pct(50), pct(20), pct(20), pct(10)} // 20k..50k inclusive
	tierHigh = allocation{pct(40), pct(20), pct(30), pct(10)} // > 50k

	lowCeiling = decimal.NewFromInt(20000)
	midCeiling = decimal.NewFromInt(50000)
)

func pct(n int64) decimal.Decimal {
	return decimal.NewFromInt(n).Div(decimal.NewFromInt(100))
}

// NetIncome is income minus EMI, clamped at zero.
func NetIncome(income, emi decimal.Decimal) decimal.Decimal {
	net := income.Sub(emi)
	if net.IsNegative() {
		return decimal.Zero
	}
	return net
}

// ComputeBudgetPlan allocates netIncome into the four buckets for its tier and
// rolls the savings/emergency pools forward from the previous month. Pure;
// the caller persists the result.
func ComputeBudgetPlan(netIncome decimal.Decimal, prev models.Accumulated) models.BudgetPlan {
	alloc := tierHigh
	switch {
	case netIncome.LessThan(lowCeiling):
		alloc = tierLow
	case netIncome.LessThanOrEqual(midCeiling):
		alloc = tierMid
	}

	plan := models.BudgetPlan{
		Needs:     bucket(netIncome, alloc.needs),
		Wants:     bucket(netIncome, alloc.wants),
		Savings:   bucket(netIncome, alloc.savings),
		Emergency: bucket(netIncome, alloc.emergency),
	}
	plan.AccumulatedSavings = prev.Savings + plan.Savings
	plan.AccumulatedEmergency = prev.Emergency + plan.Emergency
	return plan
}

func bucket(netIncome, share decimal.Decimal) int64 {
	return netIncome.Mul(share).Round(0).IntPart()
}
