package core

import (
	"testing"

	"github.com/shopspring/decimal"

	"smartsalary/backend/models"
)

func d(n int64) decimal.Decimal { return decimal.NewFromInt(n) }

func TestNetIncome_ClampsAtZero(t *testing.T) {
	if got := NetIncome(d(30000), d(5000)); !got.Equal(d(25000)) {
		t.Errorf("NetIncome(30000,5000) = %s, want 25000", got)
	}
	if got := NetIncome(d(4000), d(9000)); !got.Equal(decimal.Zero) {
		t.Errorf("NetIncome(4000,9000) = %s, want 0", got)
	}
}

func TestComputeBudgetPlan_Tiers(t *testing.T) {
	tests := []struct {
		name      string
		netIncome int64
		want      models.BudgetPlan
	}{
		{
			name:      "low tier",
			netIncome: 15000,
			want:      models.BudgetPlan{Needs: 9000, Wants: 2250, Savings: 2250, Emergency: 1500},
		},
		{
			name:      "mid tier lower bound inclusive",
			netIncome: 20000,
			want:      models.BudgetPlan{Needs: 10000, Wants: 4000, Savings: 4000, Emergency: 2000},
		},
		{
			// income=45000 emi=5000 scenario from the product sheet
			name:      "mid tier",
			netIncome: 40000,
			want:      models.BudgetPlan{Needs: 20000, Wants: 8000, Savings: 8000, Emergency: 4000},
		},
		{
			name:      "mid tier upper bound inclusive",
			netIncome: 50000,
			want:      models.BudgetPlan{Needs: 25000, Wants: 10000, Savings: 10000, Emergency: 5000},
		},
		{
			name:      "high tier",
			netIncome: 80000,
			want:      models.BudgetPlan{Needs: 32000, Wants: 16000, Savings: 24000, Emergency: 8000},
		},
		{
			name:      "zero income",
			netIncome: 0,
			want:      models.BudgetPlan{},
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := ComputeBudgetPlan(d(tt.netIncome), models.Accumulated{})
			if got.Needs != tt.want.Needs || got.Wants != tt.want.Wants ||
				got.Savings != tt.want.Savings || got.Emergency != tt.want.Emergency {
				t.Errorf("ComputeBudgetPlan(%d) = %+v, want %+v", tt.netIncome, got, tt.want)
			}
		})
	}
}

func TestComputeBudgetPlan_BucketsSumToNetIncome(t *testing.T) {
	// Buckets are individually rounded, so allow a few currency units of slack.
	for _, net := range []int64{1, 999, 15000, 19999, 20000, 33333, 50000, 50001, 123457} {
		plan := ComputeBudgetPlan(d(net), models.Accumulated{})
		sum := plan.Needs + plan.Wants + plan.Savings + plan.Emergency
		diff := sum - net
		if diff < -3 || diff > 3 {
			t.Errorf("netIncome %d: buckets sum to %d (diff %d)", net, sum, diff)
		}
	}
}

func TestComputeBudgetPlan_AccumulatesPools(t *testing.T) {
	prev := models.Accumulated{Savings: 12000, Emergency: 7000}
	plan := ComputeBudgetPlan(d(40000), prev)
	if plan.AccumulatedSavings != 12000+8000 {
		t.Errorf("AccumulatedSavings = %d, want %d", plan.AccumulatedSavings, 12000+8000)
	}
	if plan.AccumulatedEmergency != 7000+4000 {
		t.Errorf("AccumulatedEmergency = %d, want %d", plan.AccumulatedEmergency, 7000+4000)
	}

	// No previous month: pools start at this month's buckets.
	first := ComputeBudgetPlan(d(40000), models.Accumulated{})
	if first.AccumulatedSavings != 8000 || first.AccumulatedEmergency != 4000 {
		t.Errorf("first month pools = %d/%d, want 8000/4000",
			first.AccumulatedSavings, first.AccumulatedEmergency)
	}
}
