package controllers

import (
	"context"
	"errors"
	"io"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/shopspring/decimal"
	"go.uber.org/zap"

	"smartsalary/backend/core"
	"smartsalary/backend/logger"
	"smartsalary/backend/models"
	"smartsalary/backend/store"
)

type SubmitMonthRequest struct {
	Income      *float64 `json:"income" binding:"required"`
	EMI         float64  `json:"emi" binding:"gte=0"`
	Expense     *float64 `json:"expense"`
	Savings     *float64 `json:"savings"`
	FirstSalary *bool    `json:"first_salary"`
}

// SubmitMonth handles the monthly form: computes the budget plan and health
// score and merges them into users/{uid}/months/{YYYY-MM}.
func SubmitMonth(st *store.Client) gin.HandlerFunc {
	return func(c *gin.Context) {
		var req SubmitMonthRequest
		if err := c.ShouldBindJSON(&req); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "invalid body"})
			return
		}
		if *req.Income < 0 || (req.Expense != nil && *req.Expense < 0) || (req.Savings != nil && *req.Savings < 0) {
			c.JSON(http.StatusBadRequest, gin.H{"error": "amounts must not be negative"})
			return
		}
		uid := c.GetInt64("user_id")
		now := time.Now()
		key := core.MonthKey(now)

		ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
		defer cancel()

		// Previous month's pools roll forward; a missing previous month is
		// the defined empty state, not an error.
		acc := models.Accumulated{}
		prev, err := st.GetMonth(ctx, uid, core.PrevMonthKey(now))
		switch {
		case err == nil:
			acc.Savings = prev.BudgetPlan.AccumulatedSavings
			acc.Emergency = prev.BudgetPlan.AccumulatedEmergency
		case !errors.Is(err, store.ErrNotFound):
			c.JSON(http.StatusInternalServerError, gin.H{"error": "store error"})
			return
		}

		cur, err := st.GetMonth(ctx, uid, key)
		if err != nil && !errors.Is(err, store.ErrNotFound) {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "store error"})
			return
		}

		firstSalary := prev == nil && cur == nil
		if cur != nil {
			firstSalary = cur.FirstSalary
		}
		if req.FirstSalary != nil {
			firstSalary = *req.FirstSalary
		}

		income := decimal.NewFromFloat(*req.Income)
		emi := decimal.NewFromFloat(req.EMI)
		net := core.NetIncome(income, emi)
		plan := core.ComputeBudgetPlan(net, acc)

		// Score is computed from the form's expense/savings when given;
		// otherwise it starts at 100 and live expense tracking degrades it.
		score := 100
		if req.Expense != nil && *req.Income > 0 {
			savings := decimal.NewFromInt(plan.Savings)
			if req.Savings != nil {
				savings = decimal.NewFromFloat(*req.Savings)
			}
			score = core.ComputeScore(income, decimal.NewFromFloat(*req.Expense), emi, savings)
		}

		fields := map[string]any{
			"month":       key,
			"income":      *req.Income,
			"emi":         req.EMI,
			"netIncome":   net.InexactFloat64(),
			"budgetPlan":  plan,
			"score":       score,
			"firstSalary": firstSalary,
		}
		if err := st.SetMonth(ctx, uid, key, fields); err != nil {
			logger.Get().Error("month write failed", zap.Int64("uid", uid), zap.Error(err))
			c.JSON(http.StatusInternalServerError, gin.H{"error": "store error"})
			return
		}

		c.JSON(http.StatusOK, gin.H{
			"month":       key,
			"netIncome":   net.InexactFloat64(),
			"budgetPlan":  plan,
			"score":       score,
			"band":        core.ScoreBand(score),
			"firstSalary": firstSalary,
		})
	}
}

func GetMonth(st *store.Client) gin.HandlerFunc {
	return func(c *gin.Context) {
		uid := c.GetInt64("user_id")
		key := c.Param("month")
		if key == "current" || key == "" {
			key = core.MonthKey(time.Now())
		}
		ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		rec, err := st.GetMonth(ctx, uid, key)
		if errors.Is(err, store.ErrNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "no record for " + key})
			return
		}
		if err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "store error"})
			return
		}
		c.JSON(http.StatusOK, gin.H{
			"record": rec,
			"band":   core.ScoreBand(rec.Score),
		})
	}
}

// StreamMonth pushes live month-document snapshots over SSE so an open
// dashboard sees score and expense changes without polling.
func StreamMonth(st *store.Client) gin.HandlerFunc {
	return func(c *gin.Context) {
		uid := c.GetInt64("user_id")
		key := c.Param("month")
		if key == "current" || key == "" {
			key = core.MonthKey(time.Now())
		}

		iter := st.WatchMonth(c.Request.Context(), uid, key)
		defer iter.Stop()

		c.Stream(func(w io.Writer) bool {
			snap, err := iter.Next()
			if err != nil {
				return false
			}
			if !snap.Exists() {
				c.SSEvent("month", gin.H{"month": key, "exists": false})
				return true
			}
			var rec models.MonthRecord
			if err := snap.DataTo(&rec); err != nil {
				logger.Get().Warn("month snapshot decode failed", zap.Error(err))
				return true
			}
			c.SSEvent("month", gin.H{"record": rec, "band": core.ScoreBand(rec.Score)})
			return true
		})
	}
}
