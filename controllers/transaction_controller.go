package controllers

import (
	"context"
	"errors"
	"net/http"
	"strings"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/shopspring/decimal"
	"go.uber.org/zap"

	"smartsalary/backend/core"
	"smartsalary/backend/logger"
	"smartsalary/backend/models"
	"smartsalary/backend/store"
)

type CreateTransactionRequest struct {
	Description string  `json:"description" binding:"required"`
	Amount      float64 `json:"amount" binding:"required,gt=0"`
	Type        string  `json:"type" binding:"required,oneof=income expense"`
	Category    string  `json:"category"`
	Impulse     bool    `json:"impulse"`
}

// CreateTransaction appends an immutable financial record. Expenses also bump
// the month's running total and recompute the live score; impulse-flagged
// expenses are appended to the month's impulse history.
func CreateTransaction(st *store.Client) gin.HandlerFunc {
	return func(c *gin.Context) {
		var req CreateTransactionRequest
		if err := c.ShouldBindJSON(&req); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "invalid body"})
			return
		}
		if strings.TrimSpace(req.Category) == "" {
			req.Category = "Other"
		}
		uid := c.GetInt64("user_id")
		month := core.MonthKey(time.Now())

		ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
		defer cancel()

		tx := models.Transaction{
			Description: req.Description,
			Amount:      req.Amount,
			Type:        req.Type,
			Category:    req.Category,
			Month:       month,
			Impulse:     req.Impulse,
		}
		id, err := st.AddTransaction(ctx, uid, tx)
		if err != nil {
			logger.Get().Error("transaction write failed", zap.Int64("uid", uid), zap.Error(err))
			c.JSON(http.StatusInternalServerError, gin.H{"error": "store error"})
			return
		}
		tx.ID = id

		if req.Type == models.TxExpense {
			score := liveScore(ctx, st, uid, month, req.Amount)
			impulseRef := ""
			if req.Impulse {
				impulseRef = id
			}
			if err := st.AddMonthExpense(ctx, uid, month, req.Amount, score, impulseRef); err != nil {
				logger.Get().Error("month expense update failed", zap.Int64("uid", uid), zap.Error(err))
				c.JSON(http.StatusInternalServerError, gin.H{"error": "store error"})
				return
			}
		}

		c.JSON(http.StatusOK, tx)
	}
}

// liveScore recomputes the health score after an expense lands. Without a
// submitted month record there is no income to score against, so the score
// holds at its initial 100.
func liveScore(ctx context.Context, st *store.Client, uid int64, month string, amount float64) int {
	rec, err := st.GetMonth(ctx, uid, month)
	if err != nil || rec.Income <= 0 {
		if err != nil && !errors.Is(err, store.ErrNotFound) {
			logger.Get().Warn("month read for live score failed", zap.Error(err))
		}
		return 100
	}
	return core.ComputeScore(
		decimal.NewFromFloat(rec.Income),
		decimal.NewFromFloat(rec.ExpenseTotal+amount),
		decimal.NewFromFloat(rec.EMI),
		decimal.NewFromInt(rec.BudgetPlan.Savings),
	)
}

func ListTransactions(st *store.Client) gin.HandlerFunc {
	return func(c *gin.Context) {
		uid := c.GetInt64("user_id")
		month := c.Query("month")
		ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
		defer cancel()
		txs, err := st.ListTransactions(ctx, uid, month)
		if err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "store error"})
			return
		}
		c.JSON(http.StatusOK, txs)
	}
}
