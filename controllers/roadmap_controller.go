package controllers

import (
	"context"
	"errors"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/generative-ai-go/genai"
	"github.com/shopspring/decimal"
	"go.uber.org/zap"

	"smartsalary/backend/config"
	"smartsalary/backend/core"
	"smartsalary/backend/logger"
	"smartsalary/backend/models"
	"smartsalary/backend/store"
	"smartsalary/backend/utils"
)

type GenerateRoadmapRequest struct {
	Difficulty models.Difficulty `json:"difficulty" binding:"required,oneof=Easy Normal Hard"`
}

// GenerateRoadmap classifies the month locally, asks Gemini for a 4-week plan
// under that classification, validates the JSON and persists it wholesale.
// Nothing is written when the call or the parse fails; the client just
// retries.
func GenerateRoadmap(cfg config.Config, st *store.Client) gin.HandlerFunc {
	return func(c *gin.Context) {
		var req GenerateRoadmapRequest
		if err := c.ShouldBindJSON(&req); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "difficulty must be Easy, Normal or Hard"})
			return
		}
		if cfg.GeminiAPIKey == "" {
			c.JSON(http.StatusServiceUnavailable, gin.H{"error": "ai service not configured"})
			return
		}
		uid := c.GetInt64("user_id")
		key := core.MonthKey(time.Now())

		ctx, cancel := context.WithTimeout(context.Background(), 60*time.Second)
		defer cancel()

		rec, err := st.GetMonth(ctx, uid, key)
		if errors.Is(err, store.ErrNotFound) {
			c.JSON(http.StatusBadRequest, gin.H{"error": "submit the monthly form before generating a roadmap"})
			return
		}
		if err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "store error"})
			return
		}
		txs, err := st.ListTransactions(ctx, uid, key)
		if err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "store error"})
			return
		}

		mode := classifyMonth(rec, txs)
		prompt := core.BuildRoadmapPrompt(core.PromptInput{
			Month:      key,
			Mode:       mode,
			Difficulty: req.Difficulty,
			NetIncome:  rec.NetIncome,
			Plan:       rec.BudgetPlan,
			Score:      rec.Score,
			Expense:    rec.ExpenseTotal,
		})

		aiClient, err := utils.NewAIClient(ctx, utils.AIConfig{APIKey: cfg.GeminiAPIKey, GenModel: cfg.GeminiModel})
		if err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "ai client error"})
			return
		}
		defer aiClient.Close()

		text, err := utils.GenerateText(ctx, aiClient, cfg.GeminiModel, genai.Text(prompt))
		if err != nil {
			logger.Get().Error("roadmap generation failed", zap.Int64("uid", uid), zap.Error(err))
			c.JSON(http.StatusBadGateway, gin.H{"error": "ai service unavailable, please retry"})
			return
		}

		rm, err := core.ParseRoadmapResponse(text)
		if err != nil {
			logger.Get().Warn("roadmap response rejected", zap.Int64("uid", uid), zap.Error(err))
			c.JSON(http.StatusBadGateway, gin.H{"error": "ai returned an invalid roadmap, please retry"})
			return
		}
		// The local classification is authoritative over whatever the model
		// echoed back.
		rm.Month = key
		rm.Mode = mode
		rm.Difficulty = req.Difficulty

		if err := st.SetRoadmap(ctx, uid, key, *rm); err != nil {
			logger.Get().Error("roadmap write failed", zap.Int64("uid", uid), zap.Error(err))
			c.JSON(http.StatusInternalServerError, gin.H{"error": "store error"})
			return
		}

		c.JSON(http.StatusOK, gin.H{
			"roadmap":  rm,
			"progress": core.AggregateProgress(rm),
		})
	}
}

func classifyMonth(rec *models.MonthRecord, txs []models.Transaction) models.Mode {
	wantsUsed := decimal.Zero
	for _, cat := range models.WantsCategories {
		wantsUsed = wantsUsed.Add(core.CategorySpend(txs, cat))
	}
	return core.ClassifyMode(core.ModeInput{
		FirstSalary:  rec.FirstSalary,
		RealSavings:  decimal.NewFromFloat(rec.NetIncome - rec.ExpenseTotal),
		Score:        rec.Score,
		WantsUsed:    wantsUsed,
		WantsLimit:   decimal.NewFromInt(rec.BudgetPlan.Wants),
		ImpulseCount: len(rec.ImpulseHistory),
	})
}

// GetRoadmap returns the stored roadmap with per-task derived status and the
// aggregate progress, reconciled against the month's ledger.
func GetRoadmap(st *store.Client) gin.HandlerFunc {
	return func(c *gin.Context) {
		uid := c.GetInt64("user_id")
		key := c.Param("month")
		now := time.Now()
		if key == "current" || key == "" {
			key = core.MonthKey(now)
		}
		ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
		defer cancel()

		rm, err := st.GetRoadmap(ctx, uid, key)
		if errors.Is(err, store.ErrNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "no roadmap for " + key})
			return
		}
		if err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "store error"})
			return
		}
		txs, err := st.ListTransactions(ctx, uid, key)
		if err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "store error"})
			return
		}

		c.JSON(http.StatusOK, gin.H{
			"roadmap":  rm,
			"weeks":    reconcileWeeks(rm, txs, effectiveDay(key, now)),
			"progress": core.AggregateProgress(rm),
		})
	}
}

// effectiveDay maps the viewed month to the day used for deadline checks:
// the real day for the current month, past-every-deadline for finished
// months, day zero for future ones.
func effectiveDay(key string, now time.Time) int {
	current := core.MonthKey(now)
	switch {
	case key == current:
		return now.Day()
	case key < current:
		return 32
	default:
		return 0
	}
}

type actionView struct {
	models.Action
	Status core.TaskState `json:"status"`
	Limit  *float64       `json:"limit,omitempty"`
	Used   *float64       `json:"used,omitempty"`
}

type weekView struct {
	Week    int          `json:"week"`
	Focus   string       `json:"focus"`
	Actions []actionView `json:"actions"`
}

func reconcileWeeks(rm *models.Roadmap, txs []models.Transaction, today int) []weekView {
	weeks := make([]weekView, 0, len(rm.WeeklyRoadmap))
	for _, w := range rm.WeeklyRoadmap {
		wv := weekView{Week: w.Week, Focus: w.Focus, Actions: make([]actionView, 0, len(w.Actions))}
		for _, a := range w.Actions {
			av := actionView{Action: a}
			var progress *core.TaskProgress
			if pl := core.ParseTaskLimit(a.Task); pl != nil {
				used := core.CategorySpend(txs, pl.Category)
				progress = &core.TaskProgress{Limit: pl.Limit, Used: used}
				lf, uf := pl.Limit.InexactFloat64(), used.InexactFloat64()
				av.Limit, av.Used = &lf, &uf
			}
			av.Status = core.TaskStatus(a, today, progress)
			wv.Actions = append(wv.Actions, av)
		}
		weeks = append(weeks, wv)
	}
	return weeks
}

type ToggleTaskRequest struct {
	Week   *int `json:"week" binding:"required"`
	Action *int `json:"action" binding:"required"`
}

// ToggleTask flips one action's completed flag. The write replaces the whole
// weekly_roadmap array after a fresh read; two tabs toggling at once can
// silently clobber each other, which is an accepted limitation.
func ToggleTask(st *store.Client) gin.HandlerFunc {
	return func(c *gin.Context) {
		var req ToggleTaskRequest
		if err := c.ShouldBindJSON(&req); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "invalid body"})
			return
		}
		uid := c.GetInt64("user_id")
		key := c.Param("month")
		if key == "current" || key == "" {
			key = core.MonthKey(time.Now())
		}
		ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
		defer cancel()

		rm, err := st.GetRoadmap(ctx, uid, key)
		if errors.Is(err, store.ErrNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "no roadmap for " + key})
			return
		}
		if err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "store error"})
			return
		}
		if err := core.ToggleTask(rm, *req.Week, *req.Action); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
			return
		}
		if err := st.ReplaceRoadmapWeeks(ctx, uid, key, rm.WeeklyRoadmap); err != nil {
			logger.Get().Error("roadmap toggle write failed", zap.Int64("uid", uid), zap.Error(err))
			c.JSON(http.StatusInternalServerError, gin.H{"error": "store error"})
			return
		}

		c.JSON(http.StatusOK, gin.H{
			"completed": rm.WeeklyRoadmap[*req.Week].Actions[*req.Action].Completed,
			"progress":  core.AggregateProgress(rm),
		})
	}
}
