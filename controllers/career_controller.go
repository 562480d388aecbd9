package controllers

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"strings"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/generative-ai-go/genai"
	"go.uber.org/zap"

	"smartsalary/backend/config"
	"smartsalary/backend/core"
	"smartsalary/backend/logger"
	"smartsalary/backend/models"
	"smartsalary/backend/store"
	"smartsalary/backend/utils"
)

type CareerProfileRequest struct {
	JobTitle        string   `json:"jobTitle" binding:"required"`
	Industry        string   `json:"industry" binding:"required"`
	Experience      float64  `json:"experience" binding:"gte=0"`
	PrimarySkills   []string `json:"primarySkills"`
	LearningHours   float64  `json:"learningHours" binding:"gte=0"`
	WillingToSwitch *bool    `json:"willingToSwitch"`
	WorkingHours    float64  `json:"workingHours" binding:"gte=0,lte=168"`
	Interests       string   `json:"interests"`
	CurrentSalary   float64  `json:"currentSalary" binding:"gte=0"`
}

func UpsertCareerProfile(st *store.Client) gin.HandlerFunc {
	return func(c *gin.Context) {
		var req CareerProfileRequest
		if err := c.ShouldBindJSON(&req); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "invalid body"})
			return
		}
		// Absent willingToSwitch defaults to true.
		willing := true
		if req.WillingToSwitch != nil {
			willing = *req.WillingToSwitch
		}
		uid := c.GetInt64("user_id")
		ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
		defer cancel()

		p := models.CareerProfile{
			JobTitle:        req.JobTitle,
			Industry:        req.Industry,
			Experience:      req.Experience,
			PrimarySkills:   req.PrimarySkills,
			LearningHours:   req.LearningHours,
			WillingToSwitch: willing,
			WorkingHours:    req.WorkingHours,
			Interests:       req.Interests,
			CurrentSalary:   req.CurrentSalary,
		}
		if err := st.SetCareerProfile(ctx, uid, p); err != nil {
			logger.Get().Error("career profile write failed", zap.Int64("uid", uid), zap.Error(err))
			c.JSON(http.StatusInternalServerError, gin.H{"error": "store error"})
			return
		}
		c.JSON(http.StatusOK, p)
	}
}

func GetCareerProfile(st *store.Client) gin.HandlerFunc {
	return func(c *gin.Context) {
		uid := c.GetInt64("user_id")
		ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		p, err := st.GetCareerProfile(ctx, uid)
		if errors.Is(err, store.ErrNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "no career profile"})
			return
		}
		if err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "store error"})
			return
		}
		c.JSON(http.StatusOK, p)
	}
}

// CareerInsights asks Gemini for coaching narrative grounded in the stored
// profile and, when present, the current month's numbers. Plain text out; a
// failed call is surfaced as retryable with nothing persisted.
func CareerInsights(cfg config.Config, st *store.Client) gin.HandlerFunc {
	return func(c *gin.Context) {
		if cfg.GeminiAPIKey == "" {
			c.JSON(http.StatusServiceUnavailable, gin.H{"error": "ai service not configured"})
			return
		}
		uid := c.GetInt64("user_id")
		ctx, cancel := context.WithTimeout(context.Background(), 60*time.Second)
		defer cancel()

		p, err := st.GetCareerProfile(ctx, uid)
		if errors.Is(err, store.ErrNotFound) {
			c.JSON(http.StatusBadRequest, gin.H{"error": "submit a career profile first"})
			return
		}
		if err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "store error"})
			return
		}

		var b strings.Builder
		b.WriteString("You are a career coach for salaried professionals in India. ")
		b.WriteString("Give specific, actionable guidance in under 250 words: growth levers, skill gaps, and a realistic salary trajectory. No markdown fences.\n")
		fmt.Fprintf(&b, "Profile: %s in %s, %.1f years experience, skills: %s. ",
			p.JobTitle, p.Industry, p.Experience, strings.Join(p.PrimarySkills, ", "))
		fmt.Fprintf(&b, "Learning %.0f h/week, working %.0f h/week, willing to switch: %t. ",
			p.LearningHours, p.WorkingHours, p.WillingToSwitch)
		fmt.Fprintf(&b, "Interests: %s. Current salary ₹%.0f/month.\n", p.Interests, p.CurrentSalary)
		if rec, err := st.GetMonth(ctx, uid, core.MonthKey(time.Now())); err == nil {
			fmt.Fprintf(&b, "This month: net income ₹%.0f, expenses ₹%.0f, health score %d (%s).\n",
				rec.NetIncome, rec.ExpenseTotal, rec.Score, core.ScoreBand(rec.Score))
		}

		aiClient, err := utils.NewAIClient(ctx, utils.AIConfig{APIKey: cfg.GeminiAPIKey, GenModel: cfg.GeminiModel})
		if err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "ai client error"})
			return
		}
		defer aiClient.Close()

		text, err := utils.GenerateText(ctx, aiClient, cfg.GeminiModel, genai.Text(b.String()))
		if err != nil || text == "" {
			logger.Get().Error("career insights failed", zap.Int64("uid", uid), zap.Error(err))
			c.JSON(http.StatusBadGateway, gin.H{"error": "ai service unavailable, please retry"})
			return
		}
		c.JSON(http.StatusOK, gin.H{"insights": text})
	}
}
