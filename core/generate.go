package core

import (
	"encoding/json"
	"fmt"
	"strconv"
	"strings"

	"smartsalary/backend/models"
)

// DifficultyPolicy is the fixed effect contract of a difficulty level on the
// generated roadmap.
type DifficultyPolicy struct {
	MinTasksPerWeek int
	MaxTasksPerWeek int
	WantsLimitScale float64 // multiplier applied to wants-category spend limits
	ScoreDeltaScale float64 // multiplier applied to score impacts
}

var difficultyPolicies = map[models.Difficulty]DifficultyPolicy{
	models.DifficultyEasy:   {MinTasksPerWeek: 1, MaxTasksPerWeek: 3, WantsLimitScale: 1.2, ScoreDeltaScale: 0.5},
	models.DifficultyNormal: {MinTasksPerWeek: 4, MaxTasksPerWeek: 5, WantsLimitScale: 1.0, ScoreDeltaScale: 1.0},
	models.DifficultyHard:   {MinTasksPerWeek: 6, MaxTasksPerWeek: 6, WantsLimitScale: 0.8, ScoreDeltaScale: 1.5},
}

// PolicyFor returns the policy for a difficulty level.
func PolicyFor(d models.Difficulty) (DifficultyPolicy, bool) {
	p, ok := difficultyPolicies[d]
	return p, ok
}

// PromptInput is everything the prompt builder needs. Mode is the locally
// computed classification; the model is told to echo it, and the caller
// overwrites whatever comes back with the local value anyway.
type PromptInput struct {
	Month      string
	Mode       models.Mode
	Difficulty models.Difficulty
	NetIncome  float64
	Plan       models.BudgetPlan
	Score      int
	Expense    float64
}

// BuildRoadmapPrompt renders the deterministic generation prompt. Limits on
// wants categories and score deltas are pre-scaled here so the model only has
// to fill in narrative; the numeric contract stays local.
func BuildRoadmapPrompt(in PromptInput) string {
	pol := difficultyPolicies[in.Difficulty]
	wantsLimit := in.Plan.Wants
	if pol.WantsLimitScale != 0 {
		wantsLimit = int64(float64(wantsLimit) * pol.WantsLimitScale)
	}

	var b strings.Builder
	b.WriteString("You are a personal finance coach. Produce a 4-week roadmap for month ")
	b.WriteString(in.Month)
	b.WriteString(" as strict JSON only, no prose, no markdown fences.\n")
	b.WriteString("Schema: {\"mode\":string,\"difficulty\":string,\"weekly_roadmap\":[{\"week\":int,\"focus\":string,\"actions\":[{\"id\":string,\"task\":string,\"deadline_day\":int,\"success_condition\":string,\"score_impact_if_completed\":int,\"score_impact_if_ignored\":int,\"completed\":false}]}]}\n")
	b.WriteString("Rules:\n")
	fmt.Fprintf(&b, "- mode is exactly %q and difficulty is exactly %q.\n", in.Mode, in.Difficulty)
	fmt.Fprintf(&b, "- each week has between %d and %d actions.\n", pol.MinTasksPerWeek, pol.MaxTasksPerWeek)
	b.WriteString("- spending-limit tasks must use the exact phrase \"Spend ≤ ₹AMOUNT in CATEGORY\" with CATEGORY one of " + strings.Join(models.Categories, ", ") + ".\n")
	fmt.Fprintf(&b, "- total wants-category limits across the month must not exceed ₹%d.\n", wantsLimit)
	fmt.Fprintf(&b, "- score_impact_if_completed is positive and score_impact_if_ignored negative, both scaled by %.1f from a base of 5.\n", pol.ScoreDeltaScale)
	b.WriteString("- deadline_day is a day of month between 1 and 28.\n")
	b.WriteString("User data: net income ₹" + strconv.FormatFloat(in.NetIncome, 'f', 0, 64))
	fmt.Fprintf(&b, ", budget needs=%d wants=%d savings=%d emergency=%d", in.Plan.Needs, in.Plan.Wants, in.Plan.Savings, in.Plan.Emergency)
	fmt.Fprintf(&b, ", expenses so far ₹%.0f, health score %d (%s).\n", in.Expense, in.Score, ScoreBand(in.Score))
	return b.String()
}

// ParseRoadmapResponse validates model output against the roadmap schema.
// Markdown code fences are stripped first. Any failure is recoverable: the
// caller surfaces a retry and persists nothing.
func ParseRoadmapResponse(text string) (*models.Roadmap, error) {
	cleaned := stripFences(text)
	var r models.Roadmap
	if err := json.Unmarshal([]byte(cleaned), &r); err != nil {
		return nil, fmt.Errorf("roadmap response is not valid JSON: %w", err)
	}
	if len(r.WeeklyRoadmap) == 0 {
		return nil, fmt.Errorf("roadmap response has no weeks")
	}
	for wi, w := range r.WeeklyRoadmap {
		if len(w.Actions) == 0 {
			return nil, fmt.Errorf("week %d has no actions", wi+1)
		}
		for ai, a := range w.Actions {
			if strings.TrimSpace(a.Task) == "" {
				return nil, fmt.Errorf("week %d action %d has an empty task", wi+1, ai+1)
			}
			if a.DeadlineDay < 1 || a.DeadlineDay > 31 {
				return nil, fmt.Errorf("week %d action %d deadline_day %d out of range", wi+1, ai+1, a.DeadlineDay)
			}
		}
	}
	return &r, nil
}

func stripFences(s string) string {
	t := strings.TrimSpace(s)
	t = strings.TrimPrefix(t, "```json")
	t = strings.TrimPrefix(t, "```")
	t = strings.TrimSuffix(t, "```")
	return strings.TrimSpace(t)
}
