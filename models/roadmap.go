package models

import "time"

// Mode is the qualitative label for a user's financial situation in a month.
type Mode string

const (
	FoundationMode    Mode = "Foundation Mode"
	DamageControlMode Mode = "Damage Control Mode"
	CorrectionMode    Mode = "Correction Mode"
	DisciplineMode    Mode = "Discipline Mode"
	GrowthMode        Mode = "Growth Mode"
)

// Difficulty selects the task density and score-delta scaling of a roadmap.
type Difficulty string

const (
	DifficultyEasy   Difficulty = "Easy"
	DifficultyNormal Difficulty = "Normal"
	DifficultyHard   Difficulty = "Hard"
)

// Action is one discrete roadmap task. Only Completed is mutated after
// creation; everything else is replaced wholesale on regeneration.
type Action struct {
	ID               string `json:"id" firestore:"id"`
	Task             string `json:"task" firestore:"task"`
	DeadlineDay      int    `json:"deadline_day" firestore:"deadline_day"`
	SuccessCondition string `json:"success_condition" firestore:"success_condition"`
	ScoreIfCompleted int    `json:"score_impact_if_completed" firestore:"score_impact_if_completed"`
	ScoreIfIgnored   int    `json:"score_impact_if_ignored" firestore:"score_impact_if_ignored"`
	Completed        bool   `json:"completed" firestore:"completed"`
}

type Week struct {
	Week    int      `json:"week" firestore:"week"`
	Focus   string   `json:"focus" firestore:"focus"`
	Actions []Action `json:"actions" firestore:"actions"`
}

// Roadmap is the month's 4-week task plan, one document per (user, month).
type Roadmap struct {
	Month         string     `json:"month" firestore:"month"`
	Mode          Mode       `json:"mode" firestore:"mode"`
	Difficulty    Difficulty `json:"difficulty" firestore:"difficulty"`
	WeeklyRoadmap []Week     `json:"weekly_roadmap" firestore:"weekly_roadmap"`
	CreatedAt     time.Time  `json:"createdAt" firestore:"createdAt,serverTimestamp"`
}
