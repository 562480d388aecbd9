package models

import "time"

// CareerProfile is the per-user singleton read by the career-insight generator.
type CareerProfile struct {
	JobTitle        string   `json:"jobTitle" firestore:"jobTitle"`
	Industry        string   `json:"industry" firestore:"industry"`
	Experience      float64  `json:"experience" firestore:"experience"`
	PrimarySkills   []string `json:"primarySkills" firestore:"primarySkills"`
	LearningHours   float64  `json:"learningHours" firestore:"learningHours"`
	WillingToSwitch bool     `json:"willingToSwitch" firestore:"willingToSwitch"`
	WorkingHours    float64  `json:"workingHours" firestore:"workingHours"`
	Interests       string   `json:"interests" firestore:"interests"`
	CurrentSalary   float64  `json:"currentSalary" firestore:"currentSalary"`

	UpdatedAt time.Time `json:"updatedAt" firestore:"updatedAt,serverTimestamp"`
}
