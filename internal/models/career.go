package models

import "time"

// CareerPath is a persisted roadmap. RecommendedSteps is the JSON-encoded
// step list produced by the planner.
type CareerPath struct {
	ID               int64     `db:"id" json:"id"`
	UserID           int64     `db:"user_id" json:"user_id"`
	CurrentJobRole   string    `db:"current_job_role" json:"current_job_role"`
	TargetJobRole    string    `db:"target_job_role" json:"target_job_role"`
	RecommendedSteps string    `db:"recommended_steps" json:"recommended_steps"`
	TimelineMonths   int       `db:"timeline_months" json:"timeline_months"`
	CreatedAt        time.Time `db:"created_at" json:"created_at"`
}
