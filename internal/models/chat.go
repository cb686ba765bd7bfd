package models

import "time"

// ChatEntry is one stored assistant exchange. RoleContext holds the job-role
// title the assistant resolved for the query, or "General Career".
type ChatEntry struct {
	ID          int64     `db:"id" json:"id"`
	UserID      int64     `db:"user_id" json:"user_id"`
	Query       string    `db:"query" json:"query"`
	Response    string    `db:"response" json:"response"`
	RoleContext string    `db:"role_context" json:"role_context"`
	CreatedAt   time.Time `db:"created_at" json:"created_at"`
}
