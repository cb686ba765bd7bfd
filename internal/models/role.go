package models

import "time"

// JobRole is a single job-role record uploaded by HR.
// SkillsRequired is stored as free text, usually comma separated.
type JobRole struct {
	ID             int64     `db:"id" json:"id"`
	Title          string    `db:"title" json:"title"`
	Department     string    `db:"department" json:"department"`
	Level          string    `db:"level" json:"level"`
	Description    string    `db:"description" json:"description"`
	SkillsRequired string    `db:"skills_required" json:"skills_required"`
	SalaryMin      int64     `db:"salary_min" json:"salary_min"`
	SalaryMax      int64     `db:"salary_max" json:"salary_max"`
	FilePath       *string   `db:"file_path" json:"-"`
	UploadedBy     *int64    `db:"uploaded_by" json:"uploaded_by,omitempty"`
	CreatedAt      time.Time `db:"created_at" json:"created_at"`
}
