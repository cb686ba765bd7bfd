package models

import "time"

type Mentor struct {
	ID             int64     `db:"id" json:"id"`
	Name           string    `db:"name" json:"name"`
	CurrentJobRole string    `db:"current_job_role" json:"current_job_role"`
	PreviousRoles  string    `db:"previous_roles" json:"previous_roles"`
	Expertise      string    `db:"expertise" json:"expertise"`
	Bio            string    `db:"bio" json:"bio"`
	ContactInfo    string    `db:"contact_info" json:"contact_info"`
	CreatedAt      time.Time `db:"created_at" json:"created_at"`
}
