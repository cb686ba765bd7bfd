package models

import (
	"time"

	"github.com/golang-jwt/jwt/v5"
)

type User struct {
	ID             int64     `db:"id" json:"id"`
	Username       string    `db:"username" json:"username"`
	PasswordHash   string    `db:"password_hash" json:"-"`
	Role           string    `db:"role" json:"role"`
	CurrentJobRole *string   `db:"current_job_role" json:"current_job_role,omitempty"`
	Skills         *string   `db:"skills" json:"skills,omitempty"`
	Goals          *string   `db:"goals" json:"goals,omitempty"`
	CreatedAt      time.Time `db:"created_at" json:"created_at"`
}

// Claims defines the structure of the JWT claims.
type Claims struct {
	UserID   int64  `json:"user_id"`
	Username string `json:"username"`
	Role     string `json:"role"`
	jwt.RegisteredClaims
}
