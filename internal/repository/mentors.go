package repository

import (
	"personapath/internal/models"

	"github.com/jmoiron/sqlx"
	"go.uber.org/zap"
)

type MentorRepository interface {
	GetAll() ([]*models.Mentor, error)
	Create(mentor *models.Mentor) error
	CountMentors() (int, error)
}

type mentorRepository struct {
	db     *sqlx.DB
	logger *zap.Logger
}

func NewMentorRepository(db *sqlx.DB, logger *zap.Logger) MentorRepository {
	return &mentorRepository{db: db, logger: logger}
}

func (r *mentorRepository) GetAll() ([]*models.Mentor, error) {
	var mentors []*models.Mentor
	query := `SELECT id, name, current_job_role, previous_roles, expertise, bio, contact_info, created_at
	          FROM mentors ORDER BY name`
	err := r.db.Select(&mentors, query)
	if err != nil {
		return nil, err
	}
	return mentors, nil
}

func (r *mentorRepository) Create(mentor *models.Mentor) error {
	query := `INSERT INTO mentors (name, current_job_role, previous_roles, expertise, bio, contact_info)
	          VALUES ($1, $2, $3, $4, $5, $6) RETURNING id, created_at`
	return r.db.QueryRowx(query, mentor.Name, mentor.CurrentJobRole, mentor.PreviousRoles,
		mentor.Expertise, mentor.Bio, mentor.ContactInfo).Scan(&mentor.ID, &mentor.CreatedAt)
}

func (r *mentorRepository) CountMentors() (int, error) {
	var count int
	err := r.db.Get(&count, `SELECT COUNT(*) FROM mentors`)
	if err != nil {
		return 0, err
	}
	return count, nil
}
