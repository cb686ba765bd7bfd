package repository

import (
	"personapath/internal/models"

	"github.com/jmoiron/sqlx"
	"go.uber.org/zap"
)

type CareerPathRepository interface {
	Save(path *models.CareerPath) error
	GetByUser(userID int64) ([]*models.CareerPath, error)
}

type careerPathRepository struct {
	db     *sqlx.DB
	logger *zap.Logger
}

func NewCareerPathRepository(db *sqlx.DB, logger *zap.Logger) CareerPathRepository {
	return &careerPathRepository{db: db, logger: logger}
}

func (r *careerPathRepository) Save(path *models.CareerPath) error {
	query := `INSERT INTO career_paths (user_id, current_job_role, target_job_role, recommended_steps, timeline_months)
	          VALUES ($1, $2, $3, $4, $5) RETURNING id, created_at`
	return r.db.QueryRowx(query, path.UserID, path.CurrentJobRole, path.TargetJobRole,
		path.RecommendedSteps, path.TimelineMonths).Scan(&path.ID, &path.CreatedAt)
}

func (r *careerPathRepository) GetByUser(userID int64) ([]*models.CareerPath, error) {
	var paths []*models.CareerPath
	query := `SELECT id, user_id, current_job_role, target_job_role, recommended_steps, timeline_months, created_at
	          FROM career_paths WHERE user_id = $1 ORDER BY created_at DESC`
	err := r.db.Select(&paths, query, userID)
	if err != nil {
		return nil, err
	}
	return paths, nil
}
