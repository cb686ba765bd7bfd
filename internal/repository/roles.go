package repository

import (
	"database/sql"
	"strings"

	"personapath/internal/models"

	"github.com/jmoiron/sqlx"
	"go.uber.org/zap"
)

type RoleRepository interface {
	GetAll(limit int) ([]*models.JobRole, error)
	GetByTitle(title string) (*models.JobRole, error)
	SearchByKeyword(query string) ([]*models.JobRole, error)
	Create(role *models.JobRole) error
	CountRoles() (int, error)
	CountByDepartment() (map[string]int, error)
}

type roleRepository struct {
	db     *sqlx.DB
	logger *zap.Logger
}

func NewRoleRepository(db *sqlx.DB, logger *zap.Logger) RoleRepository {
	return &roleRepository{db: db, logger: logger}
}

const roleColumns = `id, title, department, level, description, skills_required, salary_min, salary_max, file_path, uploaded_by, created_at`

// rolesListQuery returns the full catalog when limit is not positive.
func rolesListQuery(limit int) (string, []interface{}) {
	query := `SELECT ` + roleColumns + ` FROM job_roles ORDER BY title`
	if limit > 0 {
		return query + ` LIMIT $1`, []interface{}{limit}
	}
	return query, nil
}

func (r *roleRepository) GetAll(limit int) ([]*models.JobRole, error) {
	var roles []*models.JobRole
	query, args := rolesListQuery(limit)
	err := r.db.Select(&roles, query, args...)
	if err != nil {
		return nil, err
	}
	return roles, nil
}

// GetByTitle looks up a single role by exact title, case-insensitively.
// Returns nil when no role matches.
func (r *roleRepository) GetByTitle(title string) (*models.JobRole, error) {
	var role models.JobRole
	query := `SELECT ` + roleColumns + ` FROM job_roles WHERE LOWER(title) = $1 ORDER BY created_at DESC LIMIT 1`
	err := r.db.Get(&role, query, strings.ToLower(strings.TrimSpace(title)))
	if err != nil {
		if err == sql.ErrNoRows {
			return nil, nil
		}
		return nil, err
	}
	return &role, nil
}

// SearchByKeyword matches the query against title, department, description
// and skills, ranking title hits first.
func (r *roleRepository) SearchByKeyword(query string) ([]*models.JobRole, error) {
	pattern := "%" + strings.ToLower(strings.TrimSpace(query)) + "%"

	var roles []*models.JobRole
	q := `
		SELECT ` + roleColumns + `
		FROM job_roles
		WHERE LOWER(title) LIKE $1
		   OR LOWER(department) LIKE $1
		   OR LOWER(description) LIKE $1
		   OR LOWER(skills_required) LIKE $1
		ORDER BY
			CASE
				WHEN LOWER(title) LIKE $1 THEN 1
				WHEN LOWER(department) LIKE $1 THEN 2
				WHEN LOWER(skills_required) LIKE $1 THEN 3
				ELSE 4
			END,
			title
	`
	err := r.db.Select(&roles, q, pattern)
	if err != nil {
		return nil, err
	}
	return roles, nil
}

func (r *roleRepository) Create(role *models.JobRole) error {
	query := `INSERT INTO job_roles (title, department, level, description, skills_required, salary_min, salary_max, uploaded_by)
	          VALUES ($1, $2, $3, $4, $5, $6, $7, $8) RETURNING id, created_at`
	return r.db.QueryRowx(query, role.Title, role.Department, role.Level, role.Description,
		role.SkillsRequired, role.SalaryMin, role.SalaryMax, role.UploadedBy).Scan(&role.ID, &role.CreatedAt)
}

func (r *roleRepository) CountRoles() (int, error) {
	var count int
	err := r.db.Get(&count, `SELECT COUNT(*) FROM job_roles`)
	if err != nil {
		return 0, err
	}
	return count, nil
}

func (r *roleRepository) CountByDepartment() (map[string]int, error) {
	rows, err := r.db.Queryx(`SELECT department, COUNT(*) FROM job_roles GROUP BY department`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	counts := make(map[string]int)
	for rows.Next() {
		var dept string
		var n int
		if err := rows.Scan(&dept, &n); err != nil {
			return nil, err
		}
		counts[dept] = n
	}
	return counts, rows.Err()
}
