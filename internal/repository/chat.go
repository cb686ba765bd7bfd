package repository

import (
	"time"

	"personapath/internal/models"

	"github.com/jmoiron/sqlx"
	"go.uber.org/zap"
)

type ChatRepository interface {
	Save(entry *models.ChatEntry) error
	GetByUser(userID int64, limit int) ([]*models.ChatEntry, error)
	GetByUserSince(userID int64, since time.Time) ([]*models.ChatEntry, error)
	Clear(userID int64) error
	Delete(userID, id int64) (bool, error)
	CountEntries() (int, error)
	CountEntriesSince(since time.Time) (int, error)
}

type chatRepository struct {
	db     *sqlx.DB
	logger *zap.Logger
}

func NewChatRepository(db *sqlx.DB, logger *zap.Logger) ChatRepository {
	return &chatRepository{db: db, logger: logger}
}

func (r *chatRepository) Save(entry *models.ChatEntry) error {
	query := `INSERT INTO chat_history (user_id, query, response, role_context)
	          VALUES ($1, $2, $3, $4) RETURNING id, created_at`
	return r.db.QueryRowx(query, entry.UserID, entry.Query, entry.Response, entry.RoleContext).
		Scan(&entry.ID, &entry.CreatedAt)
}

func (r *chatRepository) GetByUser(userID int64, limit int) ([]*models.ChatEntry, error) {
	if limit <= 0 {
		limit = 20
	}
	var entries []*models.ChatEntry
	query := `SELECT id, user_id, query, response, role_context, created_at FROM chat_history
	          WHERE user_id = $1 ORDER BY created_at DESC LIMIT $2`
	err := r.db.Select(&entries, query, userID, limit)
	if err != nil {
		return nil, err
	}
	return entries, nil
}

func (r *chatRepository) GetByUserSince(userID int64, since time.Time) ([]*models.ChatEntry, error) {
	var entries []*models.ChatEntry
	query := `SELECT id, user_id, query, response, role_context, created_at FROM chat_history
	          WHERE user_id = $1 AND created_at >= $2 ORDER BY created_at DESC`
	err := r.db.Select(&entries, query, userID, since)
	if err != nil {
		return nil, err
	}
	return entries, nil
}

func (r *chatRepository) Clear(userID int64) error {
	_, err := r.db.Exec(`DELETE FROM chat_history WHERE user_id = $1`, userID)
	return err
}

// Delete removes a single entry, scoped to its owner. Returns false when
// the entry does not exist or belongs to another user.
func (r *chatRepository) Delete(userID, id int64) (bool, error) {
	res, err := r.db.Exec(`DELETE FROM chat_history WHERE id = $1 AND user_id = $2`, id, userID)
	if err != nil {
		return false, err
	}
	affected, err := res.RowsAffected()
	if err != nil {
		return false, err
	}
	return affected > 0, nil
}

func (r *chatRepository) CountEntries() (int, error) {
	var count int
	err := r.db.Get(&count, `SELECT COUNT(*) FROM chat_history`)
	if err != nil {
		return 0, err
	}
	return count, nil
}

func (r *chatRepository) CountEntriesSince(since time.Time) (int, error) {
	var count int
	err := r.db.Get(&count, `SELECT COUNT(*) FROM chat_history WHERE created_at >= $1`, since)
	if err != nil {
		return 0, err
	}
	return count, nil
}
