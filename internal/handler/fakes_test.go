package handler

import (
	"strings"
	"time"

	"github.com/gin-gonic/gin"

	"personapath/internal/models"
)

func init() {
	gin.SetMode(gin.TestMode)
}

type fakeRoleRepo struct {
	roles     []*models.JobRole
	created   []*models.JobRole
	listErr   error
	createErr error
}

func (f *fakeRoleRepo) GetAll(limit int) ([]*models.JobRole, error) {
	if f.listErr != nil {
		return nil, f.listErr
	}
	if limit > 0 && limit < len(f.roles) {
		return f.roles[:limit], nil
	}
	return f.roles, nil
}

func (f *fakeRoleRepo) GetByTitle(title string) (*models.JobRole, error) {
	for _, r := range f.roles {
		if strings.EqualFold(r.Title, title) {
			return r, nil
		}
	}
	return nil, nil
}

func (f *fakeRoleRepo) SearchByKeyword(query string) ([]*models.JobRole, error) {
	var out []*models.JobRole
	q := strings.ToLower(query)
	for _, r := range f.roles {
		if strings.Contains(strings.ToLower(r.Title), q) {
			out = append(out, r)
		}
	}
	return out, nil
}

func (f *fakeRoleRepo) Create(role *models.JobRole) error {
	if f.createErr != nil {
		return f.createErr
	}
	role.ID = int64(len(f.created) + 1)
	f.created = append(f.created, role)
	f.roles = append(f.roles, role)
	return nil
}

func (f *fakeRoleRepo) CountRoles() (int, error) { return len(f.roles), nil }

func (f *fakeRoleRepo) CountByDepartment() (map[string]int, error) {
	counts := make(map[string]int)
	for _, r := range f.roles {
		counts[r.Department]++
	}
	return counts, nil
}

type fakeChatRepo struct {
	entries  []*models.ChatEntry
	clearErr error
	nextID   int64
}

func (f *fakeChatRepo) Save(entry *models.ChatEntry) error {
	f.nextID++
	entry.ID = f.nextID
	f.entries = append(f.entries, entry)
	return nil
}

func (f *fakeChatRepo) GetByUser(userID int64, limit int) ([]*models.ChatEntry, error) {
	var out []*models.ChatEntry
	for _, e := range f.entries {
		if e.UserID == userID {
			out = append(out, e)
		}
	}
	if limit > 0 && limit < len(out) {
		out = out[:limit]
	}
	return out, nil
}

func (f *fakeChatRepo) GetByUserSince(userID int64, since time.Time) ([]*models.ChatEntry, error) {
	var out []*models.ChatEntry
	for _, e := range f.entries {
		if e.UserID == userID && !e.CreatedAt.Before(since) {
			out = append(out, e)
		}
	}
	return out, nil
}

func (f *fakeChatRepo) Clear(userID int64) error {
	if f.clearErr != nil {
		return f.clearErr
	}
	f.entries = nil
	return nil
}

func (f *fakeChatRepo) Delete(userID, id int64) (bool, error) {
	for i, e := range f.entries {
		if e.ID == id && e.UserID == userID {
			f.entries = append(f.entries[:i], f.entries[i+1:]...)
			return true, nil
		}
	}
	return false, nil
}

func (f *fakeChatRepo) CountEntries() (int, error) { return len(f.entries), nil }

func (f *fakeChatRepo) CountEntriesSince(since time.Time) (int, error) { return len(f.entries), nil }

type fakeMentorRepo struct {
	mentors []*models.Mentor
}

func (f *fakeMentorRepo) GetAll() ([]*models.Mentor, error)  { return f.mentors, nil }
func (f *fakeMentorRepo) Create(mentor *models.Mentor) error { return nil }
func (f *fakeMentorRepo) CountMentors() (int, error)         { return len(f.mentors), nil }

type fakeAuthRepo struct {
	users map[string]*models.User
}

func (f *fakeAuthRepo) CreateUser(user *models.User) error {
	f.users[user.Username] = user
	return nil
}

func (f *fakeAuthRepo) GetUserByUsername(username string) (*models.User, error) {
	return f.users[username], nil
}

func (f *fakeAuthRepo) GetUserByID(id int64) (*models.User, error) {
	for _, u := range f.users {
		if u.ID == id {
			return u, nil
		}
	}
	return nil, nil
}

func (f *fakeAuthRepo) CountUsers() (int, error) { return len(f.users), nil }

// withIdentity injects the context keys normally set by the auth
// middleware.
func withIdentity(userID int64, username, role string) gin.HandlerFunc {
	return func(c *gin.Context) {
		c.Set("user_id", userID)
		c.Set("username", username)
		c.Set("role", role)
		c.Next()
	}
}
