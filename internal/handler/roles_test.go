package handler

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"personapath/internal/models"
)

func rolesRouter(repo *fakeRoleRepo, role string) *gin.Engine {
	h := NewRoleHandler(repo, nil, zap.NewNop())
	r := gin.New()
	r.GET("/api/roles", h.List)
	r.GET("/api/roles/search", h.Search)
	r.POST("/api/roles", withIdentity(1, "tester", role), h.Create)
	return r
}

func seedRoles() *fakeRoleRepo {
	return &fakeRoleRepo{roles: []*models.JobRole{
		{ID: 1, Title: "Software Developer", Department: "Engineering"},
		{ID: 2, Title: "Data Scientist", Department: "Data"},
	}}
}

func TestListRoles(t *testing.T) {
	r := rolesRouter(seedRoles(), "Employee")

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/api/roles", nil)
	r.ServeHTTP(w, req)

	if w.Code != http.StatusOK {
		t.Fatalf("status = %d, want 200", w.Code)
	}

	var resp struct {
		Roles []models.JobRole `json:"roles"`
		Count int              `json:"count"`
	}
	if err := json.Unmarshal(w.Body.Bytes(), &resp); err != nil {
		t.Fatalf("decode: %v", err)
	}
	if resp.Count != 2 || len(resp.Roles) != 2 {
		t.Errorf("count = %d, roles = %d", resp.Count, len(resp.Roles))
	}
}

func TestListRolesInvalidLimit(t *testing.T) {
	r := rolesRouter(seedRoles(), "Employee")

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/api/roles?limit=abc", nil)
	r.ServeHTTP(w, req)

	if w.Code != http.StatusBadRequest {
		t.Errorf("status = %d, want 400", w.Code)
	}
}

func TestSearchRoles(t *testing.T) {
	r := rolesRouter(seedRoles(), "Employee")

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/api/roles/search?q=data", nil)
	r.ServeHTTP(w, req)

	if w.Code != http.StatusOK {
		t.Fatalf("status = %d, want 200", w.Code)
	}
	if !strings.Contains(w.Body.String(), "Data Scientist") {
		t.Errorf("body missing match: %s", w.Body.String())
	}
}

func TestSearchRolesRequiresQuery(t *testing.T) {
	r := rolesRouter(seedRoles(), "Employee")

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/api/roles/search", nil)
	r.ServeHTTP(w, req)

	if w.Code != http.StatusBadRequest {
		t.Errorf("status = %d, want 400", w.Code)
	}
}

func TestCreateRoleRequiresPrivilege(t *testing.T) {
	repo := seedRoles()
	r := rolesRouter(repo, "Employee")

	body := `{"title":"QA Engineer","department":"Engineering","level":"Mid"}`
	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/api/roles", strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	r.ServeHTTP(w, req)

	if w.Code != http.StatusForbidden {
		t.Errorf("status = %d, want 403", w.Code)
	}
	if len(repo.created) != 0 {
		t.Error("role created despite missing privilege")
	}
}

func TestCreateRoleAsHR(t *testing.T) {
	repo := seedRoles()
	r := rolesRouter(repo, "HR Manager")

	body := `{"title":"QA Engineer","department":"Engineering","level":"Mid","salary_min":70000,"salary_max":95000}`
	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/api/roles", strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	r.ServeHTTP(w, req)

	if w.Code != http.StatusCreated {
		t.Fatalf("status = %d, want 201: %s", w.Code, w.Body.String())
	}
	if len(repo.created) != 1 {
		t.Fatalf("created %d roles, want 1", len(repo.created))
	}
	if repo.created[0].UploadedBy == nil || *repo.created[0].UploadedBy != 1 {
		t.Error("uploader not recorded")
	}
}

func TestCreateRoleValidatesSalaryRange(t *testing.T) {
	r := rolesRouter(seedRoles(), "Admin")

	body := `{"title":"QA Engineer","department":"Engineering","level":"Mid","salary_min":95000,"salary_max":70000}`
	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/api/roles", strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	r.ServeHTTP(w, req)

	if w.Code != http.StatusBadRequest {
		t.Errorf("status = %d, want 400", w.Code)
	}
}

func TestCreateRoleRejectsNegativeSalary(t *testing.T) {
	repo := seedRoles()
	r := rolesRouter(repo, "Admin")

	body := `{"title":"QA Engineer","department":"Engineering","level":"Mid","salary_min":-120000,"salary_max":95000}`
	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/api/roles", strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	r.ServeHTTP(w, req)

	if w.Code != http.StatusBadRequest {
		t.Errorf("status = %d, want 400", w.Code)
	}
	if len(repo.created) != 0 {
		t.Error("role with negative salary was stored")
	}
}

func TestCreateRoleMissingFields(t *testing.T) {
	r := rolesRouter(seedRoles(), "Admin")

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/api/roles", strings.NewReader(`{"title":"X"}`))
	req.Header.Set("Content-Type", "application/json")
	r.ServeHTTP(w, req)

	if w.Code != http.StatusBadRequest {
		t.Errorf("status = %d, want 400", w.Code)
	}
}
