package planner

import (
	"encoding/json"
	"errors"
	"reflect"
	"testing"

	"go.uber.org/zap"

	"personapath/internal/models"
)

var errSave = errors.New("save failed")

type fakeCareerRepo struct {
	saved   []*models.CareerPath
	saveErr error
}

func (f *fakeCareerRepo) Save(path *models.CareerPath) error {
	if f.saveErr != nil {
		return f.saveErr
	}
	f.saved = append(f.saved, path)
	return nil
}

func (f *fakeCareerRepo) GetByUser(userID int64) ([]*models.CareerPath, error) {
	return f.saved, nil
}

func TestFindLadderPath(t *testing.T) {
	tests := []struct {
		current, target string
		want            []string
	}{
		{"Junior Developer", "Senior Developer", []string{"Junior Developer", "Senior Developer"}},
		{"Junior Developer", "Engineering Manager", []string{"Junior Developer", "Senior Developer", "Engineering Manager"}},
		{"Product Analyst", "Product Manager", []string{"Product Analyst", "Associate Product Manager", "Product Manager"}},
		{"Data Analyst", "ML Engineer", []string{"Data Analyst", "Data Scientist", "ML Engineer"}},
		{"Sales Representative", "Sales Representative", []string{"Sales Representative"}},
	}

	for _, tt := range tests {
		got := findLadderPath(tt.current, tt.target)
		if !reflect.DeepEqual(got, tt.want) {
			t.Errorf("findLadderPath(%q, %q) = %v, want %v", tt.current, tt.target, got, tt.want)
		}
	}
}

func TestFindLadderPathUnknownRole(t *testing.T) {
	if got := findLadderPath("Janitor", "CEO"); got != nil {
		t.Errorf("findLadderPath for unknown role = %v, want nil", got)
	}
}

func TestRoleLevel(t *testing.T) {
	tests := []struct {
		role string
		want int
	}{
		{"Chief Product Officer", 7},
		{"VP Engineering", 6},
		{"Marketing Director", 5},
		{"Engineering Manager", 4},
		{"Team Lead", 4},
		{"Senior Developer", 3},
		{"Principal Engineer", 3},
		{"Software Developer", 2},
		{"Junior Developer", 1},
		{"Associate Consultant", 1},
		// "manager" outranks "associate" in the keyword order
		{"Associate Product Manager", 4},
	}

	for _, tt := range tests {
		if got := roleLevel(tt.role); got != tt.want {
			t.Errorf("roleLevel(%q) = %d, want %d", tt.role, got, tt.want)
		}
	}
}

func TestAlternativePathUpward(t *testing.T) {
	path := alternativePath("Technical Writer", "Technical Writer Manager")

	if path[0] != "Technical Writer" {
		t.Errorf("path starts with %q", path[0])
	}
	if path[len(path)-1] != "Technical Writer Manager" {
		t.Errorf("path ends with %q", path[len(path)-1])
	}
	// Level 2 to 4 inserts one intermediate step
	if len(path) != 3 {
		t.Errorf("path = %v, want 3 entries", path)
	}
}

func TestAlternativePathDownwardInsertsTransition(t *testing.T) {
	path := alternativePath("Engineering Manager", "Data Analyst")

	if len(path) != 3 {
		t.Fatalf("path = %v, want 3 entries", path)
	}
	if path[1] == "" || path[1] == "Data Analyst" {
		t.Errorf("expected a transition period step, got %q", path[1])
	}
}

func TestEstimateTimeline(t *testing.T) {
	tests := []struct {
		pathLen int
		want    string
	}{
		{2, "6-12 months"},
		{3, "1-2 years"},
		{4, "2-4 years"},
		{6, "4-6 years"},
	}

	for _, tt := range tests {
		path := make([]string, tt.pathLen)
		if got := estimateTimeline(path); got != tt.want {
			t.Errorf("estimateTimeline(len %d) = %q, want %q", tt.pathLen, got, tt.want)
		}
	}
}

func TestTimelineToMonths(t *testing.T) {
	tests := []struct {
		timeline string
		want     int
	}{
		{"6-12 months", 9},
		{"1-2 years", 18},
		{"2-4 years", 36},
		{"4-6 years", 60},
		{"unknown", 12},
	}

	for _, tt := range tests {
		if got := timelineToMonths(tt.timeline); got != tt.want {
			t.Errorf("timelineToMonths(%q) = %d, want %d", tt.timeline, got, tt.want)
		}
	}
}

func TestGenerateRoadmap(t *testing.T) {
	repo := &fakeCareerRepo{}
	p := NewPlanner(repo, zap.NewNop())

	roadmap, err := p.GenerateRoadmap(1, "Junior Developer", "Engineering Manager")
	if err != nil {
		t.Fatalf("GenerateRoadmap: %v", err)
	}

	if roadmap.TotalSteps != 2 {
		t.Errorf("TotalSteps = %d, want 2", roadmap.TotalSteps)
	}
	if roadmap.EstimatedTimeline != "1-2 years" {
		t.Errorf("EstimatedTimeline = %q", roadmap.EstimatedTimeline)
	}
	if len(roadmap.Steps) != 2 {
		t.Fatalf("Steps = %d, want 2", len(roadmap.Steps))
	}
	if roadmap.Steps[0].FromRole != "Junior Developer" || roadmap.Steps[0].ToRole != "Senior Developer" {
		t.Errorf("unexpected first step: %+v", roadmap.Steps[0])
	}
	if len(roadmap.LateralOpportunities) == 0 || len(roadmap.LateralOpportunities) > 3 {
		t.Errorf("LateralOpportunities = %v", roadmap.LateralOpportunities)
	}
	if _, ok := roadmap.SkillRequirements["Engineering Manager"]; !ok {
		t.Error("missing skill requirements for target role")
	}

	// The roadmap is persisted with JSON-encoded steps
	if len(repo.saved) != 1 {
		t.Fatalf("saved %d paths, want 1", len(repo.saved))
	}
	saved := repo.saved[0]
	if saved.UserID != 1 || saved.TimelineMonths != 18 {
		t.Errorf("unexpected saved path: %+v", saved)
	}
	var steps []Step
	if err := json.Unmarshal([]byte(saved.RecommendedSteps), &steps); err != nil {
		t.Fatalf("RecommendedSteps is not valid JSON: %v", err)
	}
	if len(steps) != 2 {
		t.Errorf("persisted %d steps, want 2", len(steps))
	}
}

func TestGenerateRoadmapSurvivesSaveFailure(t *testing.T) {
	repo := &fakeCareerRepo{saveErr: errSave}
	p := NewPlanner(repo, zap.NewNop())

	roadmap, err := p.GenerateRoadmap(1, "Junior Developer", "Senior Developer")
	if err != nil {
		t.Fatalf("GenerateRoadmap: %v", err)
	}
	if roadmap == nil || len(roadmap.Path) == 0 {
		t.Error("expected a roadmap despite persistence failure")
	}
}

func TestGenerateRoadmapRequiresRoles(t *testing.T) {
	p := NewPlanner(&fakeCareerRepo{}, zap.NewNop())

	if _, err := p.GenerateRoadmap(1, "", "Senior Developer"); err == nil {
		t.Error("expected error for empty current role")
	}
	if _, err := p.GenerateRoadmap(1, "Junior Developer", "  "); err == nil {
		t.Error("expected error for empty target role")
	}
}
