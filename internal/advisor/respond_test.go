package advisor

import (
	"reflect"
	"strings"
	"testing"

	"personapath/internal/models"
)

func TestFormatMoney(t *testing.T) {
	tests := []struct {
		in   int64
		want string
	}{
		{0, "$0"},
		{950, "$950"},
		{95000, "$95,000"},
		{1250000, "$1,250,000"},
		{-120000, "-$120,000"},
	}
	for _, tt := range tests {
		if got := formatMoney(tt.in); got != tt.want {
			t.Errorf("formatMoney(%d) = %q, want %q", tt.in, got, tt.want)
		}
	}
}

func TestSplitSkills(t *testing.T) {
	got := splitSkills("Python, SQL , , Git")
	want := []string{"Python", "SQL", "Git"}
	if !reflect.DeepEqual(got, want) {
		t.Errorf("splitSkills = %v, want %v", got, want)
	}
}

func TestDatabaseResponsePerQueryType(t *testing.T) {
	role := &models.JobRole{
		Title:          "Data Scientist",
		Department:     "Data",
		Level:          "Senior",
		Description:    "Build ML models",
		SkillsRequired: "Python, SQL, Machine Learning, Statistics, Deep Learning, MLOps, Communication",
		SalaryMin:      120000,
		SalaryMax:      160000,
	}

	tests := []struct {
		qt   QueryType
		want []string
	}{
		{QuerySalary, []string{"Salary Information", "$120,000", "$160,000"}},
		{QuerySkills, []string{"Required Skills", "Core Skills", "Additional Requirements"}},
		{QueryProgression, []string{"Career Progression", "Growth Opportunities"}},
		{QueryTransition, []string{"Transitioning to Data Scientist", "Suggested Approach"}},
		{QueryResponsibilities, []string{"Role Responsibilities", "Daily Tasks"}},
		{QueryGeneral, []string{"Complete Role Overview", "Why Consider This Role"}},
	}

	for _, tt := range tests {
		resp := databaseResponse(tt.qt, role)
		for _, want := range tt.want {
			if !strings.Contains(resp, want) {
				t.Errorf("%s response missing %q", tt.qt, want)
			}
		}
	}
}

func TestFallbackResponse(t *testing.T) {
	if resp := fallbackResponse("i need a mentor"); !strings.Contains(resp, "Mentorship Opportunities") {
		t.Errorf("mentor query should get mentorship fallback: %q", resp)
	}
	if resp := fallbackResponse("random question"); !strings.Contains(resp, "Career Guidance") {
		t.Errorf("general query should get career guidance fallback: %q", resp)
	}
}
