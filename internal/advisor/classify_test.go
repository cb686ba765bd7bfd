package advisor

import (
	"testing"

	"personapath/internal/models"
)

func testRoles() []*models.JobRole {
	return []*models.JobRole{
		{Title: "Software Developer", Department: "Engineering", Level: "Mid"},
		{Title: "Data Scientist", Department: "Data", Level: "Senior"},
		{Title: "Data Analyst", Department: "Data", Level: "Junior"},
		{Title: "Product Manager", Department: "Product", Level: "Mid"},
		{Title: "UI/UX Designer", Department: "Design", Level: "Mid"},
	}
}

func TestClassifyQueryType(t *testing.T) {
	tests := []struct {
		query string
		want  QueryType
	}{
		{"what is the salary for a software developer?", QuerySalary},
		{"what is the pay range for data scientists", QuerySalary},
		{"what skills do i need for product manager", QuerySkills},
		{"what are the qualifications for data analyst", QuerySkills},
		{"what is the future of a software developer", QueryProgression},
		{"career path for data scientist", QueryProgression},
		{"how do i switch to product management", QueryTransition},
		{"what are the duties of a product manager", QueryResponsibilities},
		{"can someone mentor me", QueryMentorship},
		{"tell me about the data analyst position", QueryGeneral},
		// First matching bucket wins
		{"salary after i transition to data science", QuerySalary},
	}

	for _, tt := range tests {
		if got := ClassifyQueryType(tt.query); got != tt.want {
			t.Errorf("ClassifyQueryType(%q) = %q, want %q", tt.query, got, tt.want)
		}
	}
}

func TestIdentifyRole(t *testing.T) {
	idx := buildRoleIndex(testRoles())

	tests := []struct {
		query string
		want  string
	}{
		{"what is the salary of a software developer", "Software Developer"},
		{"what does a programmer earn here", "Software Developer"},
		{"how do i become a product manager?", "Product Manager"},
		{"i want to transition to data science", "Data Scientist"},
		{"tell me about the ux designer role", "UI/UX Designer"},
		{"what skills does a pm need", "Product Manager"},
		{"what is the weather today", ""},
		// Transition queries resolve the target role, not the current one
		{"how do i move from data analyst to product manager", "Product Manager"},
	}

	for _, tt := range tests {
		if got := idx.identifyRole(tt.query); got != tt.want {
			t.Errorf("identifyRole(%q) = %q, want %q", tt.query, got, tt.want)
		}
	}
}

func TestRoleIndexPrefersLongestKeyword(t *testing.T) {
	idx := buildRoleIndex(testRoles())

	if got := idx.matchIn("senior software developer openings"); got != "Software Developer" {
		t.Errorf("matchIn = %q, want Software Developer", got)
	}
	// "data scientist" must win over the shorter "data analyst" variations
	if got := idx.matchIn("openings for a data scientist"); got != "Data Scientist" {
		t.Errorf("matchIn = %q, want Data Scientist", got)
	}
}
