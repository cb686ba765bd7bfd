package mentor

import (
	"errors"
	"strings"
	"testing"

	"go.uber.org/zap"

	"personapath/internal/models"
)

type fakeMentorRepo struct {
	mentors []*models.Mentor
	getErr  error
}

func (f *fakeMentorRepo) GetAll() ([]*models.Mentor, error) {
	if f.getErr != nil {
		return nil, f.getErr
	}
	return f.mentors, nil
}

func (f *fakeMentorRepo) Create(mentor *models.Mentor) error { return nil }
func (f *fakeMentorRepo) CountMentors() (int, error)         { return len(f.mentors), nil }

func testMentors() []*models.Mentor {
	return []*models.Mentor{
		{
			ID:             1,
			Name:           "Sarah Chen",
			CurrentJobRole: "Senior Product Manager",
			PreviousRoles:  "Product Manager, Business Analyst, Data Analyst",
			Expertise:      "Product strategy, stakeholder management, career transition",
			Bio:            "10 years in product",
		},
		{
			ID:             2,
			Name:           "Mike Ross",
			CurrentJobRole: "Engineering Manager",
			PreviousRoles:  "Senior Developer",
			Expertise:      "Leadership, technical mentorship",
			Bio:            "Engineering leader",
		},
		{
			ID:             3,
			Name:           "Ana Silva",
			CurrentJobRole: "Marketing Director",
			PreviousRoles:  "Marketing Manager",
			Expertise:      "Brand strategy",
			Bio:            "Marketing executive",
		},
	}
}

func newTestMatcher(mentors []*models.Mentor) *Matcher {
	return NewMatcher(&fakeMentorRepo{mentors: mentors}, zap.NewNop())
}

func TestScoreMentorTargetRoleAlignment(t *testing.T) {
	mentors := testMentors()
	profile := Profile{CurrentRole: "Data Analyst", Goals: "transition into product leadership"}

	// Sarah is currently a Product Manager, previously one too, and has
	// diverse experience
	sarahScore := scoreMentor(mentors[0], profile, "Product Manager")
	anaScore := scoreMentor(mentors[2], profile, "Product Manager")

	if sarahScore <= anaScore {
		t.Errorf("sarah = %v, ana = %v; expected sarah to outscore ana", sarahScore, anaScore)
	}
	// 30 (current role) + 20 (previous role) at minimum
	if sarahScore < 50 {
		t.Errorf("sarahScore = %v, want >= 50", sarahScore)
	}
}

func TestScoreMentorDiversityBonus(t *testing.T) {
	mentor := &models.Mentor{
		CurrentJobRole: "Unrelated Role",
		PreviousRoles:  "Role A, Role B, Role C",
		Expertise:      "",
	}
	// No role or goal alignment, only the diversity bonus applies
	score := scoreMentor(mentor, Profile{}, "")
	if score != 5 {
		t.Errorf("score = %v, want 5", score)
	}
}

func TestFindMentorsRanksAndLimits(t *testing.T) {
	m := newTestMatcher(testMentors())
	profile := Profile{CurrentRole: "Data Analyst", Goals: "grow into product leadership"}

	matches, err := m.FindMentors(profile, "Product Manager", 2)
	if err != nil {
		t.Fatalf("FindMentors: %v", err)
	}

	if len(matches) > 2 {
		t.Fatalf("got %d matches, want at most 2", len(matches))
	}
	if matches[0].Mentor.Name != "Sarah Chen" {
		t.Errorf("top match = %q, want Sarah Chen", matches[0].Mentor.Name)
	}
	for i := 1; i < len(matches); i++ {
		if matches[i].MatchScore > matches[i-1].MatchScore {
			t.Errorf("matches not sorted by score: %v > %v", matches[i].MatchScore, matches[i-1].MatchScore)
		}
	}
	if len(matches[0].MatchReasons) == 0 {
		t.Error("expected match reasons for top mentor")
	}
}

func TestFindMentorsExcludesZeroScores(t *testing.T) {
	m := newTestMatcher([]*models.Mentor{
		{Name: "No Fit", CurrentJobRole: "Chef", PreviousRoles: "Cook", Expertise: "Cuisine"},
	})

	matches, err := m.FindMentors(Profile{}, "", 5)
	if err != nil {
		t.Fatalf("FindMentors: %v", err)
	}
	if len(matches) != 0 {
		t.Errorf("got %d matches, want 0", len(matches))
	}
}

func TestFindMentorsRepositoryError(t *testing.T) {
	m := NewMatcher(&fakeMentorRepo{getErr: errors.New("db down")}, zap.NewNop())

	if _, err := m.FindMentors(Profile{}, "Product Manager", 5); err == nil {
		t.Error("expected error from repository")
	}
}

func TestMatchReasonsFallback(t *testing.T) {
	mentor := &models.Mentor{
		Name:           "No Overlap",
		CurrentJobRole: "Chef",
		PreviousRoles:  "Cook",
		Expertise:      "Cuisine",
	}

	reasons := matchReasons(mentor, Profile{}, "")
	if len(reasons) != 2 {
		t.Fatalf("reasons = %v, want generic fallback pair", reasons)
	}
	if !strings.Contains(reasons[1], "Cuisine") {
		t.Errorf("second reason should cite expertise: %q", reasons[1])
	}
}

func TestSuggestPlan(t *testing.T) {
	m := newTestMatcher(testMentors())

	plan, err := m.SuggestPlan("Senior Developer", "Engineering Manager")
	if err != nil {
		t.Fatalf("SuggestPlan: %v", err)
	}

	if len(plan.RecommendedMentors) == 0 {
		t.Error("expected recommended mentors")
	}
	// Manager target adds leadership focus areas
	found := false
	for _, area := range plan.MentorshipFocusAreas {
		if area == "Leadership development" {
			found = true
		}
	}
	if !found {
		t.Errorf("focus areas missing leadership: %v", plan.MentorshipFocusAreas)
	}
	if plan.MeetingFrequency.InitialPhase == "" {
		t.Error("missing meeting frequency")
	}
	if len(plan.DiscussionTopics) == 0 || len(plan.SuccessMetrics) == 0 {
		t.Error("missing discussion topics or success metrics")
	}
	if len(plan.AlternativeMentorship) != 4 {
		t.Errorf("alternatives = %d, want 4", len(plan.AlternativeMentorship))
	}
}
