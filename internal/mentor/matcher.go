package mentor

import (
	"fmt"
	"sort"
	"strings"

	"go.uber.org/zap"

	"personapath/internal/models"
	"personapath/internal/repository"
)

// Profile describes the employee asking for mentors.
type Profile struct {
	CurrentRole string
	Goals       string
}

// Match is a mentor with its compatibility score for a profile.
type Match struct {
	Mentor       *models.Mentor `json:"mentor"`
	MatchScore   float64        `json:"match_score"`
	MatchReasons []string       `json:"match_reasons"`
}

// MeetingFrequency describes the cadence of a mentorship relationship.
type MeetingFrequency struct {
	InitialPhase     string `json:"initial_phase"`
	DevelopmentPhase string `json:"development_phase"`
	MaintenancePhase string `json:"maintenance_phase"`
	Duration         string `json:"duration"`
}

// AlternativeOption is a mentorship format beyond 1:1 pairing.
type AlternativeOption struct {
	Type        string   `json:"type"`
	Description string   `json:"description"`
	Benefits    []string `json:"benefits"`
}

// Plan is a full mentorship suggestion package for a career transition.
type Plan struct {
	RecommendedMentors    []Match             `json:"recommended_mentors"`
	MentorshipFocusAreas  []string            `json:"mentorship_focus_areas"`
	MeetingFrequency      MeetingFrequency    `json:"meeting_frequency"`
	DiscussionTopics      []string            `json:"discussion_topics"`
	SuccessMetrics        []string            `json:"success_metrics"`
	AlternativeMentorship []AlternativeOption `json:"alternative_mentorship"`
}

// Matcher scores mentors against employee profiles and target roles.
type Matcher struct {
	mentors repository.MentorRepository
	logger  *zap.Logger
}

func NewMatcher(mentors repository.MentorRepository, logger *zap.Logger) *Matcher {
	return &Matcher{mentors: mentors, logger: logger}
}

// FindMentors returns up to limit mentors ranked by compatibility with
// the profile and optional target role. Mentors scoring zero are
// excluded.
func (m *Matcher) FindMentors(profile Profile, targetRole string, limit int) ([]Match, error) {
	if limit <= 0 {
		limit = 5
	}

	mentors, err := m.mentors.GetAll()
	if err != nil {
		return nil, err
	}

	matches := make([]Match, 0, len(mentors))
	for _, mentor := range mentors {
		score := scoreMentor(mentor, profile, targetRole)
		if score <= 0 {
			continue
		}
		matches = append(matches, Match{
			Mentor:       mentor,
			MatchScore:   score,
			MatchReasons: matchReasons(mentor, profile, targetRole),
		})
	}

	sort.SliceStable(matches, func(i, j int) bool {
		return matches[i].MatchScore > matches[j].MatchScore
	})

	if len(matches) > limit {
		matches = matches[:limit]
	}
	return matches, nil
}

// RecommendForRole suggests mentors for employees considering the given
// role, using a generic transition profile.
func (m *Matcher) RecommendForRole(role *models.JobRole) ([]Match, error) {
	profile := Profile{
		CurrentRole: "Current Employee",
		Goals:       fmt.Sprintf("Transition to %s in %s department", role.Title, role.Department),
	}
	return m.FindMentors(profile, role.Title, 5)
}

// SuggestPlan builds a complete mentorship package for a transition from
// currentRole to targetRole.
func (m *Matcher) SuggestPlan(currentRole, targetRole string) (*Plan, error) {
	profile := Profile{
		CurrentRole: currentRole,
		Goals:       fmt.Sprintf("Career transition from %s to %s", currentRole, targetRole),
	}

	matches, err := m.FindMentors(profile, targetRole, 5)
	if err != nil {
		return nil, err
	}

	return &Plan{
		RecommendedMentors:   matches,
		MentorshipFocusAreas: focusAreas(targetRole),
		MeetingFrequency: MeetingFrequency{
			InitialPhase:     "Weekly for first month",
			DevelopmentPhase: "Bi-weekly for 3-6 months",
			MaintenancePhase: "Monthly for ongoing support",
			Duration:         "6-12 months typically",
		},
		DiscussionTopics:      discussionTopics(),
		SuccessMetrics:        successMetrics(),
		AlternativeMentorship: alternativeOptions(),
	}, nil
}

// scoreMentor weighs role alignment, career history overlap, expertise
// keywords and breadth of experience.
func scoreMentor(mentor *models.Mentor, profile Profile, targetRole string) float64 {
	score := 0.0

	mentorRole := strings.ToLower(mentor.CurrentJobRole)
	mentorPrevious := strings.ToLower(mentor.PreviousRoles)
	mentorExpertise := strings.ToLower(mentor.Expertise)

	userRole := strings.ToLower(profile.CurrentRole)
	userGoals := strings.ToLower(profile.Goals)

	if targetRole != "" {
		target := strings.ToLower(targetRole)
		if strings.Contains(mentorRole, target) {
			score += 30
		}
		if strings.Contains(mentorPrevious, target) {
			score += 20
		}
		for _, kw := range roleKeywords(targetRole) {
			if strings.Contains(mentorExpertise, kw) {
				score += 5
			}
		}
	}

	if userRole != "" && mentorPrevious != "" {
		for _, kw := range roleKeywords(profile.CurrentRole) {
			if strings.Contains(mentorPrevious, kw) {
				score += 10
			}
		}
	}

	if userGoals != "" {
		for _, kw := range careerKeywords(userGoals) {
			if strings.Contains(mentorExpertise, kw) {
				score += 8
			}
		}
	}

	if len(strings.Split(mentorPrevious, ",")) > 2 {
		score += 5
	}

	return score
}

var roleTerms = []string{
	"engineer", "manager", "director", "analyst", "scientist",
	"product", "data", "software", "senior", "lead", "principal",
	"marketing", "sales", "operations", "finance", "hr",
}

// roleKeywords yields the full role name plus any recognized key terms
// appearing in it.
func roleKeywords(role string) []string {
	r := strings.ToLower(role)
	keywords := []string{r}
	for _, term := range roleTerms {
		if strings.Contains(r, term) {
			keywords = append(keywords, term)
		}
	}
	return keywords
}

var careerTerms = []string{
	"leadership", "management", "technical", "strategy", "growth",
	"transition", "development", "skills", "experience", "mentorship",
}

func careerKeywords(text string) []string {
	t := strings.ToLower(text)
	var found []string
	for _, kw := range careerTerms {
		if strings.Contains(t, kw) {
			found = append(found, kw)
		}
	}
	return found
}

func matchReasons(mentor *models.Mentor, profile Profile, targetRole string) []string {
	var reasons []string

	if targetRole != "" {
		target := strings.ToLower(targetRole)
		if strings.Contains(strings.ToLower(mentor.CurrentJobRole), target) {
			reasons = append(reasons, "Currently working as "+mentor.CurrentJobRole)
		} else if strings.Contains(strings.ToLower(mentor.PreviousRoles), target) {
			reasons = append(reasons, "Has experience in similar role: "+targetRole)
		}
	}

	if profile.CurrentRole != "" &&
		strings.Contains(strings.ToLower(mentor.PreviousRoles), strings.ToLower(profile.CurrentRole)) {
		reasons = append(reasons, "Successfully transitioned from "+profile.CurrentRole)
	}

	if profile.Goals != "" {
		goalKeywords := careerKeywords(profile.Goals)
		expertiseKeywords := careerKeywords(mentor.Expertise)
		common := intersect(goalKeywords, expertiseKeywords)
		if len(common) > 0 {
			reasons = append(reasons, "Expertise in "+strings.Join(common, ", "))
		}
	}

	if len(reasons) == 0 {
		reasons = append(reasons, "Experienced professional with relevant background")
		if mentor.Expertise != "" {
			reasons = append(reasons, "Strong expertise in "+mentor.Expertise)
		}
	}
	return reasons
}

func intersect(a, b []string) []string {
	set := make(map[string]bool, len(b))
	for _, s := range b {
		set[s] = true
	}
	var common []string
	for _, s := range a {
		if set[s] {
			common = append(common, s)
		}
	}
	return common
}

func focusAreas(targetRole string) []string {
	areas := []string{
		"Career transition strategy and planning",
		"Skill gap analysis and development",
		"Industry insights and market trends",
		"Networking and relationship building",
	}
	target := strings.ToLower(targetRole)
	if strings.Contains(target, "manager") {
		areas = append(areas,
			"Leadership development",
			"Team management skills",
			"Strategic thinking",
		)
	}
	if strings.Contains(target, "senior") {
		areas = append(areas,
			"Technical expertise and thought leadership",
			"Cross-functional collaboration",
			"Mentoring others",
		)
	}
	return areas
}

func discussionTopics() []string {
	return []string{
		"Career goals and timeline",
		"Current challenges and obstacles",
		"Skills assessment and development plan",
		"Industry networking opportunities",
		"Interview preparation and job search strategy",
		"Day-in-the-life of target role",
		"Company culture and organizational dynamics",
		"Personal branding and visibility",
	}
}

func successMetrics() []string {
	return []string{
		"Clear progress on skill development goals",
		"Expanded professional network",
		"Increased confidence in target role capabilities",
		"Successful completion of stretch assignments",
		"Positive feedback from current manager",
		"Movement toward target role (promotion, transfer, or external opportunity)",
	}
}

func alternativeOptions() []AlternativeOption {
	return []AlternativeOption{
		{
			Type:        "Peer Mentoring",
			Description: "Partner with colleagues at similar levels for mutual support",
			Benefits:    []string{"Shared learning experience", "Mutual accountability", "Cost-effective"},
		},
		{
			Type:        "Group Mentoring",
			Description: "Join or form mentoring circles with multiple participants",
			Benefits:    []string{"Diverse perspectives", "Network building", "Shared resources"},
		},
		{
			Type:        "Reverse Mentoring",
			Description: "Mentor junior colleagues while learning from them",
			Benefits:    []string{"Leadership skill development", "Fresh perspectives", "Giving back"},
		},
		{
			Type:        "External Mentoring",
			Description: "Find mentors outside the organization through professional networks",
			Benefits:    []string{"Industry insights", "Objective perspective", "Broader network"},
		},
	}
}
