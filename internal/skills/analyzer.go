package skills

import (
	"errors"
	"fmt"
	"math"
	"strings"

	"go.uber.org/zap"

	"personapath/internal/repository"
)

// ErrRoleNotFound is returned when the target role is not in the catalog.
var ErrRoleNotFound = errors.New("target role not found")

type category struct {
	name   string
	skills []string
}

// skillCategories is an ordered list so a skill matching several
// categories always lands in the same one.
var skillCategories = []category{
	{"Technical", []string{
		"Python", "Java", "JavaScript", "SQL", "React", "Node.js",
		"AWS", "Docker", "Kubernetes", "Git", "API Development",
		"Machine Learning", "Data Analysis", "HTML/CSS",
	}},
	{"Business", []string{
		"Project Management", "Agile/Scrum", "Strategic Planning",
		"Business Analysis", "Market Research", "Financial Analysis",
		"Process Improvement", "Vendor Management",
	}},
	{"Design", []string{
		"UI/UX Design", "Figma", "Photoshop", "Illustrator",
		"User Research", "Wireframing", "Prototyping", "Design Systems",
	}},
	{"Leadership", []string{
		"Team Management", "Mentoring", "Communication", "Delegation",
		"Performance Management", "Change Management", "Decision Making",
		"Conflict Resolution",
	}},
	{"Analytics", []string{
		"Tableau", "Power BI", "Excel", "Statistics", "Data Visualization",
		"A/B Testing", "Metrics Analysis", "Reporting",
	}},
}

// Recommendation is a learning suggestion for one missing skill.
type Recommendation struct {
	Skill     string   `json:"skill"`
	Type      string   `json:"type"`
	Action    string   `json:"action"`
	Resources []string `json:"resources"`
	Timeline  string   `json:"timeline"`
	Priority  string   `json:"priority"`
}

// GapAnalysis compares a skill set against a role's requirements.
type GapAnalysis struct {
	TargetRole          string              `json:"target_role"`
	MatchPercentage     float64             `json:"match_percentage"`
	MatchingSkills      []string            `json:"matching_skills"`
	MissingSkills       []string            `json:"missing_skills"`
	CategorizedGaps     map[string][]string `json:"categorized_gaps"`
	Recommendations     []Recommendation    `json:"recommendations"`
	TotalRequiredSkills int                 `json:"total_required_skills"`
	SkillsToDevelop     int                 `json:"skills_to_develop"`
}

// Milestone groups recommendations sharing a timeline.
type Milestone struct {
	Milestone string   `json:"milestone"`
	Timeline  string   `json:"timeline"`
	Skills    []string `json:"skills"`
	Actions   []string `json:"actions"`
}

// DevelopmentPlan is a gap analysis plus a phased learning plan.
type DevelopmentPlan struct {
	TargetRole          string              `json:"target_role"`
	CurrentMatch        string              `json:"current_match"`
	DevelopmentAreas    map[string][]string `json:"development_areas"`
	RecommendedTimeline string              `json:"recommended_timeline"`
	PrioritySkills      []string            `json:"priority_skills"`
	ActionItems         []Recommendation    `json:"action_items"`
	Milestones          []Milestone         `json:"milestones"`
}

// Analyzer computes skill gaps against the role catalog.
type Analyzer struct {
	roles  repository.RoleRepository
	logger *zap.Logger
}

func NewAnalyzer(roles repository.RoleRepository, logger *zap.Logger) *Analyzer {
	return &Analyzer{roles: roles, logger: logger}
}

// AnalyzeGap compares currentSkills against the named target role.
// Comparison is case-insensitive on trimmed skill names.
func (a *Analyzer) AnalyzeGap(currentSkills []string, targetRoleTitle string) (*GapAnalysis, error) {
	role, err := a.roles.GetByTitle(targetRoleTitle)
	if err != nil {
		return nil, err
	}
	if role == nil {
		return nil, fmt.Errorf("%w: %s", ErrRoleNotFound, targetRoleTitle)
	}

	required := ParseSkills(role.SkillsRequired)

	have := make(map[string]bool, len(currentSkills))
	for _, s := range currentSkills {
		have[strings.ToLower(strings.TrimSpace(s))] = true
	}

	matching := []string{}
	missing := []string{}
	for _, skill := range required {
		if have[strings.ToLower(skill)] {
			matching = append(matching, skill)
		} else {
			missing = append(missing, skill)
		}
	}

	totalRequired := len(required)
	denom := totalRequired
	if denom == 0 {
		denom = 1
	}
	matchPct := math.Round(float64(len(matching))/float64(denom)*1000) / 10

	return &GapAnalysis{
		TargetRole:          role.Title,
		MatchPercentage:     matchPct,
		MatchingSkills:      matching,
		MissingSkills:       missing,
		CategorizedGaps:     categorize(missing),
		Recommendations:     recommend(missing),
		TotalRequiredSkills: totalRequired,
		SkillsToDevelop:     len(missing),
	}, nil
}

// DevelopmentPlanFor wraps a gap analysis in a milestone plan.
func (a *Analyzer) DevelopmentPlanFor(currentSkills []string, targetRoleTitle string) (*DevelopmentPlan, error) {
	analysis, err := a.AnalyzeGap(currentSkills, targetRoleTitle)
	if err != nil {
		return nil, err
	}

	priority := analysis.MissingSkills
	if len(priority) > 3 {
		priority = priority[:3]
	}

	return &DevelopmentPlan{
		TargetRole:          analysis.TargetRole,
		CurrentMatch:        fmt.Sprintf("%.1f%%", analysis.MatchPercentage),
		DevelopmentAreas:    analysis.CategorizedGaps,
		RecommendedTimeline: developmentTimeline(len(analysis.MissingSkills)),
		PrioritySkills:      priority,
		ActionItems:         analysis.Recommendations,
		Milestones:          buildMilestones(analysis.Recommendations),
	}, nil
}

// ParseSkills splits a free-text skills field on the first delimiter
// found, in priority order, and strips bullet and numbering clutter.
func ParseSkills(text string) []string {
	text = strings.TrimSpace(text)
	if text == "" {
		return nil
	}

	parts := []string{text}
	for _, delim := range []string{",", ";", "\n", "•", "-"} {
		if strings.Contains(text, delim) {
			parts = strings.Split(text, delim)
			break
		}
	}

	var cleaned []string
	for _, p := range parts {
		s := strings.TrimSpace(p)
		s = strings.TrimLeft(s, "•-*0123456789. ")
		s = strings.TrimSpace(s)
		if len(s) > 1 {
			cleaned = append(cleaned, s)
		}
	}
	return cleaned
}

func categorize(skills []string) map[string][]string {
	categorized := make(map[string][]string)
	var other []string

	for _, skill := range skills {
		skillLower := strings.ToLower(skill)
		placed := false
		for _, cat := range skillCategories {
			for _, known := range cat.skills {
				knownLower := strings.ToLower(known)
				if strings.Contains(skillLower, knownLower) || strings.Contains(knownLower, skillLower) {
					categorized[cat.name] = append(categorized[cat.name], skill)
					placed = true
					break
				}
			}
			if placed {
				break
			}
		}
		if !placed {
			other = append(other, skill)
		}
	}

	if len(other) > 0 {
		categorized["Other"] = other
	}
	return categorized
}

func recommend(missing []string) []Recommendation {
	if len(missing) > 5 {
		missing = missing[:5]
	}

	recs := make([]Recommendation, 0, len(missing))
	for _, skill := range missing {
		s := strings.ToLower(skill)
		switch {
		case containsAny(s, "python", "java", "javascript", "sql"):
			recs = append(recs, Recommendation{
				Skill:     skill,
				Type:      "Technical",
				Action:    "Complete online coding course",
				Resources: []string{"Codecademy", "Coursera", "Udemy"},
				Timeline:  "2-3 months",
				Priority:  "High",
			})
		case containsAny(s, "project management", "agile", "scrum"):
			recs = append(recs, Recommendation{
				Skill:     skill,
				Type:      "Business",
				Action:    "Get certification",
				Resources: []string{"PMI", "Scrum.org", "Internal training"},
				Timeline:  "1-2 months",
				Priority:  "High",
			})
		case containsAny(s, "figma", "ux", "design"):
			recs = append(recs, Recommendation{
				Skill:     skill,
				Type:      "Design",
				Action:    "Take design course and build portfolio",
				Resources: []string{"Figma Academy", "Coursera UX courses"},
				Timeline:  "2-4 months",
				Priority:  "Medium",
			})
		default:
			recs = append(recs, Recommendation{
				Skill:     skill,
				Type:      "General",
				Action:    "Self-study and practice",
				Resources: []string{"Online tutorials", "Documentation", "Practice projects"},
				Timeline:  "1-3 months",
				Priority:  "Medium",
			})
		}
	}
	return recs
}

func containsAny(s string, subs ...string) bool {
	for _, sub := range subs {
		if strings.Contains(s, sub) {
			return true
		}
	}
	return false
}

func developmentTimeline(missingCount int) string {
	switch {
	case missingCount <= 2:
		return "2-3 months"
	case missingCount <= 4:
		return "4-6 months"
	case missingCount <= 6:
		return "6-9 months"
	default:
		return "9-12 months"
	}
}

// buildMilestones groups recommendations by timeline, preserving the
// order timelines first appear in.
func buildMilestones(recs []Recommendation) []Milestone {
	var order []string
	groups := make(map[string][]Recommendation)
	for _, rec := range recs {
		if _, seen := groups[rec.Timeline]; !seen {
			order = append(order, rec.Timeline)
		}
		groups[rec.Timeline] = append(groups[rec.Timeline], rec)
	}

	milestones := make([]Milestone, 0, len(order))
	for i, timeline := range order {
		group := groups[timeline]
		m := Milestone{
			Milestone: fmt.Sprintf("Milestone %d", i+1),
			Timeline:  timeline,
		}
		for _, rec := range group {
			m.Skills = append(m.Skills, rec.Skill)
			m.Actions = append(m.Actions, rec.Action)
		}
		milestones = append(milestones, m)
	}
	return milestones
}
