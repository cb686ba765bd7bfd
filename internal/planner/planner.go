package planner

import (
	"encoding/json"
	"fmt"
	"strings"

	"go.uber.org/zap"

	"personapath/internal/models"
	"personapath/internal/repository"
)

// careerLadders holds the known promotion edges per department. Roles
// outside these ladders get a synthesized path based on seniority level.
var careerLadders = map[string]map[string][]string{
	"Engineering": {
		"Junior Developer":    {"Senior Developer", "Full Stack Developer"},
		"Senior Developer":    {"Team Lead", "Staff Engineer", "Engineering Manager"},
		"Team Lead":           {"Engineering Manager", "Principal Engineer"},
		"Engineering Manager": {"Director of Engineering", "VP Engineering"},
		"Staff Engineer":      {"Principal Engineer", "Distinguished Engineer"},
		"Principal Engineer":  {"Distinguished Engineer", "Engineering Director"},
	},
	"Product": {
		"Product Analyst":           {"Associate Product Manager"},
		"Associate Product Manager": {"Product Manager"},
		"Product Manager":           {"Senior Product Manager", "Group Product Manager"},
		"Senior Product Manager":    {"Principal Product Manager", "Product Director"},
		"Group Product Manager":     {"Product Director", "VP Product"},
		"Product Director":          {"VP Product", "Chief Product Officer"},
	},
	"Data": {
		"Data Analyst":          {"Senior Data Analyst", "Data Scientist"},
		"Senior Data Analyst":   {"Lead Data Analyst", "Data Scientist"},
		"Data Scientist":        {"Senior Data Scientist", "ML Engineer"},
		"Senior Data Scientist": {"Principal Data Scientist", "Data Science Manager"},
		"ML Engineer":           {"Senior ML Engineer", "ML Engineering Manager"},
		"Data Science Manager":  {"Director of Data Science", "VP Analytics"},
	},
	"Marketing": {
		"Marketing Specialist":     {"Senior Marketing Specialist", "Marketing Manager"},
		"Marketing Manager":        {"Senior Marketing Manager", "Marketing Director"},
		"Senior Marketing Manager": {"Marketing Director", "VP Marketing"},
		"Marketing Director":       {"VP Marketing", "Chief Marketing Officer"},
	},
	"Sales": {
		"Sales Representative": {"Senior Sales Rep", "Account Manager"},
		"Account Manager":      {"Senior Account Manager", "Sales Manager"},
		"Sales Manager":        {"Senior Sales Manager", "Sales Director"},
		"Sales Director":       {"VP Sales", "Chief Revenue Officer"},
	},
}

// Step is one transition in a roadmap.
type Step struct {
	StepNumber          int      `json:"step_number"`
	FromRole            string   `json:"from_role"`
	ToRole              string   `json:"to_role"`
	EstimatedDuration   string   `json:"estimated_duration"`
	KeyActivities       []string `json:"key_activities"`
	SuccessMetrics      []string `json:"success_metrics"`
	PotentialChallenges []string `json:"potential_challenges"`
}

// Roadmap is a full career plan from a current role to a target role.
type Roadmap struct {
	CurrentRole          string              `json:"current_role"`
	TargetRole           string              `json:"target_role"`
	Path                 []string            `json:"path"`
	TotalSteps           int                 `json:"total_steps"`
	EstimatedTimeline    string              `json:"estimated_timeline"`
	Steps                []Step              `json:"steps"`
	LateralOpportunities []string            `json:"lateral_opportunities"`
	SkillRequirements    map[string][]string `json:"skill_requirements"`
	Recommendations      []string            `json:"recommendations"`
}

// Planner builds career roadmaps and records them per user.
type Planner struct {
	paths  repository.CareerPathRepository
	logger *zap.Logger
}

func NewPlanner(paths repository.CareerPathRepository, logger *zap.Logger) *Planner {
	return &Planner{paths: paths, logger: logger}
}

// GenerateRoadmap builds a roadmap between two roles. The result is
// persisted for the user; a persistence failure does not fail the call.
func (p *Planner) GenerateRoadmap(userID int64, currentRole, targetRole string) (*Roadmap, error) {
	currentRole = strings.TrimSpace(currentRole)
	targetRole = strings.TrimSpace(targetRole)
	if currentRole == "" || targetRole == "" {
		return nil, fmt.Errorf("current and target roles are required")
	}

	path := findLadderPath(currentRole, targetRole)
	if path == nil {
		path = alternativePath(currentRole, targetRole)
	}

	roadmap := &Roadmap{
		CurrentRole:          currentRole,
		TargetRole:           targetRole,
		Path:                 path,
		TotalSteps:           len(path) - 1,
		EstimatedTimeline:    estimateTimeline(path),
		Steps:                buildSteps(path),
		LateralOpportunities: lateralMoves(currentRole),
		SkillRequirements:    pathSkillRequirements(path),
		Recommendations:      pathRecommendations(),
	}

	if err := p.save(userID, roadmap); err != nil {
		p.logger.Warn("failed to persist career path", zap.Int64("user_id", userID), zap.Error(err))
	}

	return roadmap, nil
}

func (p *Planner) save(userID int64, roadmap *Roadmap) error {
	steps, err := json.Marshal(roadmap.Steps)
	if err != nil {
		return err
	}
	return p.paths.Save(&models.CareerPath{
		UserID:           userID,
		CurrentJobRole:   roadmap.CurrentRole,
		TargetJobRole:    roadmap.TargetRole,
		RecommendedSteps: string(steps),
		TimelineMonths:   timelineToMonths(roadmap.EstimatedTimeline),
	})
}

// History returns previously generated roadmaps for the user.
func (p *Planner) History(userID int64) ([]*models.CareerPath, error) {
	return p.paths.GetByUser(userID)
}

// findLadderPath searches the department ladders with BFS, starting from
// whichever department contains the current role.
func findLadderPath(current, target string) []string {
	if current == target {
		return []string{current}
	}
	for _, ladder := range careerLadders {
		if _, ok := ladder[current]; !ok {
			continue
		}
		if path := bfs(current, target, ladder); path != nil {
			return path
		}
	}
	return nil
}

func bfs(start, end string, edges map[string][]string) []string {
	type node struct {
		role string
		path []string
	}
	queue := []node{{start, []string{start}}}
	visited := map[string]bool{start: true}

	for len(queue) > 0 {
		cur := queue[0]
		queue = queue[1:]

		for _, next := range edges[cur.role] {
			if next == end {
				return append(append([]string{}, cur.path...), next)
			}
			if !visited[next] {
				visited[next] = true
				path := append(append([]string{}, cur.path...), next)
				queue = append(queue, node{next, path})
			}
		}
	}
	return nil
}

// alternativePath synthesizes a path when the ladders have no route,
// inserting intermediate roles for upward moves and a transition period
// for lateral or downward moves.
func alternativePath(current, target string) []string {
	currentLevel := roleLevel(current)
	targetLevel := roleLevel(target)

	path := []string{current}
	switch {
	case targetLevel > currentLevel:
		path = append(path, intermediateRoles(current, target)...)
	case targetLevel < currentLevel:
		path = append(path, fmt.Sprintf("Transition Period (Skill building and networking in %s domain)", baseRole(target)))
	}
	return append(path, target)
}

// roleLevel estimates seniority from title keywords, 1 (junior) to 7
// (executive), defaulting to 2 for unmodified titles.
func roleLevel(role string) int {
	r := strings.ToLower(role)
	switch {
	case containsAny(r, "ceo", "cto", "cpo", "chief"):
		return 7
	case containsAny(r, "vp", "vice president"):
		return 6
	case strings.Contains(r, "director"):
		return 5
	case containsAny(r, "manager", "lead"):
		return 4
	case containsAny(r, "senior", "sr", "principal"):
		return 3
	case containsAny(r, "associate", "jr", "junior"):
		return 1
	default:
		return 2
	}
}

func containsAny(s string, subs ...string) bool {
	for _, sub := range subs {
		if strings.Contains(s, sub) {
			return true
		}
	}
	return false
}

func intermediateRoles(current, target string) []string {
	currentLevel := roleLevel(current)
	targetLevel := roleLevel(target)
	base := baseRole(current)

	var roles []string
	for level := currentLevel + 1; level < targetLevel; level++ {
		roles = append(roles, roleAtLevel(base, level))
	}
	return roles
}

// baseRole strips seniority modifiers from a title.
func baseRole(role string) string {
	r := strings.ToLower(role)
	for _, mod := range []string{"senior", "sr", "junior", "jr", "associate", "principal", "staff", "lead", "manager", "director"} {
		r = strings.ReplaceAll(r, mod, "")
	}
	return titleCase(strings.TrimSpace(r))
}

func titleCase(s string) string {
	words := strings.Fields(s)
	for i, w := range words {
		words[i] = strings.ToUpper(w[:1]) + w[1:]
	}
	return strings.Join(words, " ")
}

func roleAtLevel(base string, level int) string {
	switch {
	case level >= 6:
		return "VP " + base
	case level == 5:
		return base + " Director"
	case level == 4:
		return base + " Manager"
	case level == 3:
		return "Senior " + base
	case level <= 1:
		return "Junior " + base
	default:
		return base
	}
}

func estimateTimeline(path []string) string {
	switch steps := len(path) - 1; {
	case steps <= 1:
		return "6-12 months"
	case steps <= 2:
		return "1-2 years"
	case steps <= 3:
		return "2-4 years"
	default:
		return "4-6 years"
	}
}

func timelineToMonths(timeline string) int {
	switch {
	case strings.Contains(timeline, "6-12"):
		return 9
	case strings.Contains(timeline, "1-2 years"):
		return 18
	case strings.Contains(timeline, "2-4 years"):
		return 36
	case strings.Contains(timeline, "4-6 years"):
		return 60
	default:
		return 12
	}
}

func buildSteps(path []string) []Step {
	steps := make([]Step, 0, len(path)-1)
	for i := 0; i < len(path)-1; i++ {
		from, to := path[i], path[i+1]
		steps = append(steps, Step{
			StepNumber:          i + 1,
			FromRole:            from,
			ToRole:              to,
			EstimatedDuration:   stepDuration(from, to),
			KeyActivities:       stepActivities(to),
			SuccessMetrics:      successMetrics(to),
			PotentialChallenges: stepChallenges(from, to),
		})
	}
	return steps
}

func stepDuration(from, to string) string {
	switch jump := roleLevel(to) - roleLevel(from); {
	case jump <= 1:
		return "6-18 months"
	case jump == 2:
		return "18-30 months"
	default:
		return "2-4 years"
	}
}

func stepActivities(to string) []string {
	activities := []string{
		"Demonstrate consistent high performance in current role",
		"Seek stretch assignments and additional responsibilities",
		"Build relationships with stakeholders and leadership",
		"Develop skills required for target role",
	}
	toLower := strings.ToLower(to)
	if strings.Contains(toLower, "manager") {
		activities = append(activities,
			"Gain experience managing projects or people",
			"Develop leadership and communication skills",
			"Learn budget and resource management",
		)
	}
	if strings.Contains(toLower, "senior") {
		activities = append(activities,
			"Become subject matter expert in domain",
			"Mentor junior team members",
			"Lead technical initiatives",
		)
	}
	return activities
}

func successMetrics(role string) []string {
	metrics := []string{
		"Consistent performance reviews meeting or exceeding expectations",
		"Recognition from peers and leadership",
		"Successful completion of key projects",
	}
	if strings.Contains(strings.ToLower(role), "manager") {
		metrics = append(metrics,
			"Team performance and retention metrics",
			"Successful delivery of team objectives",
			"Positive feedback from direct reports",
		)
	}
	return metrics
}

func stepChallenges(from, to string) []string {
	challenges := []string{
		"Competition from other qualified candidates",
		"Need to develop new skills while maintaining current performance",
		"Balancing current responsibilities with career development",
	}
	if strings.Contains(strings.ToLower(to), "manager") && !strings.Contains(strings.ToLower(from), "manager") {
		challenges = append(challenges, "Transition from individual contributor to people management")
	}
	return challenges
}

// lateralMoves suggests up to three sideways moves at a comparable level.
func lateralMoves(currentRole string) []string {
	base := baseRole(currentRole)
	level := roleLevel(currentRole)

	candidates := []string{
		"Product Manager", "Project Manager", "Business Analyst",
		"Data Analyst", "Marketing Manager", "Operations Manager",
	}

	var moves []string
	for _, role := range candidates {
		if role == base {
			continue
		}
		switch level {
		case 3:
			moves = append(moves, "Senior "+role)
		case 4:
			moves = append(moves, role+" Lead")
		default:
			moves = append(moves, role)
		}
		if len(moves) == 3 {
			break
		}
	}
	return moves
}

func pathSkillRequirements(path []string) map[string][]string {
	reqs := make(map[string][]string, len(path))
	for _, role := range path {
		reqs[role] = typicalSkills(role)
	}
	return reqs
}

func typicalSkills(role string) []string {
	r := strings.ToLower(role)
	switch {
	case strings.Contains(r, "engineer") || strings.Contains(r, "developer"):
		return []string{"Programming", "System Design", "Problem Solving", "Code Review"}
	case strings.Contains(r, "product"):
		return []string{"Product Strategy", "User Research", "Data Analysis", "Stakeholder Management"}
	case strings.Contains(r, "data"):
		return []string{"SQL", "Python/R", "Statistics", "Data Visualization"}
	case strings.Contains(r, "manager"):
		return []string{"Leadership", "Communication", "Project Management", "Team Building"}
	default:
		return []string{"Communication", "Problem Solving", "Collaboration", "Adaptability"}
	}
}

func pathRecommendations() []string {
	return []string{
		"Create a development plan with clear milestones and timelines",
		"Identify mentors who have successfully made similar transitions",
		"Seek out stretch assignments that align with your target role",
		"Build a network of contacts in your target domain",
		"Regularly review and adjust your plan based on feedback and opportunities",
	}
}
