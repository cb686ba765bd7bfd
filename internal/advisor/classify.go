package advisor

import (
	"regexp"
	"strings"
)

// QueryType is the assistant's coarse classification of a career question.
type QueryType string

const (
	QuerySalary           QueryType = "salary"
	QuerySkills           QueryType = "skills"
	QueryProgression      QueryType = "career_progression"
	QueryTransition       QueryType = "career_transition"
	QueryResponsibilities QueryType = "responsibilities"
	QueryMentorship       QueryType = "mentorship"
	QueryGeneral          QueryType = "general"
)

var queryTypeKeywords = []struct {
	qt       QueryType
	keywords []string
}{
	{QuerySalary, []string{"salary", "pay", "compensation", "money"}},
	{QuerySkills, []string{"skills", "requirements", "qualifications", "need"}},
	{QueryProgression, []string{"future", "career path", "progression", "growth", "next"}},
	{QueryTransition, []string{"switch", "transition", "change", "move", "from"}},
	{QueryResponsibilities, []string{"responsibilities", "duties", "day-to-day", "tasks"}},
	{QueryMentorship, []string{"mentor", "mentorship", "guidance"}},
}

// ClassifyQueryType buckets a normalized query by keyword sets. The first
// matching bucket wins, so salary questions about a transition still count
// as salary questions.
func ClassifyQueryType(normalizedQuery string) QueryType {
	for _, entry := range queryTypeKeywords {
		for _, kw := range entry.keywords {
			if strings.Contains(normalizedQuery, kw) {
				return entry.qt
			}
		}
	}
	return QueryGeneral
}

var (
	transitionWords = []string{"transition", "switch", "move", "change", "become", "from"}

	// Target-role patterns, tried in order. The capture stops at the end of
	// the sentence or at a trailing "role"/"position".
	targetRolePatterns = []*regexp.Regexp{
		regexp.MustCompile(`(?:switch to|transition to|move to|become|to)\s+(?:a|an)?\s*([a-z\s/]+?)(?:\?|$|role|position)`),
	}

	currentRolePattern = regexp.MustCompile(`(?:from|current)\s+(.+?)\s+(?:to|become|switch|transition)`)
)

// identifyRole resolves the job-role title a normalized query refers to.
// Transition queries prioritize the target role; otherwise the longest
// matching keyword anywhere in the query wins.
func (idx *roleIndex) identifyRole(normalizedQuery string) string {
	isTransition := false
	for _, w := range transitionWords {
		if strings.Contains(normalizedQuery, w) {
			isTransition = true
			break
		}
	}

	if isTransition {
		for _, pattern := range targetRolePatterns {
			if m := pattern.FindStringSubmatch(normalizedQuery); m != nil {
				if title := idx.matchLoose(strings.TrimSpace(m[1])); title != "" {
					return title
				}
			}
		}
	}

	if title := idx.matchIn(normalizedQuery); title != "" {
		return title
	}

	if m := currentRolePattern.FindStringSubmatch(normalizedQuery); m != nil {
		if title := idx.matchLoose(strings.TrimSpace(m[1])); title != "" {
			return title
		}
	}

	return ""
}
