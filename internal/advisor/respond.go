package advisor

import (
	"fmt"
	"strconv"
	"strings"

	"personapath/internal/models"
)

// splitSkills breaks a comma-joined skills_required value into trimmed items.
func splitSkills(skills string) []string {
	parts := strings.Split(skills, ",")
	out := make([]string, 0, len(parts))
	for _, p := range parts {
		if s := strings.TrimSpace(p); s != "" {
			out = append(out, s)
		}
	}
	return out
}

// formatMoney renders 120000 as "$120,000".
func formatMoney(v int64) string {
	var b strings.Builder
	if v < 0 {
		b.WriteByte('-')
		v = -v
	}
	s := strconv.FormatInt(v, 10)
	b.WriteByte('$')
	n := len(s)
	for i, r := range s {
		if i > 0 && (n-i)%3 == 0 {
			b.WriteByte(',')
		}
		b.WriteRune(r)
	}
	return b.String()
}

func bulletList(items []string) string {
	var b strings.Builder
	for _, item := range items {
		b.WriteString("- ")
		b.WriteString(item)
		b.WriteByte('\n')
	}
	return strings.TrimRight(b.String(), "\n")
}

// databaseResponse renders a type-specific answer from a role record.
func databaseResponse(queryType QueryType, role *models.JobRole) string {
	skills := splitSkills(role.SkillsRequired)

	switch queryType {
	case QuerySalary:
		return fmt.Sprintf(`**%s - Salary Information**

Based on internal data for %s positions:

**Salary Range**: %s - %s annually
**Department**: %s
**Level**: %s

The compensation reflects the %s level position in our %s department. This range is based on current market rates and internal compensation bands.

*For specific salary discussions, please consult with HR or your manager.*`,
			role.Title, role.Title, formatMoney(role.SalaryMin), formatMoney(role.SalaryMax),
			role.Department, role.Level, role.Level, role.Department)

	case QuerySkills:
		core := skills
		extra := []string{}
		if len(skills) > 5 {
			core = skills[:5]
			extra = skills[5:]
		}
		resp := fmt.Sprintf(`**%s - Required Skills & Qualifications**

For the %s position in %s, you'll need:

**Core Skills**:
%s`, role.Title, role.Title, role.Department, bulletList(core))
		if len(extra) > 0 {
			resp += fmt.Sprintf(`

**Additional Requirements**:
%s`, bulletList(extra))
		}
		resp += `

**Development Focus**: Consider strengthening these skills through internal training programs, online courses, or practical projects.

**Pro Tip**: Focus on the top 3-4 skills first, then gradually build the others through hands-on experience.`
		return resp

	case QueryProgression:
		highlight := "core skills"
		if len(skills) >= 2 {
			highlight = skills[0] + ", " + skills[1]
		} else if len(skills) == 1 {
			highlight = skills[0]
		}
		return fmt.Sprintf(`**%s - Career Progression & Future Scope**

**Current Position**: %s (%s level)
**Department**: %s

**Growth Opportunities**:
- Next Level: Senior roles in %s
- Lateral Moves: Related positions across departments
- Leadership Track: Team lead or management roles
- Specialization: Deep expertise in core skills

**Future Scope**:
The %s role offers excellent growth potential in %s. With the required skills (%s), you can advance to senior positions or explore specialized tracks.

*Connect with mentors in %s for personalized career guidance.*`,
			role.Title, role.Title, role.Level, role.Department, role.Department,
			role.Title, role.Department, highlight, role.Department)

	case QueryTransition:
		focus := role.SkillsRequired
		if len(skills) > 4 {
			focus = strings.Join(skills[:4], ", ")
		}
		return fmt.Sprintf(`**Transitioning to %s**

**Target Position**: %s | %s | %s
**Salary Range**: %s - %s

**What the role involves**:
%s

**Skills to focus on first**: %s

**Suggested Approach**:
- Map your current skills against the requirements above and close the biggest gaps first
- Take on projects that let you practice the target role's core skills
- Find a mentor who has made a similar move
- Talk to HR about internal mobility into %s

*Use the skill-gap analysis and mentor recommendation tools for a personalized plan.*`,
			role.Title, role.Title, role.Department, role.Level,
			formatMoney(role.SalaryMin), formatMoney(role.SalaryMax),
			role.Description, focus, role.Department)

	case QueryResponsibilities:
		daily := "other core technologies"
		if len(skills) >= 2 {
			daily = skills[0] + " and " + skills[1]
		} else if len(skills) == 1 {
			daily = skills[0]
		}
		return fmt.Sprintf(`**%s - Role Responsibilities**

**Position**: %s | %s | %s

**Key Responsibilities**:
%s

**Daily Tasks**: Based on this role, you'll be working with %s.

**Success Metrics**: Performance in this role is typically measured by project delivery, skill development, and team collaboration.

**Next Steps**: Speak with current %ss in %s to get firsthand insights into the day-to-day experience.`,
			role.Title, role.Title, role.Department, role.Level,
			role.Description, daily, role.Title, role.Department)

	default: // general overview, also used for mentorship questions about a known role
		listed := skills
		if len(listed) > 6 {
			listed = listed[:6]
		}
		return fmt.Sprintf(`**%s - Complete Role Overview**

**Position**: %s
**Department**: %s
**Level**: %s
**Salary**: %s - %s

**Role Description**:
%s

**Required Skills**:
%s

**Why Consider This Role**:
- Strong growth potential in %s
- Competitive compensation
- Opportunity to work with cutting-edge technologies/processes

**Next Steps**: Connect with our HR team or explore mentorship opportunities to learn more about this career path.`,
			role.Title, role.Title, role.Department, role.Level,
			formatMoney(role.SalaryMin), formatMoney(role.SalaryMax),
			role.Description, bulletList(listed), role.Department)
	}
}

const mentorshipFallback = `**Mentorship Opportunities**

**Internal Mentorship Program**:
Our organization offers structured mentorship programs to help you navigate your career journey.

**How to Connect**:
- Contact HR to join the mentorship program
- Network with colleagues in your target roles
- Attend internal career development sessions
- Join department-specific communities

**Self-Development**:
- Identify specific skills you want to develop
- Set clear career goals with your manager
- Take advantage of internal training resources

*For personalized guidance, please reach out to HR or your direct manager.*`

const generalFallback = `**Career Guidance**

Thank you for your career question. While I don't have specific information about that particular role or topic in our current knowledge base, here are some internal resources that can help:

**Internal Resources**:
- HR Career Development Team
- Internal Job Portal
- Mentorship Program
- Department Career Guides

**Recommended Next Steps**:
- Schedule time with your HR representative
- Connect with colleagues in your area of interest
- Explore internal training opportunities
- Join relevant professional communities within the organization

**Pro Tip**: Networking with current employees in your target role is often the best way to get authentic insights about career paths and requirements.

*Is there a specific role or career aspect you'd like me to help you explore further?*`

// fallbackResponse is used when neither the role catalog nor an LLM
// provider produced an answer.
func fallbackResponse(normalizedQuery string) string {
	if strings.Contains(normalizedQuery, "mentor") {
		return mentorshipFallback
	}
	return generalFallback
}
