package advisor

import (
	"sort"
	"strings"

	"personapath/internal/models"
)

// keywordEntry maps a lowercase search keyword to an official role title.
type keywordEntry struct {
	keyword string
	title   string
}

// roleIndex holds the keyword entries in deterministic match order:
// longest keyword first, so "software developer" wins over "developer".
type roleIndex struct {
	entries []keywordEntry
}

// buildRoleIndex derives the keyword mapping from the role catalog. Every
// title maps to itself; well-known titles additionally get the colloquial
// variations employees actually type.
func buildRoleIndex(roles []*models.JobRole) *roleIndex {
	seen := make(map[string]string)
	add := func(keyword, title string) {
		keyword = strings.ToLower(strings.TrimSpace(keyword))
		if keyword == "" {
			return
		}
		if _, ok := seen[keyword]; !ok {
			seen[keyword] = title
		}
	}

	for _, role := range roles {
		title := strings.ToLower(role.Title)
		add(title, role.Title)

		switch {
		case strings.Contains(title, "software") && strings.Contains(title, "developer"):
			add("developer", role.Title)
			add("programmer", role.Title)
			add("software engineer", role.Title)
		case strings.Contains(title, "data scientist"):
			add("data science", role.Title)
			add("ml engineer", role.Title)
		case strings.Contains(title, "data analyst"):
			add("analyst", role.Title)
			add("data analysis", role.Title)
		case strings.Contains(title, "ui/ux"):
			add("designer", role.Title)
			add("ux designer", role.Title)
			add("ui designer", role.Title)
		case strings.Contains(title, "product manager"):
			add("pm", role.Title)
			add("product management", role.Title)
		case strings.Contains(title, "cashier"):
			add("retail", role.Title)
			add("cash", role.Title)
		}
	}

	entries := make([]keywordEntry, 0, len(seen))
	for keyword, title := range seen {
		entries = append(entries, keywordEntry{keyword: keyword, title: title})
	}
	sort.Slice(entries, func(i, j int) bool {
		if len(entries[i].keyword) != len(entries[j].keyword) {
			return len(entries[i].keyword) > len(entries[j].keyword)
		}
		return entries[i].keyword < entries[j].keyword
	})

	return &roleIndex{entries: entries}
}

// matchIn returns the official title of the first keyword contained in the
// given text, or "" when nothing matches.
func (idx *roleIndex) matchIn(text string) string {
	for _, e := range idx.entries {
		if strings.Contains(text, e.keyword) {
			return e.title
		}
	}
	return ""
}

// matchLoose additionally accepts the text being contained in a keyword,
// which catches truncated fragments captured by the transition regexes.
func (idx *roleIndex) matchLoose(text string) string {
	if text == "" {
		return ""
	}
	for _, e := range idx.entries {
		if strings.Contains(text, e.keyword) || strings.Contains(e.keyword, text) {
			return e.title
		}
	}
	return ""
}
