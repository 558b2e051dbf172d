package parsing

import (
	"regexp"
	"strings"
)

// Section extraction is a best-effort heuristic: it assumes heading keywords
// ("education", "projects", "experience", "skills") appear literally in the
// text and delimit each other. A resume whose layout does not match yields an
// empty list. Repeated or out-of-order headings can produce wrong slices;
// that limitation is inherited from the scoring model this reproduces and is
// deliberately not patched over.

var (
	educationSectionRe  = regexp.MustCompile(`(?is)education(.*?)(?:experience|projects|skills|$)`)
	projectsSectionRe   = regexp.MustCompile(`(?is)projects?(.*?)(?:experience|education|skills|$)`)
	experienceSectionRe = regexp.MustCompile(`(?is)experience(.*?)(?:education|projects|skills|$)`)

	// Bullet points, list numbering, and dashes delimit project entries.
	projectSplitRe = regexp.MustCompile(`[•\-*\d+.]`)
)

// Degree and institution markers that identify an education line.
var educationKeywords = []string{
	"bachelor", "master", "phd", "doctorate", "mba", "b.tech", "m.tech",
	"b.e", "m.e", "b.sc", "m.sc", "bca", "mca", "diploma",
	"computer science", "information technology", "engineering",
	"university", "college", "institute", "gpa", "cgpa", "percentage",
}

// Job-title markers that identify an experience line.
var experienceRoles = []string{"developer", "engineer", "analyst", "intern", "manager"}

// Plausible prose range for a project description fragment.
const (
	minProjectEntryLen = 20
	maxProjectEntryLen = 300
)

// sectionText returns the heading-delimited slice matched by re, including
// the heading itself, or "" when the heading is absent.
func sectionText(text string, re *regexp.Regexp) string {
	m := re.FindStringSubmatchIndex(text)
	if m == nil {
		return ""
	}
	// Slice up to the end of the captured body so the terminating heading is
	// not included.
	return text[m[0]:m[3]]
}

// extractEducation returns up to 5 education lines: lines inside the
// education section that carry a degree/institution keyword and are longer
// than 10 characters.
func extractEducation(text string) []string {
	section := sectionText(text, educationSectionRe)
	if section == "" {
		return nil
	}

	var entries []string
	seen := map[string]bool{}
	for _, line := range strings.Split(section, "\n") {
		trimmed := strings.TrimSpace(line)
		if len(trimmed) <= 10 {
			continue
		}
		lower := strings.ToLower(trimmed)
		if !containsAny(lower, educationKeywords) {
			continue
		}
		entry := Title(trimmed)
		if seen[entry] {
			continue
		}
		seen[entry] = true
		entries = append(entries, entry)
		if len(entries) == maxSectionEntries {
			break
		}
	}
	return entries
}

// extractProjects returns up to 5 project fragments: the projects section
// split on bullet/numbering delimiters, keeping fragments of plausible
// description length.
func extractProjects(text string) []string {
	section := sectionText(text, projectsSectionRe)
	if section == "" {
		return nil
	}

	var entries []string
	for _, fragment := range projectSplitRe.Split(section, -1) {
		trimmed := strings.TrimSpace(fragment)
		if len(trimmed) <= minProjectEntryLen || len(trimmed) >= maxProjectEntryLen {
			continue
		}
		entries = append(entries, Title(trimmed))
		if len(entries) == maxSectionEntries {
			break
		}
	}
	return entries
}

// extractExperience returns up to 5 experience lines: lines inside the
// experience section that mention a job-title keyword and are longer than 10
// characters.
func extractExperience(text string) []string {
	section := sectionText(text, experienceSectionRe)
	if section == "" {
		return nil
	}

	var entries []string
	seen := map[string]bool{}
	for _, line := range strings.Split(section, "\n") {
		trimmed := strings.TrimSpace(line)
		if len(trimmed) <= 10 {
			continue
		}
		lower := strings.ToLower(trimmed)
		if !containsAny(lower, experienceRoles) {
			continue
		}
		entry := Title(trimmed)
		if seen[entry] {
			continue
		}
		seen[entry] = true
		entries = append(entries, entry)
		if len(entries) == maxSectionEntries {
			break
		}
	}
	return entries
}

func containsAny(s string, terms []string) bool {
	for _, term := range terms {
		if strings.Contains(s, term) {
			return true
		}
	}
	return false
}
