// Package parsing turns normalized resume text into a structured Profile:
// skills, ATS keywords, best-effort section extracts, contact-presence flags,
// and basic statistics. Parsing never fails on well-formed text; a missing
// section yields an empty list, not an error.
package parsing

import (
	"regexp"
	"sort"
	"strings"

	"github.com/careernexus/career-engine/internal/taxonomy"
)

// Per-category entry caps. This is a display-quantity policy, not a
// completeness guarantee.
const maxSectionEntries = 5

// Stats holds basic counts about the parsed resume.
type Stats struct {
	WordCount      int  `json:"word_count"`
	SkillsCount    int  `json:"skills_count"`
	KeywordsCount  int  `json:"keywords_count"`
	HasContactInfo bool `json:"has_contact_info"`
}

// Profile is the structured result of parsing one resume. It is created once
// per document and consumed read-only by the scorer, matcher, and gap
// analyzer; nothing mutates it after creation.
type Profile struct {
	RawText    string   `json:"-"`
	Skills     []string `json:"skills"`
	Keywords   []string `json:"keywords"`
	Education  []string `json:"education"`
	Projects   []string `json:"projects"`
	Experience []string `json:"experience"`
	Stats      Stats    `json:"stats"`
}

// Extractor scans text against a fixed taxonomy. Patterns are compiled once
// at construction; an Extractor is safe for concurrent use.
type Extractor struct {
	tax             *taxonomy.Taxonomy
	skillPatterns   []skillPattern
	keywordPatterns []skillPattern
}

type skillPattern struct {
	name string
	re   *regexp.Regexp
}

// NewExtractor compiles word-boundary patterns for every catalog skill and
// ATS keyword. The scan is O(|catalog| x |text|), which is fine for
// resume-sized documents and a catalog of ~150 entries.
func NewExtractor(tax *taxonomy.Taxonomy) *Extractor {
	e := &Extractor{tax: tax}
	for _, skill := range tax.AllSkills() {
		e.skillPatterns = append(e.skillPatterns, skillPattern{
			name: skill,
			re:   wordBoundaryPattern(skill),
		})
	}
	for _, kw := range tax.ATSKeywords() {
		e.keywordPatterns = append(e.keywordPatterns, skillPattern{
			name: kw,
			re:   wordBoundaryPattern(kw),
		})
	}
	return e
}

// wordBoundaryPattern anchors the term so "python" does not match inside
// "pythonic".
func wordBoundaryPattern(term string) *regexp.Regexp {
	return regexp.MustCompile(`(?i)\b` + regexp.QuoteMeta(term) + `\b`)
}

// Parse extracts all structured information from normalized (lowercase) text.
func (e *Extractor) Parse(text string) *Profile {
	p := &Profile{
		RawText:    text,
		Skills:     e.extractSkills(text),
		Keywords:   e.extractKeywords(text),
		Education:  extractEducation(text),
		Projects:   extractProjects(text),
		Experience: extractExperience(text),
	}

	p.Stats = Stats{
		WordCount:      len(strings.Fields(text)),
		SkillsCount:    len(p.Skills),
		KeywordsCount:  len(p.Keywords),
		HasContactInfo: hasContactInfo(text),
	}
	return p
}

// extractSkills finds every catalog skill present as a standalone word.
// Found skills are Title-Cased for display and returned sorted.
func (e *Extractor) extractSkills(text string) []string {
	var found []string
	for _, sp := range e.skillPatterns {
		if sp.re.MatchString(text) {
			found = append(found, Title(sp.name))
		}
	}
	sort.Strings(found)
	return found
}

// extractKeywords runs the same word-boundary scan against the ATS keyword
// list. A word may be both a skill and a keyword; the two scans are
// independent.
func (e *Extractor) extractKeywords(text string) []string {
	var found []string
	for _, kp := range e.keywordPatterns {
		if kp.re.MatchString(text) {
			found = append(found, Title(kp.name))
		}
	}
	sort.Strings(found)
	return found
}
