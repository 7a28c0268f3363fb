package resume

import (
	"context"
	"sort"
	"strings"

	"go-jobfinder-backend/pkg/textproc"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"
)

// Extraction modes, surfaced to the caller so reduced fidelity is visible.
const (
	ModeFull    = "full"    // skill vocabulary + named-entity tagging
	ModeKeyword = "keyword" // skill vocabulary only
)

// skillVocabulary lists skills recognized in resume text. Multi-word
// entries are matched as substrings of the normalized text.
var skillVocabulary = []string{
	"python", "java", "javascript", "typescript", "golang", "html", "css",
	"sql", "react", "angular", "vue", "node", "express", "django", "flask",
	"spring", "mongodb", "mysql", "postgresql", "aws", "azure", "docker",
	"kubernetes", "git", "linux", "agile", "scrum", "machine learning",
	"data science", "tensorflow", "pytorch", "pandas", "numpy", "excel",
	"tableau", "powerbi", "salesforce", "oracle", "sap",
}

var educationKeywords = []string{
	"bachelor", "master", "phd", "degree", "university", "college", "education",
}

var experienceKeywords = []string{
	"experience", "worked", "employed", "years", "project", "developed",
}

// Parsed is the structured output of resume parsing.
type Parsed struct {
	Skills     []string
	Education  string
	Experience string
	RawText    string
	Mode       string
}

// Parser extracts structured profile fields from resume text. The entity
// tagger is optional; a nil tagger (or one that errors) degrades the parse
// to the keyword vocabulary instead of failing.
type Parser struct {
	tagger EntityTagger
}

func NewParser(tagger EntityTagger) *Parser {
	return &Parser{tagger: tagger}
}

// Parse extracts skills, education and experience from raw resume text.
// Best effort: empty text yields empty fields, never an error.
func (p *Parser) Parse(ctx context.Context, text string) *Parsed {
	parsed := &Parsed{RawText: text, Mode: ModeKeyword}
	if strings.TrimSpace(text) == "" {
		return parsed
	}

	skills := matchSkillVocabulary(text)

	if p.tagger != nil {
		if entities, err := p.tagger.Tag(ctx, text); err == nil {
			parsed.Mode = ModeFull
			for _, ent := range entities {
				if ent.Label == "ORG" || ent.Label == "PRODUCT" {
					skills[titleCase(ent.Text)] = true
				}
			}
		}
		// Tagger errors are swallowed on purpose: availability over
		// completeness. The degraded mode is reported instead.
	}

	parsed.Skills = sortedKeys(skills)
	parsed.Education = extractLineContext(text, educationKeywords, 1, 3)
	parsed.Experience = extractLineContext(text, experienceKeywords, 2, 5)
	return parsed
}

// KnownSkills returns the vocabulary skills mentioned in text, title-cased
// and sorted. Used by the recommender to spot skills a posting asks for.
func KnownSkills(text string) []string {
	return sortedKeys(matchSkillVocabulary(text))
}

// matchSkillVocabulary scans normalized text for known skills.
func matchSkillVocabulary(text string) map[string]bool {
	normalized := " " + textproc.Normalize(text) + " "
	found := make(map[string]bool)
	for _, skill := range skillVocabulary {
		if strings.Contains(normalized, " "+skill+" ") {
			found[titleCase(skill)] = true
		}
	}
	return found
}

// extractLineContext collects lines mentioning any keyword, together with
// `after` following lines for context, joined with "; ". At most
// maxMentions mentions are kept.
func extractLineContext(text string, keywords []string, after, maxMentions int) string {
	lines := strings.Split(text, "\n")
	var sections []string
	for i, line := range lines {
		lower := strings.ToLower(line)
		hit := false
		for _, kw := range keywords {
			if strings.Contains(lower, kw) {
				hit = true
				break
			}
		}
		if !hit {
			continue
		}
		end := i + after + 1
		if end > len(lines) {
			end = len(lines)
		}
		section := strings.TrimSpace(strings.Join(lines[i:end], " "))
		if section != "" {
			sections = append(sections, section)
		}
		if len(sections) >= maxMentions {
			break
		}
	}
	return strings.Join(sections, "; ")
}

var titleCaser = cases.Title(language.English)

func titleCase(s string) string {
	return titleCaser.String(strings.ToLower(s))
}

func sortedKeys(set map[string]bool) []string {
	keys := make([]string, 0, len(set))
	for k := range set {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}
