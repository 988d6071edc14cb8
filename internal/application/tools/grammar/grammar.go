// Package grammar is a rule-table grammar checker. Rules are regular
// expressions loaded from YAML; it does not parse sentences.
package grammar

import (
	_ "embed"
	"fmt"
	"regexp"
	"sort"
	"strings"
	"unicode/utf8"

	"gopkg.in/yaml.v3"

	"officetools/internal/shared/errors"
)

//go:embed rules.yaml
var defaultRules []byte

// MaxTextLength bounds the input in characters.
const MaxTextLength = 20000

const (
	kindRegex        = "regex"
	kindRepeatedWord = "repeated_word"
	transformUpper   = "upper"
)

type ruleSpec struct {
	ID          string `yaml:"id"`
	Kind        string `yaml:"kind"`
	Message     string `yaml:"message"`
	Pattern     string `yaml:"pattern"`
	Group       int    `yaml:"group"`
	Replacement string `yaml:"replacement"`
	Transform   string `yaml:"transform"`
}

type rule struct {
	ruleSpec
	re *regexp.Regexp
}

// Match is one finding. Offset and Length count characters, not bytes.
type Match struct {
	RuleID      string `json:"rule_id"`
	Message     string `json:"message"`
	Offset      int    `json:"offset"`
	Length      int    `json:"length"`
	Original    string `json:"original"`
	Replacement string `json:"replacement"`

	start, end int
}

type Result struct {
	Matches   []Match `json:"matches"`
	Corrected string  `json:"corrected"`
}

type Checker struct {
	rules []rule
}

// NewChecker builds a checker from the embedded rule table.
func NewChecker() (*Checker, error) {
	return NewCheckerFromYAML(defaultRules)
}

func NewCheckerFromYAML(data []byte) (*Checker, error) {
	var doc struct {
		Rules []ruleSpec `yaml:"rules"`
	}
	if err := yaml.Unmarshal(data, &doc); err != nil {
		return nil, fmt.Errorf("failed to parse grammar rules: %w", err)
	}

	c := &Checker{}
	seen := make(map[string]bool, len(doc.Rules))
	for _, spec := range doc.Rules {
		if spec.ID == "" {
			return nil, fmt.Errorf("grammar rule without id")
		}
		if seen[spec.ID] {
			return nil, fmt.Errorf("duplicate grammar rule %q", spec.ID)
		}
		seen[spec.ID] = true

		if spec.Kind == "" {
			spec.Kind = kindRegex
		}
		r := rule{ruleSpec: spec}
		switch spec.Kind {
		case kindRepeatedWord:
		case kindRegex:
			re, err := regexp.Compile(spec.Pattern)
			if err != nil {
				return nil, fmt.Errorf("grammar rule %q: %w", spec.ID, err)
			}
			if spec.Group < 0 || spec.Group > re.NumSubexp() {
				return nil, fmt.Errorf("grammar rule %q: group %d out of range", spec.ID, spec.Group)
			}
			r.re = re
		default:
			return nil, fmt.Errorf("grammar rule %q: unknown kind %q", spec.ID, spec.Kind)
		}
		c.rules = append(c.rules, r)
	}
	return c, nil
}

// RuleIDs lists the loaded rules in table order.
func (c *Checker) RuleIDs() []string {
	ids := make([]string, 0, len(c.rules))
	for _, r := range c.rules {
		ids = append(ids, r.ID)
	}
	return ids
}

// Check runs every rule over text. Overlapping findings are reported but
// only the first (longest on ties) is applied to the corrected text.
func (c *Checker) Check(text string) (*Result, error) {
	if !utf8.ValidString(text) {
		return nil, errors.NewValidationError("text must be valid UTF-8")
	}
	if utf8.RuneCountInString(text) > MaxTextLength {
		return nil, errors.NewValidationError("text too long", fmt.Sprintf("at most %d characters", MaxTextLength))
	}

	var matches []Match
	for _, r := range c.rules {
		switch r.Kind {
		case kindRepeatedWord:
			matches = append(matches, repeatedWords(r, text)...)
		default:
			matches = append(matches, r.find(text)...)
		}
	}

	sort.SliceStable(matches, func(i, j int) bool {
		if matches[i].start != matches[j].start {
			return matches[i].start < matches[j].start
		}
		return matches[i].end > matches[j].end
	})

	for i := range matches {
		matches[i].Offset = utf8.RuneCountInString(text[:matches[i].start])
		matches[i].Length = utf8.RuneCountInString(matches[i].Original)
	}

	return &Result{
		Matches:   matches,
		Corrected: applyMatches(text, matches),
	}, nil
}

func (r rule) find(text string) []Match {
	var out []Match
	for _, loc := range r.re.FindAllStringSubmatchIndex(text, -1) {
		start, end := loc[2*r.Group], loc[2*r.Group+1]
		if start < 0 {
			continue
		}

		// templates see every submatch of the whole match
		replacement := string(r.re.ExpandString(nil, r.Replacement, text, loc))
		if r.Transform == transformUpper {
			replacement = strings.ToUpper(replacement)
		}

		original := text[start:end]
		if original == replacement {
			continue
		}
		out = append(out, Match{
			RuleID:      r.ID,
			Message:     r.Message,
			Original:    original,
			Replacement: replacement,
			start:       start,
			end:         end,
		})
	}
	return out
}

var wordPattern = regexp.MustCompile(`[\p{L}\p{N}']+`)

// repeatedWords flags a word that directly repeats the previous one,
// ignoring case, when only spaces separate them. The finding covers the
// gap and the repeat so runs of three collapse to one word.
func repeatedWords(r rule, text string) []Match {
	var out []Match
	locs := wordPattern.FindAllStringIndex(text, -1)
	for i := 1; i < len(locs); i++ {
		prev, cur := locs[i-1], locs[i]
		gap := text[prev[1]:cur[0]]
		if gap == "" || strings.Trim(gap, " \t") != "" {
			continue
		}
		if !strings.EqualFold(text[prev[0]:prev[1]], text[cur[0]:cur[1]]) {
			continue
		}
		out = append(out, Match{
			RuleID:      r.ID,
			Message:     r.Message,
			Original:    text[prev[1]:cur[1]],
			Replacement: "",
			start:       prev[1],
			end:         cur[1],
		})
	}
	return out
}

func applyMatches(text string, matches []Match) string {
	var b strings.Builder
	b.Grow(len(text))
	pos := 0
	for _, m := range matches {
		if m.start < pos {
			continue
		}
		b.WriteString(text[pos:m.start])
		b.WriteString(m.Replacement)
		pos = m.end
	}
	b.WriteString(text[pos:])
	return b.String()
}
