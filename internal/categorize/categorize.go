// Package categorize assigns a category to a transaction description
// using user-defined keyword rules.
package categorize

import (
	"regexp"
	"strings"

	"github.com/financas-dev/financas/internal/model"
)

// Fallback is the category assigned when no rule matches.
const Fallback = "Outros"

// Categorize returns the name of the first rule (in stored order) with
// at least one keyword that matches description as a case-insensitive
// whole word. When no rule matches it returns fallback, or Fallback if
// fallback is empty.
//
// Pure function: rule order decides ties, so the same description with
// the same rule list always yields the same category.
func Categorize(description string, rules []model.Category, fallback string) string {
	lower := strings.ToLower(description)
	for _, rule := range rules {
		for _, kw := range rule.Keywords {
			if matchWord(lower, kw) {
				return rule.Name
			}
		}
	}
	if fallback == "" {
		return Fallback
	}
	return fallback
}

// matchWord reports whether kw appears in lower (already lowercased)
// delimited by word boundaries. "uber" matches "UBER TRIP" but not
// "uberfood".
func matchWord(lower, kw string) bool {
	kw = strings.ToLower(strings.TrimSpace(kw))
	if kw == "" {
		return false
	}
	re := regexp.MustCompile(`\b` + regexp.QuoteMeta(kw) + `\b`)
	return re.MatchString(lower)
}
