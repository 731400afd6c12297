package importer

import (
	"sort"
	"strings"

	"github.com/meu-painel/backend/internal/ledger"
	"github.com/ryanuber/go-glob"
)

// Rule sets the category of imported transactions whose description
// matches Pattern. '*' matches any sequence of characters.
type Rule struct {
	Priority int
	Pattern  string
	Category ledger.Category
}

// Matches reports if the rule applies to the description. Matching ignores case.
func (r Rule) Matches(description string) bool {
	return glob.Glob(strings.ToLower(r.Pattern), strings.ToLower(description))
}

// Categorize returns the category of the first matching rule by ascending
// priority. Rules with the same priority keep their order. Without a
// match, "Outros" is returned.
func Categorize(description string, rules []Rule) ledger.Category {
	sorted := append([]Rule(nil), rules...)
	sort.SliceStable(sorted, func(i, j int) bool {
		return sorted[i].Priority < sorted[j].Priority
	})

	for _, r := range sorted {
		if r.Matches(description) {
			return ledger.NormalizeCategory(string(r.Category))
		}
	}

	return ledger.CategoryOther
}
