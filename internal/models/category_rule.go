package models

import (
	"encoding/json"
	"strings"

	"github.com/meu-painel/backend/internal/importer"
	"github.com/meu-painel/backend/internal/ledger"
	"gorm.io/gorm"
)

// CategoryRule assigns a category to imported transactions whose
// description matches the pattern.
type CategoryRule struct {
	DefaultModel
	Priority uint
	Pattern  string `gorm:"uniqueIndex"`
	Category ledger.Category
}

func (r *CategoryRule) BeforeSave(_ *gorm.DB) error {
	r.Pattern = strings.TrimSpace(r.Pattern)
	if r.Pattern == "" {
		return ErrCategoryRulePatternEmpty
	}

	r.Category = ledger.NormalizeCategory(string(r.Category))
	return nil
}

// Rule converts the model for the importer.
func (r CategoryRule) Rule() importer.Rule {
	return importer.Rule{
		Priority: int(r.Priority),
		Pattern:  r.Pattern,
		Category: r.Category,
	}
}

// ImportRules returns all category rules for the importer.
func ImportRules(db *gorm.DB) ([]importer.Rule, error) {
	var categoryRules []CategoryRule
	err := db.Order("priority ASC, created_at ASC").Find(&categoryRules).Error
	if err != nil {
		return nil, err
	}

	rules := make([]importer.Rule, 0, len(categoryRules))
	for _, r := range categoryRules {
		rules = append(rules, r.Rule())
	}

	return rules, nil
}

// Returns all category rules on this instance for export
func (CategoryRule) Export() (json.RawMessage, error) {
	var rules []CategoryRule
	err := DB.Where(&CategoryRule{}).Find(&rules).Error
	if err != nil {
		return nil, err
	}

	j, err := json.Marshal(&rules)
	if err != nil {
		return json.RawMessage{}, err
	}
	return json.RawMessage(j), nil
}
