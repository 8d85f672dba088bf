package models

import (
	"strings"

	"gorm.io/gorm"
)

// MatchRule maps text extracted from a receipt to a category.
// The Match field is a glob pattern, e.g. "*SUPERMART*".
type MatchRule struct {
	DefaultModel
	Priority uint
	Match    string
	Category string
}

func (r *MatchRule) BeforeSave(_ *gorm.DB) error {
	r.Match = strings.TrimSpace(r.Match)
	r.Category = strings.TrimSpace(r.Category)

	return nil
}

// MatchRulesOrdered returns all match rules, ordered the way they are
// applied: by priority, then alphabetically by pattern.
func MatchRulesOrdered(db *gorm.DB) ([]MatchRule, error) {
	var rules []MatchRule
	err := db.Order("priority ASC, match ASC").Find(&rules).Error
	return rules, err
}
