package main

import (
	"strconv"
	"strings"
)

const (
	// SkinTypeAttribute is the characteristic used for filtering
	SkinTypeAttribute = "skin_type"
	// AllValues disables filtering
	AllValues = "All"
)

// FilterCriterion selects records whose characteristic equals Value
type FilterCriterion struct {
	Attribute string
	Value     string
}

// SkinTypeCriterion builds a criterion on the skin_type characteristic
func SkinTypeCriterion(value string) *FilterCriterion {
	return &FilterCriterion{Attribute: SkinTypeAttribute, Value: value}
}

// active reports whether the criterion actually narrows the input
func (c *FilterCriterion) active() bool {
	return c != nil && c.Value != "" && c.Value != AllValues
}

// Filter returns the records matching the criterion in their original order.
// A nil criterion, an empty value or "All" returns records unchanged.
func Filter(records []AnimalRecord, c *FilterCriterion) []AnimalRecord {
	if !c.active() {
		return records
	}

	matched := make([]AnimalRecord, 0, len(records))
	for _, r := range records {
		if v, ok := r.Characteristic(c.Attribute); ok && v == c.Value {
			matched = append(matched, r)
		}
	}
	return matched
}

// DistinctValues lists the non-absent values of a characteristic in first-seen order
func DistinctValues(records []AnimalRecord, attribute string) []string {
	seen := make(map[string]struct{})
	var values []string
	for _, r := range records {
		v, ok := r.Characteristic(attribute)
		if !ok {
			continue
		}
		if _, dup := seen[v]; dup {
			continue
		}
		seen[v] = struct{}{}
		values = append(values, v)
	}
	return values
}

// ResolveChoice maps prompt input to one of options. Input may be a 1-based
// index or an option name in any case; blank input selects AllValues.
func ResolveChoice(options []string, input string) (string, bool) {
	choice := strings.TrimSpace(input)
	if choice == "" || strings.EqualFold(choice, AllValues) {
		return AllValues, true
	}

	if n, err := strconv.Atoi(choice); err == nil {
		if n >= 1 && n <= len(options) {
			return options[n-1], true
		}
		return "", false
	}

	for _, opt := range options {
		if strings.EqualFold(opt, choice) {
			return opt, true
		}
	}
	return "", false
}
