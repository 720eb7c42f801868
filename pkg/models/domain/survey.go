package domain

import (
	"sort"
)

// MaxMinutesPerDay bounds the minute-valued survey fields; a day holds 1440
// minutes, so anything larger is junk input.
const MaxMinutesPerDay = 1440

// StrategyUse is a single coping strategy a respondent reported using,
// together with their self-rated effectiveness (1-5).
type StrategyUse struct {
	Label         string
	Effectiveness int
}

// SurveyResponse is one validated survey row. Categorical fields are
// normalized at load time so equal labels always compare equal.
type SurveyResponse struct {
	AgeGroup               string
	Occupation             string
	AttentionRating        int
	DistractionRating      int
	DailyScreenTimeMinutes float64
	FocusDurationMinutes   float64
	PlatformsUsed          []string
	CopingStrategies       []StrategyUse
	Reflection             string
	DigitalGuilt           string
	EmotionalImpact        string
}

// Table holds the full set of accepted survey responses. It is built once
// at load time and read-only afterwards.
type Table struct {
	rows        []SurveyResponse
	ageGroups   []string
	occupations []string
}

func NewTable(rows []SurveyResponse) *Table {
	t := &Table{rows: rows}
	t.ageGroups = distinct(rows, func(r SurveyResponse) string { return r.AgeGroup })
	t.occupations = distinct(rows, func(r SurveyResponse) string { return r.Occupation })
	return t
}

func (t *Table) Len() int {
	return len(t.rows)
}

// Rows returns the underlying rows. Callers must treat the slice as
// read-only.
func (t *Table) Rows() []SurveyResponse {
	return t.rows
}

// AgeGroups returns the distinct age group labels in sorted order.
func (t *Table) AgeGroups() []string {
	return t.ageGroups
}

// Occupations returns the distinct occupation labels in sorted order.
func (t *Table) Occupations() []string {
	return t.occupations
}

func distinct(rows []SurveyResponse, key func(SurveyResponse) string) []string {
	seen := make(map[string]struct{}, len(rows))
	var values []string
	for _, r := range rows {
		k := key(r)
		if _, ok := seen[k]; ok {
			continue
		}
		seen[k] = struct{}{}
		values = append(values, k)
	}
	sort.Strings(values)
	return values
}

// FilterSelection is the set of active dashboard filters. An empty slice on
// a dimension means no filtering on that dimension.
type FilterSelection struct {
	AgeGroups   []string
	Occupations []string
}

// Matches reports whether a response passes the selection. Matching is
// exact set membership against the normalized labels.
func (s FilterSelection) Matches(r SurveyResponse) bool {
	return contains(s.AgeGroups, r.AgeGroup) && contains(s.Occupations, r.Occupation)
}

func contains(selected []string, value string) bool {
	if len(selected) == 0 {
		return true
	}
	for _, v := range selected {
		if v == value {
			return true
		}
	}
	return false
}

// FilterOptions describes the filter values available to the UI, derived
// from the loaded table.
type FilterOptions struct {
	AgeGroups        []string
	Occupations      []string
	TotalRespondents int
	Load             LoadReport
}
