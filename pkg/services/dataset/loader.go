package dataset

import (
	"context"
	"database/sql"
	"fmt"
	"strconv"
	"strings"

	"github.com/nityasrik/Survey-Analysis/pkg/models/domain"
	"github.com/nityasrik/Survey-Analysis/pkg/models/store"
	"github.com/nityasrik/Survey-Analysis/pkg/store/duckdb/survey"
)

// Occupation labels that appear in survey exports with typos or as
// unwieldy multi-select combinations, remapped to clean display labels.
var occupationAliases = map[string]string{
	"working profesional": "Working Professional",
	"working profesional, freelancer / self-employed": "Hybrid Professional",
	"student, freelancer / self-employed":             "Student & Freelancer",
}

// Strategy labels that are survey noise rather than actual strategies.
var junkStrategies = map[string]struct{}{
	"na":                       {},
	"which is often on-screen": {},
	"recenter on chosen task":  {},
}

const maxStrategyLabelLen = 35

// Loader turns raw survey rows into a validated, normalized Table.
//
// Validation policy: rows missing an age group or occupation are dropped
// (they cannot be filtered or grouped), and rows with ratings outside [1,5]
// or minute fields that are unparsable, negative, or longer than a day are
// dropped rather than clamped, so KPI averages only ever reflect values a
// respondent actually reported. Every drop is counted per reason in the
// LoadReport.
type Loader interface {
	Load(ctx context.Context) (*domain.Table, domain.LoadReport, error)
}

type csvLoader struct {
	store survey.Store
}

func NewLoader(store survey.Store) (Loader, error) {
	if store == nil {
		return nil, fmt.Errorf("survey store is nil")
	}
	return &csvLoader{store: store}, nil
}

func (l *csvLoader) Load(ctx context.Context) (*domain.Table, domain.LoadReport, error) {
	raw, err := l.store.FetchResponses(ctx)
	if err != nil {
		return nil, domain.LoadReport{}, err
	}

	var report domain.LoadReport
	labels := newLabelRegistry()
	rows := make([]domain.SurveyResponse, 0, len(raw))

	for _, r := range raw {
		row, reason := buildResponse(r, labels)
		if reason != "" {
			report.Drop(reason)
			continue
		}
		rows = append(rows, row)
		report.Accepted++
	}

	return domain.NewTable(rows), report, nil
}

// buildResponse validates one raw row. A non-empty reason means the row is
// dropped.
func buildResponse(r store.ResponseRow, labels *labelRegistry) (domain.SurveyResponse, string) {
	age := labels.canonical(normalizeCategory(text(r.AgeGroup)))
	if age == "" {
		return domain.SurveyResponse{}, domain.DropMissingAgeGroup
	}

	occ := normalizeCategory(text(r.Occupation))
	if alias, ok := occupationAliases[strings.ToLower(occ)]; ok {
		occ = alias
	}
	occ = labels.canonical(occ)
	if occ == "" {
		return domain.SurveyResponse{}, domain.DropMissingOccupation
	}

	attention, ok := parseRating(text(r.AttentionRating))
	if !ok {
		return domain.SurveyResponse{}, domain.DropBadRating
	}
	distraction, ok := parseRating(text(r.DistractionRating))
	if !ok {
		return domain.SurveyResponse{}, domain.DropBadRating
	}

	screen, ok := parseMinutes(text(r.ScreenTimeMinutes))
	if !ok {
		return domain.SurveyResponse{}, domain.DropBadMinutes
	}
	focus, ok := parseMinutes(text(r.FocusDurationMinutes))
	if !ok {
		return domain.SurveyResponse{}, domain.DropBadMinutes
	}

	return domain.SurveyResponse{
		AgeGroup:               age,
		Occupation:             occ,
		AttentionRating:        attention,
		DistractionRating:      distraction,
		DailyScreenTimeMinutes: screen,
		FocusDurationMinutes:   focus,
		PlatformsUsed:          parsePlatforms(text(r.Platforms)),
		CopingStrategies:       parseStrategies(text(r.Strategies), text(r.StrategyEffectiveness)),
		Reflection:             strings.TrimSpace(text(r.Reflection)),
		DigitalGuilt:           normalizeCategory(text(r.DigitalGuilt)),
		EmotionalImpact:        normalizeCategory(text(r.EmotionalImpact)),
	}, ""
}

func text(s sql.NullString) string {
	if !s.Valid {
		return ""
	}
	return s.String
}

// normalizeCategory trims and collapses internal whitespace so labels that
// differ only in spacing compare equal.
func normalizeCategory(s string) string {
	return strings.Join(strings.Fields(s), " ")
}

func parseRating(s string) (int, bool) {
	n, err := strconv.Atoi(strings.TrimSpace(s))
	if err != nil || n < 1 || n > 5 {
		return 0, false
	}
	return n, true
}

// Ordinal screen-time band labels seen in older exports, mapped onto minutes
// representative of each band.
var minuteBands = map[string]float64{
	"less than 3 hours": 90,
	"3-5 hours":         270,
	"6-8 hours":         450,
	"9+ hours":          600,
}

func parseMinutes(s string) (float64, bool) {
	s = strings.TrimSpace(s)

	key := strings.ToLower(strings.ReplaceAll(s, "–", "-"))
	if m, ok := minuteBands[key]; ok {
		return m, true
	}

	f, err := strconv.ParseFloat(s, 64)
	if err != nil || f < 0 || f > domain.MaxMinutesPerDay {
		return 0, false
	}
	return f, true
}

func parsePlatforms(s string) []string {
	var platforms []string
	for _, token := range splitList(s) {
		if strings.Contains(strings.ToLower(token), "etc.") {
			continue
		}
		platforms = append(platforms, token)
	}
	return platforms
}

func parseStrategies(labels, effectiveness string) []domain.StrategyUse {
	eff, ok := parseRating(effectiveness)
	if !ok {
		return nil
	}

	var strategies []domain.StrategyUse
	for _, label := range splitList(labels) {
		if _, junk := junkStrategies[strings.ToLower(label)]; junk {
			continue
		}
		if len(label) >= maxStrategyLabelLen {
			continue
		}
		strategies = append(strategies, domain.StrategyUse{
			Label:         label,
			Effectiveness: eff,
		})
	}
	return strategies
}

func splitList(s string) []string {
	var tokens []string
	for _, token := range strings.Split(s, ",") {
		token = normalizeCategory(token)
		if token != "" {
			tokens = append(tokens, token)
		}
	}
	return tokens
}

// labelRegistry case-folds categorical labels to a single canonical display
// form, so "Student" and "student" land in the same group.
type labelRegistry struct {
	canon map[string]string
}

func newLabelRegistry() *labelRegistry {
	return &labelRegistry{canon: map[string]string{}}
}

func (l *labelRegistry) canonical(label string) string {
	if label == "" {
		return ""
	}
	key := strings.ToLower(label)
	if display, ok := l.canon[key]; ok {
		return display
	}
	l.canon[key] = label
	return label
}
