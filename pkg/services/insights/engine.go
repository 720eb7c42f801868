package insights

import (
	"context"
	"fmt"

	"github.com/nityasrik/Survey-Analysis/pkg/models/domain"
)

// Options tunes the shape of the computed series. Zero values fall back to
// the defaults below.
type Options struct {
	TopTerms                int
	TopStrategies           int
	ScreenTimeBucketMinutes float64
	FocusBucketMinutes      float64
}

func (o Options) withDefaults() Options {
	if o.TopTerms <= 0 {
		o.TopTerms = 25
	}
	if o.TopStrategies <= 0 {
		o.TopStrategies = 5
	}
	if o.ScreenTimeBucketMinutes <= 0 {
		o.ScreenTimeBucketMinutes = 60
	}
	if o.FocusBucketMinutes <= 0 {
		o.FocusBucketMinutes = 15
	}
	return o
}

// Analyzer serves dashboard snapshots over a loaded survey table.
type Analyzer interface {
	Aggregate(ctx context.Context, sel domain.FilterSelection) (domain.AggregateResult, error)
	Filters(ctx context.Context) domain.FilterOptions
}

type defaultAnalyzer struct {
	table *domain.Table
	load  domain.LoadReport
	opts  Options
}

func NewAnalyzer(table *domain.Table, load domain.LoadReport, opts Options) (Analyzer, error) {
	if table == nil {
		return nil, fmt.Errorf("survey table is nil")
	}
	return &defaultAnalyzer{
		table: table,
		load:  load,
		opts:  opts.withDefaults(),
	}, nil
}

func (a *defaultAnalyzer) Aggregate(_ context.Context, sel domain.FilterSelection) (domain.AggregateResult, error) {
	return Aggregate(a.table, sel, a.opts)
}

func (a *defaultAnalyzer) Filters(_ context.Context) domain.FilterOptions {
	return domain.FilterOptions{
		AgeGroups:        a.table.AgeGroups(),
		Occupations:      a.table.Occupations(),
		TotalRespondents: a.table.Len(),
		Load:             a.load,
	}
}

// Aggregate computes the full dashboard snapshot for one filter selection.
// It is a pure function: same table and selection, same result. An empty
// filtered subset is not an error; it yields empty series and undefined
// KPIs.
func Aggregate(table *domain.Table, sel domain.FilterSelection, opts Options) (domain.AggregateResult, error) {
	if table == nil {
		return domain.AggregateResult{}, fmt.Errorf("survey table is nil")
	}
	opts = opts.withDefaults()

	subset := filterRows(table.Rows(), sel)

	kpis := computeKPIs(subset)
	demo := demographics(subset)
	habits := digitalHabits(subset, opts)
	strategies := strategyStats(subset)
	refl := reflections(subset, opts.TopTerms)

	return domain.AggregateResult{
		TotalRespondents: table.Len(),
		KPIs:             kpis,
		Demographics:     demo,
		Habits:           habits,
		Strategies:       strategies,
		Reflections:      refl,
		Summary:          buildSummary(subset, kpis, demo, habits, strategies, refl, opts),
	}, nil
}

func filterRows(rows []domain.SurveyResponse, sel domain.FilterSelection) []domain.SurveyResponse {
	subset := make([]domain.SurveyResponse, 0, len(rows))
	for _, r := range rows {
		if sel.Matches(r) {
			subset = append(subset, r)
		}
	}
	return subset
}

func computeKPIs(rows []domain.SurveyResponse) domain.KPISet {
	if len(rows) == 0 {
		return domain.KPISet{Respondents: 0, Defined: false}
	}

	var attention, distraction float64
	for _, r := range rows {
		attention += float64(r.AttentionRating)
		distraction += float64(r.DistractionRating)
	}

	n := float64(len(rows))
	return domain.KPISet{
		Respondents:    len(rows),
		AvgAttention:   attention / n,
		AvgDistraction: distraction / n,
		Defined:        true,
	}
}
