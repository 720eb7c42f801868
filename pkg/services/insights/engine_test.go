package insights

import (
	"testing"

	"github.com/nityasrik/Survey-Analysis/pkg/models/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func resp(age, occ string, attention, distraction int) domain.SurveyResponse {
	return domain.SurveyResponse{
		AgeGroup:               age,
		Occupation:             occ,
		AttentionRating:        attention,
		DistractionRating:      distraction,
		DailyScreenTimeMinutes: 120,
		FocusDurationMinutes:   30,
	}
}

func threeRowTable() *domain.Table {
	return domain.NewTable([]domain.SurveyResponse{
		resp("18-24", "student", 4, 2),
		resp("25-34", "professional", 3, 3),
		resp("18-24", "professional", 5, 1),
	})
}

func TestAggregate_NilTable(t *testing.T) {
	_, err := Aggregate(nil, domain.FilterSelection{}, Options{})
	assert.Error(t, err)
}

func TestAggregate_EmptySelectionCoversWholeTable(t *testing.T) {
	table := threeRowTable()

	result, err := Aggregate(table, domain.FilterSelection{}, Options{})
	require.NoError(t, err)

	assert.Equal(t, table.Len(), result.KPIs.Respondents)
	assert.Equal(t, table.Len(), result.TotalRespondents)
	assert.True(t, result.KPIs.Defined)
}

func TestAggregate_FilterByAgeGroup(t *testing.T) {
	result, err := Aggregate(threeRowTable(), domain.FilterSelection{
		AgeGroups: []string{"18-24"},
	}, Options{})
	require.NoError(t, err)

	assert.Equal(t, 2, result.KPIs.Respondents)
	assert.Equal(t, 3, result.TotalRespondents)
	assert.InDelta(t, 4.5, result.KPIs.AvgAttention, 1e-9)
	assert.InDelta(t, 1.5, result.KPIs.AvgDistraction, 1e-9)
}

func TestAggregate_BothDimensionsMustMatch(t *testing.T) {
	result, err := Aggregate(threeRowTable(), domain.FilterSelection{
		AgeGroups:   []string{"18-24"},
		Occupations: []string{"professional"},
	}, Options{})
	require.NoError(t, err)

	assert.Equal(t, 1, result.KPIs.Respondents)
	assert.InDelta(t, 5.0, result.KPIs.AvgAttention, 1e-9)
}

func TestAggregate_AbsentValueYieldsEmptyResult(t *testing.T) {
	result, err := Aggregate(threeRowTable(), domain.FilterSelection{
		Occupations: []string{"retiree"},
	}, Options{})
	require.NoError(t, err)

	assert.Equal(t, 0, result.KPIs.Respondents)
	assert.False(t, result.KPIs.Defined)
	assert.Empty(t, result.Demographics.ByAgeGroup)
	assert.Empty(t, result.Habits.ScreenTime)
	assert.Empty(t, result.Habits.Platforms)
	assert.Empty(t, result.Strategies)
	assert.Empty(t, result.Reflections.TermFrequencies)
	assert.Empty(t, result.Summary.AttentionInsight)
}

func TestFilterRows_SubsetOfTable(t *testing.T) {
	table := threeRowTable()
	selections := []domain.FilterSelection{
		{},
		{AgeGroups: []string{"18-24"}},
		{Occupations: []string{"professional"}},
		{AgeGroups: []string{"18-24"}, Occupations: []string{"student"}},
		{Occupations: []string{"retiree"}},
	}

	for _, sel := range selections {
		subset := filterRows(table.Rows(), sel)
		assert.LessOrEqual(t, len(subset), table.Len())
		for _, r := range subset {
			assert.Contains(t, table.Rows(), r)
		}

		result, err := Aggregate(table, sel, Options{})
		require.NoError(t, err)
		assert.Equal(t, len(subset), result.KPIs.Respondents)
	}
}

func TestAggregate_KPIsWithinRatingScale(t *testing.T) {
	table := threeRowTable()
	selections := []domain.FilterSelection{
		{},
		{AgeGroups: []string{"18-24"}},
		{AgeGroups: []string{"25-34"}},
		{Occupations: []string{"professional"}},
		{Occupations: []string{"student"}},
	}

	for _, sel := range selections {
		result, err := Aggregate(table, sel, Options{})
		require.NoError(t, err)
		if !result.KPIs.Defined {
			continue
		}
		assert.GreaterOrEqual(t, result.KPIs.AvgAttention, 1.0)
		assert.LessOrEqual(t, result.KPIs.AvgAttention, 5.0)
		assert.GreaterOrEqual(t, result.KPIs.AvgDistraction, 1.0)
		assert.LessOrEqual(t, result.KPIs.AvgDistraction, 5.0)
	}
}

func TestAggregate_Deterministic(t *testing.T) {
	rows := []domain.SurveyResponse{
		resp("18-24", "student", 4, 2),
		resp("25-34", "professional", 3, 3),
	}
	rows[0].PlatformsUsed = []string{"Instagram", "YouTube"}
	rows[0].CopingStrategies = []domain.StrategyUse{{Label: "Pomodoro", Effectiveness: 4}}
	rows[0].Reflection = "I feel tethered to my phone, my phone rules me"
	rows[1].PlatformsUsed = []string{"Instagram"}
	rows[1].CopingStrategies = []domain.StrategyUse{{Label: "App timers", Effectiveness: 3}}
	rows[1].Reflection = "technology helps me focus when I manage it"
	table := domain.NewTable(rows)

	sel := domain.FilterSelection{AgeGroups: []string{"18-24", "25-34"}}
	first, err := Aggregate(table, sel, Options{})
	require.NoError(t, err)
	second, err := Aggregate(table, sel, Options{})
	require.NoError(t, err)

	assert.Equal(t, first, second)
}

func TestAggregate_DemographicsCounts(t *testing.T) {
	result, err := Aggregate(threeRowTable(), domain.FilterSelection{}, Options{})
	require.NoError(t, err)

	assert.Equal(t, []domain.CategoryCount{
		{Label: "18-24", Count: 2},
		{Label: "25-34", Count: 1},
	}, result.Demographics.ByAgeGroup)

	assert.Equal(t, []domain.CategoryCount{
		{Label: "professional", Count: 2},
		{Label: "student", Count: 1},
	}, result.Demographics.ByOccupation)

	assert.Equal(t, []domain.CrossTabCell{
		{AgeGroup: "18-24", Occupation: "professional", Count: 1},
		{AgeGroup: "18-24", Occupation: "student", Count: 1},
		{AgeGroup: "25-34", Occupation: "professional", Count: 1},
	}, result.Demographics.AgeByOccupation)
}

func TestAnalyzer_Filters(t *testing.T) {
	table := threeRowTable()
	load := domain.LoadReport{Accepted: 3, Dropped: 1, Reasons: map[string]int{domain.DropBadRating: 1}}

	analyzer, err := NewAnalyzer(table, load, Options{})
	require.NoError(t, err)

	opts := analyzer.Filters(t.Context())
	assert.Equal(t, []string{"18-24", "25-34"}, opts.AgeGroups)
	assert.Equal(t, []string{"professional", "student"}, opts.Occupations)
	assert.Equal(t, 3, opts.TotalRespondents)
	assert.Equal(t, load, opts.Load)
}

func TestNewAnalyzer_NilTable(t *testing.T) {
	_, err := NewAnalyzer(nil, domain.LoadReport{}, Options{})
	assert.Error(t, err)
}
