package survey

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/nityasrik/Survey-Analysis/pkg/models/api"
	"github.com/nityasrik/Survey-Analysis/pkg/models/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

type mockAnalyzer struct {
	mock.Mock
}

func (m *mockAnalyzer) Aggregate(ctx context.Context, sel domain.FilterSelection) (domain.AggregateResult, error) {
	args := m.Called(ctx, sel)
	return args.Get(0).(domain.AggregateResult), args.Error(1)
}

func (m *mockAnalyzer) Filters(ctx context.Context) domain.FilterOptions {
	args := m.Called(ctx)
	return args.Get(0).(domain.FilterOptions)
}

func definedResult() domain.AggregateResult {
	return domain.AggregateResult{
		TotalRespondents: 3,
		KPIs:             domain.KPISet{Respondents: 2, AvgAttention: 4.5, AvgDistraction: 1.5, Defined: true},
		Demographics: domain.Demographics{
			ByAgeGroup: []domain.CategoryCount{{Label: "18-24", Count: 2}},
		},
	}
}

func TestGetFilters(t *testing.T) {
	analyzer := new(mockAnalyzer)
	analyzer.On("Filters", mock.Anything).Return(domain.FilterOptions{
		AgeGroups:        []string{"18-24", "25-34"},
		Occupations:      []string{"student"},
		TotalRespondents: 3,
		Load:             domain.LoadReport{Accepted: 3, Dropped: 1},
	})

	rec := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/api/v1/filters", nil)
	NewHandler(analyzer).GetFilters(rec, req)

	require.Equal(t, http.StatusOK, rec.Code)
	var got api.Filters
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &got))
	assert.Equal(t, []string{"18-24", "25-34"}, got.AgeGroups)
	assert.Equal(t, 1, got.Load.Dropped)
}

func TestGetSummary_PassesSelection(t *testing.T) {
	analyzer := new(mockAnalyzer)
	analyzer.On("Aggregate", mock.Anything, domain.FilterSelection{
		AgeGroups:   []string{"18-24"},
		Occupations: []string{"student", "professional"},
	}).Return(definedResult(), nil)

	rec := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet,
		"/api/v1/summary?age_group=18-24&occupation=student&occupation=professional", nil)
	NewHandler(analyzer).GetSummary(rec, req)

	require.Equal(t, http.StatusOK, rec.Code)
	analyzer.AssertExpectations(t)

	var got api.Summary
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &got))
	assert.Equal(t, 2, got.Respondents)
	assert.Equal(t, 3, got.TotalRespondents)
}

func TestGetDemographics(t *testing.T) {
	analyzer := new(mockAnalyzer)
	analyzer.On("Aggregate", mock.Anything, domain.FilterSelection{}).
		Return(definedResult(), nil)

	rec := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/api/v1/demographics", nil)
	NewHandler(analyzer).GetDemographics(rec, req)

	require.Equal(t, http.StatusOK, rec.Code)
	var got api.Demographics
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &got))
	assert.Equal(t, []api.CategoryCount{{Label: "18-24", Count: 2}}, got.ByAgeGroup)
}

func TestGetHabits_EmptySubsetHasNullKPIs(t *testing.T) {
	analyzer := new(mockAnalyzer)
	analyzer.On("Aggregate", mock.Anything, mock.Anything).
		Return(domain.AggregateResult{TotalRespondents: 3}, nil)

	rec := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/api/v1/habits?occupation=retiree", nil)
	NewHandler(analyzer).GetHabits(rec, req)

	require.Equal(t, http.StatusOK, rec.Code)
	var got api.Habits
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &got))
	assert.Equal(t, 0, got.Respondents)
	assert.Nil(t, got.ScreenTimeAttentionCorr)
	assert.Empty(t, got.ScreenTime)
}

func TestGetStrategies_AggregateError(t *testing.T) {
	analyzer := new(mockAnalyzer)
	analyzer.On("Aggregate", mock.Anything, mock.Anything).
		Return(domain.AggregateResult{}, assert.AnError)

	rec := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/api/v1/strategies", nil)
	NewHandler(analyzer).GetStrategies(rec, req)

	assert.Equal(t, http.StatusInternalServerError, rec.Code)
}
