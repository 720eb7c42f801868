package server

import (
	"context"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/nityasrik/Survey-Analysis/pkg/models/api"
	"github.com/nityasrik/Survey-Analysis/pkg/models/domain"
	"github.com/rs/zerolog"
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

func unmarshalResponse[T any]() func([]byte) (interface{}, error) {
	return func(body []byte) (interface{}, error) {
		var v T
		err := json.Unmarshal(body, &v)
		return v, err
	}
}

func TestWebAPI_Endpoints(t *testing.T) {
	logger := zerolog.Nop()

	analyzer := new(mockAnalyzer)

	config := Config{
		Addr:            ":8080",
		ShutdownTimeout: 10 * time.Second,
		AllowedOrigins:  []string{"*"},
		Dependencies: Dependencies{
			Analytics: analyzer,
			Logger:    logger,
		},
	}
	router := ConfigureRouter(config)
	testServer := httptest.NewServer(router)
	defer testServer.Close()

	attention := 4.5
	distraction := 1.5

	tests := []struct {
		name           string
		path           string
		setupMocks     func()
		expectedStatus int
		expected       interface{}
		parseResponse  func([]byte) (interface{}, error)
	}{
		{
			name: "GetFilters",
			path: "/api/v1/filters",
			setupMocks: func() {
				analyzer.On("Filters", mock.Anything).Return(domain.FilterOptions{
					AgeGroups:        []string{"18-24"},
					Occupations:      []string{"student"},
					TotalRespondents: 3,
					Load:             domain.LoadReport{Accepted: 3},
				}).Once()
			},
			expectedStatus: http.StatusOK,
			expected: api.Filters{
				AgeGroups:        []string{"18-24"},
				Occupations:      []string{"student"},
				TotalRespondents: 3,
				Load:             api.LoadReport{Accepted: 3},
			},
			parseResponse: unmarshalResponse[api.Filters](),
		},
		{
			name: "GetSummary",
			path: "/api/v1/summary?age_group=18-24",
			setupMocks: func() {
				analyzer.On("Aggregate", mock.Anything, domain.FilterSelection{
					AgeGroups: []string{"18-24"},
				}).Return(domain.AggregateResult{
					TotalRespondents: 3,
					KPIs: domain.KPISet{
						Respondents:    2,
						AvgAttention:   4.5,
						AvgDistraction: 1.5,
						Defined:        true,
					},
					Summary: domain.Summary{
						KPIs: domain.KPISet{
							Respondents:    2,
							AvgAttention:   4.5,
							AvgDistraction: 1.5,
							Defined:        true,
						},
						Recommendations: []string{"Take regular breaks from screens"},
					},
				}, nil).Once()
			},
			expectedStatus: http.StatusOK,
			expected: api.Summary{
				Respondents:      2,
				TotalRespondents: 3,
				KPIs: api.KPISet{
					Respondents:    2,
					AvgAttention:   &attention,
					AvgDistraction: &distraction,
				},
				TopStrategies:   []api.StrategyStat{},
				TopTerms:        []api.TermCount{},
				Recommendations: []string{"Take regular breaks from screens"},
			},
			parseResponse: unmarshalResponse[api.Summary](),
		},
		{
			name: "GetDemographics empty subset",
			path: "/api/v1/demographics?occupation=retiree",
			setupMocks: func() {
				analyzer.On("Aggregate", mock.Anything, domain.FilterSelection{
					Occupations: []string{"retiree"},
				}).Return(domain.AggregateResult{TotalRespondents: 3}, nil).Once()
			},
			expectedStatus: http.StatusOK,
			expected: api.Demographics{
				Respondents:     0,
				ByAgeGroup:      []api.CategoryCount{},
				ByOccupation:    []api.CategoryCount{},
				AgeByOccupation: []api.CrossTabCell{},
			},
			parseResponse: unmarshalResponse[api.Demographics](),
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tt.setupMocks()

			resp, err := http.Get(testServer.URL + tt.path)
			require.NoError(t, err)
			defer resp.Body.Close()

			assert.Equal(t, tt.expectedStatus, resp.StatusCode)
			assert.NotEmpty(t, resp.Header.Get("X-Request-Id"))

			body, err := io.ReadAll(resp.Body)
			require.NoError(t, err)

			got, err := tt.parseResponse(body)
			require.NoError(t, err)
			assert.Equal(t, tt.expected, got)
		})
	}

	analyzer.AssertExpectations(t)
}
