package adapters

import (
	"github.com/nityasrik/Survey-Analysis/pkg/models/api"
	"github.com/nityasrik/Survey-Analysis/pkg/models/domain"
)

func MapFilterOptionsDomainToApi(opts domain.FilterOptions) api.Filters {
	return api.Filters{
		AgeGroups:        emptyIfNil(opts.AgeGroups),
		Occupations:      emptyIfNil(opts.Occupations),
		TotalRespondents: opts.TotalRespondents,
		Load: api.LoadReport{
			Accepted: opts.Load.Accepted,
			Dropped:  opts.Load.Dropped,
			Reasons:  opts.Load.Reasons,
		},
	}
}

// MapKPISetDomainToApi renders undefined averages as nulls so the UI can
// tell "no data" apart from a zero rating.
func MapKPISetDomainToApi(kpis domain.KPISet) api.KPISet {
	result := api.KPISet{Respondents: kpis.Respondents}
	if kpis.Defined {
		result.AvgAttention = ptr(kpis.AvgAttention)
		result.AvgDistraction = ptr(kpis.AvgDistraction)
	}
	return result
}

func MapDemographicsDomainToApi(result domain.AggregateResult) api.Demographics {
	return api.Demographics{
		Respondents:     result.KPIs.Respondents,
		ByAgeGroup:      mapCategoryCounts(result.Demographics.ByAgeGroup),
		ByOccupation:    mapCategoryCounts(result.Demographics.ByOccupation),
		AgeByOccupation: mapCrossTab(result.Demographics.AgeByOccupation),
	}
}

func MapHabitsDomainToApi(result domain.AggregateResult) api.Habits {
	habits := api.Habits{
		Respondents:   result.KPIs.Respondents,
		ScreenTime:    mapHistogram(result.Habits.ScreenTime),
		FocusDuration: mapHistogram(result.Habits.FocusDuration),
		Platforms:     mapCategoryCounts(result.Habits.Platforms),
		Bands:         mapBands(result.Habits.Bands),
	}
	if result.Habits.CorrDefined {
		habits.ScreenTimeAttentionCorr = ptr(result.Habits.ScreenTimeAttentionCorr)
		habits.ScreenTimeDistractionCorr = ptr(result.Habits.ScreenTimeDistractionCorr)
	}
	return habits
}

func MapStrategiesDomainToApi(result domain.AggregateResult) api.Strategies {
	return api.Strategies{
		Respondents: result.KPIs.Respondents,
		Strategies:  mapStrategyStats(result.Strategies),
	}
}

func MapReflectionsDomainToApi(result domain.AggregateResult) api.Reflections {
	return api.Reflections{
		Respondents: result.KPIs.Respondents,
		Terms:       mapTermCounts(result.Reflections.TermFrequencies),
		TopTerms:    mapTermCounts(result.Reflections.TopTerms),
	}
}

func MapSummaryDomainToApi(result domain.AggregateResult) api.Summary {
	s := result.Summary
	return api.Summary{
		Respondents:          result.KPIs.Respondents,
		TotalRespondents:     result.TotalRespondents,
		KPIs:                 MapKPISetDomainToApi(s.KPIs),
		DominantAgeGroup:     s.DominantAgeGroup,
		DominantOccupation:   s.DominantOccupation,
		DominantScreenBand:   s.DominantScreenBand,
		TopStrategies:        mapStrategyStats(s.TopStrategies),
		TopTerms:             mapTermCounts(s.TopTerms),
		AttentionInsight:     s.AttentionInsight,
		DistractionInsight:   s.DistractionInsight,
		FocusBalanceInsight:  s.FocusBalanceInsight,
		HeavyUseInsight:      s.HeavyUseInsight,
		TopGuiltResponse:     s.TopGuiltResponse,
		TopEmotionalResponse: s.TopEmotionalResponse,
		Recommendations:      emptyIfNil(s.Recommendations),
	}
}

func mapCategoryCounts(counts []domain.CategoryCount) []api.CategoryCount {
	result := make([]api.CategoryCount, 0, len(counts))
	for _, c := range counts {
		result = append(result, api.CategoryCount{Label: c.Label, Count: c.Count})
	}
	return result
}

func mapCrossTab(cells []domain.CrossTabCell) []api.CrossTabCell {
	result := make([]api.CrossTabCell, 0, len(cells))
	for _, c := range cells {
		result = append(result, api.CrossTabCell{
			AgeGroup:   c.AgeGroup,
			Occupation: c.Occupation,
			Count:      c.Count,
		})
	}
	return result
}

func mapHistogram(buckets []domain.HistogramBucket) []api.HistogramBucket {
	result := make([]api.HistogramBucket, 0, len(buckets))
	for _, b := range buckets {
		result = append(result, api.HistogramBucket{Label: b.Label, Count: b.Count})
	}
	return result
}

func mapBands(bands []domain.ScreenTimeBand) []api.ScreenTimeBand {
	result := make([]api.ScreenTimeBand, 0, len(bands))
	for _, b := range bands {
		mapped := api.ScreenTimeBand{Label: b.Label, Respondents: b.Respondents}
		if b.Respondents > 0 {
			mapped.AvgAttention = ptr(b.AvgAttention)
			mapped.AvgDistraction = ptr(b.AvgDistraction)
		}
		result = append(result, mapped)
	}
	return result
}

func mapStrategyStats(stats []domain.StrategyStat) []api.StrategyStat {
	result := make([]api.StrategyStat, 0, len(stats))
	for _, s := range stats {
		result = append(result, api.StrategyStat{
			Label:            s.Label,
			Count:            s.Count,
			AvgEffectiveness: s.AvgEffectiveness,
		})
	}
	return result
}

func mapTermCounts(terms []domain.TermCount) []api.TermCount {
	result := make([]api.TermCount, 0, len(terms))
	for _, t := range terms {
		result = append(result, api.TermCount{Term: t.Term, Count: t.Count})
	}
	return result
}

func emptyIfNil(values []string) []string {
	if values == nil {
		return []string{}
	}
	return values
}

func ptr(f float64) *float64 {
	return &f
}
