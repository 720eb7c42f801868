package insights

import (
	"sort"

	"github.com/nityasrik/Survey-Analysis/pkg/models/domain"
)

// strategyStats counts respondents per coping strategy and averages their
// self-rated effectiveness. Output is sorted by label for stable charting.
func strategyStats(rows []domain.SurveyResponse) []domain.StrategyStat {
	type acc struct {
		count int
		sum   int
	}
	accs := map[string]*acc{}
	for _, r := range rows {
		for _, s := range r.CopingStrategies {
			a, ok := accs[s.Label]
			if !ok {
				a = &acc{}
				accs[s.Label] = a
			}
			a.count++
			a.sum += s.Effectiveness
		}
	}

	stats := make([]domain.StrategyStat, 0, len(accs))
	for label, a := range accs {
		stats = append(stats, domain.StrategyStat{
			Label:            label,
			Count:            a.count,
			AvgEffectiveness: float64(a.sum) / float64(a.count),
		})
	}
	sort.Slice(stats, func(i, j int) bool { return stats[i].Label < stats[j].Label })
	return stats
}

// topStrategies ranks by mean effectiveness, breaking ties by respondent
// count and then label.
func topStrategies(stats []domain.StrategyStat, n int) []domain.StrategyStat {
	ranked := make([]domain.StrategyStat, len(stats))
	copy(ranked, stats)
	sort.Slice(ranked, func(i, j int) bool {
		if ranked[i].AvgEffectiveness != ranked[j].AvgEffectiveness {
			return ranked[i].AvgEffectiveness > ranked[j].AvgEffectiveness
		}
		if ranked[i].Count != ranked[j].Count {
			return ranked[i].Count > ranked[j].Count
		}
		return ranked[i].Label < ranked[j].Label
	})
	if len(ranked) > n {
		ranked = ranked[:n]
	}
	return ranked
}
