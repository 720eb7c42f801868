package insights

import (
	"fmt"

	"github.com/nityasrik/Survey-Analysis/pkg/models/domain"
)

func buildSummary(
	rows []domain.SurveyResponse,
	kpis domain.KPISet,
	demo domain.Demographics,
	habits domain.DigitalHabits,
	strategies []domain.StrategyStat,
	refl domain.Reflections,
	opts Options,
) domain.Summary {
	summary := domain.Summary{
		KPIs:          kpis,
		TopStrategies: topStrategies(strategies, opts.TopStrategies),
		TopTerms:      refl.TopTerms,
	}
	if !kpis.Defined {
		return summary
	}

	if len(demo.ByAgeGroup) > 0 {
		summary.DominantAgeGroup = demo.ByAgeGroup[0].Label
	}
	if len(demo.ByOccupation) > 0 {
		summary.DominantOccupation = demo.ByOccupation[0].Label
	}
	summary.DominantScreenBand = dominantBand(habits.Bands)

	summary.AttentionInsight = attentionInsight(kpis.AvgAttention)
	summary.DistractionInsight = distractionInsight(kpis.AvgDistraction)
	summary.FocusBalanceInsight = focusBalanceInsight(kpis)
	summary.HeavyUseInsight = heavyUseInsight(habits.Bands)

	summary.TopGuiltResponse = topValue(rows, func(r domain.SurveyResponse) string { return r.DigitalGuilt })
	summary.TopEmotionalResponse = topValue(rows, func(r domain.SurveyResponse) string { return r.EmotionalImpact })

	summary.Recommendations = recommendations(kpis)
	return summary
}

func dominantBand(bands []domain.ScreenTimeBand) string {
	best := ""
	bestCount := 0
	for _, b := range bands {
		if b.Respondents > bestCount {
			best = b.Label
			bestCount = b.Respondents
		}
	}
	return best
}

func attentionInsight(avg float64) string {
	switch {
	case avg >= 4:
		return fmt.Sprintf("High average attention rating: %.1f/5.", avg)
	case avg >= 3:
		return fmt.Sprintf("Moderate average attention rating: %.1f/5.", avg)
	default:
		return fmt.Sprintf("Low average attention rating: %.1f/5. Consider exploring coping strategies.", avg)
	}
}

func distractionInsight(avg float64) string {
	switch {
	case avg <= 2:
		return fmt.Sprintf("Low distraction: %.1f/5.", avg)
	case avg <= 3:
		return fmt.Sprintf("Moderate distraction: %.1f/5.", avg)
	default:
		return fmt.Sprintf("High distraction: %.1f/5.", avg)
	}
}

func focusBalanceInsight(kpis domain.KPISet) string {
	if kpis.AvgDistraction == 0 {
		return ""
	}
	ratio := kpis.AvgAttention / kpis.AvgDistraction
	switch {
	case ratio > 1.2:
		return "Positive focus balance: attention rating exceeds distraction rating."
	case ratio > 0.8:
		return "Moderate focus challenge: attention and distraction are closely balanced."
	default:
		return "Focus challenge: distraction rating exceeds attention rating."
	}
}

// heavyUseInsight reports how the 9+ hours group copes, mirroring the
// executive-summary callout of the dashboard.
func heavyUseInsight(bands []domain.ScreenTimeBand) string {
	for _, b := range bands {
		if b.Label != "9+ hours" {
			continue
		}
		if b.AvgDistraction > 3 {
			return fmt.Sprintf(
				"Respondents with 9+ hours of screen time report high distraction (%.1f/5), suggesting excessive usage affects focus.",
				b.AvgDistraction)
		}
		return fmt.Sprintf(
			"Respondents with 9+ hours of screen time manage distraction well (%.1f/5), indicating effective coping strategies.",
			b.AvgDistraction)
	}
	return ""
}

func topValue(rows []domain.SurveyResponse, key func(domain.SurveyResponse) string) string {
	counts := map[string]int{}
	for _, r := range rows {
		if v := key(r); v != "" {
			counts[v]++
		}
	}
	sorted := sortedCounts(counts)
	if len(sorted) == 0 {
		return ""
	}
	return sorted[0].Label
}

func recommendations(kpis domain.KPISet) []string {
	var recs []string
	if kpis.AvgDistraction > 3 {
		recs = append(recs,
			"Implement app timers and screen time limits",
			"Try the Pomodoro technique for focused work sessions",
			"Consider digital detox periods",
			"Use Do Not Disturb mode during important tasks",
		)
	}
	if kpis.AvgAttention < 3 {
		recs = append(recs,
			"Practice mindfulness and meditation",
			"Create distraction-free work environments",
			"Set clear goals and time boundaries",
		)
	}
	recs = append(recs,
		"Take regular breaks from screens",
		"Balance online and offline activities",
		"Monitor and reflect on digital habits regularly",
	)
	return recs
}
