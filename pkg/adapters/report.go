package adapters

import (
	"fmt"
	"strings"

	"github.com/nityasrik/Survey-Analysis/pkg/models/domain"
)

// MapAggregateResultToReport flattens a snapshot into the section/detail
// shape the terminal reporter renders.
func MapAggregateResultToReport(result domain.AggregateResult, sel domain.FilterSelection) domain.Report {
	report := domain.Report{
		Title:       "Digital Behavior & Focus Report",
		Selection:   describeSelection(sel),
		Respondents: result.KPIs.Respondents,
		Total:       result.TotalRespondents,
	}

	if !result.KPIs.Defined {
		report.Sections = append(report.Sections, domain.ReportSection{
			Title:   "Key Metrics",
			Summary: map[string]string{"Status": "no data for this selection"},
		})
		return report
	}

	report.Sections = append(report.Sections,
		kpiSection(result),
		demographicsSection(result),
		strategiesSection(result),
		reflectionsSection(result),
		recommendationsSection(result),
	)
	return report
}

func describeSelection(sel domain.FilterSelection) string {
	var parts []string
	if len(sel.AgeGroups) > 0 {
		parts = append(parts, fmt.Sprintf("age groups: %s", strings.Join(sel.AgeGroups, ", ")))
	}
	if len(sel.Occupations) > 0 {
		parts = append(parts, fmt.Sprintf("occupations: %s", strings.Join(sel.Occupations, ", ")))
	}
	if len(parts) == 0 {
		return "all respondents"
	}
	return strings.Join(parts, "; ")
}

func kpiSection(result domain.AggregateResult) domain.ReportSection {
	summary := map[string]string{
		"Avg attention":   fmt.Sprintf("%.1f/5", result.KPIs.AvgAttention),
		"Avg distraction": fmt.Sprintf("%.1f/5", result.KPIs.AvgDistraction),
	}

	var details []domain.ReportDetail
	for _, insight := range []string{
		result.Summary.AttentionInsight,
		result.Summary.DistractionInsight,
		result.Summary.FocusBalanceInsight,
		result.Summary.HeavyUseInsight,
	} {
		if insight == "" {
			continue
		}
		details = append(details, domain.ReportDetail{Name: "Insight", Value: insight})
	}

	return domain.ReportSection{Title: "Key Metrics", Summary: summary, Details: details}
}

func demographicsSection(result domain.AggregateResult) domain.ReportSection {
	summary := map[string]string{}
	if result.Summary.DominantAgeGroup != "" {
		summary["Dominant age group"] = result.Summary.DominantAgeGroup
	}
	if result.Summary.DominantOccupation != "" {
		summary["Dominant occupation"] = result.Summary.DominantOccupation
	}
	if result.Summary.DominantScreenBand != "" {
		summary["Most common screen time"] = result.Summary.DominantScreenBand
	}

	var details []domain.ReportDetail
	for _, c := range result.Demographics.ByAgeGroup {
		details = append(details, domain.ReportDetail{
			Name:  c.Label,
			Value: fmt.Sprintf("%d respondents", c.Count),
		})
	}

	return domain.ReportSection{Title: "Demographics", Summary: summary, Details: details}
}

func strategiesSection(result domain.AggregateResult) domain.ReportSection {
	var details []domain.ReportDetail
	for _, s := range result.Summary.TopStrategies {
		details = append(details, domain.ReportDetail{
			Name:        s.Label,
			Value:       fmt.Sprintf("%.1f/5", s.AvgEffectiveness),
			Description: fmt.Sprintf("reported by %d respondents", s.Count),
		})
	}
	return domain.ReportSection{Title: "Top Coping Strategies", Details: details}
}

func reflectionsSection(result domain.AggregateResult) domain.ReportSection {
	var terms []string
	for _, t := range result.Summary.TopTerms {
		terms = append(terms, fmt.Sprintf("%s (%d)", t.Term, t.Count))
	}

	summary := map[string]string{}
	if len(terms) > 0 {
		summary["Frequent terms"] = strings.Join(terms, ", ")
	}
	if result.Summary.TopGuiltResponse != "" {
		summary["Most common digital guilt"] = result.Summary.TopGuiltResponse
	}
	if result.Summary.TopEmotionalResponse != "" {
		summary["Most cited emotional impact"] = result.Summary.TopEmotionalResponse
	}

	return domain.ReportSection{Title: "Tech Relationship Themes", Summary: summary}
}

func recommendationsSection(result domain.AggregateResult) domain.ReportSection {
	var details []domain.ReportDetail
	for _, rec := range result.Summary.Recommendations {
		details = append(details, domain.ReportDetail{Name: "Recommendation", Value: rec})
	}
	return domain.ReportSection{Title: "Recommendations", Details: details}
}
