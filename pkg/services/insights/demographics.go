package insights

import (
	"sort"

	"github.com/nityasrik/Survey-Analysis/pkg/models/domain"
)

func demographics(rows []domain.SurveyResponse) domain.Demographics {
	return domain.Demographics{
		ByAgeGroup:      countBy(rows, func(r domain.SurveyResponse) string { return r.AgeGroup }),
		ByOccupation:    countBy(rows, func(r domain.SurveyResponse) string { return r.Occupation }),
		AgeByOccupation: crossTab(rows),
	}
}

// countBy groups rows by a label and returns the counts sorted by count
// descending, label ascending on ties, so the output order is stable.
func countBy(rows []domain.SurveyResponse, key func(domain.SurveyResponse) string) []domain.CategoryCount {
	counts := map[string]int{}
	for _, r := range rows {
		counts[key(r)]++
	}
	return sortedCounts(counts)
}

func sortedCounts(counts map[string]int) []domain.CategoryCount {
	result := make([]domain.CategoryCount, 0, len(counts))
	for label, count := range counts {
		result = append(result, domain.CategoryCount{Label: label, Count: count})
	}
	sort.Slice(result, func(i, j int) bool {
		if result[i].Count != result[j].Count {
			return result[i].Count > result[j].Count
		}
		return result[i].Label < result[j].Label
	})
	return result
}

func crossTab(rows []domain.SurveyResponse) []domain.CrossTabCell {
	type pair struct{ age, occ string }
	counts := map[pair]int{}
	for _, r := range rows {
		counts[pair{r.AgeGroup, r.Occupation}]++
	}

	cells := make([]domain.CrossTabCell, 0, len(counts))
	for p, count := range counts {
		cells = append(cells, domain.CrossTabCell{
			AgeGroup:   p.age,
			Occupation: p.occ,
			Count:      count,
		})
	}
	sort.Slice(cells, func(i, j int) bool {
		if cells[i].AgeGroup != cells[j].AgeGroup {
			return cells[i].AgeGroup < cells[j].AgeGroup
		}
		return cells[i].Occupation < cells[j].Occupation
	})
	return cells
}
