package insights

import (
	"sort"
	"strings"
	"unicode"

	"github.com/nityasrik/Survey-Analysis/pkg/models/domain"
)

// Stop words excluded from the reflection term frequencies. Deliberately a
// small fixed list: the free-text answers are short and informal, and the
// word cloud only needs the filler gone.
var stopWords = map[string]struct{}{
	"about": {}, "after": {}, "all": {}, "also": {}, "am": {},
	"an": {}, "and": {}, "any": {}, "are": {}, "as": {}, "at": {},
	"be": {}, "because": {}, "been": {}, "but": {}, "by": {}, "can": {},
	"could": {}, "did": {}, "do": {}, "does": {}, "don": {}, "even": {},
	"for": {}, "from": {}, "get": {}, "had": {}, "has": {}, "have": {},
	"he": {}, "her": {}, "him": {}, "his": {}, "how": {},
	"if": {}, "in": {}, "into": {}, "is": {}, "it": {}, "its": {},
	"just": {}, "like": {}, "lot": {}, "me": {}, "more": {}, "most": {},
	"much": {}, "my": {}, "no": {}, "not": {}, "of": {}, "on": {},
	"one": {}, "or": {}, "our": {}, "out": {}, "she": {},
	"so": {}, "some": {}, "than": {}, "that": {}, "the": {},
	"their": {}, "them": {}, "then": {}, "there": {}, "they": {},
	"this": {}, "to": {}, "too": {}, "up": {}, "us": {}, "very": {},
	"was": {}, "we": {}, "were": {}, "what": {}, "when": {}, "which": {},
	"while": {}, "who": {}, "will": {}, "with": {}, "would": {},
	"you": {}, "your": {},
}

func reflections(rows []domain.SurveyResponse, topN int) domain.Reflections {
	counts := map[string]int{}
	for _, r := range rows {
		for _, term := range tokenize(r.Reflection) {
			counts[term]++
		}
	}

	freqs := make([]domain.TermCount, 0, len(counts))
	for term, count := range counts {
		freqs = append(freqs, domain.TermCount{Term: term, Count: count})
	}
	sort.Slice(freqs, func(i, j int) bool {
		if freqs[i].Count != freqs[j].Count {
			return freqs[i].Count > freqs[j].Count
		}
		return freqs[i].Term < freqs[j].Term
	})

	top := freqs
	if len(top) > topN {
		top = top[:topN]
	}

	return domain.Reflections{
		TermFrequencies: freqs,
		TopTerms:        top,
	}
}

// tokenize lower-cases the text, treats every non-letter, non-digit rune as
// a separator, and drops stop words and single characters.
func tokenize(text string) []string {
	fields := strings.FieldsFunc(strings.ToLower(text), func(r rune) bool {
		return !unicode.IsLetter(r) && !unicode.IsDigit(r)
	})

	var terms []string
	for _, f := range fields {
		if len(f) < 2 {
			continue
		}
		if _, stop := stopWords[f]; stop {
			continue
		}
		terms = append(terms, f)
	}
	return terms
}
