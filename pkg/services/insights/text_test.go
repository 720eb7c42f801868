package insights

import (
	"testing"

	"github.com/nityasrik/Survey-Analysis/pkg/models/domain"
	"github.com/stretchr/testify/assert"
)

func TestTokenize(t *testing.T) {
	tests := []struct {
		name     string
		text     string
		expected []string
	}{
		{
			name:     "lower-cases and strips punctuation",
			text:     "Addicted!! To my PHONE...",
			expected: []string{"addicted", "phone"},
		},
		{
			name:     "drops stop words",
			text:     "it is a love and hate relationship",
			expected: []string{"love", "hate", "relationship"},
		},
		{
			name:     "drops single characters",
			text:     "I m o k",
			expected: nil,
		},
		{
			name:     "empty text",
			text:     "",
			expected: nil,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, tokenize(tt.text))
		})
	}
}

func TestReflections_TermFrequencies(t *testing.T) {
	rows := []domain.SurveyResponse{
		{Reflection: "My phone distracts me, phone is everything"},
		{Reflection: "distracts and distracts"},
		{Reflection: ""},
	}

	result := reflections(rows, 2)

	assert.Equal(t, []domain.TermCount{
		{Term: "distracts", Count: 3},
		{Term: "phone", Count: 2},
		{Term: "everything", Count: 1},
	}, result.TermFrequencies)

	assert.Equal(t, []domain.TermCount{
		{Term: "distracts", Count: 3},
		{Term: "phone", Count: 2},
	}, result.TopTerms)
}

func TestReflections_EmptySubset(t *testing.T) {
	result := reflections(nil, 10)
	assert.Empty(t, result.TermFrequencies)
	assert.Empty(t, result.TopTerms)
}
