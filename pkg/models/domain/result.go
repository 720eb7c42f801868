package domain

// KPISet holds the headline metrics for a filtered subset. Defined is false
// when the subset is empty; averages are meaningless in that case and must
// not be read.
type KPISet struct {
	Respondents    int
	AvgAttention   float64
	AvgDistraction float64
	Defined        bool
}

// CategoryCount is one bar of a categorical distribution.
type CategoryCount struct {
	Label string
	Count int
}

// CrossTabCell is one cell of the age group x occupation cross-tabulation.
type CrossTabCell struct {
	AgeGroup   string
	Occupation string
	Count      int
}

type Demographics struct {
	ByAgeGroup      []CategoryCount
	ByOccupation    []CategoryCount
	AgeByOccupation []CrossTabCell
}

// HistogramBucket covers [Lo, Hi) minutes. The final bucket of a series may
// be open-ended (Hi is +Inf).
type HistogramBucket struct {
	Label string
	Lo    float64
	Hi    float64
	Count int
}

// ScreenTimeBand aggregates ratings within one ordinal daily screen-time
// band (under 3h, 3-5h, 6-8h, 9+h).
type ScreenTimeBand struct {
	Label          string
	Respondents    int
	AvgAttention   float64
	AvgDistraction float64
}

type DigitalHabits struct {
	ScreenTime    []HistogramBucket
	FocusDuration []HistogramBucket
	Platforms     []CategoryCount
	Bands         []ScreenTimeBand

	// Pearson correlation of the ordinal band index against the two
	// ratings. CorrDefined is false when there are fewer than two
	// respondents or either series has zero variance.
	ScreenTimeDistractionCorr float64
	ScreenTimeAttentionCorr   float64
	CorrDefined               bool
}

type StrategyStat struct {
	Label            string
	Count            int
	AvgEffectiveness float64
}

type TermCount struct {
	Term  string
	Count int
}

type Reflections struct {
	TermFrequencies []TermCount
	TopTerms        []TermCount
}

// Summary is the narrative view of a snapshot: dominant segments, insight
// sentences and recommendations for the executive summary tab.
type Summary struct {
	KPIs                 KPISet
	DominantAgeGroup     string
	DominantOccupation   string
	DominantScreenBand   string
	TopStrategies        []StrategyStat
	TopTerms             []TermCount
	AttentionInsight     string
	DistractionInsight   string
	FocusBalanceInsight  string
	HeavyUseInsight      string
	TopGuiltResponse     string
	TopEmotionalResponse string
	Recommendations      []string
}

// AggregateResult is an immutable snapshot of every metric the dashboard
// renders for one (table, selection) pair. It is recomputed from scratch on
// every filter change.
type AggregateResult struct {
	TotalRespondents int
	KPIs             KPISet
	Demographics     Demographics
	Habits           DigitalHabits
	Strategies       []StrategyStat
	Reflections      Reflections
	Summary          Summary
}
