package api

// Filters describes the options the UI can offer in its filter controls,
// plus load diagnostics for the dataset behind them.
type Filters struct {
	AgeGroups        []string   `json:"age_groups"`
	Occupations      []string   `json:"occupations"`
	TotalRespondents int        `json:"total_respondents"`
	Load             LoadReport `json:"load"`
}

type LoadReport struct {
	Accepted int            `json:"accepted"`
	Dropped  int            `json:"dropped"`
	Reasons  map[string]int `json:"reasons,omitempty"`
}

// KPISet carries the headline metrics. Averages are null when the filtered
// subset is empty so the UI can show "no data" instead of a zero.
type KPISet struct {
	Respondents    int      `json:"respondents"`
	AvgAttention   *float64 `json:"avg_attention"`
	AvgDistraction *float64 `json:"avg_distraction"`
}

type CategoryCount struct {
	Label string `json:"label"`
	Count int    `json:"count"`
}

type CrossTabCell struct {
	AgeGroup   string `json:"age_group"`
	Occupation string `json:"occupation"`
	Count      int    `json:"count"`
}

type Demographics struct {
	Respondents     int             `json:"respondents"`
	ByAgeGroup      []CategoryCount `json:"by_age_group"`
	ByOccupation    []CategoryCount `json:"by_occupation"`
	AgeByOccupation []CrossTabCell  `json:"age_by_occupation"`
}

type HistogramBucket struct {
	Label string `json:"label"`
	Count int    `json:"count"`
}

type ScreenTimeBand struct {
	Label          string   `json:"label"`
	Respondents    int      `json:"respondents"`
	AvgAttention   *float64 `json:"avg_attention"`
	AvgDistraction *float64 `json:"avg_distraction"`
}

type Habits struct {
	Respondents               int               `json:"respondents"`
	ScreenTime                []HistogramBucket `json:"screen_time"`
	FocusDuration             []HistogramBucket `json:"focus_duration"`
	Platforms                 []CategoryCount   `json:"platforms"`
	Bands                     []ScreenTimeBand  `json:"screen_time_bands"`
	ScreenTimeDistractionCorr *float64          `json:"screen_time_distraction_corr"`
	ScreenTimeAttentionCorr   *float64          `json:"screen_time_attention_corr"`
}

type StrategyStat struct {
	Label            string  `json:"label"`
	Count            int     `json:"count"`
	AvgEffectiveness float64 `json:"avg_effectiveness"`
}

type Strategies struct {
	Respondents int            `json:"respondents"`
	Strategies  []StrategyStat `json:"strategies"`
}

type TermCount struct {
	Term  string `json:"term"`
	Count int    `json:"count"`
}

type Reflections struct {
	Respondents int         `json:"respondents"`
	Terms       []TermCount `json:"terms"`
	TopTerms    []TermCount `json:"top_terms"`
}

type Summary struct {
	Respondents          int            `json:"respondents"`
	TotalRespondents     int            `json:"total_respondents"`
	KPIs                 KPISet         `json:"kpis"`
	DominantAgeGroup     string         `json:"dominant_age_group,omitempty"`
	DominantOccupation   string         `json:"dominant_occupation,omitempty"`
	DominantScreenBand   string         `json:"dominant_screen_time_band,omitempty"`
	TopStrategies        []StrategyStat `json:"top_strategies"`
	TopTerms             []TermCount    `json:"top_terms"`
	AttentionInsight     string         `json:"attention_insight,omitempty"`
	DistractionInsight   string         `json:"distraction_insight,omitempty"`
	FocusBalanceInsight  string         `json:"focus_balance_insight,omitempty"`
	HeavyUseInsight      string         `json:"heavy_use_insight,omitempty"`
	TopGuiltResponse     string         `json:"top_guilt_response,omitempty"`
	TopEmotionalResponse string         `json:"top_emotional_response,omitempty"`
	Recommendations      []string       `json:"recommendations"`
}
