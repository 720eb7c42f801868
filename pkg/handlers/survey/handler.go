package survey

import (
	"encoding/json"
	"net/http"

	"github.com/nityasrik/Survey-Analysis/pkg/adapters"
	"github.com/nityasrik/Survey-Analysis/pkg/models/domain"
	"github.com/nityasrik/Survey-Analysis/pkg/services/insights"
	"github.com/rs/zerolog"
)

type Handler struct {
	analytics insights.Analyzer
}

func NewHandler(analytics insights.Analyzer) *Handler {
	return &Handler{analytics: analytics}
}

func (h *Handler) GetFilters(w http.ResponseWriter, r *http.Request) {
	opts := h.analytics.Filters(r.Context())
	writeJSON(w, r, adapters.MapFilterOptionsDomainToApi(opts))
}

func (h *Handler) GetSummary(w http.ResponseWriter, r *http.Request) {
	result, ok := h.aggregate(w, r)
	if !ok {
		return
	}
	writeJSON(w, r, adapters.MapSummaryDomainToApi(result))
}

func (h *Handler) GetDemographics(w http.ResponseWriter, r *http.Request) {
	result, ok := h.aggregate(w, r)
	if !ok {
		return
	}
	writeJSON(w, r, adapters.MapDemographicsDomainToApi(result))
}

func (h *Handler) GetHabits(w http.ResponseWriter, r *http.Request) {
	result, ok := h.aggregate(w, r)
	if !ok {
		return
	}
	writeJSON(w, r, adapters.MapHabitsDomainToApi(result))
}

func (h *Handler) GetStrategies(w http.ResponseWriter, r *http.Request) {
	result, ok := h.aggregate(w, r)
	if !ok {
		return
	}
	writeJSON(w, r, adapters.MapStrategiesDomainToApi(result))
}

func (h *Handler) GetReflections(w http.ResponseWriter, r *http.Request) {
	result, ok := h.aggregate(w, r)
	if !ok {
		return
	}
	writeJSON(w, r, adapters.MapReflectionsDomainToApi(result))
}

func (h *Handler) aggregate(w http.ResponseWriter, r *http.Request) (domain.AggregateResult, bool) {
	ctx := r.Context()
	logger := zerolog.Ctx(ctx)

	sel := selectionFromRequest(r)
	result, err := h.analytics.Aggregate(ctx, sel)
	if err != nil {
		logger.Error().
			Err(err).
			Strs("age_groups", sel.AgeGroups).
			Strs("occupations", sel.Occupations).
			Msg("failed to aggregate survey data")
		http.Error(w, "failed to aggregate survey data", http.StatusInternalServerError)
		return domain.AggregateResult{}, false
	}
	return result, true
}

// selectionFromRequest reads the repeated age_group and occupation query
// params. Absent params mean no filtering on that dimension.
func selectionFromRequest(r *http.Request) domain.FilterSelection {
	q := r.URL.Query()
	return domain.FilterSelection{
		AgeGroups:   q["age_group"],
		Occupations: q["occupation"],
	}
}

func writeJSON(w http.ResponseWriter, r *http.Request, payload any) {
	w.Header().Set("Content-Type", "application/json")
	if err := json.NewEncoder(w).Encode(payload); err != nil {
		zerolog.Ctx(r.Context()).Error().
			Err(err).
			Msg("failed to encode response")
	}
}
