package domain

import "fmt"

// Drop reasons accumulated in a LoadReport.
const (
	DropMissingAgeGroup   = "missing_age_group"
	DropMissingOccupation = "missing_occupation"
	DropBadRating         = "bad_rating"
	DropBadMinutes        = "bad_minutes"
)

// LoadReport summarizes the outcome of loading a survey source. Dropped rows
// are a diagnostic, not an error; loading only fails when the source itself
// is unusable.
type LoadReport struct {
	Accepted int
	Dropped  int
	Reasons  map[string]int
}

func (r *LoadReport) Drop(reason string) {
	if r.Reasons == nil {
		r.Reasons = map[string]int{}
	}
	r.Reasons[reason]++
	r.Dropped++
}

type LoadErrorKind string

const (
	// SourceUnreadable means the survey file is missing or cannot be read.
	SourceUnreadable LoadErrorKind = "source_unreadable"
	// SchemaMismatch means a required column is absent from the source.
	SchemaMismatch LoadErrorKind = "schema_mismatch"
)

// LoadError is a fatal loading failure. Row-level validation problems never
// produce a LoadError; they are counted in the LoadReport instead.
type LoadError struct {
	Kind LoadErrorKind
	Err  error
}

func (e *LoadError) Error() string {
	return fmt.Sprintf("load survey data (%s): %v", e.Kind, e.Err)
}

func (e *LoadError) Unwrap() error {
	return e.Err
}

func NewLoadError(kind LoadErrorKind, err error) *LoadError {
	return &LoadError{Kind: kind, Err: err}
}
