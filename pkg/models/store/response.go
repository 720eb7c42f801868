package store

import "database/sql"

// ResponseRow is one survey row exactly as it comes out of the CSV source:
// every column as nullable text. Parsing and validation happen in the
// dataset loader, not here.
type ResponseRow struct {
	AgeGroup              sql.NullString
	Occupation            sql.NullString
	AttentionRating       sql.NullString
	DistractionRating     sql.NullString
	ScreenTimeMinutes     sql.NullString
	FocusDurationMinutes  sql.NullString
	Platforms             sql.NullString
	Strategies            sql.NullString
	StrategyEffectiveness sql.NullString
	Reflection            sql.NullString
	DigitalGuilt          sql.NullString
	EmotionalImpact       sql.NullString
}
