package survey

import (
	"context"
	"database/sql"
	"fmt"
	"os"
	"strings"

	"github.com/nityasrik/Survey-Analysis/pkg/models/domain"
	"github.com/nityasrik/Survey-Analysis/pkg/models/store"
)

// Columns maps the logical survey fields to the column headers of the CSV
// source. The header names are an external concern and vary per dataset, so
// they arrive here from configuration. Empty optional entries are read as
// NULL.
type Columns struct {
	AgeGroup              string
	Occupation            string
	Attention             string
	Distraction           string
	ScreenTime            string
	FocusDuration         string
	Platforms             string
	Strategies            string
	StrategyEffectiveness string
	Reflection            string
	DigitalGuilt          string
	EmotionalImpact       string
}

// Store reads raw survey rows from the CSV source. It performs no parsing
// beyond what DuckDB's CSV reader does; validation belongs to the loader.
type Store interface {
	FetchResponses(ctx context.Context) ([]store.ResponseRow, error)
}

type csvStore struct {
	db      *sql.DB
	source  string
	columns Columns
}

func NewStore(db *sql.DB, source string, columns Columns) (Store, error) {
	if db == nil {
		return nil, fmt.Errorf("database connection is nil")
	}
	if source == "" {
		return nil, fmt.Errorf("survey source path is required")
	}

	required := map[string]string{
		"age group":      columns.AgeGroup,
		"occupation":     columns.Occupation,
		"attention":      columns.Attention,
		"distraction":    columns.Distraction,
		"screen time":    columns.ScreenTime,
		"focus duration": columns.FocusDuration,
	}
	for field, header := range required {
		if header == "" {
			return nil, fmt.Errorf("no column mapped for %s", field)
		}
	}

	return &csvStore{
		db:      db,
		source:  source,
		columns: columns,
	}, nil
}

func (s *csvStore) FetchResponses(ctx context.Context) ([]store.ResponseRow, error) {
	if _, err := os.Stat(s.source); err != nil {
		return nil, domain.NewLoadError(domain.SourceUnreadable, err)
	}

	rows, err := s.db.QueryContext(ctx, s.query(), s.source)
	if err != nil {
		// The file is readable, so a failing read_csv projection means a
		// mapped column is missing or the file is not the expected shape.
		return nil, domain.NewLoadError(domain.SchemaMismatch, err)
	}
	defer rows.Close()

	return scanResponseRows(rows)
}

func (s *csvStore) query() string {
	projection := strings.Join([]string{
		column(s.columns.AgeGroup, "age_group"),
		column(s.columns.Occupation, "occupation"),
		column(s.columns.Attention, "attention_rating"),
		column(s.columns.Distraction, "distraction_rating"),
		column(s.columns.ScreenTime, "screen_time_minutes"),
		column(s.columns.FocusDuration, "focus_duration_minutes"),
		column(s.columns.Platforms, "platforms"),
		column(s.columns.Strategies, "strategies"),
		column(s.columns.StrategyEffectiveness, "strategy_effectiveness"),
		column(s.columns.Reflection, "reflection"),
		column(s.columns.DigitalGuilt, "digital_guilt"),
		column(s.columns.EmotionalImpact, "emotional_impact"),
	}, ", ")

	return fmt.Sprintf(
		"SELECT %s FROM read_csv(?, header = true, all_varchar = true)",
		projection,
	)
}

func column(header, alias string) string {
	if header == "" {
		return fmt.Sprintf("CAST(NULL AS VARCHAR) AS %s", alias)
	}
	quoted := strings.ReplaceAll(header, `"`, `""`)
	return fmt.Sprintf(`"%s" AS %s`, quoted, alias)
}

func scanResponseRows(rows *sql.Rows) ([]store.ResponseRow, error) {
	var result []store.ResponseRow
	for rows.Next() {
		var r store.ResponseRow
		err := rows.Scan(
			&r.AgeGroup,
			&r.Occupation,
			&r.AttentionRating,
			&r.DistractionRating,
			&r.ScreenTimeMinutes,
			&r.FocusDurationMinutes,
			&r.Platforms,
			&r.Strategies,
			&r.StrategyEffectiveness,
			&r.Reflection,
			&r.DigitalGuilt,
			&r.EmotionalImpact,
		)
		if err != nil {
			return nil, fmt.Errorf("scan response row: %w", err)
		}
		result = append(result, r)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate response rows: %w", err)
	}
	return result, nil
}
