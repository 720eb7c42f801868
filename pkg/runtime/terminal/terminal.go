package terminal

import (
	"fmt"
	"io"
	"os"

	"github.com/nityasrik/Survey-Analysis/pkg/adapters"
	"github.com/nityasrik/Survey-Analysis/pkg/models/domain"
	"github.com/nityasrik/Survey-Analysis/pkg/services/config"
	"github.com/nityasrik/Survey-Analysis/pkg/services/dataset"
	"github.com/nityasrik/Survey-Analysis/pkg/services/insights"
	"github.com/nityasrik/Survey-Analysis/pkg/store/duckdb"
	duckdbsurvey "github.com/nityasrik/Survey-Analysis/pkg/store/duckdb/survey"
	"github.com/spf13/cobra"
)

// CLI represents the command-line interface
type CLI struct {
	reporter *Reporter
	rootCmd  *cobra.Command

	cfgPath     string
	ageGroups   []string
	occupations []string
}

// Options contain configuration for the CLI
type Options struct {
	Output io.Writer
}

// NewCLI creates a new CLI instance
func NewCLI(opts Options) *CLI {
	if opts.Output == nil {
		opts.Output = os.Stdout
	}

	cli := &CLI{
		reporter: NewReporter(opts.Output),
	}

	cli.rootCmd = cli.newRootCmd()
	return cli
}

func (cli *CLI) Execute() error {
	return cli.rootCmd.Execute()
}

func (cli *CLI) newRootCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "report",
		Short: "Print a digital-habits survey report for a filter selection",
		RunE:  cli.runReport,
	}

	cmd.Flags().StringVarP(&cli.cfgPath, "config", "c", "",
		"Path to the config file (defaults match the bundled survey.csv)")
	cmd.Flags().StringSliceVar(&cli.ageGroups, "age-group", nil,
		"Age groups to include (repeatable; all when omitted)")
	cmd.Flags().StringSliceVar(&cli.occupations, "occupation", nil,
		"Occupations to include (repeatable; all when omitted)")

	return cmd
}

func (cli *CLI) runReport(cmd *cobra.Command, _ []string) error {
	ctx := cmd.Context()

	cfg, err := config.Load(cli.cfgPath)
	if err != nil {
		return fmt.Errorf("failed to load config: %w", err)
	}

	db, err := duckdb.NewDB(duckdb.Settings{DbPath: ":memory:"})
	if err != nil {
		return fmt.Errorf("failed to create DuckDB instance: %w", err)
	}
	defer db.Close()

	store, err := duckdbsurvey.NewStore(db, cfg.Dataset.Path, cfg.Dataset.Columns.Mapping())
	if err != nil {
		return fmt.Errorf("failed to create survey store: %w", err)
	}
	loader, err := dataset.NewLoader(store)
	if err != nil {
		return fmt.Errorf("failed to create loader: %w", err)
	}

	table, _, err := loader.Load(ctx)
	if err != nil {
		return err
	}

	sel := domain.FilterSelection{
		AgeGroups:   cli.ageGroups,
		Occupations: cli.occupations,
	}
	result, err := insights.Aggregate(table, sel, insights.Options{
		TopTerms:                cfg.Analysis.TopTerms,
		TopStrategies:           cfg.Analysis.TopStrategies,
		ScreenTimeBucketMinutes: cfg.Analysis.ScreenTimeBucketMinutes,
		FocusBucketMinutes:      cfg.Analysis.FocusBucketMinutes,
	})
	if err != nil {
		return err
	}

	report := adapters.MapAggregateResultToReport(result, sel)
	return cli.reporter.Handle(&report)
}
