package main

import (
	"fmt"
	"net"
	"os"
	"time"

	"github.com/nityasrik/Survey-Analysis/pkg/server"
	"github.com/nityasrik/Survey-Analysis/pkg/services/config"
	"github.com/nityasrik/Survey-Analysis/pkg/services/dataset"
	"github.com/nityasrik/Survey-Analysis/pkg/services/insights"
	"github.com/nityasrik/Survey-Analysis/pkg/store/duckdb"
	duckdbsurvey "github.com/nityasrik/Survey-Analysis/pkg/store/duckdb/survey"

	"github.com/joho/godotenv"
	"github.com/rs/zerolog"
	"github.com/spf13/cobra"
)

var cfgPath string

func main() {
	var rootCmd = &cobra.Command{
		Use:   "web",
		Short: "Start the web server for the survey dashboard",
		RunE:  runServer,
	}

	rootCmd.Flags().StringVarP(&cfgPath, "config", "c", "",
		"Path to the config file (defaults match the bundled survey.csv)")

	if err := rootCmd.Execute(); err != nil {
		fmt.Println(err)
		os.Exit(1)
	}
}

func runServer(cmd *cobra.Command, _ []string) error {
	if err := godotenv.Load(); err != nil {
		fmt.Printf("Error loading .env file: %v\n", err)
	}

	logger := zerolog.New(os.Stdout).With().Timestamp().Logger()
	ctx := logger.WithContext(cmd.Context())

	cfg, err := config.Load(cfgPath)
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

	table, report, err := loader.Load(ctx)
	if err != nil {
		return err
	}
	logger.Info().
		Int("accepted", report.Accepted).
		Int("dropped", report.Dropped).
		Str("source", cfg.Dataset.Path).
		Msg("survey dataset loaded")

	analyzer, err := insights.NewAnalyzer(table, report, insights.Options{
		TopTerms:                cfg.Analysis.TopTerms,
		TopStrategies:           cfg.Analysis.TopStrategies,
		ScreenTimeBucketMinutes: cfg.Analysis.ScreenTimeBucketMinutes,
		FocusBucketMinutes:      cfg.Analysis.FocusBucketMinutes,
	})
	if err != nil {
		return fmt.Errorf("failed to create analyzer: %w", err)
	}

	host := cfg.Server.Host
	port := cfg.Server.Port
	if envHost := os.Getenv("SERVER_HOST"); envHost != "" {
		host = envHost
	}
	if envPort := os.Getenv("SERVER_PORT"); envPort != "" {
		port = envPort
	}

	webAPI := server.NewWebAPI(server.Config{
		Addr:            net.JoinHostPort(host, port),
		ShutdownTimeout: time.Duration(cfg.Server.ShutdownTimeoutSeconds) * time.Second,
		AllowedOrigins:  cfg.Server.AllowedOrigins,
		Dependencies: server.Dependencies{
			Analytics: analyzer,
			Logger:    logger,
		},
	})

	return webAPI.Start()
}
