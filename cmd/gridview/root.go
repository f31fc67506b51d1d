package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/staffledger/grid/config"
	"github.com/staffledger/grid/internal/logger"
	"github.com/staffledger/grid/internal/records"
)

var (
	// Global flags
	configPath    string
	logLevel      string
	dataPath      string
	samplePeople  int
	sampleTickets int

	cfg *config.Config
)

var rootCmd = &cobra.Command{
	Use:   "gridview",
	Short: "Browse people and leave tickets in virtualized grids",
	Long: `gridview shows a people list, the ticket list, a mirror of the people
list and the ticket history of whoever is selected in the mirror. Columns
can be resized and sorted, and every list can be filtered.`,
	Version:           "0.1.0",
	SilenceUsage:      true,
	PersistentPreRunE: setup,
	PersistentPostRun: func(*cobra.Command, []string) { logger.Close() },
}

func init() {
	rootCmd.PersistentFlags().
		StringVarP(&configPath, "config", "c", "", "Config file (default: $XDG_CONFIG_HOME/gridview/config.toml)")
	rootCmd.PersistentFlags().
		StringVar(&logLevel, "log", "", "Log to file at this level (debug, info, warn, error)")
	rootCmd.PersistentFlags().
		StringVarP(&dataPath, "data", "d", "", "TOML file with people and tickets (default: generated sample)")
	rootCmd.PersistentFlags().IntVar(&samplePeople, "sample-people", 200, "People in the generated sample")
	rootCmd.PersistentFlags().IntVar(&sampleTickets, "sample-tickets", 3, "Tickets per person in the generated sample")

	rootCmd.AddCommand(desktopCmd, tuiCmd, snapshotCmd)
}

func execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

// setup loads the configuration and starts logging before any command runs.
func setup(cmd *cobra.Command, args []string) error {
	var err error
	if configPath != "" {
		cfg, err = config.LoadFromFile(configPath)
	} else {
		cfg, err = config.Load()
	}
	if err != nil {
		return err
	}

	if logLevel != "" {
		cfg.Log.Enabled = true
		cfg.Log.Level = logLevel
	}
	if err := logger.Init(logger.Options{
		Enabled: cfg.Log.Enabled,
		LogDir:  cfg.Log.Dir,
		Level:   logger.ParseLevel(cfg.Log.Level),
	}); err != nil {
		return fmt.Errorf("init logger: %w", err)
	}
	logger.L.Info("gridview: starting", "command", cmd.Name(), "data", dataPath)
	return nil
}

// loadBook reads --data, or generates the sample book.
func loadBook() (*records.Book, error) {
	if dataPath == "" {
		return records.Sample(samplePeople, sampleTickets), nil
	}
	b, err := records.LoadFile(dataPath)
	if err != nil {
		return nil, fmt.Errorf("load data: %w", err)
	}
	logger.L.Info("gridview: data loaded", "people", len(b.People), "tickets", len(b.Tickets))
	return b, nil
}
