package main

import (
	"context"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"tripmate/internal/app"
	"tripmate/internal/config"
	"tripmate/internal/logging"
)

var (
	version  = "0.1.0"
	cfgFile  string
	model    string
	watchDir string
)

func main() {
	rootCmd := &cobra.Command{
		Use:   "tripmate",
		Short: "AI travel companion for the terminal",
		Long: `TripMate is a terminal travel companion built on the Gemini API.
It bundles a conversational assistant, a day planner, an image lens,
a translator with speech, and an emergency helper, all aware of your
current location.`,
		RunE: runApp,
	}

	rootCmd.PersistentFlags().StringVar(&cfgFile, "config", "", "config file (default is $HOME/.config/tripmate/config.yaml)")
	rootCmd.PersistentFlags().StringVar(&model, "model", "", "text model to use (default is gemini-2.5-flash)")
	rootCmd.PersistentFlags().StringVar(&watchDir, "watch-dir", "", "directory watched for dropped images")

	rootCmd.AddCommand(&cobra.Command{
		Use:   "version",
		Short: "Print the version number",
		Run: func(cmd *cobra.Command, args []string) {
			fmt.Printf("tripmate version %s\n", version)
		},
	})

	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

func runApp(cmd *cobra.Command, args []string) error {
	cfg, err := config.Load(cfgFile)
	if err != nil {
		return fmt.Errorf("failed to load config: %w", err)
	}
	cfg.Version = version

	if model != "" {
		cfg.Model.Name = model
	}
	if watchDir != "" {
		cfg.Picker.WatchDir = watchDir
	}

	if err := cfg.Validate(); err != nil {
		return err
	}

	if cfg.Logging.File {
		dir := config.ConfigDir()
		if err := os.MkdirAll(dir, 0755); err == nil {
			if err := logging.EnableFileLogging(dir, logging.Level(cfg.Logging.Level)); err != nil {
				fmt.Fprintf(os.Stderr, "warning: file logging disabled: %v\n", err)
			}
		}
	}
	defer logging.Close()

	ctx := context.Background()
	a, err := app.New(ctx, cfg)
	if err != nil {
		return err
	}

	logging.Info("tripmate starting", "version", version, "model", cfg.Model.Name)
	return a.Run(ctx)
}
