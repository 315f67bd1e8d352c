// Command careerpath runs the career portal API.
//
//	careerpath serve --config config/local.yaml
//	careerpath catalog videos
package main

import (
	"fmt"
	"log/slog"
	"os"

	"github.com/spf13/cobra"
)

var version = "dev"

func main() {
	var configPath string

	rootCmd := &cobra.Command{
		Use:   "careerpath",
		Short: "Career guidance portal for students and job seekers",
		Long: `careerpath serves the portal API: sign-in for the student and
job-seeker tracks, profile and document uploads, and the static catalog
of roadmaps, videos, internships, job roles and companies.

Configuration comes from the YAML file given by --config or CONFIG_PATH,
with environment variables taking precedence.`,
		Version:       version,
		SilenceUsage:  true,
		SilenceErrors: true,
	}
	rootCmd.PersistentFlags().StringVarP(&configPath, "config", "c", "", "path to the YAML config file")

	rootCmd.AddCommand(
		serveCmd(&configPath),
		catalogCmd(&configPath),
	)

	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %s\n", err)
		os.Exit(1)
	}
}

// setupLogger picks the slog handler for env: JSON in prod and staging,
// text everywhere else.
func setupLogger(env string) *slog.Logger {
	switch env {
	case "prod":
		return slog.New(slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{Level: slog.LevelInfo}))
	case "staging":
		return slog.New(slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{Level: slog.LevelDebug}))
	default:
		return slog.New(slog.NewTextHandler(os.Stdout, &slog.HandlerOptions{Level: slog.LevelDebug}))
	}
}
