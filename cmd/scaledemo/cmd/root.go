package cmd

import (
	"fmt"
	"log/slog"
	"os"
	"runtime"
	"strconv"

	"github.com/joho/godotenv"
	"github.com/spf13/cobra"

	"github.com/gogpu/scaledraw"
)

var (
	version = "0.1.0"
	verbose bool
	workers int
)

var rootCmd = &cobra.Command{
	Use:   "scaledemo",
	Short: "Parallel image scaling with the scaledraw engine",
	Long: `scaledemo — scales images with the scaledraw resampling engine.

Scaling runs through the same pipeline the library exposes: nearest or
bicubic resampling, staged downscales, mixed-direction routing, and
parallel row-band dispatch.`,
	Version: version,
	PersistentPreRun: func(_ *cobra.Command, _ []string) {
		if verbose {
			scaledraw.SetLogger(slog.New(slog.NewTextHandler(os.Stderr,
				&slog.HandlerOptions{Level: slog.LevelDebug})))
		}
	},
}

// Execute runs the command tree.
func Execute() error {
	return rootCmd.Execute()
}

func init() {
	// A local .env can set defaults; a missing file is fine.
	_ = godotenv.Load()

	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "verbose output")
	rootCmd.PersistentFlags().IntVarP(&workers, "workers", "j", envInt("SCALEDEMO_WORKERS", 0),
		"parallel workers (0 = all CPUs)")
	rootCmd.SetVersionTemplate(fmt.Sprintf(
		"scaledemo %s (%s/%s, %s)\n",
		version, runtime.GOOS, runtime.GOARCH, runtime.Version(),
	))
}

// envInt reads an integer environment default.
func envInt(key string, fallback int) int {
	if v := os.Getenv(key); v != "" {
		if n, err := strconv.Atoi(v); err == nil {
			return n
		}
	}
	return fallback
}

// envString reads a string environment default.
func envString(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}

// logVerbose prints a message only when --verbose is set.
func logVerbose(format string, args ...any) {
	if verbose {
		fmt.Fprintf(os.Stderr, "[scaledemo] "+format+"\n", args...)
	}
}

// algoByName resolves an algorithm flag value.
func algoByName(name string) (scaledraw.Algo, error) {
	switch name {
	case "nearest":
		return scaledraw.NewNearestAlgo(), nil
	case "bicubic":
		return scaledraw.NewBicubicAlgo(), nil
	default:
		return nil, fmt.Errorf("unknown algorithm %q (want nearest or bicubic)", name)
	}
}
