// Package cli implements the command-line surface of gemini-pr-review.
package cli

import (
	"log/slog"
	"os"
	"strings"

	"github.com/spf13/cobra"
)

// Exit codes
const (
	ExitSuccess      = 0
	ExitUsageError   = 2
	ExitRuntimeError = 4
)

var rootCmd = &cobra.Command{
	Use:   "gemini-pr-review",
	Short: "AI code review for pull requests",
	Long: "gemini-pr-review splits a pull-request diff into chunks, reviews each chunk\n" +
		"with Gemini, and posts the consolidated review as a pull-request comment.",
	SilenceUsage: true,
	RunE:         runReview,
}

// exitCode is set by command handlers to control the process exit code.
var exitCode = ExitSuccess

// Run executes the root command and returns an exit code.
func Run() int {
	addReviewFlags(rootCmd)

	if err := rootCmd.Execute(); err != nil {
		// Handlers set exitCode before returning; anything else is a flag
		// parsing failure cobra has already reported.
		if exitCode == ExitSuccess {
			return ExitUsageError
		}
		return exitCode
	}

	return exitCode
}

// setupLogging installs a text handler at the requested level on the default
// logger. Unknown levels fall back to info.
func setupLogging(level string) {
	slog.SetDefault(slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{
		Level: parseLogLevel(level),
	})))
}

func parseLogLevel(level string) slog.Level {
	switch strings.ToLower(level) {
	case "debug":
		return slog.LevelDebug
	case "warn", "warning":
		return slog.LevelWarn
	case "error":
		return slog.LevelError
	default:
		return slog.LevelInfo
	}
}

func splitComma(s string) []string {
	if s == "" {
		return nil
	}
	var result []string
	for _, p := range strings.Split(s, ",") {
		if p = strings.TrimSpace(p); p != "" {
			result = append(result, p)
		}
	}
	return result
}
