package cli

import (
	"fmt"
	"log/slog"

	"github.com/spf13/cobra"

	"github.com/reviewloop/gemini-pr-review/internal/command"
	"github.com/reviewloop/gemini-pr-review/internal/comment"
	"github.com/reviewloop/gemini-pr-review/internal/config"
	"github.com/reviewloop/gemini-pr-review/internal/constants"
	"github.com/reviewloop/gemini-pr-review/internal/gemini"
	"github.com/reviewloop/gemini-pr-review/internal/github"
	"github.com/reviewloop/gemini-pr-review/internal/review"
)

// Review flags
var (
	flagDiff               string
	flagChunkSize          int
	flagModel              string
	flagExtraPrompt        string
	flagTemperature        float32
	flagTopP               float32
	flagTopK               int32
	flagMaxOutputTokens    int32
	flagLogLevel           string
	flagGitHubComment      string
	flagIncludeExtensions  string
	flagAlwaysIncludeFiles string
)

func addReviewFlags(cmd *cobra.Command) {
	cmd.Flags().StringVar(&flagDiff, "diff", "", "Pull request diff")
	cmd.Flags().IntVar(&flagChunkSize, "diff-chunk-size", constants.DefaultChunkSize, "Characters per review chunk")
	cmd.Flags().StringVar(&flagModel, "model", constants.DefaultModel, "Gemini model name")
	cmd.Flags().StringVar(&flagExtraPrompt, "extra-prompt", "", "Extra reviewer instructions (sent as system instruction)")
	cmd.Flags().Float32Var(&flagTemperature, "temperature", constants.DefaultTemperature, "Sampling temperature")
	cmd.Flags().Float32Var(&flagTopP, "top-p", constants.DefaultTopP, "Nucleus-sampling probability")
	cmd.Flags().Int32Var(&flagTopK, "top-k", constants.DefaultTopK, "Top-k sampling breadth (0 disables)")
	cmd.Flags().Int32Var(&flagMaxOutputTokens, "max-output-tokens", constants.DefaultMaxOutputTokens, "Maximum generated tokens per reply")
	cmd.Flags().StringVar(&flagLogLevel, "log-level", "info", "Log level (debug, info, warn, error)")
	cmd.Flags().StringVar(&flagGitHubComment, "github-comment", "", "Triggering comment selecting the review mode")
	cmd.Flags().StringVar(&flagIncludeExtensions, "include-extensions", "", "Comma-separated file extensions for full-repository review")
	cmd.Flags().StringVar(&flagAlwaysIncludeFiles, "always-include-files", "", "Comma-separated files always included in full-repository review")
}

func runReview(cmd *cobra.Command, _ []string) error {
	setupLogging(flagLogLevel)
	ctx := cmd.Context()

	cfg, err := config.FromEnv()
	if err != nil {
		exitCode = ExitUsageError
		return fmt.Errorf("configuration: %w", err)
	}
	owner, repo, err := cfg.SplitRepository()
	if err != nil {
		exitCode = ExitUsageError
		return fmt.Errorf("configuration: %w", err)
	}

	model, err := gemini.NewClient(ctx, cfg.GeminiAPIKey, gemini.GenerationConfig{
		Model:             flagModel,
		Temperature:       flagTemperature,
		TopP:              flagTopP,
		TopK:              flagTopK,
		MaxOutputTokens:   flagMaxOutputTokens,
		SystemInstruction: flagExtraPrompt,
	})
	if err != nil {
		exitCode = ExitRuntimeError
		return err
	}
	defer model.Close()

	gh, err := github.NewClient(ctx, cfg.GitHubToken)
	if err != nil {
		exitCode = ExitRuntimeError
		return err
	}

	kind := command.Parse(flagGitHubComment)
	slog.Info("starting review", "repository", cfg.Repository, "pr", cfg.PullRequestNumber, "mode", kind)

	content := flagDiff
	if kind == command.KindAll {
		content, err = gh.RepositoryContents(ctx, owner, repo, constants.DefaultBranch,
			splitComma(flagIncludeExtensions), splitComma(flagAlwaysIncludeFiles))
		if err != nil {
			exitCode = ExitRuntimeError
			return err
		}
	}

	pipeline, err := review.NewWithOptions(model,
		review.WithChunkSize(flagChunkSize),
		review.WithExtraInstructions(flagExtraPrompt),
	)
	if err != nil {
		exitCode = ExitUsageError
		return err
	}

	result, err := pipeline.Run(ctx, content)
	if err != nil {
		exitCode = ExitRuntimeError
		return err
	}

	body := comment.Format(result.Summary, result.ChunkReviews)
	if err := gh.PublishReview(ctx, owner, repo, cfg.PullRequestNumber, cfg.CommitHash, body); err != nil {
		exitCode = ExitRuntimeError
		return err
	}

	return nil
}
