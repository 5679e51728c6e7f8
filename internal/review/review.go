// Package review implements the chunked code-review pipeline.
//
// It coordinates the chunker, the prompt templates, and the model boundary:
// each chunk is reviewed in its own seeded conversation, and when more than
// one chunk was reviewed an extra model call condenses the chunk reviews into
// a single summary.
package review

import (
	"context"
	"fmt"
	"log/slog"
	"strings"

	"github.com/reviewloop/gemini-pr-review/internal/chunker"
	"github.com/reviewloop/gemini-pr-review/internal/constants"
	"github.com/reviewloop/gemini-pr-review/internal/errors"
	"github.com/reviewloop/gemini-pr-review/internal/gemini"
	"github.com/reviewloop/gemini-pr-review/internal/prompt"
)

// Config holds configuration for the pipeline.
type Config struct {
	// ChunkSize is the number of characters per review chunk. Must be positive.
	ChunkSize int

	// ExtraInstructions is passed through to the prompt builder.
	ExtraInstructions string
}

// DefaultConfig returns the default configuration.
func DefaultConfig() *Config {
	return &Config{
		ChunkSize: constants.DefaultChunkSize,
	}
}

// Validate checks if the configuration is valid.
func (c *Config) Validate() error {
	if c.ChunkSize <= 0 {
		return errors.ErrChunkSize
	}
	return nil
}

// Pipeline reviews an input text chunk by chunk.
type Pipeline struct {
	model  gemini.API
	config *Config
}

// New creates a new pipeline with the provided model boundary.
// If config is nil, DefaultConfig() will be used.
func New(model gemini.API, config *Config) (*Pipeline, error) {
	if config == nil {
		config = DefaultConfig()
	}

	if err := config.Validate(); err != nil {
		return nil, fmt.Errorf("invalid config: %w", err)
	}

	return &Pipeline{
		model:  model,
		config: config,
	}, nil
}

// Result carries the per-chunk reviews, in chunk order, and the single
// consolidated review derived from them.
type Result struct {
	ChunkReviews []string
	Summary      string
}

// Run reviews text and returns both the ordered per-chunk reviews and the
// final review. Chunks are reviewed strictly in order, one blocking model
// call at a time; any call failure aborts the run with no partial result.
//
// When the input produces no chunks at all, one summarization call is still
// issued carrying the fixed no-changes instruction, so the posted comment
// states explicitly that nothing was found rather than being skipped.
func (p *Pipeline) Run(ctx context.Context, text string) (*Result, error) {
	chunks, err := chunker.Split(text, p.config.ChunkSize)
	if err != nil {
		return nil, err
	}
	slog.Info("reviewing input", "chunks", len(chunks), "chunk_size", p.config.ChunkSize)

	seed := []gemini.Turn{
		{Role: gemini.RoleUser, Text: prompt.Review(p.config.ExtraInstructions)},
		{Role: gemini.RoleModel, Text: prompt.Ack},
	}

	reviews := make([]string, 0, len(chunks))
	for i, chunk := range chunks {
		conversation := p.model.StartConversation(seed)
		reply, err := conversation.SendMessage(ctx, chunk)
		if err != nil {
			return nil, &errors.ReviewError{Stage: "chunk review", Chunk: i, Err: err}
		}
		slog.Debug("chunk reviewed", "chunk", i, "reply_chars", len(reply))
		reviews = append(reviews, reply)
	}

	if len(reviews) == 1 {
		return &Result{ChunkReviews: reviews, Summary: reviews[0]}, nil
	}

	summarizePrompt := prompt.Summarize()
	if len(reviews) == 0 {
		summarizePrompt = prompt.NoChanges
	}

	conversation := p.model.StartConversation(nil)
	summary, err := conversation.SendMessage(ctx, summarizePrompt+"\n\n"+strings.Join(reviews, "\n"))
	if err != nil {
		return nil, &errors.ReviewError{Stage: "summarization", Chunk: -1, Err: err}
	}
	slog.Debug("reviews summarized", "reviews", len(reviews), "reply_chars", len(summary))

	return &Result{ChunkReviews: reviews, Summary: summary}, nil
}
