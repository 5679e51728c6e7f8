package review

import "github.com/reviewloop/gemini-pr-review/internal/gemini"

// Option configures a Pipeline.
type Option func(*Config)

// WithChunkSize sets the number of characters per review chunk.
func WithChunkSize(n int) Option {
	return func(c *Config) {
		c.ChunkSize = n
	}
}

// WithExtraInstructions sets the extra reviewer instructions.
func WithExtraInstructions(extra string) Option {
	return func(c *Config) {
		c.ExtraInstructions = extra
	}
}

// NewWithOptions creates a new pipeline with the provided options.
func NewWithOptions(model gemini.API, opts ...Option) (*Pipeline, error) {
	config := DefaultConfig()
	for _, opt := range opts {
		opt(config)
	}
	return New(model, config)
}
