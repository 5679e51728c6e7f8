package gemini

import (
	"context"
	"log/slog"

	"github.com/google/generative-ai-go/genai"
	"google.golang.org/api/option"

	"github.com/reviewloop/gemini-pr-review/internal/constants"
	"github.com/reviewloop/gemini-pr-review/internal/errors"
)

// GenerationConfig holds the model identifier and sampling parameters applied
// to every conversation the client opens.
type GenerationConfig struct {
	Model             string
	Temperature       float32
	TopP              float32
	TopK              int32
	MaxOutputTokens   int32
	SystemInstruction string
}

// DefaultGenerationConfig returns the generation settings used when the
// invoker overrides nothing.
func DefaultGenerationConfig() GenerationConfig {
	return GenerationConfig{
		Model:           constants.DefaultModel,
		Temperature:     constants.DefaultTemperature,
		TopP:            constants.DefaultTopP,
		TopK:            constants.DefaultTopK,
		MaxOutputTokens: constants.DefaultMaxOutputTokens,
	}
}

// Client implements the API interface over the Gemini service.
type Client struct {
	client *genai.Client
	model  *genai.GenerativeModel
}

// ensure Client implements API interface
var _ API = (*Client)(nil)

// NewClient creates a new Gemini client configured with cfg. The API key is
// passed in explicitly; this package never reads the environment.
func NewClient(ctx context.Context, apiKey string, cfg GenerationConfig) (*Client, error) {
	if apiKey == "" {
		return nil, errors.ErrNoGeminiKey
	}

	client, err := genai.NewClient(ctx, option.WithAPIKey(apiKey))
	if err != nil {
		return nil, errors.API("Gemini", "NewClient", err)
	}

	model := client.GenerativeModel(cfg.Model)
	model.SetTemperature(cfg.Temperature)
	model.SetTopP(cfg.TopP)
	model.SetMaxOutputTokens(cfg.MaxOutputTokens)
	if cfg.TopK > 0 {
		model.SetTopK(cfg.TopK)
	}
	if cfg.SystemInstruction != "" {
		model.SystemInstruction = genai.NewUserContent(genai.Text(cfg.SystemInstruction))
	}

	return &Client{
		client: client,
		model:  model,
	}, nil
}

// Close closes the Gemini client.
func (c *Client) Close() error {
	return c.client.Close()
}

// StartConversation opens a chat session seeded with the given history.
func (c *Client) StartConversation(history []Turn) Conversation {
	session := c.model.StartChat()
	session.History = historyToContents(history)
	return &conversation{session: session}
}

// conversation wraps one genai chat session.
type conversation struct {
	session *genai.ChatSession
}

// SendMessage submits text as the next user turn and returns the reply text.
func (c *conversation) SendMessage(ctx context.Context, text string) (string, error) {
	resp, err := c.session.SendMessage(ctx, genai.Text(text))
	if err != nil {
		return "", errors.API("Gemini", "SendMessage", err)
	}

	reply, err := extractText(resp)
	if err != nil {
		return "", err
	}

	slog.Debug("model reply", "chars", len(reply))
	return reply, nil
}

func historyToContents(history []Turn) []*genai.Content {
	if len(history) == 0 {
		return nil
	}
	contents := make([]*genai.Content, 0, len(history))
	for _, turn := range history {
		contents = append(contents, &genai.Content{
			Role:  turn.Role,
			Parts: []genai.Part{genai.Text(turn.Text)},
		})
	}
	return contents
}

func extractText(resp *genai.GenerateContentResponse) (string, error) {
	if len(resp.Candidates) == 0 {
		return "", errors.ErrEmptyReply
	}

	content := resp.Candidates[0].Content
	if content == nil || len(content.Parts) == 0 {
		return "", errors.ErrEmptyReply
	}

	var reply string
	for _, part := range content.Parts {
		if text, ok := part.(genai.Text); ok {
			reply += string(text)
		}
	}
	if reply == "" {
		return "", errors.ErrEmptyReply
	}
	return reply, nil
}
