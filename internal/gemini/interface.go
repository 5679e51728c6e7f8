// Package gemini provides the conversational model boundary used by the
// review pipeline, with a concrete adapter over the Gemini API.
package gemini

import "context"

// Turn roles understood by the model service.
const (
	RoleUser  = "user"
	RoleModel = "model"
)

// Turn is one prior exchange in a conversation's seed history.
type Turn struct {
	Role string
	Text string
}

// Conversation is a single model-interaction session. It is used for exactly
// one chunk review or one summarization call and is not persisted.
type Conversation interface {
	// SendMessage submits one user message and returns the model's text reply.
	SendMessage(ctx context.Context, text string) (string, error)
}

// API defines the interface for conversational model operations.
// This interface enables testing by allowing in-memory fake implementations.
type API interface {
	// StartConversation opens a fresh conversation seeded with the given
	// history. An empty history starts an unseeded conversation.
	StartConversation(history []Turn) Conversation

	// Close closes the underlying client connection.
	Close() error
}
