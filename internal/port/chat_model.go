package port

import "context"

// Chat message roles understood by every provider.
const (
	RoleUser      = "user"
	RoleAssistant = "assistant"
)

// ChatMessage is one turn of a chat completion conversation.
type ChatMessage struct {
	Role    string
	Content string
}

// ChatResult carries the assistant's reply and the model that produced it.
type ChatResult struct {
	Text  string
	Model string
}

// ChatModel abstracts an LLM chat completion provider.
type ChatModel interface {
	// Complete sends the system prompt plus conversation history and returns
	// the assistant's reply.
	Complete(ctx context.Context, system string, messages []ChatMessage) (*ChatResult, error)
}
