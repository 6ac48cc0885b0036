package ports

import "context"

// VibeBackend is the capability the interpreter needs from a language
// model: accept a system+user message pair and return the raw response
// text. Both the hosted and the local adapter satisfy it; selection
// happens once at construction and never changes afterwards.
type VibeBackend interface {
	// Complete submits the message pair and returns the model's raw
	// response, which is expected to be a JSON document.
	Complete(ctx context.Context, system, user string) (string, error)

	// Model identifies the backing model for log records.
	Model() string
}
