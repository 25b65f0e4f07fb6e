package main

import (
	"context"
	"errors"
)

// Message roles understood by every Completer.
const (
	RoleSystem    = "system"
	RoleUser      = "user"
	RoleAssistant = "assistant"
)

// errEmptyCompletion is returned when a model answers with no text.
var errEmptyCompletion = errors.New("empty completion")

// Message is one role-tagged entry of a completion request.
type Message struct {
	Role    string `json:"role"`
	Content string `json:"content"`
}

// Completer sends messages to a text-completion API and returns the model's
// text. Implementations must ask the model to answer with a JSON object.
type Completer interface {
	Complete(ctx context.Context, messages []Message) (string, error)
}
