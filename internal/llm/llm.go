// Package llm defines the contract between release-note generation and a
// generative text backend.
package llm

import (
	"context"
	"fmt"
)

// Reason tells why a completion produced no usable text.
type Reason string

const (
	// ReasonTransport covers connection errors and timeouts.
	ReasonTransport Reason = "transport"
	// ReasonStatus covers non-success HTTP statuses.
	ReasonStatus Reason = "status"
	// ReasonDecode covers bodies that do not have the expected shape.
	ReasonDecode Reason = "decode"
	// ReasonEmpty covers well-formed responses without any text.
	ReasonEmpty Reason = "empty"
)

// Completion is either generated text or the reason there is none.
type Completion struct {
	text   string
	reason Reason
	detail string
}

// Text builds a successful completion.
func Text(text string) Completion {
	return Completion{text: text}
}

// Unusable builds a completion that carries no text.
func Unusable(reason Reason, detail string) Completion {
	return Completion{reason: reason, detail: detail}
}

// Text returns the generated text and whether there is any.
func (c Completion) Text() (string, bool) {
	return c.text, c.reason == ""
}

// Reason returns why the completion is unusable, or "" when it has text.
func (c Completion) Reason() Reason {
	return c.reason
}

func (c Completion) String() string {
	if c.reason == "" {
		return fmt.Sprintf("text(%d bytes)", len(c.text))
	}
	return fmt.Sprintf("%s: %s", c.reason, c.detail)
}

// Completer sends a single user-turn prompt to a generative backend.
type Completer interface {
	Complete(ctx context.Context, prompt string) Completion
}
