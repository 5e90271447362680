package llm

import (
	"context"
	"io"
)

// Message represents a chat message in a provider-agnostic format
type Message struct {
	Role    string // "user", "assistant", "system"
	Content string
}

// Option allows for optional parameters like Temperature, Model, etc.
type Option func(*Options)

type Options struct {
	Temperature float64
	Model       string // Override default model
}

func WithTemperature(temp float64) Option {
	return func(o *Options) {
		o.Temperature = temp
	}
}

func WithModel(model string) Option {
	return func(o *Options) {
		o.Model = model
	}
}

// StreamResult hands the upstream response body to the caller untouched.
// The receiver owns Body and must close it; reads suspend on network I/O and
// deliver bytes in whatever wire framing the upstream uses.
type StreamResult struct {
	Body        io.ReadCloser
	ContentType string
}

// StreamingProvider is the contract for a backend that can stream a chat
// completion. The stream is relayed verbatim, so implementations must not
// decode or re-frame the body.
type StreamingProvider interface {
	StreamChat(ctx context.Context, history []Message, options ...Option) (*StreamResult, error)
}
