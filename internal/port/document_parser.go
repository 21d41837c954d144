package port

import (
	"context"
)

// ParseInput carries the document bytes handed to a vision provider.
type ParseInput struct {
	FileBytes   []byte
	ContentType string
}

// ParseOutput is the provider's answer. RawText is free text: it is expected
// to contain a JSON object, but no provider guarantees that, so downstream
// code must treat it as unreliable.
type ParseOutput struct {
	RawText    string
	ModelUsed  string
	PromptUsed string
}

// DocumentParser abstracts a hosted vision-capable LLM that transcribes a
// cheque image into text.
type DocumentParser interface {
	Parse(ctx context.Context, input ParseInput) (*ParseOutput, error)
}
