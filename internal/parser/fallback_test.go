package parser_test

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"chequero/internal/parser"
	"chequero/internal/port"
	"chequero/mocks"
)

func input() port.ParseInput {
	return port.ParseInput{FileBytes: []byte{0xFF, 0xD8}, ContentType: "image/jpeg"}
}

func TestFallbackParser_FirstProviderSucceeds(t *testing.T) {
	primary := new(mocks.MockDocumentParser)
	secondary := new(mocks.MockDocumentParser)

	primary.On("Parse", mock.Anything, mock.Anything).
		Return(&port.ParseOutput{RawText: `{"cheques": []}`, ModelUsed: "gemini-2.5-flash"}, nil)

	f := parser.NewFallbackParser(
		[]port.DocumentParser{primary, secondary},
		[]string{"gemini", "openai"},
	)

	out, err := f.Parse(context.Background(), input())

	require.NoError(t, err)
	assert.Equal(t, "gemini-2.5-flash", out.ModelUsed)
	secondary.AssertNotCalled(t, "Parse", mock.Anything, mock.Anything)
}

func TestFallbackParser_FallsBackOnFailure(t *testing.T) {
	primary := new(mocks.MockDocumentParser)
	secondary := new(mocks.MockDocumentParser)

	primary.On("Parse", mock.Anything, mock.Anything).
		Return(nil, errors.New("upstream 500"))
	secondary.On("Parse", mock.Anything, mock.Anything).
		Return(&port.ParseOutput{RawText: "{}", ModelUsed: "gpt-4o"}, nil)

	f := parser.NewFallbackParser(
		[]port.DocumentParser{primary, secondary},
		[]string{"gemini", "openai"},
	)

	out, err := f.Parse(context.Background(), input())

	require.NoError(t, err)
	assert.Equal(t, "gpt-4o", out.ModelUsed)
}

func TestFallbackParser_RateLimitOpensCircuit(t *testing.T) {
	primary := new(mocks.MockDocumentParser)
	secondary := new(mocks.MockDocumentParser)

	primary.On("Parse", mock.Anything, mock.Anything).
		Return(nil, parser.NewRateLimitError("gemini", errors.New("quota exceeded"), 120)).Once()
	secondary.On("Parse", mock.Anything, mock.Anything).
		Return(&port.ParseOutput{RawText: "{}", ModelUsed: "gpt-4o"}, nil).Twice()

	f := parser.NewFallbackParser(
		[]port.DocumentParser{primary, secondary},
		[]string{"gemini", "openai"},
	)

	// First call trips the primary's circuit.
	_, err := f.Parse(context.Background(), input())
	require.NoError(t, err)

	// Second call skips the primary entirely.
	_, err = f.Parse(context.Background(), input())
	require.NoError(t, err)

	primary.AssertNumberOfCalls(t, "Parse", 1)
	secondary.AssertNumberOfCalls(t, "Parse", 2)
}

func TestFallbackParser_AllFail(t *testing.T) {
	primary := new(mocks.MockDocumentParser)
	secondary := new(mocks.MockDocumentParser)

	primary.On("Parse", mock.Anything, mock.Anything).Return(nil, errors.New("bad request"))
	secondary.On("Parse", mock.Anything, mock.Anything).Return(nil, errors.New("timeout"))

	f := parser.NewFallbackParser(
		[]port.DocumentParser{primary, secondary},
		[]string{"gemini", "openai"},
	)

	_, err := f.Parse(context.Background(), input())

	require.Error(t, err)
	assert.Contains(t, err.Error(), "all providers failed")
}

func TestFallbackParser_AllRateLimited(t *testing.T) {
	primary := new(mocks.MockDocumentParser)
	secondary := new(mocks.MockDocumentParser)

	primary.On("Parse", mock.Anything, mock.Anything).
		Return(nil, parser.NewRateLimitError("gemini", errors.New("quota"), 30))
	secondary.On("Parse", mock.Anything, mock.Anything).
		Return(nil, parser.NewRateLimitError("openai", errors.New("quota"), 60))

	f := parser.NewFallbackParser(
		[]port.DocumentParser{primary, secondary},
		[]string{"gemini", "openai"},
	)

	_, err := f.Parse(context.Background(), input())

	var rlErr *parser.RateLimitError
	require.ErrorAs(t, err, &rlErr)
	assert.InDelta(t, 30, rlErr.RetryAfter.Seconds(), 2)
}
