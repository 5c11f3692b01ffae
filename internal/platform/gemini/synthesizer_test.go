package gemini

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/slidegen/slidegen-api/internal/domain"
	"github.com/slidegen/slidegen-api/internal/generation"
)

// stubBackend is a CompletionBackend returning canned text.
type stubBackend struct {
	text   string
	err    error
	prompt string
}

func (s *stubBackend) Complete(_ context.Context, prompt string) (string, error) {
	s.prompt = prompt
	if s.err != nil {
		return "", s.err
	}
	return s.text, nil
}

// stubSearcher resolves every query to a fixed URL pattern.
type stubSearcher struct {
	err error
}

func (s *stubSearcher) RandomImage(_ context.Context, query string) (string, error) {
	if s.err != nil {
		return "", s.err
	}
	return "https://images.example.com/" + query, nil
}

func fiveSlideJSON(t *testing.T) string {
	t.Helper()
	slides := []domain.Slide{
		{Kind: domain.SlideKindTitle, Title: "Opening", ImagePrompt: "abstract background"},
		{Kind: domain.SlideKindContent, Title: "Problem", Points: []string{"a", "b"}},
		{Kind: domain.SlideKindContent, Title: "Solution", Points: []string{"c", "d"}, ImagePrompt: "teamwork"},
		{Kind: domain.SlideKindContent, Title: "Benefits", Points: []string{"e", "f"}},
		{Kind: domain.SlideKindClosing, Title: "Thank You", ImagePrompt: "sunset"},
	}
	raw, err := json.Marshal(slides)
	require.NoError(t, err)
	return string(raw)
}

func newTestSynthesizer(backend CompletionBackend, searcher generation.ImageSearcher) *Synthesizer {
	enricher := generation.NewImageEnricher(searcher, nil)
	return NewSynthesizer(backend, enricher, nil)
}

func TestNewSynthesizerNilDependenciesPanic(t *testing.T) {
	t.Parallel()

	enricher := generation.NewImageEnricher(&stubSearcher{}, nil)
	assert.Panics(t, func() { NewSynthesizer(nil, enricher, nil) })
	assert.Panics(t, func() { NewSynthesizer(&stubBackend{}, nil, nil) })
}

func TestSynthesizeSuccess(t *testing.T) {
	t.Parallel()

	backend := &stubBackend{text: fiveSlideJSON(t)}
	synthesizer := newTestSynthesizer(backend, &stubSearcher{})

	deck, err := synthesizer.Synthesize(context.Background(), promptContent(), promptParams())
	require.NoError(t, err)

	require.Len(t, deck, 5)
	assert.Equal(t, domain.SlideKindTitle, deck[0].Kind)
	assert.Equal(t, domain.SlideKindClosing, deck[4].Kind)

	// Prompt was built from the params and source content.
	assert.Contains(t, backend.prompt, "Acme Pitch")
	assert.Contains(t, backend.prompt, "quarterly results")

	// Image queries use the image prompt, falling back to the slide title.
	assert.Equal(t, "https://images.example.com/abstract background", deck[0].ImageURL)
	assert.Equal(t, "https://images.example.com/Problem", deck[1].ImageURL)
	assert.Equal(t, "https://images.example.com/teamwork", deck[2].ImageURL)
}

func TestSynthesizeToleratesSurroundingWhitespace(t *testing.T) {
	t.Parallel()

	backend := &stubBackend{text: "\n\n  " + fiveSlideJSON(t) + "  \n"}
	synthesizer := newTestSynthesizer(backend, &stubSearcher{})

	deck, err := synthesizer.Synthesize(context.Background(), promptContent(), promptParams())
	require.NoError(t, err)
	assert.Len(t, deck, 5)
}

func TestSynthesizeBackendFailure(t *testing.T) {
	t.Parallel()

	backendErr := fmt.Errorf("%w: rate limited", generation.ErrBackendFailure)
	backend := &stubBackend{err: backendErr}
	synthesizer := newTestSynthesizer(backend, &stubSearcher{})

	_, err := synthesizer.Synthesize(context.Background(), promptContent(), promptParams())
	require.Error(t, err)
	assert.ErrorIs(t, err, generation.ErrBackendFailure)
}

func TestSynthesizeInvalidJSON(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name string
		text string
	}{
		{name: "prose response", text: "Here are your slides: ..."},
		{name: "markdown fenced response", text: "```json\n[]\n```"},
		{name: "JSON object instead of array", text: `{"slides": []}`},
		{name: "empty response", text: ""},
	}

	for _, tc := range tests {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()

			backend := &stubBackend{text: tc.text}
			synthesizer := newTestSynthesizer(backend, &stubSearcher{})

			_, err := synthesizer.Synthesize(context.Background(), promptContent(), promptParams())
			require.Error(t, err)
			assert.ErrorIs(t, err, generation.ErrInvalidJSON)
		})
	}
}

func TestSynthesizeValidationFailurePropagates(t *testing.T) {
	t.Parallel()

	// Four slides is below the short-mode floor.
	slides := []domain.Slide{
		{Kind: domain.SlideKindTitle, Title: "Opening"},
		{Kind: domain.SlideKindContent, Title: "One"},
		{Kind: domain.SlideKindContent, Title: "Two"},
		{Kind: domain.SlideKindClosing, Title: "Thank You"},
	}
	raw, err := json.Marshal(slides)
	require.NoError(t, err)

	backend := &stubBackend{text: string(raw)}
	synthesizer := newTestSynthesizer(backend, &stubSearcher{})

	_, err = synthesizer.Synthesize(context.Background(), promptContent(), promptParams())
	require.Error(t, err)
	assert.ErrorIs(t, err, generation.ErrCountViolation)
}

func TestSynthesizeImageFailuresLeaveSlidesBare(t *testing.T) {
	t.Parallel()

	backend := &stubBackend{text: fiveSlideJSON(t)}
	synthesizer := newTestSynthesizer(backend, &stubSearcher{err: errors.New("unsplash down")})

	deck, err := synthesizer.Synthesize(context.Background(), promptContent(), promptParams())
	require.NoError(t, err, "image failures must not fail synthesis")

	for _, slide := range deck {
		assert.Empty(t, slide.ImageURL)
	}
}
