package generation

import (
	"context"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/slidegen/slidegen-api/internal/domain"
)

// mockFetcher is a configurable ContentFetcher for tests.
type mockFetcher struct {
	content SourceContent
	err     error
	calls   int
}

func (m *mockFetcher) Fetch(_ context.Context, url string) (SourceContent, error) {
	m.calls++
	if m.err != nil {
		return SourceContent{}, m.err
	}
	content := m.content
	content.OriginURL = url
	return content, nil
}

// mockSynthesizer is a configurable DeckSynthesizer for tests.
type mockSynthesizer struct {
	deck  domain.Deck
	err   error
	calls int
}

func (m *mockSynthesizer) Synthesize(_ context.Context, _ SourceContent, _ Params) (domain.Deck, error) {
	m.calls++
	if m.err != nil {
		return nil, m.err
	}
	return m.deck, nil
}

func validParams() Params {
	return Params{
		SourceURL:  "https://example.com/article",
		Title:      "Acme Pitch",
		ClientName: "Acme Corp",
		Theme:      domain.ThemeExecutive,
		Mode:       domain.DeckModeShort,
	}
}

func TestNewPipelineNilDependenciesPanic(t *testing.T) {
	t.Parallel()

	assert.Panics(t, func() { NewPipeline(nil, &mockSynthesizer{}, nil) })
	assert.Panics(t, func() { NewPipeline(&mockFetcher{}, nil, nil) })
}

func TestGenerateDeckSuccess(t *testing.T) {
	t.Parallel()

	expected := domain.Deck(rawDeck(5))
	fetcher := &mockFetcher{content: SourceContent{Title: "Article", Body: "body text"}}
	synthesizer := &mockSynthesizer{deck: expected}

	pipeline := NewPipeline(fetcher, synthesizer, nil)

	deck, err := pipeline.GenerateDeck(context.Background(), validParams())
	require.NoError(t, err)
	assert.Equal(t, expected, deck)
	assert.Equal(t, 1, fetcher.calls)
	assert.Equal(t, 1, synthesizer.calls)
}

func TestGenerateDeckInvalidParams(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name   string
		mutate func(*Params)
	}{
		{name: "missing source URL", mutate: func(p *Params) { p.SourceURL = "" }},
		{name: "missing title", mutate: func(p *Params) { p.Title = "" }},
		{name: "unknown theme", mutate: func(p *Params) { p.Theme = "pastel" }},
		{name: "unknown mode", mutate: func(p *Params) { p.Mode = "epic" }},
	}

	for _, tc := range tests {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()

			fetcher := &mockFetcher{}
			synthesizer := &mockSynthesizer{}
			pipeline := NewPipeline(fetcher, synthesizer, nil)

			params := validParams()
			tc.mutate(&params)

			_, err := pipeline.GenerateDeck(context.Background(), params)
			require.Error(t, err)
			assert.ErrorIs(t, err, domain.ErrValidation)
			assert.Zero(t, fetcher.calls, "no stage should run on invalid params")
		})
	}
}

func TestGenerateDeckFetchFailure(t *testing.T) {
	t.Parallel()

	fetchErr := fmt.Errorf("%w: connection refused", ErrFetchNetwork)
	fetcher := &mockFetcher{err: fetchErr}
	synthesizer := &mockSynthesizer{}
	pipeline := NewPipeline(fetcher, synthesizer, nil)

	_, err := pipeline.GenerateDeck(context.Background(), validParams())
	require.Error(t, err)

	var pipelineErr *PipelineError
	require.ErrorAs(t, err, &pipelineErr)
	assert.Equal(t, StageFetch, pipelineErr.Stage)
	assert.ErrorIs(t, err, ErrFetch)
	assert.Zero(t, synthesizer.calls, "synthesis must not run after a fetch failure")
}

func TestGenerateDeckSynthesizeFailure(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name      string
		err       error
		wantStage Stage
	}{
		{
			name:      "backend failure classified as synthesize",
			err:       fmt.Errorf("%w: rate limited", ErrBackendFailure),
			wantStage: StageSynthesize,
		},
		{
			name:      "invalid JSON classified as synthesize",
			err:       fmt.Errorf("%w: unexpected token", ErrInvalidJSON),
			wantStage: StageSynthesize,
		},
		{
			name:      "schema violation classified as validate",
			err:       fmt.Errorf("%w: slide 0 has unknown kind", ErrSchemaViolation),
			wantStage: StageValidate,
		},
		{
			name:      "count violation classified as validate",
			err:       fmt.Errorf("%w: got 3 slides", ErrCountViolation),
			wantStage: StageValidate,
		},
	}

	for _, tc := range tests {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()

			fetcher := &mockFetcher{content: SourceContent{Title: "Article", Body: "body"}}
			synthesizer := &mockSynthesizer{err: tc.err}
			pipeline := NewPipeline(fetcher, synthesizer, nil)

			_, err := pipeline.GenerateDeck(context.Background(), validParams())
			require.Error(t, err)

			var pipelineErr *PipelineError
			require.ErrorAs(t, err, &pipelineErr)
			assert.Equal(t, tc.wantStage, pipelineErr.Stage)
			assert.ErrorIs(t, err, tc.err)
		})
	}
}

func TestPipelineErrorMessage(t *testing.T) {
	t.Parallel()

	err := &PipelineError{Stage: StageFetch, Err: ErrFetchTimeout}
	assert.Contains(t, err.Error(), "fetch")
	assert.ErrorIs(t, err, ErrFetch)
}
