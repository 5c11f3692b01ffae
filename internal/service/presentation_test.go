package service

import (
	"context"
	"errors"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/slidegen/slidegen-api/internal/domain"
	"github.com/slidegen/slidegen-api/internal/generation"
	"github.com/slidegen/slidegen-api/internal/store"
)

// mockGenerator is a configurable generation.Generator for tests.
type mockGenerator struct {
	deck  domain.Deck
	err   error
	calls int
}

func (m *mockGenerator) GenerateDeck(_ context.Context, _ generation.Params) (domain.Deck, error) {
	m.calls++
	if m.err != nil {
		return nil, m.err
	}
	return m.deck, nil
}

// mockPresentationStore is an in-memory store.PresentationStore for tests.
type mockPresentationStore struct {
	presentations map[uuid.UUID]*domain.Presentation
	createErr     error
	updateErr     error
}

func newMockPresentationStore() *mockPresentationStore {
	return &mockPresentationStore{presentations: make(map[uuid.UUID]*domain.Presentation)}
}

func (m *mockPresentationStore) Create(_ context.Context, p *domain.Presentation) error {
	if m.createErr != nil {
		return m.createErr
	}
	clone := *p
	m.presentations[p.ID] = &clone
	return nil
}

func (m *mockPresentationStore) GetByID(_ context.Context, id uuid.UUID) (*domain.Presentation, error) {
	p, ok := m.presentations[id]
	if !ok {
		return nil, store.ErrPresentationNotFound
	}
	clone := *p
	return &clone, nil
}

func (m *mockPresentationStore) GetByShareToken(_ context.Context, token string) (*domain.Presentation, error) {
	for _, p := range m.presentations {
		if p.ShareToken == token {
			clone := *p
			return &clone, nil
		}
	}
	return nil, store.ErrPresentationNotFound
}

func (m *mockPresentationStore) List(_ context.Context, _, _ int) ([]*domain.Presentation, int, error) {
	out := make([]*domain.Presentation, 0, len(m.presentations))
	for _, p := range m.presentations {
		clone := *p
		out = append(out, &clone)
	}
	return out, len(out), nil
}

func (m *mockPresentationStore) Update(_ context.Context, p *domain.Presentation) error {
	if m.updateErr != nil {
		return m.updateErr
	}
	if _, ok := m.presentations[p.ID]; !ok {
		return store.ErrPresentationNotFound
	}
	clone := *p
	m.presentations[p.ID] = &clone
	return nil
}

func (m *mockPresentationStore) Delete(_ context.Context, id uuid.UUID) error {
	if _, ok := m.presentations[id]; !ok {
		return store.ErrPresentationNotFound
	}
	delete(m.presentations, id)
	return nil
}

func testDeck() domain.Deck {
	return domain.Deck{
		{Kind: domain.SlideKindTitle, Title: "Opening"},
		{Kind: domain.SlideKindContent, Title: "One"},
		{Kind: domain.SlideKindContent, Title: "Two"},
		{Kind: domain.SlideKindContent, Title: "Three"},
		{Kind: domain.SlideKindClosing, Title: "Thank You"},
	}
}

func testParams() generation.Params {
	return generation.Params{
		SourceURL:  "https://example.com/article",
		Title:      "Acme Pitch",
		ClientName: "Acme Corp",
		Theme:      domain.ThemeExecutive,
		Mode:       domain.DeckModeShort,
	}
}

func TestNewPresentationServiceNilDependenciesPanic(t *testing.T) {
	t.Parallel()

	assert.Panics(t, func() { NewPresentationService(nil, newMockPresentationStore(), nil) })
	assert.Panics(t, func() { NewPresentationService(&mockGenerator{}, nil, nil) })
}

func TestGenerateAndSaveSuccess(t *testing.T) {
	t.Parallel()

	generator := &mockGenerator{deck: testDeck()}
	presStore := newMockPresentationStore()
	svc := NewPresentationService(generator, presStore, nil)

	createdBy := uuid.New()
	presentation, err := svc.GenerateAndSave(context.Background(), testParams(), createdBy)
	require.NoError(t, err)

	assert.Equal(t, "Acme Pitch", presentation.Title)
	assert.Equal(t, "Acme Corp", presentation.ClientName)
	assert.Equal(t, domain.ThemeExecutive, presentation.Theme)
	assert.Equal(t, createdBy, presentation.CreatedBy)
	assert.NotEmpty(t, presentation.ShareToken)
	assert.Len(t, presentation.Slides, 5)

	stored, err := presStore.GetByID(context.Background(), presentation.ID)
	require.NoError(t, err)
	assert.Equal(t, presentation.ShareToken, stored.ShareToken)
}

func TestGenerateAndSavePipelineFailurePersistsNothing(t *testing.T) {
	t.Parallel()

	pipelineErr := &generation.PipelineError{Stage: generation.StageFetch, Err: generation.ErrFetchTimeout}
	generator := &mockGenerator{err: pipelineErr}
	presStore := newMockPresentationStore()
	svc := NewPresentationService(generator, presStore, nil)

	_, err := svc.GenerateAndSave(context.Background(), testParams(), uuid.New())
	require.Error(t, err)

	var pe *generation.PipelineError
	assert.ErrorAs(t, err, &pe)
	assert.Empty(t, presStore.presentations, "failed generation must persist nothing")
}

func TestGenerateAndSaveStoreFailure(t *testing.T) {
	t.Parallel()

	generator := &mockGenerator{deck: testDeck()}
	presStore := newMockPresentationStore()
	presStore.createErr = errors.New("connection lost")
	svc := NewPresentationService(generator, presStore, nil)

	_, err := svc.GenerateAndSave(context.Background(), testParams(), uuid.New())
	require.Error(t, err)
	assert.Contains(t, err.Error(), "connection lost")
}

func TestUpdateAppliesPartialChanges(t *testing.T) {
	t.Parallel()

	generator := &mockGenerator{deck: testDeck()}
	presStore := newMockPresentationStore()
	svc := NewPresentationService(generator, presStore, nil)

	created, err := svc.GenerateAndSave(context.Background(), testParams(), uuid.New())
	require.NoError(t, err)

	updated, err := svc.Update(context.Background(), created.ID, "New Title", "", domain.ThemeMinimal, nil)
	require.NoError(t, err)

	assert.Equal(t, "New Title", updated.Title)
	assert.Equal(t, "Acme Corp", updated.ClientName, "empty client name leaves stored value")
	assert.Equal(t, domain.ThemeMinimal, updated.Theme)
	assert.Equal(t, created.Slides, updated.Slides, "nil slides leaves the deck unchanged")
	assert.True(t, updated.UpdatedAt.After(created.UpdatedAt) || updated.UpdatedAt.Equal(created.UpdatedAt))
}

func TestUpdateRejectsInvalidTheme(t *testing.T) {
	t.Parallel()

	generator := &mockGenerator{deck: testDeck()}
	presStore := newMockPresentationStore()
	svc := NewPresentationService(generator, presStore, nil)

	created, err := svc.GenerateAndSave(context.Background(), testParams(), uuid.New())
	require.NoError(t, err)

	_, err = svc.Update(context.Background(), created.ID, "", "", "pastel", nil)
	assert.ErrorIs(t, err, domain.ErrInvalidTheme)
}

func TestUpdateMissingPresentation(t *testing.T) {
	t.Parallel()

	svc := NewPresentationService(&mockGenerator{}, newMockPresentationStore(), nil)

	_, err := svc.Update(context.Background(), uuid.New(), "Title", "", "", nil)
	assert.ErrorIs(t, err, store.ErrPresentationNotFound)
}

func TestGetSharedDelegatesToStore(t *testing.T) {
	t.Parallel()

	generator := &mockGenerator{deck: testDeck()}
	presStore := newMockPresentationStore()
	svc := NewPresentationService(generator, presStore, nil)

	created, err := svc.GenerateAndSave(context.Background(), testParams(), uuid.New())
	require.NoError(t, err)

	got, err := svc.GetShared(context.Background(), created.ShareToken)
	require.NoError(t, err)
	assert.Equal(t, created.ID, got.ID)

	_, err = svc.GetShared(context.Background(), "unknown-token")
	assert.ErrorIs(t, err, store.ErrPresentationNotFound)
}

func TestDeleteDelegatesToStore(t *testing.T) {
	t.Parallel()

	generator := &mockGenerator{deck: testDeck()}
	presStore := newMockPresentationStore()
	svc := NewPresentationService(generator, presStore, nil)

	created, err := svc.GenerateAndSave(context.Background(), testParams(), uuid.New())
	require.NoError(t, err)

	require.NoError(t, svc.Delete(context.Background(), created.ID))
	assert.ErrorIs(t, svc.Delete(context.Background(), created.ID), store.ErrPresentationNotFound)
}
