package domain

import "errors"

// Deck-level validation errors
var (
	// ErrDeckTooShort is returned when a deck has fewer slides than its
	// mode's minimum.
	ErrDeckTooShort = errors.New("deck has too few slides")

	// ErrDeckOrdering is returned when the first slide is not a title slide,
	// the last is not a closing slide, or an interior slide is not a content
	// slide.
	ErrDeckOrdering = errors.New("deck slide kinds are out of order")

	// ErrInvalidDeckMode is returned when a deck mode is not one of the
	// defined variants.
	ErrInvalidDeckMode = errors.New("invalid deck mode")
)

// Deck is the validated ordered sequence of slides produced by one
// generation.
type Deck []Slide

// DeckMode selects the slide-count and narrative-structure variant of a
// generation request.
type DeckMode string

// The two deck modes. Short decks are exactly five slides; extended decks
// follow a persuasive narrative arc of twelve to fifteen slides.
const (
	DeckModeShort    DeckMode = "short"
	DeckModeExtended DeckMode = "extended"
)

// DeckModeSpec fixes the slide-count envelope of a deck mode. Decks below
// Min are rejected; decks above Max are truncated to Target.
type DeckModeSpec struct {
	Min    int
	Max    int
	Target int
}

// deckModeSpecs is the closed lookup table of per-mode count envelopes.
var deckModeSpecs = map[DeckMode]DeckModeSpec{
	DeckModeShort:    {Min: 5, Max: 5, Target: 5},
	DeckModeExtended: {Min: 10, Max: 20, Target: 15},
}

// IsValidDeckMode reports whether mode is one of the defined variants.
func IsValidDeckMode(mode DeckMode) bool {
	_, ok := deckModeSpecs[mode]
	return ok
}

// Spec returns the count envelope for the mode.
// Returns ErrInvalidDeckMode for an unknown mode.
func (m DeckMode) Spec() (DeckModeSpec, error) {
	spec, ok := deckModeSpecs[m]
	if !ok {
		return DeckModeSpec{}, ErrInvalidDeckMode
	}
	return spec, nil
}

// Validate checks the deck-level invariants: every slide valid, first slide
// a title slide, last slide a closing slide, interior slides content slides.
// Count envelopes are mode-specific and checked by the deck validator, not
// here; a deck must still have at least the three positional slides.
func (d Deck) Validate() error {
	if len(d) < 3 {
		return ErrDeckTooShort
	}

	for i := range d {
		if err := d[i].Validate(); err != nil {
			return err
		}
	}

	if d[0].Kind != SlideKindTitle || d[len(d)-1].Kind != SlideKindClosing {
		return ErrDeckOrdering
	}

	for _, slide := range d[1 : len(d)-1] {
		if slide.Kind != SlideKindContent {
			return ErrDeckOrdering
		}
	}

	return nil
}
