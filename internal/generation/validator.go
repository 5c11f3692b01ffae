package generation

import (
	"fmt"

	"github.com/slidegen/slidegen-api/internal/domain"
)

// ValidateDeck enforces the deck invariants on raw synthesizer output and
// performs the permitted repairs. The backend's response is untrusted input;
// nothing enters the Deck type without passing through here.
//
// Rules, in order:
//   - a deck below the mode's slide-count floor is rejected (ErrCountViolation)
//   - a deck above the mode's target length is truncated to the target,
//     keeping the final slide so the closing invariant survives
//   - slide kinds must be defined variants with a title slide first, a
//     closing slide last, and content slides between (ErrSchemaViolation)
//   - a slide claiming a structured layout without its payload is degraded
//     to the default layout and stripped of partial payload fields
//   - bullet-point counts are advisory per mode and never rejected
//
// Validating an already-valid deck returns an equal deck.
func ValidateDeck(raw []domain.Slide, mode domain.DeckMode) (domain.Deck, error) {
	spec, err := mode.Spec()
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrSchemaViolation, err)
	}

	if len(raw) < spec.Min {
		return nil, fmt.Errorf("%w: got %d slides, mode %q requires at least %d",
			ErrCountViolation, len(raw), mode, spec.Min)
	}

	// Over-generation is a known backend tendency; repair by truncation
	// rather than rejection. The final slide is kept so a well-formed
	// closing slide stays last.
	slides := make([]domain.Slide, 0, spec.Target)
	if len(raw) > spec.Target {
		slides = append(slides, raw[:spec.Target-1]...)
		slides = append(slides, raw[len(raw)-1])
	} else {
		slides = append(slides, raw...)
	}

	for i := range slides {
		slide := &slides[i]

		if !domain.IsValidSlideKind(slide.Kind) {
			return nil, fmt.Errorf("%w: slide %d has unknown kind %q",
				ErrSchemaViolation, i, slide.Kind)
		}

		if slide.Title == "" {
			return nil, fmt.Errorf("%w: slide %d is missing a title", ErrSchemaViolation, i)
		}

		switch {
		case i == 0 && slide.Kind != domain.SlideKindTitle:
			return nil, fmt.Errorf("%w: first slide must be a title slide, got %q",
				ErrSchemaViolation, slide.Kind)
		case i == len(slides)-1 && slide.Kind != domain.SlideKindClosing:
			return nil, fmt.Errorf("%w: last slide must be a closing slide, got %q",
				ErrSchemaViolation, slide.Kind)
		case i > 0 && i < len(slides)-1 && slide.Kind != domain.SlideKindContent:
			return nil, fmt.Errorf("%w: interior slide %d must be a content slide, got %q",
				ErrSchemaViolation, i, slide.Kind)
		}

		// A slide claiming an unknown layout, or a structured layout
		// without its payload, is degraded rather than rejected.
		if !domain.IsValidSlideLayout(slide.Layout) || !slide.HasLayoutPayload() {
			slide.Layout = domain.LayoutDefault
			slide.StripLayoutPayloads()
		}
	}

	return domain.Deck(slides), nil
}
