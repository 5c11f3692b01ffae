package domain

import "errors"

// Slide-specific validation errors
var (
	// ErrInvalidSlideKind is returned when a slide's kind is not one of the
	// defined variants.
	ErrInvalidSlideKind = errors.New("invalid slide kind")

	// ErrInvalidSlideLayout is returned when a slide's layout is not one of
	// the defined variants.
	ErrInvalidSlideLayout = errors.New("invalid slide layout")

	// ErrSlideTitleEmpty is returned when a slide's title is empty.
	ErrSlideTitleEmpty = errors.New("slide title cannot be empty")

	// ErrMissingLayoutPayload is returned when a slide declares a layout that
	// requires a structured payload but the payload is missing or incomplete.
	ErrMissingLayoutPayload = errors.New("slide layout requires a structured payload")
)

// SlideKind identifies the position-governing variant of a slide.
type SlideKind string

// The three slide kinds. The first slide of a deck must be a title slide,
// the last a closing slide, and every interior slide a content slide.
const (
	SlideKindTitle   SlideKind = "title"
	SlideKindContent SlideKind = "content"
	SlideKindClosing SlideKind = "closing"
)

// SlideLayout identifies the visual sub-variant of a content slide.
type SlideLayout string

// The seven content-slide layouts. Layouts other than LayoutDefault are only
// meaningful on content slides; some demand a matching structured payload.
const (
	LayoutDefault     SlideLayout = "default"
	LayoutStatCallout SlideLayout = "stat_callout"
	LayoutQuote       SlideLayout = "quote"
	LayoutImageFull   SlideLayout = "image_full"
	LayoutComparison  SlideLayout = "comparison"
	LayoutTimeline    SlideLayout = "timeline"
	LayoutStatement   SlideLayout = "statement"
)

// StatPayload backs the stat_callout layout.
type StatPayload struct {
	Value   string `json:"value"`
	Label   string `json:"label"`
	Context string `json:"context,omitempty"`
}

// QuotePayload backs the quote layout.
type QuotePayload struct {
	Text   string `json:"text"`
	Author string `json:"author"`
	Role   string `json:"role,omitempty"`
}

// StatementPayload backs the statement layout.
type StatementPayload struct {
	Text     string `json:"text"`
	Emphasis string `json:"emphasis,omitempty"`
}

// ComparisonColumn is one side of a comparison layout.
type ComparisonColumn struct {
	Label string   `json:"label"`
	Items []string `json:"items"`
}

// ComparisonPayload backs the comparison layout.
type ComparisonPayload struct {
	Left  ComparisonColumn `json:"left"`
	Right ComparisonColumn `json:"right"`
}

// TimelineStep is one entry of a timeline layout.
type TimelineStep struct {
	Label       string `json:"label"`
	Description string `json:"description"`
	Duration    string `json:"duration,omitempty"`
}

// TimelinePayload backs the timeline layout.
type TimelinePayload struct {
	Steps []TimelineStep `json:"steps"`
}

// Slide is the central generated artifact. The JSON field names form the
// persisted wire contract and are handed verbatim between generation,
// storage and rendering; they must not change.
type Slide struct {
	Kind        SlideKind          `json:"type"`
	Layout      SlideLayout        `json:"layout,omitempty"`
	Title       string             `json:"title"`
	Subtitle    string             `json:"subtitle,omitempty"`
	Points      []string           `json:"points,omitempty"`
	ImageURL    string             `json:"image_url,omitempty"`
	ImagePrompt string             `json:"image_prompt,omitempty"`
	Stat        *StatPayload       `json:"stat,omitempty"`
	Quote       *QuotePayload      `json:"quote,omitempty"`
	Statement   *StatementPayload  `json:"statement,omitempty"`
	Comparison  *ComparisonPayload `json:"comparison,omitempty"`
	Timeline    *TimelinePayload   `json:"timeline,omitempty"`
}

// IsValidSlideKind reports whether kind is one of the three defined variants.
func IsValidSlideKind(kind SlideKind) bool {
	switch kind {
	case SlideKindTitle, SlideKindContent, SlideKindClosing:
		return true
	default:
		return false
	}
}

// IsValidSlideLayout reports whether layout is one of the seven defined
// variants. The empty layout is valid and treated as LayoutDefault.
func IsValidSlideLayout(layout SlideLayout) bool {
	switch layout {
	case "", LayoutDefault, LayoutStatCallout, LayoutQuote, LayoutImageFull,
		LayoutComparison, LayoutTimeline, LayoutStatement:
		return true
	default:
		return false
	}
}

// EffectiveLayout returns the slide's layout, defaulting to LayoutDefault
// when no layout is set.
func (s *Slide) EffectiveLayout() SlideLayout {
	if s.Layout == "" {
		return LayoutDefault
	}
	return s.Layout
}

// HasLayoutPayload reports whether the structured payload demanded by the
// slide's layout is present with its required sub-fields non-empty. Layouts
// without a structured payload (default, image_full) always report true.
func (s *Slide) HasLayoutPayload() bool {
	switch s.EffectiveLayout() {
	case LayoutStatCallout:
		return s.Stat != nil && s.Stat.Value != "" && s.Stat.Label != ""
	case LayoutQuote:
		return s.Quote != nil && s.Quote.Text != "" && s.Quote.Author != ""
	case LayoutStatement:
		return s.Statement != nil && s.Statement.Text != ""
	case LayoutComparison:
		return s.Comparison != nil &&
			s.Comparison.Left.Label != "" && len(s.Comparison.Left.Items) > 0 &&
			s.Comparison.Right.Label != "" && len(s.Comparison.Right.Items) > 0
	case LayoutTimeline:
		if s.Timeline == nil || len(s.Timeline.Steps) == 0 {
			return false
		}
		for _, step := range s.Timeline.Steps {
			if step.Label == "" || step.Description == "" {
				return false
			}
		}
		return true
	default:
		return true
	}
}

// StripLayoutPayloads clears every structured payload field. Used when a
// slide is degraded to the default layout so partial payloads do not leak
// into the persisted deck.
func (s *Slide) StripLayoutPayloads() {
	s.Stat = nil
	s.Quote = nil
	s.Statement = nil
	s.Comparison = nil
	s.Timeline = nil
}

// Validate checks if the Slide has valid data.
// Returns an error if any field fails validation.
func (s *Slide) Validate() error {
	if !IsValidSlideKind(s.Kind) {
		return ErrInvalidSlideKind
	}

	if !IsValidSlideLayout(s.Layout) {
		return ErrInvalidSlideLayout
	}

	if s.Title == "" {
		return ErrSlideTitleEmpty
	}

	if !s.HasLayoutPayload() {
		return ErrMissingLayoutPayload
	}

	return nil
}
