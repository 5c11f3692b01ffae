package gemini

import (
	"bytes"
	"fmt"
	"text/template"

	"github.com/slidegen/slidegen-api/internal/domain"
	"github.com/slidegen/slidegen-api/internal/generation"
)

// themeAesthetics maps each theme to the aesthetic descriptor embedded in
// the prompt. A closed lookup table rather than free-form interpolation so
// the theme contract stays testable.
var themeAesthetics = map[domain.Theme]string{
	domain.ThemeExecutive: "sophisticated, professional, corporate",
	domain.ThemeMinimal:   "clean, simple, modern minimalist",
	domain.ThemeTech:      "cutting-edge technology, innovative, digital",
}

// promptData is the data passed to the per-mode prompt templates.
type promptData struct {
	Content         string
	Title           string
	ClientLine      string
	PersonalizeRule string
	TitleSubtitle   string
	ClosingSubtitle string
	Theme           string
	Aesthetic       string
}

const shortPromptText = `You are a presentation content strategist. Given this web content, create a 5-slide presentation.

Content: {{.Content}}

Title: {{.Title}}
{{.ClientLine}}
Theme: {{.Theme}} ({{.Aesthetic}})

Generate slides in this exact JSON format (respond with ONLY valid JSON, no markdown code blocks):
[
  {
    "type": "title",
    "title": "[presentation title]",
    "subtitle": "{{.TitleSubtitle}}",
    "image_prompt": "abstract professional background image for {{.Title}}, {{.Aesthetic}} aesthetic"
  },
  {
    "type": "content",
    "title": "[section title]",
    "points": ["point 1", "point 2", "point 3", "point 4"],
    "image_prompt": "visual representing [topic], clean professional style"
  },
  {
    "type": "content",
    "title": "[section title]",
    "points": ["point 1", "point 2", "point 3", "point 4"],
    "image_prompt": "visual representing [topic], clean professional style"
  },
  {
    "type": "content",
    "title": "[section title]",
    "points": ["point 1", "point 2", "point 3", "point 4"],
    "image_prompt": "visual representing [topic], clean professional style"
  },
  {
    "type": "closing",
    "title": "Thank You",
    "subtitle": "{{.ClosingSubtitle}}",
    "image_prompt": "professional closing slide background, {{.Aesthetic}} style"
  }
]

Rules:
- Exactly 5 slides (1 title, 3 content, 1 closing)
- {{.PersonalizeRule}}
- Content slides must have exactly 4 bullet points each
- Image prompts should match the {{.Theme}} theme aesthetic
- Be specific and business-focused
- Make content relevant to the source material
- Keep bullet points concise (max 10 words each)`

const extendedPromptText = `You are a presentation content strategist building a persuasive sales deck. Given this web content, create a 12-15 slide presentation.

Content: {{.Content}}

Title: {{.Title}}
{{.ClientLine}}
Theme: {{.Theme}} ({{.Aesthetic}})

The deck must follow this narrative arc:
problem -> solution -> benefits -> how it works -> proof -> business case -> next steps -> closing

Every slide is a JSON object with a "type" of "title", "content" or "closing". The first slide must be the title slide, the last the closing slide, and everything between a content slide. Content slides may set a "layout" to vary the visual pacing:
- "default": {"type": "content", "layout": "default", "title": "...", "points": ["...", "..."], "image_prompt": "..."}
- "stat_callout": {"type": "content", "layout": "stat_callout", "title": "...", "stat": {"value": "47%", "label": "what the stat represents", "context": "optional comparison"}}
- "quote": {"type": "content", "layout": "quote", "title": "...", "quote": {"text": "...", "author": "...", "role": "optional title/company"}}
- "image_full": {"type": "content", "layout": "image_full", "title": "...", "subtitle": "...", "image_prompt": "..."}
- "comparison": {"type": "content", "layout": "comparison", "title": "...", "comparison": {"left": {"label": "Before", "items": ["..."]}, "right": {"label": "After", "items": ["..."]}}}
- "timeline": {"type": "content", "layout": "timeline", "title": "...", "timeline": {"steps": [{"label": "...", "description": "...", "duration": "Week 1"}]}}
- "statement": {"type": "content", "layout": "statement", "title": "...", "statement": {"text": "one powerful sentence", "emphasis": "optional emphasized portion"}}

The title slide should use subtitle "{{.TitleSubtitle}}" and the closing slide subtitle "{{.ClosingSubtitle}}".

Rules:
- 12 to 15 slides total (1 title, 1 closing, the rest content)
- {{.PersonalizeRule}}
- Use at least four different layouts; never two stat_callout or quote slides in a row
- Content slides using the default layout must have 3-4 bullet points
- Image prompts should match the {{.Theme}} theme aesthetic
- Be specific and business-focused; make content relevant to the source material
- Respond with ONLY a valid JSON array, no prose, no markdown code blocks`

// modePrompts is the closed lookup table of per-mode instruction templates.
var modePrompts = map[domain.DeckMode]*template.Template{
	domain.DeckModeShort:    template.Must(template.New("short").Parse(shortPromptText)),
	domain.DeckModeExtended: template.Must(template.New("extended").Parse(extendedPromptText)),
}

// buildPrompt composes the generation instruction for the given source
// content and parameters.
func buildPrompt(content generation.SourceContent, params generation.Params) (string, error) {
	tmpl, ok := modePrompts[params.Mode]
	if !ok {
		return "", fmt.Errorf("no prompt template for mode %q", params.Mode)
	}

	aesthetic, ok := themeAesthetics[params.Theme]
	if !ok {
		return "", fmt.Errorf("no aesthetic descriptor for theme %q", params.Theme)
	}

	data := promptData{
		Content:         content.Body,
		Title:           params.Title,
		Theme:           string(params.Theme),
		Aesthetic:       aesthetic,
		ClientLine:      "Client: None - use generic professional language",
		PersonalizeRule: "Use professional, engaging language",
		TitleSubtitle:   "Powered by The Algorithm",
		ClosingSubtitle: "Questions & Discussion",
	}
	if params.ClientName != "" {
		data.ClientLine = fmt.Sprintf(
			"Client: %s\nPersonalize ALL content to reference %s specifically.",
			params.ClientName, params.ClientName)
		data.PersonalizeRule = fmt.Sprintf("Personalize ALL content to reference %s", params.ClientName)
		data.TitleSubtitle = fmt.Sprintf("Prepared exclusively for %s", params.ClientName)
		data.ClosingSubtitle = fmt.Sprintf("Looking forward to working with %s", params.ClientName)
	}

	var buf bytes.Buffer
	if err := tmpl.Execute(&buf, data); err != nil {
		return "", fmt.Errorf("failed to execute prompt template: %w", err)
	}

	return buf.String(), nil
}
