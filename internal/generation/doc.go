// Package generation implements the slide-generation pipeline: fetching
// source content from a URL, synthesizing a slide deck through an external
// generative-text backend, enriching slides with stock images, and enforcing
// the deck invariants. It defines the collaborator interfaces so the
// application core stays decoupled from the concrete scraper, LLM and
// image-search integrations under internal/platform.
package generation
