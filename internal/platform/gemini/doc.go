// Package gemini implements the generation.DeckSynthesizer interface using
// Google's Gemini API as the generative-text backend. It owns the prompt
// construction tables (per-mode instruction templates, per-theme aesthetic
// descriptors) and the strict parsing of the model's JSON slide output.
package gemini
