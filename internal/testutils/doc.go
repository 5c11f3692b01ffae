// Package testutils provides shared helpers for tests: an in-memory slog
// recorder for asserting on log output and an environment-gated database
// helper for integration tests.
package testutils
