// Package config defines the application configuration and its loading and
// validation from environment variables and optional config files.
package config
