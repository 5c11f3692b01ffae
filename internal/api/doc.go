// Package api contains HTTP handlers, request/response models, and
// error mapping for the presentation API.
package api
