// Package service contains application services that coordinate between
// the generation pipeline and the persistence layer.
package service
