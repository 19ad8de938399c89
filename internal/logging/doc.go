// Package logging assembles structured slog loggers used across picsync.
//
// It owns the console and JSON handlers, centralizes level plumbing, and
// exposes attr helpers so components emit data with the same shape. Prefer
// these constructors over hand-rolled slog setup.
package logging
