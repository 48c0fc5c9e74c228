// Package internal contains the core implementation packages for socialxml.
//
// This package follows Go's internal package convention, making these
// packages unavailable for import by external modules while providing
// all the core functionality for the socialxml CLI tool.
//
// # Package Organization
//
// The internal packages are organized by functional domain:
//
//   - token: Tokenization of documents into tag and text tokens
//   - validate: Structural and semantic validation with line-accurate errors
//   - render: Pretty-printing and minification
//   - social: Network model, statistics, JSON export, and post search
//   - config: Configuration management with validation
//   - logging: Structured logging over log/slog
//   - files: Document reading and writing
//   - watcher: File system monitoring with debouncing
//   - version: Build metadata
//
// # Inter-Package Communication
//
// The packages form a shallow pipeline rather than a service graph:
//
//   - token turns raw documents into a flat token stream
//   - validate and render consume token streams independently
//   - social parses valid documents into a typed network model
//   - watcher triggers re-validation when a watched document changes
//
// Error reporting is line-oriented throughout: every validation error
// carries the line it was detected on, and validation never stops at the
// first problem.
//
// For detailed documentation, see the individual package documentation.
package internal
