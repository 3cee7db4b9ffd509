// Package errors provides foundational, type-safe error primitives used across seogen.
//
// A generation run either completes or aborts; there is no partial success. The
// classified errors in this package carry enough context (axis, slug, path) for an
// operator to fix source data without reading a stack trace.
//
// Key features:
//   - ErrorCategory: Broad error classification (validation, config, filesystem, render, ...)
//   - ErrorSeverity: Impact level (fatal, error, warning, info)
//   - RetryStrategy: Retry behavior hint for callers that schedule runs
//   - ClassifiedError: Structured error with category, severity, and context
//   - ErrorBuilder: Fluent API for creating classified errors
//   - CLIErrorAdapter: exit codes and operator-facing messages
//
// Example usage:
//
//	err := errors.ValidationError("slug contains unsafe characters").
//		WithContext("axis", "competitors").
//		WithContext("value", "Bad Slug!").
//		Build()
package errors
