// Package errors provides structured error handling for lifesim-api.
//
// This package provides:
//   - Structured errors with codes, messages, and metadata
//   - Error context preservation through wrapping
//   - Validation error helpers
//   - Type-safe error checking
//
// # Basic Usage
//
// Creating errors:
//
//	err := errors.NotFound("relationship not found")
//	err := errors.InvalidArgumentf("invalid choice index: %d", index)
//
// Adding metadata:
//
//	err := errors.NotFound("no eligible event").
//	    WithMeta("year", year).
//	    WithMeta("age", age)
//
// Wrapping errors:
//
//	if err := repo.Get(ctx, input); err != nil {
//	    return errors.Wrap(err, "failed to load counters")
//	}
//
// # Error Checking
//
//	if errors.IsNotFound(err) {
//	    // Handle not found case
//	}
//
//	code := errors.GetCode(err)
//	message := errors.GetMessage(err)
//	meta := errors.GetMeta(err)
//
// # Validation Errors
//
// Using the validation builder:
//
//	vb := errors.NewValidationBuilder()
//	if c.Catalog == nil {
//	    vb.RequiredField("Catalog")
//	}
//	if err := vb.Build(); err != nil {
//	    return err
//	}
//
// # Layer-Specific Guidelines
//
// Repository layer:
//   - Return domain-specific errors (NotFound, AlreadyExists)
//   - Include relevant IDs in metadata
//   - Wrap storage errors with context
//
// Engine/Orchestrator layer:
//   - Validate inputs and return InvalidArgument errors
//   - Check turn-state preconditions and return FailedPrecondition errors
//   - Wrap repository errors with business context
package errors
