// Package domain contains shared domain types used across the form sub-packages.
// Entity-specific types live in sub-packages (domain/field, domain/calc,
// domain/workflow, domain/validation, domain/schema, domain/quorum).
// This root package holds the sentinel errors and the field-level
// ValidationError shared by all of them.
package domain
