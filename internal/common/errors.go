// Package common defines shared constants and sentinel errors used across
// the verification engine and server layers. Callers should use errors.Is to
// match these values.
package common

import "errors"

var (
	// Repository-level errors.
	ErrNotFound = errors.New("not found")

	// OCR collaborator errors (unreadable or corrupt image; fatal for the
	// request, never retried by the engine).
	ErrExtractionFailed = errors.New("extraction failed")

	// Field-extractor errors (zero fields recoverable from the text; the
	// caller decides whether to reject or retry OCR with other settings).
	ErrExtractionIncomplete = errors.New("extraction incomplete")

	// Bulk-ingestion row validation errors (recorded per row, batch continues).
	ErrValidation = errors.New("validation error")

	// Persistence collaborator unreachable. The request fails instead of
	// returning a verdict from stale state.
	ErrIndexUnavailable = errors.New("record index unavailable")

	// Record-level errors.
	ErrDuplicateCertNumber = errors.New("duplicate certificate number")
	ErrRecordRevoked       = errors.New("record revoked")
)
