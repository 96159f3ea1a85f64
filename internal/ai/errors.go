package ai

import "errors"

var (
	ErrBackendUnavailable = errors.New("completion backend unavailable")
	ErrAuthRejected       = errors.New("completion backend rejected credentials")
	ErrRateLimited        = errors.New("completion backend rate limited the request")
	ErrInferenceTimeout   = errors.New("completion timed out")
	ErrEmptyCompletion    = errors.New("completion backend returned no content")
	ErrSchemaViolation    = errors.New("completion did not match the expected schema")
)
