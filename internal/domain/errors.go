package domain

import "errors"

// Sentinel errors for domain operations
var (
	// ErrNetwork indicates the catalog could not be reached or returned an unexpected status
	ErrNetwork = errors.New("catalog is unreachable")

	// ErrMalformedResponse indicates the catalog returned a body that could not be decoded
	ErrMalformedResponse = errors.New("malformed catalog response")

	// ErrAuthFailed indicates the catalog rejected the API key
	ErrAuthFailed = errors.New("catalog API key is invalid")

	// ErrPersistenceRead indicates stored favorites could not be read or decoded
	ErrPersistenceRead = errors.New("failed to read favorites")

	// ErrPersistenceWrite indicates favorites could not be written
	ErrPersistenceWrite = errors.New("failed to save favorites")

	// ErrNotConfigured indicates no API key has been configured
	ErrNotConfigured = errors.New("catalog API key is not configured")
)
