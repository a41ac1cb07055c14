// errors.go: structured error handling for MiniMap operations
//
// This file provides structured error types using the go-errors library,
// enabling rich error context, categorization, and standardized error codes.
// The map's operations are total functions over their domain: missing,
// expired, and already-removed keys are "no result", never errors. The only
// operation that can fail is SetMany, on a key/value length mismatch.
//
// Copyright (c) 2025 AGILira - A. Giordano
// Series: an AGILira library
// SPDX-License-Identifier: MPL-2.0
package minimap

import (
	goerrors "errors"

	"github.com/agilira/go-errors"
)

// Error codes for MiniMap operations
const (
	// Configuration errors
	ErrCodeInvalidBucketCount errors.ErrorCode = "MINIMAP_INVALID_BUCKET_COUNT"
	ErrCodeInvalidTTL         errors.ErrorCode = "MINIMAP_INVALID_TTL"
	ErrCodeInvalidConfigPath  errors.ErrorCode = "MINIMAP_INVALID_CONFIG_PATH"

	// Operation errors
	ErrCodeLengthMismatch errors.ErrorCode = "MINIMAP_LENGTH_MISMATCH"

	// Internal errors
	ErrCodeInternalError errors.ErrorCode = "MINIMAP_INTERNAL_ERROR"
)

// Common error messages
const (
	msgInvalidBucketCount = "invalid bucket count: must be greater than 0"
	msgInvalidTTL         = "invalid TTL: must be non-negative"
	msgInvalidConfigPath  = "config path cannot be empty"
	msgLengthMismatch     = "keys and values must have the same length"
	msgInternalError      = "internal map error"
)

// NewErrInvalidBucketCount creates an error for an invalid bucket count.
func NewErrInvalidBucketCount(count int) error {
	return errors.NewWithContext(ErrCodeInvalidBucketCount, msgInvalidBucketCount, map[string]interface{}{
		"provided_count":   count,
		"minimum_required": 1,
	})
}

// NewErrInvalidTTL creates an error for an invalid TTL.
func NewErrInvalidTTL(ttl interface{}) error {
	return errors.NewWithContext(ErrCodeInvalidTTL, msgInvalidTTL, map[string]interface{}{
		"provided_ttl": ttl,
	})
}

// NewErrInvalidConfigPath creates an error for a missing hot-reload config path.
func NewErrInvalidConfigPath() error {
	return errors.NewWithField(ErrCodeInvalidConfigPath, msgInvalidConfigPath, "option", "config_path")
}

// NewErrLengthMismatch creates the error SetMany returns when the key and
// value sequences differ in length. The mismatch is detected before any
// mutation, so the map is guaranteed unchanged when this error is seen.
func NewErrLengthMismatch(keys int, values int) error {
	return errors.NewWithContext(ErrCodeLengthMismatch, msgLengthMismatch, map[string]interface{}{
		"keys":   keys,
		"values": values,
	})
}

// NewErrInternal creates a generic internal error.
func NewErrInternal(operation string, cause error) error {
	if cause != nil {
		return errors.Wrap(cause, ErrCodeInternalError, msgInternalError).
			WithContext("operation", operation).
			WithSeverity("warning")
	}
	return errors.NewWithField(ErrCodeInternalError, msgInternalError, "operation", operation).
		WithSeverity("warning")
}

// =============================================================================
// ERROR CHECKING HELPERS
// =============================================================================

// IsLengthMismatch checks if error is a SetMany length mismatch error.
func IsLengthMismatch(err error) bool {
	return errors.HasCode(err, ErrCodeLengthMismatch)
}

// IsConfigError checks if error is a configuration error.
func IsConfigError(err error) bool {
	if err == nil {
		return false
	}
	var coder errors.ErrorCoder
	if goerrors.As(err, &coder) {
		code := coder.ErrorCode()
		return code == ErrCodeInvalidBucketCount || code == ErrCodeInvalidTTL ||
			code == ErrCodeInvalidConfigPath
	}
	return false
}

// GetErrorCode extracts the error code from an error.
func GetErrorCode(err error) errors.ErrorCode {
	if err == nil {
		return ""
	}
	var coder errors.ErrorCoder
	if goerrors.As(err, &coder) {
		return coder.ErrorCode()
	}
	return ""
}

// GetErrorContext extracts context from an error.
func GetErrorContext(err error) map[string]interface{} {
	if err == nil {
		return nil
	}
	var mapErr *errors.Error
	if goerrors.As(err, &mapErr) {
		return mapErr.Context
	}
	return nil
}
