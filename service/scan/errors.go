package scan

import (
	"context"
	"errors"
	"fmt"

	"github.com/aws/smithy-go"
)

// Error codes that mean the credentials themselves are unusable. These are
// not scoped to a region: retrying the remaining regions would fail the
// same way, so the whole scan aborts.
var fatalCodes = map[string]bool{
	"InvalidClientTokenId":        true,
	"SignatureDoesNotMatch":       true,
	"UnrecognizedClientException": true,
	"MissingAuthenticationToken":  true,
	"IncompleteSignature":         true,
	"ExpiredToken":                true,
	"ExpiredTokenException":       true,
}

// IsFatal reports whether err invalidates the whole scan rather than one
// region. Permission, opt-in, throttling, and transient network errors are
// region-scoped and therefore recoverable.
func IsFatal(err error) bool {
	var apiErr smithy.APIError
	if errors.As(err, &apiErr) {
		return fatalCodes[apiErr.ErrorCode()]
	}
	return false
}

// FailureReason produces a compact, user-presentable reason for a
// recoverable region failure.
func FailureReason(err error) string {
	if errors.Is(err, context.DeadlineExceeded) {
		return "region scan timed out"
	}
	var apiErr smithy.APIError
	if errors.As(err, &apiErr) {
		return fmt.Sprintf("%s: %s", apiErr.ErrorCode(), apiErr.ErrorMessage())
	}
	return err.Error()
}
