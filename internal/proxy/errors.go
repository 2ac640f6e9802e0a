package proxy

import (
	"errors"
	"fmt"
	"strings"
)

// Sentinel errors classify generator failures. Every fatal condition maps
// to exit code 1 in the CLI; the markers exist so callers and tests can
// distinguish configuration problems from external tool failures.
var (
	ErrConfiguration   = errors.New("configuration error")
	ErrExternalTool    = errors.New("external tool error")
	ErrMissingArtifact = errors.New("missing artifact")
)

// Wrap tags an error with one of the sentinel markers and operation
// context. A nil cause produces a marker-plus-detail error.
func Wrap(marker error, operation, message string, err error) error {
	detail := operation
	if message = strings.TrimSpace(message); message != "" {
		if detail != "" {
			detail += ": " + message
		} else {
			detail = message
		}
	}
	if err != nil {
		return fmt.Errorf("%w: %s: %w", marker, detail, err)
	}
	return fmt.Errorf("%w: %s", marker, detail)
}
