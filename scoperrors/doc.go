// Package scoperrors provides structured error types for phpscoper.
//
// Import path: github.com/erraggy/phpscoper/scoperrors
//
// This package enables programmatic error handling via [errors.Is] and
// [errors.As], so callers can tell a malformed document apart from a
// document with an unexpected structure or an invalid configuration.
//
// # Error Types
//
//   - [DecodeError]: the content is not valid JSON, or its top-level value is not an object
//   - [ShapeError]: the decoded document lacks an expected field, or the field has the wrong type
//   - [ConfigError]: invalid configuration or constructor arguments
//
// # Sentinel Errors
//
// Each error type has a corresponding sentinel error for use with errors.Is():
//
//   - [ErrDecode]: Matches any [DecodeError]
//   - [ErrShape]: Matches any [ShapeError]
//   - [ErrConfig]: Matches any [ConfigError]
//
// # Delegated Errors
//
// Errors raised by a wrapped scoper, an autoload prefixer or a patch are
// never wrapped by the composition layer. They reach the caller verbatim,
// so the caller's own sentinels keep matching:
//
//	_, err := s.Scope("src/Foo.php", contents)
//	if errors.Is(err, myPatchErr) {
//	    // the patch that failed, not a generic error
//	}
//
// # Usage Examples
//
//	out, err := s.Scope("vendor/composer/installed.json", contents)
//	if errors.Is(err, scoperrors.ErrDecode) {
//	    // Not JSON, or not a JSON object
//	}
//
//	var shapeErr *scoperrors.ShapeError
//	if errors.As(err, &shapeErr) {
//	    fmt.Printf("unexpected shape for %s\n", shapeErr.Field)
//	}
package scoperrors
