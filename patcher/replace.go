package patcher

import (
	"strings"

	"github.com/bmatcuk/doublestar/v4"
	"github.com/erraggy/phpscoper/scoperrors"
)

// PrefixPlaceholder is expanded to the prefix in a replacement string.
const PrefixPlaceholder = "%prefix%"

// Replace is a patcher that replaces every occurrence of Search with
// Replace in the files matching one of Files.
type Replace struct {
	files   []string
	search  string
	replace string
}

// NewReplace creates a Replace patcher.
//
// files are doublestar patterns matched against the slash-separated file
// path, e.g. "vendor/**/*.php"; no patterns means every file. Occurrences of
// [PrefixPlaceholder] in replace are expanded to the prefix at patch time.
func NewReplace(files []string, search, replace string) (*Replace, error) {
	if search == "" {
		return nil, &scoperrors.ConfigError{Option: "search", Message: "search string cannot be empty"}
	}
	for _, pattern := range files {
		if !doublestar.ValidatePattern(pattern) {
			return nil, &scoperrors.ConfigError{
				Option:  "files",
				Value:   pattern,
				Message: "invalid glob pattern",
				Cause:   doublestar.ErrBadPattern,
			}
		}
	}
	return &Replace{
		files:   files,
		search:  search,
		replace: replace,
	}, nil
}

// Matches reports whether the patcher applies to filePath.
func (r *Replace) Matches(filePath string) bool {
	if len(r.files) == 0 {
		return true
	}
	path := toSlash(filePath)
	for _, pattern := range r.files {
		// Patterns are validated in NewReplace.
		if ok, _ := doublestar.Match(pattern, path); ok {
			return true
		}
	}
	return false
}

// Patch implements Patcher.
func (r *Replace) Patch(filePath, prefix, contents string) (string, error) {
	if !r.Matches(filePath) {
		return contents, nil
	}
	replacement := strings.ReplaceAll(r.replace, PrefixPlaceholder, prefix)
	return strings.ReplaceAll(contents, r.search, replacement), nil
}

// toSlash converts backslash separators so that Windows-style paths match
// the same patterns as slash-separated ones.
func toSlash(filePath string) string {
	return strings.ReplaceAll(filePath, `\`, "/")
}

var _ Patcher = (*Replace)(nil)
