package util

import (
	"errors"
	"strings"
)

// ErrInvalidFileName reports an upload name that is empty or tries to
// escape its storage directory.
var ErrInvalidFileName = errors.New("invalid file name")

// SanitizeFileName flattens an uploaded file name into a single safe path
// segment. Browsers occasionally send full client-side paths, so separators
// become underscores rather than an error; traversal sequences are rejected
// outright.
func SanitizeFileName(name string) (string, error) {
	if strings.Contains(name, "..") {
		return "", ErrInvalidFileName
	}
	s := strings.TrimSpace(name)
	s = strings.ReplaceAll(s, "/", "_")
	s = strings.ReplaceAll(s, "\\", "_")
	if s == "" {
		return "", ErrInvalidFileName
	}
	return s, nil
}
