package core

import (
	"errors"
	"fmt"
	"strings"
)

// ErrInvalidFormat reports an unrecognized output format. It is the only
// error that terminates a whole load call; everything else is contained to
// the file being processed.
var ErrInvalidFormat = errors.New("invalid format")

// ParseFormat normalizes and validates a format name. Matching is
// case-insensitive and an empty value defaults to text.
func ParseFormat(s string) (Format, error) {
	if s == "" {
		return FormatText, nil
	}
	switch f := Format(strings.ToLower(s)); f {
	case FormatJSON, FormatText, FormatHTML, FormatMarkdown:
		return f, nil
	default:
		return "", fmt.Errorf("%w: %q (accepted: json, text, html, markdown)", ErrInvalidFormat, s)
	}
}
