// Package split implements the page-boundary splitter for flat engine
// outputs (text, HTML, Markdown). The engine injects a literal separator
// between pages, with a %page-number% placeholder substituted per page;
// this package parses those separators back out and segments the content
// into per-page pieces.
package split

import (
	"regexp"
	"strconv"
	"strings"
)

// Placeholder is the page-number placeholder recognized inside separator
// templates, exactly as the engine substitutes it.
const Placeholder = "%page-number%"

// DefaultTemplate is the internal separator injected when page splitting is
// enabled and the caller did not supply one. The token must stay stable: the
// engine substitutes %page-number% literally and the splitter parses the
// instantiated token back out.
const DefaultTemplate = "\n<<<ODL_PAGE_BREAK_" + Placeholder + ">>>\n"

// Page is one delimited segment of content with its page number.
type Page struct {
	Number int
	Text   string
}

// Pattern compiles a separator template into a regexp that matches its
// instantiated occurrences. Literal characters are escaped; the placeholder
// (if present) becomes a numeric capture group. The second return reports
// whether the template carries a placeholder.
func Pattern(separator string) (*regexp.Regexp, bool) {
	before, after, found := strings.Cut(separator, Placeholder)
	if !found {
		return regexp.MustCompile(regexp.QuoteMeta(separator)), false
	}
	return regexp.MustCompile(regexp.QuoteMeta(before) + `(\d+)` + regexp.QuoteMeta(after)), true
}

// Pages splits content on occurrences of the instantiated separator.
// The segment before the first separator is page 1. Each captured page
// number applies to the segment that follows it; without a placeholder,
// segments are numbered sequentially. Segments are trimmed and dropped when
// empty. Output follows input occurrence order: page numbers are taken
// verbatim, never sorted or validated for continuity.
func Pages(content, separator string) []Page {
	re, numbered := Pattern(separator)
	matches := re.FindAllStringSubmatchIndex(content, -1)

	var pages []Page
	prev := 0
	number := 1
	for _, m := range matches {
		if text := strings.TrimSpace(content[prev:m[0]]); text != "" {
			pages = append(pages, Page{Number: number, Text: text})
		}
		prev = m[1]
		if numbered {
			// The capture is all digits, so Atoi cannot fail.
			number, _ = strconv.Atoi(content[m[2]:m[3]])
		} else {
			number++
		}
	}
	if text := strings.TrimSpace(content[prev:]); text != "" {
		pages = append(pages, Page{Number: number, Text: text})
	}
	return pages
}
