package sanitizer

import "regexp"

// Pre-compiled regular expressions for performance
var (
	// Whitespace normalization
	whitespaceRegex = regexp.MustCompile(`\s+`)

	// HTML/XML tag shapes, e.g. <b>, </p>, <img src=...>
	htmlTagRegex = regexp.MustCompile(`<[^>]+>`)

	// Markdown hyperlinks: [label](target)
	markdownLinkRegex = regexp.MustCompile(`\[([^\]]+)\]\([^\)]+\)`)

	// Bare URLs and everything glued to them up to the next whitespace
	bareURLRegex = regexp.MustCompile(`(?i)https?://\S+`)
)
