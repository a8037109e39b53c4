package sanitizer

// StripHTMLTags removes anything matching an HTML/XML tag shape (<...>).
// Tag content between the angle brackets is discarded wholesale; text
// between tags is left untouched.
func StripHTMLTags(s string) string {
	return htmlTagRegex.ReplaceAllString(s, "")
}

// CollapseMarkdownLinks rewrites markdown hyperlinks [label](target) to
// their bare label, destroying the link target while keeping the
// human-readable content.
func CollapseMarkdownLinks(s string) string {
	return markdownLinkRegex.ReplaceAllString(s, "$1")
}

// StripBareURLs removes any http:// or https:// token together with the
// non-whitespace run that follows it. The scheme match is case-insensitive.
func StripBareURLs(s string) string {
	return bareURLRegex.ReplaceAllString(s, "")
}

// CleanText applies the full untrusted-text pipeline: tag stripping, link
// collapsing, bare-URL removal and whitespace normalisation, in that order.
// The result never contains a tag shape, a markdown link or a bare URL,
// and CleanText(CleanText(s)) == CleanText(s) for every s.
func CleanText(s string) string {
	return Apply(s,
		StripHTMLTags,
		CollapseMarkdownLinks,
		StripBareURLs,
		NormalizeWhitespace,
	)
}

// CleanList maps CleanText over every element and drops elements that end up
// empty, so an item consisting only of a stripped link or a bare URL
// disappears instead of leaving a blank line in the output.
func CleanList(items []string) []string {
	cleaned := make([]string, 0, len(items))
	for _, item := range items {
		if c := CleanText(item); c != "" {
			cleaned = append(cleaned, c)
		}
	}
	return cleaned
}
