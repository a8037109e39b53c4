// Package sanitizer provides stateless helpers for cleaning untrusted
// free-text fields before they are written into repository documents.
//
// The helpers fall into three groups:
//
//   - Strings – trimming, case conversion and whitespace normalisation.
//
//   - Markup – defensive routines that strip HTML/XML tag shapes, collapse
//     markdown hyperlinks to their visible label and remove bare
//     http(s):// tokens, so that no active link or injected markup can
//     survive into rendered output.
//
//   - Collections – utilities for mapping and filtering string slices.
//
// The package is completely stateless and depends only on the Go standard
// library. All helpers are implemented as small, focused functions that can
// be freely combined. For convenience the higher-order Apply and Compose
// helpers allow the creation of sanitisation pipelines:
//
//	clean := sanitizer.Compose(
//	    sanitizer.StripHTMLTags,
//	    sanitizer.CollapseMarkdownLinks,
//	    sanitizer.StripBareURLs,
//	    sanitizer.NormalizeWhitespace,
//	)
//
//	safe := clean("Visit <b>our</b> [site](https://evil.example)")
//	// safe == "Visit our site"
//
// CleanText is exactly that composition and is what callers normally use;
// it is idempotent, so already-clean text passes through unchanged.
//
// # Error handling
//
// None of the helpers returns an error – sanitisation is a total function
// over strings and always produces a safe (possibly empty) result.
//
// # Thread safety
//
// There is no global state; every helper is safe for concurrent use.
package sanitizer
