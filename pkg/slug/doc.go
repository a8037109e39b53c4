// Package slug provides safe identifier derivation for document filenames.
//
// A slug is a non-empty lowercase token matching [a-z0-9-]+ and is used as
// the filename stem of an emitted document. Because slugs from external
// payloads feed directly into filesystem paths, anything outside that
// character class is refused rather than escaped.
//
// # Usage
//
//	import "github.com/openclaw/recipekit/pkg/slug"
//
//	slug.IsValid("tomato-soup")       // true
//	slug.Make("Tomato Soup!")         // "tomato-soup"
//	s, err := slug.Derive("", "Tomato Soup") // "tomato-soup", nil
//
// Derive prefers a provided slug when it is already valid and otherwise
// falls back to deriving one from the title; it returns ErrUnsafeSlug when
// neither path yields a usable identifier.
//
// All functions are pure and safe for concurrent use.
package slug
