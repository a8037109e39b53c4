// Package validator provides a minimal rule-based validation core with
// error accumulation.
//
// A Rule pairs a predicate with the ValidationError to report when the
// predicate fails. Apply runs a set of rules and returns every failure at
// once as a ValidationErrors value, so a batch submitter sees all defects
// in a single pass instead of one at a time:
//
//	err := validator.Apply(
//	    validator.RequiredField("recipes[0].title", title),
//	    validator.MatchesSlug("recipes[0].slug", rawSlug),
//	    validator.MatchesDate("recipes[0].date", rawDate),
//	)
//	for _, msg := range validator.ExtractValidationErrors(err).Messages() {
//	    fmt.Fprintln(os.Stderr, msg)
//	}
//
// The package is stateless and safe for concurrent use.
package validator
