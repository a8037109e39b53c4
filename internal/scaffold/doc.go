// Package scaffold creates a single human-authored recipe page, places its
// hero image and keeps the site navigation in sync.
//
// Unlike the ingest pipeline, scaffold input comes from the operator's own
// command line, so fields are rendered as given without sanitization. The
// navigation edit is idempotent: inserting an entry that already exists is
// a no-op, and the edited file is re-parsed as YAML before it is written
// back so a bad insert can never leave the site configuration unloadable.
package scaffold
