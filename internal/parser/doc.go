// Package parser turns recipe ingredient lines into structured results.
//
// A line is normalised first (fractions, HTML entities, unusual spaces and
// dashes) and then read left to right by a fixed sequence of stages:
//
//	quantity -> unit -> added measurements -> conversion -> name
//
// Each stage is a function over a cursor into the normalised line that
// returns the value it read, the advanced cursor and whether it matched.
// A stage that does not match leaves the cursor where it was. No stage
// returns an error: a line that cannot be read yields empty fields.
//
// All patterns use the regexp package (RE2), so matching time is linear in
// the input length. A Parser holds only compiled patterns and is safe for
// concurrent use.
package parser
