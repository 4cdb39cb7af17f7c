// Package domain defines the core entities for Larder.
//
// This package is part of the hexagonal architecture's innermost layer.
// It has NO external dependencies and defines the fundamental types:
//
//   - Quantity: A scalar amount or an ordered range
//   - Measurement: A quantity paired with a canonical unit
//   - ParseResult: The structured form of one ingredient line
//   - HistoryEntry: A stored parse result
//
// # Architectural Position
//
// Domain is at the centre of the hexagon. It may only import
// the Go standard library. All other packages depend on domain,
// never the reverse.
//
// # Import Rules
//
//   - Can Import: Standard library only
//   - Cannot Import: Any internal/ package, any external dependency
package domain
