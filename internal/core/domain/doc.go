// Package domain defines the core business entities for Reunite.
//
// This package is part of the hexagonal architecture's innermost layer.
// It has NO external dependencies and defines the fundamental types:
//
//   - Report: A lost or found item report
//   - FeatureVector: The derived matching features of a report
//   - Match: A persisted pairing of one lost and one found report
//   - MatchConfig: Weights and thresholds for score fusion
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
