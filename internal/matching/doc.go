// Package matching implements the pure scoring pipeline used by both
// engine modes: text normalisation, term-frequency and TF-IDF vectors,
// cosine similarity, non-text feature signals, and weighted rank fusion.
//
// Everything in this package is synchronous CPU work over values the
// caller already holds. Store access, corpus management, and the
// monitoring loop live in internal/core/services.
//
// Scoring functions never return errors for malformed input; they
// degrade to neutral scores so a bad report cannot stall a scan.
package matching
