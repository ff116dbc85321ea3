// Package services contains the core orchestration logic of the
// matching engine: the corpus-trained batch index, the on-demand
// real-time matcher, and the match monitor. Services depend on the
// driven ports and the pure matching package only.
package services
