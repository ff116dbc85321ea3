// Package driving defines the inbound port interfaces through which
// external actors (CLI commands, a future request layer) drive the
// matching engine and its monitor.
package driving
