// Package driven defines the outbound port interfaces of the matching
// engine: the report store it reads, the match store it writes, and
// the notification sink it triggers.
//
// Adapters in internal/adapters/driven implement these interfaces.
// Core services depend only on the interfaces, never the adapters.
package driven
