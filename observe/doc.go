// Package observe provides operators for monitoring observables: OpenTelemetry metrics using Instrument,
// and structured logging using Trace.
// Both operators pass all events through unchanged.
package observe
