// Package retry drives repeated integration attempts until the process shuts down.
//
// The host and the asset loader become ready in no particular order, so the merge is not run
// once at startup. Instead a Scheduler calls the attempt function over and over; every attempt
// that finds a prerequisite missing simply returns, and once everything is in place the attempt
// becomes a no-op thanks to the idempotent merge.
//
// # Backoff
//
//   - An attempt that returned an error or panicked waits FailureInterval (12s by default).
//   - Any other attempt waits SuccessInterval (3s by default), even when it skipped early.
//
// # Isolation
//
// Errors and panics never escape an attempt. They are logged with the attempt number and, for
// panics, the stack of the goroutine, and the loop keeps going.
//
// # Cancellation
//
// Run returns when its context is cancelled. Cancellation is observed at the wait between
// attempts; an attempt that already started always runs to completion.
package retry
