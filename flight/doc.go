// Package flight defines the normalized flight record consumed by the
// itinerary builder, together with the fixed timestamp codec and the
// normalization of raw (string-typed) records into typed ones.
//
// What:
//
//   - Record: source and destination airports, departure and arrival as
//     absolute time.Time values, flight number. Immutable after Normalize.
//   - Raw: the same five fields as plain strings, exactly as they appear in
//     tabular input and in the debug dump.
//   - ParseTimestamp / FormatTimestamp: the fixed "YYYY-MM-DDTHH:MM:SS"
//     layout (no zone; interpreted as UTC).
//
// Errors:
//
//   - ErrMalformedTimestamp   timestamp does not match Layout
//   - ErrMalformedInput       a required field is missing or empty
//   - ErrNonPositiveDuration  departure is not strictly before arrival
//
// Every error returned by Normalize and FromFields is a *FieldError naming
// the offending field and value; use errors.Is to branch on the sentinel.
package flight
