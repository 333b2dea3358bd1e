// Package datagen produces flight schedules for tests, benchmarks and the
// moredata tool.
//
//   - Replicate(records, times): repeat a schedule on consecutive days.
//     Copy j is shifted by j days and its flight numbers get the suffix
//     "_j", so every copy stays unique.
//   - Random(n, opts...): a deterministic pseudo-random schedule over a
//     small airport set. The same options always yield the same records.
//
// Options for Random: WithSeed, WithAirports, WithStart, WithSpan,
// WithBlockTime. Invalid values are reported by Random as ErrBadOption.
package datagen
