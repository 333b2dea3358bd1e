// Package itinerary discovers every chain of connecting flights in a batch
// of flight records.
//
// What:
//
//   - Build sweeps the records once in ascending arrival order. Each record
//     f first becomes a trivial one-leg chain, then extends every chain that
//     ends at a flight p with p.Destination == f.Source and
//     MinConnection <= f.Departure - p.Arrival <= MaxConnection, and is
//     finally inserted into the lookup so later records can find it.
//   - Because a legal predecessor always arrives before its successor
//     departs, every predecessor of f has been processed when f is reached.
//     Chains therefore only ever grow by appending and a single pass is
//     enough.
//   - Extensions shaped (X→Y),(Y→X),(X→Y) are rejected. Only the
//     penultimate leg of the chain being extended is inspected; longer
//     cycles such as A→B→C→A→B→C are kept.
//
// Storage:
//
//	Itineraries live in an arena (Set) and are addressed by Handle. A
//	side table maps each record to the handles of the chains ending at it,
//	so the record type stays immutable and nothing points back from a
//	record to its itineraries.
//
// Strategies:
//
//   - Indexed (default): candidates come from arrival.Index, a per-airport
//     arrival-ordered structure queried by binary search.
//   - Naive: candidates come from arrival.List, which scans every earlier
//     record. Same output, O(N²) time; kept for cross-checking and
//     benchmarks.
//
// Selection:
//
//	Set.Select(includeSub) returns the emittable itineraries: valid ones
//	(two legs or more) that are maximal, or every valid one when includeSub
//	is true. One-leg chains are never emitted.
//
// Complexity:
//
//   - Indexed: O(N log N) for sorting plus O(log N + C) per record, where C
//     is the number of chains extended. Total work follows the number of
//     legal connections, not N².
//   - Naive:   O(N²) candidate inspection.
//
// Errors:
//
//   - ErrInvalidPolicy   negative or inverted connection bounds
//   - ErrUnknownStrategy ParseStrategy on an unrecognized name
//   - flight.ErrMalformedInput, flight.ErrNonPositiveDuration from records
//     that fail flight.Record.Validate
package itinerary
