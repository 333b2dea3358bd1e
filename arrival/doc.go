// Package arrival implements the lookup structures that let the itinerary
// sweep find candidate predecessor flights: every already-processed flight
// that landed at a given airport within a time window.
//
// Two implementations share the Lookup interface:
//
//   - Index: per-destination slices kept in arrival order. Insert is an
//     append (the sweep presents flights in non-decreasing arrival order),
//     Range is two binary searches. O(log n + k) per query.
//   - List: one flat slice scanned in full by every Range call. O(n) per
//     query. Kept as a correctness oracle and benchmark baseline.
//
// Both return handles in insertion order, so the two produce identical
// results for identical input.
//
// Errors:
//
//   - ErrOutOfOrder  Index.Insert called with an arrival earlier than the
//     latest one already indexed.
package arrival
