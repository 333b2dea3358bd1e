// Package itinera discovers flight itineraries: chains of flights where
// each leg departs from the airport the previous one landed at, within a
// connection window (1h to 4h by default, both ends inclusive).
//
// 🚀 What is in the box?
//
//	• flight/    Record type, timestamp layout, normalization of raw rows
//	• arrival/   candidate lookups: per-airport arrival index and a flat list
//	• itinerary/ the arrival-ordered sweep, chain arena, maximal/valid flags
//	• ingest/    CSV reader and writer for flight schedules
//	• render/    flights, airports, human and debug (JSON) output
//	• verify/    independent re-check of produced itineraries
//	• datagen/   replicated and seeded random schedules for benchmarks
//	• config/    YAML, .env and ITINERA_* settings
//	• logger/    zap-backed structured logging
//	• metrics/   prometheus counters dumped to a textfile
//
// Commands live under cmd/: itinera (discover and print), itincheck
// (validate a debug dump) and moredata (grow a schedule).
//
// Quick ASCII example:
//
//	WAW ──F1──▶ KRK ──F2──▶ GDN
//	08:00  09:00   10:30  11:30
//
//	layover at KRK: 1h30m, inside [1h, 4h]  ⇒  itinerary F1,F2
//
// See itinerary.Build for the algorithm and its guarantees.
package itinera
