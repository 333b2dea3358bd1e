// Package render turns an itinerary.Set into text.
//
// Formats form a closed set, selected once with New:
//
//   - Debug:    JSON array of every itinerary in the set, one-leg chains
//     included, with valid/maximal flags and timestamps in flight.Layout.
//     DecodeDebug reads it back; cmd/itincheck consumes it.
//   - Human:    numbered blocks, one line per leg.
//   - Flights:  one line per itinerary, comma-joined flight numbers.
//   - Airports: one line per itinerary, comma-joined sources followed by
//     the final destination.
//
// All formats except Debug print only what itinerary.Set.Select returns.
package render
