// Package config loads the settings of the itinera command.
//
// Sources, later overriding earlier:
//
//  1. Default(): 1h..4h policy, indexed strategy, flights format.
//  2. An optional YAML file (durations as "90m", "4h").
//  3. A .env file, if present, loaded into the process environment.
//  4. ITINERA_* environment variables.
//
// The merged result is validated with struct tags. Command-line flags are
// applied by the caller on top of the returned Config.
//
// Example file:
//
//	policy:
//	  minConnection: 1h
//	  maxConnection: 4h
//	strategy: indexed
//	output:
//	  format: human
//	  subItineraries: true
//	log:
//	  level: debug
//	metrics:
//	  textfile: /var/lib/node_exporter/itinera.prom
package config
