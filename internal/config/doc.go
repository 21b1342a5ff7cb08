// Package config loads chromacraft settings.
//
// Settings are layered: built-in defaults, then the user file at
// ~/.config/chromacraft/config.{yaml,yml,toml}, then a file named on the
// command line. Later layers override only the fields they set. Command line
// flags are applied on top by the cmd package.
//
// Example (YAML):
//
//	count: 12
//	min_diff: 0.3
//	sampler: happy
//	timeout: 5s
//	seeds: ["#1f77b4"]
//	swatch:
//	  columns: 4
//	  labels: true
package config
