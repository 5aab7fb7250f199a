// Package config reads optional runtime settings from the platform's
// configuration store. On Windows that store is the registry; other
// platforms have no store and report every setting as absent.
//
// Absence (a missing key, a missing value, or a value of the wrong
// type) surfaces as a false second return, never as an error: settings
// are advisory and the caller always has a default.
package config

// Root selects the configuration hive a setting is read from.
type Root int

const (
	// CurrentUser reads per-user settings.
	CurrentUser Root = iota

	// LocalMachine reads machine-wide settings.
	LocalMachine
)
