package config

// Exports for testing.
//
//nolint:gochecknoglobals // test exports
var (
	ExpandPath = expandPath
	ParseHCL   = parseHCL
)
