package version

var (
	AppName     = "Voicebox"
	AppFullName = "Voicebox Discord Bot"

	// Overridden at build time via -ldflags.
	BuildDate = "unknown"
	GoVersion = "unknown"
)
