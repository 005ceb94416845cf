package env

const AppName = "imghdr"

// Set at build time via -ldflags.
var (
	Version    = "development"
	CommitHash = "unknown"
	BuildTime  = "unknown"
)
