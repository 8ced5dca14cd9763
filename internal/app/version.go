package app

import "log/slog"

// Set with -ldflags "-X github.com/saudaghar/marketplace-backend/internal/app.Version=v1.2.0".
var (
	Version   = "dev"
	Commit    = "unknown"
	BuildTime = "unknown"
)

// BuildInfo identifies the running binary in logs and on /health.
type BuildInfo struct {
	Version string
	Commit  string
	BuiltAt string
}

// Build returns the ldflags-provided build metadata.
func Build() BuildInfo {
	return BuildInfo{Version: Version, Commit: Commit, BuiltAt: BuildTime}
}

// String is the short form reported by the health endpoint.
func (b BuildInfo) String() string {
	if b.Commit == "unknown" || b.Commit == "" {
		return b.Version
	}
	short := b.Commit
	if len(short) > 7 {
		short = short[:7]
	}
	return b.Version + "+" + short
}

// LogValue groups the build fields under one key.
func (b BuildInfo) LogValue() slog.Value {
	return slog.GroupValue(
		slog.String("version", b.Version),
		slog.String("commit", b.Commit),
		slog.String("built_at", b.BuiltAt),
	)
}
