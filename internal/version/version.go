package version

// Build information set by ldflags
var (
	Version = "dev"     // -X github.com/arthur-debert/mwbotctl/internal/version.Version={{.Version}}
	Commit  = "unknown" // -X github.com/arthur-debert/mwbotctl/internal/version.Commit={{.Commit}}
	Date    = "unknown" // -X github.com/arthur-debert/mwbotctl/internal/version.Date={{.Date}}
)

// String is the version line shown by --version
func String() string {
	return Version + " (" + Commit + ", " + Date + ")"
}

// UserAgent identifies mwbotctl to wikis
func UserAgent() string {
	return "mwbotctl/" + Version
}
