// internal/version/version.go
package version

// Version is the toolkit release string, overridable at link time via
// -ldflags "-X genalyze/internal/version.Version=...".
var Version = "0.1.0"
