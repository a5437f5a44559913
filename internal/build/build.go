// Package build holds build-time information about the fbgen binary.
package build

// Version is the fbgen version string.
// It defaults to "dev" and is overwritten by linker flags in release builds.
var Version = "dev"
