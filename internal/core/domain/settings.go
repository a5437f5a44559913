package domain

import (
	"strings"

	"go.trai.ch/zerr"
)

// CacheMode selects how the backend's object cache is used.
type CacheMode int

const (
	// CacheDisabled turns the backend cache off.
	CacheDisabled CacheMode = iota
	// CacheReadWrite reads from and writes to the cache.
	CacheReadWrite
	// CacheRead only reads from the cache.
	CacheRead
	// CacheWrite only writes to the cache.
	CacheWrite
)

// String returns the configuration spelling of the mode.
func (m CacheMode) String() string {
	switch m {
	case CacheReadWrite:
		return "readwrite"
	case CacheRead:
		return "read"
	case CacheWrite:
		return "write"
	default:
		return "disabled"
	}
}

// ParseCacheMode converts a configuration string to a CacheMode.
func ParseCacheMode(s string) (CacheMode, error) {
	switch strings.ToLower(s) {
	case "", "disabled", "off":
		return CacheDisabled, nil
	case "readwrite", "read-write":
		return CacheReadWrite, nil
	case "read", "read-only":
		return CacheRead, nil
	case "write", "write-only":
		return CacheWrite, nil
	default:
		return CacheDisabled, zerr.With(ErrUnknownCacheMode, "mode", s)
	}
}

// Settings holds the configuration switches for one generation run.
type Settings struct {
	// DistributionEnabled allows eligible actions to run on remote workers.
	DistributionEnabled bool

	CacheMode CacheMode
	CachePath string

	// BrokeragePath is the worker brokerage location handed to the backend.
	BrokeragePath string

	// ForceLocalModules names modules whose actions are never distributed,
	// regardless of the action's own eligibility flags.
	ForceLocalModules map[string]struct{}

	// ScriptPath is where the generated script is written.
	ScriptPath string

	// BackendPath is the external backend executable.
	BackendPath string

	// ManifestPath is the planner's action manifest.
	ManifestPath string

	// ToolchainPath is the resolved toolchain descriptor.
	ToolchainPath string
}

// ForceLocal reports whether actions of the given module must run locally.
func (s *Settings) ForceLocal(module string) bool {
	if module == "" {
		return false
	}
	_, ok := s.ForceLocalModules[module]
	return ok
}
