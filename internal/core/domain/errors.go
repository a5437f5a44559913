package domain

import "errors"

// Sentinels are plain errors so that zerr.With upgrades them into the cause
// chain and errors.Is keeps matching through the metadata layers.
var (
	// ErrCycleDetected is returned when a prerequisite still appears after
	// its dependent once sort correction has run.
	ErrCycleDetected = errors.New("cyclical action dependency detected")

	// ErrUnknownKind is returned for an unrecognized manifest action kind.
	ErrUnknownKind = errors.New("unknown action kind")

	// ErrUnknownToolchain is returned for an unsupported toolchain family.
	ErrUnknownToolchain = errors.New("unsupported toolchain family")

	// ErrUnknownCacheMode is returned for an unrecognized cache mode string.
	ErrUnknownCacheMode = errors.New("unknown cache mode")

	// ErrDuplicateAction is returned when the manifest declares the same
	// action id twice.
	ErrDuplicateAction = errors.New("duplicate action id")

	// ErrUnknownPrerequisite is returned when an action references a
	// prerequisite id the manifest does not declare.
	ErrUnknownPrerequisite = errors.New("unknown prerequisite id")

	// ErrMissingOutputPath flags an action whose output path could not be
	// recovered from its command line.
	ErrMissingOutputPath = errors.New("output path not found on command line")

	// ErrMissingInputFile flags an action whose input file could not be
	// recovered from its command line.
	ErrMissingInputFile = errors.New("input file not found on command line")

	// ErrBackendFailed is returned when the external backend reports a
	// non-zero exit.
	ErrBackendFailed = errors.New("distributed build backend failed")
)
