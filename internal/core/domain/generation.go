package domain

import "time"

// GenerationInfo records the outcome of one script generation, keyed by
// script path. The digest lets a later run tell whether the emitted script
// actually changed.
type GenerationInfo struct {
	ScriptPath   string    `json:"script_path,omitzero"`
	ScriptDigest string    `json:"script_digest,omitzero"`
	Translated   int       `json:"translated,omitzero"`
	LocalActions int       `json:"local_actions,omitzero"`
	Timestamp    time.Time `json:"timestamp,omitzero"`
}
