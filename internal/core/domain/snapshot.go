package domain

import "time"

// SchemaVersion is the persisted snapshot layout written by this build.
const SchemaVersion = 1

// Snapshot is the versioned envelope a State is persisted in.
type Snapshot struct {
	SchemaVersion int       `json:"schemaVersion"`
	SavedAt       time.Time `json:"savedAt"`
	State         *State    `json:"state"`
}

// NewSnapshot wraps state in an envelope stamped with the current schema version.
func NewSnapshot(state *State, savedAt time.Time) Snapshot {
	return Snapshot{
		SchemaVersion: SchemaVersion,
		SavedAt:       savedAt.UTC(),
		State:         state,
	}
}
