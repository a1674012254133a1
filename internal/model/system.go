package model

// VersionInfo describes the running build, the applied schema version and
// which optional features are switched on.
type VersionInfo struct {
	AppVersion       string          `json:"appVersion"`
	DbVersion        string          `json:"dbVersion"`
	Features         map[string]bool `json:"features"`
	MigrationNeeded  bool            `json:"migrationNeeded"`
	MigrationMessage *string         `json:"migrationMessage,omitempty"`
}
