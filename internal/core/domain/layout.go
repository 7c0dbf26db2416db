package domain

import "path/filepath"

const (
	// GrafDirName is the name of the internal metadata directory.
	GrafDirName = ".graf"

	// ConfigFileName is the name of the configuration file.
	ConfigFileName = "graf.yaml"

	// DebugLogFile is the name of the debug log file.
	DebugLogFile = "debug.log"

	// DirPerm is the default permission for directories (rwxr-x---).
	DirPerm = 0o750

	// FilePerm is the default permission for files (rw-r--r--).
	FilePerm = 0o644
)

// DefaultGrafPath returns the default root directory for graf metadata.
func DefaultGrafPath() string {
	return GrafDirName
}

// DefaultDebugLogPath returns the default path for the debug log.
// It joins .graf and debug.log.
func DefaultDebugLogPath() string {
	return filepath.Join(GrafDirName, DebugLogFile)
}
