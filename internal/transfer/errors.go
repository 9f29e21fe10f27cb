package transfer

import (
	"fmt"

	"gdsync/internal/models"
)

// PreflightError aborts a run before any file is attempted: the bridge is
// missing, the probe failed or no authorized device is connected.
type PreflightError struct {
	Reason string
	Err    error
}

func (e *PreflightError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("preflight failed: %s: %v", e.Reason, e.Err)
	}
	return fmt.Sprintf("preflight failed: %s", e.Reason)
}

func (e *PreflightError) Unwrap() error {
	return e.Err
}

// FileError is a single failed file. It is recorded and the run goes on.
type FileError struct {
	Entry    models.FileEntry
	Detail   string
	ExitCode int
	Err      error
}

func (e *FileError) Error() string {
	return fmt.Sprintf("failed to transfer %s: %s", e.Entry.Name, e.Detail)
}

func (e *FileError) Unwrap() error {
	return e.Err
}

// Failure converts the error into the form stored on an outcome.
func (e *FileError) Failure() models.FileFailure {
	return models.FileFailure{Entry: e.Entry, Detail: e.Detail, ExitCode: e.ExitCode}
}

// ConfigurationError means the request cannot run as configured, typically
// because the local root is unset or missing.
type ConfigurationError struct {
	Path   string
	Reason string
}

func (e *ConfigurationError) Error() string {
	if e.Path == "" {
		return fmt.Sprintf("configuration error: %s", e.Reason)
	}
	return fmt.Sprintf("configuration error: %s: %s", e.Reason, e.Path)
}

// EnumerationError means the file list could not be built.
type EnumerationError struct {
	Root string
	Err  error
}

func (e *EnumerationError) Error() string {
	return fmt.Sprintf("failed to list files in %s: %v", e.Root, e.Err)
}

func (e *EnumerationError) Unwrap() error {
	return e.Err
}
