package models

import (
	"fmt"
	"strings"
)

// Direction selects which side of the bridge is the source.
type Direction string

const (
	DirectionPhoneToPC Direction = "phone_to_pc"
	DirectionPCToPhone Direction = "pc_to_phone"
)

// Scope selects which files take part in a transfer.
type Scope string

const (
	ScopeUserData Scope = "userdata"
	ScopeAll      Scope = "all"
)

// ParseDirection accepts both the canonical form and the dashed CLI form.
func ParseDirection(s string) (Direction, error) {
	switch strings.ReplaceAll(strings.ToLower(strings.TrimSpace(s)), "-", "_") {
	case string(DirectionPhoneToPC), "pull":
		return DirectionPhoneToPC, nil
	case string(DirectionPCToPhone), "push":
		return DirectionPCToPhone, nil
	}
	return "", fmt.Errorf("invalid direction %q (want phone-to-pc or pc-to-phone)", s)
}

func ParseScope(s string) (Scope, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case string(ScopeUserData), "user_data", "user-data":
		return ScopeUserData, nil
	case string(ScopeAll), "all_files", "all-files":
		return ScopeAll, nil
	}
	return "", fmt.Errorf("invalid scope %q (want userdata or all)", s)
}

// IsPull reports whether files travel from the device to the host.
func (d Direction) IsPull() bool {
	return d == DirectionPhoneToPC
}

func (d Direction) Valid() bool {
	return d == DirectionPhoneToPC || d == DirectionPCToPhone
}

func (s Scope) Valid() bool {
	return s == ScopeUserData || s == ScopeAll
}

// TransferRequest describes one run. It is not modified once the run starts.
type TransferRequest struct {
	Direction  Direction `json:"direction"`
	Scope      Scope     `json:"scope"`
	LocalRoot  string    `json:"local_root"`
	RemoteRoot string    `json:"remote_root"`
	SmartSync  bool      `json:"smart_sync"`
	Backup     bool      `json:"backup"`
	GeodeMods  bool      `json:"geode_mods"`
	GDHReplays bool      `json:"gdh_replays"`
}

// RequestOptions overrides the configured transfer defaults. Empty fields
// and nil flags keep the configured value.
type RequestOptions struct {
	Direction string `json:"direction"`
	Scope     string `json:"scope"`
	Profile   string `json:"profile"`
	LocalRoot string `json:"local_root"`
	SmartSync *bool  `json:"smart_sync,omitempty"`
	Backup    *bool  `json:"backup,omitempty"`

	GeodeMods  *bool `json:"geode_mods,omitempty"`
	GDHReplays *bool `json:"gdh_replays,omitempty"`
}

func (r TransferRequest) Validate() error {
	if !r.Direction.Valid() {
		return fmt.Errorf("invalid direction: %q", r.Direction)
	}
	if !r.Scope.Valid() {
		return fmt.Errorf("invalid scope: %q", r.Scope)
	}
	if r.RemoteRoot == "" {
		return fmt.Errorf("remote root is required")
	}
	return nil
}

// FileEntry is one enumerated file. SourcePath is a host path for pushes
// and a device path for pulls.
type FileEntry struct {
	Name            string `json:"name"`
	SourcePath      string `json:"source_path"`
	DestinationPath string `json:"destination_path"`
}

type FileFailure struct {
	Entry    FileEntry `json:"entry"`
	Detail   string    `json:"detail"`
	ExitCode int       `json:"exit_code"`
}

// TransferOutcome aggregates per-file results of one run.
type TransferOutcome struct {
	Attempted      int           `json:"attempted"`
	Succeeded      int           `json:"succeeded"`
	Skipped        int           `json:"skipped"`
	Failed         []FileFailure `json:"failed"`
	OverallSuccess bool          `json:"overall_success"`
}

func (o *TransferOutcome) RecordSuccess() {
	o.Attempted++
	o.Succeeded++
}

// RecordSkip counts a file left alone by smart sync. Skips are not attempts.
func (o *TransferOutcome) RecordSkip() {
	o.Skipped++
}

func (o *TransferOutcome) RecordFailure(f FileFailure) {
	o.Attempted++
	o.Failed = append(o.Failed, f)
}

func (o *TransferOutcome) Finalize() {
	o.OverallSuccess = len(o.Failed) == 0
}
