package models

import (
	"database/sql/driver"
	"encoding/json"
	"fmt"
	"time"
)

type RunStatus string

const (
	RunStatusQueued              RunStatus = "queued"
	RunStatusRunning             RunStatus = "running"
	RunStatusCompleted           RunStatus = "completed"
	RunStatusCompletedWithErrors RunStatus = "completed_with_errors"
	RunStatusFailed              RunStatus = "failed"
	RunStatusCancelled           RunStatus = "cancelled"
)

// Error kinds recorded on failed runs.
const (
	ErrorKindPreflight     = "preflight"
	ErrorKindConfiguration = "configuration"
	ErrorKindEnumeration   = "enumeration"
	ErrorKindInterrupted   = "interrupted"
	ErrorKindInternal      = "internal"
)

// MaxRunLogLines bounds the log kept on a persisted run.
const MaxRunLogLines = 500

type TransferRun struct {
	ID           int64            `json:"id" db:"id"`
	Direction    Direction        `json:"direction" db:"direction"`
	Scope        Scope            `json:"scope" db:"scope"`
	LocalRoot    string           `json:"local_root" db:"local_root"`
	RemoteRoot   string           `json:"remote_root" db:"remote_root"`
	SmartSync    bool             `json:"smart_sync" db:"smart_sync"`
	Backup       bool             `json:"backup" db:"backup"`
	GeodeMods    bool             `json:"geode_mods" db:"geode_mods"`
	GDHReplays   bool             `json:"gdh_replays" db:"gdh_replays"`
	Device       string           `json:"device,omitempty" db:"device"`
	Status       RunStatus        `json:"status" db:"status"`
	ErrorKind    string           `json:"error_kind,omitempty" db:"error_kind"`
	ErrorMessage string           `json:"error_message,omitempty" db:"error_message"`
	Progress     RunProgress      `json:"progress" db:"progress"`
	Outcome      *TransferOutcome `json:"outcome,omitempty" db:"outcome"`
	Log          RunLog           `json:"log" db:"log"`
	CreatedAt    time.Time        `json:"created_at" db:"created_at"`
	UpdatedAt    time.Time        `json:"updated_at" db:"updated_at"`
	StartedAt    *time.Time       `json:"started_at,omitempty" db:"started_at"`
	CompletedAt  *time.Time       `json:"completed_at,omitempty" db:"completed_at"`
}

type RunProgress struct {
	Current     int       `json:"current"`
	Total       int       `json:"total"`
	CurrentFile string    `json:"current_file,omitempty"`
	Percentage  float64   `json:"percentage"`
	UpdatedAt   time.Time `json:"updated_at"`
}

// RunLog is the tail of a run's log panel.
type RunLog []string

func NewTransferRun(req TransferRequest) *TransferRun {
	now := time.Now()
	return &TransferRun{
		Direction:  req.Direction,
		Scope:      req.Scope,
		LocalRoot:  req.LocalRoot,
		RemoteRoot: req.RemoteRoot,
		SmartSync:  req.SmartSync,
		Backup:     req.Backup,
		GeodeMods:  req.GeodeMods,
		GDHReplays: req.GDHReplays,
		Status:     RunStatusQueued,
		Progress:   RunProgress{UpdatedAt: now},
		Log:        RunLog{},
		CreatedAt:  now,
		UpdatedAt:  now,
	}
}

// Database value methods for custom types
func (p RunProgress) Value() (driver.Value, error) {
	return json.Marshal(p)
}

func (p *RunProgress) Scan(value interface{}) error {
	return scanJSON(value, p, "RunProgress")
}

func (l RunLog) Value() (driver.Value, error) {
	if l == nil {
		l = RunLog{}
	}
	return json.Marshal(l)
}

func (l *RunLog) Scan(value interface{}) error {
	return scanJSON(value, l, "RunLog")
}

func (o TransferOutcome) Value() (driver.Value, error) {
	return json.Marshal(o)
}

func (o *TransferOutcome) Scan(value interface{}) error {
	return scanJSON(value, o, "TransferOutcome")
}

func scanJSON(value interface{}, dest interface{}, name string) error {
	if value == nil {
		return nil
	}

	var bytes []byte
	switch v := value.(type) {
	case []byte:
		bytes = v
	case string:
		bytes = []byte(v)
	default:
		return fmt.Errorf("cannot scan %T into %s", value, name)
	}

	if len(bytes) == 0 {
		return nil
	}
	return json.Unmarshal(bytes, dest)
}

// Helper methods
func (r *TransferRun) IsActive() bool {
	return r.Status == RunStatusQueued || r.Status == RunStatusRunning
}

func (r *TransferRun) IsFinished() bool {
	switch r.Status {
	case RunStatusCompleted, RunStatusCompletedWithErrors, RunStatusFailed, RunStatusCancelled:
		return true
	}
	return false
}

func (r *TransferRun) Request() TransferRequest {
	return TransferRequest{
		Direction:  r.Direction,
		Scope:      r.Scope,
		LocalRoot:  r.LocalRoot,
		RemoteRoot: r.RemoteRoot,
		SmartSync:  r.SmartSync,
		Backup:     r.Backup,
		GeodeMods:  r.GeodeMods,
		GDHReplays: r.GDHReplays,
	}
}

func (r *TransferRun) AppendLog(line string) {
	r.Log = append(r.Log, line)
	if over := len(r.Log) - MaxRunLogLines; over > 0 {
		r.Log = append(RunLog{}, r.Log[over:]...)
	}
	r.UpdatedAt = time.Now()
}

func (r *TransferRun) UpdateProgress(current, total int, file string) {
	now := time.Now()
	r.Progress.Current = current
	r.Progress.Total = total
	r.Progress.CurrentFile = file
	if total > 0 {
		r.Progress.Percentage = float64(current) / float64(total) * 100
	} else {
		r.Progress.Percentage = 100
	}
	r.Progress.UpdatedAt = now
	r.UpdatedAt = now
}

func (r *TransferRun) MarkStarted() {
	now := time.Now()
	r.Status = RunStatusRunning
	r.StartedAt = &now
	r.UpdatedAt = now
}

// MarkFinished stores the outcome and picks the terminal status from it.
func (r *TransferRun) MarkFinished(outcome *TransferOutcome) {
	now := time.Now()
	r.Outcome = outcome
	r.Status = RunStatusCompleted
	if outcome != nil && !outcome.OverallSuccess {
		r.Status = RunStatusCompletedWithErrors
	}
	r.CompletedAt = &now
	r.UpdatedAt = now
}

func (r *TransferRun) MarkFailed(kind, errorMsg string) {
	now := time.Now()
	r.Status = RunStatusFailed
	r.ErrorKind = kind
	r.ErrorMessage = errorMsg
	r.CompletedAt = &now
	r.UpdatedAt = now
}

func (r *TransferRun) MarkCancelled(outcome *TransferOutcome) {
	now := time.Now()
	r.Status = RunStatusCancelled
	r.Outcome = outcome
	r.CompletedAt = &now
	r.UpdatedAt = now
}

// SummaryNotice is the single user-facing line shown when a run ends.
func (r *TransferRun) SummaryNotice() string {
	switch r.Status {
	case RunStatusCompleted:
		return "Sync completed successfully!"
	case RunStatusCompletedWithErrors:
		return "Sync completed with errors. Check the logs for details."
	case RunStatusCancelled:
		return "Sync cancelled before all files were transferred."
	case RunStatusFailed:
		return fmt.Sprintf("Sync failed: %s", r.ErrorMessage)
	}
	return fmt.Sprintf("Sync %s", r.Status)
}

// RunFilter represents filtering options for run history queries
type RunFilter struct {
	Status    []RunStatus `json:"status,omitempty"`
	Direction Direction   `json:"direction,omitempty"`
	Limit     int         `json:"limit,omitempty"`
	Offset    int         `json:"offset,omitempty"`
	SortBy    string      `json:"sort_by,omitempty"`
	SortOrder string      `json:"sort_order,omitempty"`
}

// RunSummary represents aggregated run statistics
type RunSummary struct {
	TotalRuns               int `json:"total_runs"`
	QueuedRuns              int `json:"queued_runs"`
	RunningRuns             int `json:"running_runs"`
	CompletedRuns           int `json:"completed_runs"`
	CompletedWithErrorsRuns int `json:"completed_with_errors_runs"`
	FailedRuns              int `json:"failed_runs"`
	CancelledRuns           int `json:"cancelled_runs"`
}
