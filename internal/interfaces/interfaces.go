package interfaces

import (
	"context"
	"time"

	"gdsync/internal/models"
)

// Bridge talks to the device through the adb executable
type Bridge interface {
	Resolve() (string, error)
	Devices(ctx context.Context) ([]models.Device, error)
	Pull(ctx context.Context, remotePath, localPath string) (*models.CommandResult, error)
	Push(ctx context.Context, localPath, remotePath string) (*models.CommandResult, error)
	ListFiles(ctx context.Context, dir string) ([]string, error)
	ModTime(ctx context.Context, remotePath string) (time.Time, error)
	MkdirAll(ctx context.Context, dir string) error
	DirExists(ctx context.Context, dir string) (bool, error)
}

// Orchestrator checks a request and its device, then executes it. Execute
// assumes both checks already passed.
type Orchestrator interface {
	CheckConfiguration(req models.TransferRequest) error
	Preflight(ctx context.Context) ([]models.Device, error)
	Execute(ctx context.Context, req models.TransferRequest, events chan<- models.Event) (*models.TransferOutcome, error)
}

// TransferService manages transfer runs
type TransferService interface {
	NewRequest(opts models.RequestOptions) (models.TransferRequest, error)
	StartTransfer(ctx context.Context, req models.TransferRequest) (*models.TransferRun, error)
	GetRun(id int64) (*models.TransferRun, error)
	GetRuns(filter models.RunFilter) ([]*models.TransferRun, error)
	GetSummary() (*models.RunSummary, error)
	ActiveRun() (*models.TransferRun, error)
	DeleteRun(id int64) error
	Ping() error
}

// TransferRepository provides database access for transfer runs
type TransferRepository interface {
	CreateRun(run *models.TransferRun) error
	GetRun(id int64) (*models.TransferRun, error)
	GetRuns(filter models.RunFilter) ([]*models.TransferRun, error)
	UpdateRun(run *models.TransferRun) error
	DeleteRun(id int64) error
	GetSummary() (*models.RunSummary, error)
	GetActiveRunsCount() (int, error)
	Ping() error
}

// Gatekeeper admits at most one run at a time, across every process that
// shares the run database
type Gatekeeper interface {
	TryAcquire(req models.TransferRequest) GateDecision
	TryLock() bool
	SetActiveRun(id int64)
	Release()
	Active() (int64, bool)
	GetStatus() GatekeeperStatus
}

// Gate rules that can reject a run
const (
	RuleSingleRun = "single_run"
	RuleDiskSpace = "disk_space"
	RuleRunLock   = "run_lock"
)

// GateDecision represents whether a run can proceed
type GateDecision struct {
	Allowed bool                   `json:"allowed"`
	Rule    string                 `json:"rule,omitempty"`
	Reason  string                 `json:"reason"`
	Details map[string]interface{} `json:"details,omitempty"`
}

// GatekeeperStatus is the gatekeeper's view of the host
type GatekeeperStatus struct {
	Busy           bool   `json:"busy"`
	ActiveRunID    int64  `json:"active_run_id,omitempty"`
	LocalFreeBytes int64  `json:"local_free_bytes,omitempty"`
	MinFreeBytes   int64  `json:"min_free_bytes"`
	DiskCheck      string `json:"disk_check"`
	LockFile       string `json:"lock_file,omitempty"`
}

// Notifier delivers the summary notice of a finished run
type Notifier interface {
	NotifyRunFinished(run *models.TransferRun) error
	IsEnabled() bool
}

// DeviceMonitor reports the devices seen by the last probe
type DeviceMonitor interface {
	GetStatus() models.DeviceStatus
}

// EventObserver receives every event of a run, in order
type EventObserver func(run *models.TransferRun, event models.Event)
