package gatekeeper

import (
	"errors"
	"log/slog"
	"os"
	"path/filepath"
	"sync"

	"gdsync/internal/config"
	"gdsync/internal/interfaces"
	"gdsync/internal/models"
)

// ErrDiskCheckUnsupported is returned by the free space probe on hosts where
// it is not implemented. The disk rule then allows the run.
var ErrDiskCheckUnsupported = errors.New("disk space check not supported on this platform")

// Disk check states reported in the status
const (
	DiskCheckNotRun      = "not_checked"
	DiskCheckOK          = "ok"
	DiskCheckLow         = "low"
	DiskCheckUnsupported = "unsupported"
	DiskCheckError       = "error"
)

// Gatekeeper enforces the single active run rule and the free space rule
// for pulls. With a database on disk the single run rule also holds across
// processes through a lock file beside it.
type Gatekeeper struct {
	config *config.Config

	mu          sync.Mutex
	busy        bool
	activeRunID int64
	lastFree    int64
	diskCheck   string
	lock        *runLock

	freeBytes func(path string) (int64, error)
}

func New(cfg *config.Config) *Gatekeeper {
	g := &Gatekeeper{
		config:    cfg,
		diskCheck: DiskCheckNotRun,
		freeBytes: freeBytes,
	}
	if p := lockPath(cfg.GetDatabase().Path); p != "" {
		g.lock = &runLock{path: p}
	}
	return g
}

// TryAcquire admits req when no other run is active and, for pulls, the
// local disk has room. An allowed decision holds the slot until Release.
func (g *Gatekeeper) TryAcquire(req models.TransferRequest) interfaces.GateDecision {
	g.mu.Lock()
	defer g.mu.Unlock()

	// Rule 1: Only one run at a time
	if g.busy {
		details := map[string]interface{}{}
		if g.activeRunID != 0 {
			details["active_run_id"] = g.activeRunID
		}
		return interfaces.GateDecision{
			Allowed: false,
			Rule:    interfaces.RuleSingleRun,
			Reason:  "Another transfer is already running",
			Details: details,
		}
	}

	// Rule 2: Pulls need free space at the local root
	minFree := g.minFreeBytes()
	if req.Direction.IsPull() && minFree > 0 {
		probe := existingAncestor(req.LocalRoot)
		free, err := g.freeBytes(probe)
		switch {
		case errors.Is(err, ErrDiskCheckUnsupported):
			g.diskCheck = DiskCheckUnsupported

		case err != nil:
			slog.Error("failed to check local disk space", "path", probe, "error", err)
			g.diskCheck = DiskCheckError
			return interfaces.GateDecision{
				Allowed: false,
				Rule:    interfaces.RuleDiskSpace,
				Reason:  "Unable to verify disk space",
			}

		default:
			g.lastFree = free
			if free < minFree {
				g.diskCheck = DiskCheckLow
				return interfaces.GateDecision{
					Allowed: false,
					Rule:    interfaces.RuleDiskSpace,
					Reason:  "Insufficient disk space for transfer",
					Details: map[string]interface{}{
						"path":            probe,
						"available_bytes": free,
						"required_bytes":  minFree,
					},
				}
			}
			g.diskCheck = DiskCheckOK
		}
	}

	// Rule 3: No run in another process
	if decision, ok := g.takeLock(); !ok {
		return decision
	}

	g.busy = true
	g.activeRunID = 0
	return interfaces.GateDecision{
		Allowed: true,
		Reason:  "All checks passed",
	}
}

// TryLock takes the slot without checking any request rule, for work that
// must not overlap a run such as recovering interrupted runs. It reports
// false when a run holds the slot here or in another process.
func (g *Gatekeeper) TryLock() bool {
	g.mu.Lock()
	defer g.mu.Unlock()

	if g.busy {
		return false
	}
	if _, ok := g.takeLock(); !ok {
		return false
	}
	g.busy = true
	g.activeRunID = 0
	return true
}

func (g *Gatekeeper) takeLock() (interfaces.GateDecision, bool) {
	if g.lock == nil {
		return interfaces.GateDecision{}, true
	}

	ok, err := g.lock.tryLock()
	if err != nil {
		slog.Error("failed to take run lock", "path", g.lock.path, "error", err)
		return interfaces.GateDecision{
			Allowed: false,
			Rule:    interfaces.RuleRunLock,
			Reason:  "Unable to take the run lock",
			Details: map[string]interface{}{"lock_file": g.lock.path},
		}, false
	}
	if !ok {
		return interfaces.GateDecision{
			Allowed: false,
			Rule:    interfaces.RuleSingleRun,
			Reason:  "Another transfer is already running in another process",
			Details: map[string]interface{}{"lock_file": g.lock.path},
		}, false
	}
	return interfaces.GateDecision{}, true
}

// SetActiveRun records which run holds the slot.
func (g *Gatekeeper) SetActiveRun(id int64) {
	g.mu.Lock()
	defer g.mu.Unlock()
	if g.busy {
		g.activeRunID = id
	}
}

func (g *Gatekeeper) Release() {
	g.mu.Lock()
	defer g.mu.Unlock()
	if g.lock != nil {
		g.lock.unlock()
	}
	g.busy = false
	g.activeRunID = 0
}

// Active returns the run holding the slot. The id is 0 while the run is
// still being created.
func (g *Gatekeeper) Active() (int64, bool) {
	g.mu.Lock()
	defer g.mu.Unlock()
	return g.activeRunID, g.busy
}

func (g *Gatekeeper) GetStatus() interfaces.GatekeeperStatus {
	g.mu.Lock()
	defer g.mu.Unlock()

	var lockFile string
	if g.lock != nil {
		lockFile = g.lock.path
	}

	return interfaces.GatekeeperStatus{
		Busy:           g.busy,
		LockFile:       lockFile,
		ActiveRunID:    g.activeRunID,
		LocalFreeBytes: g.lastFree,
		MinFreeBytes:   g.minFreeBytes(),
		DiskCheck:      g.diskCheck,
	}
}

func (g *Gatekeeper) minFreeBytes() int64 {
	return g.config.GetGatekeeper().MinFreeMB * 1024 * 1024
}

// existingAncestor walks up from p to the nearest directory that exists, so
// a local root that will be created can still be measured.
func existingAncestor(p string) string {
	if p == "" {
		return "."
	}
	p = filepath.Clean(p)
	for {
		if _, err := os.Stat(p); err == nil {
			return p
		}
		parent := filepath.Dir(p)
		if parent == p {
			return p
		}
		p = parent
	}
}
