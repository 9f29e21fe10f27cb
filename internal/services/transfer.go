package services

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"sync"
	"time"

	"gdsync/internal/config"
	"gdsync/internal/interfaces"
	"gdsync/internal/metrics"
	"gdsync/internal/models"
	"gdsync/internal/transfer"
)

var (
	// ErrRunInProgress is returned when another run holds the gatekeeper slot.
	ErrRunInProgress = errors.New("another transfer is already running")

	// ErrRejected is returned when the gatekeeper turns a request away for
	// any reason other than an active run.
	ErrRejected = errors.New("transfer rejected")

	// ErrRunActive is returned when deleting a run that has not finished.
	ErrRunActive = errors.New("transfer run is still active")
)

const eventBuffer = 64

type TransferService struct {
	config       *config.Config
	orchestrator interfaces.Orchestrator
	repository   interfaces.TransferRepository
	gatekeeper   interfaces.Gatekeeper
	notifier     interfaces.Notifier

	ctx    context.Context
	cancel context.CancelFunc
	wg     sync.WaitGroup

	mu        sync.RWMutex
	active    *models.TransferRun
	observers []interfaces.EventObserver
}

func NewTransferService(cfg *config.Config, orchestrator interfaces.Orchestrator, repo interfaces.TransferRepository, gatekeeper interfaces.Gatekeeper, notifier interfaces.Notifier) *TransferService {
	ctx, cancel := context.WithCancel(context.Background())

	return &TransferService{
		config:       cfg,
		orchestrator: orchestrator,
		repository:   repo,
		gatekeeper:   gatekeeper,
		notifier:     notifier,
		ctx:          ctx,
		cancel:       cancel,
	}
}

// Subscribe registers obs for the events of every later run.
func (s *TransferService) Subscribe(obs interfaces.EventObserver) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.observers = append(s.observers, obs)
}

// StartTransfer admits req, checks configuration and devices, then runs it
// in the background. The returned run is a snapshot taken at start.
//
// A run that fails its checks is recorded and returned together with the
// typed error from the transfer package.
func (s *TransferService) StartTransfer(ctx context.Context, req models.TransferRequest) (*models.TransferRun, error) {
	run, err := s.begin(ctx, req)
	if err != nil {
		return run, err
	}

	snapshot := s.snapshot()

	s.wg.Add(1)
	go func() {
		defer s.wg.Done()
		s.execute(s.ctx, run, nil)
	}()

	return snapshot, nil
}

// RunTransfer is StartTransfer for foreground callers: it blocks until the
// run finishes and calls observer for every event in order. The run is
// cancelled when either ctx or the service is.
func (s *TransferService) RunTransfer(ctx context.Context, req models.TransferRequest, observer interfaces.EventObserver) (*models.TransferRun, error) {
	run, err := s.begin(ctx, req)
	if err != nil {
		return run, err
	}

	runCtx, cancel := context.WithCancel(ctx)
	defer cancel()
	stop := context.AfterFunc(s.ctx, cancel)
	defer stop()

	s.wg.Add(1)
	defer s.wg.Done()

	err = s.execute(runCtx, run, observer)
	return cloneRun(run), err
}

func (s *TransferService) GetRun(id int64) (*models.TransferRun, error) {
	s.mu.RLock()
	if s.active != nil && s.active.ID == id {
		run := cloneRun(s.active)
		s.mu.RUnlock()
		return run, nil
	}
	s.mu.RUnlock()

	return s.repository.GetRun(id)
}

func (s *TransferService) GetRuns(filter models.RunFilter) ([]*models.TransferRun, error) {
	return s.repository.GetRuns(filter)
}

func (s *TransferService) GetSummary() (*models.RunSummary, error) {
	return s.repository.GetSummary()
}

// ActiveRun returns the run in progress, or nil when idle.
func (s *TransferService) ActiveRun() (*models.TransferRun, error) {
	return s.snapshot(), nil
}

// DeleteRun removes a finished run from the history.
func (s *TransferService) DeleteRun(id int64) error {
	s.mu.RLock()
	active := s.active != nil && s.active.ID == id
	s.mu.RUnlock()
	if active {
		return ErrRunActive
	}

	run, err := s.repository.GetRun(id)
	if err != nil {
		return err
	}
	if run.IsActive() {
		return ErrRunActive
	}

	if err := s.repository.DeleteRun(id); err != nil {
		return err
	}
	slog.Info("deleted transfer run", "run_id", id)
	return nil
}

// Ping checks that the run history is reachable.
func (s *TransferService) Ping() error {
	return s.repository.Ping()
}

// RecoverInterruptedRuns fails every run a previous process left queued or
// running. Interrupted runs are not resumed. Nothing is recovered while a
// run is in progress here or in another process sharing the database.
func (s *TransferService) RecoverInterruptedRuns() error {
	if !s.gatekeeper.TryLock() {
		slog.Info("skipping interrupted run recovery, a transfer is in progress")
		return nil
	}
	defer s.gatekeeper.Release()

	return s.recoverInterrupted()
}

// recoverInterrupted must be called with the gatekeeper slot held, which
// makes every queued or running row stale.
func (s *TransferService) recoverInterrupted() error {
	count, err := s.repository.GetActiveRunsCount()
	if err != nil {
		return fmt.Errorf("failed to count interrupted runs: %w", err)
	}
	if count == 0 {
		return nil
	}

	runs, err := s.repository.GetRuns(models.RunFilter{
		Status: []models.RunStatus{models.RunStatusQueued, models.RunStatusRunning},
	})
	if err != nil {
		return fmt.Errorf("failed to get interrupted runs: %w", err)
	}

	slog.Info("recovering interrupted transfer runs", "count", len(runs))

	for _, run := range runs {
		run.MarkFailed(models.ErrorKindInterrupted, "interrupted before completion")
		if err := s.repository.UpdateRun(run); err != nil {
			slog.Error("failed to mark run as interrupted", "run_id", run.ID, "error", err)
			continue
		}
		slog.Info("marked interrupted run as failed", "run_id", run.ID, "direction", run.Direction)
	}

	return nil
}

// Shutdown cancels any run in progress and waits for it to be recorded.
func (s *TransferService) Shutdown(ctx context.Context) error {
	slog.Info("shutting down transfer service")

	s.cancel()

	done := make(chan struct{})
	go func() {
		s.wg.Wait()
		close(done)
	}()

	select {
	case <-done:
		return nil
	case <-ctx.Done():
		return fmt.Errorf("failed to wait for active run: %w", ctx.Err())
	}
}

// begin takes the gatekeeper slot, records the run and performs the checks
// that must pass before the worker starts. On success the run is running
// and the slot stays held. The worker does not repeat the checks.
func (s *TransferService) begin(ctx context.Context, req models.TransferRequest) (*models.TransferRun, error) {
	decision := s.gatekeeper.TryAcquire(req)
	if !decision.Allowed {
		metrics.RecordRunRejected(decision.Rule)
		slog.Warn("transfer rejected", "rule", decision.Rule, "reason", decision.Reason)
		switch decision.Rule {
		case interfaces.RuleSingleRun:
			return nil, ErrRunInProgress
		case interfaces.RuleRunLock:
			return nil, fmt.Errorf("failed to start transfer: %s", decision.Reason)
		}
		return nil, fmt.Errorf("%w: %s", ErrRejected, decision.Reason)
	}

	// Rows left active by a process that died are stale once the slot is ours
	if err := s.recoverInterrupted(); err != nil {
		slog.Error("failed to recover interrupted runs", "error", err)
	}

	run := models.NewTransferRun(req)
	if err := s.repository.CreateRun(run); err != nil {
		s.gatekeeper.Release()
		return nil, fmt.Errorf("failed to create transfer run: %w", err)
	}
	s.gatekeeper.SetActiveRun(run.ID)
	metrics.RecordRunStarted()

	slog.Info("transfer run created",
		"run_id", run.ID,
		"direction", run.Direction,
		"scope", run.Scope,
		"local_root", run.LocalRoot)

	if err := s.orchestrator.CheckConfiguration(req); err != nil {
		run.AppendLog(err.Error())
		run.MarkFailed(models.ErrorKindConfiguration, err.Error())
		s.finish(run)
		return cloneRun(run), err
	}

	devices, err := s.orchestrator.Preflight(ctx)
	if err != nil {
		run.AppendLog(err.Error())
		run.MarkFailed(models.ErrorKindPreflight, err.Error())
		s.finish(run)
		return cloneRun(run), err
	}
	if len(devices) > 0 {
		run.Device = devices[0].Serial
	}

	run.MarkStarted()
	if err := s.repository.UpdateRun(run); err != nil {
		slog.Error("failed to update transfer run", "run_id", run.ID, "error", err)
	}

	s.mu.Lock()
	s.active = run
	s.mu.Unlock()

	return run, nil
}

// execute drives one admitted run to its terminal state. A single consumer
// drains the event channel while the orchestrator works.
func (s *TransferService) execute(ctx context.Context, run *models.TransferRun, observer interfaces.EventObserver) error {
	slog.Info("starting transfer run", "run_id", run.ID)

	s.mu.RLock()
	observers := append([]interfaces.EventObserver{}, s.observers...)
	s.mu.RUnlock()
	if observer != nil {
		observers = append(observers, observer)
	}

	events := make(chan models.Event, eventBuffer)
	done := make(chan struct{})
	go func() {
		defer close(done)
		s.consume(run, events, observers)
	}()

	if run.Device != "" {
		events <- models.LogEvent(models.LogLevelInfo, "Device ready: "+run.Device)
	}

	outcome, err := s.orchestrator.Execute(ctx, run.Request(), events)
	close(events)
	<-done

	s.mu.Lock()
	switch {
	case err == nil:
		run.MarkFinished(outcome)
	case ctx.Err() != nil:
		run.MarkCancelled(outcome)
	default:
		run.Outcome = outcome
		run.MarkFailed(errorKind(err), err.Error())
	}
	s.active = nil
	s.mu.Unlock()

	if outcome != nil {
		metrics.RecordFiles(string(run.Direction), outcome.Succeeded, len(outcome.Failed), outcome.Skipped)
	}

	s.finish(run)
	return err
}

func (s *TransferService) consume(run *models.TransferRun, events <-chan models.Event, observers []interfaces.EventObserver) {
	for ev := range events {
		s.mu.Lock()
		switch ev.Kind {
		case models.EventProgress:
			run.UpdateProgress(ev.Current, ev.Total, ev.File)
		case models.EventLog:
			run.AppendLog(ev.Message)
		}
		snapshot := cloneRun(run)
		s.mu.Unlock()

		if ev.Kind == models.EventProgress {
			if err := s.repository.UpdateRun(snapshot); err != nil {
				slog.Error("failed to update run progress", "run_id", run.ID, "error", err)
			}
		}

		for _, obs := range observers {
			obs(snapshot, ev)
		}
	}
}

// finish persists a terminal run, emits its single summary notice and
// frees the gatekeeper slot.
func (s *TransferService) finish(run *models.TransferRun) {
	notice := run.SummaryNotice()
	run.AppendLog(notice)

	if err := s.repository.UpdateRun(run); err != nil {
		slog.Error("failed to update transfer run", "run_id", run.ID, "error", err)
	}

	attrs := []any{"run_id", run.ID, "status", run.Status}
	if run.Outcome != nil {
		attrs = append(attrs,
			"attempted", run.Outcome.Attempted,
			"succeeded", run.Outcome.Succeeded,
			"failed", len(run.Outcome.Failed),
			"skipped", run.Outcome.Skipped)
	}
	if run.Status == models.RunStatusCompleted {
		slog.Info(notice, attrs...)
	} else {
		slog.Warn(notice, attrs...)
	}

	if s.notifier != nil && s.notifier.IsEnabled() {
		if err := s.notifier.NotifyRunFinished(run); err != nil {
			slog.Error("failed to send run notification", "run_id", run.ID, "error", err)
		}
	}

	started := run.CreatedAt
	if run.StartedAt != nil {
		started = *run.StartedAt
	}
	metrics.RecordRunFinished(string(run.Direction), string(run.Status), time.Since(started))

	s.gatekeeper.Release()
}

func (s *TransferService) snapshot() *models.TransferRun {
	s.mu.RLock()
	defer s.mu.RUnlock()
	if s.active == nil {
		return nil
	}
	return cloneRun(s.active)
}

func errorKind(err error) string {
	var (
		cfgErr  *transfer.ConfigurationError
		pfErr   *transfer.PreflightError
		enumErr *transfer.EnumerationError
	)
	switch {
	case errors.As(err, &cfgErr):
		return models.ErrorKindConfiguration
	case errors.As(err, &pfErr):
		return models.ErrorKindPreflight
	case errors.As(err, &enumErr):
		return models.ErrorKindEnumeration
	}
	return models.ErrorKindInternal
}

func cloneRun(run *models.TransferRun) *models.TransferRun {
	if run == nil {
		return nil
	}
	c := *run
	c.Log = append(models.RunLog{}, run.Log...)
	if run.Outcome != nil {
		o := *run.Outcome
		o.Failed = append([]models.FileFailure{}, run.Outcome.Failed...)
		c.Outcome = &o
	}
	return &c
}
