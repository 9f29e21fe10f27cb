package main

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"os"

	"gdsync/internal/adb"
	"gdsync/internal/config"
	"gdsync/internal/gatekeeper"
	"gdsync/internal/metrics"
	"gdsync/internal/models"
	"gdsync/internal/notifications"
	"gdsync/internal/progress"
	"gdsync/internal/repository"
	"gdsync/internal/services"
	"gdsync/internal/transfer"

	"github.com/spf13/cobra"
)

var syncOpts struct {
	direction string
	scope     string
	profile   string
	localRoot string
	smart     bool
	backup    bool
	mods      bool
	replays   bool
}

var syncCmd = &cobra.Command{
	Use:   "sync",
	Short: "Copy save files in one direction",
	Long: `Copy the save files between the local save directory and the device.

Exit status is 0 when every file was copied, 1 when some files failed or the
run was interrupted, and 2 when the run could not start.`,
	Args: cobra.NoArgs,
	RunE: runSync,
}

func init() {
	f := syncCmd.Flags()
	f.StringVarP(&syncOpts.direction, "direction", "d", "", "phone-to-pc or pc-to-phone (default from config)")
	f.StringVarP(&syncOpts.scope, "scope", "s", "", "userdata or all (default from config)")
	f.StringVar(&syncOpts.profile, "profile", "", "native, wine, proton or custom (default: detect)")
	f.StringVar(&syncOpts.localRoot, "local-root", "", "use this local save directory")
	f.BoolVar(&syncOpts.smart, "smart", false, "skip non-critical files that are already up to date")
	f.BoolVar(&syncOpts.backup, "backup", false, "keep a .bak copy of local files a pull overwrites")
	f.BoolVar(&syncOpts.mods, "geode-mods", false, "also copy Geode mods (.geode)")
	f.BoolVar(&syncOpts.replays, "gdh-replays", false, "also copy GDH replays (.macro)")
}

func runSync(cmd *cobra.Command, args []string) error {
	ctx, cancel := createContext()
	defer cancel()

	repo, err := repository.New(cfg.GetDatabase().Path)
	if err != nil {
		return fmt.Errorf("failed to initialize database: %w", err)
	}
	defer repo.Close()

	svc := newStack(repo).service
	defer func() {
		if err := svc.Shutdown(context.Background()); err != nil {
			slog.Error("transfer service shutdown error", "error", err)
		}
	}()

	if err := svc.RecoverInterruptedRuns(); err != nil {
		slog.Warn("failed to recover interrupted runs", "error", err)
	}

	opts := models.RequestOptions{
		Direction: syncOpts.direction,
		Scope:     syncOpts.scope,
		Profile:   syncOpts.profile,
		LocalRoot: syncOpts.localRoot,
	}
	if cmd.Flags().Changed("smart") {
		opts.SmartSync = &syncOpts.smart
	}
	if cmd.Flags().Changed("backup") {
		opts.Backup = &syncOpts.backup
	}
	if cmd.Flags().Changed("geode-mods") {
		opts.GeodeMods = &syncOpts.mods
	}
	if cmd.Flags().Changed("gdh-replays") {
		opts.GDHReplays = &syncOpts.replays
	}

	req, err := svc.NewRequest(opts)
	if err != nil {
		return &exitError{code: 2, err: err}
	}

	out := cmd.OutOrStdout()
	fmt.Fprintf(out, "%s: %s -> %s\n", describe(req.Direction), sourceOf(req), destinationOf(req))

	console := progress.NewConsole(os.Stdout)
	run, err := svc.RunTransfer(ctx, req, func(_ *models.TransferRun, ev models.Event) {
		console.Handle(ev)
	})
	console.Finish()

	if run != nil {
		printRunResult(out, run)
	}
	return syncResult(run, err)
}

// syncResult maps the end of a run to the process exit status.
func syncResult(run *models.TransferRun, err error) error {
	if err != nil {
		var preflightErr *transfer.PreflightError
		var configErr *transfer.ConfigurationError
		if errors.As(err, &preflightErr) || errors.As(err, &configErr) ||
			errors.Is(err, services.ErrRunInProgress) || errors.Is(err, services.ErrRejected) {
			return &exitError{code: 2, err: err}
		}
		return &exitError{code: 1, err: err}
	}

	if run == nil || run.Status != models.RunStatusCompleted {
		return &exitError{code: 1}
	}
	return nil
}

func printRunResult(w io.Writer, run *models.TransferRun) {
	fmt.Fprintln(w, run.SummaryNotice())
	if run.Outcome == nil {
		return
	}
	for _, f := range run.Outcome.Failed {
		fmt.Fprintf(w, "  failed: %s (exit %d): %s\n", f.Entry.Name, f.ExitCode, f.Detail)
	}
}

// stack holds the components shared by both front-ends.
type stack struct {
	bridge       *adb.Client
	orchestrator *transfer.Orchestrator
	gatekeeper   *gatekeeper.Gatekeeper
	service      *services.TransferService
}

func newStack(repo *repository.Repository) stack {
	bridge := adb.NewClient(cfg.GetBridge(), adb.WithObserver(metrics.ObserveBridgeCall))
	orchestrator := transfer.New(bridge, orchestratorOptions(cfg))
	gk := gatekeeper.New(cfg)

	return stack{
		bridge:       bridge,
		orchestrator: orchestrator,
		gatekeeper:   gk,
		service:      services.NewTransferService(cfg, orchestrator, repo, gk, notifications.NewPushoverNotifier(cfg)),
	}
}

// reconfigure applies a reloaded configuration to the bridge and the
// orchestrator. A run already in progress keeps the settings it started with.
func (st stack) reconfigure(c *config.Config) {
	st.bridge.Configure(c.GetBridge())
	st.orchestrator.Configure(orchestratorOptions(c))
}

func orchestratorOptions(c *config.Config) transfer.Options {
	pc := c.GetPaths()
	opts := transfer.Options{
		CreateMissing:  pc.CreateMissing,
		RemoteModsRoot: pc.RemoteModsRoot,
	}
	if c.GetTransfer().CheckGameRunning {
		opts.GameRunning = transfer.GameRunning
	}
	return opts
}

func describe(d models.Direction) string {
	if d.IsPull() {
		return "phone to PC"
	}
	return "PC to phone"
}

func sourceOf(req models.TransferRequest) string {
	if req.Direction.IsPull() {
		return "device:" + req.RemoteRoot
	}
	return req.LocalRoot
}

func destinationOf(req models.TransferRequest) string {
	if req.Direction.IsPull() {
		return req.LocalRoot
	}
	return "device:" + req.RemoteRoot
}
