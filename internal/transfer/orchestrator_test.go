package transfer

import (
	"context"
	"errors"
	"os"
	"path"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"gdsync/internal/adb"
	"gdsync/internal/mocks"
	"gdsync/internal/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

const testRemoteRoot = "/storage/emulated/0/Android/media/com.geode.launcher/save"

func readyBridge(t *testing.T) *mocks.MockBridge {
	bridge := mocks.NewMockBridge(t)
	bridge.EXPECT().Resolve().Return("/usr/bin/adb", nil).Maybe()
	bridge.EXPECT().Devices(mock.Anything).Return([]models.Device{{Serial: "R58M12ABCDE", State: "device"}}, nil).Maybe()
	return bridge
}

func writeFiles(t *testing.T, dir string, names ...string) {
	t.Helper()
	for _, name := range names {
		require.NoError(t, os.WriteFile(filepath.Join(dir, name), []byte("data:"+name), 0644))
	}
}

// runAndCollect runs the orchestrator and returns every event it emitted.
func runAndCollect(t *testing.T, ctx context.Context, o *Orchestrator, req models.TransferRequest) (*models.TransferOutcome, error, []models.Event) {
	t.Helper()
	events := make(chan models.Event, 256)
	outcome, err := o.Run(ctx, req, events)
	close(events)

	var collected []models.Event
	for ev := range events {
		collected = append(collected, ev)
	}
	return outcome, err, collected
}

func progressEvents(events []models.Event) []models.Event {
	var out []models.Event
	for _, ev := range events {
		if ev.Kind == models.EventProgress {
			out = append(out, ev)
		}
	}
	return out
}

func exitError(op string, code int, stderr string) error {
	return &adb.CommandError{
		Op:     op,
		Result: &models.CommandResult{ExitCode: code, Stderr: stderr},
		Err:    errors.New("exit status 1"),
	}
}

func TestShouldExclude(t *testing.T) {
	tests := []struct {
		name string
		path string
		want bool
	}{
		{"forward slash at start", "geode/mods/tobyadd.gdh/Macros/run.gdr", true},
		{"forward slash in the middle", "/storage/emulated/0/save/geode/mods/tobyadd.gdh/Macros/run.gdr", true},
		{"forward slash at end", "/save/geode/mods/tobyadd.gdh/Macros", true},
		{"backslash at start", `geode\mods\tobyadd.gdh\Macros\run.gdr`, true},
		{"backslash in the middle", `C:\Users\bob\AppData\Local\GeometryDash\geode\mods\tobyadd.gdh\Macros\run.gdr`, true},
		{"backslash at end", `C:\GeometryDash\geode\mods\tobyadd.gdh\Macros`, true},
		{"plain save file", "/save/CCGameManager.dat", false},
		{"other mod", "/save/geode/mods/other.mod/Macros/run.gdr", false},
		{"case differs", "/save/geode/mods/tobyadd.gdh/macros/run.gdr", false},
		{"empty", "", false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, ShouldExclude(tt.path))
		})
	}
}

func TestUserDataFiles(t *testing.T) {
	files := UserDataFiles()

	assert.Equal(t, []string{
		"CCLocalLevels.dat",
		"CCLocalLevels2.dat",
		"CCGameManager.dat",
		"CCGameManager2.dat",
		"sfxlibrary.dat",
		"musiclibrary.dat",
	}, files)

	files[0] = "changed"
	assert.Equal(t, "CCLocalLevels.dat", UserDataFiles()[0])
}

func TestIsCritical(t *testing.T) {
	assert.True(t, IsCritical("CCGameManager.dat"))
	assert.True(t, IsCritical("CCLocalLevels2.dat"))
	assert.False(t, IsCritical("sfxlibrary.dat"))
	assert.False(t, IsCritical("ccgamemanager.dat"))
}

func TestRun_UserDataPullAttemptsFixedList(t *testing.T) {
	local := t.TempDir()
	// Unrelated files in the target directory change nothing.
	writeFiles(t, local, "unrelated.dat", "CCGameManager.dat")

	bridge := readyBridge(t)
	var pulled []string
	bridge.EXPECT().Pull(mock.Anything, mock.Anything, mock.Anything).
		Run(func(_ context.Context, remotePath, localPath string) {
			pulled = append(pulled, path.Base(remotePath))
			assert.Equal(t, filepath.Join(local, path.Base(remotePath)), localPath)
		}).
		Return(&models.CommandResult{Stdout: "1 file pulled"}, nil)

	o := New(bridge, Options{})
	req := models.TransferRequest{
		Direction:  models.DirectionPhoneToPC,
		Scope:      models.ScopeUserData,
		LocalRoot:  local,
		RemoteRoot: testRemoteRoot,
	}

	outcome, err, events := runAndCollect(t, context.Background(), o, req)
	require.NoError(t, err)

	assert.Equal(t, UserDataFiles(), pulled)
	assert.Equal(t, 6, outcome.Attempted)
	assert.Equal(t, 6, outcome.Succeeded)
	assert.Empty(t, outcome.Failed)
	assert.True(t, outcome.OverallSuccess)

	progress := progressEvents(events)
	require.Len(t, progress, 7)
	for i := 0; i < 6; i++ {
		assert.Equal(t, i, progress[i].Current)
		assert.Equal(t, 6, progress[i].Total)
		assert.Equal(t, UserDataFiles()[i], progress[i].File)
	}
	assert.Equal(t, 6, progress[6].Current)
	assert.Equal(t, 6, progress[6].Total)

	last := events[len(events)-1]
	assert.Equal(t, models.EventCompleted, last.Kind)
	assert.Same(t, outcome, last.Outcome)
}

func TestRun_UserDataPushReportsMissingLocalFiles(t *testing.T) {
	local := t.TempDir()
	writeFiles(t, local, "CCLocalLevels.dat", "CCGameManager.dat")

	bridge := readyBridge(t)
	bridge.EXPECT().MkdirAll(mock.Anything, testRemoteRoot).Return(nil).Once()
	var pushed []string
	bridge.EXPECT().Push(mock.Anything, mock.Anything, mock.Anything).
		Run(func(_ context.Context, localPath, remotePath string) {
			pushed = append(pushed, filepath.Base(localPath))
			assert.Equal(t, path.Join(testRemoteRoot, filepath.Base(localPath)), remotePath)
		}).
		Return(&models.CommandResult{}, nil)

	o := New(bridge, Options{})
	req := models.TransferRequest{
		Direction:  models.DirectionPCToPhone,
		Scope:      models.ScopeUserData,
		LocalRoot:  local,
		RemoteRoot: testRemoteRoot,
	}

	outcome, err, events := runAndCollect(t, context.Background(), o, req)
	require.NoError(t, err)

	assert.Equal(t, []string{"CCLocalLevels.dat", "CCGameManager.dat"}, pushed)
	assert.Equal(t, 6, outcome.Attempted)
	assert.Equal(t, 2, outcome.Succeeded)
	require.Len(t, outcome.Failed, 4)
	assert.Equal(t, "CCLocalLevels2.dat", outcome.Failed[0].Entry.Name)
	assert.Equal(t, -1, outcome.Failed[0].ExitCode)
	assert.Contains(t, outcome.Failed[0].Detail, "local file not found")
	assert.False(t, outcome.OverallSuccess)
	assert.Len(t, progressEvents(events), 7)
}

func TestRun_OneFailureOutOfFour(t *testing.T) {
	local := t.TempDir()
	writeFiles(t, local, "a.dat", "b.dat", "c.dat", "d.dat")

	bridge := readyBridge(t)
	bridge.EXPECT().MkdirAll(mock.Anything, testRemoteRoot).Return(nil)
	bridge.EXPECT().Push(mock.Anything, mock.Anything, mock.Anything).
		RunAndReturn(func(_ context.Context, localPath, _ string) (*models.CommandResult, error) {
			if filepath.Base(localPath) == "c.dat" {
				return &models.CommandResult{ExitCode: 1, Stderr: "adb: error: failed to copy"},
					exitError("push", 1, "adb: error: failed to copy\n")
			}
			return &models.CommandResult{}, nil
		})

	o := New(bridge, Options{})
	req := models.TransferRequest{
		Direction:  models.DirectionPCToPhone,
		Scope:      models.ScopeAll,
		LocalRoot:  local,
		RemoteRoot: testRemoteRoot,
	}

	outcome, err, events := runAndCollect(t, context.Background(), o, req)
	require.NoError(t, err)

	assert.Equal(t, 4, outcome.Attempted)
	assert.Equal(t, 3, outcome.Succeeded)
	require.Len(t, outcome.Failed, 1)
	assert.Equal(t, "c.dat", outcome.Failed[0].Entry.Name)
	assert.Equal(t, 1, outcome.Failed[0].ExitCode)
	assert.Equal(t, "adb: error: failed to copy", outcome.Failed[0].Detail)
	assert.False(t, outcome.OverallSuccess)

	progress := progressEvents(events)
	require.Len(t, progress, 5)
	assert.Equal(t, 4, progress[4].Current)
	assert.Equal(t, 4, progress[4].Total)

	var errorLogs int
	for _, ev := range events {
		if ev.Kind == models.EventLog && ev.Level == models.LogLevelError {
			errorLogs++
			assert.Contains(t, ev.Message, "c.dat")
		}
	}
	assert.Equal(t, 1, errorLogs)
}

func TestRun_AllFilesLocalSkipsExcludedAndDirectories(t *testing.T) {
	local := t.TempDir()
	writeFiles(t, local, "b.dat", "a.dat")
	macros := filepath.Join(local, "geode", "mods", "tobyadd.gdh", "Macros")
	require.NoError(t, os.MkdirAll(macros, 0755))
	writeFiles(t, macros, "macro.gdr")

	bridge := readyBridge(t)
	bridge.EXPECT().MkdirAll(mock.Anything, testRemoteRoot).Return(nil)
	var pushed []string
	bridge.EXPECT().Push(mock.Anything, mock.Anything, mock.Anything).
		Run(func(_ context.Context, localPath, _ string) {
			pushed = append(pushed, filepath.Base(localPath))
		}).
		Return(&models.CommandResult{}, nil)

	o := New(bridge, Options{})
	outcome, err, _ := runAndCollect(t, context.Background(), o, models.TransferRequest{
		Direction:  models.DirectionPCToPhone,
		Scope:      models.ScopeAll,
		LocalRoot:  local,
		RemoteRoot: testRemoteRoot,
	})
	require.NoError(t, err)

	assert.Equal(t, []string{"a.dat", "b.dat"}, pushed)
	assert.Equal(t, 2, outcome.Succeeded)
}

func TestRun_AllFilesRemote(t *testing.T) {
	local := t.TempDir()

	bridge := readyBridge(t)
	bridge.EXPECT().ListFiles(mock.Anything, testRemoteRoot).Return([]string{
		testRemoteRoot + "/CCGameManager.dat\r",
		testRemoteRoot + "/CCGameManager.dat",
		testRemoteRoot + "/geode/mods/tobyadd.gdh/Macros/x.gdr",
		testRemoteRoot + "/../escape.dat",
		testRemoteRoot + "/settings.json",
	}, nil)
	var pulled []string
	bridge.EXPECT().Pull(mock.Anything, mock.Anything, mock.Anything).
		Run(func(_ context.Context, remotePath, _ string) {
			pulled = append(pulled, remotePath)
		}).
		Return(&models.CommandResult{}, nil)

	o := New(bridge, Options{})
	outcome, err, events := runAndCollect(t, context.Background(), o, models.TransferRequest{
		Direction:  models.DirectionPhoneToPC,
		Scope:      models.ScopeAll,
		LocalRoot:  local,
		RemoteRoot: testRemoteRoot,
	})
	require.NoError(t, err)

	assert.Equal(t, []string{
		testRemoteRoot + "/CCGameManager.dat",
		testRemoteRoot + "/settings.json",
	}, pulled)
	assert.True(t, outcome.OverallSuccess)
	assert.Len(t, progressEvents(events), 3)
}

func TestRun_EnumerationFailureAbortsBeforeAnyFile(t *testing.T) {
	bridge := readyBridge(t)
	bridge.EXPECT().ListFiles(mock.Anything, testRemoteRoot).Return(nil, exitError("list", 1, "Permission denied"))

	o := New(bridge, Options{})
	outcome, err, events := runAndCollect(t, context.Background(), o, models.TransferRequest{
		Direction:  models.DirectionPhoneToPC,
		Scope:      models.ScopeAll,
		LocalRoot:  t.TempDir(),
		RemoteRoot: testRemoteRoot,
	})

	require.Error(t, err)
	var enumErr *EnumerationError
	assert.True(t, errors.As(err, &enumErr))
	assert.Equal(t, testRemoteRoot, enumErr.Root)
	assert.Nil(t, outcome)
	assert.Empty(t, progressEvents(events))
	bridge.AssertNotCalled(t, "Pull", mock.Anything, mock.Anything, mock.Anything)
}

func TestRun_EmptyListingIsVacuousSuccess(t *testing.T) {
	bridge := readyBridge(t)
	bridge.EXPECT().ListFiles(mock.Anything, testRemoteRoot).Return(nil, nil)

	o := New(bridge, Options{})
	outcome, err, events := runAndCollect(t, context.Background(), o, models.TransferRequest{
		Direction:  models.DirectionPhoneToPC,
		Scope:      models.ScopeAll,
		LocalRoot:  t.TempDir(),
		RemoteRoot: testRemoteRoot,
	})
	require.NoError(t, err)

	assert.True(t, outcome.OverallSuccess)
	assert.Zero(t, outcome.Attempted)
	progress := progressEvents(events)
	require.Len(t, progress, 1)
	assert.Equal(t, 0, progress[0].Current)
	assert.Equal(t, 0, progress[0].Total)

	var warned bool
	for _, ev := range events {
		if ev.Kind == models.EventLog && ev.Level == models.LogLevelWarn {
			warned = true
		}
	}
	assert.True(t, warned)
}

func TestRun_PreflightProbeFailureNeverTransfers(t *testing.T) {
	bridge := mocks.NewMockBridge(t)
	bridge.EXPECT().Resolve().Return("/usr/bin/adb", nil)
	bridge.EXPECT().Devices(mock.Anything).Return(nil, exitError("devices", 1, "cannot connect to daemon"))

	o := New(bridge, Options{})
	outcome, err, events := runAndCollect(t, context.Background(), o, models.TransferRequest{
		Direction:  models.DirectionPhoneToPC,
		Scope:      models.ScopeUserData,
		LocalRoot:  t.TempDir(),
		RemoteRoot: testRemoteRoot,
	})

	require.Error(t, err)
	var preErr *PreflightError
	require.True(t, errors.As(err, &preErr))
	assert.Equal(t, "device probe failed", preErr.Reason)
	assert.Nil(t, outcome)
	assert.Empty(t, progressEvents(events))
	bridge.AssertNotCalled(t, "Pull", mock.Anything, mock.Anything, mock.Anything)
	bridge.AssertNotCalled(t, "Push", mock.Anything, mock.Anything, mock.Anything)
}

func TestPreflight(t *testing.T) {
	t.Run("bridge missing", func(t *testing.T) {
		bridge := mocks.NewMockBridge(t)
		bridge.EXPECT().Resolve().Return("", errors.New("executable file not found in $PATH"))

		_, err := New(bridge, Options{}).Preflight(context.Background())

		var preErr *PreflightError
		require.True(t, errors.As(err, &preErr))
		assert.Equal(t, "bridge executable not found", preErr.Reason)
	})

	t.Run("no devices", func(t *testing.T) {
		bridge := mocks.NewMockBridge(t)
		bridge.EXPECT().Resolve().Return("/usr/bin/adb", nil)
		bridge.EXPECT().Devices(mock.Anything).Return(nil, nil)

		_, err := New(bridge, Options{}).Preflight(context.Background())

		var preErr *PreflightError
		require.True(t, errors.As(err, &preErr))
		assert.Equal(t, "no device connected", preErr.Reason)
	})

	t.Run("only unauthorized and offline devices", func(t *testing.T) {
		bridge := mocks.NewMockBridge(t)
		bridge.EXPECT().Resolve().Return("/usr/bin/adb", nil)
		bridge.EXPECT().Devices(mock.Anything).Return([]models.Device{
			{Serial: "abc", State: "unauthorized"},
			{Serial: "emulator-5554", State: "offline"},
		}, nil)

		_, err := New(bridge, Options{}).Preflight(context.Background())

		var preErr *PreflightError
		require.True(t, errors.As(err, &preErr))
		assert.Contains(t, preErr.Reason, "abc (unauthorized)")
		assert.Contains(t, preErr.Reason, "emulator-5554 (offline)")
	})

	t.Run("ready device", func(t *testing.T) {
		bridge := mocks.NewMockBridge(t)
		bridge.EXPECT().Resolve().Return("/usr/bin/adb", nil)
		bridge.EXPECT().Devices(mock.Anything).Return([]models.Device{
			{Serial: "abc", State: "unauthorized"},
			{Serial: "def", State: "device"},
		}, nil)

		ready, err := New(bridge, Options{}).Preflight(context.Background())
		require.NoError(t, err)
		require.Len(t, ready, 1)
		assert.Equal(t, "def", ready[0].Serial)
	})
}

func TestCheckConfiguration(t *testing.T) {
	existing := t.TempDir()
	file := filepath.Join(existing, "file.dat")
	writeFiles(t, existing, "file.dat")
	missing := filepath.Join(existing, "missing")

	base := models.TransferRequest{
		Direction:  models.DirectionPCToPhone,
		Scope:      models.ScopeUserData,
		RemoteRoot: testRemoteRoot,
	}

	tests := []struct {
		name          string
		mutate        func(r *models.TransferRequest)
		createMissing bool
		wantErr       bool
	}{
		{name: "existing root", mutate: func(r *models.TransferRequest) { r.LocalRoot = existing }},
		{name: "empty root", mutate: func(r *models.TransferRequest) { r.LocalRoot = "" }, wantErr: true},
		{name: "missing root", mutate: func(r *models.TransferRequest) { r.LocalRoot = missing }, wantErr: true},
		{name: "root is a file", mutate: func(r *models.TransferRequest) { r.LocalRoot = file }, wantErr: true},
		{
			name: "missing root on push is not created",
			mutate: func(r *models.TransferRequest) {
				r.LocalRoot = missing
			},
			createMissing: true,
			wantErr:       true,
		},
		{
			name:   "invalid direction",
			mutate: func(r *models.TransferRequest) { r.LocalRoot = existing; r.Direction = "sideways" },
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := base
			tt.mutate(&req)

			err := New(mocks.NewMockBridge(t), Options{CreateMissing: tt.createMissing}).CheckConfiguration(req)
			if !tt.wantErr {
				assert.NoError(t, err)
				return
			}
			var cfgErr *ConfigurationError
			assert.True(t, errors.As(err, &cfgErr))
		})
	}
}

func TestCheckConfiguration_CreatesMissingRootForPull(t *testing.T) {
	root := filepath.Join(t.TempDir(), "GeometryDash")

	err := New(mocks.NewMockBridge(t), Options{CreateMissing: true}).CheckConfiguration(models.TransferRequest{
		Direction:  models.DirectionPhoneToPC,
		Scope:      models.ScopeUserData,
		LocalRoot:  root,
		RemoteRoot: testRemoteRoot,
	})
	require.NoError(t, err)
	assert.DirExists(t, root)
}

func TestRun_ConfigurationErrorBeforePreflight(t *testing.T) {
	bridge := mocks.NewMockBridge(t)

	o := New(bridge, Options{})
	outcome, err, _ := runAndCollect(t, context.Background(), o, models.TransferRequest{
		Direction:  models.DirectionPCToPhone,
		Scope:      models.ScopeUserData,
		LocalRoot:  filepath.Join(t.TempDir(), "nope"),
		RemoteRoot: testRemoteRoot,
	})

	var cfgErr *ConfigurationError
	require.True(t, errors.As(err, &cfgErr))
	assert.Nil(t, outcome)
	bridge.AssertNotCalled(t, "Devices", mock.Anything)
}

func TestRun_PushMkdirFailureIsNotFatal(t *testing.T) {
	local := t.TempDir()
	writeFiles(t, local, "a.dat")

	bridge := readyBridge(t)
	bridge.EXPECT().MkdirAll(mock.Anything, testRemoteRoot).Return(exitError("mkdir", 1, "Read-only file system"))
	bridge.EXPECT().Push(mock.Anything, mock.Anything, mock.Anything).Return(&models.CommandResult{}, nil)

	o := New(bridge, Options{})
	outcome, err, _ := runAndCollect(t, context.Background(), o, models.TransferRequest{
		Direction:  models.DirectionPCToPhone,
		Scope:      models.ScopeAll,
		LocalRoot:  local,
		RemoteRoot: testRemoteRoot,
	})
	require.NoError(t, err)
	assert.True(t, outcome.OverallSuccess)
}

func TestRun_SmartSyncNeverSkipsCriticalFiles(t *testing.T) {
	local := t.TempDir()
	writeFiles(t, local, UserDataFiles()...)
	future := time.Now().Add(time.Hour)
	for _, name := range UserDataFiles() {
		require.NoError(t, os.Chtimes(filepath.Join(local, name), future, future))
	}

	bridge := readyBridge(t)
	bridge.EXPECT().ModTime(mock.Anything, mock.Anything).Return(time.Now().Add(-time.Hour), nil)
	var pulled []string
	bridge.EXPECT().Pull(mock.Anything, mock.Anything, mock.Anything).
		Run(func(_ context.Context, remotePath, _ string) {
			pulled = append(pulled, path.Base(remotePath))
		}).
		Return(&models.CommandResult{}, nil)

	o := New(bridge, Options{})
	outcome, err, events := runAndCollect(t, context.Background(), o, models.TransferRequest{
		Direction:  models.DirectionPhoneToPC,
		Scope:      models.ScopeUserData,
		LocalRoot:  local,
		RemoteRoot: testRemoteRoot,
		SmartSync:  true,
	})
	require.NoError(t, err)

	assert.Equal(t, []string{"CCLocalLevels.dat", "CCLocalLevels2.dat", "CCGameManager.dat", "CCGameManager2.dat"}, pulled)
	assert.Equal(t, 4, outcome.Attempted)
	assert.Equal(t, 4, outcome.Succeeded)
	assert.Equal(t, 2, outcome.Skipped)
	assert.True(t, outcome.OverallSuccess)
	assert.Len(t, progressEvents(events), 7)
}

func TestRun_SmartSyncTransfersNewerSource(t *testing.T) {
	local := t.TempDir()
	writeFiles(t, local, "sfxlibrary.dat")
	past := time.Now().Add(-time.Hour)
	require.NoError(t, os.Chtimes(filepath.Join(local, "sfxlibrary.dat"), past, past))

	bridge := readyBridge(t)
	bridge.EXPECT().MkdirAll(mock.Anything, testRemoteRoot).Return(nil)
	// Remote copy is newer than the local one, so a push is skipped.
	bridge.EXPECT().ModTime(mock.Anything, testRemoteRoot+"/sfxlibrary.dat").Return(time.Now(), nil)

	o := New(bridge, Options{})
	outcome, err, _ := runAndCollect(t, context.Background(), o, models.TransferRequest{
		Direction:  models.DirectionPCToPhone,
		Scope:      models.ScopeAll,
		LocalRoot:  local,
		RemoteRoot: testRemoteRoot,
		SmartSync:  true,
	})
	require.NoError(t, err)
	assert.Equal(t, 1, outcome.Skipped)
	assert.Zero(t, outcome.Attempted)

	// A missing remote copy means the file is transferred.
	bridge2 := readyBridge(t)
	bridge2.EXPECT().MkdirAll(mock.Anything, testRemoteRoot).Return(nil)
	bridge2.EXPECT().ModTime(mock.Anything, mock.Anything).Return(time.Time{}, exitError("stat", 1, "No such file"))
	bridge2.EXPECT().Push(mock.Anything, mock.Anything, mock.Anything).Return(&models.CommandResult{}, nil).Once()

	outcome, err, _ = runAndCollect(t, context.Background(), New(bridge2, Options{}), models.TransferRequest{
		Direction:  models.DirectionPCToPhone,
		Scope:      models.ScopeAll,
		LocalRoot:  local,
		RemoteRoot: testRemoteRoot,
		SmartSync:  true,
	})
	require.NoError(t, err)
	assert.Equal(t, 1, outcome.Succeeded)
	assert.Zero(t, outcome.Skipped)
}

func TestRun_BackupBeforePullOverwrites(t *testing.T) {
	local := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(local, "CCGameManager.dat"), []byte("old save"), 0644))

	bridge := readyBridge(t)
	bridge.EXPECT().Pull(mock.Anything, mock.Anything, mock.Anything).
		RunAndReturn(func(_ context.Context, _ string, localPath string) (*models.CommandResult, error) {
			if filepath.Base(localPath) == "CCGameManager.dat" {
				backup, err := os.ReadFile(localPath + BackupSuffix)
				require.NoError(t, err)
				assert.Equal(t, "old save", string(backup))
				require.NoError(t, os.WriteFile(localPath, []byte("new save"), 0644))
			}
			return &models.CommandResult{}, nil
		})

	o := New(bridge, Options{})
	outcome, err, _ := runAndCollect(t, context.Background(), o, models.TransferRequest{
		Direction:  models.DirectionPhoneToPC,
		Scope:      models.ScopeUserData,
		LocalRoot:  local,
		RemoteRoot: testRemoteRoot,
		Backup:     true,
	})
	require.NoError(t, err)
	assert.True(t, outcome.OverallSuccess)

	assert.FileExists(t, filepath.Join(local, "CCGameManager.dat.bak"))
	assert.NoFileExists(t, filepath.Join(local, "CCLocalLevels.dat.bak"))
}

func TestRun_CancelStopsRemainingFiles(t *testing.T) {
	local := t.TempDir()
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	bridge := readyBridge(t)
	var pulled []string
	bridge.EXPECT().Pull(mock.Anything, mock.Anything, mock.Anything).
		RunAndReturn(func(_ context.Context, remotePath, _ string) (*models.CommandResult, error) {
			pulled = append(pulled, path.Base(remotePath))
			if len(pulled) == 2 {
				cancel()
			}
			return &models.CommandResult{}, nil
		})

	o := New(bridge, Options{})
	outcome, err, events := runAndCollect(t, ctx, o, models.TransferRequest{
		Direction:  models.DirectionPhoneToPC,
		Scope:      models.ScopeUserData,
		LocalRoot:  local,
		RemoteRoot: testRemoteRoot,
	})

	assert.ErrorIs(t, err, context.Canceled)
	require.NotNil(t, outcome)
	assert.Equal(t, 2, outcome.Succeeded)
	assert.Len(t, pulled, 2)

	progress := progressEvents(events)
	assert.Len(t, progress, 2)
	for _, ev := range events {
		assert.NotEqual(t, models.EventCompleted, ev.Kind)
	}
}

func TestTransferOne(t *testing.T) {
	entry := models.FileEntry{Name: "a.dat", SourcePath: "/remote/a.dat", DestinationPath: "/local/a.dat"}

	t.Run("success", func(t *testing.T) {
		bridge := mocks.NewMockBridge(t)
		bridge.EXPECT().Pull(mock.Anything, "/remote/a.dat", "/local/a.dat").Return(&models.CommandResult{}, nil)

		assert.Nil(t, New(bridge, Options{}).TransferOne(context.Background(), entry, models.DirectionPhoneToPC))
	})

	t.Run("non-zero exit", func(t *testing.T) {
		bridge := mocks.NewMockBridge(t)
		bridge.EXPECT().Pull(mock.Anything, mock.Anything, mock.Anything).
			Return(&models.CommandResult{ExitCode: 1}, exitError("pull", 1, "remote object does not exist\n"))

		ferr := New(bridge, Options{}).TransferOne(context.Background(), entry, models.DirectionPhoneToPC)
		require.NotNil(t, ferr)
		assert.Equal(t, 1, ferr.ExitCode)
		assert.Equal(t, "remote object does not exist", ferr.Detail)
		assert.Equal(t, entry, ferr.Entry)
		assert.True(t, strings.HasPrefix(ferr.Error(), "failed to transfer a.dat"))
	})

	t.Run("transport error", func(t *testing.T) {
		bridge := mocks.NewMockBridge(t)
		bridge.EXPECT().Pull(mock.Anything, mock.Anything, mock.Anything).
			Return(nil, errors.New("device offline"))

		ferr := New(bridge, Options{}).TransferOne(context.Background(), entry, models.DirectionPhoneToPC)
		require.NotNil(t, ferr)
		assert.Equal(t, -1, ferr.ExitCode)
		assert.Equal(t, "device offline", ferr.Detail)
	})

	t.Run("push of missing local file never calls the bridge", func(t *testing.T) {
		bridge := mocks.NewMockBridge(t)
		pushEntry := models.FileEntry{Name: "x.dat", SourcePath: filepath.Join(t.TempDir(), "x.dat"), DestinationPath: "/remote/x.dat"}

		ferr := New(bridge, Options{}).TransferOne(context.Background(), pushEntry, models.DirectionPCToPhone)
		require.NotNil(t, ferr)
		assert.ErrorIs(t, ferr, os.ErrNotExist)
		bridge.AssertNotCalled(t, "Push", mock.Anything, mock.Anything, mock.Anything)
	})
}

func TestEnumerateLocal_MissingRoot(t *testing.T) {
	_, err := New(mocks.NewMockBridge(t), Options{}).EnumerateLocal(filepath.Join(t.TempDir(), "missing"))

	var enumErr *EnumerationError
	assert.True(t, errors.As(err, &enumErr))
}

func TestExecute_DoesNotRepeatChecks(t *testing.T) {
	local := t.TempDir()
	writeFiles(t, local, "a.dat")

	// No Resolve or Devices expectations: any probe fails the test
	bridge := mocks.NewMockBridge(t)
	bridge.EXPECT().MkdirAll(mock.Anything, testRemoteRoot).Return(nil).Once()
	bridge.EXPECT().Push(mock.Anything, mock.Anything, mock.Anything).Return(&models.CommandResult{}, nil).Once()

	events := make(chan models.Event, 64)
	outcome, err := New(bridge, Options{}).Execute(context.Background(), models.TransferRequest{
		Direction:  models.DirectionPCToPhone,
		Scope:      models.ScopeAll,
		LocalRoot:  local,
		RemoteRoot: testRemoteRoot,
	}, events)
	close(events)

	require.NoError(t, err)
	assert.Equal(t, 1, outcome.Succeeded)
}

func TestRun_ChecksDeviceOnce(t *testing.T) {
	local := t.TempDir()
	writeFiles(t, local, "a.dat")

	bridge := mocks.NewMockBridge(t)
	bridge.EXPECT().Resolve().Return("/usr/bin/adb", nil).Once()
	bridge.EXPECT().Devices(mock.Anything).Return([]models.Device{{Serial: "R58M12ABCDE", State: "device"}}, nil).Once()
	bridge.EXPECT().MkdirAll(mock.Anything, testRemoteRoot).Return(nil).Once()
	bridge.EXPECT().Push(mock.Anything, mock.Anything, mock.Anything).Return(&models.CommandResult{}, nil).Once()

	_, err, events := runAndCollect(t, context.Background(), New(bridge, Options{}), models.TransferRequest{
		Direction:  models.DirectionPCToPhone,
		Scope:      models.ScopeAll,
		LocalRoot:  local,
		RemoteRoot: testRemoteRoot,
	})
	require.NoError(t, err)
	assert.Equal(t, "Device ready: R58M12ABCDE", events[0].Message)
}

func TestEnumerateLocal_SkipsBackups(t *testing.T) {
	local := t.TempDir()
	writeFiles(t, local, "CCGameManager.dat", "CCGameManager.dat.bak", "settings.json.bak")

	entries, err := New(mocks.NewMockBridge(t), Options{}).EnumerateLocal(local)
	require.NoError(t, err)

	require.Len(t, entries, 1)
	assert.Equal(t, "CCGameManager.dat", entries[0].Name)
}

func TestEnumerateRemote_SkipsBackups(t *testing.T) {
	bridge := mocks.NewMockBridge(t)
	bridge.EXPECT().ListFiles(mock.Anything, testRemoteRoot).Return([]string{
		testRemoteRoot + "/CCLocalLevels.dat",
		testRemoteRoot + "/CCLocalLevels.dat.bak",
	}, nil)

	entries, err := New(bridge, Options{}).EnumerateRemote(context.Background(), testRemoteRoot)
	require.NoError(t, err)

	require.Len(t, entries, 1)
	assert.Equal(t, "CCLocalLevels.dat", entries[0].Name)
}

func TestRun_AllFilesPushAfterPullLeavesBackupsBehind(t *testing.T) {
	local := t.TempDir()
	writeFiles(t, local, "CCGameManager.dat", "CCGameManager.dat.bak")

	bridge := readyBridge(t)
	bridge.EXPECT().MkdirAll(mock.Anything, testRemoteRoot).Return(nil)
	var pushed []string
	bridge.EXPECT().Push(mock.Anything, mock.Anything, mock.Anything).
		Run(func(_ context.Context, _ string, remotePath string) {
			pushed = append(pushed, path.Base(remotePath))
		}).
		Return(&models.CommandResult{}, nil)

	outcome, err, _ := runAndCollect(t, context.Background(), New(bridge, Options{}), models.TransferRequest{
		Direction:  models.DirectionPCToPhone,
		Scope:      models.ScopeAll,
		LocalRoot:  local,
		RemoteRoot: testRemoteRoot,
	})
	require.NoError(t, err)

	assert.Equal(t, []string{"CCGameManager.dat"}, pushed)
	assert.Equal(t, 1, outcome.Attempted)
}

func TestPreflight_GameRunning(t *testing.T) {
	t.Run("running game aborts before the bridge", func(t *testing.T) {
		bridge := mocks.NewMockBridge(t)
		o := New(bridge, Options{GameRunning: func(context.Context) (bool, error) { return true, nil }})

		_, err := o.Preflight(context.Background())

		var pfErr *PreflightError
		require.True(t, errors.As(err, &pfErr))
		assert.Contains(t, pfErr.Reason, "Geometry Dash is running")
		bridge.AssertNotCalled(t, "Resolve")
	})

	t.Run("process list failure is not fatal", func(t *testing.T) {
		o := New(readyBridge(t), Options{GameRunning: func(context.Context) (bool, error) {
			return false, errors.New("permission denied")
		}})

		devices, err := o.Preflight(context.Background())
		require.NoError(t, err)
		assert.Len(t, devices, 1)
	})

	t.Run("closed game passes", func(t *testing.T) {
		o := New(readyBridge(t), Options{GameRunning: func(context.Context) (bool, error) { return false, nil }})

		_, err := o.Preflight(context.Background())
		assert.NoError(t, err)
	})
}

func TestIsGameProcess(t *testing.T) {
	tests := []struct {
		name string
		want bool
	}{
		{"GeometryDash.exe", true},
		{"geometrydash.exe", true},
		{"Geometry Dash", true},
		{"GeometryDash.ex", true},
		{"GeometryDash", true},
		{"gdsync", false},
		{"GeometryDashLauncher.exe", false},
		{"adb", false},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, IsGameProcess(tt.name), tt.name)
	}
}

func TestGameRunning_ListsProcesses(t *testing.T) {
	running, err := GameRunning(context.Background())
	require.NoError(t, err)
	assert.False(t, running)
}

func TestConfigure_AppliesToLaterChecks(t *testing.T) {
	req := models.TransferRequest{
		Direction:  models.DirectionPhoneToPC,
		Scope:      models.ScopeUserData,
		LocalRoot:  filepath.Join(t.TempDir(), "GeometryDash"),
		RemoteRoot: testRemoteRoot,
	}
	o := New(mocks.NewMockBridge(t), Options{})

	var cfgErr *ConfigurationError
	require.True(t, errors.As(o.CheckConfiguration(req), &cfgErr))

	o.Configure(Options{CreateMissing: true})

	require.NoError(t, o.CheckConfiguration(req))
	assert.DirExists(t, req.LocalRoot)
}
