package transfer

import (
	"context"
	"fmt"
	"strings"

	"github.com/shirou/gopsutil/v3/process"
)

// GameRunning reports whether a Geometry Dash process is running on this
// host. Processes that exit while being inspected are ignored.
func GameRunning(ctx context.Context) (bool, error) {
	procs, err := process.ProcessesWithContext(ctx)
	if err != nil {
		return false, fmt.Errorf("failed to list processes: %w", err)
	}

	for _, p := range procs {
		name, err := p.NameWithContext(ctx)
		if err != nil {
			continue
		}
		if IsGameProcess(name) {
			return true, nil
		}
	}
	return false, nil
}

// IsGameProcess matches the game executable by name, ignoring case, spaces
// and the .exe suffix. Linux cuts process names to 15 bytes, which leaves
// "GeometryDash.ex" for the game under Wine or Proton.
func IsGameProcess(name string) bool {
	n := strings.ToLower(strings.ReplaceAll(name, " ", ""))
	switch n {
	case "geometrydash", "geometrydash.exe", "geometrydash.ex":
		return true
	}
	return false
}
