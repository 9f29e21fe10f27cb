package adb

import (
	"strings"

	"gdsync/internal/models"
)

// ParseDevices parses `adb devices -l` output. Server start-up chatter and
// the header line are skipped.
func ParseDevices(output string) []models.Device {
	var devices []models.Device
	for _, ln := range strings.Split(output, "\n") {
		ln = strings.TrimSpace(ln)
		if ln == "" {
			continue
		}
		if strings.HasPrefix(ln, "List of devices") ||
			strings.HasPrefix(ln, "*") ||
			strings.Contains(ln, "daemon") ||
			strings.Contains(ln, "adb server") {
			continue
		}

		f := strings.Fields(ln)
		if len(f) < 2 {
			continue
		}

		d := models.Device{Serial: f[0], State: f[1]}
		for _, tok := range f[2:] {
			if v, ok := strings.CutPrefix(tok, "model:"); ok {
				d.Model = v
			}
		}
		devices = append(devices, d)
	}
	return devices
}

// ReadyDevices filters devices down to the ones in state "device".
// Offline and unauthorized entries are dropped.
func ReadyDevices(devices []models.Device) []models.Device {
	var ready []models.Device
	for _, d := range devices {
		if d.Ready() {
			ready = append(ready, d)
		}
	}
	return ready
}
