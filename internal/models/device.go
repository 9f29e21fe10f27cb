package models

import "time"

// DeviceStateReady is the adb state of a connected, authorized device.
const DeviceStateReady = "device"

type Device struct {
	Serial string `json:"serial"`
	State  string `json:"state"`
	Model  string `json:"model,omitempty"`
}

func (d Device) Ready() bool {
	return d.State == DeviceStateReady
}

// CommandResult captures one bridge invocation.
type CommandResult struct {
	Args     []string      `json:"args"`
	ExitCode int           `json:"exit_code"`
	Stdout   string        `json:"stdout"`
	Stderr   string        `json:"stderr"`
	Duration time.Duration `json:"duration"`
}

// DeviceStatus is the device monitor's last observation.
type DeviceStatus struct {
	Devices   []Device  `json:"devices"`
	Connected bool      `json:"connected"`
	Error     string    `json:"error,omitempty"`
	CheckedAt time.Time `json:"checked_at"`
}
