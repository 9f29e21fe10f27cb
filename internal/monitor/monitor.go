package monitor

import (
	"context"
	"log/slog"
	"sync"
	"time"

	"gdsync/internal/adb"
	"gdsync/internal/config"
	"gdsync/internal/interfaces"
	"gdsync/internal/metrics"
	"gdsync/internal/models"
)

// Monitor polls the bridge for attached devices in the background.
type Monitor struct {
	config *config.Config
	bridge interfaces.Bridge

	mu     sync.RWMutex
	status models.DeviceStatus

	// Context management
	ctx    context.Context
	cancel context.CancelFunc
	done   chan struct{}
}

func New(cfg *config.Config, bridge interfaces.Bridge) *Monitor {
	ctx, cancel := context.WithCancel(context.Background())

	return &Monitor{
		config: cfg,
		bridge: bridge,
		status: models.DeviceStatus{Devices: []models.Device{}},
		ctx:    ctx,
		cancel: cancel,
		done:   make(chan struct{}),
	}
}

// Start probes once and then keeps polling until Stop.
func (m *Monitor) Start() error {
	m.Refresh(m.ctx)
	go m.monitorLoop()
	slog.Info("device monitor started", "interval", m.config.GetMonitor().Interval)
	return nil
}

func (m *Monitor) Stop() error {
	m.cancel()
	<-m.done
	slog.Info("device monitor stopped")
	return nil
}

func (m *Monitor) GetStatus() models.DeviceStatus {
	m.mu.RLock()
	defer m.mu.RUnlock()

	status := m.status
	status.Devices = append([]models.Device{}, m.status.Devices...)
	return status
}

// Refresh probes the bridge now and stores the result.
func (m *Monitor) Refresh(ctx context.Context) models.DeviceStatus {
	status := models.DeviceStatus{Devices: []models.Device{}, CheckedAt: time.Now()}

	devices, err := m.bridge.Devices(ctx)
	if err != nil {
		status.Error = err.Error()
	} else {
		status.Devices = devices
		status.Connected = len(adb.ReadyDevices(devices)) > 0
	}

	m.mu.Lock()
	previous := m.status
	m.status = status
	m.mu.Unlock()

	metrics.SetDeviceConnected(status.Connected)

	switch {
	case err != nil && previous.Error != status.Error:
		slog.Warn("device probe failed", "error", err)
	case status.Connected && !previous.Connected:
		slog.Info("device connected", "devices", len(status.Devices))
	case !status.Connected && previous.Connected:
		slog.Info("device disconnected")
	default:
		slog.Debug("device status updated", "devices", len(status.Devices), "connected", status.Connected)
	}

	return status
}

func (m *Monitor) monitorLoop() {
	defer close(m.done)

	ticker := time.NewTicker(m.config.GetMonitor().Interval)
	defer ticker.Stop()

	for {
		select {
		case <-m.ctx.Done():
			return
		case <-ticker.C:
			m.Refresh(m.ctx)
		}
	}
}
